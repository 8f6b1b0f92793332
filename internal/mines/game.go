package mines

import (
	"fmt"
)

type Outcome int8

const (
	Revealed Outcome = iota
	Detonated
	Victory
)

func (o Outcome) String() string {
	switch o {
	case Revealed:
		return "revealed"
	case Detonated:
		return "detonated"
	case Victory:
		return "won"
	default:
		return fmt.Sprintf("Outcome(%d)", int8(o))
	}
}

type RevealResult struct {
	Outcome  Outcome
	Adjacent int     // adjacency of the requested cell
	Opened   []Coord // every cell revealed by the call, in order
}

func (b *Board) checkMove(c Coord) (int, error) {
	if !b.InBounds(c) {
		return 0, outOfBounds(c)
	}
	if b.state.Terminal() {
		return 0, ErrGameOver
	}
	i := b.index(c)
	if b.cells[i].Revealed {
		return 0, fmt.Errorf("%w at %s", ErrAlreadyRevealed, c)
	}
	return i, nil
}

// Reveal opens c. A zero cell cascades through its connected zero region and
// the numbered cells bordering it; flagged cells stop the cascade.
func (b *Board) Reveal(c Coord) (RevealResult, error) {
	i, err := b.checkMove(c)
	if err != nil {
		return RevealResult{}, err
	}
	if b.cells[i].Flagged {
		return RevealResult{}, fmt.Errorf("%w at %s", ErrFlagged, c)
	}
	if !b.placed {
		if err := b.PlaceMines(&c); err != nil {
			return RevealResult{}, err
		}
	}
	return b.open(i), nil
}

func (b *Board) open(i int) RevealResult {
	if b.cells[i].Mine {
		/*
		 * The player has landed on a mine. Record the one that killed
		 * them and expose the rest.
		 */
		b.cells[i].Revealed = true
		b.exploded = i
		b.state = Lost
		b.disclose()
		return RevealResult{
			Outcome: Detonated,
			Opened:  []Coord{b.coord(i)},
		}
	}

	res := RevealResult{Adjacent: b.cells[i].Adjacent}

	/*
	 * Mark cells revealed as they are queued so that nothing is queued
	 * twice; every queued cell with no neighbouring mines queues its
	 * covered, unflagged neighbours in turn.
	 */
	todo := newCelltodo(len(b.cells))
	b.cells[i].Revealed = true
	todo.add(i)
	for j := todo.head; j >= 0; j = todo.next[j] {
		res.Opened = append(res.Opened, b.coord(j))
		b.opened++
		if b.cells[j].Adjacent != 0 {
			continue
		}
		for _, k := range b.neighbors(j) {
			cell := &b.cells[k]
			if !cell.Revealed && !cell.Flagged && !cell.Mine {
				cell.Revealed = true
				todo.add(k)
			}
		}
	}

	if len(res.Opened) > 1 {
		Log.WithField("from", b.coord(i)).
			WithField("opened", len(res.Opened)).
			Debug("cascade")
	}

	if b.opened == len(b.cells)-b.params.MineCount {
		b.state = Won
		res.Outcome = Victory
	}
	return res
}

// ToggleFlag flips the flag on a covered cell and returns its new value.
func (b *Board) ToggleFlag(c Coord) (bool, error) {
	i, err := b.checkMove(c)
	if err != nil {
		return false, err
	}
	cell := &b.cells[i]
	cell.Flagged = !cell.Flagged
	if cell.Flagged {
		b.flags++
	} else {
		b.flags--
	}
	return cell.Flagged, nil
}

// Chord reveals the covered, unflagged neighbours of a revealed number once
// enough of its neighbours are flagged. With too few or too many flags it
// does nothing.
func (b *Board) Chord(c Coord) (RevealResult, error) {
	if !b.InBounds(c) {
		return RevealResult{}, outOfBounds(c)
	}
	if b.state.Terminal() {
		return RevealResult{}, ErrGameOver
	}
	i := b.index(c)
	if !b.cells[i].Revealed {
		return RevealResult{}, fmt.Errorf("%w: chord on covered cell %s", ErrInvalidOperation, c)
	}

	res := RevealResult{Adjacent: b.cells[i].Adjacent}
	var covered []int
	flagged := 0
	for _, j := range b.neighbors(i) {
		switch {
		case b.cells[j].Flagged:
			flagged++
		case !b.cells[j].Revealed:
			covered = append(covered, j)
		}
	}
	if flagged != b.cells[i].Adjacent {
		return res, nil
	}

	for _, j := range covered {
		if b.cells[j].Revealed {
			continue // opened by an earlier cascade
		}
		r := b.open(j)
		res.Opened = append(res.Opened, r.Opened...)
		if r.Outcome != Revealed {
			res.Outcome = r.Outcome
			break
		}
	}
	return res, nil
}

// Forfeit ends a running game as lost and exposes the mines.
func (b *Board) Forfeit() {
	if b.state.Terminal() {
		return
	}
	if !b.placed {
		// nothing was revealed yet, so any layout will do
		_ = b.PlaceMines(nil)
	}
	b.state = Lost
	b.disclose()
}

// Reset clears all cell state and samples a new layout, following the
// SafeFirst policy of the board's params.
func (b *Board) Reset() error {
	for i := range b.cells {
		b.cells[i] = Cell{}
	}
	b.state = InProgress
	b.placed = false
	b.opened = 0
	b.flags = 0
	b.exploded = -1
	if b.params.SafeFirst {
		return nil
	}
	return b.PlaceMines(nil)
}

func (b *Board) disclose() {
	for i := range b.cells {
		if b.cells[i].Mine {
			b.cells[i].Revealed = true
		}
	}
}
