package mines

import (
	"fmt"
)

// PlaceMines samples a fresh layout of Params().MineCount mines. No mine is
// put on exclude, nor next to it while the remaining cells can hold them all.
// The layout depends only on the board's random source.
func (b *Board) PlaceMines(exclude *Coord) error {
	if b.opened > 0 || b.state != InProgress {
		return fmt.Errorf("%w: cells already revealed", ErrInvalidOperation)
	}
	if exclude != nil && !b.InBounds(*exclude) {
		return outOfBounds(*exclude)
	}

	rows, cols, mineCount, _ := b.params.Unpack()

	/*
	 * Write down the list of possible mine locations. Try to keep the
	 * whole 3x3 block around the excluded cell clear; fall back to
	 * keeping just the cell itself on crowded boards.
	 */
	candidates := make([]int, 0, rows*cols)
	if exclude != nil {
		for r := range rows {
			for c := range cols {
				if absDiff(exclude.Row, r) > 1 || absDiff(exclude.Col, c) > 1 {
					candidates = append(candidates, r*cols+c)
				}
			}
		}
		if len(candidates) < mineCount {
			candidates = candidates[:0]
			skip := b.index(*exclude)
			for i := range rows * cols {
				if i != skip {
					candidates = append(candidates, i)
				}
			}
		}
	} else {
		for i := range rows * cols {
			candidates = append(candidates, i)
		}
	}

	for i := range b.cells {
		b.cells[i].Mine = false
	}

	/*
	 * Now pick n off the list at random.
	 */
	k := len(candidates)
	for range mineCount {
		i := b.rnd.IntN(k)
		b.cells[candidates[i]].Mine = true
		k--
		candidates[i] = candidates[k]
	}

	b.countAdjacent()
	b.placed = true

	Log.WithField("params", b.params.String()).
		WithField("exclude", exclude).
		Debug("placed mines")

	return nil
}

func (b *Board) countAdjacent() {
	for i := range b.cells {
		b.cells[i].Adjacent = 0
		if b.cells[i].Mine {
			continue
		}
		for _, j := range b.neighbors(i) {
			if b.cells[j].Mine {
				b.cells[i].Adjacent++
			}
		}
	}
}
