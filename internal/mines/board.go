package mines

import (
	"fmt"
	"math/rand/v2"
)

type Coord struct {
	Row, Col int
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

type Cell struct {
	Mine     bool
	Revealed bool
	Flagged  bool
	Adjacent int // mines among the 8 neighbours; 0 for mines
}

type State int8

const (
	InProgress State = iota
	Won
	Lost
)

func (s State) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return fmt.Sprintf("State(%d)", int8(s))
	}
}

func (s State) Terminal() bool {
	return s == Won || s == Lost
}

// Board is a single game session. It is not safe for concurrent use.
type Board struct {
	params   Params
	cells    []Cell
	state    State
	placed   bool
	opened   int // revealed safe cells
	flags    int
	exploded int // index of the detonated mine or -1
	rnd      *rand.Rand
}

// New allocates a board for p. Unless p.SafeFirst is set, mines are placed
// right away. A nil r is replaced by a randomly seeded source.
func New(p Params, r *rand.Rand) (*Board, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = newRand()
	}
	b := &Board{
		params:   p,
		cells:    make([]Cell, p.Size()),
		exploded: -1,
		rnd:      r,
	}
	if !p.SafeFirst {
		if err := b.PlaceMines(nil); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// FromLayout builds a board with mines exactly at the given coordinates.
// Reset discards the layout and samples a new one from r.
func FromLayout(rows, cols int, mines []Coord, r *rand.Rand) (*Board, error) {
	p := Params{Rows: rows, Cols: cols, MineCount: len(mines)}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = newRand()
	}
	b := &Board{
		params:   p,
		cells:    make([]Cell, p.Size()),
		exploded: -1,
		rnd:      r,
	}
	for _, m := range mines {
		if !b.InBounds(m) {
			return nil, fmt.Errorf("%w: mine at %s", ErrInvalidConfiguration, m)
		}
		i := b.index(m)
		if b.cells[i].Mine {
			return nil, fmt.Errorf("%w: duplicate mine at %s", ErrInvalidConfiguration, m)
		}
		b.cells[i].Mine = true
	}
	b.countAdjacent()
	b.placed = true
	return b, nil
}

func (b *Board) index(c Coord) int {
	return c.Row*b.params.Cols + c.Col
}

func (b *Board) coord(i int) Coord {
	return Coord{Row: i / b.params.Cols, Col: i % b.params.Cols}
}

func (b *Board) InBounds(c Coord) bool {
	return 0 <= c.Row && c.Row < b.params.Rows &&
		0 <= c.Col && c.Col < b.params.Cols
}

// Neighbors returns the in-bounds cells around c in row-major order.
func (b *Board) Neighbors(c Coord) []Coord {
	ns := make([]Coord, 0, 8)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			n := Coord{Row: c.Row + dr, Col: c.Col + dc}
			if (dr != 0 || dc != 0) && b.InBounds(n) {
				ns = append(ns, n)
			}
		}
	}
	return ns
}

func (b *Board) neighbors(i int) []int {
	ns := b.Neighbors(b.coord(i))
	is := make([]int, len(ns))
	for k, n := range ns {
		is[k] = b.index(n)
	}
	return is
}

func (b *Board) Params() Params { return b.params }
func (b *Board) State() State   { return b.state }
func (b *Board) Flags() int     { return b.flags }

// Placed reports whether the mine layout has been sampled.
func (b *Board) Placed() bool { return b.placed }

// MinesLeft is the mine count minus the number of flags. It goes negative
// when the player over-flags.
func (b *Board) MinesLeft() int {
	return b.params.MineCount - b.flags
}

// Exploded returns the mine that ended the game, if any.
func (b *Board) Exploded() (Coord, bool) {
	if b.exploded < 0 {
		return Coord{}, false
	}
	return b.coord(b.exploded), true
}

func (b *Board) Cell(c Coord) (Cell, error) {
	if !b.InBounds(c) {
		return Cell{}, outOfBounds(c)
	}
	return b.cells[b.index(c)], nil
}

// Cells returns a copy of the board as rows of cells.
func (b *Board) Cells() [][]Cell {
	rows := make([][]Cell, b.params.Rows)
	for r := range rows {
		rows[r] = make([]Cell, b.params.Cols)
		copy(rows[r], b.cells[r*b.params.Cols:(r+1)*b.params.Cols])
	}
	return rows
}

// Mines lists mine coordinates in row-major order. It is empty until the
// layout is placed.
func (b *Board) Mines() []Coord {
	var ms []Coord
	for i, cell := range b.cells {
		if cell.Mine {
			ms = append(ms, b.coord(i))
		}
	}
	return ms
}
