package mines

import (
	"strconv"
	"strings"
)

// CellStatus is what a player may know about a cell. Values 0 to 8 are
// revealed safe cells with the given number of mined neighbours.
type CellStatus int8

const (
	Unknown       CellStatus = -2
	Flag          CellStatus = -1
	CorrectFlag   CellStatus = 64 // post-game-over
	ExplodedMine  CellStatus = 65
	WrongFlag     CellStatus = 66
	UnflaggedMine CellStatus = 67
)

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "."
	case Flag:
		return "F"
	case CorrectFlag:
		return "F"
	case ExplodedMine:
		return "X"
	case WrongFlag:
		return "x"
	case UnflaggedMine:
		return "*"
	case 0:
		return " "
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

type Grid []CellStatus

func (g Grid) Format(cols int) string {
	var b strings.Builder
	for r := range len(g) / cols {
		for c := range cols {
			if c > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(g[r*cols+c].String())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Grid projects the board onto what a player may see. While the game runs
// mines stay hidden; once it is over every mine and misplaced flag shows.
func (b *Board) Grid() Grid {
	g := make(Grid, len(b.cells))
	over := b.state.Terminal()
	for i, cell := range b.cells {
		switch {
		case i == b.exploded:
			g[i] = ExplodedMine
		case over && cell.Flagged && cell.Mine:
			g[i] = CorrectFlag
		case over && cell.Flagged:
			g[i] = WrongFlag
		case cell.Flagged:
			g[i] = Flag
		case over && cell.Mine:
			g[i] = UnflaggedMine
		case cell.Revealed:
			g[i] = CellStatus(cell.Adjacent)
		default:
			g[i] = Unknown
		}
	}
	return g
}
