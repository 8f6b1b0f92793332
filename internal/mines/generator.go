package mines

import (
	"fmt"
	"strings"
)

type Params struct {
	Rows, Cols, MineCount int
	// SafeFirst defers mine placement until the first reveal so that the
	// first opened cell is never a mine.
	SafeFirst bool
}

var (
	Beginner     = Params{Rows: 9, Cols: 9, MineCount: 10, SafeFirst: true}
	Intermediate = Params{Rows: 16, Cols: 16, MineCount: 40, SafeFirst: true}
	Expert       = Params{Rows: 16, Cols: 30, MineCount: 99, SafeFirst: true}
)

func (p Params) Unpack() (rows int, cols int, mc int, safe bool) {
	return p.Rows, p.Cols, p.MineCount, p.SafeFirst
}

func (p Params) Validate() error {
	if p.Rows <= 0 || p.Cols <= 0 {
		return fmt.Errorf(
			"%w: dimensions must be positive (rows = %d, cols = %d)",
			ErrInvalidConfiguration, p.Rows, p.Cols,
		)
	}
	if p.MineCount < 0 || p.MineCount >= p.Rows*p.Cols {
		return fmt.Errorf(
			"%w: mine count must be in [0, %d) (mines = %d)",
			ErrInvalidConfiguration, p.Rows*p.Cols, p.MineCount,
		)
	}
	return nil
}

func (p Params) Size() int {
	return p.Rows * p.Cols
}

// String renders p as "rows:cols:mines:safe", the format read by [ParseParams].
func (p Params) String() string {
	s := 0
	if p.SafeFirst {
		s = 1
	}
	return fmt.Sprintf("%d:%d:%d:%d", p.Rows, p.Cols, p.MineCount, s)
}

func ParseParams(s string) (Params, error) {
	var p Params
	safe := 0
	fields := strings.ReplaceAll(s, ":", " ")
	n, err := fmt.Sscanf(
		fields, "%d %d %d %d", &p.Rows, &p.Cols, &p.MineCount, &safe,
	)
	if n != 4 || err != nil {
		return Params{}, fmt.Errorf(
			`%w: malformed params "%s" (n = %d, err = %v)`,
			ErrInvalidConfiguration, s, n, err,
		)
	}
	if safe != 0 && safe != 1 {
		return Params{}, fmt.Errorf(
			"%w: safe flag must be 0 or 1, got %d", ErrInvalidConfiguration, safe,
		)
	}
	p.SafeFirst = safe == 1
	if err := p.Validate(); err != nil {
		return Params{}, err
	}
	return p, nil
}
