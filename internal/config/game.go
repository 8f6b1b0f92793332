package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

// NewGame reads the default game from MINES_ROWS, MINES_COLS, MINES_COUNT
// and MINES_SAFE_FIRST. Unset variables keep their beginner values.
func NewGame() (mines.Params, error) {
	p := mines.Beginner

	var err error
	if p.Rows, err = lookupInt("MINES_ROWS", p.Rows); err != nil {
		return mines.Params{}, err
	}
	if p.Cols, err = lookupInt("MINES_COLS", p.Cols); err != nil {
		return mines.Params{}, err
	}
	if p.MineCount, err = lookupInt("MINES_COUNT", p.MineCount); err != nil {
		return mines.Params{}, err
	}
	if safe, ok := os.LookupEnv("MINES_SAFE_FIRST"); ok {
		p.SafeFirst = safe != "0"
	}

	if err := p.Validate(); err != nil {
		return mines.Params{}, err
	}
	return p, nil
}
