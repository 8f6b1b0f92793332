package mines

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfiguration = errors.New("invalid board configuration")
	ErrOutOfBounds          = errors.New("cell out of bounds")
	ErrInvalidOperation     = errors.New("invalid operation")

	// Refinements of [ErrInvalidOperation].
	ErrAlreadyRevealed = fmt.Errorf("%w: cell already revealed", ErrInvalidOperation)
	ErrFlagged         = fmt.Errorf("%w: cell is flagged", ErrInvalidOperation)
	ErrGameOver        = fmt.Errorf("%w: game is over", ErrInvalidOperation)
)

func outOfBounds(c Coord) error {
	return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
}
