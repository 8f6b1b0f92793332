package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGridHidesMinesWhilePlaying(t *testing.T) {
	b := corners(t)
	_, err := b.ToggleFlag(Coord{2, 2})
	require.NoError(t, err)
	_, err = b.Reveal(Coord{0, 2})
	require.NoError(t, err)

	assert.Equal(t, Grid{
		Unknown, 1, 0,
		Unknown, 2, 1,
		Unknown, Unknown, Flag,
	}, b.Grid())
	assert.Equal(t, ". 1  \n. 2 1\n. . F\n", b.Grid().Format(3))
}

func TestGridAfterLoss(t *testing.T) {
	b := corners(t)
	_, err := b.ToggleFlag(Coord{2, 2})
	require.NoError(t, err)
	_, err = b.ToggleFlag(Coord{2, 0})
	require.NoError(t, err)
	_, err = b.Reveal(Coord{0, 0})
	require.NoError(t, err)

	assert.Equal(t, Grid{
		ExplodedMine, Unknown, Unknown,
		Unknown, Unknown, Unknown,
		WrongFlag, Unknown, CorrectFlag,
	}, b.Grid())
}

func TestGridAfterWin(t *testing.T) {
	b := corners(t)
	for _, c := range []Coord{{0, 2}, {2, 0}} {
		_, err := b.Reveal(c)
		require.NoError(t, err)
	}

	assert.Equal(t, Grid{
		UnflaggedMine, 1, 0,
		1, 2, 1,
		0, 1, UnflaggedMine,
	}, b.Grid())
}

func TestCellStatusString(t *testing.T) {
	tests := []struct {
		status CellStatus
		want   string
	}{
		{Unknown, "."},
		{Flag, "F"},
		{0, " "},
		{3, "3"},
		{8, "8"},
		{ExplodedMine, "X"},
		{UnflaggedMine, "*"},
		{WrongFlag, "x"},
		{CellStatus(42), "!"},
	}
	for _, test := range tests {
		assert.Equal(t, test.want, test.status.String())
	}
}
