package solver

import (
	"context"
	"math/rand/v2"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

func TestMain(m *testing.M) {
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestPlayDeducesWithoutGuessing(t *testing.T) {
	// 0 1 * 1
	// 0 1 1 1
	// 0 0 0 0
	b, err := mines.FromLayout(3, 4, []mines.Coord{{Row: 0, Col: 2}}, nil)
	require.NoError(t, err)
	_, err = b.Reveal(mines.Coord{Row: 0, Col: 0})
	require.NoError(t, err)
	require.Equal(t, mines.InProgress, b.State())

	report, err := Play(context.Background(), b, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)
	assert.Equal(t, mines.Won, report.State)
	assert.Equal(t, 0, report.Guesses)
	assert.Equal(t, 1, report.Flags)
	assert.Equal(t, 1, report.Moves)

	cell, err := b.Cell(mines.Coord{Row: 0, Col: 2})
	require.NoError(t, err)
	assert.True(t, cell.Flagged)
}

func TestPlayTerminates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		params mines.Params
	}{
		{"beginner", mines.Beginner},
		{"intermediate", mines.Intermediate},
		{"expert", mines.Expert},
		{"unsafe start", mines.Params{Rows: 8, Cols: 8, MineCount: 12}},
		{"crowded", mines.Params{Rows: 4, Cols: 4, MineCount: 15}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			rnd := rand.New(rand.NewPCG(1, 2))
			for range 25 {
				b, err := mines.New(test.params, rnd)
				require.NoError(t, err)

				report, err := Play(context.Background(), b, rnd)
				require.NoError(t, err)
				require.True(t, report.State.Terminal())
				require.Equal(t, b.State(), report.State)
				require.GreaterOrEqual(t, report.Guesses, 1)

				// deductions never flag a safe cell
				for _, row := range b.Cells() {
					for _, cell := range row {
						if cell.Flagged {
							require.True(t, cell.Mine)
						}
					}
				}
			}
		})
	}
}

func TestPlayCancelled(t *testing.T) {
	b, err := mines.New(mines.Beginner, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	report, err := Play(ctx, b, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, mines.InProgress, report.State)
	assert.Equal(t, 0, report.Moves)
	assert.False(t, b.Placed())
}
