package main

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/solver"
)

type summary struct {
	Games, Won, Lost int
	Moves, Guesses   int
}

func (s *summary) add(r solver.Report) {
	s.Games++
	switch r.State {
	case mines.Won:
		s.Won++
	case mines.Lost:
		s.Lost++
	}
	s.Moves += r.Moves
	s.Guesses += r.Guesses
}

func (s summary) print(w io.Writer) {
	rate := 0.0
	if s.Games > 0 {
		rate = 100 * float64(s.Won) / float64(s.Games)
	}
	fmt.Fprintf(w, "games: %d  won: %d  lost: %d  win rate: %.1f%%\n",
		s.Games, s.Won, s.Lost, rate)
	fmt.Fprintf(w, "moves: %d  guesses: %d\n", s.Moves, s.Guesses)
}

// simulate auto-plays n games on at most workers goroutines. Game i draws
// from its own source seeded with (seed, i), so totals are reproducible for
// a fixed seed whatever the scheduling.
func simulate(
	ctx context.Context, params mines.Params, n, workers int, seed uint64,
) (summary, error) {
	var (
		mu  sync.Mutex
		sum summary
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))
	for i := range n {
		g.Go(func() error {
			rnd := rand.New(rand.NewPCG(seed, uint64(i)))
			board, err := mines.New(params, rnd)
			if err != nil {
				return err
			}
			report, err := solver.Play(gCtx, board, rnd)
			if err != nil {
				return fmt.Errorf("game %d: %w", i, err)
			}
			mu.Lock()
			sum.add(report)
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	return sum, err
}
