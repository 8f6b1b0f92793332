// Package solver plays minesweeper boards through the public engine API,
// deducing what it can and guessing otherwise.
package solver

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var Log = logrus.New()

var ErrStuck = errors.New("no covered cell left to open")

type Report struct {
	Moves   int // reveals and chords
	Guesses int
	Flags   int
	State   mines.State
}

type Solver struct {
	board        *mines.Board
	rnd          *rand.Rand
	inspectQueue deque.Deque[mines.Coord]
	report       Report
}

func New(board *mines.Board, rnd *rand.Rand) *Solver {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Solver{board: board, rnd: rnd}
}

// Play runs s until the board is won or lost. Cells already revealed on the
// board are taken into account, so a game may be handed over halfway.
func Play(ctx context.Context, board *mines.Board, rnd *rand.Rand) (Report, error) {
	return New(board, rnd).Play(ctx)
}

func (s *Solver) Play(ctx context.Context) (Report, error) {
	for r, row := range s.board.Cells() {
		for c, cell := range row {
			if cell.Revealed && !cell.Mine {
				s.inspectQueue.PushBack(mines.Coord{Row: r, Col: c})
			}
		}
	}

	for s.board.State() == mines.InProgress {
		if err := ctx.Err(); err != nil {
			return s.finish(), err
		}
		progress, err := s.deduce()
		if err != nil {
			return s.finish(), err
		}
		if progress {
			continue
		}
		if err := s.guess(); err != nil {
			return s.finish(), err
		}
	}
	return s.finish(), nil
}

func (s *Solver) finish() Report {
	s.report.State = s.board.State()
	return s.report
}

func (s *Solver) enqueue(cs []mines.Coord) {
	for _, c := range cs {
		s.inspectQueue.PushBack(c)
	}
}

// surroundings splits the neighbours of c into covered unflagged cells and
// a count of flags.
func (s *Solver) surroundings(c mines.Coord) (untouched []mines.Coord, flagged int) {
	for _, n := range s.board.Neighbors(c) {
		cell, _ := s.board.Cell(n)
		switch {
		case cell.Flagged:
			flagged++
		case !cell.Revealed:
			untouched = append(untouched, n)
		}
	}
	return
}

func (s *Solver) flag(c mines.Coord) error {
	if _, err := s.board.ToggleFlag(c); err != nil {
		return fmt.Errorf("flag %s: %w", c, err)
	}
	s.report.Flags++
	for _, n := range s.board.Neighbors(c) {
		if cell, _ := s.board.Cell(n); cell.Revealed {
			s.inspectQueue.PushBack(n)
		}
	}
	return nil
}

// deduce drains the inspect queue and reports whether any cell was flagged
// or opened.
func (s *Solver) deduce() (progress bool, err error) {
	for s.inspectQueue.Len() > 0 && s.board.State() == mines.InProgress {
		c := s.inspectQueue.PopFront()
		cell, _ := s.board.Cell(c)
		if !cell.Revealed || cell.Adjacent == 0 {
			continue
		}

		untouched, flagged := s.surroundings(c)
		if len(untouched) == 0 {
			continue
		}

		remaining := cell.Adjacent - flagged
		switch remaining {
		case 0:
			res, err := s.board.Chord(c)
			if err != nil {
				return progress, fmt.Errorf("chord %s: %w", c, err)
			}
			s.report.Moves++
			if res.Outcome == mines.Detonated {
				// only possible with a wrong flag
				Log.WithField("cell", c).Error("chord detonated a mine")
			}
			s.enqueue(res.Opened)
			progress = true
		case len(untouched):
			for _, n := range untouched {
				if err := s.flag(n); err != nil {
					return progress, err
				}
			}
			progress = true
		}
	}
	return progress, nil
}

func (s *Solver) guess() error {
	var candidates []mines.Coord
	for r, row := range s.board.Cells() {
		for c, cell := range row {
			if !cell.Revealed && !cell.Flagged {
				candidates = append(candidates, mines.Coord{Row: r, Col: c})
			}
		}
	}
	if len(candidates) == 0 {
		return ErrStuck
	}

	c := candidates[s.rnd.IntN(len(candidates))]
	res, err := s.board.Reveal(c)
	if err != nil {
		return fmt.Errorf("reveal %s: %w", c, err)
	}
	s.report.Moves++
	s.report.Guesses++
	Log.WithFields(logrus.Fields{
		"cell":    c,
		"outcome": res.Outcome,
		"opened":  len(res.Opened),
	}).Debug("guessed")
	s.enqueue(res.Opened)
	return nil
}
