package main

import (
	"context"
	"flag"
	"fmt"
	"hash/maphash"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-engine/internal/config"
	"github.com/vancomm/minesweeper-engine/internal/mines"
	"github.com/vancomm/minesweeper-engine/internal/solver"
)

var (
	paramsFlag string
	seed       uint64
	games      int
	workers    int
)

func init() {
	const paramsUsage = "game params as rows:cols:mines:safe (overrides MINES_* env)"
	flag.StringVar(&paramsFlag, "params", "", paramsUsage)
	flag.StringVar(&paramsFlag, "p", "", paramsUsage+" (shorthand)")
	flag.Uint64Var(&seed, "seed", 0, "random seed; 0 picks one")
	flag.IntVar(&games, "simulate", 0, "auto-play this many games and print totals")
	flag.IntVar(&workers, "workers", runtime.NumCPU(), "concurrent games when simulating")
}

func createRand(seed uint64) *rand.Rand {
	if seed != 0 {
		return rand.New(rand.NewPCG(seed, seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func setupEngineLogging() error {
	level, err := config.LogLevel()
	if err != nil {
		return err
	}
	hook, err := config.NewLogFileHook(level)
	if err != nil {
		return err
	}
	for _, log := range []*logrus.Logger{mines.Log, solver.Log} {
		log.SetLevel(level)
		log.SetFormatter(&logrus.TextFormatter{ForceColors: config.Development()})
		if hook != nil {
			log.AddHook(hook)
		}
	}
	return nil
}

func gameParams() (mines.Params, error) {
	if paramsFlag != "" {
		return mines.ParseParams(paramsFlag)
	}
	return config.NewGame()
}

func main() {
	var logger *slog.Logger
	if config.Development() {
		logger = slog.New(
			tint.NewHandler(os.Stderr, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}

	flag.Parse()

	ctx, cancel := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer cancel()

	if err := setupEngineLogging(); err != nil {
		logger.Error("failed to set up engine logging", slog.Any("error", err))
		os.Exit(1)
	}

	params, err := gameParams()
	if err != nil {
		logger.Error("invalid game params", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Debug("starting up", slog.String("params", params.String()), slog.Uint64("seed", seed))

	if games > 0 {
		if seed == 0 {
			seed = createRand(0).Uint64()
		}
		sum, err := simulate(ctx, params, games, workers, seed)
		sum.print(os.Stdout)
		if err != nil {
			logger.Error("simulation stopped", slog.Any("error", err))
			os.Exit(1)
		}
		return
	}

	app, err := newApplication(logger, params, createRand(seed), os.Stdout)
	if err != nil {
		logger.Error("failed to create a game", slog.Any("error", err))
		os.Exit(1)
	}
	if err := app.run(ctx, os.Stdin); err != nil {
		logger.Error("exit reason", slog.Any("error", err))
		os.Exit(1)
	}
}

type application struct {
	logger *slog.Logger
	rnd    *rand.Rand
	board  *mines.Board
	out    io.Writer
}

func newApplication(
	logger *slog.Logger, params mines.Params, rnd *rand.Rand, out io.Writer,
) (*application, error) {
	board, err := mines.New(params, rnd)
	if err != nil {
		return nil, err
	}
	app := &application{
		logger: logger,
		rnd:    rnd,
		board:  board,
		out:    out,
	}
	return app, nil
}

func (app *application) printf(format string, args ...any) {
	if _, err := fmt.Fprintf(app.out, format, args...); err != nil {
		app.logger.Error("failed to write output", slog.Any("error", err))
	}
}
