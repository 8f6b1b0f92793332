package main

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

var errQuit = errors.New("quit")

// Maps known commands to number of arguments; -1 means any
var commandNargs = map[string]int{
	"g": 0,
	"o": 2,
	"f": 2,
	"c": 2,
	"r": 0,
	"x": 0,
	"n": -1,
	"h": 0,
	"q": 0,
}

const usage = `commands:
  o ROW COL    reveal a cell
  f ROW COL    toggle a flag
  c ROW COL    chord a revealed number
  r            give up and show the mines
  x            restart with the same settings
  n rows=R cols=C mines=M [safe=0|1]
               start a new game
  g            show the board
  h            show this help
  q            quit
several commands may be joined with ';'
`

type newGame struct {
	Rows  int  `schema:"rows,required"`
	Cols  int  `schema:"cols,required"`
	Mines int  `schema:"mines,required"`
	Safe  bool `schema:"safe"`
}

func decodeNewGame(args []string) (mines.Params, error) {
	src, err := url.ParseQuery(strings.Join(args, "&"))
	if err != nil {
		return mines.Params{}, fmt.Errorf("malformed game settings: %w", err)
	}
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	dto := newGame{Safe: true}
	if err := dec.Decode(&dto, src); err != nil {
		return mines.Params{}, err
	}
	p := mines.Params{
		Rows:      dto.Rows,
		Cols:      dto.Cols,
		MineCount: dto.Mines,
		SafeFirst: dto.Safe,
	}
	return p, p.Validate()
}

func parseCoord(args []string) (c mines.Coord, err error) {
	if c.Row, err = strconv.Atoi(args[0]); err != nil {
		err = errors.New("row must be an int")
		return
	}
	if c.Col, err = strconv.Atoi(args[1]); err != nil {
		err = errors.New("column must be an int")
		return
	}
	return
}

// execute runs a single command against the current board. Errors are meant
// for the player; [errQuit] ends the session.
func (app *application) execute(command string) error {
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return nil
	}
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command %q, type h for help", parts[0])
	}
	if nargs >= 0 && nargs != len(parts)-1 {
		return errors.New("invalid number of arguments")
	}
	args := parts[1:]

	switch parts[0] {
	case "g":
		return nil
	case "o":
		c, err := parseCoord(args)
		if err != nil {
			return err
		}
		res, err := app.board.Reveal(c)
		if err != nil {
			return err
		}
		app.logger.Debug("revealed",
			"cell", c.String(), "outcome", res.Outcome.String(), "opened", len(res.Opened))
		return nil
	case "f":
		c, err := parseCoord(args)
		if err != nil {
			return err
		}
		_, err = app.board.ToggleFlag(c)
		return err
	case "c":
		c, err := parseCoord(args)
		if err != nil {
			return err
		}
		_, err = app.board.Chord(c)
		return err
	case "r":
		app.board.Forfeit()
		return nil
	case "x":
		return app.board.Reset()
	case "n":
		p, err := decodeNewGame(args)
		if err != nil {
			return err
		}
		board, err := mines.New(p, app.rnd)
		if err != nil {
			return err
		}
		app.board = board
		return nil
	case "h":
		app.printf("%s", usage)
		return nil
	case "q":
		return errQuit
	}
	return errors.New("invalid command")
}

// handleLine executes every ';'-separated command on line and redraws the
// board. It returns [errQuit] once the player asks to leave.
func (app *application) handleLine(line string) error {
	for _, command := range byPiece(strings.TrimSpace(line), ";") {
		err := app.execute(strings.TrimSpace(command))
		if errors.Is(err, errQuit) {
			return err
		}
		if err != nil {
			app.printf("error: %s\n", err)
			return nil
		}
		if app.board.State().Terminal() {
			break
		}
	}
	app.render()
	return nil
}
