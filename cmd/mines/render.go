package main

import (
	"fmt"
	"strings"

	"github.com/vancomm/minesweeper-engine/internal/mines"
)

// formatBoard draws the player's view with row and column numbers.
func formatBoard(b *mines.Board) string {
	p := b.Params()
	grid := b.Grid()
	width := len(fmt.Sprint(max(p.Rows, p.Cols) - 1))

	var sb strings.Builder
	fmt.Fprintf(&sb, "%*s ", width, "")
	for c := range p.Cols {
		fmt.Fprintf(&sb, " %*d", width, c)
	}
	sb.WriteByte('\n')
	for r := range p.Rows {
		fmt.Fprintf(&sb, "%*d ", width, r)
		for c := range p.Cols {
			fmt.Fprintf(&sb, " %*s", width, grid[r*p.Cols+c].String())
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func statusLine(b *mines.Board) string {
	switch b.State() {
	case mines.Won:
		return "You win! Type x to play again or q to quit."
	case mines.Lost:
		return "Game over! Type x to play again or q to quit."
	default:
		return fmt.Sprintf("mines left: %d", b.MinesLeft())
	}
}

func (app *application) render() {
	app.printf("%s%s\n", formatBoard(app.board), statusLine(app.board))
}
