package console

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
)

const rowSeparator = "---+---+---"

// ANSI palette indexes.
const (
	colorCross  = "1"
	colorNought = "4"
	colorCursor = "3"
)

// Draw prints the board. The cursor is hidden in spectate mode.
func (that *Console) Draw(board entity.Board, mode entity.GameMode) {
	fmt.Fprintln(that.out, that.Render(board, mode))
}

// Render returns the board as text, rows separated by newlines.
func (that *Console) Render(board entity.Board, mode entity.GameMode) string {
	showCursor := mode != entity.Spectate

	rows := make([]string, 0, entity.BoardSize*2-1)
	for row := range entity.BoardSize {
		if row > 0 {
			rows = append(rows, rowSeparator)
		}

		cells := make([]string, 0, entity.BoardSize)
		for col := range entity.BoardSize {
			cells = append(cells, that.renderTile(board.CellAt(row, col), showCursor))
		}
		rows = append(rows, strings.Join(cells, "|"))
	}

	return strings.Join(rows, "\n")
}

// renderTile draws a three character cell: " X ", "[X]" under the cursor, " * " for an empty cursor cell.
func (that *Console) renderTile(tile entity.Tile, showCursor bool) string {
	cursor := showCursor && tile.Cursor

	if tile.Mark.IsEmpty() {
		if cursor {
			return " " + that.style("*", colorCursor, true) + " "
		}
		return "   "
	}

	color := colorCross
	if tile.Mark == entity.MarkNought {
		color = colorNought
	}

	symbol := that.style(tile.Mark.Symbol(), color, cursor)
	if cursor {
		return "[" + symbol + "]"
	}
	return " " + symbol + " "
}

func (that *Console) style(text, color string, bold bool) string {
	if !that.color {
		return text
	}

	styled := that.output.String(text).Foreground(that.output.Color(color))
	if bold {
		styled = styled.Bold()
	}
	return styled.String()
}
