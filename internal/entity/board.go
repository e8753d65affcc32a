package entity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/apperror"
)

const BoardSize = 3

var ErrInvalidLayout = errors.New("invalid board layout")

// Mark is the permanent content of a cell.
type Mark uint8

const (
	MarkEmpty Mark = iota
	MarkCross
	MarkNought
)

func (that Mark) IsEmpty() bool {
	return that == MarkEmpty
}

// Player returns the owner of the mark. The flag is false for an empty cell.
func (that Mark) Player() (Player, bool) {
	switch that {
	case MarkCross:
		return Cross, true
	case MarkNought:
		return Nought, true
	default:
		return 0, false
	}
}

func (that Mark) Symbol() string {
	switch that {
	case MarkCross:
		return "X"
	case MarkNought:
		return "O"
	default:
		return " "
	}
}

type Position struct {
	Row int
	Col int
}

func (that Position) InBounds() bool {
	return that.Row >= 0 && that.Row < BoardSize && that.Col >= 0 && that.Col < BoardSize
}

// Index is the row-major index of the position (0..8).
func (that Position) Index() int {
	return that.Row*BoardSize + that.Col
}

func (that Position) Offset(dRow, dCol int) Position {
	return Position{Row: that.Row + dRow, Col: that.Col + dCol}
}

func (that Position) String() string {
	return fmt.Sprintf("(%d,%d)", that.Row, that.Col)
}

// Tile is a read view of a cell: its mark plus whether the cursor overlays it.
type Tile struct {
	Mark   Mark
	Cursor bool
}

// Board is a value type. Every operation that changes it returns a new board.
type Board struct {
	cells     [BoardSize][BoardSize]Mark
	cursor    Position
	hasCursor bool
}

// NewBoard returns an empty board with the cursor on the top-left cell.
func NewBoard() Board {
	return Board{hasCursor: true}
}

// ParseBoard builds a board from a compact layout, one character per cell in
// row-major order: '.' empty, 'X'/'O' marks, '*' empty cell with the cursor,
// 'x'/'o' marks with the cursor overlaid. Whitespace and '|' are ignored.
func ParseBoard(layout string) (Board, error) {
	var board Board
	cell := 0

	for _, ch := range layout {
		if ch == ' ' || ch == '\n' || ch == '\t' || ch == '|' {
			continue
		}

		if cell >= BoardSize*BoardSize {
			return Board{}, fmt.Errorf("%w: more than %d cells", ErrInvalidLayout, BoardSize*BoardSize)
		}

		pos := Position{Row: cell / BoardSize, Col: cell % BoardSize}

		switch ch {
		case '.':
		case 'X', 'x':
			board.cells[pos.Row][pos.Col] = MarkCross
		case 'O', 'o':
			board.cells[pos.Row][pos.Col] = MarkNought
		case '*':
		default:
			return Board{}, fmt.Errorf("%w: unexpected %q", ErrInvalidLayout, ch)
		}

		if ch == '*' || ch == 'x' || ch == 'o' {
			if board.hasCursor {
				return Board{}, fmt.Errorf("%w: more than one cursor", ErrInvalidLayout)
			}
			board.cursor = pos
			board.hasCursor = true
		}

		cell++
	}

	if cell != BoardSize*BoardSize {
		return Board{}, fmt.Errorf("%w: got %d cells", ErrInvalidLayout, cell)
	}

	return board, nil
}

// MustParseBoard is ParseBoard for fixed layouts known to be valid.
func MustParseBoard(layout string) Board {
	board, err := ParseBoard(layout)
	if err != nil {
		panic(err)
	}
	return board
}

// CellAt returns the tile at the given cell. Cells outside the grid read as empty.
func (that Board) CellAt(row, col int) Tile {
	pos := Position{Row: row, Col: col}
	if !pos.InBounds() {
		return Tile{}
	}

	return Tile{
		Mark:   that.cells[row][col],
		Cursor: that.hasCursor && that.cursor == pos,
	}
}

func (that Board) Mark(pos Position) Mark {
	if !pos.InBounds() {
		return MarkEmpty
	}
	return that.cells[pos.Row][pos.Col]
}

func (that Board) HasCursor() bool {
	return that.hasCursor
}

func (that Board) CursorPosition() (Position, error) {
	if !that.hasCursor {
		return Position{}, apperror.ErrNoCursorFound
	}
	return that.cursor, nil
}

// IsFull reports whether every cell holds a mark. The cursor is ignored.
func (that Board) IsFull() bool {
	for row := range BoardSize {
		for col := range BoardSize {
			if that.cells[row][col].IsEmpty() {
				return false
			}
		}
	}
	return true
}

// EmptyPositions lists the unmarked cells in row-major order.
func (that Board) EmptyPositions() []Position {
	positions := make([]Position, 0, BoardSize*BoardSize)
	for row := range BoardSize {
		for col := range BoardSize {
			if that.cells[row][col].IsEmpty() {
				positions = append(positions, Position{Row: row, Col: col})
			}
		}
	}
	return positions
}

// Place marks an empty cell for the player. A cursor sitting on that cell is consumed.
func (that Board) Place(pos Position, player Player) (Board, error) {
	if !pos.InBounds() {
		return that, fmt.Errorf("%w: %s", apperror.ErrOffGrid, pos)
	}

	if !that.cells[pos.Row][pos.Col].IsEmpty() {
		return that, fmt.Errorf("%w: %s", apperror.ErrCellOccupied, pos)
	}

	next := that
	next.cells[pos.Row][pos.Col] = player.Mark()
	if next.hasCursor && next.cursor == pos {
		next.hasCursor = false
		next.cursor = Position{}
	}

	return next, nil
}

// WithCursor moves (or seeds) the cursor. Marked cells may carry the cursor.
func (that Board) WithCursor(pos Position) (Board, error) {
	if !pos.InBounds() {
		return that, fmt.Errorf("%w: %s", apperror.ErrOffGrid, pos)
	}

	next := that
	next.cursor = pos
	next.hasCursor = true
	return next, nil
}

func (that Board) WithoutCursor() Board {
	next := that
	next.cursor = Position{}
	next.hasCursor = false
	return next
}

// ResetCursor puts the cursor on the first empty cell in row-major order.
// A full board is returned without a cursor.
func (that Board) ResetCursor() Board {
	empty := that.EmptyPositions()
	if len(empty) == 0 {
		return that.WithoutCursor()
	}

	next := that
	next.cursor = empty[0]
	next.hasCursor = true
	return next
}

func (that Board) Winner() Winner {
	return Evaluate(that)
}

// String renders the board in the layout accepted by ParseBoard, one row per line.
func (that Board) String() string {
	var sb strings.Builder
	for row := range BoardSize {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range BoardSize {
			tile := that.CellAt(row, col)
			switch {
			case tile.Mark == MarkCross && tile.Cursor:
				sb.WriteByte('x')
			case tile.Mark == MarkNought && tile.Cursor:
				sb.WriteByte('o')
			case tile.Mark == MarkCross:
				sb.WriteByte('X')
			case tile.Mark == MarkNought:
				sb.WriteByte('O')
			case tile.Cursor:
				sb.WriteByte('*')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
