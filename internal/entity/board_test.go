package entity

import (
	"testing"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	// When: a new board is created
	board := NewBoard()

	// Then: the cursor sits on the top-left cell
	pos, err := board.CursorPosition()
	require.NoError(t, err)
	assert.Equal(t, Position{Row: 0, Col: 0}, pos)

	// Then: every cell is empty
	assert.Len(t, board.EmptyPositions(), BoardSize*BoardSize)
	assert.Equal(t, Tile{Mark: MarkEmpty, Cursor: true}, board.CellAt(0, 0))
	assert.Equal(t, Tile{}, board.CellAt(2, 2))
}

func TestParseBoard(t *testing.T) {
	t.Run("Round trips through String", func(t *testing.T) {
		// Given: a layout with both marks and a cursor on a marked cell
		layout := "X.O\n.x.\n..O"

		// When: parsing it
		board, err := ParseBoard(layout)

		// Then: the board renders back to the same layout
		require.NoError(t, err)
		assert.Equal(t, layout, board.String())
		assert.Equal(t, Tile{Mark: MarkCross, Cursor: true}, board.CellAt(1, 1))
	})

	t.Run("Ignores separators", func(t *testing.T) {
		board, err := ParseBoard("X|.|O  .|*|.  .|.|.")

		require.NoError(t, err)
		assert.Equal(t, "X.O\n.*.\n...", board.String())
	})

	t.Run("Rejects two cursors", func(t *testing.T) {
		_, err := ParseBoard("*.. .*. ...")

		assert.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("Rejects short layouts", func(t *testing.T) {
		_, err := ParseBoard("X.O")

		assert.ErrorIs(t, err, ErrInvalidLayout)
	})

	t.Run("Rejects unknown characters", func(t *testing.T) {
		_, err := ParseBoard("X.O .?. ...")

		assert.ErrorIs(t, err, ErrInvalidLayout)
	})
}

func TestBoard_CursorPosition(t *testing.T) {
	t.Run("Returns the cursor cell", func(t *testing.T) {
		board := MustParseBoard("... ..* ...")

		pos, err := board.CursorPosition()

		require.NoError(t, err)
		assert.Equal(t, Position{Row: 1, Col: 2}, pos)
	})

	t.Run("Fails when no cell carries the cursor", func(t *testing.T) {
		// Given: a board without a cursor
		board := MustParseBoard("X.. ... ...")

		// When: locating the cursor
		_, err := board.CursorPosition()

		// Then: ErrNoCursorFound is returned
		assert.ErrorIs(t, err, apperror.ErrNoCursorFound)
	})
}

func TestBoard_IsFull(t *testing.T) {
	t.Run("Full board with cursor overlay", func(t *testing.T) {
		board := MustParseBoard("XOX OxO OXO")

		assert.True(t, board.IsFull())
	})

	t.Run("Empty cursor cell counts as empty", func(t *testing.T) {
		board := MustParseBoard("XOX O*O OXO")

		assert.False(t, board.IsFull())
	})

	t.Run("Single empty cell", func(t *testing.T) {
		board := MustParseBoard("XOX OXO OX.")

		assert.False(t, board.IsFull())
	})
}

func TestBoard_Place(t *testing.T) {
	t.Run("Consumes the cursor on the placed cell", func(t *testing.T) {
		// Given: the starting board
		board := NewBoard()

		// When: Cross places on the cursor cell
		next, err := board.Place(Position{Row: 0, Col: 0}, Cross)

		// Then: the mark is there and no cursor remains
		require.NoError(t, err)
		assert.Equal(t, "X..\n...\n...", next.String())
		assert.False(t, next.HasCursor())

		// Then: the original board is unchanged
		assert.Equal(t, "*..\n...\n...", board.String())
	})

	t.Run("Keeps a cursor that is elsewhere", func(t *testing.T) {
		board := MustParseBoard("*.. ... ...")

		next, err := board.Place(Position{Row: 2, Col: 2}, Nought)

		require.NoError(t, err)
		assert.Equal(t, "*..\n...\n..O", next.String())
	})

	t.Run("Rejects an occupied cell", func(t *testing.T) {
		board := MustParseBoard("O.. ... ..*")

		next, err := board.Place(Position{Row: 0, Col: 0}, Cross)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, board, next)
	})

	t.Run("Rejects a cell off the grid", func(t *testing.T) {
		board := NewBoard()

		_, err := board.Place(Position{Row: 3, Col: 0}, Cross)

		assert.ErrorIs(t, err, apperror.ErrOffGrid)
	})
}

func TestBoard_ResetCursor(t *testing.T) {
	t.Run("Moves to the first empty cell", func(t *testing.T) {
		board := MustParseBoard("XO. ... ...")

		next := board.ResetCursor()

		assert.Equal(t, "XO*\n...\n...", next.String())
	})

	t.Run("Full board has no cursor", func(t *testing.T) {
		board := MustParseBoard("XOX OXO OxO")

		next := board.ResetCursor()

		assert.False(t, next.HasCursor())
	})
}

func TestBoard_WithCursor(t *testing.T) {
	board := MustParseBoard("X.. ... ...")

	next, err := board.WithCursor(Position{Row: 0, Col: 0})
	require.NoError(t, err)
	assert.Equal(t, "x..\n...\n...", next.String())

	_, err = board.WithCursor(Position{Row: -1, Col: 0})
	assert.ErrorIs(t, err, apperror.ErrOffGrid)
}
