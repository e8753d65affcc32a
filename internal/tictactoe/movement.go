package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/apperror"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
)

// Digits read from the keypad layout.
const (
	InputUp    = 8
	InputDown  = 2
	InputLeft  = 4
	InputRight = 6
	InputPlace = 5
)

type Action uint8

const (
	ActionUnknown Action = iota
	ActionMove
	ActionPlace
)

// Direction is a one-step cursor offset.
type Direction struct {
	DRow int
	DCol int
}

var directions = map[int]Direction{
	InputUp:    {DRow: -1},
	InputDown:  {DRow: 1},
	InputLeft:  {DCol: -1},
	InputRight: {DCol: 1},
}

// MoveResult is an accepted movement. Placed is false for a pure cursor move.
type MoveResult struct {
	Board  entity.Board
	Placed bool
}

// ParseInput maps a digit to the action it triggers.
func ParseInput(input int) (Action, Direction) {
	if input == InputPlace {
		return ActionPlace, Direction{}
	}

	if dir, ok := directions[input]; ok {
		return ActionMove, dir
	}

	return ActionUnknown, Direction{}
}

// ProcessMovement applies one input for the acting player.
//
// A rejected move returns an error wrapping apperror.ErrMoveRejected and the
// caller keeps its board. A board without a cursor is an invariant breach and
// returns apperror.ErrNoCursorFound unwrapped by ErrMoveRejected.
func ProcessMovement(board entity.Board, player entity.Player, input int) (MoveResult, error) {
	cursor, err := board.CursorPosition()
	if err != nil {
		return MoveResult{}, fmt.Errorf("process movement: %w", err)
	}

	action, dir := ParseInput(input)
	switch action {
	case ActionMove:
		return moveCursor(board, cursor, dir)
	case ActionPlace:
		return place(board, cursor, player)
	default:
		return MoveResult{}, reject(fmt.Errorf("%w: %d", apperror.ErrUnknownInput, input))
	}
}

func moveCursor(board entity.Board, cursor entity.Position, dir Direction) (MoveResult, error) {
	next, err := board.WithCursor(cursor.Offset(dir.DRow, dir.DCol))
	if err != nil {
		return MoveResult{}, reject(err)
	}

	return MoveResult{Board: next}, nil
}

func place(board entity.Board, cursor entity.Position, player entity.Player) (MoveResult, error) {
	next, err := board.Place(cursor, player)
	if err != nil {
		return MoveResult{}, reject(err)
	}

	return MoveResult{Board: next, Placed: true}, nil
}

func reject(err error) error {
	return errors.Join(apperror.ErrMoveRejected, err)
}
