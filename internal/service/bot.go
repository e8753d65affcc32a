package service

import (
	"fmt"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/apperror"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
)

// Random is the source of randomness a bot draws from. *rand.Rand satisfies it.
type Random interface {
	Intn(n int) int
}

// BotService places one mark for the acting player, bypassing the cursor.
type BotService interface {
	MakeTurn(board entity.Board, player entity.Player) (entity.Board, error)
}

// NewBotService returns the policy for the given mode.
func NewBotService(mode entity.AIMode, rnd Random) (BotService, error) {
	switch mode {
	case entity.AIModeRandom:
		return &randomBot{rnd: rnd}, nil
	case entity.AIModeSmartRandom:
		return &smartRandomBot{fallback: &randomBot{rnd: rnd}}, nil
	default:
		return nil, fmt.Errorf("%w: %s", apperror.ErrUnsupportedAIMode, mode)
	}
}

type randomBot struct {
	rnd Random
}

func (that *randomBot) MakeTurn(board entity.Board, player entity.Player) (entity.Board, error) {
	availableCells := board.EmptyPositions()
	if len(availableCells) == 0 {
		return board, apperror.ErrNoAvailableMoves
	}

	chosenCell := availableCells[that.rnd.Intn(len(availableCells))]

	next, err := board.Place(chosenCell, player)
	if err != nil {
		return board, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return next, nil
}

// smartRandomBot wins when it can, blocks when it must, and plays randomly otherwise.
type smartRandomBot struct {
	fallback *randomBot
}

func (that *smartRandomBot) MakeTurn(board entity.Board, player entity.Player) (entity.Board, error) {
	pos, ok := WinningMove(board, player)
	if !ok {
		pos, ok = WinningMove(board, player.Opponent())
	}

	if !ok {
		return that.fallback.MakeTurn(board, player)
	}

	next, err := board.Place(pos, player)
	if err != nil {
		return board, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return next, nil
}

// WinningMove finds the first empty cell, in row-major order, that completes a line for player.
func WinningMove(board entity.Board, player entity.Player) (entity.Position, bool) {
	for _, pos := range board.EmptyPositions() {
		if board.CompletesLine(pos, player) {
			return pos, true
		}
	}
	return entity.Position{}, false
}
