package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/apperror"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/service"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/tictactoe"
)

var ErrNoBot = errors.New("no bot for a mode that needs one")

type console interface {
	Say(msg string)
	Instructions()
	Draw(board entity.Board, mode entity.GameMode)
	ChooseGameMode(ctx context.Context) (entity.GameMode, error)
	ChooseAIMode(ctx context.Context) (entity.AIMode, error)
	ReadMove(ctx context.Context, player entity.Player) (int, error)
}

type botProvider interface {
	NewBot(mode entity.AIMode) (service.BotService, error)
}

// GameSession drives one game from the mode menu to a win or a tie.
type GameSession struct {
	id     string
	logger *slog.Logger
	debug  bool

	ui   console
	bots botProvider
}

// NewGameSession builds a session. With debug set, turn-by-turn trace messages
// are shown on the console next to the regular output.
func NewGameSession(logger *slog.Logger, ui console, bots botProvider, debug bool) *GameSession {
	id := uuid.NewString()

	return &GameSession{
		id:     id,
		logger: logger.With("component", "session", "session", id),
		debug:  debug,

		ui:   ui,
		bots: bots,
	}
}

func (that *GameSession) ID() string {
	return that.id
}

// Run asks for the game and AI modes and then plays the game.
func (that *GameSession) Run(ctx context.Context) (entity.Outcome, error) {
	that.ui.Say("Welcome to noughts and crosses.")

	mode, err := that.ui.ChooseGameMode(ctx)
	if err != nil {
		return entity.Outcome{}, fmt.Errorf("failed to choose game mode: %w", err)
	}

	var bot service.BotService
	aiMode := entity.AIModeNone

	if mode.HasAI() {
		aiMode, err = that.ui.ChooseAIMode(ctx)
		if err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to choose ai mode: %w", err)
		}

		bot, err = that.bots.NewBot(aiMode)
		if err != nil {
			return entity.Outcome{}, fmt.Errorf("failed to create bot: %w", err)
		}
	}

	that.logger.Info("session started", "mode", mode, "ai", aiMode)

	return that.Play(ctx, mode, bot)
}

// Play runs the turn loop. Cross moves first. In single-player mode the human
// plays Cross and the bot answers every placement with a Nought. In spectate
// mode the bot plays both sides.
func (that *GameSession) Play(ctx context.Context, mode entity.GameMode, bot service.BotService) (entity.Outcome, error) {
	if mode.HasAI() && bot == nil {
		return entity.Outcome{}, fmt.Errorf("%w: %s", ErrNoBot, mode)
	}

	board := entity.NewBoard()
	if mode == entity.Spectate {
		board = board.WithoutCursor()
	}
	player := entity.Cross

	that.ui.Instructions()
	that.ui.Say("Crosses goes first.")
	that.ui.Say("The board looks like this.")
	that.ui.Draw(board, mode)

	for {
		if err := ctx.Err(); err != nil {
			return entity.Outcome{}, err
		}

		var err error
		if mode == entity.Spectate {
			board, err = that.botTurn(board, bot, player)
		} else {
			board, err = that.humanTurn(ctx, board, mode, player)
		}

		if err != nil {
			return entity.Outcome{}, err
		}

		if outcome, over := that.finish(board, mode); over {
			return outcome, nil
		}

		player = that.switchPlayer(player)

		if mode == entity.SinglePlayer {
			board, err = that.botTurn(board, bot, player)
			if err != nil {
				return entity.Outcome{}, err
			}

			if outcome, over := that.finish(board, mode); over {
				return outcome, nil
			}

			player = that.switchPlayer(player)
		}

		if mode != entity.Spectate && !board.HasCursor() {
			board = board.ResetCursor()
		}

		that.ui.Draw(board, mode)
	}
}

// humanTurn reads inputs until the player places a mark. Rejected inputs are
// reported and the same player is asked again.
func (that *GameSession) humanTurn(ctx context.Context, board entity.Board, mode entity.GameMode, player entity.Player) (entity.Board, error) {
	for {
		input, err := that.ui.ReadMove(ctx, player)
		if err != nil {
			return board, fmt.Errorf("failed to read move: %w", err)
		}

		result, err := tictactoe.ProcessMovement(board, player, input)
		if errors.Is(err, apperror.ErrMoveRejected) {
			that.logger.Debug("move rejected", "player", player, "input", input, "error", err)
			that.ui.Say("That did not work")
			continue
		}

		if err != nil {
			that.logger.Error("board lost its cursor", "board", board.String(), "error", err)
			return board, fmt.Errorf("failed to process move: %w", err)
		}

		board = result.Board
		if result.Placed {
			that.logger.Debug("mark placed", "player", player, "board", board.String())
			return board, nil
		}

		that.ui.Draw(board, mode)
	}
}

func (that *GameSession) botTurn(board entity.Board, bot service.BotService, player entity.Player) (entity.Board, error) {
	next, err := bot.MakeTurn(board, player)
	if err != nil {
		return board, fmt.Errorf("bot failed to make turn: %w", err)
	}

	that.logger.Debug("bot placed", "player", player, "board", next.String())

	return next, nil
}

// finish announces a win or a tie. The flag is false while the game goes on.
func (that *GameSession) finish(board entity.Board, mode entity.GameMode) (entity.Outcome, bool) {
	winner := board.Winner()

	switch winner {
	case entity.WinnerCross:
		if mode == entity.SinglePlayer {
			that.ui.Say("You won")
		} else {
			that.ui.Say("Crosses won")
		}
	case entity.WinnerNought:
		that.ui.Say("Noughts won")
	default:
		that.trace("No one has won")

		if !board.IsFull() {
			return entity.Outcome{}, false
		}

		that.ui.Say("It is a tie!")
	}

	board = board.WithoutCursor()
	that.ui.Draw(board, mode)

	outcome := entity.Outcome{Winner: winner, Board: board, Tie: winner == entity.WinnerNone}
	that.logger.Info("session finished", "winner", winner, "tie", outcome.Tie, "board", board.String())

	return outcome, true
}

func (that *GameSession) switchPlayer(player entity.Player) entity.Player {
	next := player.Opponent()
	that.trace(fmt.Sprintf("Current player was switched to %s", next))
	return next
}

func (that *GameSession) trace(msg string) {
	that.logger.Debug(msg)
	if that.debug {
		that.ui.Say(msg)
	}
}
