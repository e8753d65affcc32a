package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/entity"
)

const msgNotANumber = "I did not understand that number. Please try again."

// maxLineLength bounds what is kept of a typed line. Longer lines are read to
// the end, dropped and treated as malformed.
const maxLineLength = 1024

// Console is the interactive terminal: prompts, menus and the rendered board.
type Console struct {
	logger *slog.Logger

	reader  *bufio.Reader
	out     io.Writer
	output  *termenv.Output
	color   bool
}

// New builds a console reading lines from in and writing to out.
// With color disabled the board is drawn in plain ASCII.
func New(logger *slog.Logger, in io.Reader, out io.Writer, color bool) *Console {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return &Console{
		logger:  logger.With("component", "console"),
		reader:  bufio.NewReader(in),
		out:     out,
		output:  termenv.NewOutput(out, opts...),
		color:   color,
	}
}

func (that *Console) Say(msg string) {
	fmt.Fprintln(that.out, msg)
}

func (that *Console) Instructions() {
	that.Say("To move the star left type 4 and hit enter")
	that.Say("To move the star right type 6 and hit enter")
	that.Say("To move the star up type 8 and hit enter")
	that.Say("To move the star down type 2 and hit enter")
	that.Say("To place your mark type 5 and hit enter")
}

// ChooseGameMode asks for the number of human players until one of 0, 1 or 2 is given.
func (that *Console) ChooseGameMode(ctx context.Context) (entity.GameMode, error) {
	that.Say("Input the number of players you want to play. Zero spectates two computer players.")

	for {
		choice, err := that.readNumber(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to read game mode: %w", err)
		}

		switch choice {
		case 0:
			that.Say("Welcome to spectate mode.")
			return entity.Spectate, nil
		case 1:
			that.Say("Welcome to single player mode.")
			return entity.SinglePlayer, nil
		case 2:
			that.Say("Welcome to two player mode.")
			return entity.TwoPlayer, nil
		default:
			that.Say("This game only works with 0, 1 or 2 players. Please try again.")
		}
	}
}

// ChooseAIMode asks for the bot policy until 1 or 2 is given.
func (that *Console) ChooseAIMode(ctx context.Context) (entity.AIMode, error) {
	that.Say("Input the AI mode you want to play against. One or two?")

	for {
		choice, err := that.readNumber(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to read ai mode: %w", err)
		}

		switch choice {
		case 1:
			that.Say("Welcome to Random mode.")
			return entity.AIModeRandom, nil
		case 2:
			that.Say("Welcome to SmartRandom mode.")
			return entity.AIModeSmartRandom, nil
		default:
			that.Say("This game only works with AI 1 or 2. Please try again.")
		}
	}
}

// ReadMove returns the next number typed by the acting player. Whether the
// number is a valid move is decided by the movement engine.
func (that *Console) ReadMove(ctx context.Context, player entity.Player) (int, error) {
	that.Say(fmt.Sprintf("%s, make your move.", player))

	move, err := that.readNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to read move: %w", err)
	}

	return move, nil
}

// readNumber reads lines until one parses as an integer. A closed input returns io.EOF.
func (that *Console) readNumber(ctx context.Context) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		line, tooLong, err := that.readLine()
		if err != nil {
			return 0, err
		}

		if tooLong {
			that.logger.Debug("input line too long", "limit", maxLineLength)
			that.Say(msgNotANumber)
			continue
		}

		number, err := strconv.Atoi(line)
		if err != nil {
			that.logger.Debug("malformed number", "input", line)
			that.Say(msgNotANumber)
			continue
		}

		return number, nil
	}
}

// readLine returns the next line without surrounding whitespace. The flag is set
// when the line exceeded maxLineLength; its content is then discarded.
// A final line without a newline is returned before io.EOF.
func (that *Console) readLine() (string, bool, error) {
	var line []byte
	tooLong := false

	for {
		chunk, err := that.reader.ReadSlice('\n')
		if !tooLong {
			if len(line)+len(chunk) > maxLineLength {
				tooLong = true
				line = nil
			} else {
				line = append(line, chunk...)
			}
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if len(line) == 0 && !tooLong {
				return "", false, io.EOF
			}
			return strings.TrimSpace(string(line)), tooLong, nil
		case err != nil:
			return "", false, fmt.Errorf("failed to read line: %w", err)
		default:
			return strings.TrimSpace(string(line)), tooLong, nil
		}
	}
}
