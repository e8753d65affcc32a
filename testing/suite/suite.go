package suite

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/transport/console"
)

const (
	maxWaitDuration = 10 * time.Second
	seed            = 42
)

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Random is seeded so bot games replay the same way on every run.
	Random  *rand.Rand
	Console *console.Console
	Output  *bytes.Buffer
}

// New returns a suite whose console reads the given lines as typed input
// and records everything it prints in Output.
func New(t *testing.T, input ...string) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	stdin := strings.NewReader(strings.Join(input, "\n") + "\n")
	if len(input) == 0 {
		stdin = strings.NewReader("")
	}

	return ctx, NewWithReader(t, stdin)
}

// NewWithReader returns a suite whose console reads raw input from in.
func NewWithReader(t *testing.T, in io.Reader) *Suite {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	output := &bytes.Buffer{}

	return &Suite{
		T:       t,
		Logger:  logger,
		Random:  rand.New(rand.NewSource(seed)), //nolint: gosec // deterministic test games
		Console: console.New(logger, in, output, false),
		Output:  output,
	}
}

// Lines returns the console output split into lines.
func (that *Suite) Lines() []string {
	return strings.Split(strings.TrimRight(that.Output.String(), "\n"), "\n")
}
