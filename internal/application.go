package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rocketscienceinc/noughts-and-crosses/internal/config"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/service"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/transport/console"
	"github.com/rocketscienceinc/noughts-and-crosses/internal/usecase"
)

// RunApp - runs one game session on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	seed := conf.AI.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Debug("random source seeded", "seed", seed)

	rnd := rand.New(rand.NewSource(seed)) //nolint: gosec // game moves, not secrets
	ui := console.New(logger, os.Stdin, os.Stdout, !conf.Render.NoColor)
	session := usecase.NewGameSession(logger, ui, service.NewBotFactory(rnd), conf.Debug)

	// run the session; stdin reads cannot be interrupted, so a signal wins the race below
	sessionErrCh := make(chan error, 1)
	go func() {
		_, err := session.Run(ctx)
		sessionErrCh <- err
	}()

	select {
	case err := <-sessionErrCh:
		if errors.Is(err, io.EOF) {
			ui.Say("Input closed, goodbye.")
			log.Info("Input closed before the game finished")
			return nil
		}
		if err != nil {
			return fmt.Errorf("session error: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
