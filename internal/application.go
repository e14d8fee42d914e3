package application

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-console/internal/config"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-console/transport/console"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays a single game reading answers from in and drawing to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	renderer := console.NewRenderer(out, console.Options{
		Color:       !conf.Console.NoColor,
		ClearScreen: conf.Console.ClearScreen,
	})
	input := console.NewInput(in, out)

	gameUseCase := usecase.NewGameUseCase(logger, renderer, input)

	// the loop blocks on input reads, so it runs apart from signal handling
	type playResult struct {
		game entity.Game
		err  error
	}

	resultCh := make(chan playResult, 1)
	go func() {
		game, err := gameUseCase.Play(ctx)
		resultCh <- playResult{game: game, err: err}
	}()

	select {
	case res := <-resultCh:
		if res.err != nil && ctx.Err() != nil {
			log.Info("Application context canceled, shutting down", "moves", res.game.MoveCount)
			return nil
		}

		if res.err != nil {
			return fmt.Errorf("game interrupted: %w", res.err)
		}

		log.Info("Application finished", "outcome", res.game.Outcome(), "moves", res.game.MoveCount)

		return nil
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
