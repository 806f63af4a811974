package application

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rocketscienceinc/nttt/internal/config"
	"github.com/rocketscienceinc/nttt/internal/tictactoe"
	"github.com/rocketscienceinc/nttt/pkg/entity"
)

// RunApp - runs the application on stdin and stdout until EOF or a signal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
			// unblocks the pending read
			_ = os.Stdin.Close()
		case <-ctx.Done():
		}
	}()

	return Run(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Run - plays one game, reading a command per line from in and writing results to out.
func Run(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")

	starting, err := conf.Game.GetStartingToken()
	if err != nil {
		return fmt.Errorf("could not read game config: %w", err)
	}

	game, err := entity.NewGame(starting, conf.Game.Size)
	if err != nil {
		return fmt.Errorf("could not create game: %w", err)
	}

	controller := tictactoe.NewGameController(logger, game)

	log.Info("Starting game", "size", game.Size(), "starting", starting)
	if err = writeLine(out, game.String()); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			log.Info("Application context canceled, shutting down")
			return nil
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		result, cmdErr := execute(controller, line)
		if cmdErr != nil {
			log.Warn("command failed", "command", line, "error", cmdErr)
			result = "error: " + cmdErr.Error()
		}

		if err = writeLine(out, result); err != nil {
			return err
		}
	}

	if ctx.Err() != nil {
		log.Info("Application context canceled, shutting down")
		return nil
	}

	if err = scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}

	log.Info("Input closed, shutting down", "state", game.State().String())

	return nil
}

func execute(controller *tictactoe.GameController, line string) (string, error) {
	cmd, err := tictactoe.ParseCommand(line)
	if err != nil {
		return "", err
	}

	return controller.Execute(cmd)
}

func writeLine(out io.Writer, text string) error {
	if _, err := fmt.Fprintln(out, text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	return nil
}
