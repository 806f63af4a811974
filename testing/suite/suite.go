package suite

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/rocketscienceinc/nttt/pkg/entity"
)

const maxWaitDuration = 10 * time.Second

type Suite struct {
	*testing.T
	Logger *slog.Logger

	// Logs collects everything written through Logger as JSON lines.
	Logs *bytes.Buffer
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logs := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return ctx, &Suite{
		T:      t,
		Logger: logger,
		Logs:   logs,
	}
}

// NewGame creates a game or fails the test.
func (that *Suite) NewGame(starting entity.Token, size int) *entity.Game {
	that.Helper()

	game, err := entity.NewGame(starting, size)
	if err != nil {
		that.Fatalf("could not create game: %v", err)
	}

	return game
}
