package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rocketscienceinc/nttt/internal/config"
	"github.com/rocketscienceinc/nttt/pkg/apperror"
	"github.com/rocketscienceinc/nttt/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newConfig(size int, starting string) *config.Config {
	return &config.Config{
		LogLevel: "debug",
		Game:     config.Game{Size: size, Starting: starting},
	}
}

func TestRun(t *testing.T) {
	t.Run("Plays a scripted game to a diagonal win", func(t *testing.T) {
		// Given: a script where x takes the forward diagonal
		ctx, st := suite.New(t)
		script := strings.Join([]string{
			"# x opens in the center",
			"mark 1 1",
			"mark 1 0",
			"",
			"mark 0 0",
			"mark 0 2",
			"mark 2 2",
			"state",
			"mark 2 0",
			"undo",
			"state",
		}, "\n")
		var out strings.Builder

		// When: running the application
		err := Run(ctx, st.Logger, newConfig(3, "x"), strings.NewReader(script), &out)

		// Then: every command produced output in order
		require.NoError(t, err)
		output := out.String()
		assert.Contains(t, output, "x wins\n")
		assert.Contains(t, output, "error: invalid turn: "+apperror.ErrGameOver.Error())
		assert.True(t, strings.HasSuffix(output, "x to move\n"), output)
		assert.Contains(t, st.Logs.String(), `"msg":"command failed"`)
	})

	t.Run("Reports malformed commands and continues", func(t *testing.T) {
		ctx, st := suite.New(t)
		var out strings.Builder

		err := Run(ctx, st.Logger, newConfig(2, "o"), strings.NewReader("fly\nmark 9\nstate\n"), &out)

		require.NoError(t, err)
		lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
		assert.Equal(t, "o to move", lines[len(lines)-1])
		assert.Contains(t, out.String(), "error: unknown command")
		assert.Contains(t, out.String(), "error: invalid command")
	})

	t.Run("Prints the initial board", func(t *testing.T) {
		ctx, st := suite.New(t)
		var out strings.Builder

		err := Run(ctx, st.Logger, newConfig(1, "x"), strings.NewReader(""), &out)

		require.NoError(t, err)
		assert.Equal(t, "   \n", out.String())
	})

	t.Run("Stops when the context is canceled", func(t *testing.T) {
		ctx, st := suite.New(t)
		ctx, cancel := context.WithCancel(ctx)
		cancel()
		var out strings.Builder

		err := Run(ctx, st.Logger, newConfig(1, "x"), strings.NewReader("mark 0 0\n"), &out)

		require.NoError(t, err)
		assert.Equal(t, "   \n", out.String())
	})

	t.Run("Returns an error for an invalid config", func(t *testing.T) {
		ctx, st := suite.New(t)

		err := Run(ctx, st.Logger, newConfig(-1, "x"), strings.NewReader(""), &strings.Builder{})
		require.ErrorIs(t, err, apperror.ErrInvalidSize)

		err = Run(ctx, st.Logger, newConfig(3, "?"), strings.NewReader(""), &strings.Builder{})
		require.ErrorIs(t, err, apperror.ErrInvalidToken)
	})

	t.Run("Returns write errors", func(t *testing.T) {
		ctx, st := suite.New(t)

		err := Run(ctx, st.Logger, newConfig(3, "x"), strings.NewReader(""), failingWriter{})
		require.ErrorIs(t, err, errWrite)
	})
}

var errWrite = errors.New("write failed")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errWrite
}
