package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/nttt/internal"
	"github.com/rocketscienceinc/nttt/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	conf := initConfig()
	logger := initLogger(conf)

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig() *config.Config {
	baseDir, err := os.Getwd()
	if err != nil {
		panic(fmt.Errorf("failed to get current directory: %w", err))
	}

	return config.MustLoad(filepath.Join(baseDir, "./config.yml"))
}

var errUnknownLogLevel = errors.New("unknown log level")

// initialize logger. Logs go to stderr so the board stays alone on stdout.
func initLogger(conf *config.Config) *slog.Logger {
	return newLogger(os.Stderr, conf.LogLevel)
}

func newLogger(out io.Writer, logLevel string) *slog.Logger {
	level, err := parseLogLevel(logLevel)
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))

	if err != nil {
		logger.Warn("falling back to info logging", "error", err)
	}

	return logger
}

func parseLogLevel(logLevel string) (slog.Level, error) {
	switch logLevel {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("%w: %q", errUnknownLogLevel, logLevel)
	}
}
