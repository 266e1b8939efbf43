package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger = slog.New(slog.NewJSONHandler(os.Stdout, nil))

// Init configures the global JSON logger. LOG_LEVEL=debug raises verbosity.
func Init() {
	level := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
