package app

import (
	"io"
	"log/slog"

	"github.com/vk/scaffoldgo/internal/venv"
)

// App encapsulates the application's dependencies and lifecycle. User-facing
// report lines go to outW; diagnostics go through the logger.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	runner venv.Runner
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. A nil runner
// selects the real subprocess runner; tests pass a fake.
func NewApp(outW, logW io.Writer, cfg *Config, runner venv.Runner) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if runner == nil {
		runner = venv.ExecRunner{}
	}
	return &App{
		outW:   outW,
		logger: logger,
		runner: runner,
	}
}
