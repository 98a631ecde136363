package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/ringgen/internal/config"
	"github.com/specialistvlad/ringgen/internal/netconvert"
)

// Compiler turns plain node and edge files into a network file.
type Compiler interface {
	Compile(ctx context.Context, job netconvert.Job) error
}

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	compiler Compiler
}

// Option customises an App.
type Option func(*App)

// WithCompiler replaces the netconvert subprocess with another Compiler.
func WithCompiler(c Compiler) Option {
	return func(a *App) { a.compiler = c }
}

// NewApp is the constructor for the main application. It returns an App with
// its own isolated logger writing to outW. The loader reads the optional
// parameter file.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, opts ...Option) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}
