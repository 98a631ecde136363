package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/ringgen/internal/app"
	"github.com/specialistvlad/ringgen/internal/cli"
	"github.com/specialistvlad/ringgen/internal/hcl"
)

// main is the entrypoint for the ringgen application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// A .env file may point RINGGEN_NETCONVERT or SUMO_HOME at a SUMO install.
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file found, using system environment.")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Stdout, os.Args[1:])
	stop()

	// The real main function handles errors and exit codes.
	if exitErr := cli.FromRunError(err); exitErr != nil {
		fmt.Fprintln(os.Stderr, exitErr.Message)
		fmt.Fprintln(os.Stderr, "Exiting on error")
		os.Exit(exitErr.Code)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(ctx context.Context, outW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	ringApp := app.NewApp(outW, appConfig, hcl.NewLoader())
	return ringApp.Run(ctx)
}
