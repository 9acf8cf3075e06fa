package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/runplot/pkg/config/env"
)

func main() {
	if err := env.LoadDotEnv(".env"); err != nil {
		slog.Error("Failed to load environment", "error", err)
		os.Exit(1)
	}
	env.SetupLogging()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		slog.Error("runplot failed", "error", err)
		stop()
		os.Exit(1)
	}
}
