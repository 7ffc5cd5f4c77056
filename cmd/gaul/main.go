package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sandevgo/gaulbot/internal/config"
	"github.com/sandevgo/gaulbot/pkg/log"
)

func main() {
	ctx, flush := log.NewContextWithLogger(context.Background(), config.IsDebug())
	defer flush()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("command failed")
		flush()
		os.Exit(1)
	}
}
