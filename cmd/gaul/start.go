package main

import (
	"github.com/spf13/cobra"

	"github.com/sandevgo/gaulbot/pkg/log"
	"github.com/sandevgo/gaulbot/pkg/srv"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the bot and learn from incoming chats",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		services, err := NewServices(ctx)
		if err != nil {
			return err
		}

		srv.StartServices(ctx, services)
		log.FromCtx(ctx).Info().Msg("all services started")

		srv.ShutdownServices(ctx, services)
		log.FromCtx(ctx).Info().Msg("shutdown complete")
		return nil
	},
}
