package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sandevgo/gaulbot/internal/config"
	"github.com/sandevgo/gaulbot/internal/service/seeder"
	"github.com/sandevgo/gaulbot/internal/service/ui"
)

var seedForce bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Plant the initial knowledge base",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		if err := initEnv(ctx); err != nil {
			return err
		}
		appCfg, err := config.NewAppConfig()
		if err != nil {
			return err
		}

		repo, db, err := newRepository(ctx, appCfg)
		if err != nil {
			return err
		}
		defer db.Close()

		inserted, err := seeder.Seed(ctx, repo, seedForce)
		if err != nil {
			return err
		}

		if inserted == 0 {
			fmt.Println(ui.Muted.Render("Seed knowledge already present, nothing to do."))
		} else {
			fmt.Println(ui.Success.Render(fmt.Sprintf("Seeded %d knowledge items.", inserted)))
		}
		return nil
	},
}

func init() {
	seedCmd.Flags().BoolVar(&seedForce, "force", false, "seed even when system knowledge already exists")
}
