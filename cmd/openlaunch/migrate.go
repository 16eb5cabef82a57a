package main

import (
	"os"

	"github.com/spf13/cobra"

	"openlaunch/config"
	"openlaunch/internal/repository/postgres"
)

func cmdMigrate(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the database schema",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.Migrate(config.NewLogger(os.Stdout, cfg), cfg.DBUrl)
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return postgres.MigrateDown(config.NewLogger(os.Stdout, cfg), cfg.DBUrl)
		},
	})
	return cmd
}
