package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"openlaunch/config"
)

// @title OpenLaunch API
// @version 1.0
// @description Project launches, upvotes, comments and articles with offset and cursor pagination.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cfg := &config.Config{}

	rootCmd := &cobra.Command{
		Use:           "openlaunch",
		Short:         "OpenLaunch API server and tooling",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			*cfg = *loaded
			return nil
		},
	}
	rootCmd.AddCommand(cmdServe(cfg))
	rootCmd.AddCommand(cmdMigrate(cfg))
	rootCmd.AddCommand(cmdToken(cfg))
	return rootCmd
}
