package main

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"openlaunch/config"
	"openlaunch/internal/adapters/auth"
)

func cmdToken(cfg *config.Config) *cobra.Command {
	var (
		userID string
		email  string
		ttl    time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Sign a JWT for local testing of authenticated endpoints",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cfg.IsProduction() {
				return fmt.Errorf("refusing to mint tokens in production")
			}
			if userID == "" {
				return fmt.Errorf("must specify --user to sign a JWT")
			}
			id, err := uuid.Parse(userID)
			if err != nil {
				return fmt.Errorf("--user must be a user UUID: %w", err)
			}
			token, err := auth.NewJWTIssuer(cfg.JWTSecret).Issue(id.String(), email, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID to put in the token subject")
	cmd.Flags().StringVar(&email, "email", "", "Email claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "Token lifetime")
	return cmd
}
