package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/Aaron1234413/rallylife-ace-arena-sub008/internal/auth"
)

const defaultTokenTTL = time.Hour

func newTokenCmd() *cobra.Command {
	token := &cobra.Command{
		Use:   "token",
		Short: "Access token helpers for local development",
	}

	sign := &cobra.Command{
		Use:   "sign",
		Short: "Sign an HS256 access token with JWT_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			secret := os.Getenv("JWT_SECRET")
			if secret == "" {
				return errors.New("JWT_SECRET is not set")
			}

			subject, _ := cmd.Flags().GetString("subject")
			if subject == "" {
				subject = uuid.NewString()
			} else if _, err := uuid.Parse(subject); err != nil {
				return fmt.Errorf("subject must be a UUID: %w", err)
			}
			ttl, _ := cmd.Flags().GetDuration("ttl")

			signed, err := auth.Sign(secret, os.Getenv("JWT_ISSUER"), subject, ttl)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), signed)
			return err
		},
	}
	sign.Flags().String("subject", "", "Player ID to embed (random when empty)")
	sign.Flags().Duration("ttl", defaultTokenTTL, "Token lifetime")

	token.AddCommand(sign)
	return token
}
