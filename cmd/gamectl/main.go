package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"gamereviews/backend/internal/config"
	"gamereviews/backend/internal/seed"
	"gamereviews/backend/internal/store"
	"gamereviews/backend/pkg/jwt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gamectl",
		Short: "Admin tooling for the game reviews API",
		Long: `gamectl mints tokens, hashes the admin password and loads
seed data into the configured store.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newTokenCmd(), newHashPasswordCmd(), newSeedCmd())
	return rootCmd
}

func newTokenCmd() *cobra.Command {
	var (
		subject string
		ttl     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a bearer token signed with JWT_SECRET",
		Example: `  # Token for the admin subject, valid for the configured TOKEN_TTL
  gamectl token

  # Short-lived token for a CI job
  gamectl token --subject ci --ttl 15m`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is not set")
			}
			if ttl == 0 {
				ttl = cfg.TokenTTL
			}

			token, err := jwt.GenerateToken(subject, cfg.JWTSecret, ttl)
			if err != nil {
				return errors.Wrap(err, "sign token")
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 0, "token lifetime (default TOKEN_TTL)")
	return cmd
}

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print a bcrypt hash suitable for ADMIN_PASSWORD_HASH",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := bcrypt.GenerateFromPassword([]byte(args[0]), bcrypt.DefaultCost)
			if err != nil {
				return errors.Wrap(err, "hash password")
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(hash))
			return nil
		},
	}
}

func newSeedCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import a TOML or YAML dataset into the configured SQL store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(".")
			if err != nil {
				return err
			}
			if cfg.StoreDriver == "memory" {
				return errors.New("seed needs a SQL store; set STORE_DRIVER and DATABASE_URL")
			}

			s, closeStore, err := store.Open(cfg)
			if err != nil {
				return err
			}
			defer closeStore()

			data, err := seed.Apply(context.Background(), s, file)
			if err != nil {
				return err
			}
			log.Printf("Imported %d games, %d reviews, %d authors.", len(data.Games), len(data.Reviews), len(data.Authors))
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "dataset file (.toml, .yaml); empty loads the built-in data")
	return cmd
}
