package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/artem13815/resumeparser/pkg/config"
	"github.com/artem13815/resumeparser/pkg/security/jwt"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue an admin token for the destructive API endpoints",
	Long:  "Signs an HS256 token with JWT_SECRET and JWT_ISSUER from the environment. The server accepts it in the Authorization header.",
	Args:  cobra.NoArgs,
	RunE:  runToken,
}

var (
	tokenSubject string
	tokenTTL     time.Duration
)

func init() {
	tokenCmd.Flags().StringVar(&tokenSubject, "subject", "operator", "Token subject")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", 0, "Token lifetime (defaults to JWT_TTL_MINUTES)")

	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	if cfg.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	ttl := tokenTTL
	if ttl <= 0 {
		ttl = time.Duration(cfg.JWTTTLMinutes) * time.Minute
	}
	tok, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, ttl).Generate(tokenSubject, true)
	if err != nil {
		return fmt.Errorf("sign token: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), tok)
	return nil
}
