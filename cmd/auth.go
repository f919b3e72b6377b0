package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/worklog/agenda/internal/config"
	"github.com/worklog/agenda/internal/google"
	"github.com/worklog/agenda/internal/logging"
)

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Run the interactive authorization flow",
		Long: `Run the browser-based OAuth2 authorization flow and persist the
resulting token, replacing any existing one.

Other commands authorize on demand; use this to re-consent explicitly,
for example after changing scopes or revoking access.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(logLevel)

			cfg, err := config.Load()
			if err != nil {
				return err
			}

			conf, err := google.NewOAuthConfig(cfg.ClientSecretPath)
			if err != nil {
				return err
			}

			tok, err := google.NewBrowserFlow(conf).Token(cmd.Context())
			if err != nil {
				return fmt.Errorf("authorization failed: %w", err)
			}
			if err := google.SaveToken(cfg.TokenPath, tok); err != nil {
				return fmt.Errorf("failed to persist token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token saved to %s\n", cfg.TokenPath)
			return nil
		},
	}

	return cmd
}
