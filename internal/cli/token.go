package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/algo-sync/internal/utils"
)

const defaultTokenTTL = 24 * time.Hour

// newTokenCmd issues an API token signed with the server's key. It is meant
// for operators and local development; end users get tokens from the
// authentication service.
func newTokenCmd(ro *rootOptions) *cobra.Command {
	var ttl time.Duration

	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Issue a bearer token for the HTTP API",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}

			cfg, err := ro.config()
			if err != nil {
				return err
			}

			token, err := utils.GenerateJWTToken(cfg.App.TokenIssuer, userID, ttl, cfg.App.TokenSignKey)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), token.SignedString)
			return err
		},
	}
	cmd.Flags().DurationVar(&ttl, "ttl", defaultTokenTTL, "Token lifetime")

	return cmd
}
