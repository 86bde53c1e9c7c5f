package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/algo-sync/internal/logger"
)

// tokenEnv is read when --token is not given, so the token stays out of
// shell history.
const tokenEnv = "GITHUB_TOKEN"

func newSetRepositoryCmd(ro *rootOptions) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "set-repository <user-id> <owner/name>",
		Short: "Link a solutions repository and access token to a user",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseUserID(args[0])
			if err != nil {
				return err
			}
			if token == "" {
				token = os.Getenv(tokenEnv)
			}

			return ro.withRuntime(cmd, func(ctx context.Context, rt *Runtime, _ *logger.Logger) error {
				ref, err := rt.Services.SettingsService.SaveRepository(ctx, userID, token, args[1])
				if err != nil {
					return err
				}
				cmd.Printf("Linked repository %s to user %d.\n", ref, userID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&token, "token", "", "Repository access token (default $"+tokenEnv+")")

	return cmd
}
