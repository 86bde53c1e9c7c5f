package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/algo-sync/internal/logger"
)

func newMigrateCmd(ro *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return ro.withRuntime(cmd, func(_ context.Context, rt *Runtime, log *logger.Logger) error {
				if err := rt.Migrate(); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				log.Debug().Msg("migrations applied")
				cmd.Println("Migrations applied.")
				return nil
			})
		},
	}
}
