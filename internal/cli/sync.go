package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/models"
)

var errSyncFailed = errors.New("one or more sync runs failed")

func newSyncCmd(ro *rootOptions) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "sync [user-id]",
		Short: "Ingest a user's solutions repository",
		Long: `Runs one sync for the given user: lists the linked repository,
classifies every file and upserts the accepted solutions.
With --all, every user with a linked repository is synced in turn.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if all {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return ro.withRuntime(cmd, func(ctx context.Context, rt *Runtime, log *logger.Logger) error {
				var users []int64
				if all {
					linked, err := rt.Credentials.ListLinkedUsers(ctx)
					if err != nil {
						return fmt.Errorf("list linked users: %w", err)
					}
					users = linked
				} else {
					id, err := parseUserID(args[0])
					if err != nil {
						return err
					}
					users = []int64{id}
				}

				failed := 0
				for _, userID := range users {
					result, err := rt.Services.SyncService.Sync(ctx, userID)
					printSyncResult(cmd, userID, result, err)
					if err != nil {
						log.Debug().Err(err).Int64("user_id", userID).Msg("sync failed")
						failed++
					}
				}

				if failed > 0 {
					return fmt.Errorf("%w: %d of %d", errSyncFailed, failed, len(users))
				}
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Sync every user with a linked repository")

	return cmd
}

func printSyncResult(cmd *cobra.Command, userID int64, result models.SyncResult, err error) {
	if err != nil {
		cmd.Printf("user %d: sync failed: %v\n", userID, err)
		return
	}

	var placeholders, unsaved int
	for _, f := range result.Failed {
		if f.Stored {
			placeholders++
		} else {
			unsaved++
		}
	}

	cmd.Printf("user %d: %d submissions synced", userID, result.Count)
	if placeholders > 0 {
		cmd.Printf(", %d stored as placeholder", placeholders)
	}
	if unsaved > 0 {
		cmd.Printf(", %d not stored", unsaved)
	}
	cmd.Println()

	for _, f := range result.Failed {
		cmd.Printf("  ! %s: %s\n", f.Path, f.Reason)
	}
}
