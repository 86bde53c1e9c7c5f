// Package cli implements algosyncctl, the operator command line for
// algo-sync. It shares the server's configuration and composition root, so
// a command run here behaves exactly like the same operation over HTTP.
package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/algo-sync/internal/app"
	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/service"
	"github.com/MKhiriev/algo-sync/internal/store"
	"github.com/MKhiriev/algo-sync/models"
)

// Runtime is the wired process a command operates on.
type Runtime struct {
	Services    *service.Services
	Credentials store.CredentialRepository
	Migrate     func() error
	Close       func() error
}

// Bootstrap builds a [Runtime] from a loaded configuration.
type Bootstrap func(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Runtime, error)

// Options configures [NewRootCmd]. Zero fields fall back to the production
// implementations.
type Options struct {
	BuildInfo  models.AppBuildInfo
	LoadConfig func(path string) (*config.StructuredConfig, error)
	Bootstrap  Bootstrap
}

// DefaultBootstrap opens the configured database and wires the services.
func DefaultBootstrap(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Runtime, error) {
	a, err := app.New(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Runtime{
		Services:    a.Services,
		Credentials: a.Storages.CredentialRepository,
		Migrate:     a.DB.Migrate,
		Close:       a.Close,
	}, nil
}

type rootOptions struct {
	Options
	configPath string
	verbose    bool
}

// NewRootCmd builds the algosyncctl command tree.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.LoadConfig == nil {
		opts.LoadConfig = config.LoadStructuredConfig
	}
	if opts.Bootstrap == nil {
		opts.Bootstrap = DefaultBootstrap
	}
	ro := &rootOptions{Options: opts}

	root := &cobra.Command{
		Use:           "algosyncctl",
		Short:         "Operate an algo-sync deployment",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&ro.configPath, "config", "c", "", "JSON config file path")
	root.PersistentFlags().BoolVarP(&ro.verbose, "verbose", "v", false, "Enable debug logging")

	root.AddCommand(
		newMigrateCmd(ro),
		newSyncCmd(ro),
		newSetRepositoryCmd(ro),
		newTokenCmd(ro),
		newVersionCmd(ro),
	)

	return root
}

func (ro *rootOptions) logger(cmd *cobra.Command) *logger.Logger {
	return logger.NewConsoleLogger("algosyncctl", cmd.ErrOrStderr(), ro.verbose)
}

func (ro *rootOptions) config() (*config.StructuredConfig, error) {
	cfg, err := ro.LoadConfig(ro.configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// withRuntime loads the configuration, bootstraps a runtime for the
// duration of fn and closes it afterwards.
func (ro *rootOptions) withRuntime(cmd *cobra.Command, fn func(ctx context.Context, rt *Runtime, log *logger.Logger) error) error {
	cfg, err := ro.config()
	if err != nil {
		return err
	}

	log := ro.logger(cmd)
	ctx := log.WithContext(cmd.Context())

	rt, err := ro.Bootstrap(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer func() {
		if err := rt.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing runtime")
		}
	}()

	return fn(ctx, rt, log)
}

func parseUserID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %q", service.ErrInvalidUserID, raw)
	}
	return id, nil
}
