package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/mock"
	"github.com/MKhiriev/algo-sync/internal/service"
	"github.com/MKhiriev/algo-sync/internal/utils"
	"github.com/MKhiriev/algo-sync/models"
)

type cliFixture struct {
	sync        *mock.MockSyncService
	settings    *mock.MockSettingsService
	credentials *mock.MockCredentialRepository

	migrateErr error
	migrated   bool
	closed     bool
	configPath string
	cfg        *config.StructuredConfig
}

func newFixture(t *testing.T) *cliFixture {
	ctrl := gomock.NewController(t)
	return &cliFixture{
		sync:        mock.NewMockSyncService(ctrl),
		settings:    mock.NewMockSettingsService(ctrl),
		credentials: mock.NewMockCredentialRepository(ctrl),
		cfg: &config.StructuredConfig{App: config.App{
			TokenSignKey: "cli-sign-key",
			TokenIssuer:  "algo-sync",
		}},
	}
}

func (f *cliFixture) options() Options {
	return Options{
		BuildInfo: models.NewAppBuildInfo("1.0.0", "2026-01-02", "abc123"),
		LoadConfig: func(path string) (*config.StructuredConfig, error) {
			f.configPath = path
			return f.cfg, nil
		},
		Bootstrap: func(context.Context, *config.StructuredConfig, *logger.Logger) (*Runtime, error) {
			return &Runtime{
				Services: &service.Services{
					SyncService:     f.sync,
					SettingsService: f.settings,
				},
				Credentials: f.credentials,
				Migrate: func() error {
					f.migrated = true
					return f.migrateErr
				},
				Close: func() error {
					f.closed = true
					return nil
				},
			}, nil
		},
	}
}

func execute(t *testing.T, opts Options, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd(opts)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, newFixture(t).options(), "version")

	require.NoError(t, err)
	assert.Contains(t, out, "algosyncctl version 1.0.0")
	assert.Contains(t, out, "abc123")
}

func TestVersionCmd_UnsetBuildInfo(t *testing.T) {
	opts := newFixture(t).options()
	opts.BuildInfo = models.AppBuildInfo{}

	out, err := execute(t, opts, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "algosyncctl version N/A")
}

func TestMigrateCmd(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, f.options(), "migrate", "--config", "/etc/algo-sync.json")

	require.NoError(t, err)
	assert.True(t, f.migrated)
	assert.True(t, f.closed)
	assert.Equal(t, "/etc/algo-sync.json", f.configPath)
	assert.Contains(t, out, "Migrations applied.")
}

func TestMigrateCmd_Error(t *testing.T) {
	f := newFixture(t)
	f.migrateErr = errors.New("dirty database")

	_, err := execute(t, f.options(), "migrate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "dirty database")
	assert.True(t, f.closed)
}

func TestConfigLoadError(t *testing.T) {
	opts := newFixture(t).options()
	opts.LoadConfig = func(string) (*config.StructuredConfig, error) {
		return nil, config.ErrInvalidAppConfigs
	}

	_, err := execute(t, opts, "migrate")

	require.ErrorIs(t, err, config.ErrInvalidAppConfigs)
}

func TestSyncCmd_SingleUser(t *testing.T) {
	f := newFixture(t)
	f.sync.EXPECT().Sync(gomock.Any(), int64(7)).Return(models.SyncResult{
		Success: true,
		Count:   10,
		Failed:  []models.FailedItem{{Path: "백준/Gold/2. B/b.cpp", Reason: "404", Stored: true}},
	}, nil)

	out, err := execute(t, f.options(), "sync", "7")

	require.NoError(t, err)
	assert.Contains(t, out, "user 7: 10 submissions synced, 1 stored as placeholder\n")
	assert.Contains(t, out, "! 백준/Gold/2. B/b.cpp: 404")
}

func TestSyncCmd_SeparatesPlaceholdersFromUnsaved(t *testing.T) {
	f := newFixture(t)
	f.sync.EXPECT().Sync(gomock.Any(), int64(7)).Return(models.SyncResult{
		Success: true,
		Count:   9,
		Failed: []models.FailedItem{
			{Path: "백준/Gold/2. B/b.cpp", Reason: "404", Stored: true},
			{Path: "백준/Gold/3. C/c.cpp", Reason: "store: failed to execute statement"},
		},
	}, nil)

	out, err := execute(t, f.options(), "sync", "7")

	require.NoError(t, err)
	assert.Contains(t, out, "user 7: 9 submissions synced, 1 stored as placeholder, 1 not stored\n")
	assert.Contains(t, out, "! 백준/Gold/3. C/c.cpp: store: failed to execute statement")
}

func TestSyncCmd_All(t *testing.T) {
	f := newFixture(t)
	f.credentials.EXPECT().ListLinkedUsers(gomock.Any()).Return([]int64{1, 2}, nil)
	gomock.InOrder(
		f.sync.EXPECT().Sync(gomock.Any(), int64(1)).Return(models.SyncResult{Success: true, Count: 3}, nil),
		f.sync.EXPECT().Sync(gomock.Any(), int64(2)).Return(models.SyncResult{}, service.ErrNoCredentials),
	)

	out, err := execute(t, f.options(), "sync", "--all")

	require.ErrorIs(t, err, errSyncFailed)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Contains(t, out, "user 1: 3 submissions synced")
	assert.Contains(t, out, "user 2: sync failed")
}

func TestSyncCmd_Args(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "no user", args: []string{"sync"}},
		{name: "user and all", args: []string{"sync", "--all", "3"}},
		{name: "non numeric user", args: []string{"sync", "alice"}},
		{name: "zero user", args: []string{"sync", "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, newFixture(t).options(), tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestSetRepositoryCmd(t *testing.T) {
	f := newFixture(t)
	f.settings.EXPECT().SaveRepository(gomock.Any(), int64(5), "ghp_flag", "alice/algorithms").
		Return(models.RepositoryRef{Owner: "alice", Name: "algorithms"}, nil)

	out, err := execute(t, f.options(), "set-repository", "5", "alice/algorithms", "--token", "ghp_flag")

	require.NoError(t, err)
	assert.Contains(t, out, "Linked repository alice/algorithms to user 5.")
	assert.NotContains(t, out, "ghp_flag")
}

func TestSetRepositoryCmd_TokenFromEnv(t *testing.T) {
	t.Setenv(tokenEnv, "ghp_env")
	f := newFixture(t)
	f.settings.EXPECT().SaveRepository(gomock.Any(), int64(5), "ghp_env", "alice/algorithms").
		Return(models.RepositoryRef{Owner: "alice", Name: "algorithms"}, nil)

	_, err := execute(t, f.options(), "set-repository", "5", "alice/algorithms")

	require.NoError(t, err)
}

func TestSetRepositoryCmd_ServiceError(t *testing.T) {
	f := newFixture(t)
	f.settings.EXPECT().SaveRepository(gomock.Any(), int64(5), gomock.Any(), "nope").
		Return(models.RepositoryRef{}, service.ErrInvalidRepository)

	_, err := execute(t, f.options(), "set-repository", "5", "nope", "--token", "t")

	require.ErrorIs(t, err, service.ErrInvalidRepository)
}

func TestTokenCmd(t *testing.T) {
	f := newFixture(t)

	out, err := execute(t, f.options(), "token", "9", "--ttl", "1h")
	require.NoError(t, err)

	parsed, err := utils.ValidateAndParseJWTToken(trimNewline(out), "cli-sign-key", "algo-sync")
	require.NoError(t, err)
	assert.Equal(t, int64(9), parsed.UserID)

	exp, err := parsed.Token.Claims.GetExpirationTime()
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp.Time, time.Minute)
}

func trimNewline(s string) string {
	return string(bytes.TrimSpace([]byte(s)))
}
