package app

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/algo-sync/internal/config"
	"github.com/MKhiriev/algo-sync/internal/logger"
	"github.com/MKhiriev/algo-sync/internal/service"
	"github.com/MKhiriev/algo-sync/models"
)

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())

	return &config.StructuredConfig{
		App: config.App{
			CredentialVault: config.VaultAES,
			CredentialKey:   "test-credential-key",
			TokenSignKey:    "k",
			Version:         "test",
		},
		Storage: config.Storage{DB: config.DB{
			Driver: config.DriverSQLite,
			DSN:    "file:" + name + "?mode=memory&cache=shared",
		}},
		Adapter: config.Adapter{
			GitHubAPIURL:      "https://api.github.com/",
			GitHubWebURL:      "https://github.com",
			RequestsPerSecond: 5,
			SolvedACURL:       "https://solved.ac",
		},
		Workers: config.Workers{SyncConcurrency: 2},
	}
}

func TestNew_WiresServicesOnMigratedDatabase(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, testConfig(t), logger.Nop(), WithMigrations())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	require.NotNil(t, a.Services)
	assert.Equal(t, "test", a.Services.AppInfoService.GetAppVersion(ctx))

	ref, err := a.Services.SettingsService.SaveRepository(ctx, 7, "ghp_secret", "alice/algorithms")
	require.NoError(t, err)
	assert.Equal(t, models.RepositoryRef{Owner: "alice", Name: "algorithms"}, ref)

	cred, err := a.Storages.CredentialRepository.GetCredential(ctx, 7)
	require.NoError(t, err)
	assert.NotContains(t, cred.EncryptedToken, "ghp_secret")

	users, err := a.Storages.CredentialRepository.ListLinkedUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{7}, users)
}

func TestNew_WithoutMigrationsLeavesSchemaAlone(t *testing.T) {
	ctx := context.Background()

	a, err := New(ctx, testConfig(t), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	_, err = a.Storages.CredentialRepository.ListLinkedUsers(ctx)
	assert.Error(t, err)
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.StructuredConfig)
		want   string
	}{
		{
			name:   "unsupported driver",
			mutate: func(c *config.StructuredConfig) { c.Storage.DB.Driver = "mysql" },
			want:   "connect to database",
		},
		{
			name:   "missing vault key",
			mutate: func(c *config.StructuredConfig) { c.App.CredentialKey = "" },
			want:   "create credential vault",
		},
		{
			name:   "missing version",
			mutate: func(c *config.StructuredConfig) { c.App.Version = "" },
			want:   "create services",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig(t)
			tt.mutate(cfg)

			a, err := New(context.Background(), cfg, logger.Nop())
			require.Error(t, err)
			assert.Nil(t, a)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestNew_MissingVersionIsServiceError(t *testing.T) {
	cfg := testConfig(t)
	cfg.App.Version = ""

	_, err := New(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}
