package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CredentialKey: "credential-secret",
			TokenSignKey:  "jwt-secret",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/algosync"}},
	}
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	cfg, err := newConfigBuilder().
		with(validConfig()).
		with(&StructuredConfig{App: App{Version: "1.0.0", TokenSignKey: "ignored"}}).
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "jwt-secret", cfg.App.TokenSignKey)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	cfg, err := newConfigBuilder().with(validConfig()).withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, VaultAES, cfg.App.CredentialVault)
	assert.Equal(t, DriverPostgres, cfg.Storage.DB.Driver)
	assert.Equal(t, "HEAD", cfg.Adapter.Branch)
	assert.Equal(t, "https://api.github.com/", cfg.Adapter.GitHubAPIURL)
	assert.Equal(t, 4, cfg.Workers.SyncConcurrency)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Zero(t, cfg.Workers.SyncInterval)
}

// ── sources ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-no-such-flag"})
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder().with(&StructuredConfig{}).withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "json-version"},
	})

	b := newConfigBuilder().with(&StructuredConfig{JSONFilePath: path}).withJSON()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder().with(&StructuredConfig{JSONFilePath: "/nonexistent/config.json"}).withJSON()
	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestLoadStructuredConfig_EnvAndJSON(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"credential_key": "json-key", "token_sign_key": "json-jwt"},
		"storage": map[string]any{"db": map[string]any{"driver": "sqlite3", "dsn": "file::memory:"}},
	})
	t.Setenv("APP_CREDENTIAL_KEY", "env-key")

	cfg, err := LoadStructuredConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.App.CredentialKey)
	assert.Equal(t, "json-jwt", cfg.App.TokenSignKey)
	assert.Equal(t, DriverSQLite, cfg.Storage.DB.Driver)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{
			name:    "aes without key",
			mutate:  func(cfg *StructuredConfig) { cfg.App.CredentialKey = "" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "age without identity",
			mutate:  func(cfg *StructuredConfig) { cfg.App.CredentialVault = VaultAge },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown vault",
			mutate:  func(cfg *StructuredConfig) { cfg.App.CredentialVault = "rot13" },
			wantErr: ErrInvalidAppConfigs,
		},
		{
			name:    "unknown driver",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.Driver = "mysql" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "bad api url",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.GitHubAPIURL = "not a url" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero rps",
			mutate:  func(cfg *StructuredConfig) { cfg.Adapter.RequestsPerSecond = -1 },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "zero concurrency",
			mutate:  func(cfg *StructuredConfig) { cfg.Workers.SyncConcurrency = -2 },
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			require.NoError(t, mergeDefaults(cfg))
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func mergeDefaults(cfg *StructuredConfig) error {
	b := newConfigBuilder().with(cfg).withDefaults()
	merged, err := b.build()
	if err != nil {
		return err
	}
	*cfg = *merged
	return nil
}
