package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
type StructuredJSONConfig struct {
	App struct {
		CredentialVault string `json:"credential_vault"`
		CredentialKey   string `json:"credential_key"`
		AgeIdentity     string `json:"age_identity"`
		TokenSignKey    string `json:"token_sign_key"`
		TokenIssuer     string `json:"token_issuer"`
		Version         string `json:"version"`
	} `json:"app,omitempty"`

	Storage struct {
		DB struct {
			Driver string `json:"driver"`
			DSN    string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		GRPCAddress    string   `json:"grpc_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Adapter struct {
		GitHubAPIURL      string   `json:"github_api_url"`
		GitHubWebURL      string   `json:"github_web_url"`
		Branch            string   `json:"branch"`
		RequestsPerSecond float64  `json:"requests_per_second"`
		SolvedACURL       string   `json:"solvedac_url"`
		RequestTimeout    Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workers struct {
		SyncInterval    Duration `json:"sync_interval"`
		SyncConcurrency int      `json:"sync_concurrency"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			CredentialVault: jsonCfg.App.CredentialVault,
			CredentialKey:   jsonCfg.App.CredentialKey,
			AgeIdentity:     jsonCfg.App.AgeIdentity,
			TokenSignKey:    jsonCfg.App.TokenSignKey,
			TokenIssuer:     jsonCfg.App.TokenIssuer,
			Version:         jsonCfg.App.Version,
		},
		Storage: Storage{
			DB: DB{
				Driver: jsonCfg.Storage.DB.Driver,
				DSN:    jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			GRPCAddress:    jsonCfg.Server.GRPCAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Adapter: Adapter{
			GitHubAPIURL:      jsonCfg.Adapter.GitHubAPIURL,
			GitHubWebURL:      jsonCfg.Adapter.GitHubWebURL,
			Branch:            jsonCfg.Adapter.Branch,
			RequestsPerSecond: jsonCfg.Adapter.RequestsPerSecond,
			SolvedACURL:       jsonCfg.Adapter.SolvedACURL,
			RequestTimeout:    time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workers: Workers{
			SyncInterval:    time.Duration(jsonCfg.Workers.SyncInterval),
			SyncConcurrency: jsonCfg.Workers.SyncConcurrency,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
