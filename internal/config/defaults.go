package config

import "time"

// Vault strategies accepted in App.CredentialVault.
const (
	VaultAES = "aes"
	VaultAge = "age"
)

// Database drivers accepted in Storage.DB.Driver.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			CredentialVault: VaultAES,
			Version:         "dev",
		},
		Storage: Storage{
			DB: DB{Driver: DriverPostgres},
		},
		Server: Server{
			HTTPAddress:    "localhost:8080",
			RequestTimeout: 2 * time.Minute,
		},
		Adapter: Adapter{
			GitHubAPIURL:      "https://api.github.com/",
			GitHubWebURL:      "https://github.com",
			Branch:            "HEAD",
			RequestsPerSecond: 10,
			SolvedACURL:       "https://solved.ac",
			RequestTimeout:    30 * time.Second,
		},
		Workers: Workers{
			SyncConcurrency: 4,
		},
	}
}
