package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the service configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc health server address in format [host]:[port]
//	-d database DSN
//	-db-driver database driver (pgx, sqlite3)
//	-c/-config json file path with configs
//	-credential-key credential vault secret
//	-vault credential vault strategy (aes, age)
//	-token-sign-key token verification key
//	-token-issuer expected token issuer
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-github-api-url repository host API base URL
//	-branch ingested branch
//	-sync-interval periodic sync interval (e.g., "1h")
//	-sync-concurrency parallel file fetches per sync
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("algo-sync", flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var databaseDSN, databaseDriver string
	var jsonConfigPath string
	var credentialKey, vault string
	var tokenSignKey, tokenIssuer string
	var requestTimeout time.Duration
	var githubAPIURL, branch string
	var syncInterval time.Duration
	var syncConcurrency int

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&databaseDriver, "db-driver", "", "Database driver (pgx, sqlite3)")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&credentialKey, "credential-key", "", "Credential vault secret")
	fs.StringVar(&vault, "vault", "", "Credential vault strategy (aes, age)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&githubAPIURL, "github-api-url", "", "Repository host API base URL")
	fs.StringVar(&branch, "branch", "", "Ingested branch")
	fs.DurationVar(&syncInterval, "sync-interval", 0, "Periodic sync interval (e.g., 1h)")
	fs.IntVar(&syncConcurrency, "sync-concurrency", 0, "Parallel file fetches per sync")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	return &StructuredConfig{
		App: App{
			CredentialVault: vault,
			CredentialKey:   credentialKey,
			TokenSignKey:    tokenSignKey,
			TokenIssuer:     tokenIssuer,
		},
		Storage: Storage{
			DB: DB{
				Driver: databaseDriver,
				DSN:    databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Adapter: Adapter{
			GitHubAPIURL: githubAPIURL,
			Branch:       branch,
		},
		Workers: Workers{
			SyncInterval:    syncInterval,
			SyncConcurrency: syncConcurrency,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
