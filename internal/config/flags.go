package config

import (
	"flag"
	"time"
)

// parseServerFlags parses server configuration flags from args.
//
// Flags:
//
//	-a server address in [host]:[port] form
//	-d database DSN
//	-c/-config json config file path
//	-token-sign-key token verification key
//	-token-issuer expected token issuer
//	-token-duration dev-token validity (e.g. "1h")
//	-request-timeout inbound request timeout (e.g. "30s")
func parseServerFlags(args []string) *StructuredConfig {
	fs := flag.NewFlagSet("flashdeck-server", flag.ContinueOnError)

	var (
		serverAddress  string
		databaseDSN    string
		jsonConfigPath string
		tokenSignKey   string
		tokenIssuer    string
		tokenDuration  time.Duration
		requestTimeout time.Duration
	)

	fs.StringVar(&serverAddress, "a", "", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&tokenSignKey, "token-sign-key", "", "Token verification key")
	fs.StringVar(&tokenIssuer, "token-issuer", "", "Expected token issuer")
	fs.DurationVar(&tokenDuration, "token-duration", 0, "Dev token duration (e.g., 1h)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s)")

	// unknown flags are a startup mistake worth surfacing, but a parse
	// failure must not discard the values that did parse
	_ = fs.Parse(args)

	return &StructuredConfig{
		App: App{
			TokenSignKey:  tokenSignKey,
			TokenIssuer:   tokenIssuer,
			TokenDuration: tokenDuration,
		},
		Storage: Storage{
			DB: DB{DSN: databaseDSN},
		},
		Server: Server{
			HTTPAddress:    serverAddress,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// parseClientFlags parses client configuration flags from args.
//
// Flags:
//
//	-s server base URL
//	-b local store backend ("file" or "sqlite")
//	-p local store path (JSON document or SQLite DSN)
//	-c/-config json config file path
//	-request-timeout outbound request timeout
func parseClientFlags(args []string) *ClientConfig {
	fs := flag.NewFlagSet("flashdeck-client", flag.ContinueOnError)

	var (
		serverURL      string
		localBackend   string
		localPath      string
		jsonConfigPath string
		requestTimeout time.Duration
	)

	fs.StringVar(&serverURL, "s", "", "Server base URL")
	fs.StringVar(&localBackend, "b", "", "Local store backend (file|sqlite)")
	fs.StringVar(&localPath, "p", "", "Local store path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")

	_ = fs.Parse(args)

	return &ClientConfig{
		Local: Local{
			Backend: localBackend,
			Path:    localPath,
		},
		Adapter: Adapter{
			ServerURL:      serverURL,
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}
}
