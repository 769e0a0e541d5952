// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// client and the stub backend. It aggregates all sub-configurations and is
// populated by merging defaults, an optional JSON file, environment variables
// and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the local session database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds settings of the stub wallet backend.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of the client transport talking to the wallet
	// backend.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds wallet polling and background refresh settings.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds process-level configuration values.
type App struct {
	// LogPath is the file the client appends its log entries to.
	// Env: APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "wallet.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds settings of the stub wallet backend.
type Server struct {
	// HTTPAddress is the TCP address the backend listens on, in "host:port"
	// format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// TokenSignKey signs the user tokens issued by the backend.
	// Env: SERVER_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued user tokens.
	// Env: SERVER_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is how long a user token stays valid before wallet
	// requests answer with the token-expired error code.
	// Env: SERVER_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// WalletCreationDelay is how long after user provisioning the user's
	// wallets stay invisible (the wallet list is empty meanwhile).
	// Env: SERVER_WALLET_CREATION_DELAY
	WalletCreationDelay time.Duration `env:"WALLET_CREATION_DELAY"`
}

// Adapter holds settings of the client transport.
type Adapter struct {
	// HTTPAddress is the base URL of the wallet backend
	// (e.g. "http://localhost:3000").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds each outbound request. Zero means no deadline.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds wallet polling and background refresh settings.
type Workers struct {
	// PollInterval is the delay between wallet list requests while the list
	// is still empty.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// MaxPollAttempts caps the empty-list poll. Zero polls until the list is
	// non-empty.
	// Env: WORKERS_MAX_POLL_ATTEMPTS
	MaxPollAttempts int `env:"MAX_POLL_ATTEMPTS"`

	// RefreshInterval is the period of the background wallet refresh job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

const (
	defaultAdapterAddress      = "http://localhost:3000"
	defaultServerAddress       = "localhost:3000"
	defaultDSN                 = "wallet.db"
	defaultPollInterval        = time.Second
	defaultRefreshInterval     = 30 * time.Second
	defaultTokenIssuer         = "w3s-stub-backend"
	defaultTokenDuration       = time.Hour
	defaultWalletCreationDelay = 3 * time.Second
	defaultServerTimeout       = 30 * time.Second
)

// defaults returns the lowest-priority configuration layer.
func defaults() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{DB: DB{DSN: defaultDSN}},
		Server: Server{
			HTTPAddress:         defaultServerAddress,
			RequestTimeout:      defaultServerTimeout,
			TokenIssuer:         defaultTokenIssuer,
			TokenDuration:       defaultTokenDuration,
			WalletCreationDelay: defaultWalletCreationDelay,
		},
		Adapter: Adapter{HTTPAddress: defaultAdapterAddress},
		Workers: Workers{
			PollInterval:    defaultPollInterval,
			RefreshInterval: defaultRefreshInterval,
		},
	}
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. flagCfg holds the values bound by [RegisterFlags] after the flag
// set has been parsed; it may be nil.
func GetStructuredConfig(flagCfg *StructuredConfig) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(flagCfg).
		build()
}
