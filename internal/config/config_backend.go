package config

import (
	"fmt"
	"time"
)

// BackendConfig is the stub backend's view of [StructuredConfig].
type BackendConfig struct {
	HTTPAddress         string
	RequestTimeout      time.Duration
	TokenSignKey        string
	TokenIssuer         string
	TokenDuration       time.Duration
	WalletCreationDelay time.Duration
}

// GetBackendConfig builds and validates the stub backend configuration.
func GetBackendConfig(flagCfg *StructuredConfig) (*BackendConfig, error) {
	cfg, err := GetStructuredConfig(flagCfg)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newBackendConfig(cfg)
}

func newBackendConfig(cfg *StructuredConfig) (*BackendConfig, error) {
	backendCfg := &BackendConfig{
		HTTPAddress:         cfg.Server.HTTPAddress,
		RequestTimeout:      cfg.Server.RequestTimeout,
		TokenSignKey:        cfg.Server.TokenSignKey,
		TokenIssuer:         cfg.Server.TokenIssuer,
		TokenDuration:       cfg.Server.TokenDuration,
		WalletCreationDelay: cfg.Server.WalletCreationDelay,
	}

	return backendCfg, backendCfg.validate()
}
