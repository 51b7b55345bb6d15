package config

import (
	"fmt"
	"time"
)

// Defaults for the reference server.
const (
	DefaultServerAddress        = ":8080"
	DefaultServerRequestTimeout = 30 * time.Second
)

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// Address is the TCP address the HTTP server listens on.
	Address string
	// RequestTimeout bounds the handling time of a single inbound request.
	RequestTimeout time.Duration
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := newServerConfig(cfg)
	return serverCfg, serverCfg.validate()
}

func newServerConfig(cfg *StructuredConfig) *ServerConfig {
	serverCfg := &ServerConfig{
		Address:        cfg.Server.Address,
		RequestTimeout: cfg.Server.RequestTimeout,
	}

	if serverCfg.Address == "" {
		serverCfg.Address = DefaultServerAddress
	}
	if serverCfg.RequestTimeout == 0 {
		serverCfg.RequestTimeout = DefaultServerRequestTimeout
	}

	return serverCfg
}
