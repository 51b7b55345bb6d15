package config

import (
	"fmt"
	"time"
)

// Defaults applied when neither environment, flags, nor the JSON file set a
// value.
const (
	DefaultBaseURL        = "http://localhost:8080"
	DefaultStoragePath    = "grid-keeper.db"
	DefaultHealthInterval = 30 * time.Second
	DefaultRequestTimeout = 10 * time.Second
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the root URL of the remote driver service.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage groups local storage settings for the client.
type ClientStorage struct {
	// Path is the bbolt database file path.
	Path string
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// HealthInterval defines how often the connectivity monitor probes the
	// remote service.
	HealthInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration. Missing values fall back to defaults so a
// bare `grid-client` invocation works out of the box.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			Path: cfg.Storage.Path,
		},
		Workers: ClientWorkers{
			HealthInterval: cfg.Workers.HealthInterval,
		},
	}

	if clientCfg.Adapter.BaseURL == "" {
		clientCfg.Adapter.BaseURL = DefaultBaseURL
	}
	if clientCfg.Adapter.RequestTimeout == 0 {
		clientCfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if clientCfg.Storage.Path == "" {
		clientCfg.Storage.Path = DefaultStoragePath
	}
	if clientCfg.Workers.HealthInterval == 0 {
		clientCfg.Workers.HealthInterval = DefaultHealthInterval
	}

	return clientCfg
}
