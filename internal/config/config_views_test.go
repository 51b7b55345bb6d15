package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClientConfig_Defaults(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{})

	assert.Equal(t, DefaultBaseURL, cfg.Adapter.BaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultStoragePath, cfg.Storage.Path)
	assert.Equal(t, DefaultHealthInterval, cfg.Workers.HealthInterval)

	require.NoError(t, cfg.validate())
}

func TestNewClientConfig_ExplicitValuesWin(t *testing.T) {
	cfg := newClientConfig(&StructuredConfig{
		Adapter: Adapter{
			BaseURL:        "http://drivers.example.com",
			RequestTimeout: 5 * time.Second,
		},
		Storage: Storage{Path: "/tmp/grid.db"},
		Workers: Workers{HealthInterval: time.Minute},
	})

	assert.Equal(t, "http://drivers.example.com", cfg.Adapter.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/tmp/grid.db", cfg.Storage.Path)
	assert.Equal(t, time.Minute, cfg.Workers.HealthInterval)

	require.NoError(t, cfg.validate())
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return newClientConfig(&StructuredConfig{})
	}

	t.Run("in-memory storage rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Storage.Path = ":memory:"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("missing base URL rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Adapter.BaseURL = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})

	t.Run("zero request timeout rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Adapter.RequestTimeout = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)
	})

	t.Run("zero health interval rejected", func(t *testing.T) {
		cfg := valid()
		cfg.Workers.HealthInterval = 0
		assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
	})
}

func TestNewServerConfig_Defaults(t *testing.T) {
	cfg := newServerConfig(&StructuredConfig{})

	assert.Equal(t, DefaultServerAddress, cfg.Address)
	assert.Equal(t, DefaultServerRequestTimeout, cfg.RequestTimeout)
	require.NoError(t, cfg.validate())
}

func TestNewServerConfig_ExplicitAddress(t *testing.T) {
	cfg := newServerConfig(&StructuredConfig{
		Server: Server{Address: "localhost:9000", RequestTimeout: time.Minute},
	})

	assert.Equal(t, "localhost:9000", cfg.Address)
	assert.Equal(t, time.Minute, cfg.RequestTimeout)
}
