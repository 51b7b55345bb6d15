// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Ruslan Akhmetov

package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. The merged config may
// legitimately be partial; view-specific validation happens in the client and
// server config constructors.
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.Path == "" || strings.Contains(cfg.Storage.Path, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.HealthInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Address == "" || cfg.RequestTimeout == 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
