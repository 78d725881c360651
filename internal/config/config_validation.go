// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "strings"

// validate checks invariants shared by every binary: durations must not be
// negative.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenDuration < 0 || cfg.Server.RequestTimeout < 0 ||
		cfg.Adapter.RequestTimeout < 0 || cfg.Workers.SessionCheckInterval < 0 ||
		cfg.Client.SendCodeDelay < 0 {
		return ErrNegativeDuration
	}

	return nil
}

// validateServer checks the settings the server cannot start without.
func (cfg *StructuredConfig) validateServer() error {
	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenDuration == 0 {
		return ErrInvalidAppConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Workers.SessionCheckInterval == 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}
