// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the environment following its `env` and
// `envPrefix` tags, e.g. SERVER_ADDRESS or WORKERS_SESSION_CHECK_INTERVAL.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}
