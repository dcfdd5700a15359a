// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package config

import (
	"fmt"
	"time"
)

// Built-in fallbacks. Flags, env and JSON all override these; the relay
// endpoint and owner id in particular are fixed per deployment and normally
// arrive via the environment.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			OwnerID: "demigod_owner",
		},
		Relay: Relay{
			Endpoint:       "https://worm-relay.nirmalsolanki-business.workers.dev/",
			RequestTimeout: 30 * time.Second,
		},
		Backend: Backend{
			Bucket:         "zip-stash",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{
			DB: DB{DSN: "ghost-console.db"},
		},
		Workers: Workers{
			RealtimeRetryInterval: 5 * time.Second,
		},
	}
}

// GetClientConfig assembles the console configuration by merging, in priority
// order: environment variables, command-line flags, an optional JSON file,
// and built-in defaults. The merged result is validated before being
// returned.
func GetClientConfig() (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building client config: %w", err)
	}

	return cfg, cfg.validate()
}
