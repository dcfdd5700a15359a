// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-relay-endpoint relay worker URL
//	-relay-timeout relay request timeout (e.g., "30s", "1m")
//	-backend-url backend project base URL
//	-backend-key backend service API key
//	-bucket object storage bucket name
//	-d local cache database path
//	-cache-passphrase local cache encryption passphrase
//	-owner owner identifier for all persisted rows
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var relayEndpoint string
	var relayTimeout time.Duration
	var backendURL string
	var backendKey string
	var bucket string
	var databaseDSN string
	var cachePassphrase string
	var ownerID string
	var jsonConfigPath string

	flag.StringVar(&relayEndpoint, "relay-endpoint", "", "Relay worker URL")
	flag.DurationVar(&relayTimeout, "relay-timeout", 0, "Relay request timeout (e.g., 30s, 1m)")
	flag.StringVar(&backendURL, "backend-url", "", "Backend project base URL")
	flag.StringVar(&backendKey, "backend-key", "", "Backend service API key")
	flag.StringVar(&bucket, "bucket", "", "Object storage bucket name")
	flag.StringVar(&databaseDSN, "d", "", "Local cache database path")
	flag.StringVar(&cachePassphrase, "cache-passphrase", "", "Local cache encryption passphrase")
	flag.StringVar(&ownerID, "owner", "", "Owner identifier")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			OwnerID: ownerID,
		},
		Relay: Relay{
			Endpoint:       relayEndpoint,
			RequestTimeout: relayTimeout,
		},
		Backend: Backend{
			BaseURL:    backendURL,
			ServiceKey: backendKey,
			Bucket:     bucket,
		},
		Storage: Storage{
			DB: DB{
				DSN:             databaseDSN,
				CachePassphrase: cachePassphrase,
			},
		},
		Workers:      Workers{},
		JSONFilePath: jsonConfigPath,
	}
}
