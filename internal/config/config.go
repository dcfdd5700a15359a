// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// ghost-console application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the owner identifier
	// and the application version.
	App App `envPrefix:"APP_"`

	// Relay holds the fixed remote-action endpoint settings.
	Relay Relay `envPrefix:"RELAY_"`

	// Backend holds settings for the hosted table/storage/realtime backend.
	Backend Backend `envPrefix:"BACKEND_"`

	// Storage holds configuration for the local cache database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// OwnerID is the fixed owner identifier every persisted row is scoped
	// to. Multi-tenant isolation lives in the backend's row filters, not in
	// this client.
	// Env: APP_OWNER_ID
	OwnerID string `env:"OWNER_ID"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Relay holds settings for the single fixed remote-action endpoint. Every AI
// query, dispatch and password check in the console goes through this URL.
type Relay struct {
	// Endpoint is the full URL of the relay worker.
	// Env: RELAY_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout is the maximum duration allowed for a single relay
	// call (e.g. "30s", "1m").
	// Env: RELAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Backend holds connection settings for the hosted backend-as-a-service
// providing table storage, realtime notifications and object storage.
type Backend struct {
	// BaseURL is the project base URL (e.g. "https://xyz.supabase.co").
	// Env: BACKEND_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// ServiceKey is the API key attached to every backend request. The key
	// is a JWT; its role claim is logged at startup for diagnostics.
	// Env: BACKEND_SERVICE_KEY
	ServiceKey string `env:"SERVICE_KEY"`

	// Bucket is the object-storage bucket holding the zip stash.
	// Env: BACKEND_BUCKET
	Bucket string `env:"BUCKET"`

	// RequestTimeout is the maximum duration for a single backend call.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local cache database.
type Storage struct {
	// DB holds the local SQLite cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite cache.
type DB struct {
	// DSN is the SQLite file path of the local cache database.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// CachePassphrase derives the key that encrypts cached message and clip
	// content at rest. When empty the cache stores plaintext.
	// Env: STORAGE_DB_CACHE_PASSPHRASE
	CachePassphrase string `env:"CACHE_PASSPHRASE"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RealtimeRetryInterval is how long the realtime watcher waits before
	// re-dialing the backend after the websocket drops (e.g. "5s").
	// Env: WORKERS_REALTIME_RETRY_INTERVAL
	RealtimeRetryInterval time.Duration `env:"REALTIME_RETRY_INTERVAL"`
}
