// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	ErrNoRelayEndpoint   = errors.New("relay endpoint is required")
	ErrNoBackendBaseURL  = errors.New("backend base url is required")
	ErrNoBackendKey      = errors.New("backend service key is required")
	ErrNoOwnerID         = errors.New("owner id is required")
	ErrNoLocalCachePath  = errors.New("local cache database path is required")
	ErrNoStorageBucket   = errors.New("object storage bucket is required")
	ErrNegativeTimeout   = errors.New("request timeout must be positive")
	ErrNegativeRetryWait = errors.New("realtime retry interval must be positive")
)

func (c *StructuredConfig) validate() error {
	var errs []error

	if c.App.OwnerID == "" {
		errs = append(errs, ErrNoOwnerID)
	}
	if c.Relay.Endpoint == "" {
		errs = append(errs, ErrNoRelayEndpoint)
	}
	if c.Backend.BaseURL == "" {
		errs = append(errs, ErrNoBackendBaseURL)
	}
	if c.Backend.ServiceKey == "" {
		errs = append(errs, ErrNoBackendKey)
	}
	if c.Backend.Bucket == "" {
		errs = append(errs, ErrNoStorageBucket)
	}
	if c.Storage.DB.DSN == "" {
		errs = append(errs, ErrNoLocalCachePath)
	}
	if c.Relay.RequestTimeout < 0 || c.Backend.RequestTimeout < 0 {
		errs = append(errs, ErrNegativeTimeout)
	}
	if c.Workers.RealtimeRetryInterval < 0 {
		errs = append(errs, ErrNegativeRetryWait)
	}

	return errors.Join(errs...)
}
