// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package store

import (
	"context"
	"fmt"

	"github.com/nirmalsolanki-business/ghost-console/internal/config"
	"github.com/nirmalsolanki-business/ghost-console/internal/crypto"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
)

// Storages groups all local storage repositories into a single value that
// can be passed around the service layer.
type Storages struct {
	// Cache is the SQLite-backed mirror of backend rows.
	Cache CacheRepository
}

// NewStorages initialises the local storage layer. It opens (creating if
// needed) the SQLite cache file from cfg, runs pending goose migrations, and
// wires the cache repository to the at-rest cipher derived from the
// configured passphrase.
func NewStorages(cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating local storages...")

	db, err := NewConnectSQLite(context.Background(), cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	cipher, err := crypto.NewCacheCipher(cfg.DB.CachePassphrase)
	if err != nil {
		return nil, fmt.Errorf("cache cipher error: %w", err)
	}

	return &Storages{
		Cache: NewCacheRepository(db, cipher, log),
	}, nil
}
