// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

// Package store implements the local SQLite cache that mirrors the backend's
// saved messages and clips.
//
// The cache exists so the BlackBox and clips vault views have something to
// show while the backend is unreachable. It is written after every successful
// fetch (replace-all, matching the "last fetch wins" reconciliation policy)
// and read only as a fallback. Content columns are sealed by the cache
// cipher before they touch disk.
package store

import (
	"context"

	"github.com/nirmalsolanki-business/ghost-console/models"
)

// CacheRepository is the local mirror of backend rows the console reads when
// offline.
type CacheRepository interface {
	// ReplaceSavedMessages drops the cached message set and stores rows in
	// its place, inside one transaction.
	ReplaceSavedMessages(ctx context.Context, rows []models.SavedMessage) error

	// GetSavedMessages returns all cached messages, newest first.
	GetSavedMessages(ctx context.Context) ([]models.SavedMessage, error)

	// ReplaceClips drops the cached clip set and stores rows in its place,
	// inside one transaction.
	ReplaceClips(ctx context.Context, rows []models.SavedClip) error

	// GetClips returns all cached clips, newest first.
	GetClips(ctx context.Context) ([]models.SavedClip, error)
}
