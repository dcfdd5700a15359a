// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"fmt"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/internal/store"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

type blackBoxService struct {
	tables adapter.TableStore
	cache  store.CacheRepository
	logger *logger.Logger
}

// NewBlackBoxService constructs the saved-conversation log service.
func NewBlackBoxService(tables adapter.TableStore, cache store.CacheRepository, log *logger.Logger) BlackBoxService {
	return &blackBoxService{tables: tables, cache: cache, logger: log}
}

// List fetches saved messages from the backend. A successful fetch refreshes
// the local cache (replace-all, last fetch wins); a failed fetch falls back
// to the cache so the log stays readable offline. Only when both sides fail
// does List return an error.
func (b *blackBoxService) List(ctx context.Context) ([]models.SavedMessage, error) {
	rows, err := b.tables.ListSavedMessages(ctx)
	if err == nil {
		if cacheErr := b.cache.ReplaceSavedMessages(ctx, rows); cacheErr != nil {
			b.logger.Warn().Err(cacheErr).
				Str("func", "blackBoxService.List").
				Msg("failed to refresh message cache")
		}
		return rows, nil
	}

	b.logger.Warn().Err(err).
		Str("func", "blackBoxService.List").
		Msg("backend fetch failed, reading cache")

	cached, cacheErr := b.cache.GetSavedMessages(ctx)
	if cacheErr != nil {
		return nil, fmt.Errorf("list saved messages: %w", err)
	}
	return cached, nil
}

func (b *blackBoxService) Delete(ctx context.Context, id int64) error {
	if err := b.tables.DeleteMessage(ctx, id); err != nil {
		return fmt.Errorf("delete saved message: %w", err)
	}
	return nil
}
