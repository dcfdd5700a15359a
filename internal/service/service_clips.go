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

type clipsService struct {
	tables adapter.TableStore
	cache  store.CacheRepository
	logger *logger.Logger
}

// NewClipsService constructs the clips vault service. It follows the same
// fetch-then-cache pattern as the BlackBox log.
func NewClipsService(tables adapter.TableStore, cache store.CacheRepository, log *logger.Logger) ClipsService {
	return &clipsService{tables: tables, cache: cache, logger: log}
}

func (c *clipsService) List(ctx context.Context) ([]models.SavedClip, error) {
	rows, err := c.tables.ListClips(ctx)
	if err == nil {
		if cacheErr := c.cache.ReplaceClips(ctx, rows); cacheErr != nil {
			c.logger.Warn().Err(cacheErr).
				Str("func", "clipsService.List").
				Msg("failed to refresh clip cache")
		}
		return rows, nil
	}

	c.logger.Warn().Err(err).
		Str("func", "clipsService.List").
		Msg("backend fetch failed, reading cache")

	cached, cacheErr := c.cache.GetClips(ctx)
	if cacheErr != nil {
		return nil, fmt.Errorf("list clips: %w", err)
	}
	return cached, nil
}

func (c *clipsService) Delete(ctx context.Context, id int64) error {
	if err := c.tables.DeleteClip(ctx, id); err != nil {
		return fmt.Errorf("delete clip: %w", err)
	}
	return nil
}
