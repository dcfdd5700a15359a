// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package store

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/nirmalsolanki-business/ghost-console/internal/crypto"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

type cacheRepository struct {
	*DB
	cipher crypto.CacheCipher
	logger *logger.Logger
}

// NewCacheRepository constructs the SQLite-backed [CacheRepository]. All
// content columns pass through cipher on the way in and out.
func NewCacheRepository(db *DB, cipher crypto.CacheCipher, logger *logger.Logger) CacheRepository {
	return &cacheRepository{
		DB:     db,
		cipher: cipher,
		logger: logger,
	}
}

func (c *cacheRepository) ReplaceSavedMessages(ctx context.Context, rows []models.SavedMessage) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM cached_messages"); err != nil {
		return fmt.Errorf("clear cached messages: %w", err)
	}

	for _, row := range rows {
		sealed, sealErr := c.cipher.Seal(row.MessageContent)
		if sealErr != nil {
			return fmt.Errorf("seal cached message (id=%d): %w", row.ID, sealErr)
		}

		query, args, buildErr := sq.Insert("cached_messages").
			Columns("id", "created_at", "session_id", "sender", "message_content", "is_saved").
			Values(row.ID, row.CreatedAt, row.SessionID, row.Sender, sealed, row.IsSaved).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("build cached message insert: %w", buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "cacheRepository.ReplaceSavedMessages").
				Int64("id", row.ID).
				Msg("failed to insert cached message")
			return fmt.Errorf("insert cached message (id=%d): %w", row.ID, err)
		}
	}

	return tx.Commit()
}

func (c *cacheRepository) GetSavedMessages(ctx context.Context) ([]models.SavedMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.Select("id", "created_at", "session_id", "sender", "message_content", "is_saved").
		From("cached_messages").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cached messages query: %w", err)
	}

	dbRows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "cacheRepository.GetSavedMessages").
			Msg("failed to query cached messages")
		return nil, fmt.Errorf("query cached messages: %w", err)
	}
	defer dbRows.Close()

	var out []models.SavedMessage
	for dbRows.Next() {
		var row models.SavedMessage
		var sealed string
		if err = dbRows.Scan(&row.ID, &row.CreatedAt, &row.SessionID, &row.Sender, &sealed, &row.IsSaved); err != nil {
			return nil, fmt.Errorf("scan cached message: %w", err)
		}

		row.MessageContent, err = c.cipher.Open(sealed)
		if err != nil {
			return nil, fmt.Errorf("open cached message (id=%d): %w", row.ID, err)
		}
		out = append(out, row)
	}

	if err = dbRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached messages: %w", err)
	}
	return out, nil
}

func (c *cacheRepository) ReplaceClips(ctx context.Context, rows []models.SavedClip) error {
	log := logger.FromContext(ctx)

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin cache tx: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, "DELETE FROM cached_clips"); err != nil {
		return fmt.Errorf("clear cached clips: %w", err)
	}

	for _, row := range rows {
		sealed, sealErr := c.cipher.Seal(row.Description)
		if sealErr != nil {
			return fmt.Errorf("seal cached clip (id=%d): %w", row.ID, sealErr)
		}

		query, args, buildErr := sq.Insert("cached_clips").
			Columns("id", "created_at", "description", "source", "intel_query", "tags", "notes").
			Values(row.ID, row.CreatedAt, sealed, row.Source, row.IntelQuery, row.Tags, row.Notes).
			ToSql()
		if buildErr != nil {
			return fmt.Errorf("build cached clip insert: %w", buildErr)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).
				Str("func", "cacheRepository.ReplaceClips").
				Int64("id", row.ID).
				Msg("failed to insert cached clip")
			return fmt.Errorf("insert cached clip (id=%d): %w", row.ID, err)
		}
	}

	return tx.Commit()
}

func (c *cacheRepository) GetClips(ctx context.Context) ([]models.SavedClip, error) {
	query, args, err := sq.Select("id", "created_at", "description", "source", "intel_query", "tags", "notes").
		From("cached_clips").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build cached clips query: %w", err)
	}

	dbRows, err := c.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query cached clips: %w", err)
	}
	defer dbRows.Close()

	var out []models.SavedClip
	for dbRows.Next() {
		var row models.SavedClip
		var sealed string
		if err = dbRows.Scan(&row.ID, &row.CreatedAt, &sealed, &row.Source, &row.IntelQuery, &row.Tags, &row.Notes); err != nil {
			return nil, fmt.Errorf("scan cached clip: %w", err)
		}

		row.Description, err = c.cipher.Open(sealed)
		if err != nil {
			return nil, fmt.Errorf("open cached clip (id=%d): %w", row.ID, err)
		}
		out = append(out, row)
	}

	if err = dbRows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cached clips: %w", err)
	}
	return out, nil
}
