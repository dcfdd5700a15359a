// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"fmt"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

const briefErrorText = "ERROR: Failed to execute brief. Connection lost."

const briefSessionPrefix = "cb"

type briefService struct {
	invoker adapter.RelayInvoker
	tables  adapter.TableStore
	logger  *logger.Logger
}

// NewBriefService constructs the single-shot mission brief service.
func NewBriefService(invoker adapter.RelayInvoker, tables adapter.TableStore, log *logger.Logger) BriefService {
	return &briefService{invoker: invoker, tables: tables, logger: log}
}

// Execute fires one claude-brief request. The returned string is always
// displayable: on any failure it is the error literal shown in the result
// pane, never an empty string.
func (b *briefService) Execute(ctx context.Context, mission string) string {
	result, err := b.invoker.Invoke(ctx, models.BriefPayload{
		Zone:    models.ZoneClaudeBrief,
		Mission: mission,
	})
	if err != nil {
		b.logger.Err(err).
			Str("func", "briefService.Execute").
			Msg("brief invoke failed")
		return briefErrorText
	}
	return result.Text
}

// SaveResult persists one brief exchange as an already-saved message row,
// under a fresh single-use session id. The brief module has no ongoing
// session, so each save stands alone.
func (b *briefService) SaveResult(ctx context.Context, mission, result string) error {
	sessionID := NewSessionID(briefSessionPrefix)

	err := b.tables.InsertMessage(ctx, models.SavedMessage{
		SessionID:      sessionID,
		Sender:         models.SenderAgent,
		MessageContent: fmt.Sprintf("Mission: %s\n\n%s", mission, result),
		IsSaved:        true,
	})
	if err != nil {
		return fmt.Errorf("save brief result: %w", err)
	}
	return nil
}
