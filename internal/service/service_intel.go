// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

const (
	intelClaudeErrorText = "ERROR: Failed to get Claude response"
	intelOpenAIErrorText = "ERROR: Failed to get OpenAI response"
)

type intelService struct {
	invoker adapter.RelayInvoker
	tables  adapter.TableStore
	logger  *logger.Logger
}

// NewIntelService constructs the dual-blade intel service.
func NewIntelService(invoker adapter.RelayInvoker, tables adapter.TableStore, log *logger.Logger) IntelService {
	return &intelService{invoker: invoker, tables: tables, logger: log}
}

// Query fires both blades concurrently and waits for both to settle. The
// sides are fully independent: one blade failing leaves the other's response
// intact, with the failed side carrying its error literal.
func (s *intelService) Query(ctx context.Context, query string) IntelResult {
	out := IntelResult{Query: query}

	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		out.Claude = s.fireBlade(ctx, query, models.BladeClaude, intelClaudeErrorText)
	}()
	go func() {
		defer wg.Done()
		out.OpenAI = s.fireBlade(ctx, query, models.BladeOpenAI, intelOpenAIErrorText)
	}()

	wg.Wait()
	return out
}

func (s *intelService) fireBlade(ctx context.Context, query string, mode models.BladeMode, errorText string) string {
	result, err := s.invoker.Invoke(ctx, models.DualBladePayload{
		Zone:  models.ZoneDualBlade,
		Mode:  mode,
		Intel: query,
	})
	if err != nil {
		s.logger.Err(err).
			Str("func", "intelService.fireBlade").
			Str("mode", string(mode)).
			Msg("dual-blade invoke failed")
		return errorText
	}
	return result.Text
}

// SaveClip persists one blade's response to the clips vault, tagged with the
// module name and the lowercased source.
func (s *intelService) SaveClip(ctx context.Context, query, source, response string) error {
	err := s.tables.InsertClip(ctx, models.SavedClip{
		Description: response,
		Source:      source,
		IntelQuery:  query,
		Tags:        "dual-blade," + strings.ToLower(source),
		Notes:       fmt.Sprintf("Saved from Dual Blade Intel - %s", time.Now().Format(time.RFC3339)),
	})
	if err != nil {
		return fmt.Errorf("save intel clip: %w", err)
	}
	return nil
}
