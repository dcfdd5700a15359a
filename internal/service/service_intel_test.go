// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

// ── Query ────────────────────────────────────────────────────────────────────

func TestIntelService_Query_FiresBothBlades(t *testing.T) {
	spy := &spyInvoker{onInvoke: func(payload any) (adapter.RelayResult, error) {
		p := payload.(models.DualBladePayload)
		switch p.Mode {
		case models.BladeClaude:
			return adapter.RelayResult{Text: "claude says", OK: true}, nil
		default:
			return adapter.RelayResult{Text: "openai says", OK: true}, nil
		}
	}}
	svc := NewIntelService(spy, &spyTables{}, logger.Nop())

	result := svc.Query(context.Background(), "who watches")

	assert.Equal(t, "who watches", result.Query)
	assert.Equal(t, "claude says", result.Claude)
	assert.Equal(t, "openai says", result.OpenAI)
	assert.Equal(t, 2, spy.calls())
}

func TestIntelService_Query_SidesFailIndependently(t *testing.T) {
	spy := &spyInvoker{onInvoke: func(payload any) (adapter.RelayResult, error) {
		p := payload.(models.DualBladePayload)
		if p.Mode == models.BladeClaude {
			return adapter.RelayResult{}, assert.AnError
		}
		return adapter.RelayResult{Text: "openai says", OK: true}, nil
	}}
	svc := NewIntelService(spy, &spyTables{}, logger.Nop())

	result := svc.Query(context.Background(), "status")

	assert.Equal(t, "ERROR: Failed to get Claude response", result.Claude)
	assert.Equal(t, "openai says", result.OpenAI, "one blade failing must not blank the other")
}

func TestIntelService_Query_BothFail(t *testing.T) {
	spy := &spyInvoker{err: assert.AnError}
	svc := NewIntelService(spy, &spyTables{}, logger.Nop())

	result := svc.Query(context.Background(), "status")

	assert.Equal(t, "ERROR: Failed to get Claude response", result.Claude)
	assert.Equal(t, "ERROR: Failed to get OpenAI response", result.OpenAI)
}

func TestIntelService_Query_SendsDualBladePayloads(t *testing.T) {
	spy := &spyInvoker{result: adapter.RelayResult{Text: "x", OK: true}}
	svc := NewIntelService(spy, &spyTables{}, logger.Nop())

	svc.Query(context.Background(), "recon")

	require.Equal(t, 2, spy.calls())
	modes := map[models.BladeMode]bool{}
	for _, raw := range spy.payloads {
		p, ok := raw.(models.DualBladePayload)
		require.True(t, ok)
		assert.Equal(t, models.ZoneDualBlade, p.Zone)
		assert.Equal(t, "recon", p.Intel)
		modes[p.Mode] = true
	}
	assert.True(t, modes[models.BladeClaude])
	assert.True(t, modes[models.BladeOpenAI])
}

// ── SaveClip ─────────────────────────────────────────────────────────────────

func TestIntelService_SaveClip_TagsAndNotes(t *testing.T) {
	tables := &spyTables{}
	svc := NewIntelService(&spyInvoker{}, tables, logger.Nop())

	require.NoError(t, svc.SaveClip(context.Background(), "recon", "Claude", "claude says"))

	require.Len(t, tables.clips, 1)
	clip := tables.clips[0]
	assert.Equal(t, "claude says", clip.Description)
	assert.Equal(t, "Claude", clip.Source)
	assert.Equal(t, "recon", clip.IntelQuery)
	assert.Equal(t, "dual-blade,claude", clip.Tags)
	assert.Regexp(t, `^Saved from Dual Blade Intel - `, clip.Notes)
}

func TestIntelService_SaveClip_BackendFailure(t *testing.T) {
	tables := &spyTables{insertClipErr: assert.AnError}
	svc := NewIntelService(&spyInvoker{}, tables, logger.Nop())

	err := svc.SaveClip(context.Background(), "recon", "OpenAI", "openai says")
	assert.Error(t, err)
}
