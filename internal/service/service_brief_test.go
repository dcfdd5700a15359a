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

// ── Execute ──────────────────────────────────────────────────────────────────

func TestBriefService_Execute_ReturnsRelayText(t *testing.T) {
	spy := &spyInvoker{result: adapter.RelayResult{Text: "strike at dawn", OK: true}}
	svc := NewBriefService(spy, &spyTables{}, logger.Nop())

	result := svc.Execute(context.Background(), "infiltrate")

	assert.Equal(t, "strike at dawn", result)
	require.Len(t, spy.payloads, 1)
	payload, ok := spy.payloads[0].(models.BriefPayload)
	require.True(t, ok)
	assert.Equal(t, models.ZoneClaudeBrief, payload.Zone)
	assert.Equal(t, "infiltrate", payload.Mission)
}

func TestBriefService_Execute_TransportFailureLiteral(t *testing.T) {
	spy := &spyInvoker{err: assert.AnError}
	svc := NewBriefService(spy, &spyTables{}, logger.Nop())

	result := svc.Execute(context.Background(), "infiltrate")
	assert.Equal(t, "ERROR: Failed to execute brief. Connection lost.", result)
}

// ── SaveResult ───────────────────────────────────────────────────────────────

func TestBriefService_SaveResult_InsertsSavedRow(t *testing.T) {
	tables := &spyTables{}
	svc := NewBriefService(&spyInvoker{}, tables, logger.Nop())

	require.NoError(t, svc.SaveResult(context.Background(), "infiltrate", "strike at dawn"))

	require.Len(t, tables.inserted, 1)
	row := tables.inserted[0]
	assert.True(t, row.IsSaved, "brief saves are persisted already-saved")
	assert.Equal(t, models.SenderAgent, row.Sender)
	assert.Regexp(t, `^cb_\d{13}_[0-9a-z]{9}$`, row.SessionID, "each brief save gets its own session id")
	assert.Contains(t, row.MessageContent, "Mission: infiltrate")
	assert.Contains(t, row.MessageContent, "strike at dawn")
}

func TestBriefService_SaveResult_SessionIDsDiffer(t *testing.T) {
	tables := &spyTables{}
	svc := NewBriefService(&spyInvoker{}, tables, logger.Nop())

	require.NoError(t, svc.SaveResult(context.Background(), "a", "x"))
	require.NoError(t, svc.SaveResult(context.Background(), "b", "y"))

	require.Len(t, tables.inserted, 2)
	assert.NotEqual(t, tables.inserted[0].SessionID, tables.inserted[1].SessionID)
}
