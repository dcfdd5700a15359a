// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"context"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/internal/service"
	"github.com/nirmalsolanki-business/ghost-console/internal/store"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

// ── Fakes ────────────────────────────────────────────────────────────────────

type fakeInvoker struct {
	mu     sync.Mutex
	fired  []any
	result adapter.RelayResult
}

func (f *fakeInvoker) Invoke(_ context.Context, payload any) (adapter.RelayResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fired = append(f.fired, payload)
	return f.result, nil
}

func (f *fakeInvoker) Fire(ctx context.Context, payload any) {
	_, _ = f.Invoke(ctx, payload)
}

func (f *fakeInvoker) calls() []any {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]any(nil), f.fired...)
}

type fakeTables struct{}

func (fakeTables) ListSavedMessages(context.Context) ([]models.SavedMessage, error) { return nil, nil }
func (fakeTables) InsertMessage(context.Context, models.SavedMessage) error         { return nil }
func (fakeTables) MarkMessageSaved(context.Context, string, models.Sender, string) error {
	return nil
}
func (fakeTables) DeleteMessage(context.Context, int64) error            { return nil }
func (fakeTables) ListClips(context.Context) ([]models.SavedClip, error) { return nil, nil }
func (fakeTables) InsertClip(context.Context, models.SavedClip) error    { return nil }
func (fakeTables) DeleteClip(context.Context, int64) error               { return nil }
func (fakeTables) ListCreds(context.Context) ([]models.BunkerCred, error) {
	return nil, nil
}
func (fakeTables) InsertCred(context.Context, models.BunkerCred) error { return nil }
func (fakeTables) DeleteCred(context.Context, int64) error             { return nil }

type fakeStorage struct{}

func (fakeStorage) ListObjects(context.Context) ([]models.StorageObject, error) { return nil, nil }
func (fakeStorage) PublicURL(path string) string                                { return "https://backend.test/" + path }
func (fakeStorage) Upload(context.Context, string, string, []byte) error        { return nil }
func (fakeStorage) Remove(context.Context, string) error                        { return nil }

type fakeCache struct{}

func (fakeCache) ReplaceSavedMessages(context.Context, []models.SavedMessage) error { return nil }
func (fakeCache) GetSavedMessages(context.Context) ([]models.SavedMessage, error)   { return nil, nil }
func (fakeCache) ReplaceClips(context.Context, []models.SavedClip) error            { return nil }
func (fakeCache) GetClips(context.Context) ([]models.SavedClip, error)              { return nil, nil }

func newTestApp(t *testing.T) (appModel, *fakeInvoker) {
	t.Helper()

	invoker := &fakeInvoker{result: adapter.RelayResult{Text: "ok", OK: true}}
	services := service.NewServices(invoker, fakeTables{}, fakeStorage{}, &store.Storages{Cache: fakeCache{}}, logger.Nop())
	return newAppModel(context.Background(), services), invoker
}

func asApp(t *testing.T, model tea.Model) appModel {
	t.Helper()
	m, ok := model.(appModel)
	require.True(t, ok)
	return m
}

// ── Session reset ────────────────────────────────────────────────────────────

func TestApp_NewSessionClearsChatDraft(t *testing.T) {
	m, _ := newTestApp(t)
	m.active = overlayGhost
	m.ghost.chatInput.SetValue("half-typed draft")
	oldSession := m.services.Chat.SessionID()

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyCtrlN})
	got := asApp(t, model)

	assert.Empty(t, got.ghost.chatInput.Value(), "new session discards the draft input")
	assert.NotEqual(t, oldSession, got.services.Chat.SessionID())
	assert.Zero(t, got.ghost.chatIdx)
}

// ── Notice expiry routing ────────────────────────────────────────────────────

func TestApp_DeployStatusSurvivesMainNoticeExpiry(t *testing.T) {
	m, _ := newTestApp(t)
	m.ghost.deployStatus.set("EMAIL SIGNAL DEPLOYED SUCCESSFULLY", noticeSuccess, deployStatusDuration)
	mainCmd := m.mainNotice.set("COPIED", noticeSuccess, errorNoticeDuration)

	model, _ := m.Update(mainCmd().(noticeExpiredMsg))
	got := asApp(t, model)

	assert.Empty(t, got.mainNotice.text)
	assert.Equal(t, "EMAIL SIGNAL DEPLOYED SUCCESSFULLY", got.ghost.deployStatus.text,
		"the shorter main notice timer must not clip the deploy status")
}

// ── Loading tunnel ───────────────────────────────────────────────────────────

func TestApp_PayloadDeckOpensBehindTunnel(t *testing.T) {
	m, _ := newTestApp(t)
	m.home.idx = 2 // PAYLOAD DECK glyph

	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := asApp(t, model)

	require.NotNil(t, cmd)
	assert.True(t, got.loading.active)
	assert.Equal(t, overlayNone, got.active, "the deck only appears after the tunnel")
	assert.Contains(t, got.View(), "ENTERING THE GRID")

	model, _ = got.Update(tunnelDoneMsg{})
	got = asApp(t, model)

	assert.False(t, got.loading.active)
	assert.Equal(t, overlayPayloadDeck, got.active)
}

func TestApp_StrayTunnelDoneIsIgnored(t *testing.T) {
	m, _ := newTestApp(t)

	model, _ := m.Update(tunnelDoneMsg{})
	got := asApp(t, model)

	assert.Equal(t, overlayNone, got.active)
	assert.False(t, got.loading.active)
}

func TestApp_TunnelBlocksInputUntilDone(t *testing.T) {
	m, _ := newTestApp(t)
	m.home.idx = 2

	model, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := asApp(t, model)

	model, _ = got.Update(tea.KeyMsg{Type: tea.KeyDown})
	got = asApp(t, model)
	assert.Equal(t, 2, got.home.idx, "keys are swallowed while the tunnel runs")
}

// ── Glyph telemetry ──────────────────────────────────────────────────────────

func TestApp_GlyphTelemetryRunsOffUpdateLoop(t *testing.T) {
	m, invoker := newTestApp(t)
	m.home.idx = 0 // GHOST LAYER glyph

	start := time.Now()
	model, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	got := asApp(t, model)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, overlayGhost, got.active)
	assert.Empty(t, invoker.calls(), "the update loop itself must not hit the relay")

	require.NotNil(t, cmd)
	cmd()

	calls := invoker.calls()
	require.Len(t, calls, 1)
	payload, ok := calls[0].(models.BreachedPayload)
	require.True(t, ok)
	assert.Equal(t, models.ZoneBreached, payload.Zone)
	assert.Equal(t, "ghost", payload.Glyph)
}
