// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmalsolanki-business/ghost-console/internal/config"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

func newTestRelay(t *testing.T, handler http.HandlerFunc) RelayInvoker {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	invoker, err := NewRelayAdapter(config.Relay{
		Endpoint:       srv.URL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return invoker
}

// ── Invoke ───────────────────────────────────────────────────────────────────

func TestRelayAdapter_Invoke_SuccessReturnsBodyText(t *testing.T) {
	invoker := newTestRelay(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "Accepted")
	})

	result, err := invoker.Invoke(context.Background(), models.SilentPayload{Zone: models.ZoneSilent})

	require.NoError(t, err)
	assert.True(t, result.OK)
	assert.Equal(t, "Accepted", result.Text)
}

func TestRelayAdapter_Invoke_NonSuccessStatusIsNotAnError(t *testing.T) {
	invoker := newTestRelay(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = io.WriteString(w, "upstream down")
	})

	result, err := invoker.Invoke(context.Background(), models.SilentPayload{})

	require.NoError(t, err, "a reachable relay is never a transport error")
	assert.False(t, result.OK)
	assert.Equal(t, "upstream down", result.Text)
}

func TestRelayAdapter_Invoke_PostsJSONWithTraceID(t *testing.T) {
	var (
		gotMethod string
		gotType   string
		gotTrace  string
		gotBody   []byte
	)
	invoker := newTestRelay(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotType = r.Header.Get("Content-Type")
		gotTrace = r.Header.Get("X-Trace-Id")
		gotBody, _ = io.ReadAll(r.Body)
	})

	_, err := invoker.Invoke(context.Background(), models.BlackWirePayload{
		Zone:      models.ZoneBlackWire,
		SessionID: "bw_1700000000000_abcdefghi",
		Reply:     "status report",
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "application/json", gotType)
	assert.NotEmpty(t, gotTrace)
	assert.Contains(t, string(gotBody), `"status report"`)
}

func TestRelayAdapter_Invoke_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	invoker, err := NewRelayAdapter(config.Relay{Endpoint: endpoint}, logger.Nop())
	require.NoError(t, err)

	_, err = invoker.Invoke(context.Background(), models.SilentPayload{})
	assert.Error(t, err)
}

// ── Fire ─────────────────────────────────────────────────────────────────────

func TestRelayAdapter_Fire_SwallowsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL
	srv.Close()

	invoker, err := NewRelayAdapter(config.Relay{Endpoint: endpoint}, logger.Nop())
	require.NoError(t, err)

	assert.NotPanics(t, func() {
		invoker.Fire(context.Background(), models.BreachedPayload{Zone: models.ZoneBreached})
	})
}

func TestRelayAdapter_Fire_DeliversPayload(t *testing.T) {
	var hits int
	invoker := newTestRelay(t, func(w http.ResponseWriter, r *http.Request) {
		hits++
	})

	invoker.Fire(context.Background(), models.BreachedPayload{Zone: models.ZoneBreached, Glyph: "ghost"})
	assert.Equal(t, 1, hits)
}

// ── Endpoint normalisation ───────────────────────────────────────────────────

func TestNewRelayAdapter_RejectsEmptyEndpoint(t *testing.T) {
	_, err := NewRelayAdapter(config.Relay{Endpoint: "   "}, logger.Nop())
	assert.Error(t, err)
}

func TestNewRelayAdapter_DefaultsScheme(t *testing.T) {
	_, err := NewRelayAdapter(config.Relay{Endpoint: "relay.example.com/hook"}, logger.Nop())
	assert.NoError(t, err)
}
