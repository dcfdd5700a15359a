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

const testOwnerID = "owner-42"

func newTestBackend(t *testing.T, handler http.HandlerFunc) *backendAdapter {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	adapter, err := NewBackendAdapter(config.Backend{
		BaseURL:        srv.URL,
		ServiceKey:     "service-key",
		Bucket:         "zip-stash",
		RequestTimeout: 5 * time.Second,
	}, testOwnerID, logger.Nop())
	require.NoError(t, err)

	return adapter
}

// ── Table rows ───────────────────────────────────────────────────────────────

func TestBackendAdapter_ListSavedMessages_FiltersByOwnerAndSavedFlag(t *testing.T) {
	var gotQuery, gotAuth, gotAPIKey string
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		gotAuth = r.Header.Get("Authorization")
		gotAPIKey = r.Header.Get("apikey")
		_, _ = io.WriteString(w, `[{"id":1,"session_id":"bw_1_a","sender":"agent","message_content":"hello","is_saved":true}]`)
	})

	rows, err := backend.ListSavedMessages(context.Background())

	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "hello", rows[0].MessageContent)
	assert.Contains(t, gotQuery, "user_id=eq."+testOwnerID)
	assert.Contains(t, gotQuery, "is_saved=eq.true")
	assert.Contains(t, gotQuery, "order=created_at.desc")
	assert.Equal(t, "Bearer service-key", gotAuth)
	assert.Equal(t, "service-key", gotAPIKey)
}

func TestBackendAdapter_InsertMessage_StampsOwnerID(t *testing.T) {
	var gotBody []byte
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
	})

	err := backend.InsertMessage(context.Background(), models.SavedMessage{
		SessionID:      "bw_1_a",
		Sender:         models.SenderUser,
		MessageContent: "status report",
	})

	require.NoError(t, err)
	assert.Contains(t, string(gotBody), `"user_id":"`+testOwnerID+`"`)
	assert.NotContains(t, string(gotBody), "is_saved", "unsaved turns rely on the column default")
}

func TestBackendAdapter_MarkMessageSaved_MatchesByContent(t *testing.T) {
	var gotMethod, gotQuery string
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		w.WriteHeader(http.StatusNoContent)
	})

	err := backend.MarkMessageSaved(context.Background(), "bw_1_a", models.SenderAgent, "hello")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Contains(t, gotQuery, "session_id=eq.bw_1_a")
	assert.Contains(t, gotQuery, "sender=eq.agent")
	assert.Contains(t, gotQuery, "message_content=eq.hello")
}

func TestBackendAdapter_DeleteClip_ScopedToOwner(t *testing.T) {
	var gotMethod, gotQuery, gotPath string
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotQuery = r.URL.RawQuery
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	})

	err := backend.DeleteClip(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/rest/v1/saved_clips", gotPath)
	assert.Contains(t, gotQuery, "id=eq.7")
	assert.Contains(t, gotQuery, "user_id=eq."+testOwnerID)
}

// ── Error mapping ────────────────────────────────────────────────────────────

func TestBackendAdapter_UnauthorizedIsSentinel(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := backend.ListClips(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestBackendAdapter_NotFoundIsSentinel(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := backend.ListCreds(context.Background())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBackendAdapter_OtherStatusCarriesBody(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, "row policy violation")
	})

	err := backend.DeleteMessage(context.Background(), 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "row policy violation")
}

// ── Object storage ───────────────────────────────────────────────────────────

func TestBackendAdapter_ListObjects_PostsListingBody(t *testing.T) {
	var gotPath string
	var gotBody []byte
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		_, _ = io.WriteString(w, `[{"name":"1700000000000-drop.zip"}]`)
	})

	objects, err := backend.ListObjects(context.Background())

	require.NoError(t, err)
	require.Len(t, objects, 1)
	assert.Equal(t, "1700000000000-drop.zip", objects[0].Name)
	assert.Equal(t, "/storage/v1/object/list/zip-stash", gotPath)
	assert.Contains(t, string(gotBody), `"prefix":""`)
}

func TestBackendAdapter_Upload_SetsContentType(t *testing.T) {
	var gotPath, gotType string
	var gotBody []byte
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
	})

	err := backend.Upload(context.Background(), "1700000000000-drop.zip", "application/zip", []byte("payload"))

	require.NoError(t, err)
	assert.Equal(t, "/storage/v1/object/zip-stash/1700000000000-drop.zip", gotPath)
	assert.Equal(t, "application/zip", gotType)
	assert.Equal(t, []byte("payload"), gotBody)
}

func TestBackendAdapter_PublicURL(t *testing.T) {
	backend := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {})

	url := backend.PublicURL("1700000000000-drop.zip")
	assert.Contains(t, url, "/storage/v1/object/public/zip-stash/1700000000000-drop.zip")
}

// ── Construction ─────────────────────────────────────────────────────────────

func TestNewBackendAdapter_RejectsEmptyBaseURL(t *testing.T) {
	_, err := NewBackendAdapter(config.Backend{BaseURL: "  "}, testOwnerID, logger.Nop())
	assert.Error(t, err)
}
