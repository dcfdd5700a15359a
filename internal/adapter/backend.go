// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nirmalsolanki-business/ghost-console/internal/config"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

const (
	tableMessages = "blackwire_messages"
	tableClips    = "saved_clips"
	tableCreds    = "bunker_creds"
)

// backendAdapter speaks the hosted backend's REST dialect: table rows under
// /rest/v1/<table> addressed by column filters, objects under /storage/v1.
// It implements both [TableStore] and [ObjectStorage].
type backendAdapter struct {
	client  *resty.Client
	baseURL string
	bucket  string
	ownerID string

	logger *logger.Logger
}

// NewBackendAdapter constructs the REST client for the hosted backend. The
// service key is attached to every request as both the apikey header and a
// bearer token. The key is a JWT; its role claim and expiry are parsed
// (unverified — verification is the backend's job) purely for a startup
// diagnostic line.
func NewBackendAdapter(cfg config.Backend, ownerID string, log *logger.Logger) (*backendAdapter, error) {
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		return nil, fmt.Errorf("empty backend base url")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid backend base url: %w", err)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("apikey", cfg.ServiceKey).
		SetHeader("Authorization", "Bearer "+cfg.ServiceKey)

	logServiceKeyClaims(cfg.ServiceKey, log)

	return &backendAdapter{
		client:  cli,
		baseURL: baseURL,
		bucket:  cfg.Bucket,
		ownerID: ownerID,
		logger:  log,
	}, nil
}

func logServiceKeyClaims(key string, log *logger.Logger) {
	token, _, err := jwt.NewParser().ParseUnverified(key, jwt.MapClaims{})
	if err != nil {
		log.Warn().Err(err).Msg("backend service key is not a parseable JWT")
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return
	}

	role, _ := claims["role"].(string)
	exp, _ := claims.GetExpirationTime()

	event := log.Info().Str("role", role)
	if exp != nil {
		event = event.Time("key_expires", exp.Time)
	}
	event.Msg("backend service key parsed")
}

func (b *backendAdapter) request(ctx context.Context) *resty.Request {
	return b.client.R().
		SetContext(ctx).
		SetHeader("X-Trace-Id", uuid.NewString())
}

// ListSavedMessages implements [TableStore].
func (b *backendAdapter) ListSavedMessages(ctx context.Context) ([]models.SavedMessage, error) {
	resp, err := b.request(ctx).
		SetQueryParam("user_id", "eq."+b.ownerID).
		SetQueryParam("is_saved", "eq.true").
		SetQueryParam("order", "created_at.desc").
		SetQueryParam("select", "*").
		Get("/rest/v1/" + tableMessages)
	if err != nil {
		return nil, fmt.Errorf("list saved messages request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.SavedMessage
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode saved messages: %w", err)
	}
	return rows, nil
}

// InsertMessage implements [TableStore]. The owner id is stamped onto the row
// unconditionally; no other caller-supplied owner is ever sent.
func (b *backendAdapter) InsertMessage(ctx context.Context, msg models.SavedMessage) error {
	row := map[string]any{
		"session_id":      msg.SessionID,
		"sender":          msg.Sender,
		"message_content": msg.MessageContent,
		"user_id":         b.ownerID,
	}
	if msg.IsSaved {
		row["is_saved"] = true
	}

	resp, err := b.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]map[string]any{row}).
		Post("/rest/v1/" + tableMessages)
	if err != nil {
		return fmt.Errorf("insert message request: %w", err)
	}
	return mapHTTPError(resp)
}

// MarkMessageSaved implements [TableStore]. The row is matched by session,
// sender and exact content, mirroring how the save control identifies an
// in-memory chat message that has no backend id yet.
func (b *backendAdapter) MarkMessageSaved(ctx context.Context, sessionID string, sender models.Sender, content string) error {
	resp, err := b.request(ctx).
		SetQueryParam("session_id", "eq."+sessionID).
		SetQueryParam("sender", "eq."+string(sender)).
		SetQueryParam("message_content", "eq."+content).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{"is_saved": true}).
		Patch("/rest/v1/" + tableMessages)
	if err != nil {
		return fmt.Errorf("mark message saved request: %w", err)
	}
	return mapHTTPError(resp)
}

// DeleteMessage implements [TableStore].
func (b *backendAdapter) DeleteMessage(ctx context.Context, id int64) error {
	resp, err := b.request(ctx).
		SetQueryParam("id", fmt.Sprintf("eq.%d", id)).
		SetQueryParam("user_id", "eq."+b.ownerID).
		Delete("/rest/v1/" + tableMessages)
	if err != nil {
		return fmt.Errorf("delete message request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListClips implements [TableStore].
func (b *backendAdapter) ListClips(ctx context.Context) ([]models.SavedClip, error) {
	resp, err := b.request(ctx).
		SetQueryParam("user_id", "eq."+b.ownerID).
		SetQueryParam("order", "created_at.desc").
		SetQueryParam("select", "*").
		Get("/rest/v1/" + tableClips)
	if err != nil {
		return nil, fmt.Errorf("list clips request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.SavedClip
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode clips: %w", err)
	}
	return rows, nil
}

// InsertClip implements [TableStore].
func (b *backendAdapter) InsertClip(ctx context.Context, clip models.SavedClip) error {
	row := map[string]any{
		"user_id":     b.ownerID,
		"description": clip.Description,
		"source":      clip.Source,
		"intel_query": clip.IntelQuery,
		"tags":        clip.Tags,
		"notes":       clip.Notes,
	}

	resp, err := b.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]map[string]any{row}).
		Post("/rest/v1/" + tableClips)
	if err != nil {
		return fmt.Errorf("insert clip request: %w", err)
	}
	return mapHTTPError(resp)
}

// DeleteClip implements [TableStore].
func (b *backendAdapter) DeleteClip(ctx context.Context, id int64) error {
	resp, err := b.request(ctx).
		SetQueryParam("id", fmt.Sprintf("eq.%d", id)).
		SetQueryParam("user_id", "eq."+b.ownerID).
		Delete("/rest/v1/" + tableClips)
	if err != nil {
		return fmt.Errorf("delete clip request: %w", err)
	}
	return mapHTTPError(resp)
}

// ListCreds implements [TableStore]. The credentials table carries no owner
// column; isolation for it is entirely the backend's row policy.
func (b *backendAdapter) ListCreds(ctx context.Context) ([]models.BunkerCred, error) {
	resp, err := b.request(ctx).
		SetQueryParam("order", "created_at.desc").
		SetQueryParam("select", "*").
		Get("/rest/v1/" + tableCreds)
	if err != nil {
		return nil, fmt.Errorf("list creds request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var rows []models.BunkerCred
	if err = json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode creds: %w", err)
	}
	return rows, nil
}

// InsertCred implements [TableStore].
func (b *backendAdapter) InsertCred(ctx context.Context, cred models.BunkerCred) error {
	resp, err := b.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]map[string]any{{"password": cred.Password}}).
		Post("/rest/v1/" + tableCreds)
	if err != nil {
		return fmt.Errorf("insert cred request: %w", err)
	}
	return mapHTTPError(resp)
}

// DeleteCred implements [TableStore].
func (b *backendAdapter) DeleteCred(ctx context.Context, id int64) error {
	resp, err := b.request(ctx).
		SetQueryParam("id", fmt.Sprintf("eq.%d", id)).
		Delete("/rest/v1/" + tableCreds)
	if err != nil {
		return fmt.Errorf("delete cred request: %w", err)
	}
	return mapHTTPError(resp)
}
