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

	"github.com/gorilla/websocket"

	"github.com/nirmalsolanki-business/ghost-console/internal/config"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
)

const (
	realtimeTopic     = "realtime:public:" + tableMessages
	heartbeatInterval = 30 * time.Second
)

// ChangeEvent is one realtime change notification. The console never
// inspects the row payload: any event on a watched table triggers a full
// refetch, and the last completed fetch wins.
type ChangeEvent struct {
	Table string
	Type  string
}

// phoenixMessage is the wire frame of the backend's realtime protocol.
type phoenixMessage struct {
	Topic   string          `json:"topic"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	Ref     string          `json:"ref"`
}

// RealtimeClient holds one websocket subscription to the messages table.
// It is single-use: after Close or a read failure a fresh client must be
// dialed. Reconnect policy belongs to the watcher worker, not here.
type RealtimeClient struct {
	conn   *websocket.Conn
	events chan ChangeEvent
	done   chan struct{}

	logger *logger.Logger
}

// NewRealtimeClient dials the backend's realtime websocket, joins the
// messages-table topic filtered to ownerID, and starts the read and
// heartbeat loops. Events arrive on [RealtimeClient.Events].
func NewRealtimeClient(ctx context.Context, cfg config.Backend, ownerID string, log *logger.Logger) (*RealtimeClient, error) {
	wsURL, err := realtimeURL(cfg.BaseURL, cfg.ServiceKey)
	if err != nil {
		return nil, err
	}

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, wsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("dial realtime websocket: %w", err)
	}

	join := phoenixMessage{
		Topic:   realtimeTopic,
		Event:   "phx_join",
		Payload: json.RawMessage(fmt.Sprintf(`{"config":{"postgres_changes":[{"event":"*","schema":"public","table":%q,"filter":"user_id=eq.%s"}]}}`, tableMessages, ownerID)),
		Ref:     "1",
	}
	if err = conn.WriteJSON(join); err != nil {
		conn.Close()
		return nil, fmt.Errorf("join realtime topic: %w", err)
	}

	c := &RealtimeClient{
		conn:   conn,
		events: make(chan ChangeEvent, 16),
		done:   make(chan struct{}),
		logger: log,
	}

	go c.readLoop()
	go c.heartbeatLoop()

	return c, nil
}

// Events returns the channel on which change notifications are delivered.
// The channel is closed when the connection dies or Close is called.
func (c *RealtimeClient) Events() <-chan ChangeEvent {
	return c.events
}

// Close tears down the websocket. Safe to call more than once.
func (c *RealtimeClient) Close() {
	select {
	case <-c.done:
	default:
		close(c.done)
		c.conn.Close()
	}
}

func (c *RealtimeClient) readLoop() {
	defer close(c.events)
	defer c.Close()

	for {
		var msg phoenixMessage
		if err := c.conn.ReadJSON(&msg); err != nil {
			select {
			case <-c.done:
			default:
				c.logger.Debug().Err(err).Msg("realtime read failed")
			}
			return
		}

		switch msg.Event {
		case "phx_reply", "heartbeat", "presence_state":
			continue
		}

		select {
		case c.events <- ChangeEvent{Table: tableMessages, Type: msg.Event}:
		case <-c.done:
			return
		}
	}
}

func (c *RealtimeClient) heartbeatLoop() {
	t := time.NewTicker(heartbeatInterval)
	defer t.Stop()

	ref := 2
	for {
		select {
		case <-c.done:
			return
		case <-t.C:
			hb := phoenixMessage{
				Topic:   "phoenix",
				Event:   "heartbeat",
				Payload: json.RawMessage(`{}`),
				Ref:     fmt.Sprintf("%d", ref),
			}
			ref++
			if err := c.conn.WriteJSON(hb); err != nil {
				c.logger.Debug().Err(err).Msg("realtime heartbeat failed")
				c.Close()
				return
			}
		}
	}
}

func realtimeURL(baseURL, serviceKey string) (string, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return "", fmt.Errorf("invalid backend base url: %w", err)
	}

	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	case "http":
		u.Scheme = "ws"
	default:
		return "", fmt.Errorf("unsupported backend scheme %q", u.Scheme)
	}

	u.Path = "/realtime/v1/websocket"
	q := u.Query()
	q.Set("apikey", serviceKey)
	q.Set("vsn", "1.0.0")
	u.RawQuery = q.Encode()

	return u.String(), nil
}
