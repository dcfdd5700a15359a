// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

const chatErrorText = "ERROR: Connection to BlackWire agent failed. Signal lost."

const blackWireSessionPrefix = "bw"

type chatService struct {
	invoker adapter.RelayInvoker
	tables  adapter.TableStore
	logger  *logger.Logger

	mu        sync.Mutex
	sessionID string
	history   []models.ChatMessage
}

// NewChatService constructs the BlackWire chat service with a fresh session.
func NewChatService(invoker adapter.RelayInvoker, tables adapter.TableStore, log *logger.Logger) ChatService {
	return &chatService{
		invoker:   invoker,
		tables:    tables,
		logger:    log,
		sessionID: NewSessionID(blackWireSessionPrefix),
	}
}

func (c *chatService) SessionID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sessionID
}

// Send runs one conversation turn. Persistence of the turns is best-effort:
// a backend insert failure is logged and swallowed so the conversation keeps
// flowing; only the relay round-trip decides what the operator sees.
func (c *chatService) Send(ctx context.Context, text string) []models.ChatMessage {
	c.mu.Lock()
	sessionID := c.sessionID
	c.mu.Unlock()

	userMsg := models.ChatMessage{
		ID:        fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Sender:    models.SenderUser,
		Content:   text,
		Timestamp: time.Now(),
	}
	c.appendTurn(userMsg)
	c.persistTurn(ctx, sessionID, models.SenderUser, text)

	result, err := c.invoker.Invoke(ctx, models.BlackWirePayload{
		Zone:      models.ZoneBlackWire,
		SessionID: sessionID,
		Reply:     text,
	})

	var agentMsg models.ChatMessage
	if err != nil {
		c.logger.Err(err).
			Str("func", "chatService.Send").
			Str("session_id", sessionID).
			Msg("blackwire invoke failed")
		agentMsg = models.ChatMessage{
			ID:        fmt.Sprintf("error_%d", time.Now().UnixMilli()),
			Sender:    models.SenderAgent,
			Content:   chatErrorText,
			Timestamp: time.Now(),
		}
	} else {
		agentMsg = models.ChatMessage{
			ID:        fmt.Sprintf("agent_%d", time.Now().UnixMilli()),
			Sender:    models.SenderAgent,
			Content:   result.Text,
			Timestamp: time.Now(),
		}
		c.persistTurn(ctx, sessionID, models.SenderAgent, result.Text)
	}
	c.appendTurn(agentMsg)

	return []models.ChatMessage{userMsg, agentMsg}
}

func (c *chatService) History() []models.ChatMessage {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.ChatMessage, len(c.history))
	copy(out, c.history)
	return out
}

// SaveAgentMessage flags the backend rows matching the turn as saved, then
// mirrors the flag onto the in-memory transcript.
func (c *chatService) SaveAgentMessage(ctx context.Context, messageID string) error {
	c.mu.Lock()
	sessionID := c.sessionID
	var target *models.ChatMessage
	for i := range c.history {
		if c.history[i].ID == messageID {
			target = &c.history[i]
			break
		}
	}
	c.mu.Unlock()

	if target == nil {
		return fmt.Errorf("chat message %s not found", messageID)
	}

	if err := c.tables.MarkMessageSaved(ctx, sessionID, target.Sender, target.Content); err != nil {
		return fmt.Errorf("mark message saved: %w", err)
	}

	c.mu.Lock()
	for i := range c.history {
		if c.history[i].ID == messageID {
			c.history[i].Saved = true
		}
	}
	c.mu.Unlock()
	return nil
}

func (c *chatService) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = nil
	c.sessionID = NewSessionID(blackWireSessionPrefix)
}

func (c *chatService) appendTurn(msg models.ChatMessage) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.history = append(c.history, msg)
}

func (c *chatService) persistTurn(ctx context.Context, sessionID string, sender models.Sender, content string) {
	err := c.tables.InsertMessage(ctx, models.SavedMessage{
		SessionID:      sessionID,
		Sender:         sender,
		MessageContent: content,
		IsSaved:        false,
	})
	if err != nil {
		c.logger.Warn().Err(err).
			Str("func", "chatService.persistTurn").
			Str("session_id", sessionID).
			Msg("failed to persist chat turn")
	}
}
