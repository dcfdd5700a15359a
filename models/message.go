// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package models

import "time"

// Sender identifies which side of a BlackWire conversation produced a message.
type Sender string

const (
	// SenderUser marks messages typed by the operator.
	SenderUser Sender = "user"

	// SenderAgent marks replies produced by the relay-backed agent.
	SenderAgent Sender = "agent"
)

// ChatMessage is a single turn of a BlackWire session, held in memory only.
// Messages are never deleted client-side; Saved flips to true after the
// corresponding backend row has been marked saved.
type ChatMessage struct {
	// ID is a client-local identifier, unique within the session.
	ID string

	// Sender is the message origin (user or agent).
	Sender Sender

	// Content is the raw message text as typed or as returned by the relay.
	Content string

	// Timestamp records when the message was created locally.
	Timestamp time.Time

	// Saved indicates the message has been persisted with is_saved=true.
	Saved bool
}

// SavedMessage is the persisted form of a chat message as stored in the
// backend messages table. Rows are created by insert, deleted by explicit
// purge, and never updated except for the IsSaved flag.
type SavedMessage struct {
	ID             int64     `json:"id"`
	CreatedAt      time.Time `json:"created_at"`
	SessionID      string    `json:"session_id"`
	Sender         Sender    `json:"sender"`
	MessageContent string    `json:"message_content"`
	IsSaved        bool      `json:"is_saved"`
	UserID         string    `json:"user_id,omitempty"`
}
