// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"

	"github.com/nirmalsolanki-business/ghost-console/models"
)

// ChatService runs BlackWire conversations: an in-memory transcript keyed by
// a per-session id, one relay round-trip per operator message.
type ChatService interface {
	// SessionID returns the id of the active conversation.
	SessionID() string

	// Send records the operator's message, invokes the relay and records the
	// agent's reply (or an error turn). Both new turns are returned in order.
	Send(ctx context.Context, text string) []models.ChatMessage

	// History returns the transcript of the active session, oldest first.
	History() []models.ChatMessage

	// SaveAgentMessage marks an agent turn saved in the backend and flips the
	// local Saved flag on success.
	SaveAgentMessage(ctx context.Context, messageID string) error

	// Reset clears the transcript and issues a fresh session id.
	Reset()
}

// BriefService executes single-shot mission briefs.
type BriefService interface {
	// Execute sends one mission request and returns the agent's text. A
	// failure is returned as the on-screen error literal, not an error value.
	Execute(ctx context.Context, mission string) string

	// SaveResult persists a brief result as a saved message row.
	SaveResult(ctx context.Context, mission, result string) error
}

// IntelResult carries both halves of one dual-blade query.
type IntelResult struct {
	Query  string
	Claude string
	OpenAI string
}

// IntelService fires dual-blade queries at both AIs concurrently.
type IntelService interface {
	// Query runs both blades for the given query and returns both results.
	// Each side fails independently; a failed side carries its error literal.
	Query(ctx context.Context, query string) IntelResult

	// SaveClip persists one blade's response as a clip row.
	SaveClip(ctx context.Context, query, source, response string) error
}

// DispatchOutcome is the result of one SignalBlast deployment attempt.
type DispatchOutcome struct {
	// OK reports whether the dispatch was accepted by the relay.
	OK bool

	// Status is the status-bar text to show for this attempt.
	Status string
}

// DispatchService validates and deploys SignalBlast forms.
type DispatchService interface {
	// Validate checks a dispatch form and returns the on-screen error text
	// for the first failing rule, or "" when the form is deployable.
	Validate(form models.SignalBlastPayload) string

	// Deploy sends the dispatch to the relay. The deploy gate's unlock is
	// consumed only when the relay answers 2xx.
	Deploy(ctx context.Context, form models.SignalBlastPayload) DispatchOutcome
}

// BlackBoxService lists and purges persisted conversation logs.
type BlackBoxService interface {
	// List fetches saved messages from the backend, refreshing the local
	// cache on success and falling back to it on failure.
	List(ctx context.Context) ([]models.SavedMessage, error)

	// Delete removes one saved message row.
	Delete(ctx context.Context, id int64) error
}

// ClipsService lists and purges the saved-clips vault.
type ClipsService interface {
	List(ctx context.Context) ([]models.SavedClip, error)
	Delete(ctx context.Context, id int64) error
}

// CredsService manages mini-bunker credential rows.
type CredsService interface {
	List(ctx context.Context) ([]models.BunkerCred, error)
	Add(ctx context.Context, password string) error
	Delete(ctx context.Context, id int64) error
}

// StashService manages the zip stash bucket.
type StashService interface {
	// List returns the bucket's files with resolved public URLs, placeholder
	// objects filtered out.
	List(ctx context.Context) ([]models.ZipFile, error)

	// Upload validates and stores one archive under a collision-safe path.
	Upload(ctx context.Context, filename string, data []byte) error

	// Delete removes the object at path.
	Delete(ctx context.Context, path string) error
}

// TelemetryService emits fire-and-forget interaction beacons.
type TelemetryService interface {
	// GlyphClicked reports that the operator activated a glyph. It never
	// surfaces failure. The call waits on the relay like every other
	// service method; callers dispatch it off the interactive loop.
	GlyphClicked(ctx context.Context, glyph string)
}
