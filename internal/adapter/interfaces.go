// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package adapter

import (
	"context"

	"github.com/nirmalsolanki-business/ghost-console/models"
)

// RelayResult is the outcome of one remote-action call. The relay always
// answers with plain text; OK mirrors whether the HTTP status was 2xx, which
// matters to deploy flows that consume an unlock only on success.
type RelayResult struct {
	Text string
	OK   bool
}

// RelayInvoker is the single path by which the console produces any effect
// outside the process, besides backend CRUD. Implementations send one JSON
// POST to the fixed relay endpoint and return the raw response body.
type RelayInvoker interface {
	// Invoke sends payload to the relay and returns the response body as
	// text. A transport failure is returned as a non-nil error; a non-2xx
	// response is NOT an error — it comes back as OK=false with the body
	// preserved. Invoke never retries.
	Invoke(ctx context.Context, payload any) (RelayResult, error)

	// Fire sends payload and discards the outcome entirely. Used for click
	// telemetry where no user feedback is wanted.
	Fire(ctx context.Context, payload any)
}

// TableStore is the backend table API consumed by the console: plain
// select-with-filter-and-order, insert, update-by-match and delete-by-id.
// Every operation is scoped to the configured owner identifier; consistency
// beyond the backend's own row filters is explicitly not this client's job.
type TableStore interface {
	// ListSavedMessages returns all rows of the messages table for the
	// owner with is_saved=true, newest first.
	ListSavedMessages(ctx context.Context) ([]models.SavedMessage, error)

	// InsertMessage appends one chat turn to the messages table.
	InsertMessage(ctx context.Context, msg models.SavedMessage) error

	// MarkMessageSaved flips is_saved on the rows matching the session,
	// sender and exact content of a chat message.
	MarkMessageSaved(ctx context.Context, sessionID string, sender models.Sender, content string) error

	// DeleteMessage removes one saved message row by id.
	DeleteMessage(ctx context.Context, id int64) error

	// ListClips returns all saved clips for the owner, newest first.
	ListClips(ctx context.Context) ([]models.SavedClip, error)

	// InsertClip appends one clip row.
	InsertClip(ctx context.Context, clip models.SavedClip) error

	// DeleteClip removes one clip row by id.
	DeleteClip(ctx context.Context, id int64) error

	// ListCreds returns all bunker credentials, newest first.
	ListCreds(ctx context.Context) ([]models.BunkerCred, error)

	// InsertCred appends one credential row.
	InsertCred(ctx context.Context, cred models.BunkerCred) error

	// DeleteCred removes one credential row by id.
	DeleteCred(ctx context.Context, id int64) error
}

// ObjectStorage is the backend bucket API consumed by the zip stash: a flat
// single-directory listing, public URL resolution, upload and remove.
type ObjectStorage interface {
	// ListObjects returns the raw listing of the stash bucket's root.
	ListObjects(ctx context.Context) ([]models.StorageObject, error)

	// PublicURL resolves the public download URL for an object path. It is
	// a pure string operation; no request is made.
	PublicURL(path string) string

	// Upload stores data under path in the stash bucket.
	Upload(ctx context.Context, path string, contentType string, data []byte) error

	// Remove deletes the object at path from the stash bucket.
	Remove(ctx context.Context, path string) error
}
