// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package models

import "time"

// SavedClip is a persisted record of an AI response saved from the Dual Blade
// Intel module. Clips are append/delete only; no client-side update exists.
type SavedClip struct {
	ID        int64     `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UserID    string    `json:"user_id"`

	// Description holds the saved response text itself.
	Description string `json:"description"`

	// Source names the blade that produced the response ("Claude"/"OpenAI").
	Source string `json:"source"`

	// IntelQuery is the query that was fired when the response was produced.
	IntelQuery string `json:"intel_query"`

	Tags  string `json:"tags"`
	Notes string `json:"notes"`
}
