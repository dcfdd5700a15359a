// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package models

import "time"

// BunkerCred is an opaque credential pair stored in the bunker_creds table.
// Rows are create/delete only. Whether the password is currently revealed in
// the UI is a transient view concern, not an attribute of this record.
type BunkerCred struct {
	ID        int64     `json:"id"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
