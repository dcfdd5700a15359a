// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package models

import "time"

// ZipFile is a derived view over one object in the stash bucket. It is never
// created directly; it only reflects storage state after upload or delete.
type ZipFile struct {
	// Name is the object's file name inside the bucket.
	Name string

	// Path is the object key used for public-URL and remove operations.
	// For a flat bucket this equals Name.
	Path string

	// URL is the public download URL resolved for the object.
	URL string

	// Size is the object size in bytes, when the listing reports one.
	Size int64

	// CreatedAt is the object creation time, when the listing reports one.
	CreatedAt time.Time
}

// StorageObject is the raw listing entry returned by the backend object
// storage API before it is resolved into a ZipFile.
type StorageObject struct {
	Name      string          `json:"name"`
	CreatedAt time.Time       `json:"created_at"`
	Metadata  *StorageObjMeta `json:"metadata"`
}

// StorageObjMeta carries the subset of object metadata the console reads.
type StorageObjMeta struct {
	Size int64 `json:"size"`
}
