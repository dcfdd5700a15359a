// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

// ── List ─────────────────────────────────────────────────────────────────────

func TestStashService_List_FiltersPlaceholder(t *testing.T) {
	storage := &spyStorage{objects: []models.StorageObject{
		{Name: ".emptyFolderPlaceholder"},
		{Name: "1700000000000-drop.zip", CreatedAt: time.Now(), Metadata: &models.StorageObjMeta{Size: 2048}},
	}}
	svc := NewStashService(storage, logger.Nop())

	files, err := svc.List(context.Background())

	require.NoError(t, err)
	require.Len(t, files, 1, "placeholder objects never reach a view")
	assert.Equal(t, "1700000000000-drop.zip", files[0].Name)
	assert.Equal(t, int64(2048), files[0].Size)
	assert.Equal(t, "https://backend.test/storage/v1/object/public/zip-stash/1700000000000-drop.zip", files[0].URL)
}

func TestStashService_List_NilMetadata(t *testing.T) {
	storage := &spyStorage{objects: []models.StorageObject{{Name: "a.zip"}}}
	svc := NewStashService(storage, logger.Nop())

	files, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Zero(t, files[0].Size)
}

func TestStashService_List_BackendFailure(t *testing.T) {
	storage := &spyStorage{listErr: assert.AnError}
	svc := NewStashService(storage, logger.Nop())

	_, err := svc.List(context.Background())
	assert.Error(t, err)
}

// ── Upload ───────────────────────────────────────────────────────────────────

func TestStashService_Upload_RejectsNonZip(t *testing.T) {
	storage := &spyStorage{}
	svc := NewStashService(storage, logger.Nop())

	err := svc.Upload(context.Background(), "notes.txt", []byte("x"))

	assert.ErrorIs(t, err, ErrNotZipArchive)
	assert.Empty(t, storage.uploaded, "rejected upload must not touch storage")
}

func TestStashService_Upload_AcceptsUppercaseExtension(t *testing.T) {
	storage := &spyStorage{}
	svc := NewStashService(storage, logger.Nop())

	require.NoError(t, svc.Upload(context.Background(), "DROP.ZIP", []byte("x")))
	require.Len(t, storage.uploaded, 1)
}

func TestStashService_Upload_PrefixesEpochMillis(t *testing.T) {
	storage := &spyStorage{}
	svc := NewStashService(storage, logger.Nop())

	require.NoError(t, svc.Upload(context.Background(), "drop.zip", []byte("payload")))

	require.Len(t, storage.uploaded, 1)
	assert.Regexp(t, `^\d{13}-drop\.zip$`, storage.uploaded[0])
	assert.Equal(t, []byte("payload"), storage.uploads[storage.uploaded[0]])
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestStashService_Delete(t *testing.T) {
	storage := &spyStorage{}
	svc := NewStashService(storage, logger.Nop())

	require.NoError(t, svc.Delete(context.Background(), "1700000000000-drop.zip"))
	assert.Equal(t, []string{"1700000000000-drop.zip"}, storage.removed)
}
