// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"sync"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

// spyInvoker records every payload and answers with a scripted result.
type spyInvoker struct {
	mu       sync.Mutex
	payloads []any
	fired    []any

	result adapter.RelayResult
	err    error

	// onInvoke, when set, overrides result/err per payload.
	onInvoke func(payload any) (adapter.RelayResult, error)
}

func (s *spyInvoker) Invoke(_ context.Context, payload any) (adapter.RelayResult, error) {
	s.mu.Lock()
	s.payloads = append(s.payloads, payload)
	s.mu.Unlock()

	if s.onInvoke != nil {
		return s.onInvoke(payload)
	}
	return s.result, s.err
}

func (s *spyInvoker) Fire(_ context.Context, payload any) {
	s.mu.Lock()
	s.fired = append(s.fired, payload)
	s.mu.Unlock()
}

func (s *spyInvoker) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payloads)
}

// spyTables is an in-memory TableStore double. Unset error fields mean
// success.
type spyTables struct {
	mu       sync.Mutex
	inserted []models.SavedMessage
	clips    []models.SavedClip
	creds    []models.BunkerCred
	deleted  []int64

	markedSession string
	markedSender  models.Sender
	markedContent string

	listMessagesRows []models.SavedMessage
	listMessagesErr  error
	insertMessageErr error
	markErr          error
	deleteErr        error
	listClipsRows    []models.SavedClip
	listClipsErr     error
	insertClipErr    error
	listCredsRows    []models.BunkerCred
	listCredsErr     error
	insertCredErr    error
}

func (s *spyTables) ListSavedMessages(context.Context) ([]models.SavedMessage, error) {
	return s.listMessagesRows, s.listMessagesErr
}

func (s *spyTables) InsertMessage(_ context.Context, msg models.SavedMessage) error {
	if s.insertMessageErr != nil {
		return s.insertMessageErr
	}
	s.mu.Lock()
	s.inserted = append(s.inserted, msg)
	s.mu.Unlock()
	return nil
}

func (s *spyTables) MarkMessageSaved(_ context.Context, sessionID string, sender models.Sender, content string) error {
	if s.markErr != nil {
		return s.markErr
	}
	s.mu.Lock()
	s.markedSession, s.markedSender, s.markedContent = sessionID, sender, content
	s.mu.Unlock()
	return nil
}

func (s *spyTables) DeleteMessage(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.mu.Lock()
	s.deleted = append(s.deleted, id)
	s.mu.Unlock()
	return nil
}

func (s *spyTables) ListClips(context.Context) ([]models.SavedClip, error) {
	return s.listClipsRows, s.listClipsErr
}

func (s *spyTables) InsertClip(_ context.Context, clip models.SavedClip) error {
	if s.insertClipErr != nil {
		return s.insertClipErr
	}
	s.mu.Lock()
	s.clips = append(s.clips, clip)
	s.mu.Unlock()
	return nil
}

func (s *spyTables) DeleteClip(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.mu.Lock()
	s.deleted = append(s.deleted, id)
	s.mu.Unlock()
	return nil
}

func (s *spyTables) ListCreds(context.Context) ([]models.BunkerCred, error) {
	return s.listCredsRows, s.listCredsErr
}

func (s *spyTables) InsertCred(_ context.Context, cred models.BunkerCred) error {
	if s.insertCredErr != nil {
		return s.insertCredErr
	}
	s.mu.Lock()
	s.creds = append(s.creds, cred)
	s.mu.Unlock()
	return nil
}

func (s *spyTables) DeleteCred(_ context.Context, id int64) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	s.mu.Lock()
	s.deleted = append(s.deleted, id)
	s.mu.Unlock()
	return nil
}

// spyStorage is an in-memory ObjectStorage double.
type spyStorage struct {
	objects  []models.StorageObject
	listErr  error
	uploads  map[string][]byte
	uploaded []string
	removed  []string
	upErr    error
}

func (s *spyStorage) ListObjects(context.Context) ([]models.StorageObject, error) {
	return s.objects, s.listErr
}

func (s *spyStorage) PublicURL(path string) string {
	return "https://backend.test/storage/v1/object/public/zip-stash/" + path
}

func (s *spyStorage) Upload(_ context.Context, path, _ string, data []byte) error {
	if s.upErr != nil {
		return s.upErr
	}
	if s.uploads == nil {
		s.uploads = make(map[string][]byte)
	}
	s.uploads[path] = data
	s.uploaded = append(s.uploaded, path)
	return nil
}

func (s *spyStorage) Remove(_ context.Context, path string) error {
	s.removed = append(s.removed, path)
	return nil
}

// spyCache is an in-memory CacheRepository double.
type spyCache struct {
	messages    []models.SavedMessage
	clips       []models.SavedClip
	replaceErr  error
	getErr      error
	replacedMsg bool
	replacedClp bool
}

func (s *spyCache) ReplaceSavedMessages(_ context.Context, rows []models.SavedMessage) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.messages = rows
	s.replacedMsg = true
	return nil
}

func (s *spyCache) GetSavedMessages(context.Context) ([]models.SavedMessage, error) {
	return s.messages, s.getErr
}

func (s *spyCache) ReplaceClips(_ context.Context, rows []models.SavedClip) error {
	if s.replaceErr != nil {
		return s.replaceErr
	}
	s.clips = rows
	s.replacedClp = true
	return nil
}

func (s *spyCache) GetClips(context.Context) ([]models.SavedClip, error) {
	return s.clips, s.getErr
}
