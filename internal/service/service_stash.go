// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

// ErrNotZipArchive rejects uploads whose name does not end in .zip. The UI
// shows it as "Please select a .zip file".
var ErrNotZipArchive = errors.New("only .zip archives are accepted")

// Storage backends create a placeholder object inside otherwise-empty
// folders; it is infrastructure, not operator data.
const emptyFolderPlaceholder = ".emptyFolderPlaceholder"

type stashService struct {
	storage adapter.ObjectStorage
	logger  *logger.Logger
}

// NewStashService constructs the zip stash service over the configured
// bucket.
func NewStashService(storage adapter.ObjectStorage, log *logger.Logger) StashService {
	return &stashService{storage: storage, logger: log}
}

// List returns the bucket's archives newest-first with resolved public URLs.
// Placeholder objects are filtered out before the listing reaches any view.
func (s *stashService) List(ctx context.Context) ([]models.ZipFile, error) {
	objects, err := s.storage.ListObjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("list stash objects: %w", err)
	}

	files := make([]models.ZipFile, 0, len(objects))
	for _, obj := range objects {
		if obj.Name == emptyFolderPlaceholder {
			continue
		}

		file := models.ZipFile{
			Name:      obj.Name,
			Path:      obj.Name,
			URL:       s.storage.PublicURL(obj.Name),
			CreatedAt: obj.CreatedAt,
		}
		if obj.Metadata != nil {
			file.Size = obj.Metadata.Size
		}
		files = append(files, file)
	}
	return files, nil
}

// Upload stores one archive. The object path is prefixed with the current
// epoch milliseconds so repeated uploads of the same filename never collide.
func (s *stashService) Upload(ctx context.Context, filename string, data []byte) error {
	if !strings.HasSuffix(strings.ToLower(filename), ".zip") {
		return ErrNotZipArchive
	}

	path := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), filename)
	if err := s.storage.Upload(ctx, path, "application/zip", data); err != nil {
		return fmt.Errorf("upload stash archive: %w", err)
	}

	s.logger.Info().
		Str("func", "stashService.Upload").
		Str("path", path).
		Int("size", len(data)).
		Msg("archive uploaded")
	return nil
}

func (s *stashService) Delete(ctx context.Context, path string) error {
	if err := s.storage.Remove(ctx, path); err != nil {
		return fmt.Errorf("delete stash archive: %w", err)
	}
	return nil
}
