// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/nirmalsolanki-business/ghost-console/models"
)

// ListObjects implements [ObjectStorage]. The stash bucket is flat, so only
// the root directory is ever listed.
func (b *backendAdapter) ListObjects(ctx context.Context) ([]models.StorageObject, error) {
	resp, err := b.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"prefix": "",
			"limit":  100,
			"offset": 0,
		}).
		Post("/storage/v1/object/list/" + b.bucket)
	if err != nil {
		return nil, fmt.Errorf("list objects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var objects []models.StorageObject
	if err = json.Unmarshal(resp.Body(), &objects); err != nil {
		return nil, fmt.Errorf("decode object listing: %w", err)
	}
	return objects, nil
}

// PublicURL implements [ObjectStorage].
func (b *backendAdapter) PublicURL(path string) string {
	return b.baseURL + "/storage/v1/object/public/" + b.bucket + "/" + url.PathEscape(path)
}

// Upload implements [ObjectStorage].
func (b *backendAdapter) Upload(ctx context.Context, path string, contentType string, data []byte) error {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := b.request(ctx).
		SetHeader("Content-Type", contentType).
		SetBody(data).
		Post("/storage/v1/object/" + b.bucket + "/" + url.PathEscape(path))
	if err != nil {
		return fmt.Errorf("upload object request: %w", err)
	}
	return mapHTTPError(resp)
}

// Remove implements [ObjectStorage].
func (b *backendAdapter) Remove(ctx context.Context, path string) error {
	resp, err := b.request(ctx).
		Delete("/storage/v1/object/" + b.bucket + "/" + url.PathEscape(path))
	if err != nil {
		return fmt.Errorf("remove object request: %w", err)
	}
	return mapHTTPError(resp)
}
