// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package adapter

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var (
	// ErrUnauthorized is returned when the backend rejects the service key.
	ErrUnauthorized = errors.New("backend unauthorized")

	// ErrNotFound is returned for missing tables, rows or storage objects.
	ErrNotFound = errors.New("backend resource not found")
)

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return ErrUnauthorized
	}
	if resp.StatusCode() == http.StatusNotFound {
		return ErrNotFound
	}

	body := strings.TrimSpace(string(resp.Body()))
	if body == "" {
		body = http.StatusText(resp.StatusCode())
	}
	return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
}
