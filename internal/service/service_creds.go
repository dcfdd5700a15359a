// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

// ErrEmptyCredential is returned when an add is attempted with a blank
// password field.
var ErrEmptyCredential = errors.New("credential must not be empty")

type credsService struct {
	tables adapter.TableStore
	logger *logger.Logger
}

// NewCredsService constructs the mini-bunker credential service. Credentials
// are opaque strings; the console never interprets them.
func NewCredsService(tables adapter.TableStore, log *logger.Logger) CredsService {
	return &credsService{tables: tables, logger: log}
}

func (c *credsService) List(ctx context.Context) ([]models.BunkerCred, error) {
	creds, err := c.tables.ListCreds(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bunker creds: %w", err)
	}
	return creds, nil
}

func (c *credsService) Add(ctx context.Context, password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrEmptyCredential
	}
	if err := c.tables.InsertCred(ctx, models.BunkerCred{Password: password}); err != nil {
		return fmt.Errorf("add bunker cred: %w", err)
	}
	return nil
}

func (c *credsService) Delete(ctx context.Context, id int64) error {
	if err := c.tables.DeleteCred(ctx, id); err != nil {
		return fmt.Errorf("delete bunker cred: %w", err)
	}
	return nil
}
