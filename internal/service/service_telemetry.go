// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

type telemetryService struct {
	invoker adapter.RelayInvoker
}

// NewTelemetryService constructs the fire-and-forget telemetry service.
func NewTelemetryService(invoker adapter.RelayInvoker) TelemetryService {
	return &telemetryService{invoker: invoker}
}

// GlyphClicked reports a glyph activation. The outcome is discarded: glyph
// clicks must never slow down or error out the overlay they open.
func (t *telemetryService) GlyphClicked(ctx context.Context, glyph string) {
	t.invoker.Fire(ctx, models.BreachedPayload{
		Zone:  models.ZoneBreached,
		Glyph: glyph,
	})
}
