// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

// Package tui renders the console: the boot tunnel, the home grid of glyphs
// and ops-file squares, and the overlays layered above it.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/internal/service"
)

type TUI struct {
	services *service.Services
	logger   *logger.Logger

	program *tea.Program
}

func New(services *service.Services, log *logger.Logger) *TUI {
	return &TUI{services: services, logger: log}
}

// Run blocks on the terminal event loop until the operator exits.
func (t *TUI) Run(ctx context.Context) error {
	model := newAppModel(ctx, t.services)
	t.program = tea.NewProgram(model, tea.WithAltScreen())
	_, err := t.program.Run()
	return err
}

// NotifyRealtimeChange injects a change signal from the realtime watcher
// goroutine into the event loop. Safe to call before Run; the signal is then
// dropped.
func (t *TUI) NotifyRealtimeChange() {
	if t.program != nil {
		t.program.Send(realtimeChangedMsg{})
	}
}
