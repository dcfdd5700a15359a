// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

// Package client assembles the console: adapters, storages, services,
// background workers and the TUI, wired from one config value.
package client

import (
	"context"
	"fmt"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/config"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/internal/service"
	"github.com/nirmalsolanki-business/ghost-console/internal/store"
	"github.com/nirmalsolanki-business/ghost-console/internal/tui"
	"github.com/nirmalsolanki-business/ghost-console/internal/workers"
)

type App struct {
	services *service.Services
	ui       *tui.TUI
	watcher  *workers.RealtimeWatcher
	logger   *logger.Logger
}

func NewApp(cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	relay, err := adapter.NewRelayAdapter(cfg.Relay, log)
	if err != nil {
		return nil, fmt.Errorf("create relay adapter: %w", err)
	}

	backend, err := adapter.NewBackendAdapter(cfg.Backend, cfg.App.OwnerID, log)
	if err != nil {
		return nil, fmt.Errorf("create backend adapter: %w", err)
	}

	storages, err := store.NewStorages(cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create storages: %w", err)
	}

	services := service.NewServices(relay, backend, backend, storages, log)
	ui := tui.New(services, log)

	dial := func(ctx context.Context) (*adapter.RealtimeClient, error) {
		return adapter.NewRealtimeClient(ctx, cfg.Backend, cfg.App.OwnerID, log)
	}
	watcher := workers.NewRealtimeWatcher(dial, cfg.Workers, ui.NotifyRealtimeChange, log)

	return &App{
		services: services,
		ui:       ui,
		watcher:  watcher,
		logger:   log,
	}, nil
}

func (a *App) Run() error {
	ctx := context.Background()

	a.watcher.Start(ctx)
	defer a.watcher.Stop()

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("console loop: %w", err)
	}
	return nil
}
