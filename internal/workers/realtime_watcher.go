// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

// Package workers holds long-running background jobs that run alongside the
// TUI event loop.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/config"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
)

const defaultRetryInterval = 15 * time.Second

// RealtimeDialer abstracts the websocket subscription so the watcher can be
// tested without a live backend.
type RealtimeDialer func(ctx context.Context) (*adapter.RealtimeClient, error)

// RealtimeWatcher keeps one realtime subscription alive and invokes onChange
// for every change notification. Events carry no row data; the callback is
// expected to trigger a full refetch of the watched table.
type RealtimeWatcher struct {
	dial     RealtimeDialer
	onChange func()
	retry    time.Duration
	logger   *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRealtimeWatcher creates a watcher that redials every cfg retry interval
// after a connection dies. The watcher is idle until Start is called.
func NewRealtimeWatcher(dial RealtimeDialer, cfg config.Workers, onChange func(), log *logger.Logger) *RealtimeWatcher {
	retry := cfg.RealtimeRetryInterval
	if retry <= 0 {
		retry = defaultRetryInterval
	}
	return &RealtimeWatcher{
		dial:     dial,
		onChange: onChange,
		retry:    retry,
		logger:   log,
	}
}

// Start launches the background subscription loop. It stops any previously
// running loop first. The goroutine exits when ctx is cancelled or Stop is
// called.
func (w *RealtimeWatcher) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	loopCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	go func() {
		defer w.wg.Done()
		w.run(loopCtx)
	}()
}

// Stop cancels the loop's context and blocks until the goroutine has exited.
// Safe to call when the watcher is not running.
func (w *RealtimeWatcher) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}

func (w *RealtimeWatcher) run(ctx context.Context) {
	for {
		client, err := w.dial(ctx)
		if err != nil {
			w.logger.Debug().Err(err).Msg("realtime dial failed, will retry")
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.retry):
				continue
			}
		}

		w.consume(ctx, client)
		client.Close()

		select {
		case <-ctx.Done():
			return
		case <-time.After(w.retry):
		}
	}
}

// consume drains events until the subscription dies or ctx is cancelled.
func (w *RealtimeWatcher) consume(ctx context.Context, client *adapter.RealtimeClient) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-client.Events():
			if !ok {
				w.logger.Debug().Msg("realtime subscription closed")
				return
			}
			w.logger.Debug().
				Str("table", ev.Table).
				Str("type", ev.Type).
				Msg("realtime change received")
			w.onChange()
		}
	}
}
