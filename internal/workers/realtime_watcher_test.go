// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/config"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
)

func failingDialer(count *atomic.Int64) RealtimeDialer {
	return func(ctx context.Context) (*adapter.RealtimeClient, error) {
		count.Add(1)
		return nil, assert.AnError
	}
}

// ── Lifecycle ────────────────────────────────────────────────────────────────

func TestRealtimeWatcher_StopBeforeStart(t *testing.T) {
	var dials atomic.Int64
	w := NewRealtimeWatcher(failingDialer(&dials), config.Workers{}, func() {}, logger.Nop())

	assert.NotPanics(t, w.Stop)
	assert.Zero(t, dials.Load())
}

func TestRealtimeWatcher_StopTerminatesLoop(t *testing.T) {
	var dials atomic.Int64
	cfg := config.Workers{RealtimeRetryInterval: time.Millisecond}
	w := NewRealtimeWatcher(failingDialer(&dials), cfg, func() {}, logger.Nop())

	w.Start(context.Background())
	require.Eventually(t, func() bool { return dials.Load() > 0 }, time.Second, time.Millisecond)

	w.Stop()
	settled := dials.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, dials.Load(), "a stopped watcher must not keep dialing")
}

func TestRealtimeWatcher_ContextCancelTerminatesLoop(t *testing.T) {
	var dials atomic.Int64
	cfg := config.Workers{RealtimeRetryInterval: time.Millisecond}
	w := NewRealtimeWatcher(failingDialer(&dials), cfg, func() {}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	require.Eventually(t, func() bool { return dials.Load() > 0 }, time.Second, time.Millisecond)

	cancel()
	w.Stop()
}

func TestRealtimeWatcher_RestartStopsPreviousLoop(t *testing.T) {
	var dials atomic.Int64
	cfg := config.Workers{RealtimeRetryInterval: time.Millisecond}
	w := NewRealtimeWatcher(failingDialer(&dials), cfg, func() {}, logger.Nop())

	w.Start(context.Background())
	w.Start(context.Background())
	require.Eventually(t, func() bool { return dials.Load() > 1 }, time.Second, time.Millisecond)

	w.Stop()
	settled := dials.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, settled, dials.Load())
}

// ── Retry behaviour ──────────────────────────────────────────────────────────

func TestRealtimeWatcher_RedialsAfterFailure(t *testing.T) {
	var dials atomic.Int64
	cfg := config.Workers{RealtimeRetryInterval: time.Millisecond}
	w := NewRealtimeWatcher(failingDialer(&dials), cfg, func() {}, logger.Nop())

	w.Start(context.Background())
	defer w.Stop()

	require.Eventually(t, func() bool { return dials.Load() >= 3 }, time.Second, time.Millisecond,
		"a failed dial is retried after the configured interval")
}

func TestNewRealtimeWatcher_DefaultsRetryInterval(t *testing.T) {
	w := NewRealtimeWatcher(failingDialer(&atomic.Int64{}), config.Workers{}, func() {}, logger.Nop())
	assert.Equal(t, defaultRetryInterval, w.retry)
}
