// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

func newTestDispatch(spy *spyInvoker) (DispatchService, *UnlockGate) {
	gate := NewUnlockGate(spy, models.SilentDeploy, logger.Nop())
	return NewDispatchService(spy, gate, logger.Nop()), gate
}

func unlockChannel(t *testing.T, gate *UnlockGate, spy *spyInvoker, channel models.Channel) {
	t.Helper()
	prev := spy.onInvoke
	spy.onInvoke = func(any) (adapter.RelayResult, error) {
		return adapter.RelayResult{Text: "Accepted", OK: true}, nil
	}
	require.NoError(t, gate.Verify(context.Background(), string(channel), "code"))
	spy.onInvoke = prev
}

// ── Validate ─────────────────────────────────────────────────────────────────

func TestDispatchService_Validate_EmailRequiresAllFields(t *testing.T) {
	svc, _ := newTestDispatch(&spyInvoker{})

	msg := svc.Validate(models.SignalBlastPayload{
		Channel: models.ChannelEmail,
		Target:  "ops@ghost.net",
		Message: "strike",
	})
	assert.Equal(t, "ERROR: All email fields are required", msg)
}

func TestDispatchService_Validate_TelegramRequiresTargetAndMessage(t *testing.T) {
	svc, _ := newTestDispatch(&spyInvoker{})

	msg := svc.Validate(models.SignalBlastPayload{
		Channel: models.ChannelTelegram,
		Target:  "  ",
		Message: "strike",
	})
	assert.Equal(t, "ERROR: Target and message are required for Telegram", msg)
}

func TestDispatchService_Validate_DiscordRequiresTargetAndMessage(t *testing.T) {
	svc, _ := newTestDispatch(&spyInvoker{})

	msg := svc.Validate(models.SignalBlastPayload{
		Channel: models.ChannelDiscord,
		Target:  "https://discord.test/webhook",
		Message: "",
	})
	assert.Equal(t, "ERROR: Target and message are required for Discord", msg)
}

func TestDispatchService_Validate_CompleteFormPasses(t *testing.T) {
	svc, _ := newTestDispatch(&spyInvoker{})

	msg := svc.Validate(models.SignalBlastPayload{
		Channel: models.ChannelEmail,
		Target:  "ops@ghost.net",
		Subject: "op",
		Message: "strike",
	})
	assert.Empty(t, msg)
}

// ── Deploy ───────────────────────────────────────────────────────────────────

func TestDispatchService_Deploy_ValidationFailureSkipsRelay(t *testing.T) {
	spy := &spyInvoker{}
	svc, gate := newTestDispatch(spy)
	unlockChannel(t, gate, spy, models.ChannelTelegram)
	callsAfterUnlock := spy.calls()

	outcome := svc.Deploy(context.Background(), models.SignalBlastPayload{
		Channel: models.ChannelTelegram,
	})

	assert.False(t, outcome.OK)
	assert.Equal(t, "ERROR: Target and message are required for Telegram", outcome.Status)
	assert.Equal(t, callsAfterUnlock, spy.calls(), "invalid form must not reach the relay")
	assert.Equal(t, GateUnlocked, gate.State("telegram"), "validation failure must not consume the unlock")
}

func TestDispatchService_Deploy_SuccessConsumesUnlock(t *testing.T) {
	spy := &spyInvoker{result: adapter.RelayResult{Text: "ok", OK: true}}
	svc, gate := newTestDispatch(spy)
	unlockChannel(t, gate, spy, models.ChannelEmail)

	outcome := svc.Deploy(context.Background(), models.SignalBlastPayload{
		Channel: models.ChannelEmail,
		Target:  " ops@ghost.net ",
		Subject: "op",
		Message: "strike",
	})

	assert.True(t, outcome.OK)
	assert.Equal(t, "EMAIL SIGNAL DEPLOYED SUCCESSFULLY", outcome.Status)
	assert.Equal(t, GateLocked, gate.State("email"), "success consumes the unlock")

	payload, ok := spy.payloads[len(spy.payloads)-1].(models.SignalBlastPayload)
	require.True(t, ok)
	assert.Equal(t, models.ZoneSignalBlast, payload.Zone)
	assert.Equal(t, "ops@ghost.net", payload.Target, "fields are sent trimmed")
}

func TestDispatchService_Deploy_RejectedLeavesUnlock(t *testing.T) {
	spy := &spyInvoker{result: adapter.RelayResult{Text: "quota exceeded", OK: false}}
	svc, gate := newTestDispatch(spy)
	unlockChannel(t, gate, spy, models.ChannelDiscord)

	outcome := svc.Deploy(context.Background(), models.SignalBlastPayload{
		Channel: models.ChannelDiscord,
		Target:  "https://discord.test/webhook",
		Message: "strike",
	})

	assert.False(t, outcome.OK)
	assert.Equal(t, "DEPLOYMENT FAILED: quota exceeded", outcome.Status)
	assert.Equal(t, GateUnlocked, gate.State("discord"), "failed deploy keeps the channel unlocked")
}

func TestDispatchService_Deploy_TransportFailure(t *testing.T) {
	spy := &spyInvoker{err: assert.AnError}
	svc, gate := newTestDispatch(spy)
	unlockChannel(t, gate, spy, models.ChannelTelegram)

	outcome := svc.Deploy(context.Background(), models.SignalBlastPayload{
		Channel: models.ChannelTelegram,
		Target:  "@ghost",
		Message: "strike",
	})

	assert.False(t, outcome.OK)
	assert.Equal(t, "ERROR: Connection failed. Signal not deployed.", outcome.Status)
	assert.Equal(t, GateUnlocked, gate.State("telegram"))
}

func TestDispatchService_Deploy_NonEmailOmitsSubject(t *testing.T) {
	spy := &spyInvoker{result: adapter.RelayResult{Text: "ok", OK: true}}
	svc, gate := newTestDispatch(spy)
	unlockChannel(t, gate, spy, models.ChannelTelegram)

	svc.Deploy(context.Background(), models.SignalBlastPayload{
		Channel: models.ChannelTelegram,
		Target:  "@ghost",
		Subject: "should be dropped",
		Message: "strike",
	})

	payload, ok := spy.payloads[len(spy.payloads)-1].(models.SignalBlastPayload)
	require.True(t, ok)
	assert.Empty(t, payload.Subject)
}
