// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"strings"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

const dispatchTransportErrorText = "ERROR: Connection failed. Signal not deployed."

type dispatchService struct {
	invoker adapter.RelayInvoker
	gate    *UnlockGate
	logger  *logger.Logger
}

// NewDispatchService constructs the SignalBlast dispatch service. The gate is
// keyed by channel; a successful deployment consumes that channel's unlock.
func NewDispatchService(invoker adapter.RelayInvoker, gate *UnlockGate, log *logger.Logger) DispatchService {
	return &dispatchService{invoker: invoker, gate: gate, logger: log}
}

// Validate applies the per-channel required-field rules. Validation failure
// never touches the gate: the channel stays unlocked and the operator can
// correct the form and redeploy without a second password round.
func (d *dispatchService) Validate(form models.SignalBlastPayload) string {
	switch form.Channel {
	case models.ChannelEmail:
		if strings.TrimSpace(form.Target) == "" ||
			strings.TrimSpace(form.Subject) == "" ||
			strings.TrimSpace(form.Message) == "" {
			return "ERROR: All email fields are required"
		}
	case models.ChannelTelegram:
		if strings.TrimSpace(form.Target) == "" || strings.TrimSpace(form.Message) == "" {
			return "ERROR: Target and message are required for Telegram"
		}
	case models.ChannelDiscord:
		if strings.TrimSpace(form.Target) == "" || strings.TrimSpace(form.Message) == "" {
			return "ERROR: Target and message are required for Discord"
		}
	}
	return ""
}

// Deploy sends the dispatch. The unlock is consumed only on a 2xx relay
// answer; a rejected or failed dispatch leaves the channel unlocked so the
// operator can retry without re-verifying.
func (d *dispatchService) Deploy(ctx context.Context, form models.SignalBlastPayload) DispatchOutcome {
	if msg := d.Validate(form); msg != "" {
		return DispatchOutcome{OK: false, Status: msg}
	}

	payload := models.SignalBlastPayload{
		Zone:    models.ZoneSignalBlast,
		Channel: form.Channel,
		Target:  strings.TrimSpace(form.Target),
		Message: strings.TrimSpace(form.Message),
	}
	if form.Channel == models.ChannelEmail {
		payload.Subject = strings.TrimSpace(form.Subject)
	}

	result, err := d.invoker.Invoke(ctx, payload)
	if err != nil {
		d.logger.Err(err).
			Str("func", "dispatchService.Deploy").
			Str("channel", string(form.Channel)).
			Msg("signalblast invoke failed")
		return DispatchOutcome{OK: false, Status: dispatchTransportErrorText}
	}

	if !result.OK {
		return DispatchOutcome{OK: false, Status: "DEPLOYMENT FAILED: " + result.Text}
	}

	d.gate.Consume(string(form.Channel))
	return DispatchOutcome{
		OK:     true,
		Status: strings.ToUpper(string(form.Channel)) + " SIGNAL DEPLOYED SUCCESSFULLY",
	}
}
