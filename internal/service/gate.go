// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

// The relay's verdict vocabulary for silent password checks. Anything other
// than the exact accepted literal leaves a gate locked.
const (
	verdictAccepted = "Accepted"
	verdictRejected = "Rejected"
)

var (
	// ErrPasswordRequired is returned for an empty password. No remote
	// call is made in that case.
	ErrPasswordRequired = errors.New("password required")

	// ErrAccessDenied is returned when the relay explicitly rejects the
	// password.
	ErrAccessDenied = errors.New("access denied")

	// ErrVerifyUnavailable is returned when the verification call fails in
	// transport or answers outside the known verdict vocabulary.
	ErrVerifyUnavailable = errors.New("verification unavailable")
)

// GateState is the lifecycle position of one unlock gate.
type GateState int

const (
	// GateLocked is the resting state; deploy attempts prompt for a
	// password instead of dispatching.
	GateLocked GateState = iota

	// GateAwaitingPassword means the password prompt for this key is open.
	GateAwaitingPassword

	// GateUnlocked allows exactly one successful deploy before the gate
	// falls back to GateLocked.
	GateUnlocked
)

// UnlockGate is the per-key two-phase state machine guarding password-gated
// actions: LOCKED → AWAITING_PASSWORD → UNLOCKED → consumed back to LOCKED.
// Keys are independent; unlocking one never affects another. One gate value
// serves one silent mode (deploy, mini-bunker or zip-stash).
type UnlockGate struct {
	invoker adapter.RelayInvoker
	mode    models.SilentMode
	logger  *logger.Logger

	mu     sync.Mutex
	states map[string]GateState
}

// NewUnlockGate constructs a gate whose Verify calls carry mode in the
// silent-zone payload.
func NewUnlockGate(invoker adapter.RelayInvoker, mode models.SilentMode, log *logger.Logger) *UnlockGate {
	return &UnlockGate{
		invoker: invoker,
		mode:    mode,
		logger:  log,
		states:  make(map[string]GateState),
	}
}

// State returns the current state for key. Unknown keys are locked.
func (g *UnlockGate) State(key string) GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.states[key]
}

// RequestPassword moves a locked key to the awaiting-password phase. It is a
// no-op for keys already awaiting or unlocked.
func (g *UnlockGate) RequestPassword(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.states[key] == GateLocked {
		g.states[key] = GateAwaitingPassword
	}
}

// CancelPrompt returns an awaiting-password key to locked without a
// verification attempt.
func (g *UnlockGate) CancelPrompt(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.states[key] == GateAwaitingPassword {
		g.states[key] = GateLocked
	}
}

// Verify submits password for key. The key unlocks if and only if the relay
// answers the exact literal "Accepted" (trimmed, case-sensitive); every other
// outcome — explicit rejection, unexpected text, transport failure — leaves
// the key locked and returns the matching sentinel error.
//
// An empty password short-circuits locally with [ErrPasswordRequired]; the
// awaiting-password phase is kept open so the operator can retype.
func (g *UnlockGate) Verify(ctx context.Context, key, password string) error {
	if strings.TrimSpace(password) == "" {
		return ErrPasswordRequired
	}

	result, err := g.invoker.Invoke(ctx, models.SilentPayload{
		Zone: models.ZoneSilent,
		Mode: g.mode,
		Pass: strings.TrimSpace(password),
	})
	if err != nil {
		g.logger.Debug().Err(err).Str("mode", string(g.mode)).Msg("unlock verification failed")
		g.setState(key, GateLocked)
		return ErrVerifyUnavailable
	}

	switch strings.TrimSpace(result.Text) {
	case verdictAccepted:
		g.setState(key, GateUnlocked)
		return nil
	case verdictRejected:
		g.setState(key, GateLocked)
		return ErrAccessDenied
	default:
		g.setState(key, GateLocked)
		return ErrVerifyUnavailable
	}
}

// Consume relocks key after a successful gated action, making each unlock
// single-use. Calling it on a key that is not unlocked is a no-op.
func (g *UnlockGate) Consume(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.states[key] == GateUnlocked {
		g.states[key] = GateLocked
	}
}

// Reset relocks every key. Invoked on session reset.
func (g *UnlockGate) Reset() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.states = make(map[string]GateState)
}

func (g *UnlockGate) setState(key string, s GateState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.states[key] = s
}
