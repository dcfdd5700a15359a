// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

// Package service holds the console's behavior: conversation flows, the
// password-gate state machines, dispatch validation, and the persistence
// policies layered over the relay and backend adapters.
package service

import (
	"github.com/nirmalsolanki-business/ghost-console/internal/adapter"
	"github.com/nirmalsolanki-business/ghost-console/internal/logger"
	"github.com/nirmalsolanki-business/ghost-console/internal/store"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

// Gate keys for the single-key gates. The deploy gate is keyed per channel
// instead, using the channel name.
const (
	GateKeyMiniBunker = "mini-bunker"
	GateKeyZipStash   = "zip-stash"
)

// Services groups every console service plus the three unlock gates.
type Services struct {
	Chat      ChatService
	Brief     BriefService
	Intel     IntelService
	Dispatch  DispatchService
	BlackBox  BlackBoxService
	Clips     ClipsService
	Creds     CredsService
	Stash     StashService
	Telemetry TelemetryService

	// DeployGate guards SignalBlast deployment, one key per channel.
	DeployGate *UnlockGate

	// BunkerGate guards the mini-bunker view behind one shared key.
	BunkerGate *UnlockGate

	// StashGate guards the zip stash view behind one shared key.
	StashGate *UnlockGate
}

// NewServices wires the full service layer over the relay invoker, backend
// adapters and local storage.
func NewServices(invoker adapter.RelayInvoker, tables adapter.TableStore, storage adapter.ObjectStorage, storages *store.Storages, log *logger.Logger) *Services {
	deployGate := NewUnlockGate(invoker, models.SilentDeploy, log)
	bunkerGate := NewUnlockGate(invoker, models.SilentMiniBunker, log)
	stashGate := NewUnlockGate(invoker, models.SilentZipStash, log)

	return &Services{
		Chat:      NewChatService(invoker, tables, log),
		Brief:     NewBriefService(invoker, tables, log),
		Intel:     NewIntelService(invoker, tables, log),
		Dispatch:  NewDispatchService(invoker, deployGate, log),
		BlackBox:  NewBlackBoxService(tables, storages.Cache, log),
		Clips:     NewClipsService(tables, storages.Cache, log),
		Creds:     NewCredsService(tables, log),
		Stash:     NewStashService(storage, log),
		Telemetry: NewTelemetryService(invoker),

		DeployGate: deployGate,
		BunkerGate: bunkerGate,
		StashGate:  stashGate,
	}
}

// ResetSession clears conversation state and relocks every gate. Triggered by
// the new-session action in the ghost layer.
func (s *Services) ResetSession() {
	s.Chat.Reset()
	s.DeployGate.Reset()
	s.BunkerGate.Reset()
	s.StashGate.Reset()
}
