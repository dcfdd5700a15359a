// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package models

// Zone selects which downstream automation path handles a relay request.
// The relay multiplexes every heterogeneous action behind one endpoint; the
// console never learns how a zone is implemented.
type Zone string

const (
	// ZoneBreached carries fire-and-forget glyph click telemetry.
	ZoneBreached Zone = "breached"

	// ZoneBlackWire carries one chat turn of a BlackWire session.
	ZoneBlackWire Zone = "blackwire"

	// ZoneClaudeBrief carries a single-shot mission brief request.
	ZoneClaudeBrief Zone = "claude-brief"

	// ZoneDualBlade carries one side of a dual AI intel query.
	ZoneDualBlade Zone = "dual-blade"

	// ZoneSignalBlast carries a channel dispatch (email/telegram/discord).
	ZoneSignalBlast Zone = "signalblast"

	// ZoneSilent carries password verification for gated features.
	ZoneSilent Zone = "silent"
)

// Channel is a SignalBlast dispatch target.
type Channel string

const (
	ChannelEmail    Channel = "email"
	ChannelTelegram Channel = "telegram"
	ChannelDiscord  Channel = "discord"
)

// BladeMode selects which AI the dual-blade zone fires.
type BladeMode string

const (
	BladeClaude BladeMode = "claudefire"
	BladeOpenAI BladeMode = "openaifire"
)

// SilentMode selects which gated feature a silent password check unlocks.
type SilentMode string

const (
	SilentDeploy     SilentMode = "deploy"
	SilentMiniBunker SilentMode = "mini-bunker"
	SilentZipStash   SilentMode = "zip-stash"
)

// BreachedPayload is the telemetry body for ZoneBreached.
type BreachedPayload struct {
	Zone  Zone   `json:"zone"`
	Glyph string `json:"glyph"`
}

// BlackWirePayload is the chat turn body for ZoneBlackWire.
type BlackWirePayload struct {
	Zone      Zone   `json:"zone"`
	SessionID string `json:"session_id"`
	Reply     string `json:"reply"`
}

// BriefPayload is the mission brief body for ZoneClaudeBrief.
type BriefPayload struct {
	Zone    Zone   `json:"zone"`
	Mission string `json:"mission"`
}

// DualBladePayload is the intel query body for ZoneDualBlade.
type DualBladePayload struct {
	Zone  Zone      `json:"zone"`
	Mode  BladeMode `json:"mode"`
	Intel string    `json:"intel"`
}

// SignalBlastPayload is the dispatch body for ZoneSignalBlast. Subject is
// only populated for the email channel.
type SignalBlastPayload struct {
	Zone    Zone    `json:"zone"`
	Channel Channel `json:"channel"`
	Target  string  `json:"target"`
	Subject string  `json:"subject,omitempty"`
	Message string  `json:"message"`
}

// SilentPayload is the password verification body for ZoneSilent.
type SilentPayload struct {
	Zone Zone       `json:"zone"`
	Mode SilentMode `json:"mode"`
	Pass string     `json:"pass"`
}
