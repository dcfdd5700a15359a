// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

// overlay identifies which full-screen layer sits above the home grid. At
// most one overlay is active at a time; opening one closes the current one
// implicitly.
type overlay int

const (
	overlayNone overlay = iota
	overlayGhost
	overlayMissionFiles
	overlayPayloadDeck
	overlayQuantum
	overlayContentDetail
)

// escapeOrder is the priority in which Escape dismisses overlays: the content
// detail closes before anything else, the quantum profile last.
var escapeOrder = []overlay{
	overlayContentDetail,
	overlayGhost,
	overlayMissionFiles,
	overlayPayloadDeck,
	overlayQuantum,
}

// glyph names reported to telemetry when an overlay is opened.
func glyphName(o overlay) string {
	switch o {
	case overlayGhost:
		return "ghost"
	case overlayMissionFiles:
		return "mission-files"
	case overlayPayloadDeck:
		return "payload-deck"
	case overlayQuantum:
		return "quantum"
	case overlayContentDetail:
		return "content-detail"
	default:
		return ""
	}
}
