// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"fmt"
	"strings"

	"github.com/nirmalsolanki-business/ghost-console/internal/content"
)

// homeEntry is one selectable element of the home grid: either a glyph that
// opens an overlay, or an ops-file square that opens the content detail.
type homeEntry struct {
	label   string
	preview string
	target  overlay

	// dossierIdx is set for ops-file squares.
	dossierIdx int
}

type homeModel struct {
	entries []homeEntry
	idx     int
}

func newHomeModel() homeModel {
	entries := []homeEntry{
		{label: "👻 GHOST LAYER", preview: "BlackWire · Ghost Brief · SignalBlast · BlackBox", target: overlayGhost},
		{label: "🗂 MISSION FILES", preview: "Declassified mission archive", target: overlayMissionFiles},
		{label: "⚔ PAYLOAD DECK", preview: "Dual Blade · Clips Vault · Mini Bunker · Zip Stash", target: overlayPayloadDeck},
		{label: "🔮 QUANTUM", preview: "Operator profile", target: overlayQuantum},
	}
	for i, d := range content.Dossiers() {
		entries = append(entries, homeEntry{
			label:      d.Name,
			preview:    d.DescriptionPreview,
			target:     overlayContentDetail,
			dossierIdx: i,
		})
	}
	return homeModel{entries: entries}
}

func (m homeModel) current() homeEntry {
	return m.entries[m.idx]
}

func (m homeModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GHOST SYSTEMS"))
	b.WriteString("  ")
	b.WriteString(subtitleStyle.Render("// INTELLIGENCE PORTFOLIO"))
	b.WriteString("\n\n")

	for i, e := range m.entries {
		cursor := "  "
		label := glyphStyle.Render(e.label)
		if i == m.idx {
			cursor = "> "
			label = glyphFocusedStyle.Render(e.label)
		}
		b.WriteString(fmt.Sprintf("%s%s\n", cursor, label))
		if i == m.idx {
			b.WriteString("    " + subtitleStyle.Render(e.preview) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓ move  enter open  ctrl+c exit"))
	return b.String()
}
