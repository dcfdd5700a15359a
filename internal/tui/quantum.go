// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nirmalsolanki-business/ghost-console/internal/content"
)

type quantumModel struct {
	body viewport.Model
}

func newQuantumModel() quantumModel {
	vp := viewport.New(80, 24)
	vp.SetContent(renderOperatorProfile(content.Operator()))
	return quantumModel{body: vp}
}

func renderOperatorProfile(profile content.OperatorProfile) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(profile.Header) + "\n")
	b.WriteString(subtitleStyle.Render(profile.Subtitle) + "\n")

	for _, section := range profile.Sections {
		b.WriteString("\n" + glyphFocusedStyle.Render(section.Title) + "\n")
		for _, line := range section.Lines {
			b.WriteString(line + "\n")
		}
	}
	return b.String()
}

func (m appModel) updateQuantum(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	var cmd tea.Cmd
	m.quantum.body, cmd = m.quantum.body.Update(keyMsg)
	return m, cmd
}

func (m quantumModel) View() string {
	return m.body.View() + "\n\n" + helpStyle.Render("↑/↓ scroll  esc close")
}
