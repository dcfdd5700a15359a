// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// The loading tunnel holds the console for a fixed interval between picking
// the payload deck and showing it, whatever the backends are doing.
const loadingTunnelDuration = 2500 * time.Millisecond

type loadingModel struct {
	spinner spinner.Model
	active  bool
}

func newLoadingModel() loadingModel {
	s := spinner.New()
	s.Spinner = spinner.Points
	return loadingModel{spinner: s}
}

func cmdTunnelDone() tea.Cmd {
	return tea.Tick(loadingTunnelDuration, func(time.Time) tea.Msg {
		return tunnelDoneMsg{}
	})
}

func (m loadingModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("GHOST SYSTEMS"))
	b.WriteString("\n\n")
	b.WriteString(glyphStyle.Render("ENTERING THE GRID"))
	b.WriteString("  ")
	b.WriteString(m.spinner.View())
	b.WriteString("\n\n")
	b.WriteString(subtitleStyle.Render("calibrating neural pathways..."))
	return b.String()
}
