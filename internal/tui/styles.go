// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51"))
	subtitleStyle = lipgloss.NewStyle().Faint(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)

	glyphStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("45"))
	glyphFocusedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("51")).Underline(true)

	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46"))

	agentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	userStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("250"))

	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("45")).Padding(1, 2)
	paneStyle       = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)
