// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nirmalsolanki-business/ghost-console/internal/content"
)

// The mission archive wraps around at both ends, unlike the ops-file detail
// which clamps.
type missionFilesModel struct {
	carousel *content.Carousel
}

func newMissionFilesModel() missionFilesModel {
	return missionFilesModel{
		carousel: content.NewWrappingCarousel(len(content.Missions())),
	}
}

func (m appModel) updateMissionFiles(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.left):
		m.missions.carousel.Prev()
	case key.Matches(keyMsg, keys.right):
		m.missions.carousel.Next()
	}
	return m, nil
}

func (m missionFilesModel) View() string {
	missions := content.Missions()

	var b strings.Builder
	b.WriteString(titleStyle.Render("MISSION FILES"))
	b.WriteString("\n\n")

	if len(missions) == 0 {
		b.WriteString(subtitleStyle.Render("ARCHIVE SEALED — awaiting first declassified mission."))
		b.WriteString("\n\n" + helpStyle.Render("esc close"))
		return b.String()
	}

	mission := missions[m.carousel.Index()]
	b.WriteString(glyphFocusedStyle.Render(mission.Title))
	b.WriteString("  " + subtitleStyle.Render(fmt.Sprintf("[%d/%d] %s · %s", m.carousel.Index()+1, len(missions), mission.BuildType, mission.Status)))
	b.WriteString("\n\n" + mission.Description)
	b.WriteString("\n\n" + helpStyle.Render("←/→ cycle  esc close"))
	return b.String()
}
