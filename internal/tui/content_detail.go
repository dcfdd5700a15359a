// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nirmalsolanki-business/ghost-console/internal/content"
)

// A carousel step blanks the body for the transition interval before the next
// dossier renders. Stepping during a transition is ignored.
const transitionDuration = 300 * time.Millisecond

type contentDetailModel struct {
	carousel *content.Carousel
	body     viewport.Model

	transitioning bool
	transitionSeq int
}

func newContentDetailModel() contentDetailModel {
	vp := viewport.New(80, 24)
	return contentDetailModel{
		carousel: content.NewClampedCarousel(len(content.Dossiers())),
		body:     vp,
	}
}

func (m *contentDetailModel) openAt(idx int) {
	m.carousel.Focus(idx)
	m.transitioning = false
	m.refreshBody()
}

func (m *contentDetailModel) refreshBody() {
	dossiers := content.Dossiers()
	if m.carousel.Size() == 0 {
		m.body.SetContent("")
		return
	}
	m.body.SetContent(dossiers[m.carousel.Index()].Description)
	m.body.GotoTop()
}

func (m *contentDetailModel) step(next bool) tea.Cmd {
	if m.transitioning {
		return nil
	}
	moved := false
	if next {
		moved = m.carousel.Next()
	} else {
		moved = m.carousel.Prev()
	}
	if !moved {
		return nil
	}

	m.transitioning = true
	m.transitionSeq++
	seq := m.transitionSeq
	return tea.Tick(transitionDuration, func(time.Time) tea.Msg {
		return transitionDoneMsg{seq: seq}
	})
}

func (m appModel) updateContentDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.left):
		return m, m.detail.step(false)
	case key.Matches(keyMsg, keys.right):
		return m, m.detail.step(true)
	}

	var cmd tea.Cmd
	m.detail.body, cmd = m.detail.body.Update(keyMsg)
	return m, cmd
}

func (m contentDetailModel) View() string {
	dossiers := content.Dossiers()
	if len(dossiers) == 0 {
		return subtitleStyle.Render("No files on record.")
	}

	d := dossiers[m.carousel.Index()]
	header := titleStyle.Render(d.Name) + "  " +
		subtitleStyle.Render(fmt.Sprintf("[%d/%d]", m.carousel.Index()+1, len(dossiers)))

	body := m.body.View()
	if m.transitioning {
		body = subtitleStyle.Render("▓▓▓ DECRYPTING ▓▓▓")
	}

	nav := ""
	if !m.carousel.AtStart() {
		nav += "← prev  "
	}
	if !m.carousel.AtEnd() {
		nav += "next →  "
	}

	return header + "\n\n" + body + "\n\n" + helpStyle.Render(nav+"↑/↓ scroll  esc close")
}
