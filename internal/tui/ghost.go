// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nirmalsolanki-business/ghost-console/internal/service"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

type ghostSection int

const (
	ghostChat ghostSection = iota
	ghostBrief
	ghostBlast
	ghostBlackBox
)

var ghostSectionNames = []string{"BLACKWIRE", "GHOST BRIEF", "SIGNALBLAST", "BLACKBOX"}

var blastChannels = []models.Channel{models.ChannelEmail, models.ChannelTelegram, models.ChannelDiscord}

// Validation failures clear faster than deploy outcomes.
const blastValidationDuration = 3 * time.Second

type ghostModel struct {
	section ghostSection

	chatInput textinput.Model
	chatBusy  bool
	chatIdx   int

	briefInput   textinput.Model
	briefBusy    bool
	briefMission string
	briefResult  string

	blastChannel int
	blastTarget  textinput.Model
	blastSubject textinput.Model
	blastMessage textinput.Model
	blastFocus   int
	deploying    bool
	deployStatus notice

	logs          []models.SavedMessage
	logIdx        int
	logLoading    bool
	pendingDelete int64
}

func newGhostModel() ghostModel {
	chat := textinput.New()
	chat.Placeholder = "transmit to BlackWire..."
	chat.CharLimit = 2000
	chat.Focus()

	brief := textinput.New()
	brief.Placeholder = "state the mission..."
	brief.CharLimit = 2000

	target := textinput.New()
	target.Placeholder = "target"
	target.CharLimit = 500
	subject := textinput.New()
	subject.Placeholder = "subject"
	subject.CharLimit = 500
	message := textinput.New()
	message.Placeholder = "message"
	message.CharLimit = 4000

	return ghostModel{
		chatInput:    chat,
		briefInput:   brief,
		blastTarget:  target,
		blastSubject: subject,
		blastMessage: message,
		deployStatus: notice{id: noticeDeploy},
	}
}

// blastForm assembles the payload for the focused channel from the inputs.
func (g ghostModel) blastForm() models.SignalBlastPayload {
	form := models.SignalBlastPayload{
		Channel: blastChannels[g.blastChannel],
		Target:  g.blastTarget.Value(),
		Message: g.blastMessage.Value(),
	}
	if form.Channel == models.ChannelEmail {
		form.Subject = g.blastSubject.Value()
	}
	return form
}

func (g *ghostModel) blastInputs() []*textinput.Model {
	if blastChannels[g.blastChannel] == models.ChannelEmail {
		return []*textinput.Model{&g.blastTarget, &g.blastSubject, &g.blastMessage}
	}
	return []*textinput.Model{&g.blastTarget, &g.blastMessage}
}

func (g *ghostModel) focusBlastInput() {
	inputs := g.blastInputs()
	if g.blastFocus >= len(inputs) {
		g.blastFocus = 0
	}
	for i, in := range inputs {
		if i == g.blastFocus {
			in.Focus()
		} else {
			in.Blur()
		}
	}
}

func (m appModel) updateGhost(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.tab) {
		m.ghost.section = (m.ghost.section + 1) % 4
		m.ghost.pendingDelete = 0
		m.syncGhostFocus()
		if m.ghost.section == ghostBlackBox && !m.ghost.logLoading {
			m.ghost.logLoading = true
			return m, m.cmdLoadBlackBox()
		}
		return m, nil
	}
	if key.Matches(keyMsg, keys.backtab) {
		m.ghost.section = (m.ghost.section + 3) % 4
		m.ghost.pendingDelete = 0
		m.syncGhostFocus()
		if m.ghost.section == ghostBlackBox && !m.ghost.logLoading {
			m.ghost.logLoading = true
			return m, m.cmdLoadBlackBox()
		}
		return m, nil
	}

	switch m.ghost.section {
	case ghostChat:
		return m.updateGhostChat(keyMsg)
	case ghostBrief:
		return m.updateGhostBrief(keyMsg)
	case ghostBlast:
		return m.updateGhostBlast(keyMsg)
	case ghostBlackBox:
		return m.updateGhostBlackBox(keyMsg)
	}
	return m, nil
}

func (m *appModel) syncGhostFocus() {
	m.ghost.chatInput.Blur()
	m.ghost.briefInput.Blur()
	m.ghost.blastTarget.Blur()
	m.ghost.blastSubject.Blur()
	m.ghost.blastMessage.Blur()

	switch m.ghost.section {
	case ghostChat:
		m.ghost.chatInput.Focus()
	case ghostBrief:
		m.ghost.briefInput.Focus()
	case ghostBlast:
		m.ghost.focusBlastInput()
	}
}

func (m appModel) updateGhostChat(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.enter):
		text := strings.TrimSpace(m.ghost.chatInput.Value())
		if text == "" || m.ghost.chatBusy {
			return m, nil
		}
		m.ghost.chatBusy = true
		m.ghost.chatInput.SetValue("")
		return m, m.cmdSendChat(text)
	case keyMsg.String() == "ctrl+s":
		history := m.services.Chat.History()
		if len(history) == 0 {
			return m, nil
		}
		idx := m.ghost.chatIdx
		if idx < 0 || idx >= len(history) {
			idx = len(history) - 1
		}
		turn := history[idx]
		if turn.Sender != models.SenderAgent || turn.Saved {
			return m, nil
		}
		return m, m.cmdSaveChatMessage(turn.ID)
	case keyMsg.String() == "ctrl+n":
		m.services.ResetSession()
		m.ghost.chatInput.SetValue("")
		m.ghost.chatIdx = 0
		m.ghost.deployStatus.clear()
		return m, nil
	case key.Matches(keyMsg, keys.up):
		if m.ghost.chatIdx > 0 {
			m.ghost.chatIdx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.ghost.chatIdx < len(m.services.Chat.History())-1 {
			m.ghost.chatIdx++
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.ghost.chatInput, cmd = m.ghost.chatInput.Update(keyMsg)
	return m, cmd
}

func (m appModel) updateGhostBrief(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.enter):
		mission := strings.TrimSpace(m.ghost.briefInput.Value())
		if mission == "" || m.ghost.briefBusy {
			return m, nil
		}
		m.ghost.briefBusy = true
		m.ghost.briefResult = ""
		return m, m.cmdExecuteBrief(mission)
	case keyMsg.String() == "ctrl+s":
		if m.ghost.briefResult == "" || m.ghost.briefResult == "ERROR: Failed to execute brief. Connection lost." {
			return m, nil
		}
		return m, m.cmdSaveBrief(m.ghost.briefMission, m.ghost.briefResult)
	case keyMsg.String() == "ctrl+y":
		if m.ghost.briefResult == "" {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.ghost.briefResult)
	}

	var cmd tea.Cmd
	m.ghost.briefInput, cmd = m.ghost.briefInput.Update(keyMsg)
	return m, cmd
}

func (m appModel) updateGhostBlast(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	channel := blastChannels[m.ghost.blastChannel]

	switch {
	case key.Matches(keyMsg, keys.left):
		m.ghost.blastChannel = (m.ghost.blastChannel + 2) % 3
		m.ghost.blastFocus = 0
		m.ghost.focusBlastInput()
		return m, nil
	case key.Matches(keyMsg, keys.right):
		m.ghost.blastChannel = (m.ghost.blastChannel + 1) % 3
		m.ghost.blastFocus = 0
		m.ghost.focusBlastInput()
		return m, nil
	case key.Matches(keyMsg, keys.down):
		m.ghost.blastFocus = (m.ghost.blastFocus + 1) % len(m.ghost.blastInputs())
		m.ghost.focusBlastInput()
		return m, nil
	case key.Matches(keyMsg, keys.up):
		n := len(m.ghost.blastInputs())
		m.ghost.blastFocus = (m.ghost.blastFocus + n - 1) % n
		m.ghost.focusBlastInput()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.ghost.deploying {
			return m, nil
		}
		if m.services.DeployGate.State(string(channel)) != service.GateUnlocked {
			m.services.DeployGate.RequestPassword(string(channel))
			m.prompt.show(string(channel))
			m.promptFeature = featureDeploy
			return m, nil
		}
		if errText := m.services.Dispatch.Validate(m.ghost.blastForm()); errText != "" {
			return m, m.ghost.deployStatus.set(errText, noticeError, blastValidationDuration)
		}
		m.ghost.deploying = true
		return m, m.cmdDeploy(m.ghost.blastForm())
	}

	inputs := m.ghost.blastInputs()
	var cmd tea.Cmd
	*inputs[m.ghost.blastFocus], cmd = inputs[m.ghost.blastFocus].Update(keyMsg)
	return m, cmd
}

func (m appModel) updateGhostBlackBox(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.ghost.logIdx > 0 {
			m.ghost.logIdx--
		}
		m.ghost.pendingDelete = 0
	case key.Matches(keyMsg, keys.down):
		if m.ghost.logIdx < len(m.ghost.logs)-1 {
			m.ghost.logIdx++
		}
		m.ghost.pendingDelete = 0
	case key.Matches(keyMsg, keys.refresh):
		m.ghost.logLoading = true
		return m, m.cmdLoadBlackBox()
	case key.Matches(keyMsg, keys.delete):
		if len(m.ghost.logs) == 0 || m.ghost.logIdx >= len(m.ghost.logs) {
			return m, nil
		}
		id := m.ghost.logs[m.ghost.logIdx].ID
		// First press arms the confirm, second press on the same row fires.
		if m.pendingConfirm(&m.ghost.pendingDelete, id) {
			return m, m.cmdDeleteLog(id)
		}
	}
	return m, nil
}

func (m ghostModel) View(history []models.ChatMessage, sessionID string, deployLocked bool, mainNotice notice) string {
	var b strings.Builder

	for i, name := range ghostSectionNames {
		label := glyphStyle.Render(name)
		if ghostSection(i) == m.section {
			label = glyphFocusedStyle.Render(name)
		}
		b.WriteString(label)
		if i < len(ghostSectionNames)-1 {
			b.WriteString("  |  ")
		}
	}
	b.WriteString("\n\n")

	switch m.section {
	case ghostChat:
		b.WriteString(m.viewChat(history, sessionID))
	case ghostBrief:
		b.WriteString(m.viewBrief())
	case ghostBlast:
		b.WriteString(m.viewBlast(deployLocked))
	case ghostBlackBox:
		b.WriteString(m.viewBlackBox())
	}

	if s := mainNotice.View(); s != "" {
		b.WriteString("\n" + s)
	}
	b.WriteString("\n" + helpStyle.Render("tab section  esc close"))
	return b.String()
}

func (m ghostModel) viewChat(history []models.ChatMessage, sessionID string) string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("SESSION "+sessionID) + "\n\n")

	if len(history) == 0 {
		b.WriteString(subtitleStyle.Render("BlackWire channel open. Transmit when ready.") + "\n")
	}
	for i, turn := range history {
		cursor := "  "
		if i == m.chatIdx {
			cursor = "> "
		}
		saved := ""
		if turn.Saved {
			saved = " ✓"
		}
		line := fmt.Sprintf("%s[%s] %s%s", cursor, turn.Sender, turn.Content, saved)
		if turn.Sender == models.SenderAgent {
			b.WriteString(agentStyle.Render(line) + "\n")
		} else {
			b.WriteString(userStyle.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + m.chatInput.View() + "\n")
	if m.chatBusy {
		b.WriteString(subtitleStyle.Render("AWAITING SIGNAL...") + "\n")
	}
	b.WriteString(helpStyle.Render("enter send  ctrl+s save reply  ctrl+n new session"))
	return b.String()
}

func (m ghostModel) viewBrief() string {
	var b strings.Builder
	b.WriteString(m.briefInput.View() + "\n\n")
	if m.briefBusy {
		b.WriteString(subtitleStyle.Render("EXECUTING BRIEF...") + "\n")
	}
	if m.briefResult != "" {
		b.WriteString(paneStyle.Render(m.briefResult) + "\n")
	}
	b.WriteString(helpStyle.Render("enter execute  ctrl+s save  ctrl+y copy"))
	return b.String()
}

func (m ghostModel) viewBlast(locked bool) string {
	var b strings.Builder

	for i, ch := range blastChannels {
		name := strings.ToUpper(string(ch))
		if i == m.blastChannel {
			b.WriteString(glyphFocusedStyle.Render(name))
		} else {
			b.WriteString(glyphStyle.Render(name))
		}
		b.WriteString("  ")
	}
	if locked {
		b.WriteString(errorStyle.Render("🔒 LOCKED"))
	} else {
		b.WriteString(successStyle.Render("🔓 ARMED"))
	}
	b.WriteString("\n\n")

	b.WriteString(m.blastTarget.View() + "\n")
	if blastChannels[m.blastChannel] == models.ChannelEmail {
		b.WriteString(m.blastSubject.View() + "\n")
	}
	b.WriteString(m.blastMessage.View() + "\n\n")

	if m.deploying {
		b.WriteString(subtitleStyle.Render("DEPLOYING...") + "\n")
	}
	if s := m.deployStatus.View(); s != "" {
		b.WriteString(s + "\n")
	}
	b.WriteString(helpStyle.Render("←/→ channel  ↑/↓ field  enter deploy"))
	return b.String()
}

func (m ghostModel) viewBlackBox() string {
	var b strings.Builder
	if m.logLoading {
		b.WriteString(subtitleStyle.Render("PULLING LOGS...") + "\n")
	} else if len(m.logs) == 0 {
		b.WriteString(subtitleStyle.Render("BlackBox empty. Nothing preserved yet.") + "\n")
	}
	for i, row := range m.logs {
		cursor := "  "
		if i == m.logIdx {
			cursor = "> "
		}
		marker := ""
		if m.pendingDelete != 0 && row.ID == m.pendingDelete && i == m.logIdx {
			marker = errorStyle.Render("  [press d again to purge]")
		}
		b.WriteString(fmt.Sprintf("%s%s · [%s] %s%s\n", cursor, row.CreatedAt.Format("2006-01-02 15:04"), row.Sender, truncate(row.MessageContent, 70), marker))
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ move  d delete  r refresh"))
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
