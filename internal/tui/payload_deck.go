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

type deckSection int

const (
	deckIntel deckSection = iota
	deckClips
	deckBunker
	deckStash
)

var deckSectionNames = []string{"DUAL BLADE", "CLIPS VAULT", "MINI BUNKER", "ZIP STASH"}

// A revealed bunker password re-masks itself after this window.
const passwordRevealDuration = 3 * time.Second

type deckModel struct {
	section deckSection

	intelInput textinput.Model
	intelBusy  bool
	intel      service.IntelResult
	intelSide  int

	clips         []models.SavedClip
	clipIdx       int
	clipsLoading  bool
	pendingClip   int64
	pendingCred   int64
	pendingObject string

	creds       []models.BunkerCred
	credIdx     int
	credsLoad   bool
	credInput   textinput.Model
	credAdding  bool
	revealedID  int64
	revealSeq   int

	files        []models.ZipFile
	fileIdx      int
	stashLoading bool
	uploadInput  textinput.Model
	uploading    bool
}

func newDeckModel() deckModel {
	intel := textinput.New()
	intel.Placeholder = "intel query..."
	intel.CharLimit = 2000
	intel.Focus()

	cred := textinput.New()
	cred.Placeholder = "new access credential"
	cred.EchoMode = textinput.EchoPassword
	cred.EchoCharacter = '•'
	cred.CharLimit = 500

	upload := textinput.New()
	upload.Placeholder = "path to .zip archive"
	upload.CharLimit = 1000

	return deckModel{
		intelInput:  intel,
		credInput:   cred,
		uploadInput: upload,
	}
}

func (m appModel) updateDeck(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.Matches(keyMsg, keys.tab) || key.Matches(keyMsg, keys.backtab) {
		if key.Matches(keyMsg, keys.tab) {
			m.deck.section = (m.deck.section + 1) % 4
		} else {
			m.deck.section = (m.deck.section + 3) % 4
		}
		m.deck.pendingClip, m.deck.pendingCred, m.deck.pendingObject = 0, 0, ""
		m.syncDeckFocus()
		return m, m.enterDeckSection()
	}

	switch m.deck.section {
	case deckIntel:
		return m.updateDeckIntel(keyMsg)
	case deckClips:
		return m.updateDeckClips(keyMsg)
	case deckBunker:
		return m.updateDeckBunker(keyMsg)
	case deckStash:
		return m.updateDeckStash(keyMsg)
	}
	return m, nil
}

func (m *appModel) syncDeckFocus() {
	m.deck.intelInput.Blur()
	m.deck.credInput.Blur()
	m.deck.uploadInput.Blur()

	switch m.deck.section {
	case deckIntel:
		m.deck.intelInput.Focus()
	case deckBunker:
		m.deck.credInput.Focus()
	case deckStash:
		m.deck.uploadInput.Focus()
	}
}

// enterDeckSection triggers the load or unlock a section needs on entry. The
// bunker and the stash sit behind their own gates: entering one while locked
// opens the password prompt instead of loading data.
func (m *appModel) enterDeckSection() tea.Cmd {
	switch m.deck.section {
	case deckClips:
		m.deck.clipsLoading = true
		return m.cmdLoadClips()
	case deckBunker:
		if m.services.BunkerGate.State(service.GateKeyMiniBunker) != service.GateUnlocked {
			m.services.BunkerGate.RequestPassword(service.GateKeyMiniBunker)
			m.prompt.show(service.GateKeyMiniBunker)
			m.promptFeature = featureBunker
			return nil
		}
		m.deck.credsLoad = true
		return m.cmdLoadCreds()
	case deckStash:
		if m.services.StashGate.State(service.GateKeyZipStash) != service.GateUnlocked {
			m.services.StashGate.RequestPassword(service.GateKeyZipStash)
			m.prompt.show(service.GateKeyZipStash)
			m.promptFeature = featureStash
			return nil
		}
		m.deck.stashLoading = true
		return m.cmdLoadStash()
	}
	return nil
}

func (m appModel) updateDeckIntel(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.enter):
		query := strings.TrimSpace(m.deck.intelInput.Value())
		if query == "" || m.deck.intelBusy {
			return m, nil
		}
		m.deck.intelBusy = true
		m.deck.intel = service.IntelResult{}
		return m, m.cmdQueryIntel(query)
	case key.Matches(keyMsg, keys.left), key.Matches(keyMsg, keys.right):
		m.deck.intelSide = 1 - m.deck.intelSide
		return m, nil
	case keyMsg.String() == "ctrl+s":
		source, response := m.deck.focusedBlade()
		if response == "" || strings.HasPrefix(response, "ERROR:") {
			return m, nil
		}
		return m, m.cmdSaveClip(m.deck.intel.Query, source, response)
	}

	var cmd tea.Cmd
	m.deck.intelInput, cmd = m.deck.intelInput.Update(keyMsg)
	return m, cmd
}

func (d deckModel) focusedBlade() (source, response string) {
	if d.intelSide == 0 {
		return "Claude", d.intel.Claude
	}
	return "OpenAI", d.intel.OpenAI
}

func (m appModel) updateDeckClips(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.up):
		if m.deck.clipIdx > 0 {
			m.deck.clipIdx--
		}
		m.deck.pendingClip = 0
	case key.Matches(keyMsg, keys.down):
		if m.deck.clipIdx < len(m.deck.clips)-1 {
			m.deck.clipIdx++
		}
		m.deck.pendingClip = 0
	case key.Matches(keyMsg, keys.refresh):
		m.deck.clipsLoading = true
		return m, m.cmdLoadClips()
	case key.Matches(keyMsg, keys.delete):
		if len(m.deck.clips) == 0 || m.deck.clipIdx >= len(m.deck.clips) {
			return m, nil
		}
		id := m.deck.clips[m.deck.clipIdx].ID
		if m.pendingConfirm(&m.deck.pendingClip, id) {
			return m, m.cmdDeleteClip(id)
		}
	}
	return m, nil
}

func (m appModel) updateDeckBunker(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.enter):
		password := m.deck.credInput.Value()
		if strings.TrimSpace(password) == "" || m.deck.credAdding {
			return m, nil
		}
		m.deck.credAdding = true
		m.deck.credInput.SetValue("")
		return m, m.cmdAddCred(password)
	case key.Matches(keyMsg, keys.up):
		if m.deck.credIdx > 0 {
			m.deck.credIdx--
		}
		m.deck.pendingCred = 0
	case key.Matches(keyMsg, keys.down):
		if m.deck.credIdx < len(m.deck.creds)-1 {
			m.deck.credIdx++
		}
		m.deck.pendingCred = 0
	case keyMsg.String() == "ctrl+v":
		if len(m.deck.creds) == 0 || m.deck.credIdx >= len(m.deck.creds) {
			return m, nil
		}
		m.deck.revealedID = m.deck.creds[m.deck.credIdx].ID
		m.deck.revealSeq++
		seq := m.deck.revealSeq
		return m, tea.Tick(passwordRevealDuration, func(time.Time) tea.Msg {
			return revealExpiredMsg{seq: seq}
		})
	case keyMsg.String() == "ctrl+d":
		if len(m.deck.creds) == 0 || m.deck.credIdx >= len(m.deck.creds) {
			return m, nil
		}
		id := m.deck.creds[m.deck.credIdx].ID
		if m.pendingConfirm(&m.deck.pendingCred, id) {
			return m, m.cmdDeleteCred(id)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.deck.credInput, cmd = m.deck.credInput.Update(keyMsg)
	return m, cmd
}

func (m appModel) updateDeckStash(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.enter):
		path := strings.TrimSpace(m.deck.uploadInput.Value())
		if path == "" || m.deck.uploading {
			return m, nil
		}
		m.deck.uploading = true
		m.deck.uploadInput.SetValue("")
		return m, m.cmdUploadArchive(path)
	case key.Matches(keyMsg, keys.up):
		if m.deck.fileIdx > 0 {
			m.deck.fileIdx--
		}
		m.deck.pendingObject = ""
	case key.Matches(keyMsg, keys.down):
		if m.deck.fileIdx < len(m.deck.files)-1 {
			m.deck.fileIdx++
		}
		m.deck.pendingObject = ""
	case keyMsg.String() == "ctrl+y":
		if len(m.deck.files) == 0 || m.deck.fileIdx >= len(m.deck.files) {
			return m, nil
		}
		return m, cmdCopyToClipboard(m.deck.files[m.deck.fileIdx].URL)
	case keyMsg.String() == "ctrl+d":
		if len(m.deck.files) == 0 || m.deck.fileIdx >= len(m.deck.files) {
			return m, nil
		}
		path := m.deck.files[m.deck.fileIdx].Path
		if m.deck.pendingObject == path {
			m.deck.pendingObject = ""
			return m, m.cmdDeleteArchive(path)
		}
		m.deck.pendingObject = path
		return m, nil
	case keyMsg.String() == "ctrl+r":
		m.deck.stashLoading = true
		return m, m.cmdLoadStash()
	}

	var cmd tea.Cmd
	m.deck.uploadInput, cmd = m.deck.uploadInput.Update(keyMsg)
	return m, cmd
}

func (m deckModel) View(bunkerLocked, stashLocked bool, mainNotice notice) string {
	var b strings.Builder

	for i, name := range deckSectionNames {
		label := glyphStyle.Render(name)
		if deckSection(i) == m.section {
			label = glyphFocusedStyle.Render(name)
		}
		b.WriteString(label)
		if i < len(deckSectionNames)-1 {
			b.WriteString("  |  ")
		}
	}
	b.WriteString("\n\n")

	switch m.section {
	case deckIntel:
		b.WriteString(m.viewIntel())
	case deckClips:
		b.WriteString(m.viewClips())
	case deckBunker:
		b.WriteString(m.viewBunker(bunkerLocked))
	case deckStash:
		b.WriteString(m.viewStash(stashLocked))
	}

	if s := mainNotice.View(); s != "" {
		b.WriteString("\n" + s)
	}
	b.WriteString("\n" + helpStyle.Render("tab section  esc close"))
	return b.String()
}

func (m deckModel) viewIntel() string {
	var b strings.Builder
	b.WriteString(m.intelInput.View() + "\n\n")
	if m.intelBusy {
		b.WriteString(subtitleStyle.Render("BOTH BLADES DRAWN...") + "\n\n")
	}

	claudeTitle := "CLAUDE"
	openaiTitle := "OPENAI"
	if m.intelSide == 0 {
		claudeTitle = "▶ " + claudeTitle
	} else {
		openaiTitle = "▶ " + openaiTitle
	}
	if m.intel.Claude != "" || m.intel.OpenAI != "" {
		b.WriteString(titleStyle.Render(claudeTitle) + "\n")
		b.WriteString(paneStyle.Render(m.intel.Claude) + "\n\n")
		b.WriteString(titleStyle.Render(openaiTitle) + "\n")
		b.WriteString(paneStyle.Render(m.intel.OpenAI) + "\n")
	}
	b.WriteString("\n" + helpStyle.Render("enter fire  ←/→ blade  ctrl+s save clip"))
	return b.String()
}

func (m deckModel) viewClips() string {
	var b strings.Builder
	if m.clipsLoading {
		b.WriteString(subtitleStyle.Render("OPENING VAULT...") + "\n")
	} else if len(m.clips) == 0 {
		b.WriteString(subtitleStyle.Render("Vault empty. Save intel from Dual Blade.") + "\n")
	}
	for i, clip := range m.clips {
		cursor := "  "
		if i == m.clipIdx {
			cursor = "> "
		}
		marker := ""
		if m.pendingClip != 0 && clip.ID == m.pendingClip && i == m.clipIdx {
			marker = errorStyle.Render("  [press d again to purge]")
		}
		b.WriteString(fmt.Sprintf("%s[%s] %s%s\n", cursor, clip.Source, truncate(clip.Description, 70), marker))
		if i == m.clipIdx {
			b.WriteString("    " + subtitleStyle.Render("query: "+truncate(clip.IntelQuery, 60)) + "\n")
		}
	}
	b.WriteString("\n" + helpStyle.Render("↑/↓ move  d delete  r refresh"))
	return b.String()
}

func (m deckModel) viewBunker(locked bool) string {
	if locked {
		return errorStyle.Render("🔒 MINI BUNKER SEALED") + "\n" +
			subtitleStyle.Render("Access code required.")
	}

	var b strings.Builder
	if m.credsLoad {
		b.WriteString(subtitleStyle.Render("UNSEALING BUNKER...") + "\n")
	} else if len(m.creds) == 0 {
		b.WriteString(subtitleStyle.Render("Bunker empty.") + "\n")
	}
	for i, cred := range m.creds {
		cursor := "  "
		if i == m.credIdx {
			cursor = "> "
		}
		shown := strings.Repeat("•", 8)
		if cred.ID == m.revealedID {
			shown = cred.Password
		}
		marker := ""
		if m.pendingCred != 0 && cred.ID == m.pendingCred && i == m.credIdx {
			marker = errorStyle.Render("  [press ctrl+d again to purge]")
		}
		b.WriteString(fmt.Sprintf("%s%s · %s%s\n", cursor, cred.CreatedAt.Format("2006-01-02"), shown, marker))
	}
	b.WriteString("\n" + m.credInput.View() + "\n")
	b.WriteString(helpStyle.Render("enter stash  ctrl+v reveal  ctrl+d delete"))
	return b.String()
}

func (m deckModel) viewStash(locked bool) string {
	if locked {
		return errorStyle.Render("🔒 ZIP STASH SEALED") + "\n" +
			subtitleStyle.Render("Access code required.")
	}

	var b strings.Builder
	if m.stashLoading {
		b.WriteString(subtitleStyle.Render("SCANNING STASH...") + "\n")
	} else if len(m.files) == 0 {
		b.WriteString(subtitleStyle.Render("Stash empty.") + "\n")
	}
	for i, f := range m.files {
		cursor := "  "
		if i == m.fileIdx {
			cursor = "> "
		}
		marker := ""
		if m.pendingObject == f.Path && i == m.fileIdx {
			marker = errorStyle.Render("  [press ctrl+d again to purge]")
		}
		b.WriteString(fmt.Sprintf("%s%s (%d bytes)%s\n", cursor, f.Name, f.Size, marker))
	}
	if m.uploading {
		b.WriteString(subtitleStyle.Render("UPLOADING...") + "\n")
	}
	b.WriteString("\n" + m.uploadInput.View() + "\n")
	b.WriteString(helpStyle.Render("enter upload  ctrl+y copy url  ctrl+d delete  ctrl+r refresh"))
	return b.String()
}
