// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nirmalsolanki-business/ghost-console/internal/service"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

type appModel struct {
	ctx      context.Context
	services *service.Services

	loading  loadingModel
	home     homeModel
	active   overlay
	ghost    ghostModel
	deck     deckModel
	detail   contentDetailModel
	missions missionFilesModel
	quantum  quantumModel

	prompt        passwordPrompt
	promptFeature gatedFeature

	mainNotice notice
}

func newAppModel(ctx context.Context, services *service.Services) appModel {
	return appModel{
		ctx:      ctx,
		services: services,
		loading:  newLoadingModel(),
		home:     newHomeModel(),
		ghost:    newGhostModel(),
		deck:     newDeckModel(),
		detail:   newContentDetailModel(),
		missions: newMissionFilesModel(),
		quantum:  newQuantumModel(),
		prompt:   newPasswordPrompt(),

		mainNotice: notice{id: noticeMain},
	}
}

func (m appModel) Init() tea.Cmd {
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		w := msg.Width - 6
		h := msg.Height - 8
		if w < 20 {
			w = 20
		}
		if h < 5 {
			h = 5
		}
		m.detail.body.Width = w
		m.detail.body.Height = h
		m.quantum.body.Width = w
		m.quantum.body.Height = h
		return m, nil
	case tunnelDoneMsg:
		if !m.loading.active {
			return m, nil
		}
		m.loading.active = false
		m.active = overlayPayloadDeck
		m.syncDeckFocus()
		return m, m.enterDeckSection()
	case spinner.TickMsg:
		if !m.loading.active {
			return m, nil
		}
		var cmd tea.Cmd
		m.loading.spinner, cmd = m.loading.spinner.Update(msg)
		return m, cmd
	}

	if m.loading.active {
		return m, nil
	}

	if handled, model, cmd := m.updateAsync(msg); handled {
		return model, cmd
	}

	if m.prompt.open {
		return m.updatePrompt(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
		return m.closeTopOverlay(), nil
	}

	switch m.active {
	case overlayNone:
		return m.updateHome(msg)
	case overlayGhost:
		return m.updateGhost(msg)
	case overlayMissionFiles:
		return m.updateMissionFiles(msg)
	case overlayPayloadDeck:
		return m.updateDeck(msg)
	case overlayQuantum:
		return m.updateQuantum(msg)
	case overlayContentDetail:
		return m.updateContentDetail(msg)
	}
	return m, nil
}

// updateAsync handles every message produced by background commands. These
// arrive regardless of which overlay is showing.
func (m appModel) updateAsync(msg tea.Msg) (bool, tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case noticeExpiredMsg:
		m.mainNotice.expire(msg)
		m.ghost.deployStatus.expire(msg)
		return true, m, nil

	case revealExpiredMsg:
		if msg.seq == m.deck.revealSeq {
			m.deck.revealedID = 0
		}
		return true, m, nil

	case transitionDoneMsg:
		if msg.seq == m.detail.transitionSeq {
			m.detail.transitioning = false
			m.detail.refreshBody()
		}
		return true, m, nil

	case chatRepliedMsg:
		m.ghost.chatBusy = false
		if n := len(m.services.Chat.History()); n > 0 {
			m.ghost.chatIdx = n - 1
		}
		return true, m, nil

	case chatSavedMsg:
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Failed to save message", noticeError, errorNoticeDuration)
		}
		return true, m, m.mainNotice.set("INTEL PRESERVED", noticeSuccess, errorNoticeDuration)

	case briefDoneMsg:
		m.ghost.briefBusy = false
		m.ghost.briefMission = msg.mission
		m.ghost.briefResult = msg.result
		return true, m, nil

	case briefSavedMsg:
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Failed to save brief", noticeError, errorNoticeDuration)
		}
		return true, m, m.mainNotice.set("BRIEF ARCHIVED", noticeSuccess, errorNoticeDuration)

	case intelDoneMsg:
		m.deck.intelBusy = false
		m.deck.intel = msg.result
		return true, m, nil

	case clipSavedMsg:
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Failed to save clip", noticeError, errorNoticeDuration)
		}
		return true, m, m.mainNotice.set("CLIP STASHED", noticeSuccess, errorNoticeDuration)

	case verifyDoneMsg:
		model, cmd := m.applyVerifyOutcome(msg)
		return true, model, cmd

	case deployDoneMsg:
		m.ghost.deploying = false
		kind := noticeSuccess
		if !msg.outcome.OK {
			kind = noticeError
		}
		return true, m, m.ghost.deployStatus.set(msg.outcome.Status, kind, deployStatusDuration)

	case blackBoxLoadedMsg:
		m.ghost.logLoading = false
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Failed to load BlackBox", noticeError, errorNoticeDuration)
		}
		m.ghost.logs = msg.rows
		m.ghost.logIdx = clampIndex(m.ghost.logIdx, len(msg.rows))
		return true, m, nil

	case clipsLoadedMsg:
		m.deck.clipsLoading = false
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Failed to load clips", noticeError, errorNoticeDuration)
		}
		m.deck.clips = msg.rows
		m.deck.clipIdx = clampIndex(m.deck.clipIdx, len(msg.rows))
		return true, m, nil

	case credsLoadedMsg:
		m.deck.credsLoad = false
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Failed to load bunker", noticeError, errorNoticeDuration)
		}
		m.deck.creds = msg.rows
		m.deck.credIdx = clampIndex(m.deck.credIdx, len(msg.rows))
		return true, m, nil

	case stashLoadedMsg:
		m.deck.stashLoading = false
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Failed to load stash", noticeError, errorNoticeDuration)
		}
		m.deck.files = msg.files
		m.deck.fileIdx = clampIndex(m.deck.fileIdx, len(msg.files))
		return true, m, nil

	case logDeletedMsg:
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Purge failed", noticeError, errorNoticeDuration)
		}
		m.ghost.logLoading = true
		return true, m, m.cmdLoadBlackBox()

	case rowDeletedMsg:
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Purge failed", noticeError, errorNoticeDuration)
		}
		switch msg.section {
		case deckClips:
			m.deck.clipsLoading = true
			return true, m, m.cmdLoadClips()
		case deckBunker:
			m.deck.credsLoad = true
			return true, m, m.cmdLoadCreds()
		case deckStash:
			m.deck.stashLoading = true
			return true, m, m.cmdLoadStash()
		}
		return true, m, nil

	case credAddedMsg:
		m.deck.credAdding = false
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Failed to stash credential", noticeError, errorNoticeDuration)
		}
		m.deck.credsLoad = true
		return true, m, m.cmdLoadCreds()

	case uploadDoneMsg:
		m.deck.uploading = false
		if msg.err != nil {
			text := "ERROR: Upload failed"
			if errors.Is(msg.err, service.ErrNotZipArchive) {
				text = "Please select a .zip file"
			}
			return true, m, m.mainNotice.set(text, noticeError, errorNoticeDuration)
		}
		m.deck.stashLoading = true
		return true, m, tea.Batch(
			m.mainNotice.set("ARCHIVE STASHED", noticeSuccess, errorNoticeDuration),
			m.cmdLoadStash(),
		)

	case copiedMsg:
		if msg.err != nil {
			return true, m, m.mainNotice.set("ERROR: Copy failed", noticeError, errorNoticeDuration)
		}
		return true, m, m.mainNotice.set("COPIED", noticeSuccess, errorNoticeDuration)

	case realtimeChangedMsg:
		if m.active == overlayGhost && m.ghost.section == ghostBlackBox {
			m.ghost.logLoading = true
			return true, m, m.cmdLoadBlackBox()
		}
		return true, m, nil
	}

	return false, m, nil
}

func (m appModel) updatePrompt(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.promptGate().CancelPrompt(m.prompt.key)
		m.prompt.hide()
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.prompt.checking {
			return m, nil
		}
		password := m.prompt.input.Value()
		if password == "" {
			// Empty code is rejected locally, no relay round-trip.
			return m, m.mainNotice.set("ERROR: Access code required", noticeError, errorNoticeDuration)
		}
		m.prompt.checking = true
		return m, m.cmdVerify(m.promptFeature, m.prompt.key, password)
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(keyMsg)
	return m, cmd
}

func (m appModel) applyVerifyOutcome(msg verifyDoneMsg) (tea.Model, tea.Cmd) {
	m.prompt.checking = false
	m.prompt.input.SetValue("")

	if msg.err != nil {
		text := "ERROR: Verification failed. Connection lost."
		if errors.Is(msg.err, service.ErrAccessDenied) {
			text = "ACCESS DENIED"
		}
		return m, m.mainNotice.set(text, noticeError, errorNoticeDuration)
	}

	m.prompt.hide()
	var followUp tea.Cmd
	switch msg.feature {
	case featureBunker:
		m.deck.credsLoad = true
		followUp = m.cmdLoadCreds()
	case featureStash:
		m.deck.stashLoading = true
		followUp = m.cmdLoadStash()
	}
	return m, tea.Batch(m.mainNotice.set("ACCESS GRANTED", noticeSuccess, errorNoticeDuration), followUp)
}

func (m appModel) promptGate() *service.UnlockGate {
	switch m.promptFeature {
	case featureBunker:
		return m.services.BunkerGate
	case featureStash:
		return m.services.StashGate
	default:
		return m.services.DeployGate
	}
}

func (m appModel) updateHome(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.home.idx > 0 {
			m.home.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.home.idx < len(m.home.entries)-1 {
			m.home.idx++
		}
	case key.Matches(keyMsg, keys.enter):
		entry := m.home.current()
		telemetry := m.cmdGlyphClicked(glyphName(entry.target))

		// The payload deck opens behind the loading tunnel; everything else
		// opens immediately.
		if entry.target == overlayPayloadDeck {
			m.loading.active = true
			return m, tea.Batch(telemetry, m.loading.spinner.Tick, cmdTunnelDone())
		}

		m.active = entry.target
		switch entry.target {
		case overlayContentDetail:
			m.detail.openAt(entry.dossierIdx)
		case overlayGhost:
			m.syncGhostFocus()
		}
		return m, telemetry
	}
	return m, nil
}

// closeTopOverlay dismisses the highest-priority open overlay. With a single
// active overlay the priority collapses to "close what is open", but the
// order is kept explicit so stacking changes stay predictable.
func (m appModel) closeTopOverlay() appModel {
	for _, o := range escapeOrder {
		if m.active == o {
			m.active = overlayNone
			return m
		}
	}
	return m
}

func (m appModel) View() string {
	if m.loading.active {
		return appStyle.Render(m.loading.View())
	}

	var body string
	switch m.active {
	case overlayNone:
		body = m.home.View()
		if s := m.mainNotice.View(); s != "" {
			body += "\n\n" + s
		}
	case overlayGhost:
		locked := m.services.DeployGate.State(string(blastChannels[m.ghost.blastChannel])) != service.GateUnlocked
		body = m.ghost.View(m.services.Chat.History(), m.services.Chat.SessionID(), locked, m.mainNotice)
	case overlayMissionFiles:
		body = m.missions.View()
	case overlayPayloadDeck:
		bunkerLocked := m.services.BunkerGate.State(service.GateKeyMiniBunker) != service.GateUnlocked
		stashLocked := m.services.StashGate.State(service.GateKeyZipStash) != service.GateUnlocked
		body = m.deck.View(bunkerLocked, stashLocked, m.mainNotice)
	case overlayQuantum:
		body = m.quantum.View()
	case overlayContentDetail:
		body = m.detail.View()
	}

	if m.prompt.open {
		body += "\n\n" + m.prompt.View()
	}
	return appStyle.Render(body)
}

func (m appModel) pendingConfirm(slot *int64, id int64) bool {
	if *slot == id {
		*slot = 0
		return true
	}
	*slot = id
	return false
}

func clampIndex(idx, size int) int {
	if idx >= size {
		idx = size - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func (m appModel) cmdSendChat(text string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Chat
	return func() tea.Msg {
		return chatRepliedMsg{turns: svc.Send(ctx, text)}
	}
}

func (m appModel) cmdSaveChatMessage(messageID string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Chat
	return func() tea.Msg {
		return chatSavedMsg{messageID: messageID, err: svc.SaveAgentMessage(ctx, messageID)}
	}
}

func (m appModel) cmdExecuteBrief(mission string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Brief
	return func() tea.Msg {
		return briefDoneMsg{mission: mission, result: svc.Execute(ctx, mission)}
	}
}

func (m appModel) cmdSaveBrief(mission, result string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Brief
	return func() tea.Msg {
		return briefSavedMsg{err: svc.SaveResult(ctx, mission, result)}
	}
}

func (m appModel) cmdQueryIntel(query string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Intel
	return func() tea.Msg {
		return intelDoneMsg{result: svc.Query(ctx, query)}
	}
}

func (m appModel) cmdSaveClip(query, source, response string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Intel
	return func() tea.Msg {
		return clipSavedMsg{err: svc.SaveClip(ctx, query, source, response)}
	}
}

func (m appModel) cmdVerify(feature gatedFeature, gateKey, password string) tea.Cmd {
	ctx := m.ctx
	gate := m.promptGate()
	return func() tea.Msg {
		return verifyDoneMsg{feature: feature, key: gateKey, err: gate.Verify(ctx, gateKey, password)}
	}
}

func (m appModel) cmdDeploy(form models.SignalBlastPayload) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Dispatch
	return func() tea.Msg {
		return deployDoneMsg{channel: form.Channel, outcome: svc.Deploy(ctx, form)}
	}
}

func (m appModel) cmdLoadBlackBox() tea.Cmd {
	ctx := m.ctx
	svc := m.services.BlackBox
	return func() tea.Msg {
		rows, err := svc.List(ctx)
		return blackBoxLoadedMsg{rows: rows, err: err}
	}
}

func (m appModel) cmdDeleteLog(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.BlackBox
	return func() tea.Msg {
		return logDeletedMsg{err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdLoadClips() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Clips
	return func() tea.Msg {
		rows, err := svc.List(ctx)
		return clipsLoadedMsg{rows: rows, err: err}
	}
}

func (m appModel) cmdDeleteClip(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Clips
	return func() tea.Msg {
		return rowDeletedMsg{section: deckClips, err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdLoadCreds() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Creds
	return func() tea.Msg {
		rows, err := svc.List(ctx)
		return credsLoadedMsg{rows: rows, err: err}
	}
}

func (m appModel) cmdAddCred(password string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Creds
	return func() tea.Msg {
		return credAddedMsg{err: svc.Add(ctx, password)}
	}
}

func (m appModel) cmdDeleteCred(id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Creds
	return func() tea.Msg {
		return rowDeletedMsg{section: deckBunker, err: svc.Delete(ctx, id)}
	}
}

func (m appModel) cmdLoadStash() tea.Cmd {
	ctx := m.ctx
	svc := m.services.Stash
	return func() tea.Msg {
		files, err := svc.List(ctx)
		return stashLoadedMsg{files: files, err: err}
	}
}

func (m appModel) cmdUploadArchive(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Stash
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return uploadDoneMsg{err: fmt.Errorf("read archive: %w", err)}
		}
		return uploadDoneMsg{err: svc.Upload(ctx, baseName(path), data)}
	}
}

func (m appModel) cmdDeleteArchive(path string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Stash
	return func() tea.Msg {
		return rowDeletedMsg{section: deckStash, err: svc.Delete(ctx, path)}
	}
}

// cmdGlyphClicked fires the telemetry POST off the update loop so a slow
// relay cannot stall input handling.
func (m appModel) cmdGlyphClicked(glyph string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.Telemetry
	return func() tea.Msg {
		svc.GlyphClicked(ctx, glyph)
		return nil
	}
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

func baseName(path string) string {
	for i := len(path) - 1; i >= 0; i-- {
		if path[i] == '/' || path[i] == '\\' {
			return path[i+1:]
		}
	}
	return path
}
