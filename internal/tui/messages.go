// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"github.com/nirmalsolanki-business/ghost-console/internal/service"
	"github.com/nirmalsolanki-business/ghost-console/models"
)

// tunnelDoneMsg ends the boot loading tunnel.
type tunnelDoneMsg struct{}

// transitionDoneMsg ends a content-detail carousel transition.
type transitionDoneMsg struct{ seq int }

// noticeExpiredMsg clears the addressed notice if its sequence still matches.
type noticeExpiredMsg struct {
	id  noticeID
	seq int
}

// revealExpiredMsg re-masks a bunker password after the reveal window.
type revealExpiredMsg struct{ seq int }

type chatRepliedMsg struct {
	turns []models.ChatMessage
}

type chatSavedMsg struct {
	messageID string
	err       error
}

type briefDoneMsg struct {
	mission string
	result  string
}

type briefSavedMsg struct{ err error }

type intelDoneMsg struct {
	result service.IntelResult
}

type clipSavedMsg struct{ err error }

// verifyDoneMsg carries the outcome of a gate password check. Feature routes
// the message to the prompt that asked for it.
type verifyDoneMsg struct {
	feature gatedFeature
	key     string
	err     error
}

type deployDoneMsg struct {
	channel models.Channel
	outcome service.DispatchOutcome
}

type blackBoxLoadedMsg struct {
	rows []models.SavedMessage
	err  error
}

type clipsLoadedMsg struct {
	rows []models.SavedClip
	err  error
}

type credsLoadedMsg struct {
	rows []models.BunkerCred
	err  error
}

type stashLoadedMsg struct {
	files []models.ZipFile
	err   error
}

type rowDeletedMsg struct {
	section deckSection
	err     error
}

type logDeletedMsg struct{ err error }

type credAddedMsg struct{ err error }

type uploadDoneMsg struct{ err error }

type copiedMsg struct{ err error }

// realtimeChangedMsg is injected from the realtime watcher goroutine when the
// messages table changes remotely.
type realtimeChangedMsg struct{}
