// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	errorNoticeDuration  = 2 * time.Second
	deployStatusDuration = 5 * time.Second
)

type noticeKind int

const (
	noticeNone noticeKind = iota
	noticeError
	noticeSuccess
)

// noticeID names one notice instance so expiry timers address exactly the
// notice that scheduled them. Sequence numbers count per notice, so two
// notices may hold the same seq at once; without the id an expiry for one
// could clear the other.
type noticeID int

const (
	noticeMain noticeID = iota
	noticeDeploy
)

// notice is a single ephemeral status line with scheduled auto-clear. Setting
// a new notice bumps the sequence number, which cancels the previous clear
// timer: an expiry message whose id or sequence no longer matches is stale
// and gets dropped.
type notice struct {
	id   noticeID
	text string
	kind noticeKind
	seq  int
}

// set replaces the notice and returns the command that clears it after d.
func (n *notice) set(text string, kind noticeKind, d time.Duration) tea.Cmd {
	n.text = text
	n.kind = kind
	n.seq++

	id, seq := n.id, n.seq
	return tea.Tick(d, func(time.Time) tea.Msg {
		return noticeExpiredMsg{id: id, seq: seq}
	})
}

// expire clears the notice if the expiry addresses it and is still current,
// and reports whether it did.
func (n *notice) expire(msg noticeExpiredMsg) bool {
	if msg.id != n.id || msg.seq != n.seq {
		return false
	}
	n.text = ""
	n.kind = noticeNone
	return true
}

func (n *notice) clear() {
	n.text = ""
	n.kind = noticeNone
	n.seq++
}

// View renders the notice styled by kind, or "" when empty.
func (n notice) View() string {
	switch n.kind {
	case noticeError:
		return errorStyle.Render(n.text)
	case noticeSuccess:
		return successStyle.Render(n.text)
	default:
		return ""
	}
}
