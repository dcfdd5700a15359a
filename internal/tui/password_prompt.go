// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
)

// gatedFeature routes a verification outcome back to the prompt that asked
// for it.
type gatedFeature int

const (
	featureDeploy gatedFeature = iota
	featureBunker
	featureStash
)

// passwordPrompt is the shared masked-input component for the unlock gates.
type passwordPrompt struct {
	input    textinput.Model
	open     bool
	checking bool

	// key is the gate key being unlocked (channel name or fixed key).
	key string
}

func newPasswordPrompt() passwordPrompt {
	in := textinput.New()
	in.Placeholder = "ACCESS CODE"
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.CharLimit = 128
	return passwordPrompt{input: in}
}

func (p *passwordPrompt) show(key string) {
	p.open = true
	p.checking = false
	p.key = key
	p.input.SetValue("")
	p.input.Focus()
}

func (p *passwordPrompt) hide() {
	p.open = false
	p.checking = false
	p.input.Blur()
	p.input.SetValue("")
}

func (p passwordPrompt) View() string {
	body := titleStyle.Render("RESTRICTED — ENTER ACCESS CODE") + "\n\n" + p.input.View()
	if p.checking {
		body += "\n\n" + subtitleStyle.Render("VERIFYING...")
	} else {
		body += "\n\n" + helpStyle.Render("enter verify  esc cancel")
	}
	return overlayBoxStyle.Render(body)
}
