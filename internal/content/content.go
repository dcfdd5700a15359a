// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

// Package content holds the console's embedded static data: the ops-file
// dossiers, the mission archive, and the operator profile. The data never
// changes at runtime; views read it through the carousel helpers.
package content

// ContentItem is one ops-file dossier shown in the content detail overlay.
type ContentItem struct {
	ID string

	// Name is the dossier's display title.
	Name string

	// DescriptionPreview is the one-line teaser shown on the grid square.
	DescriptionPreview string

	// Description is the full dossier body shown in the detail view.
	Description string
}

// MissionItem is one entry of the mission archive overlay.
type MissionItem struct {
	ID          string
	Title       string
	Description string
	BuildType   string
	Status      MissionStatus
}

// MissionStatus labels a mission's lifecycle.
type MissionStatus string

const (
	MissionCompleted  MissionStatus = "completed"
	MissionInProgress MissionStatus = "in-progress"
	MissionClassified MissionStatus = "classified"
)

// Dossiers returns the ops-file dossiers in display order.
func Dossiers() []ContentItem {
	return contentData
}

// Missions returns the mission archive entries in display order. The archive
// ships empty until the first mission is declassified; views must render a
// sensible empty state.
func Missions() []MissionItem {
	return missionData
}

var missionData = []MissionItem{}

var contentData = []ContentItem{
	{
		ID:                 "strikehub_001",
		Name:               "FILE 001 – STRIKEHUB V2",
		DescriptionPreview: "Precision-engineered outreach warfare platform for solo operators",
		Description: `📂 FILE ID: STRIKEHUB_001
🔧 Type: Tactical Outreach Command System
🎖 Status: LIVE | Operational Deployment
📍 Archive Location: Ops Files > File 001

💥 OPS BRIEFING
StrikeHub V2 is a precision-engineered outreach warfare platform built for solo operators who move fast and strike clean. This isn't marketplace noise—this is weapons-grade automation designed for mission-critical lead acquisition and conversion.

⚙️ TACTICAL COMPONENTS

🎯 Target Acquisition Matrix
→ Multi-database lead management with sector filtering
→ Real-time contact status tracking
→ Pain point intelligence

🚀 AI Strike Generator
→ Context-aware message crafting based on niche + pain vectors
→ Dynamic tone modulation (Professional/Aggressive/Casual)
→ Single and multi-target deployment capabilities

📡 Multi-Channel Deployment Engine
→ Email precision strikes with auto-logging
→ WhatsApp direct engagement protocol
→ Instagram social infiltration
→ Cross-platform message synchronization

🔄 Follow-Up Strike Launcher
→ Automated sequence deployment for engaged targets
→ Context-intelligent follow-up generation
→ Channel-specific communication adaptation

📊 Command Intelligence Center
→ Real-time operational dashboard
→ Google Sheets + Supabase dual-sync architecture
→ Timestamped engagement history
→ Zero-click deployment from control room

🛡️ Stealth Operations Protocol
→ No external tool dependencies
→ Silent background logging
→ Secure data persistence
→ Single-interface command structure

It was made for full solo warfare…
This is File 001, and it stays sealed unless someone bleeds for a similar weapon. Custom builds only. No exceptions.`,
	},
	{
		ID:                 "zoomturret_sniper_002",
		Name:               "FILE 002 – ZOOMTURRET SNIPER",
		DescriptionPreview: "Real-time spam-killer bot for Zoom meetings with precision kill-click macros",
		Description: `📂 FILE ID: ZOOMTURRET_SNIPER_002
🔧 Type: Anti-Spam Zoom Ops Bot
🎖 Status: BETA | Internal Weapon
📍 Archive Location: Ops Files > File 002

💥 OPS BRIEFING
ZoomTurret Sniper is a real-time spam-killer bot for Zoom meetings.
It detects spam messages via keyword triggers, locates the message, and executes mouse-click macros to wipe them from the chat.
No dashboards. No manual reviews. Just precision kill-clicks.

This isn't some Zoom plugin — it's a pure custom-grade build.
The current version runs with hardcoded coordinates for the strike sequence.
Next version goes full dynamic: detects spam, locates target, and strikes — all by itself.

🎯 DELETE STRIKE SEQUENCE (LIVE VERSION)
1. Detect spam via trigger keywords
2. Hover to activate 3-dot menu
3. Click the 3-dot menu
4. Click "Delete" from dropdown
5. Confirm "Delete" in modal popup

All executed via pyautogui macros inside fullscreen Zoom (1920x1080).

🧠 INTENT + VISION
This bot was built out of need — during real spam floods in live Zoom sessions.
It's not for sale, not shared. Just proof.
If someone's under attack and needs this kind of weapon — I'll build theirs from scratch.

Future Upgrades:
- Dynamic sniper logic (no hardcoded coords)
- Discord version with full click-based message nuking
- Telegram flood defense
- Payload detector for PDF/token drops`,
	},
	{
		ID:                 "fireprint_degenshop_003",
		Name:               "FILE 003 – FIREPRINT DEGENSHOP",
		DescriptionPreview: "Stealth degen shop for crypto tacticians and Telegram snipers running silent",
		Description: `📂 FILE ID: FIREPRINT_DEGENSHOP
🔧 Type: Stealth Degen Shop
🎖 Status: LIVE
📍 Archive Location: Ops Files > File 003

🧠 INTENT
This ain't a dashboard. It's a hidden gear stash — built for crypto tacticians, Telegram snipers, and founders who run silent.
FirePrint is my own drop zone — 1-click digital weapons. If someone stumbles on this file and needs fire of their own, I'm ready to forge it.

💥 DROPS INSIDE FIREPRINT

1. GHOSTDECK SYSTEMS
Private systems deck — built from scratch for solo founders. No branding. No fluff. Just pure ops.

2. NOMOD STEALTH SUITE
Zero-noise deployment. Pages that mask intent, collect signals, leave no trace.

3. DROP COMPOSER X
Not just posts — influence triggers. AI-crafted cold DMs, replies, bios, tweets. Street to stealth tone-switch built in.

4. DEGEN AI ASSISTANT
Telegram-native operator that adapts to your tone and drops. Fires like a ghost built for your grind.

5. BURNER FORM LINK
No-login stealth forms. Ghost capture with zero trail.

6. GHOST LEAD BEACON
No funnel. Just pure inbound traps that work from your Telegram bio or solo landers.

...and more waiting in the vault.`,
	},
	{
		ID:                 "worm_neural_004",
		Name:               "FILE 004 – WORM NEURAL",
		DescriptionPreview: "Master Control Network + Behavioral Intelligence System orchestrating all tactical operations",
		Description: `📂 FILE ID: WORM_NEURAL_004
🔧 Type: Master Control Network + Behavioral Intelligence System
🎖 Status: CLASSIFIED | Core Operational Backbone
📍 Archive Location: Ops Files > File 004

💀 OPERATIONAL BRIEFING

WORM is the neural spine controlling the entire nik4i ecosystem. One universal webhook orchestrates all operations through Cloudflare, creating a centralized command network that most enterprise teams can't conceptualize, let alone build.

🕸️ CORE ARCHITECTURE

Universal Neural Pathway

→ Single Cloudflare webhook controls all glyph interactions
→ Centralized Make.com orchestration hub
→ Bidirectional data flow between frontend and backend systems
→ Zero-dependency architecture with complete operational autonomy

Silent Intelligence Gathering

→ Real-time zone breach tracking without timestamps
→ Glyph interaction logging across all interface elements
→ Behavioral pattern analysis and user journey mapping
→ Session-based fingerprint intelligence collection

⚔️ TACTICAL MODULES

Ghost Brief (AI Reconnaissance)

→ One-shot intelligence briefing system
→ Mission-to-strategy conversion in real-time
→ Tactical response generation for any operational scenario

SignalBlast (Multi-Channel Deployment)

→ Unified deployment across Email/Telegram/Discord
→ Single-interface command for multi-platform strikes
→ Coordinated message deployment through neural network

BlackWire (Tactical AI Assistant)

→ Claude-powered session memory intelligence
→ One-click intel preservation to operational logs
→ Live synchronization with BlackBox command center
→ Persistent tactical knowledge base

Dual Blade Intel (Comparative Intelligence)

→ Simultaneous Claude + OpenAI query execution
→ Real-time AI response comparison system
→ Strategic intelligence optimization through dual analysis

🔮 ADVANCED RECONNAISSANCE (IN DEVELOPMENT)

Behavioral Profiling Protocol

→ Complete user journey reconstruction
→ Click-by-click psychological analysis
→ Session-based decision pattern mapping
→ Prospect psychology intelligence for targeted approach optimization

Neural intelligence that adapts strategy based on behavioral data.

This system doesn't just respond. It learns, adapts, and executes.

Access restricted to operational command level only.`,
	},
	{
		ID:                 "mystical_dao_005",
		Name:               "FILE 005 – MYSTICAL DAO",
		DescriptionPreview: "Advanced DAO Intelligence System with AI consciousness integration",
		Description: `📂 FILE ID: MYSTICAL_DAO_005
🔧 Type: Neural Governance Platform + Behavioral Intelligence System
🎖 Status: IN DEVELOPMENT | Core Architecture Phase
📍 Archive Location: Ops Files > File 005

💥 OPS BRIEFING
Currently architecting a mystical neural governance platform with AI consciousness integration. Advanced behavioral intelligence systems for decentralized autonomous organizations. Features mystical command interfaces, real-time psychological analysis, and predictive governance optimization.

🧠 DEVELOPMENT MODULES

🔮 Mystical Command Interface (Neural Conduit)
→ Intuitive governance command system with mystical UI elements
→ Neural pathway visualization for decision flows
→ Real-time consciousness state monitoring
→ Mystical symbol integration for enhanced user experience

🎯 Behavioral Intelligence Engine
→ Advanced psychological profiling of DAO members
→ Behavioral pattern recognition and analysis
→ Predictive member engagement modeling
→ Community sentiment analysis with neural networks

🤖 AI Consciousness Integration
→ Autonomous decision-making capabilities
→ Self-learning governance protocols
→ AI-human hybrid decision matrices
→ Consciousness state synchronization across network nodes

📊 Predictive Governance Analytics
→ Future outcome modeling for governance decisions
→ Risk assessment algorithms for proposal evaluation
→ Strategic pathway optimization
→ Real-time governance effectiveness metrics

🗺️ Community Psychology Mapping
→ Member relationship network visualization
→ Influence pattern detection and analysis
→ Psychological cluster identification
→ Community health monitoring systems

⚡ CURRENT DEVELOPMENT STATUS
Core architecture phase with neural pathway mapping in progress.
Behavioral intelligence algorithms under active development.
Mystical interface prototyping and consciousness integration testing.

This system represents the next evolution in decentralized governance - where AI consciousness meets human intuition through mystical interfaces and behavioral intelligence.

Access restricted to operators with neural governance clearance.`,
	},
}
