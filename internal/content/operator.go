// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Nirmal Solanki

package content

// ProfileSection is one titled block of the operator profile overlay.
type ProfileSection struct {
	ID    string
	Title string
	Lines []string
}

// OperatorProfile is the static dossier behind the quantum glyph.
type OperatorProfile struct {
	Header   string
	Subtitle string
	Sections []ProfileSection
}

// Operator returns the operator profile shown in the quantum overlay.
func Operator() OperatorProfile {
	return operatorProfile
}

var operatorProfile = OperatorProfile{
	Header:   "OPERATOR PROFILE",
	Subtitle: "🛠️ PSY ARCHITECT | AI SYSTEMS ENGINEER | WEB3 WARFARE",
	Sections: []ProfileSection{
		{
			ID:    "who-i-am",
			Title: "🧠 WHO I AM",
			Lines: []string{
				"I don't run with agencies.",
				"I don't rep collectives.",
				"",
				"I'm a solo operator — built from scratch, wired for execution.",
				"",
				"I move quiet.",
				"I build lethal.",
				"I ship real.",
				"",
				"Neural architect. Behavioral systems engineer.",
				"Web3 warfare operative. DAO intelligence architect.",
				"",
				"Frontend to backend. Webhooks to workflows. Psychology to automation.",
				"Smart contracts to governance engines. On-chain behavior to cross-chain ops.",
				"",
				"No dashboards.",
				"No noise.",
				"Just live ops that read minds and execute on-chain.",
				"",
				"You won't find me on LinkedIn.",
			},
		},
		{
			ID:    "what-i-build",
			Title: "🧱 WHAT I BUILD",
			Lines: []string{
				"➤ Behavioral warfare platforms (psychological profiling + automation)",
				"➤ Multi-AI orchestration systems (Claude + OpenAI coordination)",
				"➤ Full-stack tactical operations (Bolt + Supabase + Make)",
				"➤ Async outreach engines (email, DMs, triggered followups)",
				"➤ Psychological trigger systems (behavioral pattern detection)",
				"➤ Multi-agent relays via webhook orchestration",
				"➤ Sniper bots (Zoom mods, Telegram triggers, UI macros)",
				"➤ Black-ops async systems",
				"➤ Real-time automations firing on behavior + psychology",
				"➤ DAO governance warfare systems (proposal engines + voting intelligence)",
				"➤ Cross-chain behavioral tracking (wallet pattern analysis)",
				"➤ Web3 grant sniping platforms (automated proposal generation)",
				"➤ Smart contract psychological triggers (on-chain behavior detection)",
				"➤ DeFi intelligence systems (liquidity behavior + market psychology)",
			},
		},
		{
			ID:    "stack",
			Title: "⚙️ STACK",
			Lines: []string{
				"Neural Networks • API Integration",
				"Behavioral Analytics",
				"Bolt • Supabase • Make • Node.js • Python",
				"AI Agent Orchestration • Multi-Model Coordination",
				"Tesseract OCR • Telegram Bots • OpenAI Agents",
				"Native webhook choreography • UI sniper flows",
				"Psychological Pattern Recognition",
				"Real-time Intelligence",
				"Coordinate-based macros • Visual region triggers",
			},
		},
		{
			ID:    "web3-arsenal",
			Title: "🛡️ WEB3 WARFARE ARSENAL",
			Lines: []string{
				"➤ Solidity (smart contract warfare)",
				"➤ ethers.js (blockchain interaction ops)",
				"➤ wagmi (React Web3 hooks)",
				"➤ web3.js (native blockchain coordination)",
				"➤ Hardhat (contract deployment ops)",
				"➤ OpenZeppelin (security-grade contracts)",
				"➤ The Graph (on-chain data intelligence)",
				"➤ IPFS (decentralized storage ops)",
				"➤ MetaMask integration (wallet warfare)",
				"➤ WalletConnect (multi-wallet coordination)",
				"➤ Chainlink (oracle intelligence)",
				"➤ Uniswap SDK (DeFi integration ops)",
				"➤ Snapshot (governance intelligence)",
				"➤ Aragon (DAO architecture)",
				"➤ Gnosis Safe (multi-sig coordination)",
			},
		},
		{
			ID:    "psy-architect",
			Title: "🧠 PSY ARCHITECT APPROACH",
			Lines: []string{
				"➤ I don't build tools — I architect digital psychology",
				"➤ Systems that understand human behavior, not just data",
				"➤ Neural networks that predict, not just respond",
				"➤ Deep AI collaboration mastery (Claude partnership)",
				"➤ Behavioral automation across all builds",
				"➤ On-chain psychology — wallet behavior never lies",
				"➤ DAO governance intelligence — voting patterns reveal intent",
				"➤ Cross-chain behavioral profiling — multi-network ops",
				"➤ Behavior doesn't lie — and neither do ops designed to detect it",
			},
		},
		{
			ID:    "how-i-move",
			Title: "🔒 HOW I MOVE",
			Lines: []string{
				"➤ No teams. No templates. Every line is handwired.",
				"➤ Systems aren't pitched — they're deployed.",
				"➤ I don't build for civilians. I weaponize psychology for operators.",
				"➤ Intelligence systems + behavioral profiling = tactical advantage",
				"➤ Web3 native. DAO warfare ready. Cross-chain behavioral ops.",
				"➤ You bring the mission. I return with intelligence-grade systems.",
				"➤ Built from midnight sessions and pressure. Zero corporate thinking.",
			},
		},
		{
			ID:    "contact",
			Title: "💬 CONTACT",
			Lines: []string{
				"I'm not out here making noise.",
				"",
				"But if this intelligence warfare approach resonates —",
				"you already know how to reach me.",
				"",
				"Message with intent.",
				"I move on signal, not small talk.",
				"",
				"📡 t.me/intence_heat22",
			},
		},
		{
			ID:    "operative-code",
			Title: "⚡ OPERATIVE CODE",
			Lines: []string{
				"Every build I drop is war-tuned with behavioral intelligence.",
				"",
				"Every line wired without noise, every system reads minds.",
				"",
				"Every smart contract weaponized with psychological triggers.",
				"",
				"I don't clone tools. I weaponize workflows with AI networks.",
				"",
				"I don't build apps. I architect digital psychology.",
				"",
				"I don't deploy contracts. I architect on-chain warfare.",
				"",
				"Precision only.",
				"",
				"I'm not waiting for opportunity —",
				"I'm building the systems they didn't know they needed",
			},
		},
		{
			ID:    "operative-id",
			Title: "🔐 OPERATIVE ID",
			Lines: []string{
				"PSY ARCHITECT | WEB3 WARFARE ACTIVE",
				"",
				"🧭 NORTH STAR",
				"",
				"$100K intelligence systems contract",
			},
		},
		{
			ID:    "current-targets",
			Title: "🎯 CURRENT TARGETS",
			Lines: []string{
				"➤ Closing a $100K behavioral intelligence contract",
				"➤ Architecting intelligence warfare systems for enterprise operations",
				"➤ Deploying AI-human hybrid platforms",
				"➤ Web3 DAO governance intelligence contracts",
				"➤ Cross-chain behavioral profiling systems",
				"➤ Seeking one mission-critical partnership, not many clients",
			},
		},
		{
			ID:    "recent-deployment",
			Title: "🕸️ RECENT DEPLOYMENT",
			Lines: []string{
				"nik4i.ai — Intelligence Portfolio",
			},
		},
	},
}
