// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "github.com/beep-labs/beep/models"

// Layer A: corporate identity - who the attendee is. Weights are fixed by
// the system, not the user.
var layerAQuestions = []models.Question{
	{
		ID:     "a1",
		Text:   "Which department are you representing right now?",
		Layer:  models.LayerA,
		Weight: 1.1,
		Options: []models.QuestionOption{
			{Value: "sales", Label: "Revenue & Sales"},
			{Value: "product", Label: "Product & Tech"},
			{Value: "people", Label: "People Ops / HR"},
			{Value: "customer", Label: "Customer Success & Ops"},
		},
	},
	{
		ID:     "a2",
		Text:   "What is your office superpower?",
		Layer:  models.LayerA,
		Weight: 1.0,
		Options: []models.QuestionOption{
			{
				Value:              "excel",
				Label:              "Excel Wizard",
				ConversationHook:   "Both of you flex the same spreadsheet superpower.",
				ConversationPrompt: "Ask them which dashboard they are most proud of shipping this quarter.",
			},
			{Value: "culture", Label: "Culture Builder"},
			{Value: "bugfixer", Label: "Bug Fixer"},
			{Value: "dealcloser", Label: "Deal Closer"},
		},
	},
	{
		ID:     "a3",
		Text:   "How do you like your meetings to feel?",
		Layer:  models.LayerA,
		Weight: 0.9,
		Options: []models.QuestionOption{
			{Value: "whiteboard", Label: "Whiteboard sprint"},
			{Value: "async", Label: "Async + clear notes"},
			{Value: "cameraon", Label: "Camera-on facilitation"},
			{Value: "walktalk", Label: "Walk-and-talk"},
		},
	},
	{
		ID:     "a4",
		Text:   "When a decision stalls, what do you do?",
		Layer:  models.LayerA,
		Weight: 1.2,
		Options: []models.QuestionOption{
			{Value: "data", Label: "Pull a dashboard"},
			{Value: "consensus", Label: "Poll the floor"},
			{Value: "experiment", Label: "Run a micro experiment"},
			{Value: "escalate", Label: "Text an exec sponsor"},
		},
	},
	{
		ID:     "a5",
		Text:   "What is your networking alter ego tonight?",
		Layer:  models.LayerA,
		Weight: 0.8,
		Options: []models.QuestionOption{
			{Value: "connector", Label: "Super Connector"},
			{Value: "futurist", Label: "Futurist Scout"},
			{Value: "fixer", Label: "Firefighter / Fixer"},
			{Value: "storyteller", Label: "Storyteller"},
		},
	},
}

// Layer B: event preferences - what the attendee wants from the evening.
var layerBQuestions = []models.Question{
	{
		ID:    "b1",
		Text:  "Who do you want to meet first?",
		Layer: models.LayerB,
		Options: []models.QuestionOption{
			{Value: "pipeline", Label: "Sales pipeline ally"},
			{Value: "xdei", Label: "Cross-functional co-creator"},
			{Value: "exec", Label: "Executive sponsor"},
			{Value: "innovator", Label: "Innovation sparring partner"},
		},
	},
	{
		ID:    "b2",
		Text:  "Breakout format that wakes you up?",
		Layer: models.LayerB,
		Options: []models.QuestionOption{
			{Value: "rapid", Label: "Rapid-fire standups"},
			{Value: "deepwork", Label: "Deep-work labs"},
			{Value: "debate", Label: "Panel debates"},
			{Value: "coffee", Label: "Coffee walks"},
		},
	},
	{
		ID:    "b3",
		Text:  "Conversation fuel you never get tired of?",
		Layer: models.LayerB,
		Options: []models.QuestionOption{
			{
				Value:              "scifi",
				Label:              "Sci-Fi & future tech",
				ConversationHook:   "You both listed 'Sci-Fi' as your favorite genre.",
				ConversationPrompt: "Ask them: What is the most overrated Sci-Fi movie of all time?",
			},
			{
				Value:              "sports",
				Label:              "Data-driven sports talk",
				ConversationHook:   "You both geek out over advanced stats.",
				ConversationPrompt: "Compare the boldest sports analytics bet you have made this season.",
			},
			{
				Value:              "climate",
				Label:              "Climate innovation",
				ConversationHook:   "You are both chasing climate breakthroughs.",
				ConversationPrompt: "Swap notes on the most practical climate initiative your org is piloting.",
			},
			{
				Value:              "wellbeing",
				Label:              "Workplace wellbeing hacks",
				ConversationHook:   "You both champion wellbeing rituals.",
				ConversationPrompt: "Ask what recharge ritual they protect on the calendar.",
			},
		},
	},
	{
		ID:    "b4",
		Text:  "After-hours mission for tonight?",
		Layer: models.LayerB,
		Options: []models.QuestionOption{
			{Value: "dinner", Label: "Find the dinner crew"},
			{Value: "hack", Label: "Map a hackathon idea"},
			{Value: "demo", Label: "Test the latest gadget"},
			{Value: "reset", Label: "Reserve the decompress lounge"},
		},
	},
	{
		ID:    "b5",
		Text:  "Preferred follow-up handshake?",
		Layer: models.LayerB,
		Options: []models.QuestionOption{
			{
				Value:              "slack",
				Label:              "Slack DM within 24h",
				ConversationHook:   "You both live in Slack.",
				ConversationPrompt: "Share the boldest Slack automation you rely on.",
			},
			{
				Value:              "teams",
				Label:              "Teams call next week",
				ConversationHook:   "You both prefer face time to lock decisions.",
				ConversationPrompt: "Ask what makes a 15-minute sync wildly productive for them.",
			},
			{
				Value:              "espresso",
				Label:              "Espresso chat at the office cafe",
				ConversationHook:   "You both negotiate over strong coffee.",
				ConversationPrompt: "Trade tips on the best off-menu drink near HQ.",
			},
			{
				Value:              "recap",
				Label:              "Shared strategy doc",
				ConversationHook:   "You both document obsessively.",
				ConversationPrompt: "Ask which template or doc trick saves them the most time.",
			},
		},
	},
}

// Questions returns the full catalog, Layer A first, in display order.
func Questions() []models.Question {
	all := make([]models.Question, 0, len(layerAQuestions)+len(layerBQuestions))
	all = append(all, layerAQuestions...)
	all = append(all, layerBQuestions...)
	return all
}

// LayerA returns the Layer A questions in display order.
func LayerA() []models.Question {
	return append([]models.Question(nil), layerAQuestions...)
}

// LayerB returns the Layer B questions in display order.
func LayerB() []models.Question {
	return append([]models.Question(nil), layerBQuestions...)
}
