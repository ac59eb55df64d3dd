// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Question layers
const (
	LayerA = "A"
	LayerB = "B"
)

// Importance levels for Layer B answers
const (
	ImportanceLow    = "low"
	ImportanceMedium = "medium"
	ImportanceHigh   = "high"
)

// Match colors
const (
	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorRed    = "red"
)

// Match color labels
const (
	LabelStrongMatch      = "Strong Match"
	LabelPotentialMatch   = "Potential Match"
	LabelLowCompatibility = "Low Compatibility"
	LabelNotCompatible    = "Not Compatible"
)

// Request types

type CreateSessionRequest struct {
	Token     string      `json:"token"`
	EventCode string      `json:"event_code"`
	Answers   QuizAnswers `json:"answers"`
}

// Response types

type EventStatsResponse struct {
	EventCode        string        `json:"event_code"`
	ParticipantCount int           `json:"participant_count"`
	Participants     []Participant `json:"participants"`
}

// Participant is the admin-facing view of a session: the token and when it
// was published, nothing else.
type Participant struct {
	Token     string    `json:"token"`
	CreatedAt time.Time `json:"created_at"`
}

// Domain types

// QuestionOption is one selectable answer. The conversation hook and prompt
// are optional icebreaker copy surfaced when two users pick the same option.
type QuestionOption struct {
	Value              string `json:"value"`
	Label              string `json:"label"`
	ConversationHook   string `json:"conversation_hook,omitempty"`
	ConversationPrompt string `json:"conversation_prompt,omitempty"`
}

// Question is defined once at process start and never mutated.
// Weight is only meaningful for Layer A questions (default 1.0).
type Question struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Layer   string           `json:"layer"`
	Weight  float64          `json:"weight,omitempty"`
	Options []QuestionOption `json:"options"`
}

// LayerBAnswer is one user's self-declared preference and how strongly they
// hold it. Importance and DealBreaker are private to that user; the peer
// never sees them when scoring their own direction.
type LayerBAnswer struct {
	QuestionID  string `json:"question_id"`
	Value       string `json:"value"`
	Importance  string `json:"importance"`
	DealBreaker bool   `json:"deal_breaker"`
}

// QuizAnswers is an immutable snapshot of a completed quiz. Every Layer A
// question id appears exactly once in LayerA and every Layer B question id
// exactly once in LayerB.
type QuizAnswers struct {
	LayerA    map[string]string `json:"layer_a"`
	LayerB    []LayerBAnswer    `json:"layer_b"`
	EventCode string            `json:"event_code"`
}

// Session is one published rotation of a user's answers. Sessions are
// insert-only: rotation creates a new session under a new token, and old
// tokens stay resolvable unless the store expires them independently.
type Session struct {
	Token     string      `json:"token"`
	EventCode string      `json:"event_code"`
	Answers   QuizAnswers `json:"answers"`
	CreatedAt time.Time   `json:"created_at"`
}

// MatchResult is produced once per scan and owned by the scanning client;
// it is never persisted. SharedTrait and ConversationPrompt are only set
// when the matched pair share an option that defines icebreaker copy.
type MatchResult struct {
	Color              string `json:"color"`
	Score              int    `json:"score"`
	ColorLabel         string `json:"color_label"`
	SharedTrait        string `json:"shared_trait,omitempty"`
	ConversationPrompt string `json:"conversation_prompt,omitempty"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
