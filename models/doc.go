// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types shared by the
registry server and the client SDK.

# Request Types

Types for parsing incoming JSON:

  - CreateSessionRequest: token, event_code, answers

# Response Types

Types for JSON responses:

  - Session: the stored row, echoed back on create and lookup
  - EventStatsResponse: event_code, participant_count, participants
  - ErrorResponse: error, message

# Domain Types

Internal data structures:

  - Question / QuestionOption: the static quiz catalog shape
  - LayerBAnswer: one preference with importance and deal-breaker flag
  - QuizAnswers: a complete, immutable quiz snapshot
  - Session: one published token rotation (insert-only)
  - MatchResult: traffic-light verdict for one scan

# Validation

ValidateAnswers checks a snapshot against the catalog before it is
accepted for storage; failures are reported as *ValidationError.

# Constants

Importance levels:

	ImportanceLow    = "low"
	ImportanceMedium = "medium"
	ImportanceHigh   = "high"

Match colors:

	ColorGreen  = "green"
	ColorYellow = "yellow"
	ColorRed    = "red"
*/
package models
