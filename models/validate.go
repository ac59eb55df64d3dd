// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "fmt"

// ValidationError reports a malformed or incomplete answer set. It is
// raised before anything touches the store.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid answers: %s: %s", e.Field, e.Reason)
}

// ValidateAnswers checks a QuizAnswers snapshot against the question
// catalog: every Layer A question answered exactly once, every Layer B
// question answered exactly once, and every selected value defined by the
// question it answers.
func ValidateAnswers(a QuizAnswers, questions []Question) error {
	layerA := make(map[string]Question)
	layerB := make(map[string]Question)
	for _, q := range questions {
		switch q.Layer {
		case LayerA:
			layerA[q.ID] = q
		case LayerB:
			layerB[q.ID] = q
		}
	}

	if len(a.LayerA) != len(layerA) {
		return &ValidationError{Field: "layer_a", Reason: fmt.Sprintf("expected %d answers, got %d", len(layerA), len(a.LayerA))}
	}
	for id, value := range a.LayerA {
		q, ok := layerA[id]
		if !ok {
			return &ValidationError{Field: "layer_a", Reason: "unknown question " + id}
		}
		if !hasOption(q, value) {
			return &ValidationError{Field: "layer_a", Reason: fmt.Sprintf("question %s has no option %q", id, value)}
		}
	}

	seen := make(map[string]bool, len(a.LayerB))
	for _, ans := range a.LayerB {
		q, ok := layerB[ans.QuestionID]
		if !ok {
			return &ValidationError{Field: "layer_b", Reason: "unknown question " + ans.QuestionID}
		}
		if seen[ans.QuestionID] {
			return &ValidationError{Field: "layer_b", Reason: "duplicate answer for question " + ans.QuestionID}
		}
		seen[ans.QuestionID] = true
		if !hasOption(q, ans.Value) {
			return &ValidationError{Field: "layer_b", Reason: fmt.Sprintf("question %s has no option %q", ans.QuestionID, ans.Value)}
		}
		switch ans.Importance {
		case ImportanceLow, ImportanceMedium, ImportanceHigh:
		default:
			return &ValidationError{Field: "layer_b", Reason: fmt.Sprintf("question %s has invalid importance %q", ans.QuestionID, ans.Importance)}
		}
	}
	if len(seen) != len(layerB) {
		return &ValidationError{Field: "layer_b", Reason: fmt.Sprintf("expected %d answers, got %d", len(layerB), len(seen))}
	}

	return nil
}

func hasOption(q Question, value string) bool {
	for _, opt := range q.Options {
		if opt.Value == value {
			return true
		}
	}
	return false
}
