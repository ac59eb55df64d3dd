// Copyright (c) 2025 Beep Labs.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package match

import (
	"math"

	"github.com/beep-labs/beep/models"
)

// Composite score blend: 60% Layer A trait similarity, 40% averaged
// bidirectional Layer B satisfaction.
const (
	layerAShare = 0.6
	layerBShare = 0.4
)

// Traffic-light thresholds on the composite score (closed intervals,
// evaluated in order).
const (
	greenThreshold  = 0.80
	yellowThreshold = 0.50
)

var importanceWeights = map[string]float64{
	models.ImportanceLow:    0.5,
	models.ImportanceMedium: 1.0,
	models.ImportanceHigh:   1.5,
}

// Engine scores two answer sets against a fixed question catalog. It holds
// no mutable state and performs no I/O; a single Engine is safe for
// concurrent use.
type Engine struct {
	layerA []models.Question
	// option lookup for Layer B shared-interest surfacing
	layerBOptions map[string]map[string]models.QuestionOption
	layerBOrder   map[string]int
}

// New builds an Engine from the question catalog. Layer A questions with a
// zero weight are treated as weight 1.0.
func New(questions []models.Question) *Engine {
	e := &Engine{
		layerBOptions: make(map[string]map[string]models.QuestionOption),
		layerBOrder:   make(map[string]int),
	}
	for _, q := range questions {
		switch q.Layer {
		case models.LayerA:
			e.layerA = append(e.layerA, q)
		case models.LayerB:
			opts := make(map[string]models.QuestionOption, len(q.Options))
			for _, opt := range q.Options {
				opts[opt.Value] = opt
			}
			e.layerBOrder[q.ID] = len(e.layerBOptions)
			e.layerBOptions[q.ID] = opts
		}
	}
	return e
}

// satisfaction is one direction of Layer B evaluation: how well the other
// side's answers satisfy the viewer's stated preferences.
type satisfaction struct {
	score          float64
	dealBreakerHit bool
}

// Compute scores peer against self from self's perspective. It is pure and
// deterministic but not symmetric: each side's importance and deal-breaker
// flags only weight that side's direction, so Compute(a, b) and
// Compute(b, a) may differ.
func (e *Engine) Compute(self, peer models.QuizAnswers) models.MatchResult {
	layerAScore := e.layerAScore(self, peer)

	selfView := e.satisfy(self, peer)
	peerView := e.satisfy(peer, self)

	// Deal-breaker fast-fail: a single unmet non-negotiable from either
	// party ends the match before any composite scoring.
	if selfView.dealBreakerHit || peerView.dealBreakerHit {
		return models.MatchResult{
			Color:      models.ColorRed,
			Score:      0,
			ColorLabel: models.LabelNotCompatible,
		}
	}

	layerBAvg := (selfView.score + peerView.score) / 2
	composite := layerAScore*layerAShare + layerBAvg*layerBShare

	color, label := grade(composite)
	result := models.MatchResult{
		Color:      color,
		Score:      int(math.Round(composite * 100)),
		ColorLabel: label,
	}

	if opt, ok := e.sharedInterest(self, peer); ok {
		result.SharedTrait = opt.ConversationHook
		result.ConversationPrompt = opt.ConversationPrompt
	}

	return result
}

// layerAScore is the weighted share of Layer A questions where both users
// chose the same option. Symmetric by construction.
func (e *Engine) layerAScore(u1, u2 models.QuizAnswers) float64 {
	var totalWeight, matchedWeight float64

	for _, q := range e.layerA {
		weight := q.Weight
		if weight == 0 {
			weight = 1.0
		}
		totalWeight += weight

		if v1, ok := u1.LayerA[q.ID]; ok && v1 == u2.LayerA[q.ID] {
			matchedWeight += weight
		}
	}

	if totalWeight == 0 {
		return 0
	}
	return matchedWeight / totalWeight
}

// satisfy evaluates the viewer's Layer B preferences against the other
// side's answers. Questions the other side never answered are skipped.
func (e *Engine) satisfy(viewer, other models.QuizAnswers) satisfaction {
	otherValues := make(map[string]string, len(other.LayerB))
	for _, ans := range other.LayerB {
		otherValues[ans.QuestionID] = ans.Value
	}

	var result satisfaction
	var totalWeight, matchedWeight float64

	for _, pref := range viewer.LayerB {
		otherValue, ok := otherValues[pref.QuestionID]
		if !ok {
			continue
		}

		weight := importanceWeights[pref.Importance]
		totalWeight += weight

		if pref.Value == otherValue {
			matchedWeight += weight
		} else if pref.DealBreaker {
			result.dealBreakerHit = true
		}
	}

	if totalWeight > 0 {
		result.score = matchedWeight / totalWeight
	}
	return result
}

// sharedInterest picks the Layer B question where both users selected the
// same value and that option carries icebreaker copy, preferring the
// viewer's highest importance weight and breaking ties by catalog order.
func (e *Engine) sharedInterest(self, peer models.QuizAnswers) (models.QuestionOption, bool) {
	peerValues := make(map[string]string, len(peer.LayerB))
	for _, ans := range peer.LayerB {
		peerValues[ans.QuestionID] = ans.Value
	}

	var best models.QuestionOption
	bestWeight := -1.0
	bestOrder := 0

	for _, ans := range self.LayerB {
		if peerValues[ans.QuestionID] != ans.Value {
			continue
		}
		opt, ok := e.layerBOptions[ans.QuestionID][ans.Value]
		if !ok || opt.ConversationHook == "" {
			continue
		}

		weight := importanceWeights[ans.Importance]
		order := e.layerBOrder[ans.QuestionID]
		if weight > bestWeight || (weight == bestWeight && order < bestOrder) {
			best = opt
			bestWeight = weight
			bestOrder = order
		}
	}

	return best, bestWeight >= 0
}

// grade maps a composite score to its traffic-light color and label.
func grade(composite float64) (color, label string) {
	switch {
	case composite >= greenThreshold:
		return models.ColorGreen, models.LabelStrongMatch
	case composite >= yellowThreshold:
		return models.ColorYellow, models.LabelPotentialMatch
	default:
		return models.ColorRed, models.LabelLowCompatibility
	}
}
