// Package scoring converts raw Likert answers into normalized per-anchor
// scores on a 0-100 scale.
package scoring

import (
	"math"

	"github.com/jonathan/anchor-insight/internal/anchors"
	"github.com/jonathan/anchor-insight/internal/types"
)

// ApplyReverseScoring reflects a raw answer across the scale midpoint.
func ApplyReverseScoring(answer, min, max int) int {
	return min + max - answer
}

// RoundOneDecimal rounds to one decimal place, half away from zero.
func RoundOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// NormalizeScore maps a raw anchor total onto [0, 100]. countItems is the
// number of items the bank defines for the anchor, not the number answered;
// an anchor with no items (or a degenerate scale) normalizes to 0.
func NormalizeScore(raw float64, countItems, min, max int) float64 {
	if countItems <= 0 {
		return 0
	}

	minPossible := float64(countItems * min)
	maxPossible := float64(countItems * max)
	if maxPossible == minPossible {
		return 0
	}

	normalized := (raw - minPossible) / (maxPossible - minPossible) * 100
	return RoundOneDecimal(normalized)
}

// ComputeAnchorScores scores every anchor from the question bank and answer
// map. Unanswered items are excluded from the raw total but still count
// toward the normalization denominator. Every anchor code is present in the
// result.
func ComputeAnchorScores(bank *types.QuestionBank, answers types.AnswersMap) map[anchors.Code]float64 {
	min, max := bank.Scale.Min, bank.Scale.Max

	byAnchor := make(map[anchors.Code][]types.QuestionBankItem, len(anchors.All))
	for _, item := range bank.Items {
		code := anchors.Code(item.AnchorCode)
		byAnchor[code] = append(byAnchor[code], item)
	}

	result := make(map[anchors.Code]float64, len(anchors.All))
	for _, code := range anchors.All {
		items := byAnchor[code]

		raw := 0.0
		for _, item := range items {
			answer, ok := answers[item.ID]
			if !ok {
				continue
			}
			if item.Reverse {
				raw += float64(ApplyReverseScoring(answer, min, max))
			} else {
				raw += float64(answer)
			}
		}

		result[code] = NormalizeScore(raw, len(items), min, max)
	}

	return result
}
