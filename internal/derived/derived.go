// Package derived computes secondary analytics over a normalized anchor score
// vector: ranking, dispersion stats, pattern classification, growth gaps, and
// tradeoff candidates.
package derived

import (
	"math"
	"sort"

	"github.com/jonathan/anchor-insight/internal/anchors"
)

// Pattern classifies the shape of a score vector.
type Pattern string

// Pattern values. Classification checks balanced first, then polarized;
// everything else is spiky.
const (
	PatternBalanced  Pattern = "balanced"
	PatternPolarized Pattern = "polarized"
	PatternSpiky     Pattern = "spiky"
)

const (
	balancedMaxRange    = 18.0
	polarizedTopBotGap  = 30.0
	polarizedBandMinGap = 10.0
)

// Stats holds dispersion statistics over the eight scores. Stdev is the
// population standard deviation.
type Stats struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Range float64 `json:"range"`
	Mean  float64 `json:"mean"`
	Stdev float64 `json:"stdev"`
}

// GrowthGap is the distance between a stated growth target and the current
// score for one anchor.
type GrowthGap struct {
	Anchor anchors.Code `json:"anchor"`
	Gap    float64      `json:"gap"`
}

// TradeoffCandidate links a top-ranked anchor to the anchor it most likely
// sacrifices.
type TradeoffCandidate struct {
	Focus     anchors.Code `json:"focus"`
	Sacrifice anchors.Code `json:"sacrifice"`
}

// Payload is the full derived-analytics value object. It is rebuilt fresh on
// every call and never mutated afterwards.
type Payload struct {
	AnchorRank         []anchors.Code      `json:"anchor_rank"`
	BottomAnchors      []anchors.Code      `json:"bottom_anchors"`
	ScoreStats         Stats               `json:"score_stats"`
	ScorePattern       Pattern             `json:"score_pattern"`
	GrowthGaps         []GrowthGap         `json:"growth_gaps"`
	TradeoffCandidates []TradeoffCandidate `json:"tradeoff_candidates"`
}

func roundOneDecimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// Build derives all secondary analytics from the score vector.
// growthIntentions may be nil, in which case GrowthGaps is empty (a
// documented contract, not an error). Identical input always yields
// identical output: the ranking is a total order (score descending, anchor
// code ascending) and growth gaps are emitted in ascending anchor code order.
func Build(scores map[anchors.Code]float64, growthIntentions map[string]float64) *Payload {
	ranked := make([]anchors.Code, len(anchors.All))
	copy(ranked, anchors.All)
	sort.Slice(ranked, func(i, j int) bool {
		si, sj := scores[ranked[i]], scores[ranked[j]]
		if si == sj {
			return ranked[i] < ranked[j]
		}
		return si > sj
	})

	sorted := make([]float64, len(ranked))
	for i, code := range ranked {
		sorted[i] = scores[code]
	}

	bottom := []anchors.Code{ranked[len(ranked)-2], ranked[len(ranked)-1]}

	scoreRange := sorted[0] - sorted[7]
	top2Avg := (sorted[0] + sorted[1]) / 2
	mid4Avg := (sorted[2] + sorted[3] + sorted[4] + sorted[5]) / 4
	bot2Avg := (sorted[6] + sorted[7]) / 2

	pattern := PatternSpiky
	if scoreRange <= balancedMaxRange {
		pattern = PatternBalanced
	} else if top2Avg-bot2Avg >= polarizedTopBotGap &&
		top2Avg-mid4Avg >= polarizedBandMinGap &&
		mid4Avg-bot2Avg >= polarizedBandMinGap {
		pattern = PatternPolarized
	}

	mean := 0.0
	for _, s := range sorted {
		mean += s
	}
	mean /= float64(len(sorted))

	variance := 0.0
	for _, s := range sorted {
		variance += (s - mean) * (s - mean)
	}
	variance /= float64(len(sorted))

	return &Payload{
		AnchorRank:    ranked,
		BottomAnchors: bottom,
		ScoreStats: Stats{
			Min:   roundOneDecimal(sorted[7]),
			Max:   roundOneDecimal(sorted[0]),
			Range: roundOneDecimal(scoreRange),
			Mean:  roundOneDecimal(mean),
			Stdev: roundOneDecimal(math.Sqrt(variance)),
		},
		ScorePattern:       pattern,
		GrowthGaps:         buildGrowthGaps(scores, growthIntentions),
		TradeoffCandidates: buildTradeoffs(ranked[:2], bottom),
	}
}

func buildGrowthGaps(scores map[anchors.Code]float64, intentions map[string]float64) []GrowthGap {
	gaps := []GrowthGap{}
	if intentions == nil {
		return gaps
	}

	keys := make([]string, 0, len(intentions))
	for key := range intentions {
		if anchors.IsValid(key) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		code := anchors.Code(key)
		gaps = append(gaps, GrowthGap{
			Anchor: code,
			Gap:    roundOneDecimal(intentions[key] - scores[code]),
		})
	}
	return gaps
}

func buildTradeoffs(top2, bottom []anchors.Code) []TradeoffCandidate {
	fallback := bottom[0]

	candidates := make([]TradeoffCandidate, 0, len(top2))
	for _, focus := range top2 {
		sacrifice := fallback
		if partner, ok := anchors.TensionPartner(focus); ok {
			if partner == bottom[0] || partner == bottom[1] {
				sacrifice = partner
			}
		}
		candidates = append(candidates, TradeoffCandidate{Focus: focus, Sacrifice: sacrifice})
	}
	return candidates
}
