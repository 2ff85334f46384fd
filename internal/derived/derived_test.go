package derived

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/anchor-insight/internal/anchors"
)

func scoresFrom(values map[anchors.Code]float64) map[anchors.Code]float64 {
	scores := make(map[anchors.Code]float64, len(anchors.All))
	for _, code := range anchors.All {
		scores[code] = values[code]
	}
	return scores
}

func TestBuild_RankTiesBreakByAscendingCode(t *testing.T) {
	scores := scoresFrom(map[anchors.Code]float64{
		anchors.TechnicalFunctional: 70,
		anchors.GeneralManagement:   70,
		anchors.Autonomy:            60,
		anchors.Security:            50,
		anchors.Entrepreneurial:     40,
		anchors.Service:             30,
		anchors.Challenge:           20,
		anchors.Lifestyle:           10,
	})

	payload := Build(scores, nil)

	require.Len(t, payload.AnchorRank, 8)
	assert.Equal(t, anchors.GeneralManagement, payload.AnchorRank[0])
	assert.Equal(t, anchors.TechnicalFunctional, payload.AnchorRank[1])
	assert.Equal(t, []anchors.Code{anchors.Challenge, anchors.Lifestyle}, payload.BottomAnchors)
}

func TestBuild_Deterministic(t *testing.T) {
	scores := scoresFrom(map[anchors.Code]float64{
		anchors.TechnicalFunctional: 55,
		anchors.GeneralManagement:   55,
		anchors.Autonomy:            55,
		anchors.Security:            55,
		anchors.Entrepreneurial:     55,
		anchors.Service:             55,
		anchors.Challenge:           55,
		anchors.Lifestyle:           55,
	})

	first := Build(scores, nil)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Build(scores, nil))
	}

	// All-equal scores rank in pure code order.
	assert.Equal(t, []anchors.Code{"AU", "CH", "EC", "GM", "LS", "SE", "SV", "TF"}, first.AnchorRank)
}

func TestBuild_PatternBalanced(t *testing.T) {
	scores := scoresFrom(map[anchors.Code]float64{
		anchors.TechnicalFunctional: 60,
		anchors.GeneralManagement:   58,
		anchors.Autonomy:            55,
		anchors.Security:            52,
		anchors.Entrepreneurial:     50,
		anchors.Service:             48,
		anchors.Challenge:           45,
		anchors.Lifestyle:           42,
	})

	payload := Build(scores, nil)
	assert.Equal(t, PatternBalanced, payload.ScorePattern)
	assert.Equal(t, 18.0, payload.ScoreStats.Range)
}

func TestBuild_PatternPolarized(t *testing.T) {
	scores := scoresFrom(map[anchors.Code]float64{
		anchors.TechnicalFunctional: 95,
		anchors.GeneralManagement:   90,
		anchors.Autonomy:            65,
		anchors.Security:            60,
		anchors.Entrepreneurial:     58,
		anchors.Service:             55,
		anchors.Challenge:           25,
		anchors.Lifestyle:           20,
	})

	payload := Build(scores, nil)
	assert.Equal(t, PatternPolarized, payload.ScorePattern)
}

func TestBuild_PatternSpiky(t *testing.T) {
	// Single outlier with insufficient mid-band separation.
	scores := scoresFrom(map[anchors.Code]float64{
		anchors.TechnicalFunctional: 90,
		anchors.GeneralManagement:   62,
		anchors.Autonomy:            61,
		anchors.Security:            60,
		anchors.Entrepreneurial:     60,
		anchors.Service:             59,
		anchors.Challenge:           58,
		anchors.Lifestyle:           57,
	})

	payload := Build(scores, nil)
	assert.Equal(t, PatternSpiky, payload.ScorePattern)
}

func TestBuild_PopulationStdev(t *testing.T) {
	values := map[anchors.Code]float64{
		anchors.TechnicalFunctional: 80,
		anchors.GeneralManagement:   70,
		anchors.Autonomy:            60,
		anchors.Security:            50,
		anchors.Entrepreneurial:     40,
		anchors.Service:             30,
		anchors.Challenge:           20,
		anchors.Lifestyle:           10,
	}
	payload := Build(scoresFrom(values), nil)

	mean := 45.0
	variance := 0.0
	for _, v := range values {
		variance += (v - mean) * (v - mean)
	}
	variance /= 8 // divide by N, not N-1

	want := math.Round(math.Sqrt(variance)*10) / 10
	assert.Equal(t, want, payload.ScoreStats.Stdev)
	assert.Equal(t, 45.0, payload.ScoreStats.Mean)
	assert.Equal(t, 10.0, payload.ScoreStats.Min)
	assert.Equal(t, 80.0, payload.ScoreStats.Max)
}

func TestBuild_GrowthGaps(t *testing.T) {
	scores := scoresFrom(map[anchors.Code]float64{
		anchors.TechnicalFunctional: 40,
		anchors.Autonomy:            70.5,
	})

	t.Run("nil intentions yield empty list", func(t *testing.T) {
		payload := Build(scores, nil)
		assert.Empty(t, payload.GrowthGaps)
		assert.NotNil(t, payload.GrowthGaps)
	})

	t.Run("unknown codes silently dropped", func(t *testing.T) {
		payload := Build(scores, map[string]float64{
			"TF": 80,
			"AU": 60,
			"ZZ": 99,
		})

		require.Len(t, payload.GrowthGaps, 2)
		assert.Equal(t, GrowthGap{Anchor: anchors.Autonomy, Gap: -10.5}, payload.GrowthGaps[0])
		assert.Equal(t, GrowthGap{Anchor: anchors.TechnicalFunctional, Gap: 40.0}, payload.GrowthGaps[1])
	})
}

func TestBuild_TradeoffCandidates(t *testing.T) {
	t.Run("partner in bottom two is sacrificed", func(t *testing.T) {
		// AU tops the rank and its partner SE lands in the bottom two.
		scores := scoresFrom(map[anchors.Code]float64{
			anchors.Autonomy:            90,
			anchors.Challenge:           80,
			anchors.TechnicalFunctional: 70,
			anchors.GeneralManagement:   60,
			anchors.Entrepreneurial:     50,
			anchors.Service:             40,
			anchors.Security:            30,
			anchors.Lifestyle:           20,
		})

		payload := Build(scores, nil)
		require.Len(t, payload.TradeoffCandidates, 2)
		assert.Equal(t, TradeoffCandidate{Focus: anchors.Autonomy, Sacrifice: anchors.Security}, payload.TradeoffCandidates[0])
		assert.Equal(t, TradeoffCandidate{Focus: anchors.Challenge, Sacrifice: anchors.Security}, payload.TradeoffCandidates[1])
	})

	t.Run("partner outside bottom two falls back to lowest-ranked bottom anchor", func(t *testing.T) {
		// TF tops the rank but its partner GM is mid-ranked.
		scores := scoresFrom(map[anchors.Code]float64{
			anchors.TechnicalFunctional: 90,
			anchors.Service:             80,
			anchors.GeneralManagement:   70,
			anchors.Autonomy:            60,
			anchors.Entrepreneurial:     50,
			anchors.Security:            40,
			anchors.Challenge:           30,
			anchors.Lifestyle:           20,
		})

		payload := Build(scores, nil)
		require.Len(t, payload.TradeoffCandidates, 2)
		assert.Equal(t, []anchors.Code{anchors.Challenge, anchors.Lifestyle}, payload.BottomAnchors)
		assert.Equal(t, TradeoffCandidate{Focus: anchors.TechnicalFunctional, Sacrifice: anchors.Challenge}, payload.TradeoffCandidates[0])
		// SV's partner EC is also mid-ranked, same fallback.
		assert.Equal(t, TradeoffCandidate{Focus: anchors.Service, Sacrifice: anchors.Challenge}, payload.TradeoffCandidates[1])
	})
}
