package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/anchor-insight/internal/schemas"
	"github.com/jonathan/anchor-insight/internal/types"
)

func fallbackInput() (map[string]any, map[string]any) {
	input := map[string]any{
		"relationship_map": map[string]any{"current_level": "2", "desired_level": "3"},
	}
	derived := map[string]any{
		"anchor_rank":    []any{"AU", "TF", "GM", "SE", "EC", "SV", "CH", "LS"},
		"bottom_anchors": []any{"CH", "LS"},
	}
	return input, derived
}

func TestBuildB2CFallbackValidatesAgainstSchema(t *testing.T) {
	schema, err := schemas.MarketSchema(types.MarketB2C)
	require.NoError(t, err)

	input, derived := fallbackInput()
	report := BuildB2CFallback(input, derived)

	assert.NoError(t, schemas.Validate(schema, report))
}

func TestBuildB2CFallbackUsesTopAndBottomAnchors(t *testing.T) {
	input, derived := fallbackInput()
	report := BuildB2CFallback(input, derived)

	overview, ok := report["strategic_overview"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, overview["one_sentence_identity"], "AU/TF")

	tradeoffs, ok := report["tradeoffs"].([]any)
	require.True(t, ok)
	require.Len(t, tradeoffs, 2)
	first, ok := tradeoffs[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "AU vs CH", first["title"])
}

func TestBuildB2CFallbackRelationshipLevels(t *testing.T) {
	tests := []struct {
		name        string
		relation    any
		wantCurrent string
		wantDesired string
	}{
		{
			"explicit levels",
			map[string]any{"current_level": "2", "desired_level": "4"},
			"2", "4",
		},
		{
			"desired falls back to current",
			map[string]any{"current_level": "3"},
			"3", "3",
		},
		{
			"numeric levels",
			map[string]any{"current_level": float64(1), "desired_level": float64(2)},
			"1", "2",
		},
		{
			"missing relationship map",
			nil,
			"1", "2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := map[string]any{}
			if tt.relation != nil {
				input["relationship_map"] = tt.relation
			}
			_, derived := fallbackInput()

			report := BuildB2CFallback(input, derived)
			dynamics, ok := report["relationship_dynamics"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, tt.wantCurrent, dynamics["current_level"])
			assert.Equal(t, tt.wantDesired, dynamics["desired_level"])
		})
	}
}

func TestBuildB2CFallbackEmptyDerivedStillValidates(t *testing.T) {
	schema, err := schemas.MarketSchema(types.MarketB2C)
	require.NoError(t, err)

	report := BuildB2CFallback(map[string]any{}, map[string]any{})
	assert.NoError(t, schemas.Validate(schema, report))

	overview, ok := report["strategic_overview"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, overview["one_sentence_identity"], "핵심 앵커")
}
