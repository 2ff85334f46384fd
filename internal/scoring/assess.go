package scoring

import (
	"encoding/json"
	"math"
	"strings"
	"time"

	"github.com/jonathan/anchor-insight/internal/anchors"
	"github.com/jonathan/anchor-insight/internal/derived"
	"github.com/jonathan/anchor-insight/internal/schemas"
	"github.com/jonathan/anchor-insight/internal/types"
)

// ScoreRequest is the validated body of a score call: the raw answers plus an
// optional intake. A nil Intake means the server-side default intake applies.
type ScoreRequest struct {
	Intake  *types.IntakeDraft `json:"intake,omitempty"`
	Answers types.AnswersMap   `json:"answers"`
}

// scoreRequestSchema is the structural contract for score requests: answers
// keyed by question id with in-scale integer values, plus an optional intake
// whose four sub-objects are required when present.
var scoreRequestSchema = map[string]any{
	"type":                 "object",
	"required":             []any{"answers"},
	"additionalProperties": false,
	"properties": map[string]any{
		"intake": map[string]any{
			"type":                 "object",
			"required":             []any{"person", "context", "relationship_map", "assessment_meta"},
			"additionalProperties": true,
			"properties": map[string]any{
				"person": map[string]any{
					"type":                 "object",
					"required":             []any{"gender", "age_band"},
					"additionalProperties": true,
					"properties": map[string]any{
						"gender":   map[string]any{"enum": []any{"F", "M", "N", "U"}},
						"age_band": map[string]any{"enum": []any{"10s", "20s", "30s", "40s", "50s", "60s+"}},
					},
				},
				"context": map[string]any{
					"type":                 "object",
					"required":             []any{"industry", "role", "career_years"},
					"additionalProperties": true,
					"properties": map[string]any{
						"industry":     map[string]any{"type": "string"},
						"role":         map[string]any{"type": "string"},
						"career_years": map[string]any{"type": "number", "minimum": 0},
					},
				},
				"relationship_map": map[string]any{
					"type":                 "object",
					"required":             []any{"current_level"},
					"additionalProperties": true,
					"properties": map[string]any{
						"current_level": map[string]any{"enum": []any{1, 2, 3}},
					},
				},
				"assessment_meta": map[string]any{
					"type":                 "object",
					"required":             []any{"test_version"},
					"additionalProperties": true,
					"properties": map[string]any{
						"test_version": map[string]any{"enum": []any{types.TestVersion}},
					},
				},
			},
		},
		"answers": map[string]any{
			"type":          "object",
			"minProperties": 1,
			"patternProperties": map[string]any{
				"^Q\\d+$": map[string]any{"type": "integer", "minimum": 1, "maximum": 5},
			},
			"additionalProperties": false,
		},
	},
}

// ParseScoreRequest validates raw request bytes against the score request
// contract and decodes them. Every failure is an *InvalidRequestError.
func ParseScoreRequest(raw []byte) (*ScoreRequest, error) {
	if strings.TrimSpace(string(raw)) == "" {
		return nil, &InvalidRequestError{Message: "Request body is required."}
	}

	if !json.Valid(raw) {
		return nil, &InvalidRequestError{Message: "Request body must be valid JSON."}
	}

	if err := schemas.ValidateBytes(scoreRequestSchema, raw); err != nil {
		return nil, &InvalidRequestError{
			Message: "Request body validation failed.",
			Details: schemas.FieldErrors(err),
		}
	}

	var req ScoreRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, &InvalidRequestError{Message: "Request body must be valid JSON.", Details: err.Error()}
	}
	return &req, nil
}

// Score runs the full scoring pipeline: answers are scored against the bank,
// the intake is defaulted when absent, completed_at is stamped, and derived
// analytics are attached. Scoring itself never calls out; the only error is
// the non-finite score guard.
func Score(bank *types.QuestionBank, req *ScoreRequest, now time.Time) (*types.ScoringEnvelope, error) {
	intake := types.DefaultIntake()
	hasIntake := req.Intake != nil
	if hasIntake {
		intake = *req.Intake
	}

	anchorScores := ComputeAnchorScores(bank, req.Answers)
	for _, code := range anchors.All {
		score := anchorScores[code]
		if math.IsNaN(score) || math.IsInf(score, 0) {
			return nil, &InvariantError{Anchor: code}
		}
	}

	input := types.ScoredInput{
		Person:          intake.Person,
		Context:         intake.Context,
		RelationshipMap: intake.RelationshipMap,
		AssessmentMeta: types.AssessmentMeta{
			TestVersion: intake.AssessmentMeta.TestVersion,
			CompletedAt: now.UTC().Format(time.RFC3339),
			Locale:      types.DefaultLocale,
		},
		Scores: types.Scores{
			Scale:   types.ScoreScale,
			Anchors: anchorScores,
		},
		HasIntake: hasIntake,
	}

	return &types.ScoringEnvelope{
		Input:   input,
		Derived: derived.Build(anchorScores, input.Scores.GrowthIntentions),
	}, nil
}
