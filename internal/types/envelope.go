package types

import (
	"github.com/jonathan/anchor-insight/internal/anchors"
	"github.com/jonathan/anchor-insight/internal/derived"
)

// ScoreScale labels the normalized score range.
const ScoreScale = "0-100"

// Scores bundles the normalized anchor scores with the optional growth
// intentions and raw answers. GrowthIntentions and Raw are null unless the
// caller supplied them.
type Scores struct {
	Scale            string                   `json:"scale"`
	Anchors          map[anchors.Code]float64 `json:"anchors"`
	GrowthIntentions map[string]float64       `json:"growth_intentions"`
	Raw              AnswersMap               `json:"raw"`
}

// ScoredInput is the intake merged with computed scores, as replayed into
// report generation.
type ScoredInput struct {
	Person          Person          `json:"person"`
	Context         Context         `json:"context"`
	RelationshipMap RelationshipMap `json:"relationship_map"`
	AssessmentMeta  AssessmentMeta  `json:"assessment_meta"`
	Scores          Scores          `json:"scores"`
	HasIntake       bool            `json:"has_intake"`
}

// ScoringEnvelope is the score operation's response: the scored input plus
// derived analytics. The caller owns persistence.
type ScoringEnvelope struct {
	Input   ScoredInput      `json:"input"`
	Derived *derived.Payload `json:"derived"`
}
