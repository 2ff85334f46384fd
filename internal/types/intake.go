// Package types provides type definitions for structured data used throughout
// the anchor-insight system.
package types

// TestVersion is the question bank revision the scoring pipeline expects.
const TestVersion = "anchor_v1.2"

// DefaultLocale is applied to every assessment; prompt content is localized
// elsewhere.
const DefaultLocale = "ko-KR"

// Person holds the demographic slice of the intake.
type Person struct {
	Gender  string `json:"gender"`
	AgeBand string `json:"age_band"`
}

// Context describes the respondent's current work situation.
type Context struct {
	Industry        string  `json:"industry"`
	Role            string  `json:"role"`
	CareerYears     float64 `json:"career_years"`
	CurrentConcerns string  `json:"current_concerns,omitempty"`
	JobSatisfaction *int    `json:"job_satisfaction,omitempty"`
}

// RelationshipMap captures the respondent's current and desired engagement
// level (1..3).
type RelationshipMap struct {
	CurrentLevel int    `json:"current_level"`
	DesiredLevel *int   `json:"desired_level,omitempty"`
	Notes        string `json:"notes,omitempty"`
}

// AssessmentMeta identifies the test version and completion metadata.
type AssessmentMeta struct {
	TestVersion string `json:"test_version"`
	CompletedAt string `json:"completed_at,omitempty"`
	Locale      string `json:"locale"`
}

// IntakeDraft is the optional intake form submitted alongside answers.
type IntakeDraft struct {
	Person          Person          `json:"person"`
	Context         Context         `json:"context"`
	RelationshipMap RelationshipMap `json:"relationship_map"`
	AssessmentMeta  AssessmentMeta  `json:"assessment_meta"`
}

// DefaultIntake returns the server-side intake used when the caller omits the
// intake object.
func DefaultIntake() IntakeDraft {
	return IntakeDraft{
		Person:          Person{Gender: "U", AgeBand: "20s"},
		Context:         Context{},
		RelationshipMap: RelationshipMap{CurrentLevel: 1},
		AssessmentMeta:  AssessmentMeta{TestVersion: TestVersion, Locale: DefaultLocale},
	}
}

// AnswersMap maps question bank item ids to raw Likert answers.
type AnswersMap map[string]int
