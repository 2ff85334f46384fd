package types

import "fmt"

// Market selects a report audience variant. Each market binds its own prompt
// and output schema.
type Market string

// Supported markets.
const (
	MarketB2C    Market = "B2C"
	MarketB2BEdu Market = "B2B_EDU"
	MarketHRCorp Market = "HR_CORP"
)

// Markets lists every supported market.
var Markets = []Market{MarketB2C, MarketB2BEdu, MarketHRCorp}

// ParseMarket converts a raw string into a Market.
func ParseMarket(s string) (Market, error) {
	switch Market(s) {
	case MarketB2C, MarketB2BEdu, MarketHRCorp:
		return Market(s), nil
	}
	return "", fmt.Errorf("unknown market %q", s)
}

// EnvelopeSchemaVersion tags the response envelope format.
const EnvelopeSchemaVersion = "cai.report_response_envelope.v1"

// ReportOptions control tone and depth of the generated report.
type ReportOptions struct {
	Tone       string `json:"tone" validate:"required"`
	Depth      string `json:"depth" validate:"required"`
	Language   string `json:"language" validate:"required"`
	StrictJSON bool   `json:"strict_json"`
}

// ReportMeta describes how a report was generated.
type ReportMeta struct {
	Market        Market   `json:"market"`
	SchemaVersion string   `json:"schema_version"`
	GeneratedAt   string   `json:"generated_at"`
	RequestID     string   `json:"request_id,omitempty"`
	PromptID      string   `json:"prompt_id"`
	PromptVersion string   `json:"prompt_version"`
	Model         string   `json:"model"`
	Warnings      []string `json:"warnings"`
}

// ReportEnvelope is the externally-visible generation result: metadata plus a
// market-schema-conformant report object.
type ReportEnvelope struct {
	Meta   ReportMeta     `json:"meta"`
	Report map[string]any `json:"report"`
}

// Warning flags accumulated in ReportMeta.Warnings.
const (
	WarnPromptFallbackUsed     = "PROMPT_FILE_MISSING_FALLBACK_USED"
	WarnSchemaMismatchFallback = "LLM_SCHEMA_MISMATCH_FALLBACK_APPLIED"
)
