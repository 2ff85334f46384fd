// Package prompts loads the per-market master prompts for report generation.
// Prompts live as markdown files on disk so they can be revised without a
// rebuild; each market also carries an embedded fallback prompt used when the
// file is unavailable.
package prompts

import (
	"log"
	"os"
	"path/filepath"

	"github.com/jonathan/anchor-insight/internal/types"
)

// DefaultDir is the prompt directory relative to the working directory,
// overridable via ANCHOR_PROMPT_DIR.
const DefaultDir = "prompts"

// fallbackVersion tags prompts served from the embedded fallback.
const fallbackVersion = "embedded-fallback-v1"

// Meta is a resolved prompt plus its provenance.
type Meta struct {
	Prompt        string
	PromptID      string
	PromptVersion string
	FallbackUsed  bool
}

var marketPromptFile = map[types.Market]string{
	types.MarketB2C:    "b2c.master_prompt.md",
	types.MarketB2BEdu: "b2b_edu.master_prompt.md",
	types.MarketHRCorp: "hr_corp.master_prompt.md",
}

var marketPromptID = map[types.Market]string{
	types.MarketB2C:    "prompt.b2c.master",
	types.MarketB2BEdu: "prompt.b2b_edu.master",
	types.MarketHRCorp: "prompt.hr_corp.master",
}

var marketPromptFallback = map[types.Market]string{
	types.MarketB2C: `You are a career-development assistant for Korean users.
Produce ONLY JSON matching the provided schema exactly.
Use derived as source of truth and do not recalculate rank/gaps/tradeoffs.
Use psychologically safe, non-diagnostic language.`,
	types.MarketB2BEdu: `You are a career-development assistant for education institutions.
Produce ONLY JSON matching the provided schema exactly.
Use derived as source of truth and do not recalculate rank/gaps/tradeoffs.
Use psychologically safe, non-diagnostic language.`,
	types.MarketHRCorp: `You are a career-development assistant for corporate HR use cases.
Produce ONLY JSON matching the provided schema exactly.
Use derived as source of truth and do not recalculate rank/gaps/tradeoffs.
Use psychologically safe, non-diagnostic language.`,
}

// Dir returns the prompt directory, honoring ANCHOR_PROMPT_DIR.
func Dir() string {
	if dir := os.Getenv("ANCHOR_PROMPT_DIR"); dir != "" {
		return dir
	}
	return DefaultDir
}

// LoadMarketPrompt resolves the prompt for a market. A missing or unreadable
// prompt file is not an error: the embedded fallback is returned with
// FallbackUsed set so the orchestrator can flag it in the response warnings.
func LoadMarketPrompt(dir string, market types.Market) Meta {
	promptPath := filepath.Join(dir, marketPromptFile[market])

	data, err := os.ReadFile(promptPath)
	if err == nil {
		version := fallbackVersion
		if info, statErr := os.Stat(promptPath); statErr == nil {
			version = info.ModTime().UTC().Format("2006-01-02T15:04:05.000Z07:00")
		}
		return Meta{
			Prompt:        string(data),
			PromptID:      marketPromptID[market],
			PromptVersion: version,
		}
	}

	log.Printf("[prompts] load failed for market %s (path %s), using embedded fallback: %v", market, promptPath, err)
	return Meta{
		Prompt:        marketPromptFallback[market],
		PromptID:      marketPromptID[market] + ".fallback",
		PromptVersion: fallbackVersion,
		FallbackUsed:  true,
	}
}
