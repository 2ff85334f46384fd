package prompts

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/anchor-insight/internal/types"
)

func TestLoadMarketPrompt_FromFile(t *testing.T) {
	dir := t.TempDir()
	content := "You are a test prompt.\n"
	err := os.WriteFile(filepath.Join(dir, "b2c.master_prompt.md"), []byte(content), 0o644)
	require.NoError(t, err)

	meta := LoadMarketPrompt(dir, types.MarketB2C)

	assert.Equal(t, content, meta.Prompt)
	assert.Equal(t, "prompt.b2c.master", meta.PromptID)
	assert.False(t, meta.FallbackUsed)
	assert.NotEqual(t, "embedded-fallback-v1", meta.PromptVersion)
}

func TestLoadMarketPrompt_FallbackWhenFileMissing(t *testing.T) {
	meta := LoadMarketPrompt(t.TempDir(), types.MarketHRCorp)

	assert.True(t, meta.FallbackUsed)
	assert.Equal(t, "prompt.hr_corp.master.fallback", meta.PromptID)
	assert.Equal(t, "embedded-fallback-v1", meta.PromptVersion)
	assert.Contains(t, meta.Prompt, "ONLY JSON")
}

func TestLoadMarketPrompt_EveryMarketHasFallback(t *testing.T) {
	for _, market := range types.Markets {
		meta := LoadMarketPrompt(t.TempDir(), market)
		assert.True(t, meta.FallbackUsed, "market %s", market)
		assert.NotEmpty(t, meta.Prompt, "market %s", market)
	}
}

func TestDir_EnvOverride(t *testing.T) {
	t.Setenv("ANCHOR_PROMPT_DIR", "/tmp/custom-prompts")
	assert.Equal(t, "/tmp/custom-prompts", Dir())

	t.Setenv("ANCHOR_PROMPT_DIR", "")
	assert.Equal(t, DefaultDir, Dir())
}
