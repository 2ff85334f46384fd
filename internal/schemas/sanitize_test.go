package schemas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeForProvider_StripsSchemaMetadata(t *testing.T) {
	schema := map[string]any{
		"$id":     "https://example.com/s.json",
		"$schema": "https://json-schema.org/draft/2020-12/schema",
		"title":   "Top-level title",
		"type":    "object",
	}

	out, ok := SanitizeForProvider(schema).(map[string]any)
	require.True(t, ok)

	assert.NotContains(t, out, "$id")
	assert.NotContains(t, out, "$schema")
	assert.NotContains(t, out, "title")
	assert.Equal(t, "object", out["type"])
}

func TestSanitizeForProvider_PreservesTitleDataProperty(t *testing.T) {
	schema := map[string]any{
		"title": "Tradeoff",
		"type":  "object",
		"required": []any{"title", "description"},
		"properties": map[string]any{
			"title": map[string]any{
				"title": "nested metadata to strip",
				"type":  "string",
			},
			"description": map[string]any{"type": "string"},
		},
	}

	out, ok := SanitizeForProvider(schema).(map[string]any)
	require.True(t, ok)

	// Metadata title gone, data property "title" intact.
	assert.NotContains(t, out, "title")
	props, ok := out["properties"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, props, "title")

	// The subschema of the "title" property loses its own metadata.
	titleProp, ok := props["title"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"type": "string"}, titleProp)

	// Required list is untouched.
	assert.Equal(t, []any{"title", "description"}, out["required"])
}

func TestSanitizeForProvider_TreatsDefsLikeProperties(t *testing.T) {
	schema := map[string]any{
		"$defs": map[string]any{
			"title": map[string]any{"type": "string", "title": "strip me"},
		},
	}

	out, ok := SanitizeForProvider(schema).(map[string]any)
	require.True(t, ok)

	defs, ok := out["$defs"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, defs, "title")
	assert.Equal(t, map[string]any{"type": "string"}, defs["title"])
}

func TestSanitizeForProvider_WalksArrays(t *testing.T) {
	schema := map[string]any{
		"oneOf": []any{
			map[string]any{"title": "a", "type": "string"},
			map[string]any{"title": "b", "type": "number"},
		},
	}

	out, ok := SanitizeForProvider(schema).(map[string]any)
	require.True(t, ok)

	oneOf, ok := out["oneOf"].([]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"type": "string"}, oneOf[0])
	assert.Equal(t, map[string]any{"type": "number"}, oneOf[1])
}
