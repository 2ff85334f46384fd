// Package schemas owns the market report schemas: loading, $ref
// dereferencing, provider sanitization, and JSON Schema validation.
package schemas

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jonathan/anchor-insight/internal/types"
)

//go:embed *.schema.json
var schemaFiles embed.FS

var marketSchemaFile = map[types.Market]string{
	types.MarketB2C:    "cai.report.b2c.v1.schema.json",
	types.MarketB2BEdu: "cai.report.b2b_edu.v1.schema.json",
	types.MarketHRCorp: "cai.report.hr_corp.v1.schema.json",
}

var marketSchemaName = map[types.Market]string{
	types.MarketB2C:    "cai_report_b2c_v1",
	types.MarketB2BEdu: "cai_report_b2b_edu_v1",
	types.MarketHRCorp: "cai_report_hr_corp_v1",
}

// SchemaName returns the structured-output schema name registered with the
// provider for a market.
func SchemaName(market types.Market) string {
	return marketSchemaName[market]
}

// cache stores fully resolved (dereferenced + sanitized) schemas per market.
// Entries are never mutated after insertion, so concurrent readers are safe.
var (
	cache   = make(map[types.Market]map[string]any)
	cacheMu sync.RWMutex
)

// MarketSchema returns the market's fully dereferenced, provider-sanitized
// schema. The result is cached per market; callers must not mutate it.
func MarketSchema(market types.Market) (map[string]any, error) {
	cacheMu.RLock()
	if schema, ok := cache[market]; ok {
		cacheMu.RUnlock()
		return schema, nil
	}
	cacheMu.RUnlock()

	raw, err := RawMarketSchema(market)
	if err != nil {
		return nil, err
	}

	dereferenced, err := Dereference(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to dereference schema for market %s: %w", market, err)
	}

	sanitized, ok := SanitizeForProvider(dereferenced).(map[string]any)
	if !ok {
		return nil, fmt.Errorf("sanitized schema for market %s is not an object", market)
	}

	cacheMu.Lock()
	cache[market] = sanitized
	cacheMu.Unlock()

	return sanitized, nil
}

// RawMarketSchema parses the embedded schema document for a market. Each call
// returns a fresh copy safe to mutate.
func RawMarketSchema(market types.Market) (map[string]any, error) {
	filename, ok := marketSchemaFile[market]
	if !ok {
		return nil, fmt.Errorf("no schema registered for market %q", market)
	}

	data, err := schemaFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema %s: %w", filename, err)
	}

	var schema map[string]any
	if err := json.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("failed to parse schema %s: %w", filename, err)
	}
	return schema, nil
}
