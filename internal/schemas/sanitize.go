package schemas

// schemaMetaKeys are schema-metadata keys the provider's structured-output
// engine rejects. They are only metadata when they appear in a schema
// position; the same names are legal data property names.
var schemaMetaKeys = map[string]bool{
	"$id":     true,
	"$schema": true,
	"title":   true,
}

// SanitizeForProvider strips provider-incompatible schema metadata while
// preserving same-named data fields. The walk carries a single flag: when the
// current object is the value of a "properties" or "$defs" key, its keys are
// data-shape names and are never filtered, but each child subschema is again
// a schema position. A blind key filter would corrupt schemas that declare a
// property literally named "title".
func SanitizeForProvider(schema any) any {
	return sanitize(schema, false)
}

func sanitize(node any, insideProperties bool) any {
	switch value := node.(type) {
	case []any:
		out := make([]any, len(value))
		for i, item := range value {
			out[i] = sanitize(item, false)
		}
		return out

	case map[string]any:
		out := make(map[string]any, len(value))
		for key, child := range value {
			if !insideProperties && schemaMetaKeys[key] {
				continue
			}
			out[key] = sanitize(child, key == "properties" || key == "$defs")
		}
		return out

	default:
		return value
	}
}
