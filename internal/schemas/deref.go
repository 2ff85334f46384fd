package schemas

import (
	"fmt"
	"strings"
)

// maxRefDepth bounds $ref chains; anything deeper is treated as a cycle.
const maxRefDepth = 32

// Dereference resolves every in-document "$ref" JSON pointer and returns a
// schema with all references replaced by deep copies of their targets. Only
// local pointers ("#/...") are supported; the market schemas carry no remote
// references.
func Dereference(root map[string]any) (map[string]any, error) {
	resolved, err := derefNode(root, root, 0)
	if err != nil {
		return nil, err
	}

	out, ok := resolved.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema root resolved to %T, expected object", resolved)
	}
	return out, nil
}

func derefNode(node any, root map[string]any, depth int) (any, error) {
	if depth > maxRefDepth {
		return nil, fmt.Errorf("$ref chain exceeds depth %d (cycle?)", maxRefDepth)
	}

	switch value := node.(type) {
	case map[string]any:
		if ref, ok := value["$ref"].(string); ok {
			target, err := resolvePointer(root, ref)
			if err != nil {
				return nil, err
			}
			return derefNode(target, root, depth+1)
		}

		out := make(map[string]any, len(value))
		for key, child := range value {
			resolved, err := derefNode(child, root, depth+1)
			if err != nil {
				return nil, err
			}
			out[key] = resolved
		}
		return out, nil

	case []any:
		out := make([]any, len(value))
		for i, child := range value {
			resolved, err := derefNode(child, root, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = resolved
		}
		return out, nil

	default:
		return value, nil
	}
}

func resolvePointer(root map[string]any, ref string) (any, error) {
	if !strings.HasPrefix(ref, "#") {
		return nil, fmt.Errorf("unsupported external $ref %q", ref)
	}

	pointer := strings.TrimPrefix(ref, "#")
	if pointer == "" {
		return root, nil
	}
	if !strings.HasPrefix(pointer, "/") {
		return nil, fmt.Errorf("malformed $ref %q", ref)
	}

	var current any = root
	for _, token := range strings.Split(pointer[1:], "/") {
		token = strings.ReplaceAll(token, "~1", "/")
		token = strings.ReplaceAll(token, "~0", "~")

		obj, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("$ref %q: segment %q is not an object", ref, token)
		}
		current, ok = obj[token]
		if !ok {
			return nil, fmt.Errorf("$ref %q: segment %q not found", ref, token)
		}
	}
	return current, nil
}
