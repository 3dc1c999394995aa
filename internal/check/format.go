package check

import "fmt"

// Format confirms the catalog document is a list whose elements are all
// objects. On failure the reason names the first offending element and its
// JSON type; further offenders are not enumerated.
func Format(doc any) (bool, string) {
	list, ok := doc.([]any)
	if !ok {
		return false, fmt.Sprintf("catalog must be a list of objects (got %s)", jsonTypeName(doc))
	}
	for i, el := range list {
		if _, ok := el.(map[string]any); !ok {
			return false, fmt.Sprintf("entry %d must be an object (got %s)", i, jsonTypeName(el))
		}
	}
	return true, ""
}

// jsonTypeName names a decoded JSON value the way a schema would spell it.
func jsonTypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "boolean"
	case string:
		return "string"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
