package catalog

import "fmt"

// Entry is one template record from the catalog. ID, Name and Icon are the
// fields the checks inspect; Raw carries the full decoded object so schema
// validation sees every field, including ones this tool never looks at.
type Entry struct {
	ID   string
	Name string
	Icon string
	Raw  map[string]any
}

// DisplayID returns the entry id, or a positional fallback when absent.
func (e Entry) DisplayID(index int) string {
	if e.ID == "" {
		return fmt.Sprintf("entry-%d", index)
	}
	return e.ID
}

// DisplayName returns the entry name, or "unknown" when absent.
func (e Entry) DisplayName() string {
	if e.Name == "" {
		return "unknown"
	}
	return e.Name
}

// ParseEntries converts raw catalog elements into typed entries. Callers
// run the format check first; elements that are not objects produce a
// zero-value Entry so positions stay aligned with the source document.
func ParseEntries(raw []any) []Entry {
	entries := make([]Entry, 0, len(raw))
	for _, el := range raw {
		obj, ok := el.(map[string]any)
		if !ok {
			entries = append(entries, Entry{})
			continue
		}
		entries = append(entries, Entry{
			ID:   stringField(obj, "id"),
			Name: stringField(obj, "name"),
			Icon: stringField(obj, "icon"),
			Raw:  obj,
		})
	}
	return entries
}

func stringField(obj map[string]any, key string) string {
	if v, ok := obj[key].(string); ok {
		return v
	}
	return ""
}
