package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// Load failure categories. Both abort the run before any check executes.
var (
	ErrIO        = errors.New("io error")
	ErrMalformed = errors.New("malformed json")
)

// LoadDocument reads one file and decodes it as JSON. The returned value is
// whatever the document holds; the format check decides whether a catalog
// document has the right shape.
func LoadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %v", ErrIO, path, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON in %s: %v", ErrMalformed, path, err)
	}
	return doc, nil
}

// Schema is the decoded whole-catalog JSON-schema document.
type Schema map[string]any

// Items returns the item-level sub-schema nested under "items", or nil
// when the catalog schema carries none.
func (s Schema) Items() map[string]any {
	items, _ := s["items"].(map[string]any)
	return items
}

// LoadSchema loads the whole-catalog schema document.
func LoadSchema(path string) (Schema, error) {
	doc, err := LoadDocument(path)
	if err != nil {
		return nil, err
	}
	m, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: schema in %s is not a JSON object", ErrMalformed, path)
	}
	return Schema(m), nil
}

// IconSet is the set of filenames present in the icons directory at load
// time. Names preserves the listing order, which drives the tie-break rule
// for fuzzy suggestions.
type IconSet struct {
	names []string
	index map[string]bool
}

// LoadIconSet lists the icons directory non-recursively. Subdirectory
// contents are not walked; their names count as entries like any other.
func LoadIconSet(dir string) (*IconSet, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: listing icons directory %s: %v", ErrIO, dir, err)
	}
	set := &IconSet{index: make(map[string]bool, len(dirents))}
	for _, de := range dirents {
		set.names = append(set.names, de.Name())
		set.index[de.Name()] = true
	}
	return set, nil
}

// Contains reports whether name is present in the directory listing.
func (s *IconSet) Contains(name string) bool { return s.index[name] }

// Names returns the filenames in listing order.
func (s *IconSet) Names() []string { return s.names }

// Len returns the number of files in the set.
func (s *IconSet) Len() int { return len(s.names) }
