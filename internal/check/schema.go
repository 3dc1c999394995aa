package check

import (
	"fmt"

	"github.com/avairo/tplcheck/internal/catalog"
	"github.com/xeipuuv/gojsonschema"
)

// SchemaError localizes one entry's schema violation.
type SchemaError struct {
	ID      string
	Name    string
	Message string
	Path    string // dotted path within the entry, empty at entry root
}

// Schema validates the catalog in two passes. The first pass validates the
// whole list against the catalog schema; when it passes, no per-entry work
// happens. When it fails, every entry is re-validated individually against
// the item sub-schema, which localizes each violating entry and yields an
// entry-relative path instead of a single array-relative one.
//
// Cross-entry constraints in the catalog schema can trigger the fallback
// without any entry failing the item schema; such violations go unreported.
func Schema(raw []any, entries []catalog.Entry, schema catalog.Schema) ([]SchemaError, error) {
	bulk, err := gojsonschema.Validate(
		gojsonschema.NewGoLoader(map[string]any(schema)),
		gojsonschema.NewGoLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("compiling catalog schema: %w", err)
	}
	if bulk.Valid() {
		return nil, nil
	}

	itemSchema := schema.Items()
	if itemSchema == nil {
		return nil, fmt.Errorf("catalog schema has no item sub-schema to localize violations against")
	}
	compiled, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(itemSchema))
	if err != nil {
		return nil, fmt.Errorf("compiling item schema: %w", err)
	}

	var errs []SchemaError
	for i, e := range entries {
		result, err := compiled.Validate(gojsonschema.NewGoLoader(e.Raw))
		if err != nil {
			return nil, fmt.Errorf("validating entry %d: %w", i, err)
		}
		if result.Valid() {
			continue
		}
		first := result.Errors()[0]
		errs = append(errs, SchemaError{
			ID:      e.DisplayID(i),
			Name:    e.DisplayName(),
			Message: first.Description(),
			Path:    fieldPath(first.Field()),
		})
	}
	return errs, nil
}

// fieldPath normalizes the validator's field reference; the validator names
// the document root "(root)".
func fieldPath(field string) string {
	if field == "(root)" {
		return ""
	}
	return field
}
