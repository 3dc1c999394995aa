package check

import (
	"encoding/json"
	"testing"

	"github.com/avairo/tplcheck/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const itemCatalogSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id", "name"],
		"properties": {
			"id": {"type": "string"},
			"name": {"type": "string"},
			"icon": {"type": "string"}
		}
	}
}`

func decodeCatalog(t *testing.T, src string) ([]any, []catalog.Entry) {
	t.Helper()
	var raw []any
	require.NoError(t, json.Unmarshal([]byte(src), &raw))
	return raw, catalog.ParseEntries(raw)
}

func decodeSchema(t *testing.T, src string) catalog.Schema {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(src), &m))
	return catalog.Schema(m)
}

func TestSchema_ValidCatalog(t *testing.T) {
	raw, entries := decodeCatalog(t, `[
		{"id": "t1", "name": "Alpha", "icon": "a.png"},
		{"id": "t2", "name": "Beta"}
	]`)

	errs, err := Schema(raw, entries, decodeSchema(t, itemCatalogSchema))
	require.NoError(t, err)
	assert.Empty(t, errs, "bulk success skips per-entry work and reports nothing")
}

func TestSchema_LocalizesEveryViolatingEntry(t *testing.T) {
	raw, entries := decodeCatalog(t, `[
		{"id": "t1", "name": "Alpha"},
		{"id": "t2"},
		{"id": "t3", "name": "Gamma"},
		{"name": "Delta"}
	]`)

	errs, err := Schema(raw, entries, decodeSchema(t, itemCatalogSchema))
	require.NoError(t, err)
	require.Len(t, errs, 2, "valid entries produce no error in the per-entry pass")

	assert.Equal(t, "t2", errs[0].ID)
	assert.Equal(t, "unknown", errs[0].Name)
	assert.Contains(t, errs[0].Message, "name is required")
	assert.Empty(t, errs[0].Path, "required-field violations attach to the entry root")

	assert.Equal(t, "entry-3", errs[1].ID, "entries without an id get a positional fallback")
	assert.Equal(t, "Delta", errs[1].Name)
	assert.Contains(t, errs[1].Message, "id is required")
}

func TestSchema_FieldPathWithinEntry(t *testing.T) {
	raw, entries := decodeCatalog(t, `[{"id": 5, "name": "Alpha"}]`)

	errs, err := Schema(raw, entries, decodeSchema(t, itemCatalogSchema))
	require.NoError(t, err)
	require.Len(t, errs, 1)

	assert.Equal(t, "id", errs[0].Path, "the path is entry-relative, not array-relative")
	assert.Contains(t, errs[0].Message, "Invalid type")
}

func TestSchema_Deterministic(t *testing.T) {
	raw, entries := decodeCatalog(t, `[{"id": "t1"}, {"id": "t2"}]`)
	schema := decodeSchema(t, itemCatalogSchema)

	first, err := Schema(raw, entries, schema)
	require.NoError(t, err)
	second, err := Schema(raw, entries, schema)
	require.NoError(t, err)

	assert.Equal(t, first, second, "the same inputs yield the same error list")
}

// A catalog-level constraint can fail bulk validation without any entry
// violating the item schema; the per-entry pass then finds nothing and the
// violation goes unreported. This is the accepted limitation of the
// two-pass design, pinned here on purpose.
func TestSchema_CrossEntryConstraintGoesUnreported(t *testing.T) {
	raw, entries := decodeCatalog(t, `[
		{"id": "t1", "name": "Alpha"},
		{"id": "t2", "name": "Beta"}
	]`)
	schema := decodeSchema(t, `{
		"type": "array",
		"maxItems": 1,
		"items": {"type": "object"}
	}`)

	errs, err := Schema(raw, entries, schema)
	require.NoError(t, err)
	assert.Empty(t, errs)
}

func TestSchema_MissingItemSubSchema(t *testing.T) {
	raw, entries := decodeCatalog(t, `[{"id": 5}]`)
	schema := decodeSchema(t, `{"type": "object"}`)

	_, err := Schema(raw, entries, schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no item sub-schema")
}
