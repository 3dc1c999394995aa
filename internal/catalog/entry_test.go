package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, src string) []any {
	t.Helper()
	var raw []any
	require.NoError(t, json.Unmarshal([]byte(src), &raw))
	return raw
}

func TestParseEntries(t *testing.T) {
	raw := decode(t, `[
		{"id": "t1", "name": "Alpha", "icon": "a.png", "extra": 42},
		{"id": "t2", "name": "Beta"}
	]`)

	entries := ParseEntries(raw)
	require.Len(t, entries, 2)

	assert.Equal(t, "t1", entries[0].ID)
	assert.Equal(t, "Alpha", entries[0].Name)
	assert.Equal(t, "a.png", entries[0].Icon)
	assert.Equal(t, float64(42), entries[0].Raw["extra"], "pass-through fields stay in Raw")

	assert.Equal(t, "t2", entries[1].ID)
	assert.Empty(t, entries[1].Icon)
}

func TestParseEntries_NonStringFields(t *testing.T) {
	raw := decode(t, `[{"id": 7, "name": null, "icon": false}]`)

	entries := ParseEntries(raw)
	require.Len(t, entries, 1)
	assert.Empty(t, entries[0].ID, "non-string id is treated as absent")
	assert.Empty(t, entries[0].Name)
	assert.Empty(t, entries[0].Icon)
}

func TestParseEntries_NonObjectElement(t *testing.T) {
	raw := decode(t, `[{"id": "t1"}, "oops"]`)

	entries := ParseEntries(raw)
	require.Len(t, entries, 2, "positions stay aligned with the document")
	assert.Nil(t, entries[1].Raw)
}

func TestEntry_DisplayFallbacks(t *testing.T) {
	e := Entry{}
	assert.Equal(t, "entry-3", e.DisplayID(3))
	assert.Equal(t, "unknown", e.DisplayName())

	e = Entry{ID: "t1", Name: "Alpha"}
	assert.Equal(t, "t1", e.DisplayID(3))
	assert.Equal(t, "Alpha", e.DisplayName())
}
