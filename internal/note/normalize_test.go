package note

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, s string) Raw {
	t.Helper()
	var r Raw
	require.NoError(t, json.Unmarshal([]byte(s), &r))
	return r
}

func TestNormalizeCanonicalRecord(t *testing.T) {
	t.Parallel()

	n := Normalize(decode(t, `{
		"id": "abc",
		"title": "Title",
		"content": "Body",
		"tags": ["a", "b"],
		"archived": true,
		"created": "01 Feb 2024",
		"lastEdited": "03 Feb 2024"
	}`))

	assert.Equal(t, Note{
		ID:         "abc",
		Title:      "Title",
		Content:    "Body",
		Tags:       []string{"a", "b"},
		Archived:   true,
		Created:    "01 Feb 2024",
		LastEdited: "03 Feb 2024",
	}, n)
}

func TestNormalizeLegacyAliases(t *testing.T) {
	t.Parallel()

	n := Normalize(decode(t, `{
		"id": "legacy",
		"title": "Old",
		"isArchived": true,
		"updatedAt": "2024-10-29T09:30:00Z"
	}`))

	assert.True(t, n.Archived)
	assert.Equal(t, "29 Oct 2024", n.LastEdited)
}

func TestNormalizeCanonicalFieldWinsOverAlias(t *testing.T) {
	t.Parallel()

	n := Normalize(decode(t, `{"archived": false, "isArchived": true}`))
	assert.False(t, n.Archived)
}

func TestNormalizeDefaults(t *testing.T) {
	t.Parallel()

	n := Normalize(Raw{})

	assert.NotEmpty(t, n.ID)
	assert.Empty(t, n.Title)
	assert.Empty(t, n.Content)
	assert.Empty(t, n.Tags)
	assert.False(t, n.Archived)
	assert.Equal(t, Today(), n.Created)
	assert.Equal(t, Today(), n.LastEdited)
}

func TestNormalizeMalformedFields(t *testing.T) {
	t.Parallel()

	n := Normalize(decode(t, `{
		"id": "x",
		"title": 12,
		"content": null,
		"tags": "not-a-list",
		"archived": "yes please",
		"lastEdited": "definitely not a date"
	}`))

	assert.Equal(t, "x", n.ID)
	assert.Equal(t, "12", n.Title)
	assert.Empty(t, n.Content)
	assert.Empty(t, n.Tags)
	assert.False(t, n.Archived)
	assert.Equal(t, Today(), n.LastEdited)
}

func TestNormalizeTrimsAndDropsEmptyTags(t *testing.T) {
	t.Parallel()

	n := Normalize(decode(t, `{"tags": [" a ", "", null, 3]}`))
	assert.Equal(t, []string{"a", "3"}, n.Tags)
}

func TestNormalizeEpochMillis(t *testing.T) {
	t.Parallel()

	n := Normalize(Raw{"lastEdited": float64(1730194200000)})
	assert.Equal(t, FormatDate(time.UnixMilli(1730194200000)), n.LastEdited)
}

func TestToRawRoundTripsThroughNormalize(t *testing.T) {
	t.Parallel()

	orig := sample()[1]
	assert.Equal(t, orig, Normalize(ToRaw(orig)))
}

func TestRawHasID(t *testing.T) {
	t.Parallel()

	assert.True(t, Raw{"id": "n1"}.HasID())
	assert.True(t, Raw{"id": float64(7)}.HasID())
	assert.False(t, Raw{"id": "  "}.HasID())
	assert.False(t, Raw{"title": "no id"}.HasID())
}
