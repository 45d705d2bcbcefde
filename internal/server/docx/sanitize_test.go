package docx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize_DropsNilRecursively(t *testing.T) {
	in := map[string]any{
		"title":       "x",
		"description": nil,
		"blocks": []any{
			map[string]any{"id": "b1", "title": nil, "items": []any{
				map[string]any{"url": "u", "text": nil},
				nil,
			}},
			nil,
		},
		"colors": map[string]any{"bg": "#fff", "fg": nil},
	}

	got := Sanitize(in)

	assert.Equal(t, map[string]any{
		"title": "x",
		"blocks": []any{
			map[string]any{"id": "b1", "items": []any{
				map[string]any{"url": "u"},
			}},
		},
		"colors": map[string]any{"bg": "#fff"},
	}, got)
	assert.Contains(t, in, "description", "input must not be modified")
}

func TestSanitize_Nil(t *testing.T) {
	assert.Nil(t, Sanitize(nil))
	assert.Empty(t, Sanitize(map[string]any{"a": nil}))
}

func TestMerge_PatchOverridesAndSkipsNil(t *testing.T) {
	base := map[string]any{"title": "old", "bio": "keep"}
	got := Merge(base, map[string]any{"title": "new", "bio": nil})
	assert.Equal(t, map[string]any{"title": "new", "bio": "keep"}, got)

	assert.Equal(t, map[string]any{"a": 1}, Merge(nil, map[string]any{"a": 1}))
}

func TestToMapFromMap(t *testing.T) {
	type doc struct {
		Title string   `json:"title"`
		Tags  []string `json:"tags,omitempty"`
	}
	m, err := ToMap(doc{Title: "t", Tags: []string{"a"}})
	require.NoError(t, err)
	assert.Equal(t, "t", m["title"])

	var back doc
	require.NoError(t, FromMap(m, &back))
	assert.Equal(t, doc{Title: "t", Tags: []string{"a"}}, back)
}

func TestEncode_OmitsNulls(t *testing.T) {
	type doc struct {
		Title  string   `json:"title"`
		Blocks []string `json:"blocks"`
		Cover  *string  `json:"cover"`
	}
	b, err := Encode(doc{Title: "t"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"title":"t"}`, string(b))
}
