package dataformat

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_JSON(t *testing.T) {
	doc := []byte(`{"bob": [1, 42, 42, {"foo": "fred"}]}`)

	data, err := Decode(JSON, doc)
	require.NoError(t, err)

	expected := map[string]any{
		"bob": []any{float64(1), float64(42), float64(42), map[string]any{"foo": "fred"}},
	}
	assert.Equal(t, expected, data)
}

func TestDecode_JSON_invalid(t *testing.T) {
	_, err := Decode(JSON, []byte(`{"bob": `))

	assert.True(t, errors.Is(err, ErrFormat))
}

func TestDecode_YAML(t *testing.T) {
	doc := []byte("bob:\n  - 1\n  - 42\nfoo: fred\n")

	data, err := Decode(YAML, doc)
	require.NoError(t, err)

	expected := map[string]any{
		"bob": []any{uint64(1), uint64(42)},
		"foo": "fred",
	}
	assert.Equal(t, expected, data)
}

func TestDecode_XML(t *testing.T) {
	doc := []byte(`<catalog>
   <book id="bk101">
      <author>Gambardella, Matthew</author>
      <title>XML Developer's Guide</title>
   </book>
   <book id="bk102">
      <author>Ralls, Kim</author>
   </book>
</catalog>`)

	data, err := Decode(XML, doc)
	require.NoError(t, err)

	expected := map[string]any{
		"catalog": map[string]any{
			"book": []any{
				map[string]any{
					"@id":    "bk101",
					"author": "Gambardella, Matthew",
					"title":  "XML Developer's Guide",
				},
				map[string]any{
					"@id":    "bk102",
					"author": "Ralls, Kim",
				},
			},
		},
	}
	assert.Equal(t, expected, data)
}

func TestDecode_XML_text_only_element(t *testing.T) {
	data, err := Decode(XML, []byte(`<greeting>hello</greeting>`))
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"greeting": "hello"}, data)
}

func TestDecode_XML_mixed_content(t *testing.T) {
	data, err := Decode(XML, []byte(`<note lang="en">hello<b>world</b></note>`))
	require.NoError(t, err)

	expected := map[string]any{
		"note": map[string]any{
			"@lang": "en",
			"#text": "hello",
			"b":     "world",
		},
	}
	assert.Equal(t, expected, data)
}

func TestDecode_unknown_format(t *testing.T) {
	_, err := Decode(DataFormat("TOML"), []byte(`a = 1`))

	assert.True(t, errors.Is(err, ErrFormat))
}
