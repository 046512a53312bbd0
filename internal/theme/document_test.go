package theme

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeDocument_Formats(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		data string
	}{
		{
			name: "yaml",
			ext:  ".yaml",
			data: "brand:\n  primary: \"#FF0000\"\n  radius: 4\n",
		},
		{
			name: "yml",
			ext:  ".YML",
			data: "brand:\n  primary: \"#FF0000\"\n  radius: 4\n",
		},
		{
			name: "toml",
			ext:  ".toml",
			data: "[brand]\nprimary = \"#FF0000\"\nradius = 4\n",
		},
		{
			name: "json",
			ext:  ".json",
			data: `{"brand": {"primary": "#FF0000", "radius": 4}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := DecodeDocument([]byte(tt.data), tt.ext)
			require.NoError(t, err)

			brand, ok := doc["brand"].(Document)
			require.True(t, ok, "nested mapping should be a Document, got %T", doc["brand"])
			assert.Equal(t, "#FF0000", brand["primary"])

			v, ok := doc.ValueForKeyPath("brand.radius")
			assert.True(t, ok)
			assert.NotNil(t, v)
		})
	}
}

func TestDecodeDocument_Errors(t *testing.T) {
	tests := []struct {
		name string
		ext  string
		data string
	}{
		{name: "unknown extension", ext: ".plist", data: "<plist/>"},
		{name: "bad yaml", ext: ".yaml", data: "a: [b"},
		{name: "bad toml", ext: ".toml", data: "a = "},
		{name: "bad json", ext: ".json", data: "{"},
		{name: "empty yaml", ext: ".yaml", data: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeDocument([]byte(tt.data), tt.ext)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrParseFailure))
		})
	}
}

func TestDecodeDocument_NormalizesLists(t *testing.T) {
	doc, err := DecodeDocument([]byte(`
[[layers]]
name = "base"

[[layers]]
name = "overlay"
`), ".toml")
	require.NoError(t, err)

	layers, ok := doc["layers"].([]any)
	require.True(t, ok)
	require.Len(t, layers, 2)
	assert.Equal(t, "overlay", layers[1].(Document)["name"])
}

func TestValueForKeyPath(t *testing.T) {
	doc := brandDocument()

	v, ok := doc.ValueForKeyPath("brand.primary")
	assert.True(t, ok)
	assert.Equal(t, "#FF0000FF", v)

	_, ok = doc.ValueForKeyPath("")
	assert.False(t, ok)

	_, ok = Document(nil).ValueForKeyPath("brand")
	assert.False(t, ok)

	_, ok = doc.ValueForKeyPath("brand..primary")
	assert.False(t, ok)
}

func TestDocumentKeys(t *testing.T) {
	keys := brandDocument().Keys()
	assert.Equal(t, []string{"brand.logo", "brand.primary", "metrics.radius"}, keys)
}
