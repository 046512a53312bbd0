package theme

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathFor_MainBundle(t *testing.T) {
	bundle := fstest.MapFS{
		"night.toml": {Data: []byte("a = 1")},
		"day.yaml":   {Data: []byte("a: 1")},
		"day.json":   {Data: []byte(`{"a": 1}`)},
	}
	p := MainBundle()

	file, ok := p.PathFor(bundle, "night")
	assert.True(t, ok)
	assert.Equal(t, "night.toml", file)

	// yaml wins over json
	file, ok = p.PathFor(bundle, "day")
	assert.True(t, ok)
	assert.Equal(t, "day.yaml", file)

	_, ok = p.PathFor(bundle, "dusk")
	assert.False(t, ok)

	_, ok = p.PathFor(nil, "day")
	assert.False(t, ok)

	_, ok = p.PathFor(bundle, "")
	assert.False(t, ok)
}

func TestPathFor_Sandbox(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "night.json"), []byte(`{}`), 0644))
	p := Sandbox(dir)

	file, ok := p.PathFor(nil, "night")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "night.json"), file)

	// plain concatenation when nothing exists yet
	file, ok = p.PathFor(nil, "day")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(dir, "day.yaml"), file)
}

func TestPath_Accessors(t *testing.T) {
	assert.True(t, MainBundle().IsBundle())
	_, ok := MainBundle().Dir()
	assert.False(t, ok)
	assert.Equal(t, "main bundle", MainBundle().String())

	p := Sandbox("/themes")
	assert.False(t, p.IsBundle())
	dir, ok := p.Dir()
	assert.True(t, ok)
	assert.Equal(t, "/themes", dir)
	assert.Equal(t, "sandbox(/themes)", p.String())
	assert.Equal(t, filepath.Join("/themes", "bg.png"), p.ResourcePath("bg.png"))
	assert.Equal(t, "img/bg.png", MainBundle().ResourcePath("img/./bg.png"))
}

func TestPath_ReadFile(t *testing.T) {
	bundle := fstest.MapFS{"a.yaml": {Data: []byte("x: 1")}}

	data, err := MainBundle().ReadFile(bundle, "a.yaml")
	require.NoError(t, err)
	assert.Equal(t, "x: 1", string(data))

	_, err = MainBundle().ReadFile(nil, "a.yaml")
	assert.Error(t, err)

	_, err = Sandbox(t.TempDir()).ReadFile(nil, "/does/not/exist.yaml")
	assert.Error(t, err)
}
