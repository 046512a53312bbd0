package theme

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestManager(t *testing.T, opts ...Option) (*Manager, *observer.ObservedLogs) {
	t.Helper()

	core, logs := observer.New(zapcore.WarnLevel)
	opts = append([]Option{WithLogger(zap.New(core))}, opts...)
	return NewManager(opts...), logs
}

func brandDocument() Document {
	return Document{
		"brand": Document{
			"primary": "#FF0000FF",
			"logo":    "logo.png",
		},
		"metrics": Document{
			"radius": 4,
		},
	}
}

func TestNewManager_Defaults(t *testing.T) {
	m, _ := newTestManager(t)

	assert.Nil(t, m.CurrentTheme())
	assert.Nil(t, m.CurrentThemePath())
	assert.Equal(t, 0, m.CurrentThemeIndex())
	assert.NotNil(t, m.Bundle())
	assert.Equal(t, 0, m.Observers())
}

func TestSetThemeIndex_NotifiesOnce(t *testing.T) {
	m, _ := newTestManager(t)

	calls := 0
	m.Subscribe(func() { calls++ })

	m.SetThemeIndex(3)
	assert.Equal(t, 1, calls)
	assert.Equal(t, 3, m.CurrentThemeIndex())

	// no bounds check
	m.SetThemeIndex(99)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 99, m.CurrentThemeIndex())
}

func TestSetThemeDocument_ObserversSeeNewState(t *testing.T) {
	m, _ := newTestManager(t)

	var seen string
	m.Subscribe(func() {
		seen, _ = m.StringForKeyPath("brand.primary")
	})

	m.SetThemeDocument(brandDocument(), MainBundle())

	assert.Equal(t, "#FF0000FF", seen)
	require.NotNil(t, m.CurrentThemePath())
	assert.True(t, m.CurrentThemePath().IsBundle())
}

func TestSubscribe_DeliveryOrderAndUnsubscribe(t *testing.T) {
	m, _ := newTestManager(t)

	var order []string
	first := m.Subscribe(func() { order = append(order, "first") })
	m.Subscribe(func() { order = append(order, "second") })

	m.SetThemeIndex(1)
	assert.Equal(t, []string{"first", "second"}, order)

	first.Unsubscribe()
	first.Unsubscribe()
	assert.Equal(t, 1, m.Observers())

	order = nil
	m.SetThemeIndex(2)
	assert.Equal(t, []string{"second"}, order)
}

func TestSubscribe_UnsubscribeDuringNotify(t *testing.T) {
	m, _ := newTestManager(t)

	calls := 0
	var sub Subscription
	sub = m.Subscribe(func() {
		calls++
		sub.Unsubscribe()
	})
	other := 0
	m.Subscribe(func() { other++ })

	m.SetThemeIndex(1)
	m.SetThemeIndex(2)

	assert.Equal(t, 1, calls)
	assert.Equal(t, 2, other)
}

func TestSetTheme_FromBundle(t *testing.T) {
	m, _ := newTestManager(t)

	calls := 0
	m.Subscribe(func() { calls++ })

	m.SetThemeFromBundle("dracula")

	assert.Equal(t, 1, calls)
	name, ok := m.StringForKeyPath("name")
	require.True(t, ok)
	assert.Equal(t, "dracula", name)
}

func TestSetTheme_FromDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ocean.toml"), []byte(`
[brand]
primary = "#0000FF"
`), 0644))

	m, _ := newTestManager(t)
	m.SetThemeFromDir("ocean", dir)

	c, ok := m.ColorForKeyPath("brand.primary")
	require.True(t, ok)
	assert.Equal(t, "#0000ff", c.Hex())

	d, ok := m.CurrentThemePath().Dir()
	assert.True(t, ok)
	assert.Equal(t, dir, d)
}

func TestSetTheme_FailureLeavesStateUnchanged(t *testing.T) {
	bundle := fstest.MapFS{
		"broken.yaml": {Data: []byte("brand: [unterminated")},
	}
	m, logs := newTestManager(t, WithBundle(bundle))
	m.SetThemeDocument(brandDocument(), MainBundle())

	calls := 0
	m.Subscribe(func() { calls++ })

	m.SetThemeFromBundle("missing")
	m.SetThemeFromBundle("broken")
	m.SetThemeFromDir("missing", t.TempDir())

	assert.Equal(t, 0, calls)
	assert.Equal(t, brandDocument(), m.CurrentTheme())
	assert.Equal(t, 1, logs.FilterMessage("theme document not found").Len())
	assert.Equal(t, 1, logs.FilterMessage("theme document not decodable").Len())
	assert.Equal(t, 1, logs.FilterMessage("theme document not readable").Len())
}
