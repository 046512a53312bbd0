package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"themeshift/internal/config"
	"themeshift/internal/theme"
)

func setupCLI(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	orig := config.GetConfigDir()
	config.SetConfigDir(dir)
	t.Cleanup(func() { config.SetConfigDir(orig) })

	require.NoError(t, config.SaveConfig(&config.Config{LogLevel: "error"}))
	return dir
}

func resetFlags() {
	getTheme, getIndex, getAs = "", -1, "value"
	pickIndex, pickColors = -1, false
	importName, importOnConflict = "", "fail"
	exportFormat, exportOutput = "yaml", ""
	tuiNoWatch, tuiVariants = false, 4
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetFlags()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func writeTheme(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestThemeList_ShowsBundledThemes(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "theme", "list")
	require.NoError(t, err)

	for _, name := range theme.GetThemeNames() {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "bundle")
	assert.Contains(t, out, "▶")
}

func TestThemeSet_PersistsAndResolves(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "theme", "set", "dracula")
	require.NoError(t, err)
	assert.Contains(t, out, "dracula")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "dracula", cfg.ThemeName)

	out, err = runCLI(t, "theme", "get", "semantic.primary", "--as", "color")
	require.NoError(t, err)
	assert.Equal(t, "#bd93f9\n", out)

	out, err = runCLI(t, "theme", "get", "metrics.padding", "--as", "number", "--theme", "nord")
	require.NoError(t, err)
	assert.Equal(t, "1\n", out)
}

func TestThemeSet_Unknown(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "theme", "set", "nope")
	assert.True(t, errors.Is(err, theme.ErrThemeNotFound))
}

func TestThemeGet_SuggestsKeyPaths(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "theme", "get", "semantic.primry")
	require.Error(t, err)
	assert.True(t, errors.Is(err, theme.ErrKeyNotFound))
	assert.Contains(t, err.Error(), "did you mean semantic.primary")

	_, err = runCLI(t, "theme", "get", "semantic", "--as", "color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a color")

	out, err := runCLI(t, "theme", "get", "text", "--as", "dict")
	require.NoError(t, err)
	assert.Contains(t, out, "primary:")
}

func TestThemePick(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "theme", "pick", "small", "medium", "large", "--index", "1")
	require.NoError(t, err)
	assert.Equal(t, "medium\n", out)

	_, err = runCLI(t, "theme", "pick", "small", "--index", "3")
	assert.True(t, errors.Is(err, theme.ErrIndexOutOfRange))

	out, err = runCLI(t, "theme", "pick", "#FF0000", "#00FF00", "--colors", "--index", "0")
	require.NoError(t, err)
	assert.Equal(t, "#ff0000\n", out)
}

func TestThemeImport_SetAndRemove(t *testing.T) {
	dir := setupCLI(t)
	file := writeTheme(t, "ocean.toml", "name = \"ocean\"\n[brand]\nprimary = \"#0000FF\"\n")

	out, err := runCLI(t, "theme", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Imported theme 'ocean' (toml)")

	_, err = runCLI(t, "theme", "import", file)
	assert.Error(t, err, "duplicate import fails by default")

	_, err = runCLI(t, "theme", "import", file, "--on-conflict", "overwrite")
	require.NoError(t, err)

	out, err = runCLI(t, "theme", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "ocean")
	assert.Contains(t, out, "store")

	_, err = runCLI(t, "theme", "set", "ocean")
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "themes", "ocean.toml"))
	require.NoError(t, err, "stored theme is written to the theme directory")

	out, err = runCLI(t, "theme", "get", "brand.primary")
	require.NoError(t, err)
	assert.Equal(t, "#0000FF\n", out)

	out, err = runCLI(t, "theme", "remove", "ocean")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed theme 'ocean'")

	_, err = os.Stat(filepath.Join(dir, "themes", "ocean.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.ThemeName, "removing the active theme resets it")

	_, err = runCLI(t, "theme", "remove", "nord")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bundled")
}

func TestThemeExport(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "theme", "export", "nord", "--format", "json")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "nord", doc["name"])

	target := filepath.Join(t.TempDir(), "nord.toml")
	out, err = runCLI(t, "theme", "export", "nord", "--format", "toml", "--output", target)
	require.NoError(t, err)
	assert.Contains(t, out, target)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), `name = "nord"`))
}

func TestThemeIndex(t *testing.T) {
	setupCLI(t)

	_, err := runCLI(t, "theme", "index", "2")
	require.NoError(t, err)

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.ThemeIndex)

	_, err = runCLI(t, "theme", "index", "-1")
	assert.Error(t, err)
}

func TestThemeShow(t *testing.T) {
	setupCLI(t)

	out, err := runCLI(t, "theme", "show", "gruvbox")
	require.NoError(t, err)
	assert.Contains(t, out, "gruvbox")
	assert.Contains(t, out, "semantic.primary")
	assert.Contains(t, out, "main bundle")
}
