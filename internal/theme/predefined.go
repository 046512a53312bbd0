package theme

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"
)

//go:embed bundle/*.yaml
var bundled embed.FS

// BundleFS returns the built-in theme documents.
func BundleFS() fs.FS {
	sub, err := fs.Sub(bundled, "bundle")
	if err != nil {
		panic(fmt.Sprintf("theme: bundle: %v", err))
	}
	return sub
}

// returns predefined theme names, in switching order
func GetThemeNames() []string {
	return []string{
		"default",
		"dark",
		"light",
		"dracula",
		"nord",
		"gruvbox",
	}
}

// ListThemes returns the theme documents found at the top level of bundle.
// Predefined names keep their switching order, any others follow sorted.
func ListThemes(bundle fs.FS) []string {
	if bundle == nil {
		return nil
	}

	entries, err := fs.ReadDir(bundle, ".")
	if err != nil {
		return nil
	}

	found := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := path.Ext(e.Name())
		if !IsDocumentExtension(ext) {
			continue
		}
		found[strings.TrimSuffix(e.Name(), ext)] = true
	}

	var names []string
	for _, name := range GetThemeNames() {
		if found[name] {
			names = append(names, name)
			delete(found, name)
		}
	}

	var extra []string
	for name := range found {
		extra = append(extra, name)
	}
	sort.Strings(extra)

	return append(names, extra...)
}

// LoadBundled decodes the bundled theme called name.
func LoadBundled(bundle fs.FS, name string) (Document, error) {
	file, ok := MainBundle().PathFor(bundle, name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrThemeNotFound, name)
	}

	data, err := fs.ReadFile(bundle, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme %s: %w", name, err)
	}

	return DecodeDocumentFile(data, file)
}

// ThemeExists reports whether the bundle holds a theme called name.
func ThemeExists(bundle fs.FS, name string) bool {
	_, ok := MainBundle().PathFor(bundle, name)
	return ok
}

// FindTheme locates the theme called name, preferring a document in dir over
// the bundled one.
func FindTheme(bundle fs.FS, dir, name string) (Path, bool) {
	if dir != "" && ThemeExists(os.DirFS(dir), name) {
		return Sandbox(dir), true
	}
	if ThemeExists(bundle, name) {
		return MainBundle(), true
	}
	return Path{}, false
}
