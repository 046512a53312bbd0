package domain

import (
	"errors"
	"path/filepath"
	"strings"
	"time"

	"themeshift/internal/theme"
)

type ThemeFormat string

const (
	ThemeFormatYAML ThemeFormat = "yaml"
	ThemeFormatTOML ThemeFormat = "toml"
	ThemeFormatJSON ThemeFormat = "json"
)

// StoredTheme is a user theme document kept in the theme store.
type StoredTheme struct {
	ID        int64       `db:"id" json:"id"`
	Name      string      `db:"name" json:"name"`
	Format    ThemeFormat `db:"format" json:"format"`
	Content   string      `db:"content" json:"content"`
	CreatedAt time.Time   `db:"created_at" json:"created_at"`
	UpdatedAt time.Time   `db:"updated_at" json:"updated_at"`
}

func NewStoredTheme(name string, format ThemeFormat, content []byte) *StoredTheme {
	return &StoredTheme{
		Name:    strings.TrimSpace(name),
		Format:  format,
		Content: string(content),
	}
}

// FormatForFile maps a file name to its theme format by extension.
func FormatForFile(name string) (ThemeFormat, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return ThemeFormatYAML, nil
	case ".toml":
		return ThemeFormatTOML, nil
	case ".json":
		return ThemeFormatJSON, nil
	default:
		return "", errors.New("unsupported theme file extension: must be .yaml, .yml, .toml or .json")
	}
}

func (t *StoredTheme) Validate() error {
	if strings.TrimSpace(t.Name) == "" {
		return errors.New("theme name cannot be empty")
	}

	if len(t.Name) > 100 {
		return errors.New("theme name cannot exceed 100 characters")
	}

	if strings.ContainsAny(t.Name, `/\.`) {
		return errors.New("theme name cannot contain path separators or dots")
	}

	if !isValidThemeFormat(t.Format) {
		return errors.New("invalid format: must be yaml, toml, or json")
	}

	if strings.TrimSpace(t.Content) == "" {
		return errors.New("theme content cannot be empty")
	}

	return nil
}

// Document decodes the stored content.
func (t *StoredTheme) Document() (theme.Document, error) {
	return theme.DecodeDocument([]byte(t.Content), t.Extension())
}

// Extension is the file extension matching the stored format.
func (t *StoredTheme) Extension() string {
	return "." + string(t.Format)
}

func isValidThemeFormat(f ThemeFormat) bool {
	switch f {
	case ThemeFormatYAML, ThemeFormatTOML, ThemeFormatJSON:
		return true
	}
	return false
}
