package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"themeshift/internal/domain"
	"themeshift/internal/theme"
)

// Encode writes doc to w in the given format.
func Encode(w io.Writer, doc theme.Document, format domain.ThemeFormat) error {
	plain := plainMap(doc)

	switch format {
	case domain.ThemeFormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(plain); err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}
		return enc.Close()
	case domain.ThemeFormatTOML:
		if err := toml.NewEncoder(w).Encode(plain); err != nil {
			return fmt.Errorf("failed to encode toml: %w", err)
		}
		return nil
	case domain.ThemeFormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(plain); err != nil {
			return fmt.Errorf("failed to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be yaml, toml, or json", format)
	}
}

// EncodeBytes is Encode into a buffer.
func EncodeBytes(doc theme.Document, format domain.ThemeFormat) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, doc, format); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// json numbers are strings underneath; yaml would quote them
func plainMap(doc theme.Document) map[string]any {
	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if v == nil {
			continue
		}
		out[k] = plainValue(v)
	}
	return out
}

func plainValue(v any) any {
	switch t := v.(type) {
	case theme.Document:
		return plainMap(t)
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = plainValue(e)
		}
		return out
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return i
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	default:
		return v
	}
}
