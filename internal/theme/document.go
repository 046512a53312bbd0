package theme

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Document is a decoded theme file: nested string-keyed mappings holding
// strings, numbers, booleans, lists and further Documents.
type Document map[string]any

// extensions a theme document may be stored under, in lookup order
var documentExtensions = []string{".yaml", ".yml", ".toml", ".json"}

// DocumentExtensions returns the supported theme file extensions.
func DocumentExtensions() []string {
	out := make([]string, len(documentExtensions))
	copy(out, documentExtensions)
	return out
}

// IsDocumentExtension reports whether ext names a decodable theme format.
func IsDocumentExtension(ext string) bool {
	ext = strings.ToLower(ext)
	for _, e := range documentExtensions {
		if e == ext {
			return true
		}
	}
	return false
}

// DecodeDocument decodes data according to the file extension ext.
func DecodeDocument(data []byte, ext string) (Document, error) {
	var raw map[string]any

	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: yaml: %v", ErrParseFailure, err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("%w: toml: %v", ErrParseFailure, err)
		}
	case ".json":
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("%w: json: %v", ErrParseFailure, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported document extension %q", ErrParseFailure, ext)
	}

	if raw == nil {
		return nil, fmt.Errorf("%w: document is empty", ErrParseFailure)
	}

	return normalize(raw), nil
}

// DecodeDocumentFile decodes data using the extension of name.
func DecodeDocumentFile(data []byte, name string) (Document, error) {
	return DecodeDocument(data, filepath.Ext(name))
}

// converts every nested map flavour the decoders produce into Document
func normalize(in map[string]any) Document {
	out := make(Document, len(in))
	for k, v := range in {
		out[k] = normalizeValue(v)
	}
	return out
}

func normalizeValue(v any) any {
	switch val := v.(type) {
	case Document:
		return normalize(val)
	case map[string]any:
		return normalize(val)
	case map[any]any:
		m := make(map[string]any, len(val))
		for k, inner := range val {
			m[fmt.Sprint(k)] = inner
		}
		return normalize(m)
	case []any:
		list := make([]any, len(val))
		for i, inner := range val {
			list[i] = normalizeValue(inner)
		}
		return list
	case []map[string]any:
		list := make([]any, len(val))
		for i, inner := range val {
			list[i] = normalize(inner)
		}
		return list
	default:
		return v
	}
}

// ValueForKeyPath walks the document along a dot separated key path, each
// segment selecting a key of a nested mapping.
func (d Document) ValueForKeyPath(keyPath string) (any, bool) {
	if d == nil || keyPath == "" {
		return nil, false
	}

	var current any = d
	for _, segment := range strings.Split(keyPath, ".") {
		m, ok := current.(Document)
		if !ok {
			return nil, false
		}
		current, ok = m[segment]
		if !ok {
			return nil, false
		}
	}

	return current, true
}

// Keys returns every leaf key path of the document, sorted.
func (d Document) Keys() []string {
	var keys []string
	d.walk("", func(path string, _ any) {
		keys = append(keys, path)
	})
	sort.Strings(keys)
	return keys
}

// Walk calls fn for every leaf value with its full key path.
func (d Document) Walk(fn func(keyPath string, value any)) {
	d.walk("", fn)
}

func (d Document) walk(prefix string, fn func(string, any)) {
	for k, v := range d {
		path := k
		if prefix != "" {
			path = prefix + "." + k
		}
		if nested, ok := v.(Document); ok {
			nested.walk(path, fn)
			continue
		}
		fn(path, v)
	}
}
