package domain

import (
	"strings"
	"testing"
)

func TestStoredThemeValidation(t *testing.T) {
	tests := []struct {
		name    string
		theme   *StoredTheme
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid yaml theme",
			theme:   &StoredTheme{Name: "ocean", Format: ThemeFormatYAML, Content: "name: ocean\n"},
			wantErr: false,
		},
		{
			name:    "empty name",
			theme:   &StoredTheme{Name: " ", Format: ThemeFormatYAML, Content: "a: 1"},
			wantErr: true,
			errMsg:  "name cannot be empty",
		},
		{
			name:    "name too long",
			theme:   &StoredTheme{Name: strings.Repeat("a", 101), Format: ThemeFormatYAML, Content: "a: 1"},
			wantErr: true,
			errMsg:  "name cannot exceed 100 characters",
		},
		{
			name:    "name with separator",
			theme:   &StoredTheme{Name: "../etc", Format: ThemeFormatYAML, Content: "a: 1"},
			wantErr: true,
			errMsg:  "path separators",
		},
		{
			name:    "unknown format",
			theme:   &StoredTheme{Name: "ocean", Format: "plist", Content: "a: 1"},
			wantErr: true,
			errMsg:  "invalid format",
		},
		{
			name:    "empty content",
			theme:   &StoredTheme{Name: "ocean", Format: ThemeFormatJSON, Content: ""},
			wantErr: true,
			errMsg:  "content cannot be empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.theme.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errMsg) {
				t.Errorf("Validate() error = %v, want error containing %q", err, tt.errMsg)
			}
		})
	}
}

func TestFormatForFile(t *testing.T) {
	tests := []struct {
		file    string
		want    ThemeFormat
		wantErr bool
	}{
		{file: "ocean.yaml", want: ThemeFormatYAML},
		{file: "ocean.YML", want: ThemeFormatYAML},
		{file: "/tmp/ocean.toml", want: ThemeFormatTOML},
		{file: "ocean.json", want: ThemeFormatJSON},
		{file: "ocean.plist", wantErr: true},
		{file: "ocean", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			got, err := FormatForFile(tt.file)
			if (err != nil) != tt.wantErr {
				t.Fatalf("FormatForFile(%q) error = %v, wantErr %v", tt.file, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("FormatForFile(%q) = %q, want %q", tt.file, got, tt.want)
			}
		})
	}
}

func TestStoredThemeDocument(t *testing.T) {
	st := NewStoredTheme("  ocean ", ThemeFormatTOML, []byte("[brand]\nprimary = \"#0000FF\"\n"))
	if st.Name != "ocean" {
		t.Errorf("expected trimmed name, got %q", st.Name)
	}
	if st.Extension() != ".toml" {
		t.Errorf("expected .toml extension, got %q", st.Extension())
	}

	doc, err := st.Document()
	if err != nil {
		t.Fatalf("failed to decode document: %v", err)
	}

	v, ok := doc.ValueForKeyPath("brand.primary")
	if !ok || v != "#0000FF" {
		t.Errorf("expected brand.primary = #0000FF, got %v (%v)", v, ok)
	}

	bad := NewStoredTheme("broken", ThemeFormatJSON, []byte("{not json"))
	if _, err := bad.Document(); err == nil {
		t.Error("expected decode error for malformed content")
	}
}
