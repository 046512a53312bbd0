package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"themeshift/internal/domain"
)

func TestNewDB_MigratesOnce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "themes.db")

	db, err := NewDB(Config{Path: path})
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}

	version, err := db.SchemaVersion()
	if err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("expected schema version %d, got %d", len(migrations), version)
	}

	st := domain.NewStoredTheme("ocean", domain.ThemeFormatYAML, []byte("name: ocean\n"))
	if err := NewThemeRepository(db).Save(context.Background(), st); err != nil {
		t.Fatalf("failed to save theme: %v", err)
	}
	db.Close()

	// reopening keeps the data and does not re-run migrations
	db, err = NewDB(Config{Path: path})
	if err != nil {
		t.Fatalf("failed to reopen database: %v", err)
	}
	defer db.Close()

	version, err = db.SchemaVersion()
	if err != nil {
		t.Fatalf("failed to read schema version: %v", err)
	}
	if version != len(migrations) {
		t.Errorf("expected schema version %d after reopen, got %d", len(migrations), version)
	}

	if _, err := NewThemeRepository(db).GetByName(context.Background(), "ocean"); err != nil {
		t.Errorf("expected stored theme to survive reopen: %v", err)
	}
}
