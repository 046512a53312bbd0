package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"themeshift/internal/config"
	"themeshift/internal/export"
	"themeshift/internal/repository/sqlite"
	"themeshift/internal/theme"
)

// store bundles the theme store with the library built on it
type store struct {
	db   *sqlite.DB
	repo *sqlite.ThemeRepository
	lib  *export.Library
}

func openStore(cfg *config.Config) (*store, error) {
	db, err := sqlite.NewDB(sqlite.Config{Path: cfg.DBPath})
	if err != nil {
		return nil, fmt.Errorf("failed to open theme store: %w", err)
	}

	repo := sqlite.NewThemeRepository(db)
	return &store{
		db:   db,
		repo: repo,
		lib:  export.NewLibrary(repo, theme.BundleFS()),
	}, nil
}

func (s *store) Close() error {
	return s.db.Close()
}

// applies name to mgr, looking in the theme directory, then the store,
// then the bundle
func applyTheme(ctx context.Context, mgr *theme.Manager, cfg *config.Config, s *store, name string) error {
	applied := false
	sub := mgr.Subscribe(func() { applied = true })
	defer sub.Unsubscribe()

	if p, ok := theme.FindTheme(nil, cfg.ThemeDir, name); ok {
		mgr.SetTheme(name, p)
	} else {
		stored, err := s.lib.IsStored(ctx, name)
		if err != nil {
			return err
		}
		if stored {
			doc, err := s.lib.Document(ctx, name)
			if err != nil {
				return fmt.Errorf("failed to decode stored theme %q: %w", name, err)
			}
			mgr.SetThemeDocumentInDir(doc, cfg.ThemeDir)
		} else {
			mgr.SetTheme(name, theme.MainBundle())
		}
	}

	if !applied {
		if !themeKnown(ctx, cfg, s, name) {
			return fmt.Errorf("%w: %q. Run 'themeshift theme list' to see available themes", theme.ErrThemeNotFound, name)
		}
		return fmt.Errorf("theme %q could not be loaded", name)
	}
	return nil
}

func themeKnown(ctx context.Context, cfg *config.Config, s *store, name string) bool {
	if _, ok := theme.FindTheme(theme.BundleFS(), cfg.ThemeDir, name); ok {
		return true
	}
	stored, err := s.lib.IsStored(ctx, name)
	return err == nil && stored
}

// removes every document called name from dir; reports whether any existed
func removeThemeFiles(dir, name string) (bool, error) {
	removed := false
	for _, ext := range theme.DocumentExtensions() {
		err := os.Remove(filepath.Join(dir, name+ext))
		switch {
		case err == nil:
			removed = true
		case errors.Is(err, fs.ErrNotExist):
		default:
			return removed, fmt.Errorf("failed to remove theme file: %w", err)
		}
	}
	return removed, nil
}
