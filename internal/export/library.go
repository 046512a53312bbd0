package export

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"themeshift/internal/domain"
	"themeshift/internal/repository"
	"themeshift/internal/theme"
)

// Library moves theme documents between files, the theme store and the
// embedded bundle. Stored themes shadow bundled ones of the same name.
type Library struct {
	repo   repository.ThemeRepository
	bundle fs.FS
}

func NewLibrary(repo repository.ThemeRepository, bundle fs.FS) *Library {
	return &Library{repo: repo, bundle: bundle}
}

// Document loads a theme by name from the store, falling back to the bundle.
func (l *Library) Document(ctx context.Context, name string) (theme.Document, error) {
	if l.repo != nil {
		st, err := l.repo.GetByName(ctx, name)
		switch {
		case err == nil:
			return st.Document()
		case !errors.Is(err, theme.ErrThemeNotFound):
			return nil, err
		}
	}

	return theme.LoadBundled(l.bundle, name)
}

// IsStored reports whether name lives in the theme store.
func (l *Library) IsStored(ctx context.Context, name string) (bool, error) {
	if l.repo == nil {
		return false, nil
	}
	_, err := l.repo.GetByName(ctx, name)
	if errors.Is(err, theme.ErrThemeNotFound) {
		return false, nil
	}
	return err == nil, err
}

// ImportFile stores the theme file at path under name, or under the file's
// base name when name is empty.
func (l *Library) ImportFile(ctx context.Context, path, name string, strategy ConflictStrategy) (*domain.StoredTheme, error) {
	format, err := domain.FormatForFile(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file: %w", err)
	}

	if name == "" {
		base := filepath.Base(path)
		name = base[:len(base)-len(filepath.Ext(base))]
	}

	return l.Import(ctx, domain.NewStoredTheme(name, format, data), strategy)
}

func (l *Library) Import(ctx context.Context, st *domain.StoredTheme, strategy ConflictStrategy) (*domain.StoredTheme, error) {
	existing, err := l.repo.GetByName(ctx, st.Name)
	if err != nil && !errors.Is(err, theme.ErrThemeNotFound) {
		return nil, err
	}

	if existing != nil {
		switch strategy {
		case ConflictStrategySkip:
			return existing, nil
		case ConflictStrategyOverwrite:
		default:
			return nil, fmt.Errorf("theme %q already exists", st.Name)
		}
	}

	if err := l.repo.Save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

// WriteFile materializes the named theme as dir/<name>.<format> so it can be
// loaded from a sandbox path and watched. It returns the written path.
func (l *Library) WriteFile(ctx context.Context, name, dir string, format domain.ThemeFormat) (string, error) {
	doc, err := l.Document(ctx, name)
	if err != nil {
		return "", err
	}

	data, err := EncodeBytes(doc, format)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create theme directory: %w", err)
	}

	// drop other formats of the same theme so lookup order cannot pick a stale one
	for _, ext := range theme.DocumentExtensions() {
		stale := filepath.Join(dir, name+ext)
		if ext != "."+string(format) {
			if err := os.Remove(stale); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return "", fmt.Errorf("failed to remove stale theme file: %w", err)
			}
		}
	}

	path := filepath.Join(dir, name+"."+string(format))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write theme file: %w", err)
	}

	return path, nil
}
