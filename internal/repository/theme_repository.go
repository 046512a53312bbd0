package repository

import (
	"context"

	"themeshift/internal/domain"
)

type ThemeRepository interface {
	// Save inserts the theme or replaces the one with the same name
	Save(ctx context.Context, theme *domain.StoredTheme) error
	GetByName(ctx context.Context, name string) (*domain.StoredTheme, error)
	Delete(ctx context.Context, name string) error

	List(ctx context.Context, filter ThemeFilter) ([]*domain.StoredTheme, error)
}

type ThemeFilter struct {
	SearchQuery string
	Format      domain.ThemeFormat
	Limit       int
	Offset      int
}
