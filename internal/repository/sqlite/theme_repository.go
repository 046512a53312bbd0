package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"themeshift/internal/domain"
	"themeshift/internal/repository"
	"themeshift/internal/theme"
)

type ThemeRepository struct {
	db *DB
}

func NewThemeRepository(db *DB) *ThemeRepository {
	return &ThemeRepository{db: db}
}

var _ repository.ThemeRepository = (*ThemeRepository)(nil)

type dbTheme struct {
	ID        int64     `db:"id"`
	Name      string    `db:"name"`
	Format    string    `db:"format"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (dt *dbTheme) toTheme() *domain.StoredTheme {
	return &domain.StoredTheme{
		ID:        dt.ID,
		Name:      dt.Name,
		Format:    domain.ThemeFormat(dt.Format),
		Content:   dt.Content,
		CreatedAt: dt.CreatedAt,
		UpdatedAt: dt.UpdatedAt,
	}
}

func (r *ThemeRepository) Save(ctx context.Context, st *domain.StoredTheme) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// refuse content that would fail later when applied
	if _, err := st.Document(); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	query := `
		INSERT INTO themes (name, format, content)
		VALUES (?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			format = excluded.format,
			content = excluded.content,
			updated_at = CURRENT_TIMESTAMP
	`

	if _, err := r.db.ExecContext(ctx, query, st.Name, string(st.Format), st.Content); err != nil {
		return fmt.Errorf("failed to save theme: %w", err)
	}

	saved, err := r.GetByName(ctx, st.Name)
	if err != nil {
		return fmt.Errorf("failed to fetch saved theme: %w", err)
	}

	st.ID = saved.ID
	st.CreatedAt = saved.CreatedAt
	st.UpdatedAt = saved.UpdatedAt

	return nil
}

func (r *ThemeRepository) GetByName(ctx context.Context, name string) (*domain.StoredTheme, error) {
	query := `
		SELECT id, name, format, content, created_at, updated_at
		FROM themes
		WHERE name = ?
	`

	var dt dbTheme
	err := r.db.GetContext(ctx, &dt, query, name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %q", theme.ErrThemeNotFound, name)
		}
		return nil, fmt.Errorf("failed to get theme: %w", err)
	}

	return dt.toTheme(), nil
}

func (r *ThemeRepository) Delete(ctx context.Context, name string) error {
	query := `DELETE FROM themes WHERE name = ?`

	result, err := r.db.ExecContext(ctx, query, name)
	if err != nil {
		return fmt.Errorf("failed to delete theme: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w: %q", theme.ErrThemeNotFound, name)
	}

	return nil
}

func (r *ThemeRepository) List(ctx context.Context, filter repository.ThemeFilter) ([]*domain.StoredTheme, error) {
	query := `
		SELECT id, name, format, content, created_at, updated_at
		FROM themes
	`

	var conditions []string
	var args []interface{}

	if filter.SearchQuery != "" {
		conditions = append(conditions, `name LIKE ? ESCAPE '\'`)
		args = append(args, likePattern(filter.SearchQuery))
	}

	if filter.Format != "" {
		conditions = append(conditions, "format = ?")
		args = append(args, string(filter.Format))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	query += " ORDER BY name ASC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// sqlite needs a LIMIT before OFFSET
		query += " LIMIT -1"
	}

	if filter.Offset > 0 {
		query += " OFFSET ?"
		args = append(args, filter.Offset)
	}

	var rows []dbTheme
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}

	themes := make([]*domain.StoredTheme, 0, len(rows))
	for i := range rows {
		themes = append(themes, rows[i].toTheme())
	}

	return themes, nil
}
