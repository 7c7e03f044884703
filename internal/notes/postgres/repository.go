// Package postgres provides the PostgreSQL implementation of the notes repository.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/notewall/notewall/internal/domain"
)

// Repository implements notes.Repository using PostgreSQL.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CreateNote inserts a note.
func (r *Repository) CreateNote(ctx context.Context, note *domain.Note) error {
	query := `
		INSERT INTO notes (title, content, user_id, tenant_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err := r.db.QueryRow(ctx, query,
		note.Title,
		note.Content,
		note.UserID,
		note.TenantID,
	).Scan(&note.ID, &note.CreatedAt)

	if err != nil {
		return fmt.Errorf("create note: %w", err)
	}
	return nil
}

// ListNotesByTenant retrieves all notes belonging to the tenant, oldest first.
func (r *Repository) ListNotesByTenant(ctx context.Context, tenantID string) ([]domain.Note, error) {
	query := `
		SELECT id, title, content, user_id, tenant_id, created_at
		FROM notes
		WHERE tenant_id = $1
		ORDER BY created_at, id
	`
	rows, err := r.db.Query(ctx, query, tenantID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Note, error) {
		var n domain.Note
		err := row.Scan(&n.ID, &n.Title, &n.Content, &n.UserID, &n.TenantID, &n.CreatedAt)
		return n, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan notes: %w", err)
	}
	return notes, nil
}
