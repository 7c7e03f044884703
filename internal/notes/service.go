// Package notes implements the tenant-scoped note resource.
package notes

import (
	"context"
	"fmt"

	"github.com/notewall/notewall/internal/domain"
)

// Service implements note business logic. It is the enforcement point for the
// multi-tenancy invariant: a note's tenant always comes from the verified
// request identity and every read filters by the caller's tenant. Role does
// not bypass this, Admin is scoped like any Member.
type Service struct {
	repo Repository
}

// NewService creates a new note service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateNoteInput holds data for creating a note. There is deliberately no
// tenant or user field here; both are stamped from the identity.
type CreateNoteInput struct {
	Title   string
	Content string
}

// CreateNote creates a note owned by the caller's tenant.
func (s *Service) CreateNote(ctx context.Context, ident domain.Identity, input CreateNoteInput) (*domain.Note, error) {
	note := &domain.Note{
		Title:    input.Title,
		Content:  input.Content,
		UserID:   ident.UserID,
		TenantID: ident.TenantID,
	}

	if err := s.repo.CreateNote(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// ListNotes returns the notes belonging to the caller's tenant.
func (s *Service) ListNotes(ctx context.Context, ident domain.Identity) ([]domain.Note, error) {
	list, err := s.repo.ListNotesByTenant(ctx, ident.TenantID)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	return list, nil
}
