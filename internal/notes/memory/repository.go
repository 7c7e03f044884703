// Package memory provides an in-memory notes repository used by unit tests
// to verify the tenant-filter contract against the repository abstraction.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/notewall/notewall/internal/domain"
)

// Repository implements notes.Repository with a mutex-guarded slice.
type Repository struct {
	mu    sync.RWMutex
	notes []domain.Note
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{}
}

// CreateNote stores a note, assigning an ID.
func (r *Repository) CreateNote(_ context.Context, note *domain.Note) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	note.ID = uuid.NewString()
	note.CreatedAt = time.Now().UTC()
	r.notes = append(r.notes, *note)
	return nil
}

// ListNotesByTenant returns the notes whose tenant matches, in insertion order.
func (r *Repository) ListNotesByTenant(_ context.Context, tenantID string) ([]domain.Note, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.Note
	for _, n := range r.notes {
		if n.TenantID == tenantID {
			result = append(result, n)
		}
	}
	return result, nil
}
