package notes

import (
	"context"

	"github.com/notewall/notewall/internal/domain"
)

// Repository defines the interface for note data operations. Reads are always
// tenant-filtered; there is no operation that lists notes across tenants.
type Repository interface {
	CreateNote(ctx context.Context, note *domain.Note) error
	ListNotesByTenant(ctx context.Context, tenantID string) ([]domain.Note, error)
}
