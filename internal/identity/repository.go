package identity

import (
	"context"

	"github.com/notewall/notewall/internal/domain"
)

// Repository defines the interface for user data operations.
// Implementations must return ErrUserNotFound when no user matches and
// ErrEmailExists on a unique email violation.
type Repository interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
	GetUserByID(ctx context.Context, id string) (*domain.User, error)
}
