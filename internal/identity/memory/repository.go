// Package memory provides an in-memory identity repository. It backs unit
// tests so the registration and login contracts are verified against the
// repository abstraction rather than a storage engine.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/notewall/notewall/internal/domain"
	"github.com/notewall/notewall/internal/identity"
)

// Repository implements identity.Repository with a mutex-guarded map.
type Repository struct {
	mu      sync.RWMutex
	byEmail map[string]*domain.User
}

// NewRepository creates an empty in-memory repository.
func NewRepository() *Repository {
	return &Repository{
		byEmail: make(map[string]*domain.User),
	}
}

// CreateUser stores a user, assigning an ID. Duplicate emails are rejected
// with identity.ErrEmailExists, matching the database unique index.
func (r *Repository) CreateUser(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return identity.ErrEmailExists
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now().UTC()

	clone := *user
	r.byEmail[user.Email] = &clone
	return nil
}

// GetUserByEmail returns the user with the given email.
func (r *Repository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, identity.ErrUserNotFound
	}
	clone := *user
	return &clone, nil
}

// GetUserByID returns the user with the given ID.
func (r *Repository) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, user := range r.byEmail {
		if user.ID == id {
			clone := *user
			return &clone, nil
		}
	}
	return nil, identity.ErrUserNotFound
}
