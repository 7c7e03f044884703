package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/notewall/notewall/internal/domain"
	"github.com/notewall/notewall/internal/pkg/metrics"
)

// TokenAuthenticator issues and verifies bearer tokens.
type TokenAuthenticator interface {
	IssueToken(user *domain.User) (string, error)
	VerifyToken(token string) (domain.Identity, error)
}

// Service implements registration and login.
type Service struct {
	repo   Repository
	hasher PasswordHasher
	tokens TokenAuthenticator
}

// NewService creates a new identity service.
func NewService(repo Repository, hasher PasswordHasher, tokens TokenAuthenticator) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// RegisterInput holds data for registering a user.
type RegisterInput struct {
	Email    string
	Password string
	Role     domain.Role
	TenantID string
}

// Register creates a new user. It never issues a token; registration and
// login are decoupled. The role defaults to Member when unspecified.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	email := NormalizeEmail(input.Email)

	_, err := s.repo.GetUserByEmail(ctx, email)
	if err == nil {
		metrics.AuthAttempts.WithLabelValues("register", "duplicate").Inc()
		return nil, ErrEmailExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("get user by email: %w", err)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := input.Role
	if !role.IsValid() {
		role = domain.RoleMember
	}

	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		TenantID:     input.TenantID,
	}

	// The store enforces email uniqueness as well, so a concurrent register
	// racing past the lookup above still surfaces as ErrEmailExists.
	if err := s.repo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, ErrEmailExists) {
			metrics.AuthAttempts.WithLabelValues("register", "duplicate").Inc()
			return nil, ErrEmailExists
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	metrics.AuthAttempts.WithLabelValues("register", "success").Inc()
	return user, nil
}

// LoginInput holds login credentials.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns a signed bearer token. An unknown
// email and a wrong password both return ErrInvalidCredentials. No server-side
// session is created; the token is the sole artifact of a successful login.
func (s *Service) Login(ctx context.Context, input LoginInput) (string, error) {
	user, err := s.repo.GetUserByEmail(ctx, NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("get user by email: %w", err)
	}

	if !s.hasher.Verify(input.Password, user.PasswordHash) {
		metrics.AuthAttempts.WithLabelValues("login", "failure").Inc()
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueToken(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	metrics.AuthAttempts.WithLabelValues("login", "success").Inc()
	return token, nil
}

// GetUserByID returns a user by its ID.
func (s *Service) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetUserByID(ctx, id)
}

// VerifyToken implements httputil.TokenVerifier. Verification is stateless
// and never touches the repository.
func (s *Service) VerifyToken(_ context.Context, token string) (domain.Identity, error) {
	return s.tokens.VerifyToken(token)
}
