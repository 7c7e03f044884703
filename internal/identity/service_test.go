package identity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/notewall/notewall/internal/domain"
)

// mockRepository implements Repository for testing.
type mockRepository struct {
	users         map[string]*domain.User
	createUserErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users: make(map[string]*domain.User),
	}
}

func (m *mockRepository) CreateUser(_ context.Context, user *domain.User) error {
	if m.createUserErr != nil {
		return m.createUserErr
	}
	if _, exists := m.users[user.Email]; exists {
		return ErrEmailExists
	}
	user.ID = "user-" + user.Email
	m.users[user.Email] = user
	return nil
}

func (m *mockRepository) GetUserByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := m.users[email]; ok {
		return u, nil
	}
	return nil, ErrUserNotFound
}

func (m *mockRepository) GetUserByID(_ context.Context, id string) (*domain.User, error) {
	for _, u := range m.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, ErrUserNotFound
}

// mockAuthenticator implements TokenAuthenticator for testing.
type mockAuthenticator struct {
	issued *domain.User
}

func (m *mockAuthenticator) IssueToken(user *domain.User) (string, error) {
	m.issued = user
	return "token-for-" + user.Email, nil
}

func (m *mockAuthenticator) VerifyToken(_ string) (domain.Identity, error) {
	return domain.Identity{}, nil
}

func newTestService(repo Repository) *Service {
	return NewService(repo, NewBcryptHasher(bcrypt.MinCost), &mockAuthenticator{})
}

func TestRegister_CreatesUserWithDefaults(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo)

	user, err := service.Register(context.Background(), RegisterInput{
		Email:    "Alice@X.com",
		Password: "pw1",
		TenantID: "acme",
	})

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "alice@x.com", user.Email, "email should be normalized")
	assert.Equal(t, domain.RoleMember, user.Role, "role should default to Member")
	assert.Equal(t, "acme", user.TenantID)
	assert.NotEmpty(t, user.ID)
	assert.NotEqual(t, "pw1", user.PasswordHash, "plaintext must never be stored")
}

func TestRegister_KeepsExplicitRole(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo)

	user, err := service.Register(context.Background(), RegisterInput{
		Email:    "admin@x.com",
		Password: "pw1",
		Role:     domain.RoleAdmin,
		TenantID: "acme",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo)

	_, err := service.Register(context.Background(), RegisterInput{
		Email: "alice@x.com", Password: "pw1", TenantID: "acme",
	})
	require.NoError(t, err)

	// Differing password, role and tenant must not matter.
	_, err = service.Register(context.Background(), RegisterInput{
		Email: "alice@x.com", Password: "other", Role: domain.RoleAdmin, TenantID: "globex",
	})
	assert.ErrorIs(t, err, ErrEmailExists)

	// Case variants collide too, since emails are normalized.
	_, err = service.Register(context.Background(), RegisterInput{
		Email: "ALICE@x.com", Password: "pw1", TenantID: "acme",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegister_StoreUniqueViolationMapsToEmailExists(t *testing.T) {
	repo := newMockRepository()
	repo.createUserErr = ErrEmailExists // register race: lookup missed, insert collided
	service := newTestService(repo)

	_, err := service.Register(context.Background(), RegisterInput{
		Email: "alice@x.com", Password: "pw1", TenantID: "acme",
	})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestRegister_CreateUserFails(t *testing.T) {
	repo := newMockRepository()
	repo.createUserErr = errors.New("database error")
	service := newTestService(repo)

	user, err := service.Register(context.Background(), RegisterInput{
		Email: "alice@x.com", Password: "pw1", TenantID: "acme",
	})
	assert.Nil(t, user)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmailExists)
}

func TestLogin_Success(t *testing.T) {
	repo := newMockRepository()
	auth := &mockAuthenticator{}
	service := NewService(repo, NewBcryptHasher(bcrypt.MinCost), auth)

	_, err := service.Register(context.Background(), RegisterInput{
		Email: "alice@x.com", Password: "pw1", TenantID: "acme",
	})
	require.NoError(t, err)

	token, err := service.Login(context.Background(), LoginInput{
		Email: "alice@x.com", Password: "pw1",
	})
	require.NoError(t, err)
	assert.Equal(t, "token-for-alice@x.com", token)
	require.NotNil(t, auth.issued)
	assert.Equal(t, "acme", auth.issued.TenantID, "token claims must carry the user's tenant")
}

func TestLogin_CaseInsensitiveEmail(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo)

	_, err := service.Register(context.Background(), RegisterInput{
		Email: "alice@x.com", Password: "pw1", TenantID: "acme",
	})
	require.NoError(t, err)

	_, err = service.Login(context.Background(), LoginInput{
		Email: "Alice@X.COM", Password: "pw1",
	})
	assert.NoError(t, err)
}

func TestLogin_UnknownEmailAndWrongPasswordAreIndistinguishable(t *testing.T) {
	repo := newMockRepository()
	service := newTestService(repo)

	_, err := service.Register(context.Background(), RegisterInput{
		Email: "alice@x.com", Password: "pw1", TenantID: "acme",
	})
	require.NoError(t, err)

	_, errUnknown := service.Login(context.Background(), LoginInput{
		Email: "nobody@x.com", Password: "pw1",
	})
	_, errWrongPw := service.Login(context.Background(), LoginInput{
		Email: "alice@x.com", Password: "wrong",
	})

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown.Error(), errWrongPw.Error())
}

func TestVerifyToken_NeverTouchesRepository(t *testing.T) {
	service := NewService(nil, NewBcryptHasher(bcrypt.MinCost), &mockAuthenticator{})

	// A nil repository would panic if verification consulted the store.
	_, err := service.VerifyToken(context.Background(), "some-token")
	assert.NoError(t, err)
}
