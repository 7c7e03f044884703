package httputil_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewall/notewall/internal/domain"
	"github.com/notewall/notewall/internal/pkg/httputil"
)

// stubVerifier accepts exactly one token value.
type stubVerifier struct {
	accept string
	ident  domain.Identity
}

func (s *stubVerifier) VerifyToken(_ context.Context, token string) (domain.Identity, error) {
	if token == s.accept {
		return s.ident, nil
	}
	return domain.Identity{}, errors.New("invalid token")
}

func newProtectedHandler(verifier httputil.TokenVerifier, saw *domain.Identity) http.Handler {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ident, ok := httputil.IdentityFromContext(r.Context())
		if !ok {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		*saw = ident
		w.WriteHeader(http.StatusOK)
	})
	return httputil.AuthMiddleware(verifier)(inner)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	want := domain.Identity{UserID: "u1", TenantID: "acme", Role: domain.RoleMember}
	var saw domain.Identity
	handler := newProtectedHandler(&stubVerifier{accept: "good", ident: want}, &saw)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, want, saw)
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	var saw domain.Identity
	handler := newProtectedHandler(&stubVerifier{accept: "good"}, &saw)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "bearer good")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthMiddleware_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic Zm9vOmJhcg=="},
		{name: "scheme only", header: "Bearer"},
		{name: "bad token", header: "Bearer bad"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saw domain.Identity
			handler := newProtectedHandler(&stubVerifier{accept: "good"}, &saw)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Empty(t, saw.UserID, "handler must not run")
			assert.Contains(t, rec.Body.String(), "error")
		})
	}
}

func TestIdentityFromContext_Absent(t *testing.T) {
	_, ok := httputil.IdentityFromContext(context.Background())
	assert.False(t, ok)
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	handler := httputil.CORSMiddleware([]string{"*"})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodOptions, "/notes", nil)
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
}
