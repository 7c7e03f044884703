// Package jwt implements the signed bearer token codec.
package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/notewall/notewall/internal/domain"
)

// ErrInvalidToken is returned for every verification failure: malformed
// structure, signature mismatch and elapsed expiry alike. Callers must not
// be able to tell these apart.
var ErrInvalidToken = errors.New("invalid token")

// Config contains token codec configuration. The signing secret is loaded
// once at startup and injected here; rotating it invalidates all outstanding
// tokens, which is acceptable given the short TTL.
type Config struct {
	Secret   string
	TokenTTL time.Duration
}

// Claims are the identity claims carried by a token. Only userId, tenantId
// and role are included, no additional PII.
type Claims struct {
	UserID   string      `json:"userId"`
	TenantID string      `json:"tenantId"`
	Role     domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Codec issues and verifies HMAC-signed expiring tokens. Verification is a
// pure function of (token, secret, current time) and is safe for concurrent
// use without synchronization.
type Codec struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCodec creates a token codec.
func NewCodec(cfg Config) *Codec {
	ttl := cfg.TokenTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Codec{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// IssueToken signs a token carrying the user's identity claims.
func (c *Codec) IssueToken(user *domain.User) (string, error) {
	now := c.now()
	claims := Claims{
		UserID:   user.ID,
		TenantID: user.TenantID,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken validates the signature and expiry of a token and returns the
// identity it carries. Any failure is reported as ErrInvalidToken.
func (c *Codec) VerifyToken(tokenString string) (domain.Identity, error) {
	var claims Claims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(c.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return domain.Identity{}, ErrInvalidToken
	}

	if claims.UserID == "" || claims.TenantID == "" {
		return domain.Identity{}, ErrInvalidToken
	}

	return domain.Identity{
		UserID:   claims.UserID,
		TenantID: claims.TenantID,
		Role:     claims.Role,
	}, nil
}
