package domain

// Identity is the set of verified claims attached to a request after token
// verification. It lives only for the duration of the request.
type Identity struct {
	UserID   string
	TenantID string
	Role     Role
}
