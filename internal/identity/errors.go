package identity

import "errors"

var (
	// ErrEmailExists is returned when registering an email that is already taken.
	ErrEmailExists = errors.New("Email already exists")

	// ErrInvalidCredentials covers both an unknown email and a wrong password.
	// The two cases are deliberately indistinguishable to prevent user
	// enumeration through differing error messages.
	ErrInvalidCredentials = errors.New("Invalid email or password")

	// ErrUserNotFound is returned by repositories when no user matches.
	ErrUserNotFound = errors.New("user not found")
)
