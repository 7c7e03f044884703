package identity

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// NormalizeEmail canonicalizes an email address before storage and lookup:
// surrounding whitespace is trimmed, the address is Unicode NFC normalized
// and lower-cased. Uniqueness is therefore case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(norm.NFC.String(strings.TrimSpace(email)))
}
