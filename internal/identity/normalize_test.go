package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "already canonical", input: "alice@x.com", want: "alice@x.com"},
		{name: "upper case", input: "Alice@X.COM", want: "alice@x.com"},
		{name: "surrounding whitespace", input: "  bob@y.com\t", want: "bob@y.com"},
		{name: "unicode composition", input: "josé@example.com", want: "josé@example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.input))
		})
	}
}
