//go:build integration

package integration

import (
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notewall/notewall/internal/testutil"
)

// registerUser creates a user through the public API and fails the test on
// any non-200 outcome.
func registerUser(t *testing.T, client *testutil.Client, email, password, role, tenantID string) {
	t.Helper()

	body := map[string]string{
		"email":    email,
		"password": password,
		"tenantId": tenantID,
	}
	if role != "" {
		body["role"] = role
	}

	resp, err := client.POST("/register", body)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		t.Fatalf("register %s failed: status=%d body=%s", email, resp.StatusCode, raw)
	}

	var result struct {
		Message string `json:"message"`
	}
	testutil.DecodeJSON(t, resp, &result)
	assert.Equal(t, "User created successfully", result.Message)
}

// loginClient registers nothing; it logs an existing user in and returns a
// fresh authenticated client for them.
func loginClient(t *testing.T, email, password string) *testutil.Client {
	t.Helper()

	client := newTestClient(t)
	client.LoginAs(t, email, password)
	return client
}

// readBody drains and closes the response body.
func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	defer func() { _ = resp.Body.Close() }()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
