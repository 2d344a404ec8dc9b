//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"go-social-network/internal/model"
)

func TestAuthLifecycleAgainstDatabase(t *testing.T) {
	server := newServer(t)

	health := get(t, server.URL+"/health", "")
	require.Equal(t, http.StatusOK, health.StatusCode)

	email := uniqueEmail(t)
	user := register(t, server, "lifecycle", email, "pw")
	require.Equal(t, email, user.Email)
	require.NotZero(t, user.ID)

	tokens := login(t, server, email, "pw")
	require.Equal(t, "bearer", tokens.TokenType)
	require.NotEmpty(t, tokens.AccessToken)
	require.NotEmpty(t, tokens.RefreshToken)

	resp := get(t, server.URL+"/users/me", tokens.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var me model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&me))
	require.Equal(t, user.ID, me.ID)
	require.Equal(t, email, me.Email)

	resp = post(t, server.URL+"/auth/logout", tokens.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var logoutBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&logoutBody))
	require.Equal(t, "Successfully logged out", logoutBody["message"])

	resp = get(t, server.URL+"/users/me", tokens.AccessToken)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	require.Equal(t, "Bearer", resp.Header.Get("WWW-Authenticate"))
}

func TestLogoutTwiceAgainstDatabase(t *testing.T) {
	server := newServer(t)

	email := uniqueEmail(t)
	register(t, server, "twice", email, "pw")
	tokens := login(t, server, email, "pw")

	resp := post(t, server.URL+"/auth/logout", tokens.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// The unique constraint on blacklisted_tokens makes the second
	// revocation a no-op rather than an error.
	resp = post(t, server.URL+"/auth/logout", tokens.AccessToken)
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestRefreshAgainstDatabase(t *testing.T) {
	server := newServer(t)

	email := uniqueEmail(t)
	register(t, server, "refresher", email, "pw")
	tokens := login(t, server, email, "pw")

	payload, err := json.Marshal(map[string]string{"refresh_token": tokens.RefreshToken})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/auth/refresh-token", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var refreshed model.TokenPair
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&refreshed))
	require.NotEmpty(t, refreshed.AccessToken)

	me := get(t, server.URL+"/users/me", refreshed.AccessToken)
	require.Equal(t, http.StatusOK, me.StatusCode)
}

func TestDuplicateRegistrationAgainstDatabase(t *testing.T) {
	server := newServer(t)

	email := uniqueEmail(t)
	register(t, server, "original", email, "pw")

	payload, err := json.Marshal(map[string]string{
		"username": "copycat",
		"email":    email,
		"password": "pw",
	})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/auth/register", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
