//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"go-social-network/internal/config"
	"go-social-network/internal/database"
	"go-social-network/internal/handler"
	"go-social-network/internal/middleware"
	"go-social-network/internal/model"
	"go-social-network/internal/repository"
	"go-social-network/internal/router"
	"go-social-network/internal/service"
)

// newServer wires the full stack against the database in DATABASE_URL.
// Tests are expected to run against a throwaway database.
func newServer(t *testing.T) *httptest.Server {
	t.Helper()

	databaseURL := strings.TrimSpace(os.Getenv("DATABASE_URL"))
	if databaseURL == "" {
		t.Skip("DATABASE_URL is not set")
	}

	ctx := context.Background()
	db, err := database.New(ctx, databaseURL, database.PoolSettings{MaxConns: 4, MinConns: 1})
	require.NoError(t, err)
	t.Cleanup(db.Close)

	require.NoError(t, db.EnsureSchema(ctx))

	pool := db.Pool
	userRepo := repository.NewUserRepository(pool)
	blacklistRepo := repository.NewBlacklistRepository(pool)
	postRepo := repository.NewPostRepository(pool)
	commentRepo := repository.NewCommentRepository(pool)
	likeRepo := repository.NewLikeRepository(pool)
	communityRepo := repository.NewCommunityRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)

	authService, err := service.NewAuthService("integration-secret", 15*time.Minute, 24*time.Hour, userRepo, blacklistRepo)
	require.NoError(t, err)

	cfg := &config.Config{
		ServerPort:     "8080",
		RequestTimeout: 30 * time.Second,
		DatabaseURL:    databaseURL,
		JWTSecret:      "integration-secret",
		JWTAccessTTL:   15 * time.Minute,
		JWTRefreshTTL:  24 * time.Hour,
		CORSOrigins:    []string{"*"},
	}

	appRouter := router.New(cfg, middleware.NewAuthMiddleware(authService), router.Handlers{
		Health:       handler.NewHealthHandler(db),
		Auth:         handler.NewAuthHandler(authService),
		User:         handler.NewUserHandler(),
		Post:         handler.NewPostHandler(service.NewPostService(postRepo, commentRepo, likeRepo)),
		Community:    handler.NewCommunityHandler(service.NewCommunityService(communityRepo)),
		Notification: handler.NewNotificationHandler(service.NewNotificationService(notificationRepo)),
		Search:       handler.NewSearchHandler(service.NewSearchService(postRepo, userRepo, communityRepo)),
	})

	server := httptest.NewServer(appRouter)
	t.Cleanup(server.Close)
	return server
}

func register(t *testing.T, server *httptest.Server, username string, email string, password string) model.User {
	t.Helper()

	payload, err := json.Marshal(map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	})
	require.NoError(t, err)

	resp, err := http.Post(server.URL+"/auth/register", "application/json", bytes.NewReader(payload))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user model.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	return user
}

func login(t *testing.T, server *httptest.Server, email string, password string) model.TokenPair {
	t.Helper()

	form := url.Values{"username": {email}, "password": {password}}
	resp, err := http.Post(server.URL+"/auth/login", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var tokens model.TokenPair
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tokens))
	return tokens
}

func get(t *testing.T, target string, accessToken string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodGet, target, nil)
	require.NoError(t, err)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func post(t *testing.T, target string, accessToken string) *http.Response {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, target, nil)
	require.NoError(t, err)
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func uniqueEmail(t *testing.T) string {
	t.Helper()
	return strings.ToLower(t.Name()) + "-" + time.Now().UTC().Format("150405.000000000") + "@x.com"
}
