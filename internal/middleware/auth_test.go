package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"go-social-network/internal/model"
)

type fakeResolver struct {
	verifyErr error
	userErr   error
	user      model.User
}

func (f *fakeResolver) Verify(_ context.Context, _ string) (*model.AuthClaims, error) {
	if f.verifyErr != nil {
		return nil, f.verifyErr
	}
	return &model.AuthClaims{Subject: f.user.Email}, nil
}

func (f *fakeResolver) CurrentUser(_ context.Context, _ *model.AuthClaims) (model.User, error) {
	if f.userErr != nil {
		return model.User{}, f.userErr
	}
	return f.user, nil
}

func protectedHandler(t *testing.T, wantEmail string, called *bool) http.Handler {
	t.Helper()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		user, ok := UserFromContext(r.Context())
		require.True(t, ok)
		require.Equal(t, wantEmail, user.Email)
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuthMissingHeader(t *testing.T) {
	m := NewAuthMiddleware(&fakeResolver{})
	called := false

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	m.RequireAuth(protectedHandler(t, "", &called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	require.False(t, called)
}

func TestRequireAuthMalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(&fakeResolver{})
	called := false

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Token abc")
	m.RequireAuth(protectedHandler(t, "", &called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}

func TestRequireAuthInvalidToken(t *testing.T) {
	m := NewAuthMiddleware(&fakeResolver{verifyErr: model.ErrTokenRevoked})
	called := false

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer revoked-token")
	m.RequireAuth(protectedHandler(t, "", &called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))
	require.False(t, called)
}

func TestRequireAuthUnknownSubject(t *testing.T) {
	m := NewAuthMiddleware(&fakeResolver{userErr: model.ErrUnknownSubject})
	called := false

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer orphaned-token")
	m.RequireAuth(protectedHandler(t, "", &called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.False(t, called)
}

func TestRequireAuthResolvesUser(t *testing.T) {
	m := NewAuthMiddleware(&fakeResolver{user: model.User{ID: 42, Email: "a@x.com", Username: "alice"}})
	called := false

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	m.RequireAuth(protectedHandler(t, "a@x.com", &called)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, called)
}

func TestBearerToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer abc.def.ghi")

	token, ok := BearerToken(req)
	require.True(t, ok)
	require.Equal(t, "abc.def.ghi", token)

	req.Header.Set("Authorization", "bearer lower.case.ok")
	token, ok = BearerToken(req)
	require.True(t, ok)
	require.Equal(t, "lower.case.ok", token)

	req.Header.Set("Authorization", "Bearer ")
	_, ok = BearerToken(req)
	require.False(t, ok)
}
