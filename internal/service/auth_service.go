package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"go-social-network/internal/model"
)

const bcryptCost = 12

type UserStore interface {
	Create(ctx context.Context, username string, email string, passwordHash string) (model.User, error)
	FindByEmail(ctx context.Context, email string) (model.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type BlacklistStore interface {
	Insert(ctx context.Context, token string, expiresAt time.Time) error
	Contains(ctx context.Context, token string) (bool, error)
}

// AuthService is the sole authority for proving and asserting identity.
// Every protected request funnels through Verify; no other code path
// may accept a bearer token.
type AuthService struct {
	jwtSecret  []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
	users      UserStore
	blacklist  BlacklistStore
}

func NewAuthService(jwtSecret string, accessTTL time.Duration, refreshTTL time.Duration, users UserStore, blacklist BlacklistStore) (*AuthService, error) {
	if strings.TrimSpace(jwtSecret) == "" {
		return nil, errors.New("jwt secret is required")
	}

	return &AuthService{
		jwtSecret:  []byte(jwtSecret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		users:      users,
		blacklist:  blacklist,
	}, nil
}

func (s *AuthService) Register(ctx context.Context, username string, email string, password string) (model.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	taken, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return model.User{}, err
	}
	if taken {
		return model.User{}, model.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return model.User{}, fmt.Errorf("hash password: %w", err)
	}

	return s.users.Create(ctx, username, email, string(hash))
}

// Authenticate returns the same error for an unknown email and a wrong
// password so the caller cannot probe which accounts exist. Datastore
// failures are not credential failures and pass through untouched.
func (s *AuthService) Authenticate(ctx context.Context, email string, password string) (model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, model.ErrInvalidCredentials
	}
	if err != nil {
		return model.User{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return model.User{}, model.ErrInvalidCredentials
	}

	return user, nil
}

func (s *AuthService) IssueAccessToken(subject string) (string, error) {
	return s.signToken(subject, model.TokenKindAccess, s.accessTTL)
}

func (s *AuthService) IssueRefreshToken(subject string) (string, error) {
	return s.signToken(subject, model.TokenKindRefresh, s.refreshTTL)
}

func (s *AuthService) IssueTokenPair(subject string) (model.TokenPair, error) {
	accessToken, err := s.IssueAccessToken(subject)
	if err != nil {
		return model.TokenPair{}, err
	}

	refreshToken, err := s.IssueRefreshToken(subject)
	if err != nil {
		return model.TokenPair{}, err
	}

	return model.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Verify checks signature, expiry, and blacklist membership, in that
// order, and returns the decoded claims.
func (s *AuthService) Verify(ctx context.Context, tokenString string) (*model.AuthClaims, error) {
	claims, err := s.decode(tokenString, true)
	if err != nil {
		return nil, err
	}

	revoked, err := s.blacklist.Contains(ctx, tokenString)
	if err != nil {
		return nil, err
	}
	if revoked {
		return nil, model.ErrTokenRevoked
	}

	return claims, nil
}

// Refresh verifies the presented refresh token and mints a fresh pair.
// The old refresh token stays usable until its own expiry; it is not
// blacklisted here.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (model.TokenPair, error) {
	claims, err := s.Verify(ctx, refreshToken)
	if err != nil {
		return model.TokenPair{}, err
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.TokenPair{}, model.ErrUnknownSubject
	}
	if err != nil {
		return model.TokenPair{}, err
	}

	return s.IssueTokenPair(user.Email)
}

// Logout revokes the token by recording it in the blacklist until its
// natural expiry. An already-expired or already-revoked token still
// logs out cleanly; only a token that cannot be decoded at all fails,
// because its expiry cannot be determined.
func (s *AuthService) Logout(ctx context.Context, tokenString string) error {
	claims, err := s.decode(tokenString, false)
	if err != nil {
		return model.ErrMalformedToken
	}

	err = s.blacklist.Insert(ctx, tokenString, claims.ExpiresAt)
	if errors.Is(err, model.ErrTokenAlreadyRevoked) {
		return nil
	}
	return err
}

// CurrentUser re-resolves the full user record for a verified claim
// set. Claims carry only the email, never the numeric id, so callers
// must go through this lookup before any ownership check.
func (s *AuthService) CurrentUser(ctx context.Context, claims *model.AuthClaims) (model.User, error) {
	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if errors.Is(err, model.ErrUserNotFound) {
		return model.User{}, model.ErrUnknownSubject
	}
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

func (s *AuthService) signToken(subject string, kind string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"typ": kind,
		"iat": now.Unix(),
		"exp": now.Add(ttl).Unix(),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (s *AuthService) decode(tokenString string, enforceExpiry bool) (*model.AuthClaims, error) {
	opts := []jwt.ParserOption{}
	if !enforceExpiry {
		opts = append(opts, jwt.WithoutClaimsValidation())
	}

	parsed, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, model.ErrInvalidToken
		}
		return s.jwtSecret, nil
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, model.ErrTokenExpired
		}
		return nil, model.ErrInvalidToken
	}
	if !parsed.Valid {
		return nil, model.ErrInvalidToken
	}

	claimsMap, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, model.ErrInvalidToken
	}

	subject, _ := claimsMap["sub"].(string)
	if subject == "" {
		return nil, model.ErrInvalidToken
	}

	exp, err := claimsMap.GetExpirationTime()
	if err != nil || exp == nil {
		return nil, model.ErrInvalidToken
	}

	claims := &model.AuthClaims{
		Subject:   subject,
		ExpiresAt: exp.Time,
	}
	claims.Kind, _ = claimsMap["typ"].(string)
	if iat, err := claimsMap.GetIssuedAt(); err == nil && iat != nil {
		claims.IssuedAt = iat.Time
	}

	return claims, nil
}
