package model

import "errors"

var (
	// Auth errors. ErrInvalidCredentials deliberately covers both
	// "no such user" and "wrong password" so callers cannot tell the
	// two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMalformedToken     = errors.New("malformed token")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenRevoked       = errors.New("token revoked")
	ErrUnknownSubject     = errors.New("unknown token subject")
	ErrEmailTaken         = errors.New("email already registered")

	// ErrTokenAlreadyRevoked is the blacklist's unique-constraint
	// signal; logout treats it as success.
	ErrTokenAlreadyRevoked = errors.New("token already revoked")

	// Entity errors
	ErrUserNotFound      = errors.New("user not found")
	ErrPostNotFound      = errors.New("post not found")
	ErrCommunityNotFound = errors.New("community not found")
)
