package model

import "time"

// AuthClaims is the decoded payload of a signed token. The subject is
// the user's email; handlers that need the numeric user id must resolve
// the full User record themselves.
type AuthClaims struct {
	Subject   string
	Kind      string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

const (
	TokenKindAccess  = "access"
	TokenKindRefresh = "refresh"
)
