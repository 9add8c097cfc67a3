package transfer

import "github.com/golang-jwt/jwt/v5"

// SessionClaims is the payload of the session cookie. Token holds the
// encrypted API bearer token.
type SessionClaims struct {
	SessionID string `json:"sid"`
	Token     string `json:"tok"`
	jwt.RegisteredClaims
}
