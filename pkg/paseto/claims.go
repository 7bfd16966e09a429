package pasetotoken

import (
	"time"

	"github.com/google/uuid"
)

type TokenType string

const TokenTypeAccess TokenType = "access"

// Claims is the app-facing token payload. Tokens are minted by the identity
// subsystem; this service only verifies them and reads who is calling.
type Claims struct {
	Type TokenType

	AccountID uuid.UUID
	SessionID *uuid.UUID

	Issuer   string
	Audience string

	IssuedAt  time.Time
	NotBefore time.Time
	ExpiresAt time.Time
	TokenID   string // jti
	Subject   string
}

func (c *Claims) IsExpired() bool {
	return time.Now().After(c.ExpiresAt)
}
