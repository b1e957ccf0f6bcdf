package service

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// The verifier reports exactly two failure kinds so the authorization
// pipeline can tell an expired session apart from a tampered token.
var (
	// ErrTokenExpired is returned when a token's signature is valid but its expiry has passed.
	ErrTokenExpired = errors.New("token expired")

	// ErrTokenInvalid is returned for malformed, tampered or otherwise unverifiable tokens.
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims defines the custom claims embedded in issued bearer tokens.
// The names are denormalized for display; authorization-relevant flags
// (email verified, admin) are deliberately NOT part of the token and are
// always re-read live from the store.
type Claims struct {
	EmployeeID uuid.UUID
	FirstName  string
	LastName   string
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// IssueToken creates a signed token for the given employee identity.
	IssueToken(employeeID uuid.UUID, firstName, lastName string) (string, error)

	// ValidateToken checks a token string and returns its claims.
	// Failures are ErrTokenExpired or ErrTokenInvalid.
	ValidateToken(tokenString string) (*Claims, error)
}
