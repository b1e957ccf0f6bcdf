// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"employeesys/config"
	"employeesys/internal/domain/service"
)

const (
	claimFirstName = "fname"
	claimLastName  = "lname"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret string        // Secret key for signing tokens.
	ttl    time.Duration // Time-to-live for issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: cfg.SecretKey.Access,
		ttl:    cfg.TokenTTLOrDefault(),
	}, nil
}

// IssueToken creates a signed HS256 token carrying the employee's identity claims.
func (s *jwtService) IssueToken(employeeID uuid.UUID, firstName, lastName string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":          employeeID.String(),
		claimFirstName: firstName,
		claimLastName:  lastName,
		"iat":          now.Unix(),
		"exp":          now.Add(s.ttl).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

// ValidateToken checks the validity of a token string and extracts its claims.
// An expired-but-otherwise-valid token maps to service.ErrTokenExpired; every
// other failure maps to service.ErrTokenInvalid.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, service.ErrTokenExpired
		}

		return nil, service.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, service.ErrTokenInvalid
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, service.ErrTokenInvalid
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, service.ErrTokenInvalid
	}

	employeeID, err := uuid.Parse(sub)
	if err != nil {
		return nil, service.ErrTokenInvalid
	}

	claims := &service.Claims{EmployeeID: employeeID}
	if firstName, ok := mapClaims[claimFirstName].(string); ok {
		claims.FirstName = firstName
	}
	if lastName, ok := mapClaims[claimLastName].(string); ok {
		claims.LastName = lastName
	}

	return claims, nil
}
