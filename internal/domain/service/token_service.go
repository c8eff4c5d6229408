package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for operator JWT tokens.
type Claims struct {
	OperatorID uuid.UUID
	Roles      []string
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating operator JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateToken creates a signed access token for an operator.
	GenerateToken(operatorID uuid.UUID, roles []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
