package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenService issues and validates the access tokens that replace the
// original session-bound identity. Claims carry the account id and username
// so handlers can pass the caller identity explicitly into the usecases.
type TokenService interface {
	// GenerateToken creates a signed access token for the account.
	GenerateToken(accountID uuid.UUID, username string) (string, error)

	// ValidateToken parses and verifies a token string.
	ValidateToken(tokenString string) (*jwt.Token, error)
}
