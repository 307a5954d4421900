package middleware

import (
	"strings"

	"store/internal/delivery/http/response"
	"store/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys the authenticated handlers read.
const (
	KeyAccountID = "accountID"
	KeyUsername  = "username"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		token, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil || !token.Valid {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Failed to parse token claims")
		}

		accountIDStr, ok := claims["sub"].(string)
		if !ok {
			return response.Unauthorized(c, "UNAUTHORIZED", "Account ID missing from token")
		}
		accountID, err := uuid.Parse(accountIDStr)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID format in token")
		}

		// The username doubles as the audit actor on every write.
		username, _ := claims["name"].(string)

		c.Set(KeyAccountID, accountID)
		c.Set(KeyUsername, username)

		return next(c)
	}
}
