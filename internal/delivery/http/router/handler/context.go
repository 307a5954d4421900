// Package handler contains the HTTP handlers for the application.
package handler

import (
	"store/internal/delivery/http/middleware"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// callerIdentity reads the authenticated account id and username set by the
// auth middleware. ok is false when the route was not authenticated.
func callerIdentity(c echo.Context) (uuid.UUID, string, bool) {
	accountID, ok := c.Get(middleware.KeyAccountID).(uuid.UUID)
	if !ok {
		return uuid.Nil, "", false
	}

	username, _ := c.Get(middleware.KeyUsername).(string)

	return accountID, username, true
}
