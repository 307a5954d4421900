package handler

import (
	"log/slog"
	"net/http"

	"store/internal/delivery/http/response"
	"store/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for shipping address handlers.
type AddressHandler struct {
	uc     usecase.AddressUsecase
	logger *slog.Logger
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase, logger *slog.Logger) *AddressHandler {
	return &AddressHandler{
		uc:     uc,
		logger: logger,
	}
}

// Add handles creation of a new shipping address.
func (h *AddressHandler) Add(c echo.Context) error {
	ownerID, username, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID in token")
	}

	var input *usecase.AddAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.Add(c.Request().Context(), ownerID, username, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address added successfully")
}

// List returns all addresses of the current account, default first.
func (h *AddressHandler) List(c echo.Context) error {
	ownerID, _, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID in token")
	}

	addresses, err := h.uc.List(c.Request().Context(), ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// GetDetail returns one address for the edit form.
func (h *AddressHandler) GetDetail(c echo.Context) error {
	ownerID, _, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address id")
	}

	address, err := h.uc.GetDetail(c.Request().Context(), addressID, ownerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address retrieved successfully")
}

// SetDefault makes one address the account's default.
func (h *AddressHandler) SetDefault(c echo.Context) error {
	ownerID, username, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address id")
	}

	if err := h.uc.SetDefault(c.Request().Context(), addressID, ownerID, username); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Default address updated successfully")
}

// Delete removes one address.
func (h *AddressHandler) Delete(c echo.Context) error {
	ownerID, username, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID in token")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address id")
	}

	if err := h.uc.Delete(c.Request().Context(), addressID, ownerID, username); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}
