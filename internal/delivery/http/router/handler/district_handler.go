package handler

import (
	"log/slog"
	"net/http"

	"store/internal/delivery/http/response"
	"store/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Top of the district tree when the client sends no parent.
const defaultDistrictParent = "86"

// DistrictHandler holds dependencies for region tree handlers.
type DistrictHandler struct {
	uc     usecase.DistrictUsecase
	logger *slog.Logger
}

// NewDistrictHandler is the constructor for DistrictHandler, injected by Fx.
func NewDistrictHandler(uc usecase.DistrictUsecase, logger *slog.Logger) *DistrictHandler {
	return &DistrictHandler{
		uc:     uc,
		logger: logger,
	}
}

// ListByParent returns the districts directly under the given parent code.
func (h *DistrictHandler) ListByParent(c echo.Context) error {
	parent := c.QueryParam("parent")
	if parent == "" {
		parent = defaultDistrictParent
	}

	districts, err := h.uc.GetByParent(c.Request().Context(), parent)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, districts, "Districts retrieved successfully")
}

// GetName resolves one district code to its display name.
func (h *DistrictHandler) GetName(c echo.Context) error {
	code := c.QueryParam("code")
	if code == "" {
		return response.BadRequest(c, "INVALID_INPUT", "District code is required")
	}

	name, err := h.uc.GetNameByCode(c.Request().Context(), code)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"name": name}, "District name retrieved successfully")
}
