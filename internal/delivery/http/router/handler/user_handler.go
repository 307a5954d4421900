package handler

import (
	"log/slog"
	"net/http"

	"store/internal/delivery/http/response"
	domainerrors "store/internal/domain/errors"
	"store/internal/domain/service"
	"store/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for account-related handlers.
type UserHandler struct {
	uc      usecase.UserUsecase
	avatars service.AvatarStore
	logger  *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, avatars service.AvatarStore, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:      uc,
		avatars: avatars,
		logger:  logger,
	}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var input *usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, nil, "Account registered successfully")
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var input *usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Login successful")
}

// ChangePassword handles the password change request of the logged-in account.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	accountID, username, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID in token")
	}

	var input *usecase.ChangePasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password change input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangePassword(c.Request().Context(), accountID, username, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password changed successfully")
}

// GetProfile handles the request to get the current account's profile.
func (h *UserHandler) GetProfile(c echo.Context) error {
	accountID, _, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID in token")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved successfully")
}

// UpdateProfile handles the request to update the current account's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	accountID, username, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID in token")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangeProfile(c.Request().Context(), accountID, username, input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile updated successfully")
}

// UploadAvatar stores the uploaded image and associates its web path with the
// current account.
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	accountID, username, ok := callerIdentity(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHORIZED", "Invalid account ID in token")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return errors.WithStack(domainerrors.ErrFileEmpty)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.WithStack(domainerrors.NewFileIOError(err, "failed to open uploaded file"))
	}
	defer src.Close()

	webPath, err := h.avatars.Save(fileHeader.Filename, fileHeader.Size, src)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ChangeAvatar(c.Request().Context(), accountID, username, webPath); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"avatar": webPath}, "Avatar uploaded successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
