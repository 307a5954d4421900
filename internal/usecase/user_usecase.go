// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=20"`
	Password string `json:"password" validate:"required,min=6,max=20"`
	Phone    string `json:"phone"`
	Email    string `json:"email" validate:"omitempty,email"`
	Gender   int    `json:"gender" validate:"oneof=0 1"`
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ChangePasswordInput carries the old and new raw passwords.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6,max=20"`
}

// UpdateProfileInput carries the mutable profile fields.
type UpdateProfileInput struct {
	Phone  string `json:"phone"`
	Email  string `json:"email" validate:"omitempty,email"`
	Gender int    `json:"gender" validate:"oneof=0 1"`
}

// --- Output DTOs ---

// LoginOutput is the minimal public view returned after a successful login:
// identity and avatar only, never credential material.
type LoginOutput struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	Avatar      string    `json:"avatar"`
	AccessToken string    `json:"accessToken"`
}

// ProfileOutput is the public profile view. Credential fields are never
// included.
type ProfileOutput struct {
	Username string `json:"username"`
	Phone    string `json:"phone"`
	Email    string `json:"email"`
	Gender   int    `json:"gender"`
}

// UserUsecase owns the credential lifecycle: registration, login
// verification, password change, and profile/avatar association.
// The caller identity (account id + display name) is always passed
// explicitly rather than read from ambient session state.
type UserUsecase interface {
	Register(ctx context.Context, input *RegisterInput) error
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	ChangePassword(ctx context.Context, id uuid.UUID, actor string, input *ChangePasswordInput) error
	GetProfile(ctx context.Context, id uuid.UUID) (*ProfileOutput, error)
	ChangeProfile(ctx context.Context, id uuid.UUID, actor string, input *UpdateProfileInput) error
	ChangeAvatar(ctx context.Context, id uuid.UUID, actor string, avatar string) error
}
