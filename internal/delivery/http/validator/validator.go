// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "store/internal/domain/errors"

	playgroundvalidator "github.com/go-playground/validator/v10"
)

// echoValidator implements echo.Validator on top of go-playground/validator.
type echoValidator struct {
	validate *playgroundvalidator.Validate
}

// New creates the validator echo uses for c.Validate calls.
func New() *echoValidator {
	return &echoValidator{
		validate: playgroundvalidator.New(playgroundvalidator.WithRequiredStructEnabled()),
	}
}

// Validate runs struct tag validation and converts failures into the
// application's validation error so the error middleware renders them with a
// stable code.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
