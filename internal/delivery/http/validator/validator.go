// Package validator adapts go-playground/validator to echo's Validator hook.
package validator

import (
	domainerrors "vhiem/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for echo.
type echoValidator struct {
	validate *validator.Validate
}

// New is the constructor for echoValidator.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Tag failures surface as the shared
// validation error so the error middleware renders a 400.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
