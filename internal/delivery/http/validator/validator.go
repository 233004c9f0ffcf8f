// Package validator wires go-playground struct validation into Echo.
package validator

import (
	"strings"

	domainerrors "storefront/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator over go-playground/validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the validator used by the Echo server.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate runs struct-tag validation and converts violations into a single
// 400 AppError enumerating every failing field.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed
	}

	fields := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fields = append(fields, fieldErr.Field()+" failed on '"+fieldErr.Tag()+"'")
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(fields, "; "))
}
