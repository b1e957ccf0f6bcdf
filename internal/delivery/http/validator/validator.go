// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// alphaSpacePattern is the letters-and-spaces rule used for person names.
var alphaSpacePattern = regexp.MustCompile(`^[a-zA-Z ]+$`)

// echoValidator wraps a validator.Validate instance for echo.
type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator with the custom rules registered.
func New() *echoValidator {
	validate := validator.New()

	// alphaspace: non-empty, english letters and spaces only.
	_ = validate.RegisterValidation("alphaspace", func(fl validator.FieldLevel) bool {
		return alphaSpacePattern.MatchString(fl.Field().String())
	})

	return &echoValidator{validate: validate}
}

// Validate implements echo.Validator.
func (v *echoValidator) Validate(i any) error {
	return v.validate.Struct(i)
}
