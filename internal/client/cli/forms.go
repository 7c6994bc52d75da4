package cli

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// userError is shown to the user verbatim.
type userError struct{ msg string }

func (e *userError) Error() string { return e.msg }

var (
	errFillAllFields    = &userError{"Please fill in all fields"}
	errPasswordMismatch = &userError{"Passwords do not match"}
	errPasswordTooShort = &userError{"Password must be at least 6 characters"}
	errInvalidEmail     = &userError{"Please enter a valid email"}
)

type loginForm struct {
	Email    string `validate:"required"`
	Password string `validate:"required"`
}

func (f loginForm) Validate() error {
	if err := validate.Struct(f); err != nil {
		return errFillAllFields
	}
	return nil
}

type registerForm struct {
	Name            string `validate:"required"`
	Email           string `validate:"required,contains=@"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// normalize trims the free-text fields. Passwords are kept as typed.
func (f registerForm) normalize() registerForm {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	return f
}

// Validate reports the first problem in the order the user is expected to
// fix them: missing fields, confirmation, length, then email.
func (f registerForm) Validate() error {
	err := validate.Struct(f.normalize())
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	failed := make(map[string]bool, len(ve))
	for _, fe := range ve {
		failed[fe.Tag()] = true
	}

	switch {
	case failed["required"]:
		return errFillAllFields
	case failed["eqfield"]:
		return errPasswordMismatch
	case failed["min"]:
		return errPasswordTooShort
	case failed["contains"]:
		return errInvalidEmail
	}
	return err
}
