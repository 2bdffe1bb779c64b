package book

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// validateInput returns a *ValidationError for the first field that fails.
// Whitespace-only names count as missing.
func validateInput(in Input) error {
	in.Name = strings.TrimSpace(in.Name)

	err := validate.Struct(in)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	first := fieldErrs[0]
	switch first.Field() {
	case "Name":
		return &ValidationError{Field: "name", Reason: ReasonNameRequired}
	case "ReadPage":
		return &ValidationError{Field: "readPage", Reason: ReasonReadPageExceeds}
	default:
		return &ValidationError{Field: first.Field(), Reason: first.Tag()}
	}
}
