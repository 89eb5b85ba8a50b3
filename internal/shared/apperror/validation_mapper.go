package apperror

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// MapValidationError turns a binding error into a 400 AppError. Only the
// first validator error is reported; anything that is not a
// validator.ValidationErrors (malformed JSON, unknown fields, bad query
// types) maps to the generic invalid-input error.
func MapValidationError(err error) *AppError {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return Wrap(err, CodeInvalidInput, "Invalid input", ErrInvalidInput.HTTPStatus)
}
