package auth

import (
	"chatbot/domain"
	"unicode"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// registration only fails on a duplicate tag name
	_ = v.RegisterValidation("identity", func(fl validator.FieldLevel) bool {
		return IsIdentity(fl.Field().String())
	})
	return v
}

// ValidateStruct applies the `validate` tags of v, including the "identity" tag.
func ValidateStruct(v any) error {
	return validate.Struct(v)
}

// IsIdentity reports whether s is a phone-number-like chat identity once normalized:
// "+33611111111" and "33611111111@c.us" are, "alice" is not.
func IsIdentity(s string) bool {
	normalized := domain.NormalizeIdentity(s)
	if len(normalized) < 5 || len(normalized) > 20 {
		return false
	}
	for _, r := range normalized {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
