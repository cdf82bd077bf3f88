package validators

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Validate is a type alias for validator.Validate.
type Validate = validator.Validate

// ValidationErrors is a type alias for validator.ValidationErrors.
type ValidationErrors = validator.ValidationErrors

// FieldError is a type alias for validator.FieldError.
type FieldError = validator.FieldError

// TagResourceID validates identifiers that end up as storage path segments
// (dataset IDs, batch IDs): 1-128 chars of [A-Za-z0-9._-], starting with an alphanumeric.
const TagResourceID = "resource_id"

var resourceIDPattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9._-]{0,127}$`)

// New creates a new validator instance with the custom tags of this module registered.
func New() *Validate {
	v := validator.New()
	_ = v.RegisterValidation(TagResourceID, func(fl validator.FieldLevel) bool {
		return resourceIDPattern.MatchString(fl.Field().String())
	})
	return v
}
