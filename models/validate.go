// validate.go - Struct tag validation shared by the store

package models // Declares the package name

import ( // Import required packages
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10" // Struct tag validation
)

var validate = newValidator() // Caches struct metadata, safe for concurrent use

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report json names so errors match what API clients send.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return strings.ToLower(f.Name)
		}
		return name
	})
	return v
}

// Validate checks the validate struct tags of a model. A non-nil error is
// always validator.ValidationErrors or *validator.InvalidValidationError.
func Validate(model any) error {
	return validate.Struct(model)
}
