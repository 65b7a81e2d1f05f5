package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var imdbIDRgx = regexp.MustCompile(`^tt\d{7,8}$`)

// Error message formats, exported so tests can assert on rendered issues.
var (
	ErrRequired  = "is required"
	ErrMinLength = "must be at least %s characters long"
	ErrMaxLength = "must be at most %s characters long"
	ErrMinValue  = "must be %s or greater"
	ErrMaxValue  = "must be %s or less"
	ErrImdbID    = "must match the pattern 'tt' followed by 7 or 8 digits"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterValidation("imdb_id", validateImdbID)

	// Report fields under their json names so validation issues match the
	// request payload, not the Go struct.
	validator.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return validator
}

func validateImdbID(fl validator.FieldLevel) bool {
	return imdbIDRgx.MatchString(fl.Field().String())
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "min":
		return fmt.Sprintf(ErrMinLength, err.Param())
	case "max":
		return fmt.Sprintf(ErrMaxLength, err.Param())
	case "gte":
		return fmt.Sprintf(ErrMinValue, err.Param())
	case "lte":
		return fmt.Sprintf(ErrMaxValue, err.Param())
	case "imdb_id":
		return ErrImdbID
	default:
		return "is invalid"
	}
}
