// Package validation runs go-playground/validator over parameter structs and
// reports the first failing field as a *domain.ValidationError.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/go-playground/validator/v10"
)

// MinimumAge is the youngest age allowed to open accounts.
const MinimumAge = 18

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Use JSON tag names in errors.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterAlias("adult", fmt.Sprintf("gte=%d", MinimumAge))
	v.RegisterAlias("username", "required,max=255")
	_ = v.RegisterValidation("bcryptlen", func(fl validator.FieldLevel) bool {
		return len(fl.Field().String()) <= MaxPasswordBytes
	})
	v.RegisterAlias("password", "required,bcryptlen")
	return v
}

// Struct validates s. The returned error, if any, is a *domain.ValidationError
// naming the first failing field.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.NewValidationError(fe.Field(), formatFieldError(fe))
	}
	return err
}

func formatFieldError(fe validator.FieldError) string {
	param := fe.Param()
	switch fe.Tag() {
	case "required":
		return "is required"
	case "adult":
		return fmt.Sprintf("must be %d or older to have an account", MinimumAge)
	case "username":
		return "must be non-empty and at most 255 characters long"
	case "password":
		return fmt.Sprintf("must be non-empty and at most %d bytes long", MaxPasswordBytes)
	case "min":
		return "must be at least " + param + " characters long"
	case "max":
		return "must be at most " + param + " characters long"
	case "gte":
		return "must be greater than or equal to " + param
	case "gt":
		return "must be greater than " + param
	default:
		if param != "" {
			return fmt.Sprintf("validation failed for '%s' with parameter '%s'", fe.Tag(), param)
		}
		return fmt.Sprintf("validation failed for '%s'", fe.Tag())
	}
}
