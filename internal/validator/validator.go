package validator

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationError maps json field names to messages.
type ValidationError struct {
	Errors map[string]string
}

func (e *ValidationError) Error() string {
	return e.Summary()
}

// Summary is the client-facing message. Missing fields are listed together,
// e.g. "Required fields: title, location".
func (e *ValidationError) Summary() string {
	var missing, other []string
	for field, msg := range e.Errors {
		if msg == requiredMessage {
			missing = append(missing, field)
		} else {
			other = append(other, fmt.Sprintf("%s: %s", field, msg))
		}
	}
	sort.Strings(missing)
	sort.Strings(other)

	var parts []string
	if len(missing) > 0 {
		parts = append(parts, "Required fields: "+strings.Join(missing, ", "))
	}
	parts = append(parts, other...)
	return strings.Join(parts, "; ")
}

// Validator wraps go-playground/validator with json field names and our rules.
type Validator struct {
	validate *validator.Validate
}

func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomRules(v)

	return &Validator{validate: v}
}

// Validate returns *ValidationError for rule failures, other errors as is.
func (v *Validator) Validate(i interface{}) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	customErrors := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		customErrors[fieldPath(fe)] = v.getErrorMessage(fe)
	}
	return &ValidationError{Errors: customErrors}
}

// fieldPath drops the top-level struct name: "ProfileRequest.interests.propertyTypes"
// becomes "interests.propertyTypes".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

const requiredMessage = "This field is required"

func (v *Validator) getErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return requiredMessage
	case "email":
		return "Must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String || fe.Kind() == reflect.Slice || fe.Kind() == reflect.Map {
			return fmt.Sprintf("Must be at least %s items/characters long", fe.Param())
		}
		return fmt.Sprintf("Must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("Must be one of: %s", strings.ReplaceAll(fe.Param(), " ", ", "))
	case "adult":
		return "You must be at least 18 years old"
	case "is-property-type":
		return "Must be one of: Sale, Rent, Airbnb, Commercial"
	case "is-request-type":
		return "Must be one of: service, purchase"
	case "is-mailing-category":
		return "Must be one of: property, service"
	case "is-booking-status":
		return "Must be one of: pending, approved, confirmed, declined"
	default:
		return fmt.Sprintf("Invalid value (failed on '%s' tag)", fe.Tag())
	}
}
