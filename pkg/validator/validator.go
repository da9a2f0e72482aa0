package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldMessages turns binding failures into a field-to-message map for a
// structured 400 body. The keys are JSON field names when the engine has
// a tag name function registered. ok is false when err is not a
// validator error.
func FieldMessages(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = fieldErrorMessage(fe)
	}
	return out, true
}

// FormatValidationError flattens binding failures to one line, for logs
// and plain-text surfaces.
func FormatValidationError(err error) string {
	msgs, ok := FieldMessages(err)
	if !ok {
		return err.Error()
	}

	parts := make([]string, 0, len(msgs))
	for field, msg := range msgs {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msg))
	}
	return strings.Join(parts, "; ")
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "this field is required"
	case "email":
		return "must be a valid email address"
	case "max":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must not exceed %s characters", fe.Param())
		}
		return fmt.Sprintf("must not exceed %s", fe.Param())
	case "min":
		if fe.Type().Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "username":
		return "must be a valid username (letters, digits and @/./+/-/_, not reserved)"
	case "slug":
		return "must be a valid slug (letters, digits, hyphens and underscores)"
	case "year_not_future":
		return "must not be in the future"
	case "score":
		return "must be within the allowed score range"
	case "uuid":
		return "must be a valid UUID"
	default:
		return "is not valid"
	}
}
