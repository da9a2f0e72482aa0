// Package validation wires the domain validation rules into the
// validator/v10 engine gin binds requests with.
package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yamdb-team/yamdb-api/internal/model"
)

// RegisterTagValidators installs the domain rules as custom tags so request
// DTOs fail validation before anything touches a model. The model hooks
// apply the same rules again at save time; raw SQL writes bypass both, which
// is the accepted limitation of field-level validation.
func RegisterTagValidators(v *validator.Validate) error {
	// Key validation errors by the JSON field names clients actually send.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	if err := v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return model.ValidateUsername(fl.Field().String()) == nil
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return model.ValidateSlug(fl.Field().String()) == nil
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("year_not_future", func(fl validator.FieldLevel) bool {
		return model.ValidateYear(int(fl.Field().Int())) == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("score", func(fl validator.FieldLevel) bool {
		return model.ValidateScore(int(fl.Field().Int())) == nil
	})
}
