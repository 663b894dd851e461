package model

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = v.RegisterValidation("email_or_empty", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || v.Var(s, "email") == nil
	})
	_ = v.RegisterValidation("url_or_empty", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || v.Var(s, "url") == nil
	})
	return v
}

// Validate checks the struct tags of a request body.
func Validate(v any) error {
	return validate.Struct(v)
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// ValidationMessage flattens validator errors into "field: rule" pairs.
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		field := fe.Namespace()
		if _, rest, ok := strings.Cut(field, "."); ok {
			field = rest
		}
		rule := fe.Tag()
		if fe.Param() != "" {
			rule += "=" + fe.Param()
		}
		parts = append(parts, field+": "+rule)
	}
	return strings.Join(parts, "; ")
}
