package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/zeebo/md5/internal/report"
)

// ValidationError is a single invalid field.
type ValidationError struct {
	Field   string // toml key
	Message string
}

// ValidationErrors is every invalid field of a Config.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "invalid configuration (%d error(s)):", len(ve))
	for _, err := range ve {
		fmt.Fprintf(&sb, "\n  %s: %s", err.Field, err.Message)
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	if err := validate.RegisterValidation("template", validateTemplate); err != nil {
		panic(err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateTemplate(fl validator.FieldLevel) bool {
	_, err := report.NewText(fl.Field().String())
	return err == nil
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "template":
		return "must be a template using only {{digest}}, {{file}} and {{bytes}}"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// Validate reports every invalid field as ValidationErrors.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate config")
	}

	out := make(ValidationErrors, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
		})
	}
	return out
}
