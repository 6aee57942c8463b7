package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/alexisbeaulieu97/timedbutton/pkg/errors"
)

// convertValidationError normalizes validator errors into typed validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		ve := ves[0]
		field := yamlFieldName(ve)
		return apperrors.NewValidationError(field, describeTag(ve), err)
	}

	return apperrors.NewValidationError("button", err.Error(), err)
}

// yamlFieldName maps the Go struct field back to its YAML key.
func yamlFieldName(fe validator.FieldError) string {
	if sf, ok := reflect.TypeOf(Button{}).FieldByName(fe.StructField()); ok {
		if tag := strings.Split(sf.Tag.Get("yaml"), ",")[0]; tag != "" {
			return tag
		}
	}
	return strings.ToLower(fe.StructField())
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "value is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "alignment":
		return fmt.Sprintf("must be one of left, center, right (got %q)", fe.Value())
	default:
		return fmt.Sprintf("failed validation for tag '%s'", fe.Tag())
	}
}
