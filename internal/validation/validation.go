// Package validation checks entity structs against their schema tags and
// turns violations into a field-keyed error map.
package validation

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps an offending field to a human-readable message. It covers
// every failing field, not just the first.
type FieldErrors map[string]string

// Error summarizes the violations in a deterministic order.
func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return "validation failed on: " + strings.Join(fields, ", ")
}

// Validator validates entity structs. Field keys in the resulting FieldErrors
// use the JSON name, matching the wire representation.
type Validator struct {
	validate *validator.Validate
}

// New creates a Validator.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &Validator{validate: v}
}

// Struct validates s and returns FieldErrors describing every violation, or
// nil when s is valid.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		// InvalidValidationError: not a schema violation, report as-is.
		return err
	}
	fields := make(FieldErrors, len(violations))
	for _, violation := range violations {
		// Collection entries report as "type[0]"; key them under the field.
		field := violation.Field()
		if idx := strings.IndexByte(field, '['); idx > 0 {
			field = field[:idx]
		}
		if _, seen := fields[field]; !seen {
			fields[field] = message(field, violation)
		}
	}
	return fields
}

func message(field string, violation validator.FieldError) string {
	switch violation.Tag() {
	case "required":
		return fmt.Sprintf("Path `%s` is required.", field)
	case "min":
		if violation.Kind() == reflect.String {
			return fmt.Sprintf("Path `%s` is shorter than the minimum allowed length (%s).", field, violation.Param())
		}
		return fmt.Sprintf("Path `%s` must contain at least %s entries.", field, violation.Param())
	case "max":
		if violation.Kind() == reflect.String {
			return fmt.Sprintf("Path `%s` is longer than the maximum allowed length (%s).", field, violation.Param())
		}
		return fmt.Sprintf("Path `%s` must contain at most %s entries.", field, violation.Param())
	case "oneof":
		return fmt.Sprintf("Path `%s` must be one of: %s.", field, strings.Join(strings.Fields(violation.Param()), ", "))
	default:
		return fmt.Sprintf("Path `%s` failed on the '%s' rule.", field, violation.Tag())
	}
}
