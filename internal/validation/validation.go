// Package validation wraps go-playground/validator with human-readable
// messages. Forms can override the message for a given field/tag pair so the
// text shown to the user matches what the backend would say.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// Messages overrides default texts. Keys are "field.tag" (field by its JSON
// name) or a bare "tag" that applies to every field.
type Messages map[string]string

// FieldError describes a single failed rule.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Error is returned when input fails validation. Message is what the user sees:
// the text for the first failing rule, with "required" failures reported
// before any format failures.
type Error struct {
	Message string
	Fields  []FieldError
}

func (e *Error) Error() string { return e.Message }

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return lowerFirst(f.Name)
		}
		return name
	})
	return v
}

// Struct validates s using its `validate` tags.
func Struct(s any, msgs Messages) error {
	return convert(validate.Struct(s), msgs)
}

// Var validates a single value and reports failures under the given field name.
func Var(field string, value any, tag string, msgs Messages) error {
	err := convert(validate.Var(value, tag), nil)
	var ve *Error
	if !errors.As(err, &ve) {
		return err
	}
	for i := range ve.Fields {
		ve.Fields[i].Field = field
	}
	ve.Message = message(ve.Fields[0], msgs)
	return ve
}

// Email checks that s is present and looks like an email address.
func Email(s string) error {
	return Var("email", s, "required,email", nil)
}

func convert(err error, msgs Messages) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	fields := make([]FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, FieldError{Field: fe.Field(), Tag: fe.Tag(), Param: fe.Param()})
	}
	sort.SliceStable(fields, func(i, j int) bool {
		return fields[i].Tag == "required" && fields[j].Tag != "required"
	})

	return &Error{Message: message(fields[0], msgs), Fields: fields}
}

func message(fe FieldError, msgs Messages) string {
	if m, ok := msgs[fe.Field+"."+fe.Tag]; ok {
		return m
	}
	if m, ok := msgs[fe.Tag]; ok {
		return m
	}

	switch fe.Tag {
	case "required":
		return fe.Field + " is required"
	case "email":
		return fe.Field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field, fe.Param)
	case "eqfield":
		return fmt.Sprintf("%s must match %s", fe.Field, lowerFirst(fe.Param))
	case "numeric":
		return fe.Field + " must be numeric"
	case "datetime":
		return fmt.Sprintf("%s must be a date in %s format", fe.Field, fe.Param)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field, fe.Param)
	default:
		return fmt.Sprintf("%s failed validation (%s)", fe.Field, fe.Tag)
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToLower(r[0])
	return string(r)
}
