package serrors

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// BaseError is a coded error with a human readable message.
type BaseError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Key     string `json:"key,omitempty"`
}

func NewError(code, message, key string) *BaseError {
	return &BaseError{Code: code, Message: message, Key: key}
}

func (e *BaseError) Error() string {
	return e.Message
}

// Is matches on Code so wrapped copies compare equal to the sentinel.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	return ok && t.Code == e.Code
}

// ValidationErrors maps a field name to its first failing message.
type ValidationErrors map[string]string

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(v))
	for f := range v {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, v[f]))
	}
	return strings.Join(parts, "; ")
}

// Add records msg for field unless the field already has an error.
func (v ValidationErrors) Add(field, msg string) {
	if _, ok := v[field]; !ok {
		v[field] = msg
	}
}

// Merge copies other into v, keeping the existing message on conflicts.
func (v ValidationErrors) Merge(other ValidationErrors) {
	for f, msg := range other {
		v.Add(f, msg)
	}
}

// ProcessValidatorErrors turns validator errors into readable messages keyed
// by field path relative to the validated struct ("Name", "Villages[0].Area").
// label resolves a display label for a path; an empty result falls back to
// the field name.
func ProcessValidatorErrors(errs validator.ValidationErrors, label func(field string) string) ValidationErrors {
	out := make(ValidationErrors, len(errs))
	for _, fe := range errs {
		field := FieldPath(fe)
		name := ""
		if label != nil {
			name = label(field)
		}
		if name == "" {
			name = fe.Field()
		}
		out.Add(field, Describe(name, fe))
	}
	return out
}

// FieldPath strips the root type from the error's struct namespace.
func FieldPath(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return fe.StructField()
}

// Describe renders a single validator failure.
func Describe(name string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "required_if", "required_with":
		return fmt.Sprintf("%s is required", name)
	case "min":
		switch lengthUnit(fe) {
		case "characters":
			return fmt.Sprintf("%s must be at least %s characters", name, fe.Param())
		case "items":
			return fmt.Sprintf("%s must have at least %s item(s)", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", name, fe.Param())
	case "max":
		switch lengthUnit(fe) {
		case "characters":
			return fmt.Sprintf("%s must be at most %s characters", name, fe.Param())
		case "items":
			return fmt.Sprintf("%s must have at most %s item(s)", name, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", name, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or more", name, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be %s or less", name, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", name, fe.Param())
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", name, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", name)
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", name)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "numeric", "number":
		return fmt.Sprintf("%s must be a number", name)
	case "date":
		return fmt.Sprintf("%s must be a valid date", name)
	case "decimal":
		return fmt.Sprintf("%s must be a decimal amount", name)
	case "pattern", "phone", "gstin", "couponcode":
		return fmt.Sprintf("%s has an invalid format", name)
	case "dive":
		return fmt.Sprintf("%s contains an invalid entry", name)
	default:
		return fmt.Sprintf("%s is invalid", name)
	}
}

func lengthUnit(fe validator.FieldError) string {
	switch fe.Kind() {
	case reflect.String:
		return "characters"
	case reflect.Slice, reflect.Array, reflect.Map:
		return "items"
	}
	return ""
}

// RowField builds the path of a field inside a repeated row, matching the
// paths validator errors are keyed by: RowField("Villages", 1, "Name") is
// "Villages[1].Name".
func RowField(rows string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", rows, index, field)
}
