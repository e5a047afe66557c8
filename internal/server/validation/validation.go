// Package validation checks request fields and reports failures in the
// {value, msg, param, location} shape returned to API clients.
package validation

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// LocationBody marks a field taken from the JSON request body.
const LocationBody = "body"

// FieldError describes one failed rule. Value is nil when the field was
// absent from the request.
type FieldError struct {
	Value    *string `json:"value,omitempty"`
	Msg      string  `json:"msg"`
	Param    string  `json:"param"`
	Location string  `json:"location"`
}

// Errors is a non-empty list of rule failures.
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, fe := range e {
		msgs = append(msgs, fe.Param+": "+fe.Msg)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// Params lists the failing parameter names in order.
func (e Errors) Params() []string {
	params := make([]string, 0, len(e))
	for _, fe := range e {
		params = append(params, fe.Param)
	}
	return params
}

// Collect returns the non-nil failures as Errors, or nil when all passed.
func Collect(results ...*FieldError) error {
	var errs Errors
	for _, r := range results {
		if r != nil {
			errs = append(errs, *r)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func check(param string, value *string, msg string, ok bool) *FieldError {
	if ok {
		return nil
	}
	return &FieldError{Value: value, Msg: msg, Param: param, Location: LocationBody}
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

// NotEmpty fails when the field is absent or has zero length.
// Whitespace counts as content.
func NotEmpty(param string, value *string, msg string) *FieldError {
	return check(param, value, msg, deref(value) != "")
}

// MinLength fails when the field holds fewer than min characters.
func MinLength(param string, value *string, min int, msg string) *FieldError {
	return check(param, value, msg, utf8.RuneCountInString(deref(value)) >= min)
}

// IsEmail fails unless the field is a bare address such as
// "alice@example.com" with a dotted domain.
func IsEmail(param string, value *string, msg string) *FieldError {
	return check(param, value, msg, isEmail(deref(value)))
}

// validate is safe for concurrent use and caches parsed tags.
var validate = validator.New()

// isEmail accepts what the "email" tag accepts, except a trailing dot on
// the domain.
func isEmail(s string) bool {
	if s == "" || strings.HasSuffix(s, ".") {
		return false
	}
	return validate.Var(s, "email") == nil
}
