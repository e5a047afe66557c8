package client

import (
	"errors"
	"strings"

	"github.com/dmitrijs2005/contactkeeper/internal/common"
)

var ErrUnavailable = errors.New("server unavailable")

const msgUserExists = "User already exists"

// FieldError is one entry of a validation error response.
type FieldError struct {
	Msg   string `json:"msg"`
	Param string `json:"param"`
}

// APIError is a 400 response from the server. Either Msg or Errors is set.
type APIError struct {
	Msg    string       `json:"msg"`
	Errors []FieldError `json:"errors"`
}

func (e *APIError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fe.Msg)
	}
	return strings.Join(msgs, "; ")
}

// Is reports a duplicate account as common.ErrorAlreadyExists.
func (e *APIError) Is(target error) bool {
	return target == common.ErrorAlreadyExists && e.Msg == msgUserExists
}
