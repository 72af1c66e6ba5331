// Package apperror holds the error taxonomy shared by repositories, services and handlers.
package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound      Kind = "NotFoundError"
	KindDuplicate     Kind = "DuplicateError"
	KindInvalidInput  Kind = "InvalidInputError"
	KindAuthorization Kind = "AuthorizationError"
)

// Sentinels for errors.Is checks. They match any *Error of the same kind.
var (
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrDuplicate     = &Error{Kind: KindDuplicate}
	ErrInvalidInput  = &Error{Kind: KindInvalidInput}
	ErrAuthorization = &Error{Kind: KindAuthorization}
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

func InvalidInput(message string) *Error {
	return &Error{Kind: KindInvalidInput, Message: message}
}

func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

// Wrap attaches a taxonomy kind and a client-facing message to a lower level error.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// As returns the outermost taxonomy error in err's chain.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
