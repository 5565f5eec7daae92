package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// ===== Error model (shared by workdays / sites / overview) =====

type Kind string

const (
	KindValidation  Kind = "VALIDATION"
	KindNotFound    Kind = "NOT_FOUND"
	KindConflict    Kind = "CONFLICT"
	KindUnavailable Kind = "STORE_UNAVAILABLE"
	KindInternal    Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func Invalid(msg string) *Error  { return &Error{Kind: KindValidation, Message: msg} }
func NotFound(msg string) *Error { return &Error{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) *Error { return &Error{Kind: KindConflict, Message: msg} }
func Internal(msg string) *Error { return &Error{Kind: KindInternal, Message: msg} }

// Unavailable wraps a store failure. Callers surface it as-is, no retry.
func Unavailable(err error) *Error {
	return &Error{Kind: KindUnavailable, Message: "store unavailable", Err: err}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Body is the JSON error payload. Only the message is exposed.
type Body struct {
	Message string `json:"message"`
}

func BodyOf(err error) Body {
	var e *Error
	if errors.As(err, &e) {
		return Body{Message: e.Message}
	}
	return Body{Message: err.Error()}
}
