package common

import (
	"errors"
	"net/http"
)

type ErrorKind string

const (
	KindBadRequest    ErrorKind = "bad_request"
	KindUnauthorized  ErrorKind = "unauthorized"
	KindForbidden     ErrorKind = "forbidden"
	KindNotFound      ErrorKind = "not_found"
	KindConflict      ErrorKind = "conflict"
	KindUnprocessable ErrorKind = "unprocessable"
	KindInternal      ErrorKind = "internal"
)

// AppError is a business error that carries the HTTP class it maps to.
type AppError struct {
	Kind    ErrorKind
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func BadRequest(msg string) error    { return &AppError{Kind: KindBadRequest, Message: msg} }
func Unauthorized(msg string) error  { return &AppError{Kind: KindUnauthorized, Message: msg} }
func Forbidden(msg string) error     { return &AppError{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) error      { return &AppError{Kind: KindNotFound, Message: msg} }
func Conflict(msg string) error      { return &AppError{Kind: KindConflict, Message: msg} }
func Unprocessable(msg string) error { return &AppError{Kind: KindUnprocessable, Message: msg} }

func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsKind(err error, kind ErrorKind) bool {
	return err != nil && KindOf(err) == kind
}

func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnprocessable:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
