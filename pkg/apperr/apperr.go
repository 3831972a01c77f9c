// Package apperr classifies failures that controllers turn into HTTP responses.
package apperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	Validation        Kind = "VALIDATION_ERROR"
	InconsistentState Kind = "INCONSISTENT_STATE"
	TableMismatch     Kind = "TABLE_MISMATCH"
	TableOccupied     Kind = "TABLE_OCCUPIED"
	NotFound          Kind = "NOT_FOUND"
	Conflict          Kind = "CONFLICT"
	Unauthorized      Kind = "UNAUTHORIZED"
	Internal          Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}

func Validationf(msg string) *Error   { return New(Validation, msg) }
func NotFoundf(msg string) *Error     { return New(NotFound, msg) }
func Unauthorizedf(msg string) *Error { return New(Unauthorized, msg) }

// KindOf reports the kind of err, or Internal for anything unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// MessageOf returns the client-facing message carried by err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}

func Status(kind Kind) int {
	switch kind {
	case Validation, InconsistentState, TableMismatch, TableOccupied, Conflict:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
