package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is a stable, machine-readable error code. Clients may pattern-match
// on codes; the accompanying messages are human-readable and may change.
type Code string

const (
	CodeNotFound     Code = "error.plant.not_found"
	CodeCreateFailed Code = "error.plant.couldnt_be_created"
	CodeValidation   Code = "error.input.validation_failed"
	CodeRateLimited  Code = "error.rate_limit.exceeded"
	CodeInternal     Code = "error.internal_server_error"
)

var messages = map[Code]string{
	CodeNotFound:     "The requested plant was not found.",
	CodeCreateFailed: "The plant could not be created.",
	CodeValidation:   "Input validation failed.",
	CodeRateLimited:  "Too many requests. Try again later.",
	CodeInternal:     "An internal server error occurred.",
}

var statuses = map[Code]int{
	CodeNotFound:     http.StatusNotFound,
	CodeCreateFailed: http.StatusInternalServerError,
	CodeValidation:   http.StatusBadRequest,
	CodeRateLimited:  http.StatusTooManyRequests,
	CodeInternal:     http.StatusInternalServerError,
}

// Message returns the canonical human-readable message for a code.
func (c Code) Message() string {
	if m, ok := messages[c]; ok {
		return m
	}
	return messages[CodeInternal]
}

// Status returns the HTTP status the code maps to.
func (c Code) Status() int {
	if s, ok := statuses[c]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// AppError is a domain error carrying a stable code and an optional cause.
type AppError struct {
	Code Code
	Err  error
}

func (e *AppError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Code, e.Err)
	}
	return string(e.Code)
}

// Unwrap returns the wrapped cause for errors.Is/As support.
func (e *AppError) Unwrap() error { return e.Err }

// New creates an AppError with the given code.
func New(code Code) *AppError {
	return &AppError{Code: code}
}

// Wrap attaches a code to an existing error.
func Wrap(err error, code Code) *AppError {
	return &AppError{Code: code, Err: err}
}

// IsCode reports whether err carries the given code (through unwrapping).
func IsCode(err error, code Code) bool {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}

// Classify resolves any error to an AppError. Errors that do not already
// carry a code are treated as internal.
func Classify(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return Wrap(err, CodeInternal)
}
