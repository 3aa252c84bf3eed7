// Package apperrors defines the closed set of failures the service reports
// and how each maps to an HTTP status at the request boundary.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure.
type Kind string

const (
	KindUpstreamFailure    Kind = "UPSTREAM_FAILURE"
	KindConfigurationError Kind = "CONFIGURATION_ERROR"
	KindInvalidInput       Kind = "INVALID_INPUT"
)

// Error is a classified failure. Service names the upstream involved, if any.
type Error struct {
	Kind    Kind
	Service string
	Message string
	Err     error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		if msg == "" {
			msg = e.Err.Error()
		} else {
			msg = msg + ": " + e.Err.Error()
		}
	}
	if e.Service != "" {
		return e.Service + ": " + msg
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same Kind, so errors.Is(err, ErrUpstreamFailure) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Service == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is checks.
var (
	ErrUpstreamFailure    = &Error{Kind: KindUpstreamFailure}
	ErrConfigurationError = &Error{Kind: KindConfigurationError}
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
)

// NewUpstreamFailure wraps a network error, bad status or malformed body from service.
func NewUpstreamFailure(service string, err error) *Error {
	return &Error{Kind: KindUpstreamFailure, Service: service, Err: err}
}

// NewConfigurationError reports a missing or unusable setting for service.
func NewConfigurationError(service, format string, args ...interface{}) *Error {
	return &Error{Kind: KindConfigurationError, Service: service, Message: fmt.Sprintf(format, args...)}
}

// NewInvalidInput reports an unparsable request argument.
func NewInvalidInput(format string, args ...interface{}) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// KindOf returns the Kind of the first *Error in err's chain, or "" if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// HTTPStatus maps err to the status written at the request boundary.
// Everything except invalid input is reported as 500.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindInvalidInput:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
