package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// InternalMessage is what callers see for any error without a mapped status.
const InternalMessage = "Internal server error"

// Error RPC exception carrying an HTTP-style status code
type Error struct {
	Status  int    `json:"statusCode"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d %s", e.Status, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

// WithErr attaches the underlying cause without changing what the caller sees
func (e *Error) WithErr(err error) *Error {
	e.Err = err
	return e
}

func newError(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

func BadRequest(message string) *Error { return newError(http.StatusBadRequest, message) }

func Unauthorized(message string) *Error { return newError(http.StatusUnauthorized, message) }

func Forbidden(message string) *Error { return newError(http.StatusForbidden, message) }

func NotFound(message string) *Error { return newError(http.StatusNotFound, message) }

func Conflict(message string) *Error { return newError(http.StatusConflict, message) }

func BadGateway(message string) *Error { return newError(http.StatusBadGateway, message) }

func ServiceUnavailable(message string) *Error {
	return newError(http.StatusServiceUnavailable, message)
}

func GatewayTimeout(message string) *Error { return newError(http.StatusGatewayTimeout, message) }

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: InternalMessage, Err: err}
}

// passthrough 允许原样透传给调用方的状态码
var passthrough = map[int]bool{
	http.StatusBadRequest:         true,
	http.StatusUnauthorized:       true,
	http.StatusForbidden:          true,
	http.StatusNotFound:           true,
	http.StatusConflict:           true,
	http.StatusBadGateway:         true,
	http.StatusServiceUnavailable: true,
	http.StatusGatewayTimeout:     true,
}

// From converts any error into the exception sent back over the transport.
// Unmapped statuses and plain errors collapse into a 500.
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) && passthrough[appErr.Status] {
		return &Error{Status: appErr.Status, Message: appErr.Message}
	}
	return Internal(err)
}

// StatusOf returns the status code From would assign to err
func StatusOf(err error) int {
	if e := From(err); e != nil {
		return e.Status
	}
	return http.StatusOK
}
