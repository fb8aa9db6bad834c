package myerrors

import (
	"fmt"
	"net/http"
)

type httpErrorCoder interface {
	error
	GetHTTPErrorCode() int
}

type httpError struct {
	httpCode int
	err      error
}

func (e httpError) Error() string {
	return fmt.Sprintf("status: %d, err: %s", e.httpCode, e.err.Error())
}

func (e httpError) GetHTTPErrorCode() int {
	return e.httpCode
}

func (e httpError) Unwrap() error {
	return e.err
}

func newError(httpCode int, err error) *httpError {
	return &httpError{
		httpCode: httpCode,
		err:      err,
	}
}

func NewInvalidInputError(err error) *httpError {
	return newError(http.StatusBadRequest, err)
}

func NewInvalidInputErrorf(format string, args ...interface{}) *httpError {
	return NewInvalidInputError(fmt.Errorf(format, args...))
}

// NewUnauthenticatedError marks the absence of a valid session (401).
func NewUnauthenticatedError(err error) *httpError {
	return newError(http.StatusUnauthorized, err)
}

// NewForbiddenError marks a valid session without the required entitlement (403).
func NewForbiddenError(err error) *httpError {
	return newError(http.StatusForbidden, err)
}

func NewNotFoundError(err error) *httpError {
	return newError(http.StatusNotFound, err)
}

func NewInternalError(err error) *httpError {
	return newError(http.StatusInternalServerError, err)
}

func NewNotImplementedError(err error) *httpError {
	return newError(http.StatusNotImplemented, err)
}

func NewUnavailableError(err error) *httpError {
	return newError(http.StatusServiceUnavailable, err)
}

// NewErrorWithStatus wraps an error from a remote call with the upstream
// http status so callers can classify it with GetHTTPStatus.
func NewErrorWithStatus(httpCode int, err error) *httpError {
	return newError(httpCode, err)
}

func GetHTTPStatus(err error) int {
	if err != nil {
		myError, ok := err.(httpErrorCoder)
		if ok {
			return myError.GetHTTPErrorCode()
		}
	}
	return http.StatusInternalServerError
}

// IsUnauthenticated reports whether err carries a 401 status.
func IsUnauthenticated(err error) bool {
	return err != nil && GetHTTPStatus(err) == http.StatusUnauthorized
}

// IsNotFound reports whether err carries a 404 status.
func IsNotFound(err error) bool {
	return err != nil && GetHTTPStatus(err) == http.StatusNotFound
}
