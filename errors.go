package freeconnect

import (
	"net/http"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeValidation     = "AUTH_VALIDATION_FAILED"
	textCodeBadCredentials = "AUTH_BAD_CREDENTIALS"
	textCodeBadResponse    = "AUTH_BAD_RESPONSE"
	textCodeTransport      = "AUTH_TRANSPORT_FAILURE"
	textCodeBackend        = "API_BACKEND_ERROR"
)

// ErrNoSession is returned by operations that require an authenticated
// session when none is present.
var ErrNoSession = goerrors.New("no active session", goerrors.CategoryAuth).
	WithTextCode(textCodeBadCredentials).
	WithCode(goerrors.CodeUnauthorized)

// validationError wraps a pre-network payload validation failure. No request
// is made when one of these is returned.
func validationError(err error, msg string) error {
	return goerrors.Wrap(err, goerrors.CategoryValidation, msg).
		WithTextCode(textCodeValidation).
		WithCode(goerrors.CodeBadRequest)
}

// authError describes a login/register/logout failure reported by the
// backend. Local session state is left untouched by the caller for login and
// register; logout clears local state regardless.
func authError(msg string, status int) error {
	return withStatusCode(
		goerrors.New(msg, goerrors.CategoryAuth).WithTextCode(textCodeBadCredentials),
		status,
	)
}

// badResponseError flags a 2xx response whose body does not carry what the
// contract promises (missing token/user, unrecognized role).
func badResponseError(msg string) error {
	return goerrors.New(msg, goerrors.CategoryAuth).
		WithTextCode(textCodeBadResponse).
		WithCode(goerrors.CodeInternal)
}

func transportError(err error, msg string) error {
	return goerrors.Wrap(err, goerrors.CategoryExternal, msg).
		WithTextCode(textCodeTransport)
}

// backendError describes a non-2xx outcome on a resource endpoint.
func backendError(msg string, status int) error {
	return withStatusCode(
		goerrors.New(msg, goerrors.CategoryExternal).WithTextCode(textCodeBackend),
		status,
	)
}

func withStatusCode(e *goerrors.Error, status int) *goerrors.Error {
	switch status {
	case http.StatusBadRequest:
		return e.WithCode(goerrors.CodeBadRequest)
	case http.StatusUnauthorized:
		return e.WithCode(goerrors.CodeUnauthorized)
	case http.StatusForbidden:
		return e.WithCode(goerrors.CodeForbidden)
	case http.StatusNotFound:
		return e.WithCode(goerrors.CodeNotFound)
	case http.StatusConflict:
		return e.WithCode(goerrors.CodeConflict)
	default:
		return e.WithCode(goerrors.CodeInternal)
	}
}

// IsValidationError reports whether err is a local, pre-network validation
// failure (empty field, malformed email, password mismatch).
func IsValidationError(err error) bool {
	return errCategoryIs(err, goerrors.CategoryValidation)
}

// IsAuthError reports whether err is an authentication failure reported by
// the backend (bad credentials, rejected registration, malformed response).
func IsAuthError(err error) bool {
	return errCategoryIs(err, goerrors.CategoryAuth)
}

func errCategoryIs(err error, category goerrors.Category) bool {
	if err == nil {
		return false
	}
	var richErr *goerrors.Error
	if goerrors.As(err, &richErr) {
		return richErr.Category == category
	}
	return false
}
