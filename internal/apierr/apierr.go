// Package apierr defines the error taxonomy shared by the derivation core
// and its HTTP boundary, the same eight-member tagged-error pattern the
// teacher's internal/lib/errors.go used (FFIError{Code,Message}), sized to
// the taxonomy the original Rust service's src/errors.rs enumerated.
package apierr

import (
	"errors"
	"fmt"
	"net/http"
)

// Code is one of the external error "type" tags in the error envelope.
type Code string

const (
	CodeInvalidWordCount      Code = "INVALID_WORD_COUNT"
	CodeInvalidLanguage       Code = "INVALID_LANGUAGE"
	CodeInvalidMnemonic       Code = "INVALID_MNEMONIC"
	CodeInvalidDerivationPath Code = "INVALID_DERIVATION_PATH"
	CodeBadRequest            Code = "BAD_REQUEST"
	CodeCryptoError           Code = "CRYPTO_ERROR"
	CodeInternalError         Code = "INTERNAL_ERROR"
	CodeAuthenticationError   Code = "authentication_error"
)

// Error is a client- or crypto-facing error carrying the taxonomy tag the
// boundary layer maps to an HTTP status and envelope.
type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New builds an *Error with a formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap tags an existing error with a taxonomy code, copying its message.
// The original error is not retained, so errors.Is/As on the result do not
// reach it.
func Wrap(code Code, err error) *Error {
	return &Error{Code: code, Message: err.Error()}
}

// StatusCode maps a taxonomy code to its HTTP status, per the boundary's
// documented contract: 400 for client errors, 401 for auth, 500 otherwise.
func StatusCode(code Code) int {
	switch code {
	case CodeInvalidWordCount, CodeInvalidLanguage, CodeInvalidMnemonic,
		CodeInvalidDerivationPath, CodeBadRequest:
		return http.StatusBadRequest
	case CodeAuthenticationError:
		return http.StatusUnauthorized
	case CodeCryptoError, CodeInternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// As extracts an *Error from err, classifying anything else as
// INTERNAL_ERROR without leaking its message (errors crossing this
// boundary must not echo internal state to the client).
func As(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return &Error{Code: CodeInternalError, Message: "internal error"}
}
