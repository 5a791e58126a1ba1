package apierr

import (
	"errors"
	"net/http"
	"testing"
)

func TestStatusCodeMapping(t *testing.T) {
	cases := map[Code]int{
		CodeInvalidWordCount:      http.StatusBadRequest,
		CodeInvalidLanguage:       http.StatusBadRequest,
		CodeInvalidMnemonic:       http.StatusBadRequest,
		CodeInvalidDerivationPath: http.StatusBadRequest,
		CodeBadRequest:            http.StatusBadRequest,
		CodeAuthenticationError:   http.StatusUnauthorized,
		CodeCryptoError:           http.StatusInternalServerError,
		CodeInternalError:         http.StatusInternalServerError,
	}
	for code, want := range cases {
		if got := StatusCode(code); got != want {
			t.Errorf("StatusCode(%s) = %d, want %d", code, got, want)
		}
	}
}

func TestNewFormatsMessage(t *testing.T) {
	err := New(CodeBadRequest, "word count %d invalid", 13)
	if err.Code != CodeBadRequest {
		t.Fatalf("Code = %v, want %v", err.Code, CodeBadRequest)
	}
	if err.Error() != "word count 13 invalid" {
		t.Fatalf("Error() = %q", err.Error())
	}
}

func TestWrapPreservesCode(t *testing.T) {
	base := errors.New("boom")
	wrapped := Wrap(CodeCryptoError, base)
	if wrapped.Code != CodeCryptoError {
		t.Fatalf("Code = %v, want %v", wrapped.Code, CodeCryptoError)
	}
	if wrapped.Error() != "boom" {
		t.Fatalf("Error() = %q, want %q", wrapped.Error(), "boom")
	}
}

func TestAsExtractsTypedError(t *testing.T) {
	original := New(CodeInvalidMnemonic, "bad phrase")
	got := As(original)
	if got != original {
		t.Fatalf("As() did not return the original *Error")
	}
}

func TestAsClassifiesUnknownErrors(t *testing.T) {
	got := As(errors.New("some internal failure with secrets"))
	if got.Code != CodeInternalError {
		t.Fatalf("Code = %v, want %v", got.Code, CodeInternalError)
	}
	if got.Message != "internal error" {
		t.Fatalf("Message = %q, want generic message that doesn't leak internals", got.Message)
	}
}
