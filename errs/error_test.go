package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"movielobby/errs"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *errs.Error
		expected string
	}{
		{
			name:     "not found error",
			err:      &errs.Error{Code: errs.ENOTFOUND, Message: "Movie does not exist"},
			expected: "application error: code=not_found message=Movie does not exist",
		},
		{
			name:     "forbidden error",
			err:      &errs.Error{Code: errs.EFORBIDDEN, Message: "Forbidden"},
			expected: "application error: code=forbidden message=Forbidden",
		},
		{
			name:     "empty message",
			err:      &errs.Error{Code: errs.EINTERNAL},
			expected: "application error: code=internal message=",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			err:      nil,
			expected: "",
		},
		{
			name:     "application error returns its code",
			err:      &errs.Error{Code: errs.EINVALID, Message: "Malformed credentials"},
			expected: errs.EINVALID,
		},
		{
			name:     "unauthorized error",
			err:      &errs.Error{Code: errs.EUNAUTHORIZED, Message: "Missing auth credentials"},
			expected: errs.EUNAUTHORIZED,
		},
		{
			name:     "misconfigured error",
			err:      &errs.Error{Code: errs.EMISCONFIGURED, Message: "missing key"},
			expected: errs.EMISCONFIGURED,
		},
		{
			name:     "non-application error returns EINTERNAL",
			err:      errors.New("standard error"),
			expected: errs.EINTERNAL,
		},
		{
			name:     "wrapped application error",
			err:      fmt.Errorf("update movie 7: %w", &errs.Error{Code: errs.ENOTFOUND, Message: "Movie does not exist"}),
			expected: errs.ENOTFOUND,
		},
		{
			name:     "joined application error",
			err:      errors.Join(&errs.Error{Code: errs.EFORBIDDEN, Message: "Forbidden"}),
			expected: errs.EFORBIDDEN,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errs.ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "nil error returns empty string",
			err:      nil,
			expected: "",
		},
		{
			name:     "application error returns its message",
			err:      &errs.Error{Code: errs.ENOTFOUND, Message: "Movie does not exist"},
			expected: "Movie does not exist",
		},
		{
			name:     "non-application error returns Internal error",
			err:      errors.New("map corrupted"),
			expected: "Internal error.",
		},
		{
			name:     "wrapped application error",
			err:      fmt.Errorf("authorize: %w", &errs.Error{Code: errs.EUNAUTHORIZED, Message: "Missing auth credentials"}),
			expected: "Missing auth credentials",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errs.ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorf(t *testing.T) {
	err := errs.Errorf(errs.ENOTFOUND, "movie %d not found", 42)

	if err.Code != errs.ENOTFOUND {
		t.Errorf("Errorf().Code = %q, want %q", err.Code, errs.ENOTFOUND)
	}
	if err.Message != "movie 42 not found" {
		t.Errorf("Errorf().Message = %q, want %q", err.Message, "movie 42 not found")
	}
	if want := "application error: code=not_found message=movie 42 not found"; err.Error() != want {
		t.Errorf("Errorf().Error() = %q, want %q", err.Error(), want)
	}
}

func TestErrorCodes(t *testing.T) {
	codes := map[string]string{
		"ECONFLICT":       errs.ECONFLICT,
		"EFORBIDDEN":      errs.EFORBIDDEN,
		"EINTERNAL":       errs.EINTERNAL,
		"EINVALID":        errs.EINVALID,
		"EMISCONFIGURED":  errs.EMISCONFIGURED,
		"ENOTFOUND":       errs.ENOTFOUND,
		"ENOTIMPLEMENTED": errs.ENOTIMPLEMENTED,
		"EUNAUTHORIZED":   errs.EUNAUTHORIZED,
	}

	expected := map[string]string{
		"ECONFLICT":       "conflict",
		"EFORBIDDEN":      "forbidden",
		"EINTERNAL":       "internal",
		"EINVALID":        "invalid",
		"EMISCONFIGURED":  "misconfigured",
		"ENOTFOUND":       "not_found",
		"ENOTIMPLEMENTED": "not_implemented",
		"EUNAUTHORIZED":   "unauthorized",
	}

	for name, code := range codes {
		if code != expected[name] {
			t.Errorf("constant %s = %q, want %q", name, code, expected[name])
		}
	}
}
