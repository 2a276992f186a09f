// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/arthur-debert/datesense/pkg/errors"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "invalid_input_error",
			code:    errors.ErrInvalidInput,
			message: "no date strings provided",
			wantStr: "[INVALID_INPUT] no date strings provided",
		},
		{
			name:    "unrecognized_token_error",
			code:    errors.ErrUnrecognizedToken,
			message: "no rule matched",
			wantStr: "[UNRECOGNIZED_TOKEN] no rule matched",
		},
		{
			name:    "ambiguous_format_error",
			code:    errors.ErrAmbiguousFormat,
			message: "no candidate survived",
			wantStr: "[AMBIGUOUS_FORMAT] no candidate survived",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			if err.Code != tt.code {
				t.Errorf("New() code = %v, want %v", err.Code, tt.code)
			}

			if err.Message != tt.message {
				t.Errorf("New() message = %q, want %q", err.Message, tt.message)
			}

			if err.Details == nil {
				t.Error("New() details should be initialized")
			}

			if got := err.Error(); got != tt.wantStr {
				t.Errorf("Error() = %q, want %q", got, tt.wantStr)
			}
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("file unreadable")
	err := errors.Wrap(base, errors.ErrConfigLoad, "loading rule set")

	if err.Wrapped != base {
		t.Error("Wrap() should keep the wrapped error")
	}
	if !stderrors.Is(err, base) {
		t.Error("wrapped error should satisfy errors.Is against the base error")
	}
	want := "[CONFIG_LOAD] loading rule set: file unreadable"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapNil(t *testing.T) {
	if errors.Wrap(nil, errors.ErrInternal, "nothing") != nil {
		t.Error("Wrap(nil) should return nil")
	}
	if errors.Wrapf(nil, errors.ErrInternal, "nothing %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

func TestIsByCode(t *testing.T) {
	err := errors.Newf(errors.ErrUnrecognizedToken, "string %d position %d", 2, 4)

	if !stderrors.Is(err, errors.New(errors.ErrUnrecognizedToken, "")) {
		t.Error("errors.Is should match on code, not message")
	}
	if stderrors.Is(err, errors.New(errors.ErrAmbiguousFormat, "")) {
		t.Error("errors.Is should not match a different code")
	}
}

func TestDetails(t *testing.T) {
	err := errors.New(errors.ErrInconsistentFormat, "segment shapes differ").
		WithDetail("stringIndex", 1).
		WithDetails(map[string]interface{}{"position": 3})

	details := errors.GetErrorDetails(err)
	if details["stringIndex"] != 1 {
		t.Errorf("details[stringIndex] = %v, want 1", details["stringIndex"])
	}
	if details["position"] != 3 {
		t.Errorf("details[position] = %v, want 3", details["position"])
	}
}

func TestGetErrorCode(t *testing.T) {
	if code := errors.GetErrorCode(stderrors.New("plain")); code != errors.ErrUnknown {
		t.Errorf("GetErrorCode(plain) = %v, want %v", code, errors.ErrUnknown)
	}
	err := errors.New(errors.ErrAmbiguousFormat, "tie")
	if code := errors.GetErrorCode(err); code != errors.ErrAmbiguousFormat {
		t.Errorf("GetErrorCode() = %v, want %v", code, errors.ErrAmbiguousFormat)
	}
	if !errors.IsErrorCode(err, errors.ErrAmbiguousFormat) {
		t.Error("IsErrorCode should report true for matching code")
	}
}
