package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeItemNotFound, "item not found: potion_of_beer")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeItemNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeItemNotFound, err.Code)
	}
	if err.Message != "item not found: potion_of_beer" {
		t.Errorf("unexpected message %q", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("open pc/1.8/items.json: file does not exist")
	err := Wrap(ErrCodeResourceNotFound, "failed to read items", cause)

	if err.Code != ErrCodeResourceNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeResourceNotFound, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("unexpected end of JSON input")
	ctx := map[string]any{
		"platform": "pc",
		"version":  "1.8",
	}

	err := WrapWithContext(ErrCodeMalformedData, "invalid recipes", cause, ctx)

	if err.Code != ErrCodeMalformedData {
		t.Errorf("expected code %s, got %s", ErrCodeMalformedData, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["platform"] != "pc" {
		t.Errorf("expected platform to be pc")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeUnknownPlatform, "unknown platform: xbox"),
			expected: "[UNKNOWN_PLATFORM] unknown platform: xbox",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestCodeOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorCode
	}{
		{"nil", nil, ""},
		{"plain error", errors.New("boom"), ""},
		{"structured", New(ErrCodeUnknownVersion, "x"), ErrCodeUnknownVersion},
		{"wrapped with fmt", fmt.Errorf("loading: %w", New(ErrCodeUnsupportedVersion, "x")), ErrCodeUnsupportedVersion},
		{"outermost wins", Wrap(ErrCodeInternal, "outer", New(ErrCodeMalformedData, "inner")), ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CodeOf(tt.err); got != tt.want {
				t.Errorf("CodeOf() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("ctx: %w", New(ErrCodeRecipeNotFound, "no recipe"))
	if !IsCode(err, ErrCodeRecipeNotFound) {
		t.Error("expected IsCode to match through fmt wrapping")
	}
	if IsCode(err, ErrCodeItemNotFound) {
		t.Error("expected IsCode to reject a different code")
	}
	if IsCode(nil, "") {
		t.Error("nil error should never match")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeTimeout,
		ErrCodeInternal,
		ErrCodeInvalidRequest,
		ErrCodeUnavailable,
		ErrCodeUnknownPlatform,
		ErrCodeUnknownVersion,
		ErrCodeUnsupportedVersion,
		ErrCodeResourceNotFound,
		ErrCodeMalformedData,
		ErrCodeItemNotFound,
		ErrCodeRecipeNotFound,
	}

	seen := make(map[ErrorCode]bool, len(codes))
	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
		if seen[code] {
			t.Errorf("duplicate error code: %v", code)
		}
		seen[code] = true
	}
}
