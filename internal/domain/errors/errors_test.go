package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	cases := []struct {
		name string
		err  error
	}{
		{"already exists", ErrAlreadyExists},
		{"not found", ErrNotFound},
		{"invalid credentials", ErrInvalidCredentials},
		{"validation", ErrValidation},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if !stdErrors.Is(tc.err, tc.err) {
				t.Fatalf("expected error to match itself: %v", tc.err)
			}
		})
	}
}

func TestWrappedValidationErrorKeepsKind(t *testing.T) {
	wrapped := fmt.Errorf("%w: name is too short", ErrValidation)
	if !stdErrors.Is(wrapped, ErrValidation) {
		t.Fatalf("expected wrapped error to keep validation kind: %v", wrapped)
	}
}
