package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestAppErrorUnwrapsToSentinel(t *testing.T) {
	err := Newf(ErrParse, 2, "line %d is bad", 7)
	if !errors.Is(err, ErrParse) {
		t.Errorf("errors.Is(err, ErrParse) = false")
	}
	if got := err.Error(); got != "parse error: line 7 is bad" {
		t.Errorf("Error() = %q", got)
	}
}

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{nil, 0},
		{New(ErrParse, 2, "x"), 2},
		{New(ErrMissingTotal, 3, "x"), 3},
		{New(ErrInsufficientSources, 4, "x"), 4},
		{New(ErrFormatMismatch, 5, "x"), 5},
		{New(ErrValueUsage, 6, "x"), 6},
		{New(ErrStoreUnavailable, 7, "x"), 7},
		{errors.New("anything else"), 1},
		// Wrapping must not lose the code.
		{fmt.Errorf("reading input: %w", New(ErrMissingTotal, 3, "x")), 3},
		// Bare sentinels map without an AppError wrapper.
		{ErrFormatMismatch, 5},
	}
	for _, tc := range cases {
		if got := ExitCode(tc.err); got != tc.want {
			t.Errorf("ExitCode(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestClass(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{New(ErrParse, 2, "x"), "ParseError"},
		{New(ErrMissingTotal, 3, "x"), "MissingTotalError"},
		{New(ErrInsufficientSources, 4, "x"), "InsufficientSourcesError"},
		{New(ErrFormatMismatch, 5, "x"), "FormatMismatchError"},
		{New(ErrValueUsage, 6, "x"), "ValueUsageError"},
		{New(ErrStoreUnavailable, 7, "x"), "StoreUnavailableError"},
		{errors.New("anything else"), "InternalError"},
	}
	for _, tc := range cases {
		if got := Class(tc.err); got != tc.want {
			t.Errorf("Class(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
