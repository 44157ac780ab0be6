// Package assert implements a small set of test assertions.
package assert

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
)

// Equal asserts that two values are equal.
func Equal[T comparable](t testing.TB, got, want T, msg string, arg ...any) {
	t.Helper()
	if got != want {
		if msg == "" {
			msg = "expected values to match"
		}
		msg = fmt.Sprintf(msg, arg...)
		t.Fatalf("%s:\nwant: %#v\n got: %#v", msg, want, got)
	}
}

// DeepEqual asserts that two values are deeply equal.
func DeepEqual[T any](t testing.TB, got, want T, msg string, arg ...any) {
	t.Helper()
	if !reflect.DeepEqual(got, want) {
		if msg == "" {
			msg = "expected values to be deeply equal"
		}
		msg = fmt.Sprintf(msg, arg...)
		t.Fatalf("%s:\nwant: %#v\n got: %#v", msg, want, got)
	}
}

// True asserts that a condition holds.
func True(t testing.TB, cond bool, msg string, arg ...any) {
	t.Helper()
	if !cond {
		t.Fatalf(msg, arg...)
	}
}

// NilError asserts that an error is nil.
func NilError(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("expected nil error, got %q (%T)", err, err)
	}
}

// Error asserts that an error is not nil and matches the expected error via
// errors.Is, or has the same message.
func Error(t testing.TB, got, expected error) {
	t.Helper()
	if got == expected || errors.Is(got, expected) {
		return
	}
	if got != nil && expected != nil && got.Error() == expected.Error() {
		return
	}
	t.Fatalf("expected error %q, got %v", expected, got)
}

// Contains asserts that needle is a substring of s.
func Contains(t testing.TB, s string, needle string, description string, arg ...any) {
	t.Helper()
	if !strings.Contains(s, needle) {
		t.Fatalf("expected string %q in %s %q", needle, fmt.Sprintf(description, arg...), s)
	}
}
