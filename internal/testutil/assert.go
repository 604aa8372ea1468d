// Package testutil holds assertions shared by the package tests.
package testutil

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Equal fails the test with a readable diff when got differs from want.
func Equal[T any](t testing.TB, name string, got, want T, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

// SameElements compares two slices ignoring order.
func SameElements[T comparable](t testing.TB, name string, got, want []T, less func(a, b T) bool) {
	t.Helper()
	Equal(t, name, got, want, cmpopts.SortSlices(less), cmpopts.EquateEmpty())
}
