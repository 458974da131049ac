package must

import (
	"cmp"

	"digital.vasic.assertions/pkg/check"
)

// Eq panics unless a and b are equal.
func Eq[T comparable](a, b T, msgAndArgs ...any) {
	fail(check.Eq(a, b), msgAndArgs)
}

// Ne panics unless a and b are not equal.
func Ne[T comparable](a, b T, msgAndArgs ...any) {
	fail(check.Ne(a, b), msgAndArgs)
}

// Lt panics unless a is strictly less than b.
func Lt[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	fail(check.Lt(a, b), msgAndArgs)
}

// Le panics unless a is less than or equal to b.
func Le[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	fail(check.Le(a, b), msgAndArgs)
}

// Gt panics unless a is strictly greater than b.
func Gt[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	fail(check.Gt(a, b), msgAndArgs)
}

// Ge panics unless a is greater than or equal to b.
func Ge[T cmp.Ordered](a, b T, msgAndArgs ...any) {
	fail(check.Ge(a, b), msgAndArgs)
}
