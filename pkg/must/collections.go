package must

import (
	"cmp"

	"digital.vasic.assertions/pkg/check"
)

// BagEq panics unless a and b hold the same multiset of
// elements. Both bags are returned on success.
func BagEq[S ~[]E, E cmp.Ordered](
	a, b S, msgAndArgs ...any,
) (map[E]int, map[E]int) {
	bagA, bagB, err := check.BagEq(a, b)
	fail(err, msgAndArgs)
	return bagA, bagB
}

// BagNe panics unless a and b hold different multisets.
func BagNe[S ~[]E, E cmp.Ordered](
	a, b S, msgAndArgs ...any,
) (map[E]int, map[E]int) {
	bagA, bagB, err := check.BagNe(a, b)
	fail(err, msgAndArgs)
	return bagA, bagB
}

// BagSubset panics unless a is a sub-bag of b.
func BagSubset[S ~[]E, E cmp.Ordered](
	a, b S, msgAndArgs ...any,
) (map[E]int, map[E]int) {
	bagA, bagB, err := check.BagSubset(a, b)
	fail(err, msgAndArgs)
	return bagA, bagB
}

// BagSuperset panics unless a is a super-bag of b.
func BagSuperset[S ~[]E, E cmp.Ordered](
	a, b S, msgAndArgs ...any,
) (map[E]int, map[E]int) {
	bagA, bagB, err := check.BagSuperset(a, b)
	fail(err, msgAndArgs)
	return bagA, bagB
}

// SetEq panics unless a and b hold the same set of elements.
// Both ordered sets are returned on success.
func SetEq[S ~[]E, E cmp.Ordered](
	a, b S, msgAndArgs ...any,
) ([]E, []E) {
	setA, setB, err := check.SetEq(a, b)
	fail(err, msgAndArgs)
	return setA, setB
}

// SetNe panics unless a and b hold different sets.
func SetNe[S ~[]E, E cmp.Ordered](
	a, b S, msgAndArgs ...any,
) ([]E, []E) {
	setA, setB, err := check.SetNe(a, b)
	fail(err, msgAndArgs)
	return setA, setB
}

// SetSubset panics unless every element of a is in b.
func SetSubset[S ~[]E, E cmp.Ordered](
	a, b S, msgAndArgs ...any,
) ([]E, []E) {
	setA, setB, err := check.SetSubset(a, b)
	fail(err, msgAndArgs)
	return setA, setB
}

// SetSuperset panics unless every element of b is in a.
func SetSuperset[S ~[]E, E cmp.Ordered](
	a, b S, msgAndArgs ...any,
) ([]E, []E) {
	setA, setB, err := check.SetSuperset(a, b)
	fail(err, msgAndArgs)
	return setA, setB
}

// SetDisjoint panics unless a and b share no elements.
func SetDisjoint[S ~[]E, E cmp.Ordered](
	a, b S, msgAndArgs ...any,
) ([]E, []E) {
	setA, setB, err := check.SetDisjoint(a, b)
	fail(err, msgAndArgs)
	return setA, setB
}

// SetJoint panics unless a and b share at least one element.
func SetJoint[S ~[]E, E cmp.Ordered](
	a, b S, msgAndArgs ...any,
) ([]E, []E) {
	setA, setB, err := check.SetJoint(a, b)
	fail(err, msgAndArgs)
	return setA, setB
}

// SliceContains panics unless slice s holds the element x.
func SliceContains[S ~[]E, E comparable](
	s S, x E, msgAndArgs ...any,
) {
	fail(check.SliceContains(s, x), msgAndArgs)
}

// SliceNotContains panics unless slice s does not hold the
// element x.
func SliceNotContains[S ~[]E, E comparable](
	s S, x E, msgAndArgs ...any,
) {
	fail(check.SliceNotContains(s, x), msgAndArgs)
}

// ContainsKey panics unless map m holds the key k.
func ContainsKey[M ~map[K]V, K comparable, V any](
	m M, k K, msgAndArgs ...any,
) {
	fail(check.ContainsKey(m, k), msgAndArgs)
}

// NotContainsKey panics unless map m does not hold the key k.
func NotContainsKey[M ~map[K]V, K comparable, V any](
	m M, k K, msgAndArgs ...any,
) {
	fail(check.NotContainsKey(m, k), msgAndArgs)
}

// Empty panics unless v has length zero.
func Empty(v any, msgAndArgs ...any) {
	fail(check.Empty(v), msgAndArgs)
}

// NotEmpty panics unless v has a non-zero length.
func NotEmpty(v any, msgAndArgs ...any) {
	fail(check.NotEmpty(v), msgAndArgs)
}

// LenEq panics unless v has length n. The measured length is
// returned on success.
func LenEq(v any, n int, msgAndArgs ...any) int {
	vn, err := check.LenEq(v, n)
	fail(err, msgAndArgs)
	return vn
}

// LenEqLen panics unless a and b have the same length. Both
// measured lengths are returned on success.
func LenEqLen(a, b any, msgAndArgs ...any) (int, int) {
	an, bn, err := check.LenEqLen(a, b)
	fail(err, msgAndArgs)
	return an, bn
}
