package check

import "slices"

// SliceContains checks that slice s holds the element x.
func SliceContains[S ~[]E, E comparable](
	s S, x E, opts ...Option,
) error {
	if slices.Contains(s, x) {
		return nil
	}
	l := labelsFor(opts, "s", "x")
	return newDiag("SliceContains", "s, x").
		input("s", l[0], debugOf(s)).
		input("x", l[1], debugOf(x)).
		fail()
}

// SliceNotContains checks that slice s does not hold the
// element x.
func SliceNotContains[S ~[]E, E comparable](
	s S, x E, opts ...Option,
) error {
	if !slices.Contains(s, x) {
		return nil
	}
	l := labelsFor(opts, "s", "x")
	return newDiag("SliceNotContains", "s, x").
		input("s", l[0], debugOf(s)).
		input("x", l[1], debugOf(x)).
		fail()
}

// ContainsKey checks that map m holds the key k.
func ContainsKey[M ~map[K]V, K comparable, V any](
	m M, k K, opts ...Option,
) error {
	if _, ok := m[k]; ok {
		return nil
	}
	l := labelsFor(opts, "m", "k")
	return newDiag("ContainsKey", "m, k").
		input("m", l[0], debugOf(m)).
		input("k", l[1], debugOf(k)).
		fail()
}

// NotContainsKey checks that map m does not hold the key k.
func NotContainsKey[M ~map[K]V, K comparable, V any](
	m M, k K, opts ...Option,
) error {
	if _, ok := m[k]; !ok {
		return nil
	}
	l := labelsFor(opts, "m", "k")
	return newDiag("NotContainsKey", "m, k").
		input("m", l[0], debugOf(m)).
		input("k", l[1], debugOf(k)).
		fail()
}
