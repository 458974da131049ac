package check

import (
	gocmp "github.com/google/go-cmp/cmp"
)

// DeepEq checks that two values are deeply equal under go-cmp
// semantics. On failure the diagnostic carries a "diff (-a +b)"
// section. Types with unexported fields require a cmp option
// (e.g. cmpopts.IgnoreUnexported); without one go-cmp itself
// panics, per its documented contract.
func DeepEq(a, b any, opts ...gocmp.Option) error {
	if gocmp.Equal(a, b, opts...) {
		return nil
	}
	return newDiag("DeepEq", "a, b").
		input("a", "a", debugOf(a)).
		input("b", "b", debugOf(b)).
		trailer("diff (-a +b):\n" + gocmp.Diff(a, b, opts...)).
		fail()
}

// DeepNe checks that two values are not deeply equal under
// go-cmp semantics.
func DeepNe(a, b any, opts ...gocmp.Option) error {
	if !gocmp.Equal(a, b, opts...) {
		return nil
	}
	return newDiag("DeepNe", "a, b").
		input("a", "a", debugOf(a)).
		input("b", "b", debugOf(b)).
		fail()
}
