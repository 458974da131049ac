package check

import "reflect"

// lengthOf extracts a length from a string, slice, array, map,
// or channel value. The second result is false for anything
// else, including nil.
func lengthOf(v any) (int, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Array,
		reflect.Map, reflect.Chan:
		return rv.Len(), true
	}
	return 0, false
}

// Empty checks that v has length zero.
func Empty(v any, opts ...Option) error {
	n, ok := lengthOf(v)
	if !ok {
		return lengthPreconditionFail("Empty", "v", "v", v, opts)
	}
	if n == 0 {
		return nil
	}
	l := labelsFor(opts, "v")
	return newDiag("Empty", "v").
		input("v", l[0], debugOf(v)).
		field("v len", debugOf(n)).
		fail()
}

// NotEmpty checks that v has a non-zero length.
func NotEmpty(v any, opts ...Option) error {
	n, ok := lengthOf(v)
	if !ok {
		return lengthPreconditionFail(
			"NotEmpty", "v", "v", v, opts,
		)
	}
	if n > 0 {
		return nil
	}
	l := labelsFor(opts, "v")
	return newDiag("NotEmpty", "v").
		input("v", l[0], debugOf(v)).
		fail()
}

// LenEq checks that v has length n. The measured length is
// returned as the derived value. The precondition and comparison
// failures share the `LenEq(v, n)` header.
func LenEq(v any, n int, opts ...Option) (int, error) {
	vn, ok := lengthOf(v)
	if !ok {
		return 0, lengthPreconditionFail(
			"LenEq", "v, n", "v", v, opts,
		)
	}
	if vn == n {
		return vn, nil
	}
	l := labelsFor(opts, "v")
	return 0, newDiag("LenEq", "v, n").
		input("v", l[0], debugOf(v)).
		field("v len", debugOf(vn)).
		field("n", debugOf(n)).
		fail()
}

// LenEqLen checks that a and b have the same length. Both
// measured lengths are returned as derived values.
func LenEqLen(a, b any, opts ...Option) (int, int, error) {
	l := labelsFor(opts, "a", "b")
	an, ok := lengthOf(a)
	if !ok {
		return 0, 0, newDiag("LenEqLen", "a, b").
			input("a", l[0], debugOf(a)).
			field("cause", "a has no length").
			fail()
	}
	bn, ok := lengthOf(b)
	if !ok {
		return 0, 0, newDiag("LenEqLen", "a, b").
			input("b", l[1], debugOf(b)).
			field("cause", "b has no length").
			fail()
	}
	if an == bn {
		return an, bn, nil
	}
	return 0, 0, newDiag("LenEqLen", "a, b").
		input("a", l[0], debugOf(a)).
		field("a len", debugOf(an)).
		input("b", l[1], debugOf(b)).
		field("b len", debugOf(bn)).
		fail()
}

func lengthPreconditionFail(
	name, params, param string, v any, opts []Option,
) error {
	l := labelsFor(opts, param)
	return newDiag(name, params).
		input(param, l[0], debugOf(v)).
		field("cause", param+" has no length").
		fail()
}
