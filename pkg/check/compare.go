package check

import "cmp"

// Eq checks that two comparable values are equal.
func Eq[T comparable](a, b T, opts ...Option) error {
	if a == b {
		return nil
	}
	l := labelsFor(opts, "a", "b")
	return newDiag("Eq", "a, b").
		input("a", l[0], debugOf(a)).
		input("b", l[1], debugOf(b)).
		fail()
}

// Ne checks that two comparable values are not equal.
func Ne[T comparable](a, b T, opts ...Option) error {
	if a != b {
		return nil
	}
	l := labelsFor(opts, "a", "b")
	return newDiag("Ne", "a, b").
		input("a", l[0], debugOf(a)).
		input("b", l[1], debugOf(b)).
		fail()
}

// Lt checks that a is strictly less than b.
func Lt[T cmp.Ordered](a, b T, opts ...Option) error {
	if a < b {
		return nil
	}
	return orderedFail("Lt", a, b, opts)
}

// Le checks that a is less than or equal to b.
func Le[T cmp.Ordered](a, b T, opts ...Option) error {
	if a <= b {
		return nil
	}
	return orderedFail("Le", a, b, opts)
}

// Gt checks that a is strictly greater than b.
func Gt[T cmp.Ordered](a, b T, opts ...Option) error {
	if a > b {
		return nil
	}
	return orderedFail("Gt", a, b, opts)
}

// Ge checks that a is greater than or equal to b.
func Ge[T cmp.Ordered](a, b T, opts ...Option) error {
	if a >= b {
		return nil
	}
	return orderedFail("Ge", a, b, opts)
}

func orderedFail[T cmp.Ordered](
	name string, a, b T, opts []Option,
) error {
	l := labelsFor(opts, "a", "b")
	return newDiag(name, "a, b").
		input("a", l[0], debugOf(a)).
		input("b", l[1], debugOf(b)).
		fail()
}
