package check

// ptrDebug renders a pointer deterministically: nil pointers as
// <nil>, everything else as the pointee's debug form with an &
// prefix. Raw %#v of a pointer would print its address.
func ptrDebug[T any](p *T) string {
	if p == nil {
		return "<nil>"
	}
	return "&" + debugOf(*p)
}

// Some checks that p is non-nil. On success the pointee is
// returned as the derived value.
func Some[T any](p *T, opts ...Option) (T, error) {
	if p != nil {
		return *p, nil
	}
	var zero T
	l := labelsFor(opts, "p")
	return zero, newDiag("Some", "p").
		input("p", l[0], "<nil>").
		fail()
}

// None checks that p is nil.
func None[T any](p *T, opts ...Option) error {
	if p == nil {
		return nil
	}
	l := labelsFor(opts, "p")
	return newDiag("None", "p").
		input("p", l[0], ptrDebug(p)).
		fail()
}

// SomeEq checks that two pointers are both non-nil and point at
// equal values. A nil input is a precondition failure whose
// diagnostic omits the inner-value lines.
func SomeEq[T comparable](a, b *T, opts ...Option) error {
	l := labelsFor(opts, "a", "b")

	if a == nil || b == nil {
		return newDiag("SomeEq", "a, b").
			field("a label", l[0]).
			field("a debug", ptrDebug(a)).
			field("b label", l[1]).
			field("b debug", ptrDebug(b)).
			fail()
	}

	if *a == *b {
		return nil
	}

	return newDiag("SomeEq", "a, b").
		field("a label", l[0]).
		field("a debug", ptrDebug(a)).
		field("a inner", debugOf(*a)).
		field("b label", l[1]).
		field("b debug", ptrDebug(b)).
		field("b inner", debugOf(*b)).
		fail()
}
