package check

import (
	"cmp"
	"slices"
)

// setOf projects a slice into a deduplicated ordered set.
func setOf[S ~[]E, E cmp.Ordered](s S) []E {
	set := slices.Clone([]E(s))
	slices.Sort(set)
	return slices.Compact(set)
}

// SetEq checks that two slices hold the same set of elements,
// ignoring order and duplicates. On success both ordered sets
// are returned as derived values.
func SetEq[S ~[]E, E cmp.Ordered](
	a, b S, opts ...Option,
) ([]E, []E, error) {
	setA, setB := setOf(a), setOf(b)
	if slices.Equal(setA, setB) {
		return setA, setB, nil
	}
	return nil, nil, setFail("SetEq", a, b, setA, setB, opts)
}

// SetNe checks that two slices hold different sets of elements.
func SetNe[S ~[]E, E cmp.Ordered](
	a, b S, opts ...Option,
) ([]E, []E, error) {
	setA, setB := setOf(a), setOf(b)
	if !slices.Equal(setA, setB) {
		return setA, setB, nil
	}
	return nil, nil, setFail("SetNe", a, b, setA, setB, opts)
}

// SetSubset checks that every element of a is also an element
// of b.
func SetSubset[S ~[]E, E cmp.Ordered](
	a, b S, opts ...Option,
) ([]E, []E, error) {
	setA, setB := setOf(a), setOf(b)
	for _, v := range setA {
		if _, found := slices.BinarySearch(setB, v); !found {
			return nil, nil, setFail(
				"SetSubset", a, b, setA, setB, opts,
			)
		}
	}
	return setA, setB, nil
}

// SetSuperset checks that every element of b is also an element
// of a.
func SetSuperset[S ~[]E, E cmp.Ordered](
	a, b S, opts ...Option,
) ([]E, []E, error) {
	setA, setB := setOf(a), setOf(b)
	for _, v := range setB {
		if _, found := slices.BinarySearch(setA, v); !found {
			return nil, nil, setFail(
				"SetSuperset", a, b, setA, setB, opts,
			)
		}
	}
	return setA, setB, nil
}

// SetDisjoint checks that a and b share no elements.
func SetDisjoint[S ~[]E, E cmp.Ordered](
	a, b S, opts ...Option,
) ([]E, []E, error) {
	setA, setB := setOf(a), setOf(b)
	for _, v := range setA {
		if _, found := slices.BinarySearch(setB, v); found {
			return nil, nil, setFail(
				"SetDisjoint", a, b, setA, setB, opts,
			)
		}
	}
	return setA, setB, nil
}

// SetJoint checks that a and b share at least one element.
func SetJoint[S ~[]E, E cmp.Ordered](
	a, b S, opts ...Option,
) ([]E, []E, error) {
	setA, setB := setOf(a), setOf(b)
	for _, v := range setA {
		if _, found := slices.BinarySearch(setB, v); found {
			return setA, setB, nil
		}
	}
	return nil, nil, setFail("SetJoint", a, b, setA, setB, opts)
}

func setFail[S ~[]E, E cmp.Ordered](
	name string, a, b S, setA, setB []E, opts []Option,
) error {
	l := labelsFor(opts, "a", "b")
	return newDiag(name, "a, b").
		input("a", l[0], debugOf(a)).
		field("a set", debugOf(setA)).
		input("b", l[1], debugOf(b)).
		field("b set", debugOf(setB)).
		fail()
}
