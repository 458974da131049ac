package check

import (
	"cmp"
	"fmt"
	"maps"
)

// bagOf projects a slice into its value-to-count mapping.
func bagOf[S ~[]E, E cmp.Ordered](s S) map[E]int {
	bag := make(map[E]int, len(s))
	for _, v := range s {
		bag[v]++
	}
	return bag
}

// bagDebug renders a bag deterministically; fmt sorts map keys.
func bagDebug[E cmp.Ordered](bag map[E]int) string {
	return fmt.Sprintf("%v", bag)
}

// BagEq checks that two slices hold the same multiset of
// elements, ignoring order. On success both bags are returned
// as derived values.
func BagEq[S ~[]E, E cmp.Ordered](
	a, b S, opts ...Option,
) (map[E]int, map[E]int, error) {
	bagA, bagB := bagOf(a), bagOf(b)
	if maps.Equal(bagA, bagB) {
		return bagA, bagB, nil
	}
	return nil, nil, bagFail("BagEq", a, b, bagA, bagB, opts)
}

// BagNe checks that two slices hold different multisets of
// elements.
func BagNe[S ~[]E, E cmp.Ordered](
	a, b S, opts ...Option,
) (map[E]int, map[E]int, error) {
	bagA, bagB := bagOf(a), bagOf(b)
	if !maps.Equal(bagA, bagB) {
		return bagA, bagB, nil
	}
	return nil, nil, bagFail("BagNe", a, b, bagA, bagB, opts)
}

// BagSubset checks that every element of a occurs in b at least
// as many times as it occurs in a.
func BagSubset[S ~[]E, E cmp.Ordered](
	a, b S, opts ...Option,
) (map[E]int, map[E]int, error) {
	bagA, bagB := bagOf(a), bagOf(b)
	for v, n := range bagA {
		if bagB[v] < n {
			return nil, nil, bagFail(
				"BagSubset", a, b, bagA, bagB, opts,
			)
		}
	}
	return bagA, bagB, nil
}

// BagSuperset checks that every element of b occurs in a at
// least as many times as it occurs in b.
func BagSuperset[S ~[]E, E cmp.Ordered](
	a, b S, opts ...Option,
) (map[E]int, map[E]int, error) {
	bagA, bagB := bagOf(a), bagOf(b)
	for v, n := range bagB {
		if bagA[v] < n {
			return nil, nil, bagFail(
				"BagSuperset", a, b, bagA, bagB, opts,
			)
		}
	}
	return bagA, bagB, nil
}

func bagFail[S ~[]E, E cmp.Ordered](
	name string, a, b S, bagA, bagB map[E]int, opts []Option,
) error {
	l := labelsFor(opts, "a", "b")
	return newDiag(name, "a, b").
		input("a", l[0], debugOf(a)).
		field("a bag", bagDebug(bagA)).
		input("b", l[1], debugOf(b)).
		field("b bag", bagDebug(bagB)).
		fail()
}
