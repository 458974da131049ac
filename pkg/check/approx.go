package check

import "math"

// Float constrains the floating-point check inputs.
type Float interface {
	~float32 | ~float64
}

// approxTolerance is the fixed tolerance used by ApproxEq.
const approxTolerance = 1e-6

// ApproxEq checks that two floating-point values differ by at
// most 1e-6. Use InDelta or InEpsilon for an explicit
// tolerance.
func ApproxEq[T Float](a, b T, opts ...Option) error {
	diff := math.Abs(float64(a) - float64(b))
	if diff <= approxTolerance {
		return nil
	}
	l := labelsFor(opts, "a", "b")
	return newDiag("ApproxEq", "a, b").
		input("a", l[0], debugOf(a)).
		input("b", l[1], debugOf(b)).
		field("|a - b|", debugOf(diff)).
		field("tolerance", debugOf(approxTolerance)).
		fail()
}

// InDelta checks that |a - b| <= delta.
func InDelta[T Float](a, b, delta T, opts ...Option) error {
	diff := math.Abs(float64(a) - float64(b))
	if diff <= float64(delta) {
		return nil
	}
	l := labelsFor(opts, "a", "b")
	return newDiag("InDelta", "a, b, delta").
		input("a", l[0], debugOf(a)).
		input("b", l[1], debugOf(b)).
		field("delta", debugOf(delta)).
		field("|a - b|", debugOf(diff)).
		fail()
}

// InEpsilon checks that a and b are within a relative epsilon
// of each other: |a - b| <= epsilon * min(|a|, |b|).
func InEpsilon[T Float](a, b, epsilon T, opts ...Option) error {
	diff := math.Abs(float64(a) - float64(b))
	bound := float64(epsilon) * math.Min(
		math.Abs(float64(a)), math.Abs(float64(b)),
	)
	if diff <= bound {
		return nil
	}
	l := labelsFor(opts, "a", "b")
	return newDiag("InEpsilon", "a, b, epsilon").
		input("a", l[0], debugOf(a)).
		input("b", l[1], debugOf(b)).
		field("epsilon", debugOf(epsilon)).
		field("|a - b|", debugOf(diff)).
		field("epsilon * min(|a|, |b|)", debugOf(bound)).
		fail()
}
