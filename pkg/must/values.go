package must

import (
	gocmp "github.com/google/go-cmp/cmp"

	"digital.vasic.assertions/pkg/check"
)

// DeepEq panics unless a and b are deeply equal under go-cmp
// semantics.
func DeepEq(a, b any, opts ...gocmp.Option) {
	fail(check.DeepEq(a, b, opts...), nil)
}

// DeepNe panics unless a and b are not deeply equal under
// go-cmp semantics.
func DeepNe(a, b any, opts ...gocmp.Option) {
	fail(check.DeepNe(a, b, opts...), nil)
}

// ApproxEq panics unless a and b differ by at most 1e-6.
func ApproxEq[T check.Float](a, b T, msgAndArgs ...any) {
	fail(check.ApproxEq(a, b), msgAndArgs)
}

// InDelta panics unless |a - b| <= delta.
func InDelta[T check.Float](a, b, delta T, msgAndArgs ...any) {
	fail(check.InDelta(a, b, delta), msgAndArgs)
}

// InEpsilon panics unless a and b are within a relative epsilon
// of each other.
func InEpsilon[T check.Float](
	a, b, epsilon T, msgAndArgs ...any,
) {
	fail(check.InEpsilon(a, b, epsilon), msgAndArgs)
}

// Ok panics unless err is nil, and returns v on success. It is
// the unwrap form for (value, error) pairs:
//
//	cfg := must.Ok(loadConfig(path))
func Ok[T any](v T, err error) T {
	derived, checkErr := check.Ok(v, err)
	fail(checkErr, nil)
	return derived
}

// Err panics unless err is non-nil, and returns it on success.
func Err(err error, msgAndArgs ...any) error {
	derived, checkErr := check.Err(err)
	fail(checkErr, msgAndArgs)
	return derived
}

// OkEq panics unless both pairs carry no error and their values
// are equal.
func OkEq[T comparable](
	av T, aerr error, bv T, berr error, msgAndArgs ...any,
) {
	fail(check.OkEq(av, aerr, bv, berr), msgAndArgs)
}

// ErrEq panics unless both errors are non-nil and carry the
// same message.
func ErrEq(aerr, berr error, msgAndArgs ...any) {
	fail(check.ErrEq(aerr, berr), msgAndArgs)
}

// ErrIs panics unless errors.Is(err, target) holds.
func ErrIs(err, target error, msgAndArgs ...any) {
	fail(check.ErrIs(err, target), msgAndArgs)
}

// Some panics unless p is non-nil, and returns the pointee on
// success.
func Some[T any](p *T, msgAndArgs ...any) T {
	v, err := check.Some(p)
	fail(err, msgAndArgs)
	return v
}

// None panics unless p is nil.
func None[T any](p *T, msgAndArgs ...any) {
	fail(check.None(p), msgAndArgs)
}

// SomeEq panics unless both pointers are non-nil and point at
// equal values.
func SomeEq[T comparable](a, b *T, msgAndArgs ...any) {
	fail(check.SomeEq(a, b), msgAndArgs)
}

// Ready panics unless a receive from ch completes without
// blocking, and returns the received value on success.
func Ready[T any](ch <-chan T, msgAndArgs ...any) T {
	v, err := check.Ready(ch)
	fail(err, msgAndArgs)
	return v
}

// Pending panics unless a receive from ch would block.
func Pending[T any](ch <-chan T, msgAndArgs ...any) {
	fail(check.Pending(ch), msgAndArgs)
}
