package check

import "errors"

// Ok checks that a (value, error) pair carries no error. On
// success the value is returned as the derived value.
func Ok[T any](v T, err error, opts ...Option) (T, error) {
	if err == nil {
		return v, nil
	}
	var zero T
	l := labelsFor(opts, "v")
	return zero, newDiag("Ok", "v, err").
		field("v label", l[0]).
		field("err debug", errDebug(err)).
		fail()
}

// Err checks that err is non-nil. On success the error is
// returned as the derived value.
func Err(err error, opts ...Option) (error, error) {
	if err != nil {
		return err, nil
	}
	l := labelsFor(opts, "err")
	return nil, newDiag("Err", "err").
		field("err label", l[0]).
		field("err debug", "<nil>").
		fail()
}

// OkEq checks that two (value, error) pairs both carry no error
// and that their values are equal. A pair carrying an error is
// a precondition failure: its diagnostic reports the error and
// omits the inner-value lines entirely.
func OkEq[T comparable](
	av T, aerr error, bv T, berr error, opts ...Option,
) error {
	l := labelsFor(opts, "a", "b")

	if aerr != nil || berr != nil {
		return newDiag("OkEq", "av, aerr, bv, berr").
			field("a label", l[0]).
			field("a error", errDebug(aerr)).
			field("b label", l[1]).
			field("b error", errDebug(berr)).
			fail()
	}

	if av == bv {
		return nil
	}

	return newDiag("OkEq", "av, aerr, bv, berr").
		field("a label", l[0]).
		field("a inner", debugOf(av)).
		field("b label", l[1]).
		field("b inner", debugOf(bv)).
		fail()
}

// ErrEq checks that two errors are both non-nil and carry the
// same message. A nil input is a precondition failure whose
// diagnostic omits the inner-message lines.
func ErrEq(aerr, berr error, opts ...Option) error {
	l := labelsFor(opts, "a", "b")

	if aerr == nil || berr == nil {
		return newDiag("ErrEq", "aerr, berr").
			field("a label", l[0]).
			field("a debug", errDebug(aerr)).
			field("b label", l[1]).
			field("b debug", errDebug(berr)).
			fail()
	}

	if aerr.Error() == berr.Error() {
		return nil
	}

	return newDiag("ErrEq", "aerr, berr").
		field("a label", l[0]).
		field("a debug", errDebug(aerr)).
		field("b label", l[1]).
		field("b debug", errDebug(berr)).
		fail()
}

// ErrIs checks that errors.Is(err, target) holds.
func ErrIs(err, target error, opts ...Option) error {
	if errors.Is(err, target) {
		return nil
	}
	l := labelsFor(opts, "err", "target")
	return newDiag("ErrIs", "err, target").
		field("err label", l[0]).
		field("err debug", errDebug(err)).
		field("target label", l[1]).
		field("target debug", errDebug(target)).
		fail()
}
