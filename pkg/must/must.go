// Package must provides the panicking entry points of the
// assertions module. Each function wraps its pkg/check
// counterpart: on success it returns the check's derived values
// unchanged, on failure it panics with the diagnostic string as
// the payload. An optional trailing msgAndArgs replaces the
// generated diagnostic entirely, so the panic payload is the
// caller's message alone.
//
// Code that must never abort should call pkg/check directly;
// panicking is strictly this package's job.
package must

import "fmt"

// fail panics when err is non-nil. The panic payload is a plain
// string: the diagnostic, or the formatted custom message when
// one is supplied.
func fail(err error, msgAndArgs []any) {
	if err == nil {
		return
	}
	panic(payload(err, msgAndArgs))
}

func payload(err error, msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return err.Error()
	}
	if format, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			return format
		}
		return fmt.Sprintf(format, msgAndArgs[1:]...)
	}
	return fmt.Sprint(msgAndArgs...)
}
