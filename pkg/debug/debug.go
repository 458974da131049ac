// Package debug provides the build-gated variant of pkg/must.
// Checks routed through this package cost nothing unless the
// binary is built with the "debugchecks" tag: the closure given
// to Check is never invoked in a regular build, so the operand
// expressions inside it are never evaluated and none of their
// side effects occur.
//
//	debug.Check(func() error {
//		return check.SetSubset(batch.IDs(), known.IDs())
//	})
//
// Callers must not rely on side effects inside the closure;
// those only happen in debugchecks builds.
package debug

import "fmt"

// Check evaluates the closure only when Enabled, and panics
// with its diagnostic when the closure reports a failure. As in
// pkg/must, a trailing msgAndArgs replaces the generated
// diagnostic as the panic payload.
func Check(f func() error, msgAndArgs ...any) {
	if !Enabled {
		return
	}
	err := f()
	if err == nil {
		return
	}
	if len(msgAndArgs) == 0 {
		panic(err.Error())
	}
	if format, ok := msgAndArgs[0].(string); ok {
		if len(msgAndArgs) == 1 {
			panic(format)
		}
		panic(fmt.Sprintf(format, msgAndArgs[1:]...))
	}
	panic(fmt.Sprint(msgAndArgs...))
}

// Do runs f only when Enabled. It exists for debug-only checks
// that panic on their own, such as calls into pkg/must.
func Do(f func()) {
	if !Enabled {
		return
	}
	f()
}
