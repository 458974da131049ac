// Package check provides the evaluation core of the assertions
// module. Every check receives already-evaluated operands,
// applies one comparison predicate, and returns nil on success
// or a *Failure whose Error value is the complete formatted
// diagnostic. Checks never panic and perform no I/O of their
// own; the panicking entry points live in pkg/must.
package check

// Failure is the error returned by every check whose predicate
// does not hold. The diagnostic is assembled once, at failure
// time, and is byte-for-byte deterministic for fixed inputs.
type Failure struct {
	// Diagnostic is the formatted failure message.
	Diagnostic string
}

// Error returns the diagnostic.
func (f *Failure) Error() string { return f.Diagnostic }

// Option customizes diagnostic rendering for a single check
// invocation.
type Option func(*options)

type options struct {
	labels []string
}

// WithLabels overrides the source labels shown in a failure
// diagnostic, in the order of the check's inputs. Inputs
// without an override keep their formal parameter name.
//
//	check.Eq(got, want, check.WithLabels("got", "want"))
func WithLabels(labels ...string) Option {
	return func(o *options) {
		o.labels = labels
	}
}

// labelsFor resolves the effective labels for a check's inputs.
// Defaults are the formal parameter names.
func labelsFor(opts []Option, defaults ...string) []string {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	resolved := make([]string, len(defaults))
	copy(resolved, defaults)
	for i, l := range o.labels {
		if i >= len(resolved) {
			break
		}
		if l != "" {
			resolved[i] = l
		}
	}
	return resolved
}
