// Package suite provides a data-driven front end over the
// pkg/check families: assertions are declared as definitions
// (in code, JSON, or YAML), evaluated by a registry engine
// against named target values, and aggregated into a summary.
// Suites never panic; each evaluation yields a Result.
package suite

// Definition describes a single assertion to evaluate against
// a named target value.
type Definition struct {
	// Type is the evaluator type (e.g., "contains", "eq",
	// "bag_eq").
	Type string `json:"type" yaml:"type"`

	// Target is the name of the value to check.
	Target string `json:"target" yaml:"target"`

	// Value is the expected value for single-value assertions.
	Value any `json:"value,omitempty" yaml:"value,omitempty"`

	// Values holds expected values for multi-value assertions
	// (e.g., "set_eq").
	Values []any `json:"values,omitempty" yaml:"values,omitempty"`

	// Message is a human-readable description shown on
	// failure.
	Message string `json:"message" yaml:"message"`
}

// Result captures the outcome of evaluating one definition.
type Result struct {
	// Type is the assertion type that was evaluated.
	Type string `json:"type"`

	// Target is the name of the value checked.
	Target string `json:"target"`

	// Expected is the value the assertion expected.
	Expected any `json:"expected"`

	// Actual is the value that was observed.
	Actual any `json:"actual"`

	// Passed indicates whether the assertion succeeded.
	Passed bool `json:"passed"`

	// Message is a human-readable description of the outcome.
	Message string `json:"message"`
}

// Evaluator is a function that evaluates a single assertion
// type against a concrete value. It returns whether the
// assertion passed and a human-readable explanation.
type Evaluator func(def Definition, value any) (bool, string)
