package suite

import (
	"fmt"
	"sync"

	"digital.vasic.assertions/pkg/logging"
)

// Engine defines the interface for assertion evaluation
// engines.
type Engine interface {
	// Evaluate checks a single definition against the given
	// value.
	Evaluate(def Definition, value any) Result

	// EvaluateAll checks multiple definitions against a map of
	// named values. Each definition's Target field is used as
	// the key into the values map.
	EvaluateAll(
		defs []Definition,
		values map[string]any,
	) []Result

	// Register adds a custom evaluator for the given assertion
	// type. Returns an error if the type is already registered.
	Register(assertionType string, evaluator Evaluator) error
}

// DefaultEngine is the standard Engine implementation. It is
// safe for concurrent use.
type DefaultEngine struct {
	mu         sync.RWMutex
	evaluators map[string]Evaluator
	logger     logging.Logger
}

// EngineOption configures a DefaultEngine.
type EngineOption func(*DefaultEngine)

// WithLogger attaches a structured logger; each evaluation is
// logged at debug level and each failure at warn level.
func WithLogger(l logging.Logger) EngineOption {
	return func(e *DefaultEngine) {
		e.logger = l
	}
}

// NewEngine creates a DefaultEngine with all built-in
// evaluators pre-registered.
func NewEngine(opts ...EngineOption) *DefaultEngine {
	e := &DefaultEngine{
		evaluators: make(map[string]Evaluator),
		logger:     logging.NullLogger{},
	}
	for _, opt := range opts {
		opt(e)
	}
	e.registerDefaults()
	return e
}

// Register adds a custom evaluator for the given assertion
// type. Returns an error if the type is already registered.
func (e *DefaultEngine) Register(
	assertionType string,
	evaluator Evaluator,
) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.evaluators[assertionType]; exists {
		return fmt.Errorf(
			"assertion type already registered: %s",
			assertionType,
		)
	}

	e.evaluators[assertionType] = evaluator
	return nil
}

// HasEvaluator returns true if the given assertion type has a
// registered evaluator.
func (e *DefaultEngine) HasEvaluator(
	assertionType string,
) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, exists := e.evaluators[assertionType]
	return exists
}

// Evaluate runs a single definition against the provided value.
func (e *DefaultEngine) Evaluate(
	def Definition, value any,
) Result {
	e.mu.RLock()
	evaluator, exists := e.evaluators[def.Type]
	e.mu.RUnlock()

	if !exists {
		return Result{
			Type:   def.Type,
			Target: def.Target,
			Passed: false,
			Message: fmt.Sprintf(
				"unknown assertion type: %s", def.Type,
			),
		}
	}

	passed, message := evaluator(def, value)

	e.logger.Debug(
		"assertion evaluated",
		logging.StringField("type", def.Type),
		logging.StringField("target", def.Target),
		logging.BoolField("passed", passed),
	)
	if !passed {
		e.logger.Warn(
			"assertion failed",
			logging.StringField("type", def.Type),
			logging.StringField("target", def.Target),
			logging.StringField("message", message),
		)
	}

	return Result{
		Type:     def.Type,
		Target:   def.Target,
		Expected: def.Value,
		Actual:   value,
		Passed:   passed,
		Message:  message,
	}
}

// EvaluateAll runs multiple definitions against a map of named
// values. Each definition's Target field is used as the key
// into the values map. A missing target fails the assertion.
func (e *DefaultEngine) EvaluateAll(
	defs []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(defs))

	for _, def := range defs {
		value, exists := values[def.Target]
		if !exists {
			results = append(results, Result{
				Type:   def.Type,
				Target: def.Target,
				Passed: false,
				Message: fmt.Sprintf(
					"target not found: %s", def.Target,
				),
			})
			continue
		}

		results = append(results, e.Evaluate(def, value))
	}

	return results
}
