package suite

import "fmt"

// AllPass evaluates all definitions and requires every one to
// pass; the first failure is reported.
func AllPass(
	engine Engine,
	defs []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(defs, values)

	for _, r := range results {
		if !r.Passed {
			return Result{
				Type:   "all_pass",
				Passed: false,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' failed: %s",
					r.Type, r.Target, r.Message,
				),
			}
		}
	}

	return Result{
		Type:   "all_pass",
		Passed: true,
		Message: fmt.Sprintf(
			"all %d assertions passed", len(results),
		),
	}
}

// AnyPass evaluates all definitions and requires at least one
// to pass.
func AnyPass(
	engine Engine,
	defs []Definition,
	values map[string]any,
) Result {
	results := engine.EvaluateAll(defs, values)

	for _, r := range results {
		if r.Passed {
			return Result{
				Type:   "any_pass",
				Passed: true,
				Message: fmt.Sprintf(
					"assertion '%s' on target '%s' passed",
					r.Type, r.Target,
				),
			}
		}
	}

	return Result{
		Type:   "any_pass",
		Passed: false,
		Message: fmt.Sprintf(
			"none of %d assertions passed", len(results),
		),
	}
}

// CompositeAllPass returns an Evaluator that runs a fixed set
// of sub-assertions against the same value and requires all to
// pass.
func CompositeAllPass(
	engine Engine, subDefs []Definition,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		values := map[string]any{}
		for _, def := range subDefs {
			values[def.Target] = value
		}
		r := AllPass(engine, subDefs, values)
		return r.Passed, r.Message
	}
}

// CompositeAnyPass returns an Evaluator that runs a fixed set
// of sub-assertions against the same value and requires at
// least one to pass.
func CompositeAnyPass(
	engine Engine, subDefs []Definition,
) Evaluator {
	return func(_ Definition, value any) (bool, string) {
		values := map[string]any{}
		for _, def := range subDefs {
			values[def.Target] = value
		}
		r := AnyPass(engine, subDefs, values)
		return r.Passed, r.Message
	}
}
