package suite

import (
	"fmt"
	"reflect"

	gocmp "github.com/google/go-cmp/cmp"

	"digital.vasic.assertions/pkg/check"
)

// registerDefaults registers all built-in evaluators.
func (e *DefaultEngine) registerDefaults() {
	e.evaluators["eq"] = evaluateEq
	e.evaluators["ne"] = evaluateNe
	e.evaluators["contains"] = evaluateContains
	e.evaluators["not_contains"] = evaluateNotContains
	e.evaluators["has_prefix"] = evaluateHasPrefix
	e.evaluators["has_suffix"] = evaluateHasSuffix
	e.evaluators["matches"] = evaluateMatches
	e.evaluators["empty"] = evaluateEmpty
	e.evaluators["not_empty"] = evaluateNotEmpty
	e.evaluators["min_length"] = evaluateMinLength
	e.evaluators["len_eq"] = evaluateLenEq
	e.evaluators["set_eq"] = evaluateSetEq
	e.evaluators["bag_eq"] = evaluateBagEq
	e.evaluators["some"] = evaluateSome
	e.evaluators["gt"] = evaluateGt
	e.evaluators["ge"] = evaluateGe
	e.evaluators["lt"] = evaluateLt
	e.evaluators["le"] = evaluateLe
}

// evaluateEq checks deep equality between the target value and
// the expected value. Numeric inputs are compared as floats so
// that YAML integers and Go floats agree.
func evaluateEq(def Definition, value any) (bool, string) {
	if eqValues(def.Value, value) {
		return true, "values are equal"
	}
	return false, fmt.Sprintf(
		"expected %v, got %v", def.Value, value,
	)
}

// evaluateNe checks deep inequality between the target value
// and the expected value.
func evaluateNe(def Definition, value any) (bool, string) {
	if !eqValues(def.Value, value) {
		return true, "values differ"
	}
	return false, fmt.Sprintf(
		"both values are %v", value,
	)
}

func eqValues(expected, value any) bool {
	ef, eOK := toFloat64(expected)
	vf, vOK := toFloat64(value)
	if eOK && vOK {
		return check.Eq(ef, vf) == nil
	}
	return gocmp.Equal(expected, value)
}

// evaluateContains checks that a string value contains the
// expected substring.
func evaluateContains(def Definition, value any) (bool, string) {
	s, expected, msg := stringPair(def, value)
	if msg != "" {
		return false, msg
	}
	if check.Contains(s, expected) != nil {
		return false, fmt.Sprintf(
			"does not contain %q", expected,
		)
	}
	return true, fmt.Sprintf("contains %q", expected)
}

// evaluateNotContains checks that a string value does not
// contain the expected substring.
func evaluateNotContains(
	def Definition, value any,
) (bool, string) {
	s, expected, msg := stringPair(def, value)
	if msg != "" {
		return false, msg
	}
	if check.NotContains(s, expected) != nil {
		return false, fmt.Sprintf("contains %q", expected)
	}
	return true, fmt.Sprintf(
		"does not contain %q", expected,
	)
}

// evaluateHasPrefix checks that a string value starts with the
// expected prefix.
func evaluateHasPrefix(
	def Definition, value any,
) (bool, string) {
	s, expected, msg := stringPair(def, value)
	if msg != "" {
		return false, msg
	}
	if check.HasPrefix(s, expected) != nil {
		return false, fmt.Sprintf(
			"does not start with %q", expected,
		)
	}
	return true, fmt.Sprintf("starts with %q", expected)
}

// evaluateHasSuffix checks that a string value ends with the
// expected suffix.
func evaluateHasSuffix(
	def Definition, value any,
) (bool, string) {
	s, expected, msg := stringPair(def, value)
	if msg != "" {
		return false, msg
	}
	if check.HasSuffix(s, expected) != nil {
		return false, fmt.Sprintf(
			"does not end with %q", expected,
		)
	}
	return true, fmt.Sprintf("ends with %q", expected)
}

// evaluateMatches checks that a string value matches the
// expected regular-expression pattern.
func evaluateMatches(def Definition, value any) (bool, string) {
	s, pattern, msg := stringPair(def, value)
	if msg != "" {
		return false, msg
	}
	if _, err := check.MatchesPattern(pattern, s); err != nil {
		return false, fmt.Sprintf(
			"does not match %q", pattern,
		)
	}
	return true, fmt.Sprintf("matches %q", pattern)
}

// evaluateEmpty checks that a value has length zero.
func evaluateEmpty(_ Definition, value any) (bool, string) {
	if check.Empty(value) != nil {
		return false, "value is not empty"
	}
	return true, "value is empty"
}

// evaluateNotEmpty checks that a value has a non-zero length.
func evaluateNotEmpty(_ Definition, value any) (bool, string) {
	if check.NotEmpty(value) != nil {
		return false, "value is empty"
	}
	return true, "value is not empty"
}

// evaluateMinLength checks that a string value meets a minimum
// character length.
func evaluateMinLength(
	def Definition, value any,
) (bool, string) {
	s, ok := value.(string)
	if !ok {
		return false, "value is not a string"
	}
	minLength, ok := toInt(def.Value)
	if !ok {
		return false, "expected value is not a number"
	}
	if check.Ge(len(s), minLength) != nil {
		return false, fmt.Sprintf(
			"length %d < %d", len(s), minLength,
		)
	}
	return true, fmt.Sprintf(
		"length %d >= %d", len(s), minLength,
	)
}

// evaluateLenEq checks that a countable value has exactly the
// expected length.
func evaluateLenEq(def Definition, value any) (bool, string) {
	expected, ok := toInt(def.Value)
	if !ok {
		return false, "expected value is not a number"
	}
	n, err := check.LenEq(value, expected)
	if err != nil {
		return false, fmt.Sprintf(
			"length is not %d", expected,
		)
	}
	return true, fmt.Sprintf("length %d == %d", n, expected)
}

// evaluateSetEq checks that a slice value holds the same set of
// elements as the expected list, ignoring order and
// duplicates. Elements are compared by their string rendering.
func evaluateSetEq(def Definition, value any) (bool, string) {
	got, ok := toStrings(value)
	if !ok {
		return false, "value is not a list"
	}
	want, ok := toStrings(expectedList(def))
	if !ok {
		return false, "expected value is not a list"
	}
	setGot, setWant, err := check.SetEq(got, want)
	if err != nil {
		return false, "sets differ"
	}
	return true, fmt.Sprintf(
		"sets are equal: %v == %v", setGot, setWant,
	)
}

// evaluateBagEq checks that a slice value holds the same
// multiset of elements as the expected list, ignoring order.
// Elements are compared by their string rendering.
func evaluateBagEq(def Definition, value any) (bool, string) {
	got, ok := toStrings(value)
	if !ok {
		return false, "value is not a list"
	}
	want, ok := toStrings(expectedList(def))
	if !ok {
		return false, "expected value is not a list"
	}
	bagGot, bagWant, err := check.BagEq(got, want)
	if err != nil {
		return false, "bags differ"
	}
	return true, fmt.Sprintf(
		"bags are equal: %v == %v", bagGot, bagWant,
	)
}

// evaluateSome checks that a value is present: not nil, and not
// a typed nil pointer, map, slice, channel, or function.
func evaluateSome(_ Definition, value any) (bool, string) {
	if !isPresent(value) {
		return false, "value is nil"
	}
	return true, "value is present"
}

func isPresent(value any) bool {
	if value == nil {
		return false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice,
		reflect.Chan, reflect.Func:
		return !rv.IsNil()
	}
	return true
}

// evaluateGt checks that a numeric value is strictly greater
// than the expected value.
func evaluateGt(def Definition, value any) (bool, string) {
	return numericCompare(
		def, value, "gt", func(v, e float64) error {
			return check.Gt(v, e)
		},
	)
}

// evaluateGe checks that a numeric value is greater than or
// equal to the expected value.
func evaluateGe(def Definition, value any) (bool, string) {
	return numericCompare(
		def, value, "ge", func(v, e float64) error {
			return check.Ge(v, e)
		},
	)
}

// evaluateLt checks that a numeric value is strictly less than
// the expected value.
func evaluateLt(def Definition, value any) (bool, string) {
	return numericCompare(
		def, value, "lt", func(v, e float64) error {
			return check.Lt(v, e)
		},
	)
}

// evaluateLe checks that a numeric value is less than or equal
// to the expected value.
func evaluateLe(def Definition, value any) (bool, string) {
	return numericCompare(
		def, value, "le", func(v, e float64) error {
			return check.Le(v, e)
		},
	)
}

func numericCompare(
	def Definition, value any, op string,
	cmp func(v, e float64) error,
) (bool, string) {
	v, ok := toFloat64(value)
	if !ok {
		return false, "value is not a number"
	}
	e, ok := toFloat64(def.Value)
	if !ok {
		return false, "expected value is not a number"
	}
	if cmp(v, e) != nil {
		return false, fmt.Sprintf(
			"%v %s %v does not hold", v, op, e,
		)
	}
	return true, fmt.Sprintf("%v %s %v", v, op, e)
}

// --- helpers ---

// stringPair extracts the target string and expected string
// from a definition, returning a failure message when either is
// not a string.
func stringPair(
	def Definition, value any,
) (s, expected, msg string) {
	s, ok := value.(string)
	if !ok {
		return "", "", "value is not a string"
	}
	expected, ok = def.Value.(string)
	if !ok {
		return "", "", "expected value is not a string"
	}
	return s, expected, ""
}

// expectedList resolves the expected list of a multi-value
// definition from Values, falling back to Value.
func expectedList(def Definition) any {
	if def.Values != nil {
		return def.Values
	}
	return def.Value
}

// toInt converts an any value to int.
func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

// toFloat64 converts an any value to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// toStrings converts a list value to its element-wise string
// rendering.
func toStrings(v any) ([]string, bool) {
	switch items := v.(type) {
	case []string:
		return items, true
	case []any:
		out := make([]string, 0, len(items))
		for _, item := range items {
			out = append(out, fmt.Sprintf("%v", item))
		}
		return out, true
	}
	return nil, false
}
