package must

import (
	"regexp"

	"digital.vasic.assertions/pkg/check"
)

// Contains panics unless s contains substr.
func Contains(s, substr string, msgAndArgs ...any) {
	fail(check.Contains(s, substr), msgAndArgs)
}

// NotContains panics unless s does not contain substr.
func NotContains(s, substr string, msgAndArgs ...any) {
	fail(check.NotContains(s, substr), msgAndArgs)
}

// HasPrefix panics unless s starts with prefix.
func HasPrefix(s, prefix string, msgAndArgs ...any) {
	fail(check.HasPrefix(s, prefix), msgAndArgs)
}

// NotHasPrefix panics unless s does not start with prefix.
func NotHasPrefix(s, prefix string, msgAndArgs ...any) {
	fail(check.NotHasPrefix(s, prefix), msgAndArgs)
}

// HasSuffix panics unless s ends with suffix.
func HasSuffix(s, suffix string, msgAndArgs ...any) {
	fail(check.HasSuffix(s, suffix), msgAndArgs)
}

// NotHasSuffix panics unless s does not end with suffix.
func NotHasSuffix(s, suffix string, msgAndArgs ...any) {
	fail(check.NotHasSuffix(s, suffix), msgAndArgs)
}

// Matches panics unless re matches somewhere in s. The first
// matched substring is returned on success.
func Matches(
	re *regexp.Regexp, s string, msgAndArgs ...any,
) string {
	matched, err := check.Matches(re, s)
	fail(err, msgAndArgs)
	return matched
}

// NotMatches panics unless re does not match anywhere in s.
func NotMatches(
	re *regexp.Regexp, s string, msgAndArgs ...any,
) {
	fail(check.NotMatches(re, s), msgAndArgs)
}

// MatchesPattern panics unless pattern compiles and matches
// somewhere in s. The first matched substring is returned on
// success.
func MatchesPattern(
	pattern, s string, msgAndArgs ...any,
) string {
	matched, err := check.MatchesPattern(pattern, s)
	fail(err, msgAndArgs)
	return matched
}
