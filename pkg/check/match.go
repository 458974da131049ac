package check

import "regexp"

// Matches checks that re matches somewhere in s. On success the
// first matched substring is returned as the derived value.
func Matches(
	re *regexp.Regexp, s string, opts ...Option,
) (string, error) {
	if re == nil {
		return "", newDiag("Matches", "re, s").
			input("s", matchLabel(opts), debugOf(s)).
			field("cause", "re is nil").
			fail()
	}

	if loc := re.FindStringIndex(s); loc != nil {
		return s[loc[0]:loc[1]], nil
	}

	return "", newDiag("Matches", "re, s").
		input("re", "re", debugOf(re.String())).
		input("s", matchLabel(opts), debugOf(s)).
		fail()
}

// NotMatches checks that re does not match anywhere in s.
func NotMatches(
	re *regexp.Regexp, s string, opts ...Option,
) error {
	if re == nil {
		return newDiag("NotMatches", "re, s").
			input("s", matchLabel(opts), debugOf(s)).
			field("cause", "re is nil").
			fail()
	}

	if !re.MatchString(s) {
		return nil
	}

	return newDiag("NotMatches", "re, s").
		input("re", "re", debugOf(re.String())).
		input("s", matchLabel(opts), debugOf(s)).
		fail()
}

// MatchesPattern compiles pattern and checks that it matches
// somewhere in s. A pattern that fails to compile is a
// precondition failure, surfaced in the returned error rather
// than propagated.
func MatchesPattern(
	pattern, s string, opts ...Option,
) (string, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", newDiag("MatchesPattern", "pattern, s").
			input("pattern", "pattern", debugOf(pattern)).
			field("compile error", errDebug(err)).
			fail()
	}

	if loc := re.FindStringIndex(s); loc != nil {
		return s[loc[0]:loc[1]], nil
	}

	return "", newDiag("MatchesPattern", "pattern, s").
		input("pattern", "pattern", debugOf(pattern)).
		input("s", matchLabel(opts), debugOf(s)).
		fail()
}

// matchLabel resolves the label for the subject string of the
// match families. The matcher keeps its formal name.
func matchLabel(opts []Option) string {
	return labelsFor(opts, "s")[0]
}
