package check

import "strings"

// Contains checks that s contains substr.
func Contains(s, substr string, opts ...Option) error {
	if strings.Contains(s, substr) {
		return nil
	}
	return substringFail("Contains", s, substr, opts)
}

// NotContains checks that s does not contain substr.
func NotContains(s, substr string, opts ...Option) error {
	if !strings.Contains(s, substr) {
		return nil
	}
	return substringFail("NotContains", s, substr, opts)
}

// HasPrefix checks that s starts with prefix.
func HasPrefix(s, prefix string, opts ...Option) error {
	if strings.HasPrefix(s, prefix) {
		return nil
	}
	return affixFail("HasPrefix", "prefix", s, prefix, opts)
}

// NotHasPrefix checks that s does not start with prefix.
func NotHasPrefix(s, prefix string, opts ...Option) error {
	if !strings.HasPrefix(s, prefix) {
		return nil
	}
	return affixFail("NotHasPrefix", "prefix", s, prefix, opts)
}

// HasSuffix checks that s ends with suffix.
func HasSuffix(s, suffix string, opts ...Option) error {
	if strings.HasSuffix(s, suffix) {
		return nil
	}
	return affixFail("HasSuffix", "suffix", s, suffix, opts)
}

// NotHasSuffix checks that s does not end with suffix.
func NotHasSuffix(s, suffix string, opts ...Option) error {
	if !strings.HasSuffix(s, suffix) {
		return nil
	}
	return affixFail("NotHasSuffix", "suffix", s, suffix, opts)
}

func substringFail(
	name, s, substr string, opts []Option,
) error {
	l := labelsFor(opts, "s", "substr")
	return newDiag(name, "s, substr").
		input("s", l[0], debugOf(s)).
		input("substr", l[1], debugOf(substr)).
		fail()
}

func affixFail(
	name, param, s, affix string, opts []Option,
) error {
	l := labelsFor(opts, "s", param)
	return newDiag(name, "s, "+param).
		input("s", l[0], debugOf(s)).
		input(param, l[1], debugOf(affix)).
		fail()
}
