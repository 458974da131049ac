package check

import (
	"os"
	"regexp"
	"strings"
)

// FileEq reads both paths and checks that their contents are
// equal. Both contents are returned as derived values. An
// unreadable path is a precondition failure whose diagnostic
// omits the content lines.
func FileEq(
	aPath, bPath string, opts ...Option,
) (string, string, error) {
	l := labelsFor(opts, "aPath", "bPath")

	aData, err := os.ReadFile(aPath)
	if err != nil {
		return "", "", readFail(
			"FileEq", "aPath, bPath", "aPath", l[0], aPath, err,
		)
	}
	bData, err := os.ReadFile(bPath)
	if err != nil {
		return "", "", readFail(
			"FileEq", "aPath, bPath", "bPath", l[1], bPath, err,
		)
	}

	a, b := string(aData), string(bData)
	if a == b {
		return a, b, nil
	}
	return "", "", newDiag("FileEq", "aPath, bPath").
		field("aPath label", l[0]).
		field("aPath debug", debugOf(aPath)).
		field("a content", debugOf(a)).
		field("bPath label", l[1]).
		field("bPath debug", debugOf(bPath)).
		field("b content", debugOf(b)).
		fail()
}

// FileIs reads path and checks that its content equals want.
// The content is returned as the derived value.
func FileIs(
	path, want string, opts ...Option,
) (string, error) {
	l := labelsFor(opts, "path", "want")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", readFail(
			"FileIs", "path, want", "path", l[0], path, err,
		)
	}

	got := string(data)
	if got == want {
		return got, nil
	}
	return "", newDiag("FileIs", "path, want").
		field("path label", l[0]).
		field("path debug", debugOf(path)).
		field("content", debugOf(got)).
		field("want label", l[1]).
		field("want debug", debugOf(want)).
		fail()
}

// FileContains reads path and checks that its content contains
// substr. The content is returned as the derived value.
func FileContains(
	path, substr string, opts ...Option,
) (string, error) {
	l := labelsFor(opts, "path", "substr")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", readFail(
			"FileContains", "path, substr", "path",
			l[0], path, err,
		)
	}

	got := string(data)
	if strings.Contains(got, substr) {
		return got, nil
	}
	return "", newDiag("FileContains", "path, substr").
		field("path label", l[0]).
		field("path debug", debugOf(path)).
		field("content", debugOf(got)).
		field("substr label", l[1]).
		field("substr debug", debugOf(substr)).
		fail()
}

// FileMatches reads path and checks that re matches somewhere
// in its content. The content is returned as the derived value.
func FileMatches(
	re *regexp.Regexp, path string, opts ...Option,
) (string, error) {
	l := labelsFor(opts, "path")

	data, err := os.ReadFile(path)
	if err != nil {
		return "", readFail(
			"FileMatches", "re, path", "path", l[0], path, err,
		)
	}

	got := string(data)
	if re != nil && re.MatchString(got) {
		return got, nil
	}

	d := newDiag("FileMatches", "re, path")
	if re == nil {
		d.field("cause", "re is nil")
	} else {
		d.field("re debug", debugOf(re.String()))
	}
	return "", d.
		field("path label", l[0]).
		field("path debug", debugOf(path)).
		field("content", debugOf(got)).
		fail()
}

func readFail(
	name, params, param, label, path string, err error,
) error {
	return newDiag(name, params).
		field(param+" label", label).
		field(param+" debug", debugOf(path)).
		field("read error", errDebug(err)).
		fail()
}
