package must

import (
	"os/exec"
	"regexp"

	"digital.vasic.assertions/pkg/check"
)

// StdoutEq panics unless both commands produce equal stdout
// streams. Both captured streams are returned on success.
func StdoutEq(
	a, b *exec.Cmd, msgAndArgs ...any,
) (string, string) {
	sa, sb, err := check.StdoutEq(a, b)
	fail(err, msgAndArgs)
	return sa, sb
}

// StderrEq panics unless both commands produce equal stderr
// streams.
func StderrEq(
	a, b *exec.Cmd, msgAndArgs ...any,
) (string, string) {
	sa, sb, err := check.StderrEq(a, b)
	fail(err, msgAndArgs)
	return sa, sb
}

// StdoutIs panics unless cmd's stdout equals want. The captured
// stream is returned on success.
func StdoutIs(
	cmd *exec.Cmd, want string, msgAndArgs ...any,
) string {
	got, err := check.StdoutIs(cmd, want)
	fail(err, msgAndArgs)
	return got
}

// StderrIs panics unless cmd's stderr equals want.
func StderrIs(
	cmd *exec.Cmd, want string, msgAndArgs ...any,
) string {
	got, err := check.StderrIs(cmd, want)
	fail(err, msgAndArgs)
	return got
}

// StdoutContains panics unless cmd's stdout contains substr.
func StdoutContains(
	cmd *exec.Cmd, substr string, msgAndArgs ...any,
) string {
	got, err := check.StdoutContains(cmd, substr)
	fail(err, msgAndArgs)
	return got
}

// StderrContains panics unless cmd's stderr contains substr.
func StderrContains(
	cmd *exec.Cmd, substr string, msgAndArgs ...any,
) string {
	got, err := check.StderrContains(cmd, substr)
	fail(err, msgAndArgs)
	return got
}

// StdoutMatches panics unless re matches cmd's stdout.
func StdoutMatches(
	re *regexp.Regexp, cmd *exec.Cmd, msgAndArgs ...any,
) string {
	got, err := check.StdoutMatches(re, cmd)
	fail(err, msgAndArgs)
	return got
}

// StderrMatches panics unless re matches cmd's stderr.
func StderrMatches(
	re *regexp.Regexp, cmd *exec.Cmd, msgAndArgs ...any,
) string {
	got, err := check.StderrMatches(re, cmd)
	fail(err, msgAndArgs)
	return got
}

// Success panics unless cmd exits with status zero.
func Success(cmd *exec.Cmd, msgAndArgs ...any) {
	fail(check.Success(cmd), msgAndArgs)
}

// ExitCodeEq panics unless cmd exits with the given code. The
// observed code is returned on success.
func ExitCodeEq(
	cmd *exec.Cmd, code int, msgAndArgs ...any,
) int {
	got, err := check.ExitCodeEq(cmd, code)
	fail(err, msgAndArgs)
	return got
}

// FileEq panics unless both paths hold equal contents. Both
// contents are returned on success.
func FileEq(
	aPath, bPath string, msgAndArgs ...any,
) (string, string) {
	a, b, err := check.FileEq(aPath, bPath)
	fail(err, msgAndArgs)
	return a, b
}

// FileIs panics unless the file at path holds exactly want.
func FileIs(path, want string, msgAndArgs ...any) string {
	got, err := check.FileIs(path, want)
	fail(err, msgAndArgs)
	return got
}

// FileContains panics unless the file at path contains substr.
func FileContains(
	path, substr string, msgAndArgs ...any,
) string {
	got, err := check.FileContains(path, substr)
	fail(err, msgAndArgs)
	return got
}

// FileMatches panics unless re matches the file's content.
func FileMatches(
	re *regexp.Regexp, path string, msgAndArgs ...any,
) string {
	got, err := check.FileMatches(re, path)
	fail(err, msgAndArgs)
	return got
}
