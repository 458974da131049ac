package check

import (
	"bytes"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
)

// capture holds one finished command's separated output streams
// and exit status.
type capture struct {
	stdout string
	stderr string
	code   int
}

func (c capture) stream(name string) string {
	if name == "stdout" {
		return c.stdout
	}
	return c.stderr
}

// runCapture runs cmd to completion with stdout and stderr
// captured separately. A non-zero exit is not an error here; it
// is reported through the capture's code. The returned error is
// a spawn-level fault only.
func runCapture(cmd *exec.Cmd) (capture, error) {
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	c := capture{
		stdout: stdout.String(),
		stderr: stderr.String(),
	}
	if err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			return capture{}, err
		}
		c.code = exitErr.ExitCode()
	}
	return c, nil
}

// cmdDebug renders a command as its quoted argv line. The raw
// %#v of an exec.Cmd would print buffer addresses.
func cmdDebug(cmd *exec.Cmd) string {
	if cmd == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%q", strings.Join(cmd.Args, " "))
}

// StdoutEq runs both commands and checks that their captured
// stdout streams are equal. Both captured streams are returned
// as derived values. A command that cannot be spawned is a
// precondition failure, surfaced in the returned error.
func StdoutEq(
	a, b *exec.Cmd, opts ...Option,
) (string, string, error) {
	return outputEq("StdoutEq", "stdout", a, b, opts)
}

// StderrEq runs both commands and checks that their captured
// stderr streams are equal.
func StderrEq(
	a, b *exec.Cmd, opts ...Option,
) (string, string, error) {
	return outputEq("StderrEq", "stderr", a, b, opts)
}

// StdoutIs runs cmd and checks that its captured stdout equals
// want. The captured stream is returned as the derived value.
func StdoutIs(
	cmd *exec.Cmd, want string, opts ...Option,
) (string, error) {
	return outputIs("StdoutIs", "stdout", cmd, want, opts)
}

// StderrIs runs cmd and checks that its captured stderr equals
// want.
func StderrIs(
	cmd *exec.Cmd, want string, opts ...Option,
) (string, error) {
	return outputIs("StderrIs", "stderr", cmd, want, opts)
}

// StdoutContains runs cmd and checks that its captured stdout
// contains substr. The captured stream is returned as the
// derived value.
func StdoutContains(
	cmd *exec.Cmd, substr string, opts ...Option,
) (string, error) {
	return outputContains(
		"StdoutContains", "stdout", cmd, substr, opts,
	)
}

// StderrContains runs cmd and checks that its captured stderr
// contains substr.
func StderrContains(
	cmd *exec.Cmd, substr string, opts ...Option,
) (string, error) {
	return outputContains(
		"StderrContains", "stderr", cmd, substr, opts,
	)
}

// StdoutMatches runs cmd and checks that re matches somewhere
// in its captured stdout. The captured stream is returned as
// the derived value.
func StdoutMatches(
	re *regexp.Regexp, cmd *exec.Cmd, opts ...Option,
) (string, error) {
	return outputMatches(
		"StdoutMatches", "stdout", re, cmd, opts,
	)
}

// StderrMatches runs cmd and checks that re matches somewhere
// in its captured stderr.
func StderrMatches(
	re *regexp.Regexp, cmd *exec.Cmd, opts ...Option,
) (string, error) {
	return outputMatches(
		"StderrMatches", "stderr", re, cmd, opts,
	)
}

// Success runs cmd and checks that it exits with status zero.
// The diagnostic for a non-zero exit carries the exit code and
// the captured stderr.
func Success(cmd *exec.Cmd, opts ...Option) error {
	l := labelsFor(opts, "cmd")
	c, err := runCapture(cmd)
	if err != nil {
		return spawnFail("Success", "cmd", l[0], cmd, err)
	}
	if c.code == 0 {
		return nil
	}
	return newDiag("Success", "cmd").
		field("cmd label", l[0]).
		field("cmd debug", cmdDebug(cmd)).
		field("exit code", debugOf(c.code)).
		field("stderr", debugOf(c.stderr)).
		fail()
}

// ExitCodeEq runs cmd and checks that its exit code equals
// code. The observed code is returned as the derived value.
func ExitCodeEq(
	cmd *exec.Cmd, code int, opts ...Option,
) (int, error) {
	l := labelsFor(opts, "cmd")
	c, err := runCapture(cmd)
	if err != nil {
		return 0, spawnFail(
			"ExitCodeEq", "cmd", l[0], cmd, err,
		)
	}
	if c.code == code {
		return c.code, nil
	}
	return 0, newDiag("ExitCodeEq", "cmd, code").
		field("cmd label", l[0]).
		field("cmd debug", cmdDebug(cmd)).
		field("exit code", debugOf(c.code)).
		field("code", debugOf(code)).
		fail()
}

func outputEq(
	name, stream string, a, b *exec.Cmd, opts []Option,
) (string, string, error) {
	l := labelsFor(opts, "a", "b")

	ca, err := runCapture(a)
	if err != nil {
		return "", "", newDiag(name, "a, b").
			field("a label", l[0]).
			field("a debug", cmdDebug(a)).
			field("a spawn error", errDebug(err)).
			field("b label", l[1]).
			field("b debug", cmdDebug(b)).
			fail()
	}
	cb, err := runCapture(b)
	if err != nil {
		return "", "", newDiag(name, "a, b").
			field("a label", l[0]).
			field("a debug", cmdDebug(a)).
			field("b label", l[1]).
			field("b debug", cmdDebug(b)).
			field("b spawn error", errDebug(err)).
			fail()
	}

	sa, sb := ca.stream(stream), cb.stream(stream)
	if sa == sb {
		return sa, sb, nil
	}
	return "", "", newDiag(name, "a, b").
		field("a label", l[0]).
		field("a debug", cmdDebug(a)).
		field("a "+stream, debugOf(sa)).
		field("b label", l[1]).
		field("b debug", cmdDebug(b)).
		field("b "+stream, debugOf(sb)).
		fail()
}

func outputIs(
	name, stream string, cmd *exec.Cmd, want string,
	opts []Option,
) (string, error) {
	l := labelsFor(opts, "cmd", "want")
	c, err := runCapture(cmd)
	if err != nil {
		return "", spawnFail(name, "cmd, want", l[0], cmd, err)
	}
	got := c.stream(stream)
	if got == want {
		return got, nil
	}
	return "", newDiag(name, "cmd, want").
		field("cmd label", l[0]).
		field("cmd debug", cmdDebug(cmd)).
		field("cmd "+stream, debugOf(got)).
		field("want label", l[1]).
		field("want debug", debugOf(want)).
		fail()
}

func outputContains(
	name, stream string, cmd *exec.Cmd, substr string,
	opts []Option,
) (string, error) {
	l := labelsFor(opts, "cmd", "substr")
	c, err := runCapture(cmd)
	if err != nil {
		return "", spawnFail(
			name, "cmd, substr", l[0], cmd, err,
		)
	}
	got := c.stream(stream)
	if strings.Contains(got, substr) {
		return got, nil
	}
	return "", newDiag(name, "cmd, substr").
		field("cmd label", l[0]).
		field("cmd debug", cmdDebug(cmd)).
		field("cmd "+stream, debugOf(got)).
		field("substr label", l[1]).
		field("substr debug", debugOf(substr)).
		fail()
}

func outputMatches(
	name, stream string, re *regexp.Regexp, cmd *exec.Cmd,
	opts []Option,
) (string, error) {
	l := labelsFor(opts, "cmd")
	c, err := runCapture(cmd)
	if err != nil {
		return "", spawnFail(name, "re, cmd", l[0], cmd, err)
	}
	got := c.stream(stream)
	if re != nil && re.MatchString(got) {
		return got, nil
	}
	d := newDiag(name, "re, cmd")
	if re == nil {
		d.field("cause", "re is nil")
	} else {
		d.field("re debug", debugOf(re.String()))
	}
	return "", d.
		field("cmd label", l[0]).
		field("cmd debug", cmdDebug(cmd)).
		field("cmd "+stream, debugOf(got)).
		fail()
}

// spawnFail builds the precondition diagnostic for a command
// that could not be run at all; the stream lines that would
// have been captured are omitted.
func spawnFail(
	name, params, label string, cmd *exec.Cmd, err error,
) error {
	return newDiag(name, params).
		field("cmd label", label).
		field("cmd debug", cmdDebug(cmd)).
		field("spawn error", errDebug(err)).
		fail()
}
