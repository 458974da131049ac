package check

import (
	"os/exec"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func printfCmd(arg string) *exec.Cmd {
	return exec.Command("printf", "%s", arg)
}

func stderrCmd(t *testing.T, arg string) *exec.Cmd {
	t.Helper()
	return exec.Command(
		"sh", "-c", "printf '%s' "+arg+" 1>&2",
	)
}

func TestStdoutEq(t *testing.T) {
	a, b, err := StdoutEq(printfCmd("hello"), printfCmd("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", a)
	assert.Equal(t, "hello", b)
}

func TestStdoutEqFailure(t *testing.T) {
	_, _, err := StdoutEq(printfCmd("hello"), printfCmd("zzz"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), " a stdout: `\"hello\"`,")
	assert.Contains(t, err.Error(), " b stdout: `\"zzz\"`")
}

func TestStderrEq(t *testing.T) {
	a, b, err := StderrEq(
		stderrCmd(t, "hello"), stderrCmd(t, "hello"),
	)
	require.NoError(t, err)
	assert.Equal(t, "hello", a)
	assert.Equal(t, "hello", b)

	_, _, err = StderrEq(
		stderrCmd(t, "hello"), stderrCmd(t, "zzz"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hello")
	assert.Contains(t, err.Error(), "zzz")
}

func TestStdoutIs(t *testing.T) {
	got, err := StdoutIs(printfCmd("hi"), "hi")
	require.NoError(t, err)
	assert.Equal(t, "hi", got)

	_, err = StdoutIs(printfCmd("hi"), "bye")
	assert.Error(t, err)
}

func TestStdoutContains(t *testing.T) {
	got, err := StdoutContains(printfCmd("hello world"), "lo wo")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	_, err = StdoutContains(printfCmd("hello"), "xyz")
	assert.Error(t, err)
}

func TestStdoutMatches(t *testing.T) {
	re := regexp.MustCompile(`w\w+d`)

	got, err := StdoutMatches(re, printfCmd("hello world"))
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)

	_, err = StdoutMatches(re, printfCmd("hello"))
	assert.Error(t, err)
}

func TestSpawnFailureIsPrecondition(t *testing.T) {
	missing := exec.Command("definitely-not-a-binary-xyz")

	err := Success(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), " spawn error: `")

	_, _, err = StdoutEq(
		exec.Command("definitely-not-a-binary-xyz"),
		printfCmd("x"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), " a spawn error: `")
	// The right command's capture lines are omitted when the
	// left one never ran.
	assert.NotContains(t, err.Error(), " b stdout:")
}

func TestSuccess(t *testing.T) {
	assert.NoError(t, Success(exec.Command("true")))

	err := Success(exec.Command("false"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), " exit code: `1`,")
}

func TestExitCodeEq(t *testing.T) {
	code, err := ExitCodeEq(exec.Command("false"), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, code)

	_, err = ExitCodeEq(exec.Command("true"), 3)
	assert.Error(t, err)
}
