package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestConsole(verbose bool) (*ConsoleLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &ConsoleLogger{
		output:  &buf,
		verbose: verbose,
		fields:  make(map[string]any),
	}, &buf
}

func TestConsoleLoggerLevels(t *testing.T) {
	l, buf := newTestConsole(false)

	l.Info("hello")
	assert.Contains(t, buf.String(), "INFO")
	assert.Contains(t, buf.String(), "hello")

	l.Warn("careful")
	assert.Contains(t, buf.String(), "WARN")

	l.Error("broken")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestConsoleLoggerDebugGatedByVerbose(t *testing.T) {
	quiet, quietBuf := newTestConsole(false)
	quiet.Debug("hidden")
	assert.Empty(t, quietBuf.String())

	verbose, verboseBuf := newTestConsole(true)
	verbose.Debug("shown")
	assert.Contains(t, verboseBuf.String(), "shown")
}

func TestConsoleLoggerFields(t *testing.T) {
	l, buf := newTestConsole(false)

	l.Info("run", StringField("suite", "smoke"), IntField("n", 3))
	out := buf.String()
	assert.Contains(t, out, "suite=smoke")
	assert.Contains(t, out, "n=3")
}

func TestConsoleLoggerDefaultFieldOrder(t *testing.T) {
	l, buf := newTestConsole(false)

	derived := l.WithFields(
		StringField("suite", "smoke"),
		StringField("target", "stdout"),
		IntField("attempt", 1),
	)

	ordered := "attempt=1, suite=smoke, target=stdout"
	for i := 0; i < 5; i++ {
		buf.Reset()
		derived.Info("evaluated")
		assert.Contains(t, buf.String(), ordered)
	}
}

func TestConsoleLoggerWithFields(t *testing.T) {
	l, buf := newTestConsole(false)

	derived := l.WithFields(StringField("target", "stdout"))
	derived.Info("evaluated")
	assert.Contains(t, buf.String(), "target=stdout")

	require.NoError(t, derived.Close())
}
