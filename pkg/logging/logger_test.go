package logging

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		name  string
		level LogLevel
		want  string
	}{
		{"debug", LevelDebug, "DEBUG"},
		{"info", LevelInfo, "INFO"},
		{"warn", LevelWarn, "WARN"},
		{"error", LevelError, "ERROR"},
		{"unknown", LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestFieldHelpers(t *testing.T) {
	assert.Equal(
		t, Field{Key: "k", Value: "v"}, StringField("k", "v"),
	)
	assert.Equal(
		t, Field{Key: "n", Value: 3}, IntField("n", 3),
	)
	assert.Equal(
		t, Field{Key: "ok", Value: true}, BoolField("ok", true),
	)
	assert.Equal(
		t, Field{Key: "k", Value: 1.5}, LogField("k", 1.5),
	)
}

func TestErrorField(t *testing.T) {
	f := ErrorField(errors.New("boom"))
	assert.Equal(t, "error", f.Key)
	assert.Equal(t, "boom", f.Value)

	assert.Equal(t, "<nil>", ErrorField(nil).Value)
}

func TestNullLoggerDoesNothing(t *testing.T) {
	var l Logger = NullLogger{}
	l.Info("msg")
	l.Warn("msg")
	l.Error("msg")
	l.Debug("msg")
	assert.Equal(t, NullLogger{}, l.WithFields(IntField("n", 1)))
	assert.NoError(t, l.Close())
}
