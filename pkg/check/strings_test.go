package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContains(t *testing.T) {
	tests := []struct {
		name      string
		s, substr string
		passed    bool
	}{
		{"found", "hello world", "world", true},
		{"not found", "hello world", "xyz", false},
		{"empty substr", "hello", "", true},
		{"case sensitive", "Hello", "hello", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Contains(tt.s, tt.substr)
			assert.Equal(t, tt.passed, err == nil)
		})
	}
}

func TestNotContains(t *testing.T) {
	assert.NoError(t, NotContains("hello", "xyz"))
	assert.Error(t, NotContains("hello", "ell"))
}

func TestAffixes(t *testing.T) {
	tests := []struct {
		name   string
		check  func() error
		passed bool
	}{
		{"prefix holds", func() error { return HasPrefix("hello", "he") }, true},
		{"prefix missing", func() error { return HasPrefix("hello", "lo") }, false},
		{"not prefix holds", func() error { return NotHasPrefix("hello", "lo") }, true},
		{"not prefix violated", func() error { return NotHasPrefix("hello", "he") }, false},
		{"suffix holds", func() error { return HasSuffix("hello", "lo") }, true},
		{"suffix missing", func() error { return HasSuffix("hello", "he") }, false},
		{"not suffix holds", func() error { return NotHasSuffix("hello", "he") }, true},
		{"not suffix violated", func() error { return NotHasSuffix("hello", "lo") }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			assert.Equal(t, tt.passed, err == nil)
		})
	}
}

func TestContainsDiagnosticQuotesStrings(t *testing.T) {
	err := Contains("hello", "xyz")
	require.Error(t, err)
	assert.Contains(t, err.Error(), " s debug: `\"hello\"`,")
	assert.Contains(t, err.Error(), " substr debug: `\"xyz\"`")
}
