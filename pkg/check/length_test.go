package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmpty(t *testing.T) {
	tests := []struct {
		name   string
		v      any
		passed bool
	}{
		{"empty string", "", true},
		{"non-empty string", "x", false},
		{"empty slice", []int{}, true},
		{"nil slice", []int(nil), true},
		{"non-empty slice", []int{1}, false},
		{"empty map", map[string]int{}, true},
		{"non-empty map", map[string]int{"k": 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Empty(tt.v)
			assert.Equal(t, tt.passed, err == nil)
		})
	}
}

func TestEmptyPrecondition(t *testing.T) {
	err := Empty(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), " cause: `v has no length`")

	err = Empty(nil)
	assert.Error(t, err)
}

func TestNotEmpty(t *testing.T) {
	assert.NoError(t, NotEmpty("x"))
	assert.Error(t, NotEmpty(""))
	assert.Error(t, NotEmpty(42))
}

func TestLenEq(t *testing.T) {
	n, err := LenEq([]int{1, 2, 3}, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = LenEq("ab", 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), " v len: `2`,")
	assert.Contains(t, err.Error(), " n: `3`")
}

func TestLenEqPreconditionHeader(t *testing.T) {
	_, err := LenEq(42, 3)
	require.Error(t, err)
	assert.Contains(
		t, err.Error(), "assertion failed: `LenEq(v, n)`",
	)
	assert.Contains(t, err.Error(), " cause: `v has no length`")
}

func TestLenEqLen(t *testing.T) {
	an, bn, err := LenEqLen("abc", []int{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, 3, an)
	assert.Equal(t, 3, bn)

	_, _, err = LenEqLen("ab", []int{1, 2, 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), " a len: `2`,")
	assert.Contains(t, err.Error(), " b len: `3`")
}

func TestLenEqLenPrecondition(t *testing.T) {
	_, _, err := LenEqLen(42, []int{1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), " cause: `a has no length`")

	_, _, err = LenEqLen([]int{1}, 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), " cause: `b has no length`")
}
