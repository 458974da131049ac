package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceContains(t *testing.T) {
	tests := []struct {
		name   string
		s      []string
		x      string
		passed bool
	}{
		{"present", []string{"a", "b"}, "b", true},
		{"absent", []string{"a", "b"}, "c", false},
		{"empty slice", nil, "a", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := SliceContains(tt.s, tt.x)
			assert.Equal(t, tt.passed, err == nil)
		})
	}
}

func TestSliceNotContains(t *testing.T) {
	assert.NoError(t, SliceNotContains([]int{1, 2}, 3))
	assert.Error(t, SliceNotContains([]int{1, 2}, 2))
}

func TestContainsKey(t *testing.T) {
	m := map[string]int{"a": 1}

	assert.NoError(t, ContainsKey(m, "a"))
	assert.Error(t, ContainsKey(m, "b"))

	assert.NoError(t, NotContainsKey(m, "b"))
	assert.Error(t, NotContainsKey(m, "a"))
}
