package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetEq(t *testing.T) {
	tests := []struct {
		name   string
		a, b   []int
		passed bool
	}{
		{"same elements", []int{1, 2}, []int{2, 1}, true},
		{"duplicates ignored", []int{1, 1, 2}, []int{2, 2, 1}, true},
		{"disjoint", []int{1}, []int{2}, false},
		{"both empty", nil, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := SetEq(tt.a, tt.b)
			assert.Equal(t, tt.passed, err == nil)
		})
	}
}

func TestSetEqDerivedSets(t *testing.T) {
	setA, setB, err := SetEq([]int{3, 1, 3, 2}, []int{2, 1, 3})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, setA)
	assert.Equal(t, []int{1, 2, 3}, setB)
}

func TestSetRelations(t *testing.T) {
	tests := []struct {
		name   string
		check  func() error
		passed bool
	}{
		{
			"subset holds",
			func() error {
				_, _, err := SetSubset([]int{1}, []int{1, 2})
				return err
			},
			true,
		},
		{
			"subset violated",
			func() error {
				_, _, err := SetSubset([]int{3}, []int{1, 2})
				return err
			},
			false,
		},
		{
			"superset holds",
			func() error {
				_, _, err := SetSuperset([]int{1, 2}, []int{2})
				return err
			},
			true,
		},
		{
			"superset violated",
			func() error {
				_, _, err := SetSuperset([]int{1}, []int{2})
				return err
			},
			false,
		},
		{
			"disjoint holds",
			func() error {
				_, _, err := SetDisjoint([]int{1}, []int{2})
				return err
			},
			true,
		},
		{
			"disjoint violated",
			func() error {
				_, _, err := SetDisjoint([]int{1, 2}, []int{2})
				return err
			},
			false,
		},
		{
			"joint holds",
			func() error {
				_, _, err := SetJoint([]int{1, 2}, []int{2, 3})
				return err
			},
			true,
		},
		{
			"joint violated",
			func() error {
				_, _, err := SetJoint([]int{1}, []int{2})
				return err
			},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.check()
			assert.Equal(t, tt.passed, err == nil)
		})
	}
}

func TestSetFailureDiagnostic(t *testing.T) {
	_, _, err := SetEq([]int{1, 1, 2}, []int{3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), " a set: `[]int{1, 2}`,")
	assert.Contains(t, err.Error(), " b set: `[]int{3}`")
}
