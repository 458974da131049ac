package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type node struct {
	Name     string
	Children []node
}

func TestDeepEq(t *testing.T) {
	a := node{Name: "root", Children: []node{{Name: "leaf"}}}
	b := node{Name: "root", Children: []node{{Name: "leaf"}}}

	assert.NoError(t, DeepEq(a, b))
}

func TestDeepEqFailureCarriesDiff(t *testing.T) {
	a := node{Name: "root"}
	b := node{Name: "other"}

	err := DeepEq(a, b)
	require.Error(t, err)
	assert.Contains(
		t, err.Error(), "assertion failed: `DeepEq(a, b)`",
	)
	assert.Contains(t, err.Error(), "diff (-a +b):")
	assert.Contains(t, err.Error(), "root")
	assert.Contains(t, err.Error(), "other")
}

func TestDeepNe(t *testing.T) {
	assert.NoError(
		t, DeepNe(node{Name: "a"}, node{Name: "b"}),
	)
	assert.Error(
		t, DeepNe(node{Name: "a"}, node{Name: "a"}),
	)
}
