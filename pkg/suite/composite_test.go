package suite

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func compositeDefs() []Definition {
	return []Definition{
		{Type: "contains", Target: "out", Value: "a"},
		{Type: "contains", Target: "out", Value: "b"},
	}
}

func TestAllPass(t *testing.T) {
	engine := NewEngine()
	values := map[string]any{"out": "ab"}

	r := AllPass(engine, compositeDefs(), values)
	assert.True(t, r.Passed)

	values["out"] = "a only"
	r = AllPass(engine, compositeDefs(), values)
	assert.False(t, r.Passed)
	assert.Contains(t, r.Message, "failed")
}

func TestAnyPass(t *testing.T) {
	engine := NewEngine()

	r := AnyPass(
		engine, compositeDefs(), map[string]any{"out": "a only"},
	)
	assert.True(t, r.Passed)

	r = AnyPass(
		engine, compositeDefs(), map[string]any{"out": "zzz"},
	)
	assert.False(t, r.Passed)
}

func TestCompositeEvaluators(t *testing.T) {
	engine := NewEngine()

	all := CompositeAllPass(engine, compositeDefs())
	ok, _ := all(Definition{}, "ab")
	assert.True(t, ok)
	ok, _ = all(Definition{}, "a only")
	assert.False(t, ok)

	anyOf := CompositeAnyPass(engine, compositeDefs())
	ok, _ = anyOf(Definition{}, "b only")
	assert.True(t, ok)
	ok, _ = anyOf(Definition{}, "zzz")
	assert.False(t, ok)
}

func TestRegisteredComposite(t *testing.T) {
	engine := NewEngine()

	err := engine.Register(
		"contains_all_ab",
		CompositeAllPass(engine, compositeDefs()),
	)
	assert.NoError(t, err)

	result := engine.Evaluate(
		Definition{Type: "contains_all_ab", Target: "out"},
		"ab",
	)
	assert.True(t, result.Passed)
}
