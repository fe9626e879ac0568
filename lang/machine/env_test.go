package machine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kranzio/myscheme/lang/machine"
)

func TestExtendFind(t *testing.T) {
	env := machine.Empty()
	_, ok := machine.Find("x", env)
	assert.False(t, ok)

	env = machine.Extend("x", machine.Integer(1), env)
	v, ok := machine.Find("x", env)
	assert.True(t, ok)
	assert.Equal(t, machine.Integer(1), v)
}

func TestExtendShadows(t *testing.T) {
	env := machine.Extend("x", machine.Integer(1), machine.Empty())
	env = machine.Extend("x", machine.Integer(2), env)

	v, ok := machine.Find("x", env)
	assert.True(t, ok)
	assert.Equal(t, machine.Integer(2), v, "most recently extended frame wins")
}

func TestExtendDoesNotMutateParent(t *testing.T) {
	base := machine.Extend("x", machine.Integer(1), machine.Empty())
	_ = machine.Extend("y", machine.Integer(2), base)

	_, ok := machine.Find("y", base)
	assert.False(t, ok, "extending a child must not leak into the parent chain")
}

func TestModifyIsVisibleThroughAlias(t *testing.T) {
	env := machine.Extend("x", machine.Null, machine.Empty())
	alias := env // simulates a Closure capturing this exact chain

	ok := machine.Modify("x", machine.Integer(42), env)
	assert.True(t, ok)

	v, ok := machine.Find("x", alias)
	assert.True(t, ok)
	assert.Equal(t, machine.Integer(42), v, "Modify must be visible through every alias of the mutated cell")
}

func TestModifyUnknownName(t *testing.T) {
	env := machine.Extend("x", machine.Integer(1), machine.Empty())
	ok := machine.Modify("never-bound", machine.Integer(2), env)
	assert.False(t, ok)
}
