package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riftlang/rift/value"
)

func TestDeclareRejectsRedeclarationInSameFrame(t *testing.T) {
	f := NewRoot()
	assert.True(t, f.Declare("x", value.Int(1), false))
	assert.False(t, f.Declare("x", value.Int(2), false))
	assert.False(t, f.Declare("x", value.Int(2), true))
}

func TestDeclareAllowsShadowingInChildFrame(t *testing.T) {
	parent := NewRoot()
	parent.Declare("x", value.Int(1), false)
	child := NewChild(parent, "<scope>")
	assert.True(t, child.Declare("x", value.Int(2), false))

	v, _, _, ok := child.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Int(2), v)

	pv, _, _, ok := parent.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Int(1), pv)
}

func TestLookupWalksParentChain(t *testing.T) {
	root := NewRoot()
	root.Declare("g", value.Str("global"), false)
	child := NewChild(root, "<scope>")
	grandchild := NewChild(child, "<scope>")

	v, _, owner, ok := grandchild.Lookup("g")
	require.True(t, ok)
	assert.Equal(t, value.Str("global"), v)
	assert.Same(t, root, owner)
}

func TestReassignFailsOnConst(t *testing.T) {
	f := NewRoot()
	f.Declare("c", value.Int(1), true)
	ok, failedBecauseConst := f.Reassign("c", value.Int(2))
	assert.False(t, ok)
	assert.True(t, failedBecauseConst)
}

func TestReassignMissingBindingFails(t *testing.T) {
	f := NewRoot()
	ok, failedBecauseConst := f.Reassign("missing", value.Int(1))
	assert.False(t, ok)
	assert.False(t, failedBecauseConst)
}

func TestReassignWritesThroughToOwningFrame(t *testing.T) {
	root := NewRoot()
	root.Declare("x", value.Int(1), false)
	child := NewChild(root, "<scope>")
	ok, _ := child.Reassign("x", value.Int(42))
	assert.True(t, ok)

	v, _, _, _ := root.Lookup("x")
	assert.Equal(t, value.Int(42), v)
}

func TestForceSetOverwritesExistingBindingKind(t *testing.T) {
	f := NewRoot()
	f.Declare("x", value.Int(1), true)
	f.ForceSet("x", value.Int(2), false)

	v, isConst, _, ok := f.Lookup("x")
	require.True(t, ok)
	assert.Equal(t, value.Int(2), v)
	assert.False(t, isConst)
}

func TestUnsetNeverRemovesConst(t *testing.T) {
	f := NewRoot()
	f.Declare("c", value.Int(1), true)
	f.Unset("c")
	_, _, _, ok := f.Lookup("c")
	assert.True(t, ok)
}

func TestGlobalFrameAndDepth(t *testing.T) {
	root := NewRoot()
	child := NewChild(root, "<scope>")
	grandchild := NewChild(child, "<scope>")

	assert.Same(t, root, grandchild.GlobalFrame())
	assert.Equal(t, 0, root.Depth())
	assert.Equal(t, 2, grandchild.Depth())
}

func TestLabelVisibleOnlyWhileInserted(t *testing.T) {
	f := NewRoot()
	assert.False(t, f.ContainsLabel("outer"))
	f.InsertLabel("outer")
	assert.True(t, f.ContainsLabel("outer"))
	f.RemoveFromCurrent("outer")
	assert.False(t, f.ContainsLabel("outer"))
}

func TestLabelVisibleFromChildFrame(t *testing.T) {
	root := NewRoot()
	root.InsertLabel("outer")
	child := NewChild(root, "<scope>")
	assert.True(t, child.ContainsLabel("outer"))
}
