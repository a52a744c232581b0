/*
File    : go-flux/compiler/environment_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"testing"

	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/stretchr/testify/assert"
)

func TestEnvironment_DefineAndLookUp(t *testing.T) {
	env := NewEnvironment(nil)

	handle := constant.NewInt(types.I32, 42)
	env.Define("x", handle, types.I32)

	got, typ, ok := env.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, handle, got)
	assert.Equal(t, types.I32, typ)
}

func TestEnvironment_LookUpMissing(t *testing.T) {
	env := NewEnvironment(nil)

	_, _, ok := env.LookUp("nope")
	assert.False(t, ok)
}

func TestEnvironment_ParentChain(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("x", constant.NewInt(types.I32, 1), types.I32)

	child := root.Child()
	grandchild := child.Child()

	// lookup walks the parent chain
	_, typ, ok := grandchild.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, types.I32, typ)

	// define inserts in the current frame only
	grandchild.Define("y", constant.NewInt(types.I1, 1), types.I1)
	_, _, ok = root.LookUp("y")
	assert.False(t, ok)
}

func TestEnvironment_Shadowing(t *testing.T) {
	root := NewEnvironment(nil)
	root.Define("x", constant.NewInt(types.I32, 1), types.I32)

	child := root.Child()
	child.Define("x", constant.NewFloat(types.Float, 2.0), types.Float)

	// the child sees its own binding
	_, typ, ok := child.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, types.Float, typ)

	// the root binding is untouched
	_, typ, ok = root.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, types.I32, typ)
}

func TestEnvironment_LastWriteWins(t *testing.T) {
	env := NewEnvironment(nil)

	env.Define("x", constant.NewInt(types.I32, 1), types.I32)
	env.Define("x", constant.NewInt(types.I32, 2), types.I32)

	got, _, ok := env.LookUp("x")
	assert.True(t, ok)
	assert.Equal(t, constant.NewInt(types.I32, 2), got)
}
