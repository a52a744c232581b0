/*
File    : go-flux/compiler/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// Binding is what a name resolves to during emission: an IR handle plus
// the IR type the handle yields. For variables the handle is the alloca
// pointer and the type is the stored element type; for functions the
// handle is the function itself and the type is its declared return type.
type Binding struct {
	Handle value.Value // alloca pointer (variables) or function (calls)
	Type   types.Type  // element type to load / declared return type
}

// Environment defines a lexical scope boundary for name resolution
// during IR emission.
//
// Environment implements a hierarchical frame chain that enables lexical
// scoping. Each frame maintains its own bindings and can reach bindings
// from parent frames. The chain is traversed upward (from child to
// parent) during lookup, implementing standard lexical scoping rules.
//
// Frames are created on function entry and torn down on function exit;
// no cycles are possible since frames are pushed on entry and popped on
// exit. There is no explicit deletion.
type Environment struct {
	// Bindings maps names to their current (handle, type) pair in this frame
	Bindings map[string]Binding

	// Parent points to the enclosing frame, forming a scope chain
	// nil indicates this is the root (module-level) frame
	Parent *Environment
}

// NewEnvironment creates and initializes a new Environment frame with the
// specified parent.
//
// The parent parameter determines the frame's position in the hierarchy:
//   - parent == nil: Creates the root frame with no parent
//   - parent != nil: Creates a nested frame that can reach parent bindings
//
// Example usage:
//
//	rootEnv := NewEnvironment(nil)       // Module-level frame
//	funcEnv := NewEnvironment(rootEnv)   // Function-body frame
func NewEnvironment(parent *Environment) *Environment {
	return &Environment{
		Bindings: make(map[string]Binding),
		Parent:   parent,
	}
}

// Define inserts or overwrites a binding in the current frame only.
// No shadowing check is enforced; last-write-wins within a frame.
// Parent frames are never touched (use LookUp for resolution).
func (env *Environment) Define(name string, handle value.Value, typ types.Type) {
	if env.Bindings == nil {
		env.Bindings = make(map[string]Binding)
	}
	env.Bindings[name] = Binding{Handle: handle, Type: typ}
}

// LookUp searches for a binding by name in this frame and all parents.
//
// This implements the core resolution algorithm for lexical scoping:
// 1. First checks the current frame's Bindings map
// 2. If not found and a parent frame exists, recursively searches the parent
// 3. Continues up the chain until the name is found or the root is reached
//
// Returns:
//   - value.Value: The IR handle bound to the name (if found)
//   - types.Type: The IR type paired with the handle
//   - bool: true if the name was found in this frame or any parent
func (env *Environment) LookUp(name string) (value.Value, types.Type, bool) {
	if env.Bindings == nil {
		env.Bindings = make(map[string]Binding)
	}
	binding, ok := env.Bindings[name]
	if !ok && env.Parent != nil {
		return env.Parent.LookUp(name)
	}
	return binding.Handle, binding.Type, ok
}

// Child creates a new frame with this frame as parent.
// The emitter pushes a child on function entry and restores the parent
// on function exit.
func (env *Environment) Child() *Environment {
	return NewEnvironment(env)
}
