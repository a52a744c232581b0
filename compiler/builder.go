/*
File    : go-flux/compiler/builder.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package compiler

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/enum"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// Builder is a positioned instruction builder over llir/llvm basic blocks.
//
// llir/llvm models instructions as methods on *ir.Block; what the emitter
// needs on top is a movable insertion point plus the structured if-then /
// if-else helpers, so that emission code reads as a linear walk of the AST
// while the underlying block graph is stitched behind the scenes.
//
// The builder is positioned at exactly one block at a time. All instruction
// methods append to that block; PositionAtStart moves the insertion point.
type Builder struct {
	// Block is the basic block instructions are currently appended to
	Block *ir.Block
}

// NewBuilder creates a Builder positioned at the given block.
func NewBuilder(block *ir.Block) *Builder {
	return &Builder{Block: block}
}

// icmpPredicates maps Flux comparison operator literals to signed
// integer compare predicates.
var icmpPredicates = map[string]enum.IPred{
	"<":  enum.IPredSLT,
	"<=": enum.IPredSLE,
	">":  enum.IPredSGT,
	">=": enum.IPredSGE,
	"==": enum.IPredEQ,
	"!=": enum.IPredNE,
}

// fcmpPredicates maps Flux comparison operator literals to ordered
// float compare predicates (false when either operand is NaN).
var fcmpPredicates = map[string]enum.FPred{
	"<":  enum.FPredOLT,
	"<=": enum.FPredOLE,
	">":  enum.FPredOGT,
	">=": enum.FPredOGE,
	"==": enum.FPredOEQ,
	"!=": enum.FPredONE,
}

// Alloca reserves a stack slot of the given type in the current function.
func (b *Builder) Alloca(typ types.Type) *ir.InstAlloca {
	return b.Block.NewAlloca(typ)
}

// Store stores a value into a stack slot (or other pointer).
func (b *Builder) Store(from value.Value, to value.Value) {
	b.Block.NewStore(from, to)
}

// Load loads a value of the given element type from a pointer.
func (b *Builder) Load(typ types.Type, from value.Value) value.Value {
	return b.Block.NewLoad(typ, from)
}

// Integer arithmetic

// Add emits an integer addition.
func (b *Builder) Add(x, y value.Value) value.Value { return b.Block.NewAdd(x, y) }

// Sub emits an integer subtraction.
func (b *Builder) Sub(x, y value.Value) value.Value { return b.Block.NewSub(x, y) }

// Mul emits an integer multiplication.
func (b *Builder) Mul(x, y value.Value) value.Value { return b.Block.NewMul(x, y) }

// SDiv emits a signed integer division.
func (b *Builder) SDiv(x, y value.Value) value.Value { return b.Block.NewSDiv(x, y) }

// Float arithmetic

// FAdd emits a float addition.
func (b *Builder) FAdd(x, y value.Value) value.Value { return b.Block.NewFAdd(x, y) }

// FSub emits a float subtraction.
func (b *Builder) FSub(x, y value.Value) value.Value { return b.Block.NewFSub(x, y) }

// FMul emits a float multiplication.
func (b *Builder) FMul(x, y value.Value) value.Value { return b.Block.NewFMul(x, y) }

// FDiv emits a float division.
func (b *Builder) FDiv(x, y value.Value) value.Value { return b.Block.NewFDiv(x, y) }

// ICmpSigned emits a signed integer comparison for the given operator
// literal ("<", "<=", ">", ">=", "==", "!="), yielding an i1.
// Returns nil for an unknown operator; callers treat that as a bug in
// the operator tables, not user error.
func (b *Builder) ICmpSigned(operator string, x, y value.Value) value.Value {
	pred, ok := icmpPredicates[operator]
	if !ok {
		return nil
	}
	return b.Block.NewICmp(pred, x, y)
}

// FCmpOrdered emits an ordered float comparison for the given operator
// literal, yielding an i1.
func (b *Builder) FCmpOrdered(operator string, x, y value.Value) value.Value {
	pred, ok := fcmpPredicates[operator]
	if !ok {
		return nil
	}
	return b.Block.NewFCmp(pred, x, y)
}

// Call emits a call of the given function handle with the collected
// argument values.
func (b *Builder) Call(callee value.Value, args ...value.Value) value.Value {
	return b.Block.NewCall(callee, args...)
}

// Ret emits a return of the given value, terminating the current block.
func (b *Builder) Ret(val value.Value) {
	b.Block.NewRet(val)
}

// AppendBlock appends a new basic block with the given label to the
// function owning the current block.
func (b *Builder) AppendBlock(label string) *ir.Block {
	return b.Block.Parent.NewBlock(label)
}

// CBranch terminates the current block with a conditional branch.
func (b *Builder) CBranch(cond value.Value, then *ir.Block, otherwise *ir.Block) {
	b.Block.NewCondBr(cond, then, otherwise)
}

// Branch terminates the current block with an unconditional branch.
func (b *Builder) Branch(target *ir.Block) {
	b.Block.NewBr(target)
}

// PositionAtStart moves the insertion point to the given block.
// Freshly appended blocks are empty, so appending and positioning at
// the start are the same thing.
func (b *Builder) PositionAtStart(block *ir.Block) {
	b.Block = block
}

// Terminated reports whether the current block already has a terminator.
func (b *Builder) Terminated() bool {
	return b.Block.Term != nil
}

// IfThen emits a one-armed conditional: a branch on cond into a "then"
// block whose instructions are produced by emit, re-joining at a fresh
// merge block. The builder is left positioned at the merge block.
//
// The then arm only falls through to the merge block when emit did not
// already terminate it (e.g. with a ret).
func (b *Builder) IfThen(cond value.Value, emit func()) {
	then := b.AppendBlock("")
	endif := b.AppendBlock("")

	b.CBranch(cond, then, endif)

	b.PositionAtStart(then)
	emit()
	if !b.Terminated() {
		b.Branch(endif)
	}

	b.PositionAtStart(endif)
}

// IfElse emits a two-way conditional split: cond branches into a "then"
// block or an "otherwise" block, each compiled by its respective emit
// callback, re-joining at a fresh merge block (phi-less; values escape
// through memory, not SSA joins). The builder is left positioned at the
// merge block.
func (b *Builder) IfElse(cond value.Value, emitThen func(), emitOtherwise func()) {
	then := b.AppendBlock("")
	otherwise := b.AppendBlock("")
	endif := b.AppendBlock("")

	b.CBranch(cond, then, otherwise)

	b.PositionAtStart(then)
	emitThen()
	if !b.Terminated() {
		b.Branch(endif)
	}

	b.PositionAtStart(otherwise)
	emitOtherwise()
	if !b.Terminated() {
		b.Branch(endif)
	}

	b.PositionAtStart(endif)
}
