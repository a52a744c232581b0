/*
File    : go-flux/compiler/compiler.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package compiler implements the IR emitter for the Flux language.

The Compiler walks the AST produced by the parser and lowers it to an
LLVM IR module via llir/llvm. Lowering is type-directed: the computed
type of each subexpression selects integer- or float-flavored
instructions, and mutable bindings are modeled as stack slots
(alloca/store/load) tracked in a lexically scoped Environment.

Semantic errors (re-assignment of undeclared names, unknown callees,
mixed-type operands) are accumulated in an error list; emission always
completes its whole input and the driver inspects the list at the phase
boundary.
*/
package compiler

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"

	"github.com/akashmaji946/go-flux/parser"
)

// Compiler is the tree-walking IR emitter.
//
// Fields:
//   - TypeMap: maps Flux type names to IR types (int->i32, float->f32, bool->i1)
//   - Module: the IR module being built; created once per compilation
//   - Builder: the positioned instruction builder (nil until a function is entered)
//   - Env: the active environment frame (function bodies push children)
//   - Errors: semantic diagnostics collected during emission
//   - Breakpoints/Continues: provisioned branch-target stacks for a future
//     break/continue construct; pushed and popped around while bodies but
//     not consumed by the current grammar
type Compiler struct {
	TypeMap map[string]types.Type
	Module  *ir.Module
	Builder *Builder
	Env     *Environment
	Errors  []string

	// monotonically increasing suffix for while-loop block labels,
	// reset only by constructing a new Compiler
	counter int

	Breakpoints []*ir.Block
	Continues   []*ir.Block
}

// NewCompiler creates a Compiler with a fresh module, a root environment
// and the module-level true/false constants bound into it.
func NewCompiler() *Compiler {
	com := &Compiler{
		TypeMap: map[string]types.Type{
			"int":   types.I32,
			"float": types.Float,
			"bool":  types.I1,
		},
		Module:      ir.NewModule(),
		Env:         NewEnvironment(nil),
		Errors:      make([]string, 0),
		Breakpoints: make([]*ir.Block, 0),
		Continues:   make([]*ir.Block, 0),
	}

	com.initializeBuiltins()

	return com
}

// initializeBuiltins defines the two module-level boolean constants and
// binds them in the root environment. The bindings are weak references
// into the module. The literals true/false are keywords, parsed as
// BooleanLiteral nodes and lowered to i1 constants in resolveValue, so
// they do not load through these globals.
func (com *Compiler) initializeBuiltins() {
	boolType := com.TypeMap["bool"]

	trueVar := com.Module.NewGlobalDef("true", constant.NewInt(types.I1, 1))
	trueVar.Immutable = true

	falseVar := com.Module.NewGlobalDef("false", constant.NewInt(types.I1, 0))
	falseVar.Immutable = true

	com.Env.Define("true", trueVar, boolType)
	com.Env.Define("false", falseVar, boolType)
}

// incrementCounter bumps and returns the while-loop label counter.
func (com *Compiler) incrementCounter() int {
	com.counter++
	return com.counter
}

// addError records a semantic diagnostic. Emission continues; the
// offending store/operation is skipped.
func (com *Compiler) addError(msg string) {
	com.Errors = append(com.Errors, msg)
}

// HasErrors returns true if the emitter recorded any diagnostics.
func (com *Compiler) HasErrors() bool {
	return len(com.Errors) > 0
}

// GetErrors returns the list of emitter diagnostics.
func (com *Compiler) GetErrors() []string {
	return com.Errors
}

// Compile lowers one AST node, dispatching on its NodeType tag.
// Statements that need an insertion point (everything except function
// declarations at module level) are rejected with a diagnostic when no
// function is active.
func (com *Compiler) Compile(node parser.Node) {
	switch node.Type() {

	case parser.ProgramNode:
		com.visitProgram(node.(*parser.RootNode))

	case parser.FunctionStatementNode:
		com.visitFunctionStatement(node.(*parser.FunctionStatement))

	case parser.ExpressionStatementNode:
		if !com.requireBuilder(node) {
			return
		}
		com.visitExpressionStatement(node.(*parser.ExpressionStatement))

	case parser.VarStatementNode:
		if !com.requireBuilder(node) {
			return
		}
		com.visitVarStatement(node.(*parser.VarStatement))

	case parser.AssignStatementNode:
		if !com.requireBuilder(node) {
			return
		}
		com.visitAssignStatement(node.(*parser.AssignStatement))

	case parser.BlockStatementNode:
		com.visitBlockStatement(node.(*parser.BlockStatement))

	case parser.ReturnStatementNode:
		if !com.requireBuilder(node) {
			return
		}
		com.visitReturnStatement(node.(*parser.ReturnStatement))

	case parser.IfStatementNode:
		if !com.requireBuilder(node) {
			return
		}
		com.visitIfStatement(node.(*parser.IfStatement))

	case parser.WhileStatementNode:
		if !com.requireBuilder(node) {
			return
		}
		com.visitWhileStatement(node.(*parser.WhileStatement))
	}
}

// requireBuilder checks that an insertion point exists for nodes that
// emit instructions. Top-level code outside any function has none.
func (com *Compiler) requireBuilder(node parser.Node) bool {
	if com.Builder == nil {
		com.addError(fmt.Sprintf("Statement outside of a function body: %s", node.Literal()))
		return false
	}
	return true
}

// visitProgram emits each statement in source order, then closes any
// block left without a terminator with unreachable so the module always
// serializes.
func (com *Compiler) visitProgram(node *parser.RootNode) {
	for _, stmt := range node.Statements {
		com.Compile(stmt)
	}

	com.sealBlocks()
}

// sealBlocks terminates dangling blocks (e.g. the merge block of an
// if/else whose arms both return) with unreachable.
func (com *Compiler) sealBlocks() {
	for _, fn := range com.Module.Funcs {
		for _, block := range fn.Blocks {
			if block.Term == nil {
				block.NewUnreachable()
			}
		}
	}
}

// visitExpressionStatement lowers the wrapped expression for its side
// effects; if conditionals in statement position route through here.
func (com *Compiler) visitExpressionStatement(node *parser.ExpressionStatement) {
	// if conditionals are statements wearing an expression marker;
	// everything else resolves to a value that is simply discarded
	if ifStmt, ok := node.Expr.(*parser.IfStatement); ok {
		com.visitIfStatement(ifStmt)
		return
	}
	com.resolveValue(node.Expr)
}

// visitVarStatement lowers a variable declaration.
// The initializer's computed type becomes the binding's type (the
// declared annotation is carried in the AST but not cross-checked).
// If the name is unbound, a stack slot is allocated, the value stored,
// and the binding defined in the current frame. If already bound, the
// value is stored into the existing slot (last-write-wins).
func (com *Compiler) visitVarStatement(node *parser.VarStatement) {
	name := node.Name.Value

	val, typ := com.resolveValue(node.Value)
	if val == nil {
		return
	}

	if _, _, ok := com.Env.LookUp(name); !ok {
		ptr := com.Builder.Alloca(typ)
		com.Builder.Store(val, ptr)
		com.Env.Define(name, ptr, typ)
	} else {
		ptr, _, _ := com.Env.LookUp(name)
		com.Builder.Store(val, ptr)
	}
}

// visitBlockStatement emits each inner statement in order.
// No new scope is introduced: only function bodies introduce scopes.
func (com *Compiler) visitBlockStatement(node *parser.BlockStatement) {
	for _, stmt := range node.Statements {
		com.Compile(stmt)
	}
}

// visitReturnStatement lowers "ret expr;". No implicit coercion is
// applied; whatever type the expression yields is returned.
func (com *Compiler) visitReturnStatement(node *parser.ReturnStatement) {
	val, _ := com.resolveValue(node.ReturnValue)
	if val == nil {
		return
	}

	com.Builder.Ret(val)
}

// visitFunctionStatement lowers a function declaration.
//
// A function type is built from the parameter and return annotations and
// a function appended to the module. Inside a fresh entry block named
// "{name}_entry", one stack slot is allocated per parameter and the
// incoming argument stored into it. A child environment binds the
// parameter slots and the function's own name (permitting
// self-recursion), the body is emitted, and on exit the outer
// environment is restored with the function rebound so later callers
// can reach it. The outer builder is restored last.
func (com *Compiler) visitFunctionStatement(node *parser.FunctionStatement) {
	name := node.Name.Value

	params := make([]*ir.Param, 0, len(node.Parameters))
	paramTypes := make([]types.Type, 0, len(node.Parameters))
	for _, p := range node.Parameters {
		typ, ok := com.TypeMap[p.ValueType]
		if !ok {
			com.addError(fmt.Sprintf("Unknown type %s for parameter %s of function %s", p.ValueType, p.Name, name))
			return
		}
		params = append(params, ir.NewParam(p.Name, typ))
		paramTypes = append(paramTypes, typ)
	}

	returnType, ok := com.TypeMap[node.ReturnType]
	if !ok {
		com.addError(fmt.Sprintf("Unknown return type %s for function %s", node.ReturnType, name))
		return
	}

	fn := com.Module.NewFunc(name, returnType, params...)

	block := fn.NewBlock(fmt.Sprintf("%s_entry", name))

	previousBuilder := com.Builder
	com.Builder = NewBuilder(block)

	// one stack slot per parameter, seeded with the incoming argument
	paramPtrs := make([]*ir.InstAlloca, 0, len(params))
	for i, typ := range paramTypes {
		ptr := com.Builder.Alloca(typ)
		com.Builder.Store(fn.Params[i], ptr)
		paramPtrs = append(paramPtrs, ptr)
	}

	previousEnv := com.Env
	com.Env = NewEnvironment(previousEnv)
	for i, p := range node.Parameters {
		com.Env.Define(p.Name, paramPtrs[i], paramTypes[i])
	}

	// bind the function's own name inside its body for self-recursion
	com.Env.Define(name, fn, returnType)

	com.Compile(node.Body)

	com.Env = previousEnv
	com.Env.Define(name, fn, returnType)

	com.Builder = previousBuilder
}

// visitAssignStatement lowers re-assignment of an existing binding.
// Assigning to a name that was never declared is the one semantic error
// the original pipeline reports: the diagnostic is recorded and the
// store skipped.
func (com *Compiler) visitAssignStatement(node *parser.AssignStatement) {
	name := node.Ident.Value

	val, _ := com.resolveValue(node.Value)
	if val == nil {
		return
	}

	ptr, _, ok := com.Env.LookUp(name)
	if !ok {
		com.addError(fmt.Sprintf("Identifier %s has not been declared before re-assignment", name))
		return
	}

	com.Builder.Store(val, ptr)
}

// visitIfStatement lowers an if conditional.
// The condition must yield an i1. With no else branch a one-armed
// conditional is emitted; otherwise a two-way split with each branch
// compiled in its respective block. Block stitching and the phi-less
// join are delegated to the builder's structured helpers.
func (com *Compiler) visitIfStatement(node *parser.IfStatement) {
	test, _ := com.resolveValue(node.Condition)
	if test == nil {
		return
	}

	if node.Alternative == nil {
		com.Builder.IfThen(test, func() {
			com.Compile(node.Consequence)
		})
	} else {
		com.Builder.IfElse(test, func() {
			com.Compile(node.Consequence)
		}, func() {
			com.Compile(node.Alternative)
		})
	}
}

// visitWhileStatement lowers a pre-tested loop.
//
// Two labeled blocks are appended, while_loop_entry_N and
// while_loop_otherwise_N (N from the monotonically increasing counter).
// The condition is evaluated in the current block and branched on; the
// body is emitted in the entry block, the condition re-evaluated, and
// the backward conditional branch emitted. The builder finishes
// positioned at the otherwise block.
//
// The break/continue target stacks are pushed before the body and popped
// after so a future break/continue construct has dispatch targets in
// scope; the current grammar produces no such nodes.
func (com *Compiler) visitWhileStatement(node *parser.WhileStatement) {
	test, _ := com.resolveValue(node.Condition)
	if test == nil {
		return
	}

	entry := com.Builder.AppendBlock(fmt.Sprintf("while_loop_entry_%d", com.incrementCounter()))
	otherwise := com.Builder.AppendBlock(fmt.Sprintf("while_loop_otherwise_%d", com.counter))

	com.Breakpoints = append(com.Breakpoints, otherwise)
	com.Continues = append(com.Continues, entry)

	com.Builder.CBranch(test, entry, otherwise)

	com.Builder.PositionAtStart(entry)

	com.Compile(node.Body)

	test, _ = com.resolveValue(node.Condition)
	if test != nil {
		com.Builder.CBranch(test, entry, otherwise)
	}

	com.Builder.PositionAtStart(otherwise)

	com.Breakpoints = com.Breakpoints[:len(com.Breakpoints)-1]
	com.Continues = com.Continues[:len(com.Continues)-1]
}

// visitInfixExpression lowers a binary operator expression, dispatching
// on the computed operand types.
//
// Integer pairs use add/sub/mul/sdiv and signed compares; float pairs
// use the float-flavored counterparts with ordered compares. Comparisons
// yield i1 in both flavors. Mixed operand types are diagnosed; no
// coercion is inserted.
func (com *Compiler) visitInfixExpression(node *parser.InfixExpression) (value.Value, types.Type) {
	operator := node.Operator

	leftValue, leftType := com.resolveValue(node.Left)
	rightValue, rightType := com.resolveValue(node.Right)
	if leftValue == nil || rightValue == nil {
		return nil, nil
	}

	intType := com.TypeMap["int"]
	floatType := com.TypeMap["float"]
	boolType := com.TypeMap["bool"]

	if leftType.Equal(intType) && rightType.Equal(intType) {
		switch operator {
		case "+":
			return com.Builder.Add(leftValue, rightValue), intType
		case "-":
			return com.Builder.Sub(leftValue, rightValue), intType
		case "*":
			return com.Builder.Mul(leftValue, rightValue), intType
		case "/":
			return com.Builder.SDiv(leftValue, rightValue), intType
		case "<", "<=", ">", ">=", "==", "!=":
			return com.Builder.ICmpSigned(operator, leftValue, rightValue), boolType
		}
	}

	if leftType.Equal(floatType) && rightType.Equal(floatType) {
		switch operator {
		case "+":
			return com.Builder.FAdd(leftValue, rightValue), floatType
		case "-":
			return com.Builder.FSub(leftValue, rightValue), floatType
		case "*":
			return com.Builder.FMul(leftValue, rightValue), floatType
		case "/":
			return com.Builder.FDiv(leftValue, rightValue), floatType
		case "<", "<=", ">", ">=", "==", "!=":
			return com.Builder.FCmpOrdered(operator, leftValue, rightValue), boolType
		}
	}

	com.addError(fmt.Sprintf("Unsupported operand types for %s: %s and %s",
		operator, leftType.LLString(), rightType.LLString()))
	return constant.NewInt(types.I32, 0), intType
}

// visitCallExpression lowers a call of a named function.
// Arguments are evaluated left-to-right; the callee is resolved in the
// environment and the call emitted with the collected values. The result
// pairs the call instruction with the callee's declared return type.
// Arity and argument types are not verified here; mismatches surface as
// IR verification failures downstream.
func (com *Compiler) visitCallExpression(node *parser.CallExpression) (value.Value, types.Type) {
	name := node.Function.Value

	args := make([]value.Value, 0, len(node.Arguments))
	for _, argNode := range node.Arguments {
		argValue, _ := com.resolveValue(argNode)
		if argValue == nil {
			return nil, nil
		}
		args = append(args, argValue)
	}

	fn, returnType, ok := com.Env.LookUp(name)
	if !ok {
		com.addError(fmt.Sprintf("Function %s has not been declared before call", name))
		return constant.NewInt(types.I32, 0), com.TypeMap["int"]
	}

	return com.Builder.Call(fn, args...), returnType
}

// resolveValue lowers an expression node to an IR (value, type) pair.
//
// Literals become typed constants; identifier reads load through the
// bound stack slot; infix and call expressions recurse. An undeclared
// identifier is diagnosed and replaced with an i32 0 placeholder so
// emission can continue.
func (com *Compiler) resolveValue(node parser.ExpressionNode) (value.Value, types.Type) {
	switch node.Type() {

	case parser.IntegerLiteralNode:
		literal := node.(*parser.IntegerLiteral)
		typ := com.TypeMap["int"]
		return constant.NewInt(typ.(*types.IntType), literal.Value), typ

	case parser.FloatLiteralNode:
		literal := node.(*parser.FloatLiteral)
		typ := com.TypeMap["float"]
		return constant.NewFloat(typ.(*types.FloatType), literal.Value), typ

	case parser.BooleanLiteralNode:
		literal := node.(*parser.BooleanLiteral)
		if literal.Value {
			return constant.NewInt(types.I1, 1), com.TypeMap["bool"]
		}
		return constant.NewInt(types.I1, 0), com.TypeMap["bool"]

	case parser.IdentifierLiteralNode:
		literal := node.(*parser.IdentifierLiteral)
		ptr, typ, ok := com.Env.LookUp(literal.Value)
		if !ok {
			com.addError(fmt.Sprintf("Identifier %s has not been declared", literal.Value))
			return constant.NewInt(types.I32, 0), com.TypeMap["int"]
		}
		return com.Builder.Load(typ, ptr), typ

	case parser.InfixExpressionNode:
		return com.visitInfixExpression(node.(*parser.InfixExpression))

	case parser.CallExpressionNode:
		return com.visitCallExpression(node.(*parser.CallExpression))
	}

	com.addError(fmt.Sprintf("Cannot resolve expression: %s", node.Literal()))
	return nil, nil
}
