/*
File    : go-flux/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strings"
)

// NodeType identifies the concrete kind of an AST node.
// The compiler dispatches on this tag when walking the tree, so every
// node variant carries exactly one NodeType.
type NodeType string

// NodeType Constants:
// One constant per statement and expression variant in the Flux AST.
const (
	// Statements
	ProgramNode             NodeType = "Program"
	ExpressionStatementNode NodeType = "ExpressionStatement"
	VarStatementNode        NodeType = "VarStatement"
	AssignStatementNode     NodeType = "AssignStatement"
	FunctionStatementNode   NodeType = "FunctionStatement"
	BlockStatementNode      NodeType = "BlockStatement"
	ReturnStatementNode     NodeType = "ReturnStatement"
	IfStatementNode         NodeType = "IfStatement"
	WhileStatementNode      NodeType = "WhileStatement"

	// Expressions
	InfixExpressionNode   NodeType = "InfixExpression"
	CallExpressionNode    NodeType = "CallExpression"
	IntegerLiteralNode    NodeType = "IntegerLiteral"
	FloatLiteralNode      NodeType = "FloatLiteral"
	BooleanLiteralNode    NodeType = "BooleanLiteral"
	IdentifierLiteralNode NodeType = "IdentifierLiteral"

	// Helpers
	FunctionParameterNode NodeType = "FunctionParameter"
)

// Node: base interface for all nodes of the AST
// Type(): returns the NodeType tag of the node
// Literal(): returns the string representation of the node
// Json(): returns a serializable dump of the node (for AST.json)
type Node interface {
	Type() NodeType
	Literal() string
	Json() map[string]any
}

// StatementNode: base interface for all statement nodes
// Node: every statement node is a node
// Statement(): marker method for the statement variant group
type StatementNode interface {
	Node
	Statement()
}

// ExpressionNode: base interface for all expression nodes
// Node: every expression node is a node
// StatementNode: every expression is also a statement
// Expression(): marker method for the expression variant group
type ExpressionNode interface {
	Node
	StatementNode
	Expression()
}

// RootNode: represents the root of the AST (the program node)
// Statements: list of statements in the program, in source order
type RootNode struct {
	Statements []StatementNode
}

// RootNode.Type(): returns the node type tag
func (root *RootNode) Type() NodeType { return ProgramNode }

// RootNode.Literal(): string representation of the whole program
func (root *RootNode) Literal() string {
	var builder strings.Builder
	for _, stmt := range root.Statements {
		builder.WriteString(stmt.Literal())
		builder.WriteString(";")
	}
	return builder.String()
}

// RootNode.Json(): serializable dump of the program
func (root *RootNode) Json() map[string]any {
	stmts := make([]map[string]any, 0, len(root.Statements))
	for _, stmt := range root.Statements {
		stmts = append(stmts, stmt.Json())
	}
	return map[string]any{"type": string(ProgramNode), "statements": stmts}
}

// ExpressionStatement: wraps a bare expression used in statement position
// Expr: the wrapped expression
type ExpressionStatement struct {
	Expr ExpressionNode
}

func (node *ExpressionStatement) Type() NodeType  { return ExpressionStatementNode }
func (node *ExpressionStatement) Literal() string { return node.Expr.Literal() }
func (node *ExpressionStatement) Statement()      {}

func (node *ExpressionStatement) Json() map[string]any {
	return map[string]any{"type": string(ExpressionStatementNode), "expr": node.Expr.Json()}
}

// VarStatement: a variable declaration with an explicit type annotation
// Example: var x : int = 5 + 3 * 2;
// Name: the declared identifier
// ValueType: the annotated type name ("int", "float", "bool")
// Value: the initializer expression
type VarStatement struct {
	Name      IdentifierLiteral
	ValueType string
	Value     ExpressionNode
}

func (node *VarStatement) Type() NodeType { return VarStatementNode }
func (node *VarStatement) Statement()     {}

func (node *VarStatement) Literal() string {
	return fmt.Sprintf("var %s : %s = %s", node.Name.Value, node.ValueType, node.Value.Literal())
}

func (node *VarStatement) Json() map[string]any {
	return map[string]any{
		"type":       string(VarStatementNode),
		"name":       node.Name.Json(),
		"value_type": node.ValueType,
		"value":      node.Value.Json(),
	}
}

// AssignStatement: re-assignment of an already declared binding
// Example: x = x + 1;
type AssignStatement struct {
	Ident IdentifierLiteral
	Value ExpressionNode
}

func (node *AssignStatement) Type() NodeType { return AssignStatementNode }
func (node *AssignStatement) Statement()     {}

func (node *AssignStatement) Literal() string {
	return fmt.Sprintf("%s = %s", node.Ident.Value, node.Value.Literal())
}

func (node *AssignStatement) Json() map[string]any {
	return map[string]any{
		"type":  string(AssignStatementNode),
		"ident": node.Ident.Json(),
		"value": node.Value.Json(),
	}
}

// FunctionParameter: a single "name : TYPE" entry in a parameter list
type FunctionParameter struct {
	Name      string
	ValueType string
}

func (node *FunctionParameter) Type() NodeType  { return FunctionParameterNode }
func (node *FunctionParameter) Literal() string { return node.Name + " : " + node.ValueType }

func (node *FunctionParameter) Json() map[string]any {
	return map[string]any{
		"type":       string(FunctionParameterNode),
		"name":       node.Name,
		"value_type": node.ValueType,
	}
}

// FunctionStatement: a function declaration
// Example: func add(a: int, b: int) @ int { ret a + b; }
// Name: the function name
// Parameters: the declared parameters, in order
// ReturnType: the annotated return type name
// Body: the function body (always a BlockStatement)
type FunctionStatement struct {
	Name       IdentifierLiteral
	Parameters []FunctionParameter
	ReturnType string
	Body       *BlockStatement
}

func (node *FunctionStatement) Type() NodeType { return FunctionStatementNode }
func (node *FunctionStatement) Statement()     {}

func (node *FunctionStatement) Literal() string {
	params := make([]string, 0, len(node.Parameters))
	for _, p := range node.Parameters {
		params = append(params, p.Literal())
	}
	return fmt.Sprintf("func %s(%s) @ %s %s",
		node.Name.Value, strings.Join(params, ", "), node.ReturnType, node.Body.Literal())
}

func (node *FunctionStatement) Json() map[string]any {
	params := make([]map[string]any, 0, len(node.Parameters))
	for _, p := range node.Parameters {
		params = append(params, p.Json())
	}
	return map[string]any{
		"type":        string(FunctionStatementNode),
		"name":        node.Name.Json(),
		"parameters":  params,
		"return_type": node.ReturnType,
		"body":        node.Body.Json(),
	}
}

// BlockStatement: a brace-delimited sequence of statements
// Blocks do not introduce scopes; only function bodies do.
type BlockStatement struct {
	Statements []StatementNode
}

func (node *BlockStatement) Type() NodeType { return BlockStatementNode }
func (node *BlockStatement) Statement()     {}

func (node *BlockStatement) Literal() string {
	var builder strings.Builder
	builder.WriteString("{ ")
	for _, stmt := range node.Statements {
		builder.WriteString(stmt.Literal())
		builder.WriteString("; ")
	}
	builder.WriteString("}")
	return builder.String()
}

func (node *BlockStatement) Json() map[string]any {
	stmts := make([]map[string]any, 0, len(node.Statements))
	for _, stmt := range node.Statements {
		stmts = append(stmts, stmt.Json())
	}
	return map[string]any{"type": string(BlockStatementNode), "statements": stmts}
}

// ReturnStatement: returns a value from the enclosing function
// Example: ret a + b;
type ReturnStatement struct {
	ReturnValue ExpressionNode
}

func (node *ReturnStatement) Type() NodeType  { return ReturnStatementNode }
func (node *ReturnStatement) Statement()      {}
func (node *ReturnStatement) Literal() string { return "ret " + node.ReturnValue.Literal() }

func (node *ReturnStatement) Json() map[string]any {
	return map[string]any{"type": string(ReturnStatementNode), "return_value": node.ReturnValue.Json()}
}

// IfStatement: a conditional with an optional else branch
// Example: if x == 0 { ret 1; } else { ret 0; }
//
// If appears both in statement position and as a prefix expression in the
// Pratt table, so the node carries both variant markers.
type IfStatement struct {
	Condition   ExpressionNode
	Consequence *BlockStatement
	Alternative *BlockStatement // nil when there is no else branch
}

func (node *IfStatement) Type() NodeType { return IfStatementNode }
func (node *IfStatement) Statement()     {}
func (node *IfStatement) Expression()    {}

func (node *IfStatement) Literal() string {
	out := fmt.Sprintf("if %s %s", node.Condition.Literal(), node.Consequence.Literal())
	if node.Alternative != nil {
		out += " else " + node.Alternative.Literal()
	}
	return out
}

func (node *IfStatement) Json() map[string]any {
	m := map[string]any{
		"type":        string(IfStatementNode),
		"condition":   node.Condition.Json(),
		"consequence": node.Consequence.Json(),
	}
	if node.Alternative != nil {
		m["alternative"] = node.Alternative.Json()
	}
	return m
}

// WhileStatement: a pre-tested loop
// Example: while i < 10 { i = i + 1; }
type WhileStatement struct {
	Condition ExpressionNode
	Body      *BlockStatement
}

func (node *WhileStatement) Type() NodeType { return WhileStatementNode }
func (node *WhileStatement) Statement()     {}

func (node *WhileStatement) Literal() string {
	return fmt.Sprintf("while %s %s", node.Condition.Literal(), node.Body.Literal())
}

func (node *WhileStatement) Json() map[string]any {
	return map[string]any{
		"type":      string(WhileStatementNode),
		"condition": node.Condition.Json(),
		"body":      node.Body.Json(),
	}
}

// InfixExpression: a binary operation expression with two operands
// Example: 2 + 3, x * y, a <= b
type InfixExpression struct {
	Left     ExpressionNode
	Operator string
	Right    ExpressionNode
}

func (node *InfixExpression) Type() NodeType { return InfixExpressionNode }
func (node *InfixExpression) Statement()     {}
func (node *InfixExpression) Expression()    {}

func (node *InfixExpression) Literal() string {
	return fmt.Sprintf("(%s %s %s)", node.Left.Literal(), node.Operator, node.Right.Literal())
}

func (node *InfixExpression) Json() map[string]any {
	return map[string]any{
		"type":     string(InfixExpressionNode),
		"operator": node.Operator,
		"left":     node.Left.Json(),
		"right":    node.Right.Json(),
	}
}

// CallExpression: a call of a named function
// Example: add(2, 3)
// Function: the bare callee identifier (no first-class functions)
// Arguments: the argument expressions, in order
type CallExpression struct {
	Function  IdentifierLiteral
	Arguments []ExpressionNode
}

func (node *CallExpression) Type() NodeType { return CallExpressionNode }
func (node *CallExpression) Statement()     {}
func (node *CallExpression) Expression()    {}

func (node *CallExpression) Literal() string {
	args := make([]string, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Literal())
	}
	return fmt.Sprintf("%s(%s)", node.Function.Value, strings.Join(args, ", "))
}

func (node *CallExpression) Json() map[string]any {
	args := make([]map[string]any, 0, len(node.Arguments))
	for _, arg := range node.Arguments {
		args = append(args, arg.Json())
	}
	return map[string]any{
		"type":      string(CallExpressionNode),
		"function":  node.Function.Json(),
		"arguments": args,
	}
}

// IntegerLiteral: an integer number literal
// Example: 42, 0, 15
type IntegerLiteral struct {
	Value int64
}

func (node *IntegerLiteral) Type() NodeType  { return IntegerLiteralNode }
func (node *IntegerLiteral) Statement()      {}
func (node *IntegerLiteral) Expression()     {}
func (node *IntegerLiteral) Literal() string { return fmt.Sprintf("%d", node.Value) }

func (node *IntegerLiteral) Json() map[string]any {
	return map[string]any{"type": string(IntegerLiteralNode), "value": node.Value}
}

// FloatLiteral: a floating-point number literal
// Example: 3.14, 0.5
type FloatLiteral struct {
	Value float64
}

func (node *FloatLiteral) Type() NodeType  { return FloatLiteralNode }
func (node *FloatLiteral) Statement()      {}
func (node *FloatLiteral) Expression()     {}
func (node *FloatLiteral) Literal() string { return fmt.Sprintf("%g", node.Value) }

func (node *FloatLiteral) Json() map[string]any {
	return map[string]any{"type": string(FloatLiteralNode), "value": node.Value}
}

// BooleanLiteral: a boolean literal value (true or false)
type BooleanLiteral struct {
	Value bool
}

func (node *BooleanLiteral) Type() NodeType  { return BooleanLiteralNode }
func (node *BooleanLiteral) Statement()      {}
func (node *BooleanLiteral) Expression()     {}
func (node *BooleanLiteral) Literal() string { return fmt.Sprintf("%t", node.Value) }

func (node *BooleanLiteral) Json() map[string]any {
	return map[string]any{"type": string(BooleanLiteralNode), "value": node.Value}
}

// IdentifierLiteral: a reference to a named binding
type IdentifierLiteral struct {
	Value string
}

func (node *IdentifierLiteral) Type() NodeType  { return IdentifierLiteralNode }
func (node *IdentifierLiteral) Statement()      {}
func (node *IdentifierLiteral) Expression()     {}
func (node *IdentifierLiteral) Literal() string { return node.Value }

func (node *IdentifierLiteral) Json() map[string]any {
	return map[string]any{"type": string(IdentifierLiteralNode), "value": node.Value}
}
