/*
File    : go-flux/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParser_Parse_OneNumberExpression(t *testing.T) {

	src := `12`
	par := NewParser(src)
	root := par.Parse()
	// root should not be nil
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())

	// must: root has 1 statement
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatement)
	assert.True(t, can)
	exp, can := stmt.Expr.(*IntegerLiteral)
	assert.True(t, can)
	assert.Equal(t, int64(12), exp.Value)
	assert.Equal(t, "12", exp.Literal())
}

func TestParser_Parse_Precedence(t *testing.T) {

	src := `5 + 3 * 2`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatement)
	assert.True(t, can)

	// multiplication binds tighter: 5 + (3 * 2)
	exp, can := stmt.Expr.(*InfixExpression)
	assert.True(t, can)
	assert.Equal(t, "+", exp.Operator)

	left, can := exp.Left.(*IntegerLiteral)
	assert.True(t, can)
	assert.Equal(t, int64(5), left.Value)

	right, can := exp.Right.(*InfixExpression)
	assert.True(t, can)
	assert.Equal(t, "*", right.Operator)
	assert.Equal(t, "(5 + (3 * 2))", exp.Literal())
}

func TestParser_Parse_GroupedExpression(t *testing.T) {

	src := `(5 + 3) * 2`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatement)
	assert.True(t, can)

	// grouping overrides precedence: (5 + 3) * 2
	exp, can := stmt.Expr.(*InfixExpression)
	assert.True(t, can)
	assert.Equal(t, "*", exp.Operator)

	left, can := exp.Left.(*InfixExpression)
	assert.True(t, can)
	assert.Equal(t, "+", left.Operator)
}

func TestParser_Parse_VarStatement(t *testing.T) {

	src := `var x : int = 5 + 3 * 2;`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*VarStatement)
	assert.True(t, can)
	assert.Equal(t, "x", stmt.Name.Value)
	assert.Equal(t, "int", stmt.ValueType)

	value, can := stmt.Value.(*InfixExpression)
	assert.True(t, can)
	assert.Equal(t, "+", value.Operator)

	inner, can := value.Right.(*InfixExpression)
	assert.True(t, can)
	assert.Equal(t, "*", inner.Operator)
}

func TestParser_Parse_FloatVarStatement(t *testing.T) {

	src := `var pi : float = 3.14;`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*VarStatement)
	assert.True(t, can)
	assert.Equal(t, "pi", stmt.Name.Value)
	assert.Equal(t, "float", stmt.ValueType)

	value, can := stmt.Value.(*FloatLiteral)
	assert.True(t, can)
	assert.Equal(t, 3.14, value.Value)
}

func TestParser_Parse_AssignStatement(t *testing.T) {

	src := `x = x + 1;`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*AssignStatement)
	assert.True(t, can)
	assert.Equal(t, "x", stmt.Ident.Value)

	value, can := stmt.Value.(*InfixExpression)
	assert.True(t, can)
	assert.Equal(t, "+", value.Operator)
}

func TestParser_Parse_FunctionStatement(t *testing.T) {

	src := `func add(a: int, b: int) @ int { ret a + b; }`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*FunctionStatement)
	assert.True(t, can)
	assert.Equal(t, "add", stmt.Name.Value)
	assert.Equal(t, "int", stmt.ReturnType)

	assert.Equal(t, 2, len(stmt.Parameters))
	assert.Equal(t, "a", stmt.Parameters[0].Name)
	assert.Equal(t, "int", stmt.Parameters[0].ValueType)
	assert.Equal(t, "b", stmt.Parameters[1].Name)
	assert.Equal(t, "int", stmt.Parameters[1].ValueType)

	assert.NotNil(t, stmt.Body)
	assert.Equal(t, 1, len(stmt.Body.Statements))

	retStmt, can := stmt.Body.Statements[0].(*ReturnStatement)
	assert.True(t, can)

	value, can := retStmt.ReturnValue.(*InfixExpression)
	assert.True(t, can)
	assert.Equal(t, "+", value.Operator)
}

func TestParser_Parse_FunctionStatement_NoParams(t *testing.T) {

	src := `func answer() @ int { ret 42; }`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*FunctionStatement)
	assert.True(t, can)
	assert.Equal(t, "answer", stmt.Name.Value)
	assert.Equal(t, 0, len(stmt.Parameters))
}

func TestParser_Parse_CallExpression(t *testing.T) {

	src := `add(2, 3)`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatement)
	assert.True(t, can)

	call, can := stmt.Expr.(*CallExpression)
	assert.True(t, can)
	assert.Equal(t, "add", call.Function.Value)
	assert.Equal(t, 2, len(call.Arguments))
	assert.Equal(t, "add(2, 3)", call.Literal())
}

func TestParser_Parse_WhileStatement(t *testing.T) {

	src := `while i < 10 { i = i + 1; }`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*WhileStatement)
	assert.True(t, can)

	cond, can := stmt.Condition.(*InfixExpression)
	assert.True(t, can)
	assert.Equal(t, "<", cond.Operator)

	assert.Equal(t, 1, len(stmt.Body.Statements))
	_, can = stmt.Body.Statements[0].(*AssignStatement)
	assert.True(t, can)
}

func TestParser_Parse_IfElseStatement(t *testing.T) {

	src := `if x == 0 { ret 1; } else { ret 0; }`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatement)
	assert.True(t, can)

	ifStmt, can := stmt.Expr.(*IfStatement)
	assert.True(t, can)

	cond, can := ifStmt.Condition.(*InfixExpression)
	assert.True(t, can)
	assert.Equal(t, "==", cond.Operator)

	assert.Equal(t, 1, len(ifStmt.Consequence.Statements))
	assert.NotNil(t, ifStmt.Alternative)
	assert.Equal(t, 1, len(ifStmt.Alternative.Statements))
}

func TestParser_Parse_IfWithoutElse(t *testing.T) {

	src := `if x < 0 { x = 0; }`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())
	assert.Equal(t, 1, len(root.Statements))

	stmt, can := root.Statements[0].(*ExpressionStatement)
	assert.True(t, can)

	ifStmt, can := stmt.Expr.(*IfStatement)
	assert.True(t, can)
	assert.Nil(t, ifStmt.Alternative)
}

// TestParser_Parse_StatementKinds checks that an in-order statement walk
// reproduces the original statement kinds.
func TestParser_Parse_StatementKinds(t *testing.T) {

	src := `
	func add(a: int, b: int) @ int { ret a + b; }
	func main() @ int {
		var x : int = add(2, 3);
		x = x + 1;
		while x < 10 { x = x + 1; }
		ret x;
	}
	`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())

	assert.Equal(t, 2, len(root.Statements))
	assert.Equal(t, FunctionStatementNode, root.Statements[0].Type())
	assert.Equal(t, FunctionStatementNode, root.Statements[1].Type())

	body := root.Statements[1].(*FunctionStatement).Body
	kinds := make([]NodeType, 0)
	for _, stmt := range body.Statements {
		kinds = append(kinds, stmt.Type())
	}
	assert.Equal(t, []NodeType{
		VarStatementNode,
		AssignStatementNode,
		WhileStatementNode,
		ReturnStatementNode,
	}, kinds)
}

func TestParser_Parse_MissingColonError(t *testing.T) {

	src := `var x int = 5;`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)

	assert.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0], "Expected :")
	assert.Contains(t, par.GetErrors()[0], "instead")
}

func TestParser_Parse_IllegalTokenError(t *testing.T) {

	// malformed number: the lexer emits ILLEGAL, the parser then reports
	// the missing prefix parser for it
	src := `1.2.3`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)

	assert.True(t, par.Lex.HasErrors())
	assert.Contains(t, par.Lex.GetErrors()[0], "Too many dots in number")

	assert.True(t, par.HasErrors())
	assert.Contains(t, par.GetErrors()[0], "No prefix parse function for ILLEGAL")
}

// TestParser_Parse_ErrorRecovery checks that a malformed statement does
// not hide the statements after it.
func TestParser_Parse_ErrorRecovery(t *testing.T) {

	src := `
	var x int = 5;
	var y : int = 6;
	`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)

	assert.True(t, par.HasErrors())

	// the well-formed declaration still parses
	found := false
	for _, stmt := range root.Statements {
		if varStmt, ok := stmt.(*VarStatement); ok && varStmt.Name.Value == "y" {
			found = true
		}
	}
	assert.True(t, found)
}

// TestParser_Json checks the serializable AST dump.
func TestParser_Json(t *testing.T) {

	src := `var x : int = 5;`
	par := NewParser(src)
	root := par.Parse()
	assert.NotNil(t, root)
	assert.False(t, par.HasErrors())

	dump := root.Json()
	assert.Equal(t, "Program", dump["type"])

	stmts, can := dump["statements"].([]map[string]any)
	assert.True(t, can)
	assert.Equal(t, 1, len(stmts))
	assert.Equal(t, "VarStatement", stmts[0]["type"])
	assert.Equal(t, "int", stmts[0]["value_type"])
}
