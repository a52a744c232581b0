/*
File    : go-flux/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/go-flux/lexer"
)

// parseStatement parses a single statement.
// This is the main dispatcher that determines what type of statement to
// parse based on the current token (and one token of lookahead for the
// assignment pattern).
//
// Dispatch order at top-of-statement:
//   - IDENT followed by '=' is an assignment
//   - var    -> variable declaration
//   - func   -> function declaration
//   - ret    -> return statement
//   - while  -> while loop
//   - otherwise -> expression statement (this covers if conditionals,
//     which live in the prefix table)
//
// A failed sub-parser returns nil after recording its error; the caller
// skips nils and keeps going.
func (par *Parser) parseStatement() StatementNode {
	if par.currTokenIs(lexer.IDENTIFIER_ID) && par.nextTokenIs(lexer.ASSIGN_OP) {
		return par.parseAssignStatement()
	}

	switch par.CurrToken.Type {

	case lexer.VAR_KEY:
		return par.parseVarStatement()

	case lexer.FUNC_KEY:
		return par.parseFunctionStatement()

	case lexer.RETURN_KEY:
		return par.parseReturnStatement()

	case lexer.WHILE_KEY:
		return par.parseWhileStatement()

	default:
		return par.parseExpressionStatement()
	}
}

// parseExpressionStatement parses a bare expression in statement position.
// A trailing semicolon is optional and consumed if present.
func (par *Parser) parseExpressionStatement() StatementNode {
	expr := par.parseExpression(MINIMUM_PRIORITY)
	if expr == nil {
		return nil
	}

	if par.nextTokenIs(lexer.SEMICOLON_DELIM) {
		par.advance()
	}

	return &ExpressionStatement{Expr: expr}
}

// parseVarStatement parses a variable declaration statement.
// The token sequence is fixed: every binding carries an explicit type
// annotation drawn from the built-in type names.
//
// Syntax:
//
//	var NAME : TYPE = expression ;
//
// After the initializer, the parser skips forward to the terminating
// semicolon (or end of input) so a malformed tail cannot desynchronize
// the statement loop.
//
// Examples:
//
//	var x : int = 5 + 3 * 2;
//	var pi : float = 3.14;
func (par *Parser) parseVarStatement() StatementNode {
	stmt := &VarStatement{}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}

	stmt.Name = IdentifierLiteral{Value: par.CurrToken.Literal}

	if !par.expectAdvance(lexer.COLON_DELIM) {
		return nil
	}

	if !par.expectAdvance(lexer.TYPE_KEY) {
		return nil
	}

	stmt.ValueType = par.CurrToken.Literal

	if !par.expectAdvance(lexer.ASSIGN_OP) {
		return nil
	}

	par.advance()

	stmt.Value = par.parseExpression(MINIMUM_PRIORITY)

	// consume up to the terminating semicolon
	for !par.currTokenIs(lexer.SEMICOLON_DELIM) && !par.currTokenIs(lexer.EOF_TYPE) {
		par.advance()
	}

	return stmt
}

// parseAssignStatement parses re-assignment of an existing binding.
// Whether the name was ever declared is checked later by the emitter,
// not here.
//
// Syntax:
//
//	NAME = expression ;
//
// The parser advances once past the value expression, which lands on
// the terminating semicolon when one is present. At end of input the
// lexer keeps returning EOF, so the extra advance is harmless.
func (par *Parser) parseAssignStatement() StatementNode {
	stmt := &AssignStatement{}

	stmt.Ident = IdentifierLiteral{Value: par.CurrToken.Literal}

	par.advance()
	par.advance()

	stmt.Value = par.parseExpression(MINIMUM_PRIORITY)

	par.advance()

	return stmt
}

// parseFunctionStatement parses a function declaration.
// The '@' sign is the return-type sentinel.
//
// Syntax:
//
//	func NAME ( params ) @ TYPE { block }
//
// Example:
//
//	func add(a: int, b: int) @ int { ret a + b; }
func (par *Parser) parseFunctionStatement() StatementNode {
	stmt := &FunctionStatement{}

	if !par.expectAdvance(lexer.IDENTIFIER_ID) {
		return nil
	}

	stmt.Name = IdentifierLiteral{Value: par.CurrToken.Literal}

	if !par.expectAdvance(lexer.LEFT_PAREN) {
		return nil
	}

	stmt.Parameters = par.parseFunctionParameters()
	if stmt.Parameters == nil {
		return nil
	}

	if !par.expectAdvance(lexer.AT_SIGN) {
		return nil
	}

	if !par.expectAdvance(lexer.TYPE_KEY) {
		return nil
	}

	stmt.ReturnType = par.CurrToken.Literal

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	stmt.Body = par.parseBlockStatement()

	return stmt
}

// parseFunctionParameters parses a comma-separated parameter list.
// Each parameter is a "name : TYPE" pair; the list may be empty.
// Returns nil (after recording an error) on a malformed list.
func (par *Parser) parseFunctionParameters() []FunctionParameter {
	params := make([]FunctionParameter, 0)

	if par.nextTokenIs(lexer.RIGHT_PAREN) {
		par.advance()
		return params
	}

	par.advance()

	param := FunctionParameter{Name: par.CurrToken.Literal}

	if !par.expectAdvance(lexer.COLON_DELIM) {
		return nil
	}

	par.advance()

	param.ValueType = par.CurrToken.Literal
	params = append(params, param)

	for par.nextTokenIs(lexer.COMMA_DELIM) {
		par.advance()
		par.advance()

		param := FunctionParameter{Name: par.CurrToken.Literal}

		if !par.expectAdvance(lexer.COLON_DELIM) {
			return nil
		}

		par.advance()

		param.ValueType = par.CurrToken.Literal
		params = append(params, param)
	}

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return params
}

// parseReturnStatement parses a return statement.
//
// Syntax:
//
//	ret expression ;
func (par *Parser) parseReturnStatement() StatementNode {
	stmt := &ReturnStatement{}

	par.advance()

	stmt.ReturnValue = par.parseExpression(MINIMUM_PRIORITY)

	if !par.expectAdvance(lexer.SEMICOLON_DELIM) {
		return nil
	}

	return stmt
}

// parseWhileStatement parses a while loop.
//
// Syntax:
//
//	while expression { block }
func (par *Parser) parseWhileStatement() StatementNode {
	par.advance()

	condition := par.parseExpression(MINIMUM_PRIORITY)

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	body := par.parseBlockStatement()

	return &WhileStatement{Condition: condition, Body: body}
}

// parseBlockStatement parses a brace-delimited statement sequence.
// The current token is the LEFT_BRACE when this is called; on return the
// current token is the matching RIGHT_BRACE (or EOF for an unterminated
// block). Blocks do not open a new scope; only function bodies do, and
// the emitter handles that.
func (par *Parser) parseBlockStatement() *BlockStatement {
	block := &BlockStatement{Statements: make([]StatementNode, 0)}

	par.advance()

	for !par.currTokenIs(lexer.RIGHT_BRACE) && !par.currTokenIs(lexer.EOF_TYPE) {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
		par.advance()
	}

	return block
}
