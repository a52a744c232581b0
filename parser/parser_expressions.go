/*
File    : go-flux/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/go-flux/lexer"
)

// parseExpression is the core of the Pratt parsing algorithm.
// It looks up the prefix parser for the current token, then greedily
// extends the left expression while the next operator binds tighter
// than the given precedence floor. A semicolon always stops the loop.
//
// Parameters:
//
//	precedence - The binding-power floor below which the loop stops
//
// Returns:
//
//	An ExpressionNode, or nil when no prefix parser exists for the
//	current token (the "No prefix parse function" error is recorded)
func (par *Parser) parseExpression(precedence int) ExpressionNode {
	unaryFn, ok := par.UnaryFuncs[par.CurrToken.Type]
	if !ok {
		par.addError(fmt.Sprintf("No prefix parse function for %s", par.CurrToken.Type))
		return nil
	}

	leftExpr := unaryFn()

	for !par.nextTokenIs(lexer.SEMICOLON_DELIM) && precedence < getPrecedence(&par.NextToken) {
		binaryFn, ok := par.BinaryFuncs[par.NextToken.Type]
		if !ok {
			return leftExpr
		}

		par.advance()

		leftExpr = binaryFn(leftExpr)
	}

	return leftExpr
}

// parseIdentifierExpression parses a bare identifier reference.
func (par *Parser) parseIdentifierExpression() ExpressionNode {
	return &IdentifierLiteral{Value: par.CurrToken.Literal}
}

// parseIntegerLiteral parses an integer literal expression.
// The lexer guarantees the literal is a plain digit run, but the
// conversion is still checked so that out-of-range values are reported
// instead of silently truncated.
func (par *Parser) parseIntegerLiteral() ExpressionNode {
	val, err := strconv.ParseInt(par.CurrToken.Literal, 10, 64)
	if err != nil {
		par.addError(fmt.Sprintf("Cant parse %s as int", par.CurrToken.Literal))
		return nil
	}
	return &IntegerLiteral{Value: val}
}

// parseFloatLiteral parses a floating-point literal expression.
// The liberal lexer grammar admits trailing-dot forms like "5.", which
// ParseFloat accepts.
func (par *Parser) parseFloatLiteral() ExpressionNode {
	val, err := strconv.ParseFloat(par.CurrToken.Literal, 64)
	if err != nil {
		par.addError(fmt.Sprintf("Cant parse %s as float", par.CurrToken.Literal))
		return nil
	}
	return &FloatLiteral{Value: val}
}

// parseBooleanLiteral parses true/false keyword literals.
func (par *Parser) parseBooleanLiteral() ExpressionNode {
	return &BooleanLiteral{Value: par.currTokenIs(lexer.TRUE_KEY)}
}

// parseGroupedExpression parses expressions enclosed in parentheses.
// Parentheses are used for grouping and overriding operator precedence.
//
// Syntax:
//
//	(expression)
//
// The group contributes no node of its own; the inner expression is
// returned directly.
func (par *Parser) parseGroupedExpression() ExpressionNode {
	// we are already at the LEFT_PAREN, so just advance
	par.advance()

	expr := par.parseExpression(MINIMUM_PRIORITY)

	if !par.expectAdvance(lexer.RIGHT_PAREN) {
		return nil
	}

	return expr
}

// parseInfixExpression parses a binary operator expression.
// The already-parsed left operand is passed in; the right-hand side is
// parsed with the operator's own precedence, making all ten operators
// left-associative.
//
// Examples:
//
//	a + b, x * y, i < 10, a != b
func (par *Parser) parseInfixExpression(left ExpressionNode) ExpressionNode {
	infix := &InfixExpression{
		Left:     left,
		Operator: par.CurrToken.Literal,
	}

	precedence := getPrecedence(&par.CurrToken)

	par.advance()

	infix.Right = par.parseExpression(precedence)

	return infix
}

// parseCallExpression parses a function call.
// The callee must be a bare identifier (no first-class functions);
// anything else is recorded as an error and the call is dropped.
//
// Syntax:
//
//	callee(arg1, arg2, ...)
func (par *Parser) parseCallExpression(callee ExpressionNode) ExpressionNode {
	ident, ok := callee.(*IdentifierLiteral)
	if !ok {
		par.addError(fmt.Sprintf("[%d:%d] Call target must be an identifier",
			par.CurrToken.Line, par.CurrToken.Column))
		return nil
	}

	call := &CallExpression{Function: *ident}
	call.Arguments = par.parseExpressionList(lexer.RIGHT_PAREN)

	return call
}

// parseExpressionList parses a comma-separated list of expressions
// terminated by the given end token (used for call arguments).
// An empty list is permitted.
func (par *Parser) parseExpressionList(end lexer.TokenType) []ExpressionNode {
	list := make([]ExpressionNode, 0)

	if par.nextTokenIs(end) {
		par.advance()
		return list
	}

	par.advance()

	list = append(list, par.parseExpression(MINIMUM_PRIORITY))

	for par.nextTokenIs(lexer.COMMA_DELIM) {
		par.advance()
		par.advance()

		list = append(list, par.parseExpression(MINIMUM_PRIORITY))
	}

	if !par.expectAdvance(end) {
		return nil
	}

	return list
}

// parseIfExpression parses an if conditional from the prefix table.
// The same shape serves statement position (wrapped in an expression
// statement by the dispatcher) and expression position.
//
// Syntax:
//
//	if condition { consequence }
//	if condition { consequence } else { alternative }
func (par *Parser) parseIfExpression() ExpressionNode {
	par.advance()

	condition := par.parseExpression(MINIMUM_PRIORITY)

	if !par.expectAdvance(lexer.LEFT_BRACE) {
		return nil
	}

	consequence := par.parseBlockStatement()

	var alternative *BlockStatement
	if par.nextTokenIs(lexer.ELSE_KEY) {
		par.advance()

		if !par.expectAdvance(lexer.LEFT_BRACE) {
			return nil
		}

		alternative = par.parseBlockStatement()
	}

	return &IfStatement{Condition: condition, Consequence: consequence, Alternative: alternative}
}
