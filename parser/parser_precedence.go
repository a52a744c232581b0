/*
File    : go-flux/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/go-flux/lexer"

// Operator precedence constants
// Higher number = higher precedence (binds tighter)
//
// Precedence Hierarchy (lowest to highest):
// 1. Equality operators
// 2. Relational operators
// 3. Additive operators
// 4. Multiplicative operators
// 5. Call operator (postfix '(')
//
// Example: In "a + b * c", multiplication has higher precedence than addition,
// so it's parsed as "a + (b * c)" rather than "(a + b) * c"
const (
	MINIMUM_PRIORITY = 0 // Base priority for starting expression parsing

	// Equality operators: == !=
	EQUALITY_PRIORITY = 10

	// Relational operators: < > <= >=
	RELATIONAL_PRIORITY = 20

	// Additive operators: + -
	PLUS_PRIORITY = 30

	// Multiplicative operators: * /
	MUL_PRIORITY = 40

	// Call operator: callee(args)
	CALL_PRIORITY = 50
)

// getPrecedence returns the precedence level for a given token.
// This function is central to the Pratt parsing algorithm, determining
// how tightly operators bind to their operands.
//
// Parameters:
//
//	token - The token to get precedence for
//
// Returns:
//
//	An integer representing the precedence level (higher = tighter binding)
//	Returns MINIMUM_PRIORITY for tokens that are not operators, which stops
//	the Pratt loop from extending the current expression.
func getPrecedence(token *lexer.Token) int {
	switch token.Type {

	// Equality: == !=
	case lexer.EQ_OP, lexer.NE_OP:
		return EQUALITY_PRIORITY

	// Relational: < > <= >=
	case lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP:
		return RELATIONAL_PRIORITY

	// Additive: + -
	case lexer.SUM_OP, lexer.SUB_OP:
		return PLUS_PRIORITY

	// Multiplicative: * /
	case lexer.MUL_OP, lexer.DIV_OP:
		return MUL_PRIORITY

	// Call: (
	case lexer.LEFT_PAREN:
		return CALL_PRIORITY

	default:
		return MINIMUM_PRIORITY // Not an operator token
	}
}

// binaryParseFunction is a function type for parsing infix expressions.
// Infix expressions have a left operand, an operator, and a right operand.
//
// Parameters:
//
//	ExpressionNode - The already-parsed left operand
//
// Returns:
//
//	ExpressionNode - The complete infix expression node
//
// Example: For "a + b", when parsing "+", the left operand "a" is passed in,
// and the function parses "b" and returns the complete "a + b" expression.
type binaryParseFunction func(ExpressionNode) ExpressionNode

// unaryParseFunction is a function type for parsing prefix expressions.
// Prefix parsers consume tokens starting at the current position and
// produce an expression without reference to a left operand.
type unaryParseFunction func() ExpressionNode

// registerUnaryFuncs is a helper to register a prefix parsing function
// for multiple token types.
//
// Parameters:
//
//	f          - The parsing function to register
//	tokenTypes - Variable number of token types to associate with the function
//
// This allows one parsing function to handle multiple related token types.
// For example, parseBooleanLiteral handles both true and false.
func (par *Parser) registerUnaryFuncs(f unaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.UnaryFuncs[tokenType] = f
	}
}

// registerBinaryFuncs is a helper to register an infix parsing function
// for multiple token types.
//
// Parameters:
//
//	f          - The parsing function to register
//	tokenTypes - Variable number of token types to associate with the function
//
// This allows one parsing function to handle multiple related token types.
// For example, parseInfixExpression handles all ten binary operators.
func (par *Parser) registerBinaryFuncs(f binaryParseFunction, tokenTypes ...lexer.TokenType) {
	for _, tokenType := range tokenTypes {
		par.BinaryFuncs[tokenType] = f
	}
}
