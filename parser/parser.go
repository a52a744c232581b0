/*
File    : go-flux/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a Pratt parser (also known as top-down operator precedence parser)
for the Flux programming language.

The parser converts a stream of tokens from the lexer into an Abstract Syntax Tree (AST).
It handles:
- Expressions (infix arithmetic and comparisons, literals, identifiers, calls)
- Statements (var declarations, assignments, functions, returns, while loops)
- If conditionals (usable in statement position and as a prefix expression)
- Operator precedence and associativity

Key Features:
- Pratt parsing algorithm for efficient expression parsing
- Fixed precedence ladder: equality < relational < additive < multiplicative < call
- Error collection (doesn't panic on first error)
- Explicit type annotations on every binding and parameter

The parser never throws; the consumer checks the error list at the phase
boundary and aborts before compilation if it is non-empty.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/go-flux/lexer"
)

// Parser represents the parser state and configuration.
// It maintains all the information needed to parse Flux source code
// into an Abstract Syntax Tree (AST).
type Parser struct {
	Lex       lexer.Lexer // Lexer instance for tokenizing source code
	CurrToken lexer.Token // Current token being processed
	NextToken lexer.Token // Next token (for lookahead)

	// Function maps for Pratt parsing
	// These maps associate token types with their parsing functions
	UnaryFuncs  map[lexer.TokenType]unaryParseFunction  // Prefix parsers (literals, identifiers, groups, if)
	BinaryFuncs map[lexer.TokenType]binaryParseFunction // Infix parsers (operators, call)

	// Collect parsing errors instead of panicking
	// This allows reporting multiple errors in a single parse
	Errors []string
}

// NewParser creates and initializes a new Parser instance.
// This is the main entry point for creating a parser.
//
// Parameters:
//
//	src - The Flux source code to parse
//
// Returns:
//
//	A pointer to a fully initialized Parser instance
//
// The parser is ready to use immediately after creation.
// Call Parse() to begin parsing the source code.
func NewParser(src string) *Parser {
	// Create a lexer for the source code
	lex := lexer.NewLexer(src)

	// Create the parser with the lexer
	par := &Parser{
		Lex: lex,
	}

	// Initialize all parser state (maps, tokens, etc.)
	par.init()

	return par
}

// init initializes the parser's internal state.
// This function sets up:
// 1. Function maps for Pratt parsing
// 2. Error collection
// 3. Initial token lookahead
//
// The function registers parsing functions for all supported token types,
// establishing the expression grammar of the Flux language.
func (par *Parser) init() {
	// Initialize all maps
	par.UnaryFuncs = make(map[lexer.TokenType]unaryParseFunction)
	par.BinaryFuncs = make(map[lexer.TokenType]binaryParseFunction)
	par.Errors = make([]string, 0)

	// Register unary/prefix parsing functions
	// These handle tokens that can start an expression

	// Identifiers: variable names, function names
	par.registerUnaryFuncs(par.parseIdentifierExpression, lexer.IDENTIFIER_ID)

	// Numeric literals: 42, 3.14
	par.registerUnaryFuncs(par.parseIntegerLiteral, lexer.INT_LIT)
	par.registerUnaryFuncs(par.parseFloatLiteral, lexer.FLOAT_LIT)

	// Parenthesized expressions: (expr)
	par.registerUnaryFuncs(par.parseGroupedExpression, lexer.LEFT_PAREN)

	// If conditionals used in expression position
	par.registerUnaryFuncs(par.parseIfExpression, lexer.IF_KEY)

	// Boolean literals: true, false
	par.registerUnaryFuncs(par.parseBooleanLiteral, lexer.TRUE_KEY, lexer.FALSE_KEY)

	// Register binary/infix parsing functions
	// These handle operators that appear between two expressions

	// Arithmetic operators: +, -, *, /
	par.registerBinaryFuncs(par.parseInfixExpression, lexer.SUM_OP, lexer.SUB_OP, lexer.MUL_OP, lexer.DIV_OP)

	// Comparison operators: ==, !=, <, >, <=, >=
	par.registerBinaryFuncs(par.parseInfixExpression, lexer.EQ_OP, lexer.NE_OP, lexer.LT_OP, lexer.GT_OP, lexer.LE_OP, lexer.GE_OP)

	// Call expressions: callee(args)
	par.registerBinaryFuncs(par.parseCallExpression, lexer.LEFT_PAREN)

	// Prime the token lookahead by advancing twice
	// After this, CurrToken and NextToken are both valid
	par.advance()
	par.advance()
}

// Parse parses the whole token stream into a RootNode.
// Statements that fail to parse are dropped (the statement parser has
// already recorded a descriptive error); the loop then advances and
// keeps going so that one malformed statement does not hide the rest.
func (par *Parser) Parse() *RootNode {
	root := &RootNode{Statements: make([]StatementNode, 0)}

	for par.CurrToken.Type != lexer.EOF_TYPE {
		stmt := par.parseStatement()
		if stmt != nil {
			root.Statements = append(root.Statements, stmt)
		}
		par.advance()
	}

	return root
}

// advance moves the parser forward by one token.
// This implements the token lookahead mechanism:
// - CurrToken becomes NextToken
// - NextToken is fetched from the lexer
//
// This two-token lookahead allows the parser to make decisions
// based on the current token and peek at what's coming next.
func (par *Parser) advance() {
	par.CurrToken = par.NextToken
	par.NextToken = par.Lex.NextToken()
}

// currTokenIs checks whether the current token has the given type.
func (par *Parser) currTokenIs(tt lexer.TokenType) bool {
	return par.CurrToken.Type == tt
}

// nextTokenIs checks whether the lookahead token has the given type.
func (par *Parser) nextTokenIs(tt lexer.TokenType) bool {
	return par.NextToken.Type == tt
}

// expectAdvance checks if the next token matches the expected type,
// and if so, advances the parser.
//
// Parameters:
//
//	expected - The token type we expect to see next
//
// Returns:
//
//	true if the next token matches and we advanced, false otherwise
//
// This is a common pattern in parsing: "I expect a semicolon next,
// and if it's there, move past it." On a mismatch the descriptive
// "Expected X, got Y instead" error is recorded and the parser stays put.
func (par *Parser) expectAdvance(expected lexer.TokenType) bool {
	if !par.nextTokenIs(expected) {
		par.addError(fmt.Sprintf("[%d:%d] Expected %s, got %s instead",
			par.NextToken.Line, par.NextToken.Column, expected, par.NextToken.Type))
		return false
	}
	par.advance()
	return true
}

// addError adds an error message to the parser's error list.
// The parser collects errors instead of panicking, allowing it to
// report multiple errors in a single parse.
func (par *Parser) addError(msg string) {
	par.Errors = append(par.Errors, msg)
}

// HasErrors returns true if the parser recorded any errors.
func (par *Parser) HasErrors() bool {
	return len(par.Errors) > 0
}

// GetErrors returns the list of parser error messages.
func (par *Parser) GetErrors() []string {
	return par.Errors
}
