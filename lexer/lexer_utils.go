/*
File    : go-flux/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"fmt"
	"strings"
)

// isDigit reports whether the byte is an ASCII decimal digit.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLetter reports whether the byte can start an identifier.
// Identifiers start with an ASCII letter or underscore.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isIdentByte reports whether the byte can continue an identifier.
// After the first byte, digits are also permitted.
func isIdentByte(c byte) bool {
	return isLetter(c) || isDigit(c)
}

// readIdentifier reads a maximal identifier run of [A-Za-z0-9_] starting
// at the current byte. The read loop leaves the cursor positioned on the
// first byte past the identifier, so callers must not advance again.
func (lex *Lexer) readIdentifier() string {
	start := lex.Position
	for lex.Current != 0 && isIdentByte(lex.Current) {
		lex.Advance()
	}
	return lex.Src[start:lex.Position]
}

// readNumber reads a maximal run of [0-9.] starting at the current byte
// and classifies it as an INT_LIT (no dot) or FLOAT_LIT (exactly one dot).
//
// At most one '.' is permitted: on the second dot the lexer records the
// "Too many dots in number" diagnostic and emits an ILLEGAL token carrying
// the bytes consumed so far. The remainder of the malformed literal is left
// in the stream and will surface as further tokens.
//
// Like readIdentifier, the read loop leaves the cursor positioned past the
// consumed lexeme, so callers must not advance again.
//
// Examples:
//
//	"42"    -> INT_LIT "42"
//	"3.14"  -> FLOAT_LIT "3.14"
//	"1.2.3" -> ILLEGAL "1.2" (+ diagnostic), then '.'/INT tokens follow
func (lex *Lexer) readNumber() Token {
	start := lex.Position
	line, column := lex.Line, lex.Column
	dotCount := 0

	var builder strings.Builder

	for lex.Current != 0 && (isDigit(lex.Current) || lex.Current == '.') {
		if lex.Current == '.' {
			dotCount++
		}

		if dotCount > 1 {
			lex.addError(fmt.Sprintf("Too many dots in number Line: %d Col: %d", lex.Line, lex.Column))
			return NewTokenWithMetadata(ILLEGAL_TYPE, lex.Src[start:lex.Position], line, column)
		}

		builder.WriteByte(lex.Current)
		lex.Advance()
	}

	if dotCount == 0 {
		return NewTokenWithMetadata(INT_LIT, builder.String(), line, column)
	}
	return NewTokenWithMetadata(FLOAT_LIT, builder.String(), line, column)
}
