/*
File    : go-mix/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"github.com/akashmaji946/go-mix/langerr"
)

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphanumeric(c rune) bool {
	return isAlpha(c) || isDigit(c)
}

// readNumber scans [0-9]+("."[0-9]+)?. A `.` is consumed as part of the
// number only when followed by a digit, so `5.` lexes as NUMBER then a
// rejected `.` (no such token in this grammar).
func readNumber(lex *Lexer) Token {
	line := lex.Line
	start := lex.Position
	for isDigit(lex.current()) {
		lex.Advance()
	}
	if lex.current() == '.' && isDigit(lex.Peek()) {
		lex.Advance()
		for isDigit(lex.current()) {
			lex.Advance()
		}
	}
	lexeme := string(lex.Src[start:lex.Position])
	return NewTokenAt(NUMBER_LIT, lexeme, line)
}

// readIdentifier scans [A-Za-z_][A-Za-z0-9_]* and classifies it as a
// keyword or a plain Identifier.
func readIdentifier(lex *Lexer) Token {
	line := lex.Line
	start := lex.Position
	for isAlphanumeric(lex.current()) {
		lex.Advance()
	}
	lexeme := string(lex.Src[start:lex.Position])
	return NewTokenAt(lookupIdent(lexeme), lexeme, line)
}

// readStringLiteral scans a string literal opened by quote (either `"`
// or `'`); the opposite quote character and all other characters,
// including newlines, are permitted inside. Unterminated at end-of-input
// fails with UnterminatedString.
func readStringLiteral(lex *Lexer, quote rune) (Token, *langerr.Diagnostic) {
	line := lex.Line
	lex.Advance() // consume opening quote
	start := lex.Position
	for lex.current() != quote {
		if lex.current() == 0 {
			return Token{}, langerr.NewUnterminatedString(line)
		}
		lex.Advance()
	}
	lexeme := string(lex.Src[start:lex.Position])
	lex.Advance() // consume closing quote
	return NewTokenAt(STRING_LIT, lexeme, line), nil
}
