/*
File    : go-mix/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestConsumeToken represents one table-driven test case for
// ConsumeTokens: an input source string and the tokens expected from it.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestNewLexer_ConsumeTokens(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
			},
		},
		{
			Input: ` { } + []  abc - a12 `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
			},
		},
		{
			Input: ` <=  + 2   {31} - 12 __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
			},
		},
		{
			Input: `func if else for while and or break print return var true false null __KEY__`,
			ExpectedTokens: []Token{
				NewToken(FUNC_KEY, "func"),
				NewToken(IF_KEY, "if"),
				NewToken(ELSE_KEY, "else"),
				NewToken(FOR_KEY, "for"),
				NewToken(WHILE_KEY, "while"),
				NewToken(AND_KEY, "and"),
				NewToken(OR_KEY, "or"),
				NewToken(BREAK_KEY, "break"),
				NewToken(PRINT_KEY, "print"),
				NewToken(RETURN_KEY, "return"),
				NewToken(VAR_KEY, "var"),
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(NULL_KEY, "null"),
				NewToken(IDENTIFIER_ID, "__KEY__"),
			},
		},
		{
			Input: `
			func main(a, b) {
				var c = a[0];
				if (c <= 0) {
					return a + b;
				} else {
					var f = 1;
					while (f < b) {
						f = f * a + 2;
					}
					return f;
				}
			}
			`,
			ExpectedTokens: []Token{
				NewToken(FUNC_KEY, "func"),
				NewToken(IDENTIFIER_ID, "main"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(COMMA_DELIM, ","),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "c"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(LEFT_BRACKET, "["),
				NewToken(NUMBER_LIT, "0"),
				NewToken(RIGHT_BRACKET, "]"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IF_KEY, "if"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "c"),
				NewToken(LE_OP, "<="),
				NewToken(NUMBER_LIT, "0"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(PLUS_OP, "+"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(ELSE_KEY, "else"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(WHILE_KEY, "while"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(LT_OP, "<"),
				NewToken(IDENTIFIER_ID, "b"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(ASSIGN_OP, "="),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(MUL_OP, "*"),
				NewToken(IDENTIFIER_ID, "a"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(RETURN_KEY, "return"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(RIGHT_BRACE, "}"),
			},
		},
		{
			Input: `1 1.23 true "hello" null`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "1"),
				NewToken(NUMBER_LIT, "1.23"),
				NewToken(TRUE_KEY, "true"),
				NewToken(STRING_LIT, "hello"),
				NewToken(NULL_KEY, "null"),
			},
		},
		{
			// a trailing dot with no following digit is not part of the
			// number; tokenizing halts at the unrecognised `.`.
			Input: `5. 6`,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "5"),
			},
		},
		{
			Input: "'single quoted' \"double quoted\"",
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "single quoted"),
				NewToken(STRING_LIT, "double quoted"),
			},
		},
		{
			Input: "# a whole-line comment\nvar x = 1 # trailing comment",
			ExpectedTokens: []Token{
				NewToken(VAR_KEY, "var"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "1"),
			},
		},
	}

	for _, test := range tests {
		lex := NewLexer(test.Input)
		gotTokens, _ := lex.ConsumeTokens()

		assert.Equal(t, len(test.ExpectedTokens), len(gotTokens))
		for i, token := range test.ExpectedTokens {
			if i >= len(gotTokens) {
				break
			}
			assert.Equal(t, token.Type, gotTokens[i].Type)
			assert.Equal(t, token.Literal, gotTokens[i].Literal)
		}
	}
}

func TestNewLexer_UnterminatedString(t *testing.T) {
	lex := NewLexer(`"never closed`)
	_, err := lex.ConsumeTokens()
	assert.NotNil(t, err)
	assert.Equal(t, "Unterminated string at end of file.", err.Message)
}

func TestNewLexer_UnexpectedCharacter(t *testing.T) {
	lex := NewLexer("var x = 1 @ 2")
	_, err := lex.ConsumeTokens()
	assert.NotNil(t, err)
	assert.Equal(t, "Line 1: unexpected character `@`.", err.Message)
}

func TestNewLexer_LineTracking(t *testing.T) {
	lex := NewLexer("var x = 1\nvar y = 2\nprint y")
	tokens, err := lex.ConsumeTokens()
	assert.Nil(t, err)
	assert.Equal(t, 1, tokens[0].Line)
	found := false
	for _, tok := range tokens {
		if tok.Literal == "y" && tok.Type == IDENTIFIER_ID {
			assert.Equal(t, 2, tok.Line)
			found = true
			break
		}
	}
	assert.True(t, found)
}
