/*
File    : go-mix/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/go-mix/lexer"
	"github.com/stretchr/testify/assert"
)

func tokensFor(t *testing.T, src string) []lexer.Token {
	t.Helper()
	lex := lexer.NewLexer(src)
	toks, err := lex.ConsumeTokens()
	assert.Nil(t, err)
	return toks
}

func TestParser_VarDeclAndPrint(t *testing.T) {
	stmts, errs := NewParser(tokensFor(t, `var a = 5 print a+2`)).Parse()
	assert.Nil(t, errs)
	assert.Len(t, stmts, 2)

	decl, ok := stmts[0].(VarDeclStmt)
	assert.True(t, ok)
	assert.Equal(t, "a", decl.Name)

	printStmt, ok := stmts[1].(PrintStmt)
	assert.True(t, ok)
	bin, ok := printStmt.Expr.(BinaryExpr)
	assert.True(t, ok)
	assert.Equal(t, lexer.PLUS_OP, bin.Op)
}

func TestParser_AssignmentIsRightAssociative(t *testing.T) {
	stmts, errs := NewParser(tokensFor(t, `a = b = 3`)).Parse()
	assert.Nil(t, errs)
	assert.Len(t, stmts, 1)
	outer := stmts[0].(ExpressionStmt).Expr.(AssignmentExpr)
	assert.Equal(t, "a", outer.Target.(VariableExpr).Name)
	inner, ok := outer.Value.(AssignmentExpr)
	assert.True(t, ok)
	assert.Equal(t, "b", inner.Target.(VariableExpr).Name)
}

func TestParser_PrecedenceClimb(t *testing.T) {
	// 1 + 2 * 3 parses as 1 + (2 * 3)
	stmts, errs := NewParser(tokensFor(t, `print 1 + 2 * 3`)).Parse()
	assert.Nil(t, errs)
	printStmt := stmts[0].(PrintStmt)
	top := printStmt.Expr.(BinaryExpr)
	assert.Equal(t, lexer.PLUS_OP, top.Op)
	right := top.Right.(BinaryExpr)
	assert.Equal(t, lexer.MUL_OP, right.Op)
}

func TestParser_EmptyArrayDictCall(t *testing.T) {
	stmts, errs := NewParser(tokensFor(t, `var a = [] var d = {} f()`)).Parse()
	assert.Nil(t, errs)
	assert.Len(t, stmts, 3)
	arr := stmts[0].(VarDeclStmt).Value.(ArrayExpr)
	assert.Empty(t, arr.Elements)
	dict := stmts[1].(VarDeclStmt).Value.(DictionaryExpr)
	assert.Empty(t, dict.Entries)
	call := stmts[2].(ExpressionStmt).Expr.(CallExpr)
	assert.Empty(t, call.Args)
}

func TestParser_ForDesugarsToWhile(t *testing.T) {
	stmts, errs := NewParser(tokensFor(t, `for (var i = 0; i < 3; i = i + 1) { print i }`)).Parse()
	assert.Nil(t, errs)
	assert.Len(t, stmts, 1)
	block := stmts[0].(BlockStmt)
	assert.Len(t, block.Body, 2)
	_, isVarDecl := block.Body[0].(VarDeclStmt)
	assert.True(t, isVarDecl)
	while, ok := block.Body[1].(WhileStmt)
	assert.True(t, ok)
	innerBlock := while.Body.(BlockStmt)
	assert.Len(t, innerBlock.Body, 2)
}

func TestParser_ForElisions(t *testing.T) {
	stmts, errs := NewParser(tokensFor(t, `for (;;) { break }`)).Parse()
	assert.Nil(t, errs)
	block := stmts[0].(BlockStmt)
	assert.Len(t, block.Body, 1)
	while := block.Body[0].(WhileStmt)
	cond := while.Condition.(LiteralExpr)
	assert.Equal(t, BoolLit, cond.Kind)
	assert.True(t, cond.Bool)
}

func TestParser_FunctionDecl(t *testing.T) {
	stmts, errs := NewParser(tokensFor(t, `func f(n) { if (n < 2) { return n } return f(n-1)+f(n-2) }`)).Parse()
	assert.Nil(t, errs)
	fn := stmts[0].(FunctionStmt)
	assert.Equal(t, "f", fn.Name)
	assert.Equal(t, []string{"n"}, fn.Parameters)
}

func TestParser_ElementIndexingChain(t *testing.T) {
	stmts, errs := NewParser(tokensFor(t, `a[1] = 9`)).Parse()
	assert.Nil(t, errs)
	assign := stmts[0].(ExpressionStmt).Expr.(AssignmentExpr)
	elem, ok := assign.Target.(ElementExpr)
	assert.True(t, ok)
	assert.Equal(t, "a", elem.Container.(VariableExpr).Name)
}

func TestParser_RecoveryReportsMultipleErrors(t *testing.T) {
	src := "print {\nfor (x = 5; x < 2; x = x + 1 {print x}"
	_, errs := NewParser(tokensFor(t, src)).Parse()
	assert.NotEmpty(t, errs)

	// The first diagnostic is the dictionary-key expression inside
	// `print {`: it must blame the last-consumed token (the `{` on
	// line 1), not the unconsumed lookahead (`for` on line 2).
	assert.Equal(t, "ExpectedExpression", string(errs[0].Kind))
	assert.Equal(t, 1, errs[0].Line)

	var sawParenAfterIncrement bool
	for _, e := range errs {
		if e.Kind == "ExpectedParenAfterIncrement" {
			sawParenAfterIncrement = true
			assert.Equal(t, 2, e.Line)
		}
	}
	assert.True(t, sawParenAfterIncrement)
}

func TestParser_EmptySourceYieldsEmptyList(t *testing.T) {
	stmts, errs := NewParser(tokensFor(t, ``)).Parse()
	assert.Nil(t, errs)
	assert.Empty(t, stmts)
}

func TestParser_NeverReturnsBothStmtsAndErrors(t *testing.T) {
	stmts, errs := NewParser(tokensFor(t, `var = `)).Parse()
	if errs != nil {
		assert.Nil(t, stmts)
	} else {
		assert.Nil(t, errs)
	}
}
