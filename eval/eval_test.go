/*
File    : go-mix/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/stretchr/testify/assert"
)

func run(t *testing.T, src string) (string, *Interpreter) {
	t.Helper()
	toks, lexErr := lexer.NewLexer(src).ConsumeTokens()
	assert.Nil(t, lexErr)
	stmts, parseErrs := parser.NewParser(toks).Parse()
	assert.Nil(t, parseErrs)

	var out bytes.Buffer
	it := New(&out, strings.NewReader(""))
	err := it.Interpret(stmts)
	assert.Nil(t, err)
	return out.String(), it
}

func TestEval_VarDeclAndArithmeticPrint(t *testing.T) {
	out, _ := run(t, `var a = 5 print a+2`)
	assert.Equal(t, "7\n", out)
}

func TestEval_ArrayIndexAssignment(t *testing.T) {
	out, _ := run(t, `var a = [1, 2, 3] a[1] = 9 print a`)
	assert.Equal(t, "[1, 9, 3]\n", out)
}

func TestEval_RecursiveFibonacci(t *testing.T) {
	src := `
func f(n) {
	if (n < 2) { return n }
	return f(n-1) + f(n-2)
}
print f(10)`
	out, _ := run(t, src)
	assert.Equal(t, "55\n", out)
}

func TestEval_DictionarySize(t *testing.T) {
	out, _ := run(t, `var d = {"x": 1} d["y"] = 2 print size(d)`)
	assert.Equal(t, "2\n", out)
}

func TestEval_BreakExitsLoop(t *testing.T) {
	src := `
var i = 0
while (true) {
	i = i + 1
	if (i == 2) { break }
}
print i`
	out, _ := run(t, src)
	assert.Equal(t, "2\n", out)
}

func TestEval_SortAscending(t *testing.T) {
	out, _ := run(t, `print sort([3, 1, 2])`)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestEval_AppendWritesThroughPointer(t *testing.T) {
	out, _ := run(t, `var a = [1, 2] append(a, 3) print a`)
	assert.Equal(t, "[1, 2, 3]\n", out)
}

func TestEval_RemoveFromArray(t *testing.T) {
	out, _ := run(t, `var a = [1, 2, 3] remove(a, 1) print a`)
	assert.Equal(t, "[1, 3]\n", out)
}

func TestEval_ToNumberAndToString(t *testing.T) {
	out, _ := run(t, `print to_number("3.5") + 1 print to_string(42)`)
	assert.Equal(t, "4.5\n42\n", out)
}

func TestEval_BinaryTypeErrorOnMismatch(t *testing.T) {
	toks, _ := lexer.NewLexer(`print 1 + "a"`).ConsumeTokens()
	stmts, _ := parser.NewParser(toks).Parse()
	var out bytes.Buffer
	it := New(&out, strings.NewReader(""))
	err := it.Interpret(stmts)
	assert.NotNil(t, err)
	assert.Equal(t, "BinaryTypeError", string(err.Kind))
}

func TestEval_ModuloIsFloatRemainder(t *testing.T) {
	out, _ := run(t, `print 5.5 % 2`)
	assert.Equal(t, "1.5\n", out)
}

func TestEval_ModuloByZeroYieldsNaN(t *testing.T) {
	out, _ := run(t, `print 1 % 0`)
	assert.Equal(t, "NaN\n", out)
}

func TestEval_DivideByZero(t *testing.T) {
	toks, _ := lexer.NewLexer(`print 1 / 0`).ConsumeTokens()
	stmts, _ := parser.NewParser(toks).Parse()
	var out bytes.Buffer
	it := New(&out, strings.NewReader(""))
	err := it.Interpret(stmts)
	assert.NotNil(t, err)
	assert.Equal(t, "DivideByZero", string(err.Kind))
}

func TestEval_ArgParamMismatch(t *testing.T) {
	toks, _ := lexer.NewLexer(`func f(a, b) { return a } print f(1)`).ConsumeTokens()
	stmts, _ := parser.NewParser(toks).Parse()
	var out bytes.Buffer
	it := New(&out, strings.NewReader(""))
	err := it.Interpret(stmts)
	assert.NotNil(t, err)
	assert.Equal(t, "ArgParamNumberMismatch", string(err.Kind))
}

func TestEval_AssignToLiteralIsSilentlySwallowed(t *testing.T) {
	toks, _ := lexer.NewLexer(`[1,2][0] = 9`).ConsumeTokens()
	stmts, _ := parser.NewParser(toks).Parse()
	var out bytes.Buffer
	it := New(&out, strings.NewReader(""))
	err := it.Interpret(stmts)
	assert.Nil(t, err)
}

func TestEval_InputReadsOneLine(t *testing.T) {
	toks, _ := lexer.NewLexer(`print input("> ")`).ConsumeTokens()
	stmts, _ := parser.NewParser(toks).Parse()
	var out bytes.Buffer
	it := New(&out, strings.NewReader("hello\n"))
	err := it.Interpret(stmts)
	assert.Nil(t, err)
	assert.Equal(t, "> hello\n", out.String())
}

func TestEval_NoShortCircuitEvaluatesBothSides(t *testing.T) {
	src := `
func sideEffect() { print "evaluated" return true }
print false and sideEffect()`
	out, _ := run(t, src)
	assert.Equal(t, "evaluated\nfalse\n", out)
}
