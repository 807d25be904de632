/*
File    : go-mix/eval/interpreter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements the tree-walking evaluator: one Interpreter
// holding a single environment.Environment, walked statement-by-statement
// and expression-by-expression. This replaces the teacher's 20-file
// eval/ package (which dispatched over objects.GoMixObject and the
// struct/enum/switch machinery this language doesn't have) with a
// from-scratch evaluator shaped the same way — one dispatcher per node
// kind, errors returned rather than panicked.
package eval

import (
	"bufio"
	"io"

	"github.com/akashmaji946/go-mix/environment"
	"github.com/akashmaji946/go-mix/langerr"
	"github.com/akashmaji946/go-mix/parser"
)

// Interpreter owns one Environment across its whole lifetime. A REPL
// keeps a single Interpreter alive across input lines so declarations
// persist between prompts (spec §5's shared-resource policy); a
// file-execution run constructs one, runs it once, and discards it.
type Interpreter struct {
	Env *environment.Environment
	Out io.Writer
	in  *bufio.Reader
}

// New creates an Interpreter with a fresh base environment, writing
// `print` output to out and reading `input` lines from in.
func New(out io.Writer, in io.Reader) *Interpreter {
	return &Interpreter{Env: environment.New(), Out: out, in: bufio.NewReader(in)}
}

// Interpret executes stmts in order. The first error aborts the
// sequence and is returned; a nil return means every statement ran to
// completion.
func (it *Interpreter) Interpret(stmts []parser.Stmt) *langerr.Diagnostic {
	for _, s := range stmts {
		if err := it.execute(s); err != nil {
			return err
		}
	}
	return nil
}
