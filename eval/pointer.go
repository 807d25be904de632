/*
File    : go-mix/eval/pointer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/go-mix/environment"
	"github.com/akashmaji946/go-mix/langerr"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/value"
)

// buildPointer walks an assignment target down to its base. A Variable
// base yields a Pointer with no indices; an Element wraps the pointer
// built from its container with one more evaluated index. Any other
// base (a literal array/dictionary, or a call result) is not
// addressable and yields the ThrownLiteralAssignment sentinel.
func (it *Interpreter) buildPointer(expr parser.Expr) (environment.Pointer, *langerr.Diagnostic) {
	switch e := expr.(type) {
	case parser.VariableExpr:
		return environment.Pointer{Name: e.Name}, nil
	case parser.ElementExpr:
		ptr, err := it.buildPointer(e.Container)
		if err != nil {
			return environment.Pointer{}, err
		}
		idx, err := it.evaluate(e.Index)
		if err != nil {
			return environment.Pointer{}, err
		}
		ptr.Indices = append(ptr.Indices, idx)
		return ptr, nil
	default:
		return environment.Pointer{}, langerr.NewThrownLiteralAssignment(expr.Line())
	}
}

// writeThrough builds a Pointer from target and writes v through it.
// A ThrownLiteralAssignment from buildPointer is swallowed silently
// (spec §4.5); any other error — including a genuine environment.Update
// failure while walking nested containers — propagates.
func (it *Interpreter) writeThrough(target parser.Expr, v value.Value, line int) *langerr.Diagnostic {
	ptr, err := it.buildPointer(target)
	if err != nil {
		if err.Kind == langerr.ThrownLiteralAssignment {
			return nil
		}
		return err
	}
	return it.Env.Update(ptr, v, line)
}
