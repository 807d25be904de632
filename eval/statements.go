/*
File    : go-mix/eval/statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/go-mix/langerr"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/value"
)

func (it *Interpreter) execute(stmt parser.Stmt) *langerr.Diagnostic {
	switch s := stmt.(type) {
	case parser.VarDeclStmt:
		v, err := it.evaluate(s.Value)
		if err != nil {
			return err
		}
		it.Env.Declare(s.Name, v)
		return nil

	case parser.ExpressionStmt:
		_, err := it.evaluate(s.Expr)
		return err

	case parser.BlockStmt:
		it.Env.NewScope()
		defer it.Env.ExitScope()
		for _, inner := range s.Body {
			if err := it.execute(inner); err != nil {
				return err
			}
		}
		return nil

	case parser.IfStmt:
		cond, err := it.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if cond.Kind != value.BoolKind {
			return langerr.NewIfConditionNotBoolean(s.Line())
		}
		if cond.Bool {
			return it.execute(s.Then)
		}
		if s.Else != nil {
			return it.execute(s.Else)
		}
		return nil

	case parser.WhileStmt:
		for {
			cond, err := it.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if cond.Kind != value.BoolKind {
				return langerr.NewLoopConditionNotBoolean(s.Line())
			}
			if !cond.Bool {
				return nil
			}
			if err := it.execute(s.Body); err != nil {
				if err.Kind == langerr.ThrownBreak {
					return nil
				}
				return err
			}
		}

	case parser.PrintStmt:
		v, err := it.evaluate(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(it.Out, v.Display())
		return nil

	case parser.BreakStmt:
		return langerr.NewThrownBreak(s.Line())

	case parser.ReturnStmt:
		v, err := it.evaluate(s.Expr)
		if err != nil {
			return err
		}
		return langerr.NewThrownReturn(v, s.Line())

	case parser.FunctionStmt:
		it.Env.Declare(s.Name, value.Fn(s.Parameters, s.Body))
		return nil

	default:
		return nil
	}
}
