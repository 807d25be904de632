/*
File    : go-mix/eval/expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"math"

	"github.com/akashmaji946/go-mix/langerr"
	"github.com/akashmaji946/go-mix/lexer"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/value"
)

func (it *Interpreter) evaluate(expr parser.Expr) (value.Value, *langerr.Diagnostic) {
	switch e := expr.(type) {
	case parser.LiteralExpr:
		return it.evalLiteral(e), nil
	case parser.VariableExpr:
		return it.Env.Get(e.Name, e.Line())
	case parser.GroupingExpr:
		return it.evaluate(e.Inner)
	case parser.ArrayExpr:
		return it.evalArray(e)
	case parser.DictionaryExpr:
		return it.evalDictionary(e)
	case parser.UnaryExpr:
		return it.evalUnary(e)
	case parser.BinaryExpr:
		return it.evalBinary(e)
	case parser.ElementExpr:
		return it.evalElement(e)
	case parser.AssignmentExpr:
		return it.evalAssignment(e)
	case parser.CallExpr:
		return it.evalCall(e)
	default:
		return value.Null, nil
	}
}

func (it *Interpreter) evalLiteral(e parser.LiteralExpr) value.Value {
	switch e.Kind {
	case parser.NumberLit:
		return value.Num(e.Number)
	case parser.StringLit:
		return value.Str(e.Str)
	case parser.BoolLit:
		return value.Bool_(e.Bool)
	default:
		return value.Null
	}
}

func (it *Interpreter) evalArray(e parser.ArrayExpr) (value.Value, *langerr.Diagnostic) {
	elems := make([]value.Value, len(e.Elements))
	for i, elemExpr := range e.Elements {
		v, err := it.evaluate(elemExpr)
		if err != nil {
			return value.Null, err
		}
		elems[i] = v
	}
	return value.Arr(elems), nil
}

func (it *Interpreter) evalDictionary(e parser.DictionaryExpr) (value.Value, *langerr.Diagnostic) {
	ht := value.NewHashTable()
	for _, entry := range e.Entries {
		k, err := it.evaluate(entry.Key)
		if err != nil {
			return value.Null, err
		}
		v, err := it.evaluate(entry.Value)
		if err != nil {
			return value.Null, err
		}
		if err := ht.Insert(k, v, e.Line()); err != nil {
			return value.Null, err
		}
	}
	return value.Dict(ht), nil
}

func (it *Interpreter) evalUnary(e parser.UnaryExpr) (value.Value, *langerr.Diagnostic) {
	right, err := it.evaluate(e.Right)
	if err != nil {
		return value.Null, err
	}
	switch e.Op {
	case lexer.NOT_OP:
		if right.Kind != value.BoolKind {
			return value.Null, langerr.NewExpectedType("Boolean", right.TypeName(), e.Line())
		}
		return value.Bool_(!right.Bool), nil
	case lexer.MINUS_OP:
		if right.Kind != value.NumberKind {
			return value.Null, langerr.NewExpectedType("Number", right.TypeName(), e.Line())
		}
		return value.Num(-right.Number), nil
	default:
		return value.Null, nil
	}
}

// evalBinary evaluates both operands unconditionally — left then right
// — before dispatching, including for `and`/`or`. There is no
// short-circuit (see DESIGN.md).
func (it *Interpreter) evalBinary(e parser.BinaryExpr) (value.Value, *langerr.Diagnostic) {
	left, err := it.evaluate(e.Left)
	if err != nil {
		return value.Null, err
	}
	right, err := it.evaluate(e.Right)
	if err != nil {
		return value.Null, err
	}
	line := e.Line()

	switch e.Op {
	case lexer.AND_KEY, lexer.OR_KEY:
		if left.Kind != value.BoolKind || right.Kind != value.BoolKind {
			return value.Null, langerr.NewBinaryTypeError("Boolean", left.TypeName(), right.TypeName(), line)
		}
		if e.Op == lexer.AND_KEY {
			return value.Bool_(left.Bool && right.Bool), nil
		}
		return value.Bool_(left.Bool || right.Bool), nil

	case lexer.EQ_OP:
		return value.Bool_(value.Equal(left, right)), nil
	case lexer.NE_OP:
		return value.Bool_(!value.Equal(left, right)), nil

	case lexer.GT_OP, lexer.LT_OP, lexer.GE_OP, lexer.LE_OP:
		return it.evalCompare(e.Op, left, right, line)

	case lexer.PLUS_OP:
		if left.Kind == value.NumberKind && right.Kind == value.NumberKind {
			return value.Num(left.Number + right.Number), nil
		}
		if left.Kind == value.StringKind && right.Kind == value.StringKind {
			return value.Str(left.Str + right.Str), nil
		}
		return value.Null, langerr.NewBinaryTypeError("Number or String", left.TypeName(), right.TypeName(), line)

	case lexer.MINUS_OP, lexer.MUL_OP, lexer.DIV_OP, lexer.MOD_OP:
		if left.Kind != value.NumberKind || right.Kind != value.NumberKind {
			return value.Null, langerr.NewBinaryTypeError("Number", left.TypeName(), right.TypeName(), line)
		}
		return it.evalArith(e.Op, left.Number, right.Number, line)

	default:
		return value.Null, nil
	}
}

func (it *Interpreter) evalCompare(op lexer.TokenType, left, right value.Value, line int) (value.Value, *langerr.Diagnostic) {
	switch {
	case left.Kind == value.NumberKind && right.Kind == value.NumberKind:
		switch op {
		case lexer.GT_OP:
			return value.Bool_(left.Number > right.Number), nil
		case lexer.LT_OP:
			return value.Bool_(left.Number < right.Number), nil
		case lexer.GE_OP:
			return value.Bool_(left.Number >= right.Number), nil
		default:
			return value.Bool_(left.Number <= right.Number), nil
		}
	case left.Kind == value.StringKind && right.Kind == value.StringKind:
		switch op {
		case lexer.GT_OP:
			return value.Bool_(left.Str > right.Str), nil
		case lexer.LT_OP:
			return value.Bool_(left.Str < right.Str), nil
		case lexer.GE_OP:
			return value.Bool_(left.Str >= right.Str), nil
		default:
			return value.Bool_(left.Str <= right.Str), nil
		}
	default:
		return value.Null, langerr.NewBinaryTypeError("Number or String", left.TypeName(), right.TypeName(), line)
	}
}

func (it *Interpreter) evalArith(op lexer.TokenType, l, r float64, line int) (value.Value, *langerr.Diagnostic) {
	switch op {
	case lexer.MINUS_OP:
		return value.Num(l - r), nil
	case lexer.MUL_OP:
		return value.Num(l * r), nil
	case lexer.DIV_OP:
		if r == 0 {
			return value.Null, langerr.NewDivideByZero(line)
		}
		return value.Num(l / r), nil
	default: // MOD_OP, IEEE float remainder; `% 0` yields NaN like the original, not a DivideByZero
		return value.Num(math.Mod(l, r)), nil
	}
}

func (it *Interpreter) evalElement(e parser.ElementExpr) (value.Value, *langerr.Diagnostic) {
	container, err := it.evaluate(e.Container)
	if err != nil {
		return value.Null, err
	}
	idx, err := it.evaluate(e.Index)
	if err != nil {
		return value.Null, err
	}
	line := e.Line()
	switch container.Kind {
	case value.ArrayKind:
		i, ierr := naturalIndex(idx, line)
		if ierr != nil {
			return value.Null, ierr
		}
		if i < 0 || i >= len(container.Array) {
			return value.Null, langerr.NewOutOfBoundsIndex(i, line)
		}
		return container.Array[i], nil
	case value.DictionaryKind:
		return container.Dict.Get(idx, line)
	case value.StringKind:
		i, ierr := naturalIndex(idx, line)
		if ierr != nil {
			return value.Null, ierr
		}
		runes := []rune(container.Str)
		if i < 0 || i >= len(runes) {
			return value.Null, langerr.NewOutOfBoundsIndex(i, line)
		}
		return value.Str(string(runes[i])), nil
	default:
		return value.Null, langerr.NewNotIndexable(line)
	}
}

// evalAssignment evaluates the right-hand side first, then builds a
// Pointer from the target and writes through it. The whole expression
// always evaluates to the assigned value, even when the target turns
// out to be a literal and the write is silently skipped (spec §4.5/§9).
func (it *Interpreter) evalAssignment(e parser.AssignmentExpr) (value.Value, *langerr.Diagnostic) {
	v, err := it.evaluate(e.Value)
	if err != nil {
		return value.Null, err
	}
	if err := it.writeThrough(e.Target, v, e.Line()); err != nil {
		return value.Null, err
	}
	return v, nil
}

func (it *Interpreter) evalCall(e parser.CallExpr) (value.Value, *langerr.Diagnostic) {
	callee, err := it.evaluate(e.Callee)
	if err != nil {
		return value.Null, err
	}
	line := e.Line()
	switch callee.Kind {
	case value.BuiltinKind:
		return it.callBuiltin(callee.Builtin, e.Args, line)
	case value.FunctionKind:
		return it.callFunction(callee.Function, e.Args, line)
	default:
		return value.Null, langerr.NewCannotCallName(line)
	}
}

func (it *Interpreter) callFunction(fn *value.Function, argExprs []parser.Expr, line int) (value.Value, *langerr.Diagnostic) {
	if len(argExprs) != len(fn.Parameters) {
		return value.Null, langerr.NewArgParamNumberMismatch(len(argExprs), len(fn.Parameters), line)
	}
	args := make([]value.Value, len(argExprs))
	for i, a := range argExprs {
		v, err := it.evaluate(a)
		if err != nil {
			return value.Null, err
		}
		args[i] = v
	}

	it.Env.NewScope()
	defer it.Env.ExitScope()
	for i, param := range fn.Parameters {
		it.Env.Declare(param, args[i])
	}

	if err := it.execute(fn.Body); err != nil {
		if err.Kind == langerr.ThrownReturn {
			if rv, ok := err.ReturnValue.(value.Value); ok {
				return rv, nil
			}
			return value.Null, nil
		}
		return value.Null, err
	}
	return value.Null, nil
}

// naturalIndex accepts only a Number whose value is a non-negative
// integer, mirroring environment.indexToUsize for the read path.
func naturalIndex(v value.Value, line int) (int, *langerr.Diagnostic) {
	if v.Kind != value.NumberKind {
		return 0, langerr.NewNonNumberIndex(v.TypeName(), line)
	}
	if v.Number < 0 || v.Number != float64(int(v.Number)) {
		return 0, langerr.NewNonNaturalIndex(v.Display(), line)
	}
	return int(v.Number), nil
}
