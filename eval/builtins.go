/*
File    : go-mix/eval/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// This file dispatches the seven builtin functions seeded into every
// environment's base scope (spec §6). append/remove mutate through
// their first argument's Pointer, the same write-through path
// assignment uses, rather than taking a first-class callback the way
// the teacher's objects.Builtin dispatch does — this language has no
// host functions, only a closed BuiltinFunction enum (spec §9).
package eval

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/akashmaji946/go-mix/langerr"
	"github.com/akashmaji946/go-mix/parser"
	"github.com/akashmaji946/go-mix/value"
)

func checkArity(args []parser.Expr, n int, line int) *langerr.Diagnostic {
	if len(args) != n {
		return langerr.NewArgParamNumberMismatch(len(args), n, line)
	}
	return nil
}

func (it *Interpreter) callBuiltin(b value.BuiltinFunction, args []parser.Expr, line int) (value.Value, *langerr.Diagnostic) {
	switch b {
	case value.Append:
		return it.builtinAppend(args, line)
	case value.Input:
		return it.builtinInput(args, line)
	case value.Remove:
		return it.builtinRemove(args, line)
	case value.Size:
		return it.builtinSize(args, line)
	case value.Sort:
		return it.builtinSort(args, line)
	case value.ToNumber:
		return it.builtinToNumber(args, line)
	case value.ToString:
		return it.builtinToString(args, line)
	default:
		return value.Null, nil
	}
}

func (it *Interpreter) builtinAppend(args []parser.Expr, line int) (value.Value, *langerr.Diagnostic) {
	if err := checkArity(args, 2, line); err != nil {
		return value.Null, err
	}
	target, err := it.evaluate(args[0])
	if err != nil {
		return value.Null, err
	}
	if target.Kind != value.ArrayKind {
		return value.Null, langerr.NewExpectedType("Array", target.TypeName(), line)
	}
	elem, err := it.evaluate(args[1])
	if err != nil {
		return value.Null, err
	}
	newArr := make([]value.Value, len(target.Array)+1)
	copy(newArr, target.Array)
	newArr[len(target.Array)] = elem
	result := value.Arr(newArr)
	if err := it.writeThrough(args[0], result, line); err != nil {
		return value.Null, err
	}
	return result, nil
}

func (it *Interpreter) builtinInput(args []parser.Expr, line int) (value.Value, *langerr.Diagnostic) {
	if err := checkArity(args, 1, line); err != nil {
		return value.Null, err
	}
	prompt, err := it.evaluate(args[0])
	if err != nil {
		return value.Null, err
	}
	if it.Out != nil {
		fmt.Fprint(it.Out, prompt.Display())
	}
	text, readErr := it.in.ReadString('\n')
	if readErr != nil && text == "" {
		return value.Str(""), nil
	}
	text = strings.TrimRight(text, "\r\n")
	return value.Str(text), nil
}

func (it *Interpreter) builtinRemove(args []parser.Expr, line int) (value.Value, *langerr.Diagnostic) {
	if err := checkArity(args, 2, line); err != nil {
		return value.Null, err
	}
	target, err := it.evaluate(args[0])
	if err != nil {
		return value.Null, err
	}
	key, err := it.evaluate(args[1])
	if err != nil {
		return value.Null, err
	}

	var result value.Value
	switch target.Kind {
	case value.ArrayKind:
		idx, ierr := naturalIndex(key, line)
		if ierr != nil {
			return value.Null, ierr
		}
		if idx < 0 || idx >= len(target.Array) {
			return value.Null, langerr.NewOutOfBoundsIndex(idx, line)
		}
		newArr := make([]value.Value, 0, len(target.Array)-1)
		newArr = append(newArr, target.Array[:idx]...)
		newArr = append(newArr, target.Array[idx+1:]...)
		result = value.Arr(newArr)
	case value.DictionaryKind:
		if rerr := target.Dict.Remove(key, line); rerr != nil {
			return value.Null, rerr
		}
		result = target
	default:
		return value.Null, langerr.NewExpectedType("Array or Dictionary", target.TypeName(), line)
	}

	if err := it.writeThrough(args[0], result, line); err != nil {
		return value.Null, err
	}
	return result, nil
}

func (it *Interpreter) builtinSize(args []parser.Expr, line int) (value.Value, *langerr.Diagnostic) {
	if err := checkArity(args, 1, line); err != nil {
		return value.Null, err
	}
	v, err := it.evaluate(args[0])
	if err != nil {
		return value.Null, err
	}
	switch v.Kind {
	case value.ArrayKind:
		return value.Num(float64(len(v.Array))), nil
	case value.DictionaryKind:
		return value.Num(float64(v.Dict.Size())), nil
	case value.StringKind:
		return value.Num(float64(len([]rune(v.Str)))), nil
	default:
		return value.Null, langerr.NewExpectedType("Array, Dictionary, or String", v.TypeName(), line)
	}
}

func (it *Interpreter) builtinSort(args []parser.Expr, line int) (value.Value, *langerr.Diagnostic) {
	if err := checkArity(args, 1, line); err != nil {
		return value.Null, err
	}
	v, err := it.evaluate(args[0])
	if err != nil {
		return value.Null, err
	}
	if v.Kind != value.ArrayKind {
		return value.Null, langerr.NewExpectedType("Array", v.TypeName(), line)
	}
	sorted := make([]value.Value, len(v.Array))
	copy(sorted, v.Array)
	if len(sorted) == 0 {
		return value.Arr(sorted), nil
	}
	kind := sorted[0].Kind
	if kind != value.NumberKind && kind != value.StringKind {
		return value.Null, langerr.NewExpectedType("Array of Number or String", "Array of "+sorted[0].TypeName(), line)
	}
	for _, e := range sorted {
		if e.Kind != kind {
			return value.Null, langerr.NewExpectedType("Array of Number or String", "mixed-type Array", line)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if kind == value.NumberKind {
			return sorted[i].Number < sorted[j].Number
		}
		return sorted[i].Str < sorted[j].Str
	})
	return value.Arr(sorted), nil
}

func (it *Interpreter) builtinToNumber(args []parser.Expr, line int) (value.Value, *langerr.Diagnostic) {
	if err := checkArity(args, 1, line); err != nil {
		return value.Null, err
	}
	v, err := it.evaluate(args[0])
	if err != nil {
		return value.Null, err
	}
	switch v.Kind {
	case value.BoolKind:
		if v.Bool {
			return value.Num(1), nil
		}
		return value.Num(0), nil
	case value.NumberKind:
		return v, nil
	case value.StringKind:
		n, convErr := strconv.ParseFloat(v.Str, 64)
		if convErr != nil {
			return value.Null, langerr.NewCannotConvertToNumber(line)
		}
		return value.Num(n), nil
	default:
		return value.Null, langerr.NewExpectedType("Boolean, Number, or String", v.TypeName(), line)
	}
}

func (it *Interpreter) builtinToString(args []parser.Expr, line int) (value.Value, *langerr.Diagnostic) {
	if err := checkArity(args, 1, line); err != nil {
		return value.Null, err
	}
	v, err := it.evaluate(args[0])
	if err != nil {
		return value.Null, err
	}
	switch v.Kind {
	case value.BoolKind, value.NumberKind, value.StringKind:
		return value.Str(v.Display()), nil
	default:
		return value.Null, langerr.NewExpectedType("Boolean, Number, or String", v.TypeName(), line)
	}
}
