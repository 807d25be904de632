/*
File    : go-mix/environment/environment.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package environment implements the interpreter's lexical scope stack:
// an ordered stack of frames, each a name-to-Value map. This supersedes
// the teacher's scope.Scope, whose parent-pointer design exists to
// support closures — this language has none (spec §9): a function value
// carries only its parameters and body, and free identifiers resolve
// through whatever scope stack is live at call time, not a captured
// one. See DESIGN.md.
package environment

import (
	"github.com/akashmaji946/go-mix/langerr"
	"github.com/akashmaji946/go-mix/value"
)

// Pointer addresses an assignment target: a base variable name plus a
// (possibly empty) chain of evaluated indices reaching into nested
// arrays/dictionaries/strings.
type Pointer struct {
	Name    string
	Indices []value.Value
}

// Environment is the ordered stack of frames. The stack is never empty;
// the base frame is seeded with builtin bindings by New().
type Environment struct {
	scopes []map[string]value.Value
}

// New creates an Environment with one base frame seeded with the seven
// builtin bindings (append, input, remove, size, sort, to_number,
// to_string). The frame is a map, so the bindings have no order.
func New() *Environment {
	base := map[string]value.Value{
		"append":    value.BuiltinFn(value.Append),
		"input":     value.BuiltinFn(value.Input),
		"remove":    value.BuiltinFn(value.Remove),
		"size":      value.BuiltinFn(value.Size),
		"sort":      value.BuiltinFn(value.Sort),
		"to_number": value.BuiltinFn(value.ToNumber),
		"to_string": value.BuiltinFn(value.ToString),
	}
	return &Environment{scopes: []map[string]value.Value{base}}
}

// NewScope pushes an empty frame.
func (e *Environment) NewScope() {
	e.scopes = append(e.scopes, map[string]value.Value{})
}

// ExitScope pops the top frame. Popping the base frame is a programmer
// bug and panics, matching the original's "Exited out of base scope".
func (e *Environment) ExitScope() {
	if len(e.scopes) <= 1 {
		panic("environment: exited out of base scope")
	}
	e.scopes = e.scopes[:len(e.scopes)-1]
}

// Declare inserts name into the topmost frame, overwriting a prior
// binding of the same name in that frame — duplicate declarations in
// the same scope are sanctioned, not an error (spec §4.3, confirmed by
// original_source/src/environment.rs's declare_twice test).
func (e *Environment) Declare(name string, v value.Value) {
	e.scopes[len(e.scopes)-1][name] = v
}

// Get returns the binding for name from the innermost frame that
// contains it, or NameError if no frame does.
func (e *Environment) Get(name string, line int) (value.Value, *langerr.Diagnostic) {
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if v, ok := e.scopes[i][name]; ok {
			return v, nil
		}
	}
	return value.Value{}, langerr.NewNameError(name, line)
}

// indexToUsize accepts only a Number whose value is a non-negative
// integer (fractional part zero); otherwise NonNaturalIndex /
// NonNumberIndex.
func indexToUsize(v value.Value, line int) (int, *langerr.Diagnostic) {
	if v.Kind != value.NumberKind {
		return 0, langerr.NewNonNumberIndex(v.TypeName(), line)
	}
	if v.Number < 0 || v.Number != float64(int(v.Number)) {
		return 0, langerr.NewNonNaturalIndex(v.Display(), line)
	}
	return int(v.Number), nil
}

// Update writes through a Pointer (spec §4.3):
//  1. find the innermost frame containing pointer.Name;
//  2. if Indices is empty, rebind Name in that frame to newValue;
//  3. otherwise walk the container along all but the last index, then
//     apply a terminal write governed by the container's type.
func (e *Environment) Update(ptr Pointer, newValue value.Value, line int) *langerr.Diagnostic {
	frameIdx := -1
	for i := len(e.scopes) - 1; i >= 0; i-- {
		if _, ok := e.scopes[i][ptr.Name]; ok {
			frameIdx = i
			break
		}
	}
	if frameIdx == -1 {
		return langerr.NewNameError(ptr.Name, line)
	}

	if len(ptr.Indices) == 0 {
		e.scopes[frameIdx][ptr.Name] = newValue
		return nil
	}

	container := e.scopes[frameIdx][ptr.Name]
	// cur tracks the addressable slot we are about to overwrite; walk
	// all but the last index. An Array step descends in place (slices
	// already alias); a Dictionary step works on a copy of the entry,
	// which parentDict/parentKey store back after the terminal write.
	cur := &container
	var parentDict *value.HashTable
	var parentKey value.Value
	for _, idx := range ptr.Indices[:len(ptr.Indices)-1] {
		switch cur.Kind {
		case value.ArrayKind:
			i, err := indexToUsize(idx, line)
			if err != nil {
				return err
			}
			if i < 0 || i >= len(cur.Array) {
				return langerr.NewOutOfBoundsIndex(i, line)
			}
			cur = &cur.Array[i]
			parentDict = nil
		case value.DictionaryKind:
			v, err := cur.Dict.Get(idx, line)
			if err != nil {
				return err
			}
			parentDict, parentKey = cur.Dict, idx
			tmp := v
			cur = &tmp
		default:
			return langerr.NewNotIndexable(line)
		}
	}

	last := ptr.Indices[len(ptr.Indices)-1]
	switch cur.Kind {
	case value.ArrayKind:
		i, err := indexToUsize(last, line)
		if err != nil {
			return err
		}
		if i < 0 || i >= len(cur.Array) {
			return langerr.NewOutOfBoundsIndex(i, line)
		}
		cur.Array[i] = newValue
	case value.DictionaryKind:
		if err := cur.Dict.Insert(last, newValue, line); err != nil {
			return err
		}
	case value.StringKind:
		i, err := indexToUsize(last, line)
		if err != nil {
			return err
		}
		runes := []rune(cur.Str)
		if i < 0 || i >= len(runes) {
			return langerr.NewOutOfBoundsIndex(i, line)
		}
		if newValue.Kind != value.StringKind || len([]rune(newValue.Str)) != 1 {
			return langerr.NewInsertNonStringIntoString(line)
		}
		runes[i] = []rune(newValue.Str)[0]
		cur.Str = string(runes)
	default:
		return langerr.NewNotIndexable(line)
	}

	if parentDict != nil {
		if err := parentDict.Insert(parentKey, *cur, line); err != nil {
			return err
		}
	}
	e.scopes[frameIdx][ptr.Name] = container
	return nil
}
