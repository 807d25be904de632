/*
File    : go-mix/value/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package value implements the runtime value model of the language: a
// tagged union encoded, as this corpus always encodes sum types in Go,
// as one struct with a Kind discriminant rather than an interface per
// variant (objects.GoMixObject's interface-per-variant approach does not
// fit here because Value must be directly comparable/hashable and
// embeddable inside HashTable buckets without boxing).
package value

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akashmaji946/go-mix/parser"
)

// Kind discriminates the Value union.
type Kind int

const (
	NumberKind Kind = iota
	StringKind
	BoolKind
	ArrayKind
	DictionaryKind
	FunctionKind
	BuiltinKind
	NullKind
)

// BuiltinFunction enumerates the closed set of builtins seeded into the
// base environment frame (spec §4.3/§6).
type BuiltinFunction int

const (
	Append BuiltinFunction = iota
	Input
	Remove
	Size
	Sort
	ToNumber
	ToString
)

var builtinNames = map[BuiltinFunction]string{
	Append:   "append",
	Input:    "input",
	Remove:   "remove",
	Size:     "size",
	Sort:     "sort",
	ToNumber: "to_number",
	ToString: "to_string",
}

// Function is a user-defined function value. It carries only its
// parameters and body — no captured environment. Lookup of free
// identifiers happens through the environment's scope stack at call
// time, so inner functions do not capture outer locals once the
// defining call has returned (spec §9).
type Function struct {
	Parameters []string
	Body       parser.Stmt
}

// Value is the tagged runtime value union.
type Value struct {
	Kind     Kind
	Number   float64
	Str      string
	Bool     bool
	Array    []Value
	Dict     *HashTable
	Function *Function
	Builtin  BuiltinFunction
}

func Num(n float64) Value                  { return Value{Kind: NumberKind, Number: n} }
func Str(s string) Value                   { return Value{Kind: StringKind, Str: s} }
func Bool_(b bool) Value                   { return Value{Kind: BoolKind, Bool: b} }
func Arr(elems []Value) Value              { return Value{Kind: ArrayKind, Array: elems} }
func Dict(ht *HashTable) Value             { return Value{Kind: DictionaryKind, Dict: ht} }
func Fn(params []string, body parser.Stmt) Value {
	return Value{Kind: FunctionKind, Function: &Function{Parameters: params, Body: body}}
}
func BuiltinFn(b BuiltinFunction) Value { return Value{Kind: BuiltinKind, Builtin: b} }

var Null = Value{Kind: NullKind}

// TypeName returns the value's type name, used in diagnostic messages
// (ExpectedType, BinaryTypeError, etc.).
func (v Value) TypeName() string {
	switch v.Kind {
	case NumberKind:
		return "Number"
	case StringKind:
		return "String"
	case BoolKind:
		return "Boolean"
	case ArrayKind:
		return "Array"
	case DictionaryKind:
		return "Dictionary"
	case FunctionKind, BuiltinKind:
		return "Function"
	default:
		return "Null"
	}
}

// Display renders v the way `print`, `input`'s prompt and `to_string`
// render it.
// Numbers use shortest round-trip formatting with no forced trailing
// ".0" (matching the original implementation's Display, which relies on
// Rust's default float formatter); Null renders lowercase to match the
// language's own `null` keyword — a deliberate deviation from the
// original's capitalized "Null" (see DESIGN.md).
func (v Value) Display() string {
	switch v.Kind {
	case NumberKind:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	case StringKind:
		return v.Str
	case BoolKind:
		if v.Bool {
			return "true"
		}
		return "false"
	case ArrayKind:
		parts := make([]string, len(v.Array))
		for i, e := range v.Array {
			parts[i] = e.Display()
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case DictionaryKind:
		entries := v.Dict.Flatten()
		parts := make([]string, len(entries))
		for i, e := range entries {
			parts[i] = fmt.Sprintf("%s: %s", e.Key.Display(), e.Value.Display())
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case FunctionKind, BuiltinKind:
		return "<function>"
	default:
		return "null"
	}
}

// Equal implements the language's structural `==`: Number/String/Bool
// compare by value, Array element-wise, Dictionary by same-multiset
// (delegated to HashTable.Equal), Null equals only Null, and functions
// are never equal to anything (including themselves) since they carry
// no identity in this value model beyond structural body comparison,
// which the language does not define.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case NumberKind:
		return a.Number == b.Number
	case StringKind:
		return a.Str == b.Str
	case BoolKind:
		return a.Bool == b.Bool
	case NullKind:
		return true
	case ArrayKind:
		if len(a.Array) != len(b.Array) {
			return false
		}
		for i := range a.Array {
			if !Equal(a.Array[i], b.Array[i]) {
				return false
			}
		}
		return true
	case DictionaryKind:
		return a.Dict.Equal(b.Dict)
	default:
		return false
	}
}

func (b BuiltinFunction) Name() string { return builtinNames[b] }
