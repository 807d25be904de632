// Package langerr defines the closed diagnostic taxonomy produced by the
// lexer, parser, environment and evaluator. Each New<Kind> constructor
// renders the diagnostic's message text the way the language's original
// implementation does; callers print Diagnostic.Message.
//
// Diagnostics are plain values, not panics: every stage that can fail
// returns a *Diagnostic (or, for the parser, a slice of them) instead of
// unwinding the Go call stack. Only ThrownReturn/ThrownBreak/
// ThrownLiteralAssignment are used internally as control-flow sentinels;
// everything else is reported to the user the moment it is produced.
package langerr

import "fmt"

// Kind is the closed set of diagnostic variants.
type Kind string

const (
	UnexpectedCharacter             Kind = "UnexpectedCharacter"
	UnterminatedString              Kind = "UnterminatedString"
	ExpectedCharacter               Kind = "ExpectedCharacter"
	ExpectedExpression              Kind = "ExpectedExpression"
	ExpectedFunctionName            Kind = "ExpectedFunctionName"
	ExpectedParameterName           Kind = "ExpectedParameterName"
	ExpectedVariableName            Kind = "ExpectedVariableName"
	ExpectedSemicolonAfterInit      Kind = "ExpectedSemicolonAfterInit"
	ExpectedSemicolonAfterCondition Kind = "ExpectedSemicolonAfterCondition"
	ExpectedParenAfterIncrement     Kind = "ExpectedParenAfterIncrement"
	ExpectedColonAfterKey           Kind = "ExpectedColonAfterKey"
	NameError                       Kind = "NameError"
	NotIndexable                    Kind = "NotIndexable"
	OutOfBoundsIndex                Kind = "OutOfBoundsIndex"
	InsertNonStringIntoString       Kind = "InsertNonStringIntoString"
	InvalidAssignmentTarget         Kind = "InvalidAssignmentTarget"
	ExpectedType                    Kind = "ExpectedType"
	NonNaturalIndex                 Kind = "NonNaturalIndex"
	NonNumberIndex                  Kind = "NonNumberIndex"
	BinaryTypeError                 Kind = "BinaryTypeError"
	DivideByZero                    Kind = "DivideByZero"
	IfConditionNotBoolean           Kind = "IfConditionNotBoolean"
	LoopConditionNotBoolean         Kind = "LoopConditionNotBoolean"
	CannotCallName                  Kind = "CannotCallName"
	ArgParamNumberMismatch          Kind = "ArgParamNumberMismatch"
	CannotHashFunction              Kind = "CannotHashFunction"
	CannotHashDictionary            Kind = "CannotHashDictionary"
	KeyError                        Kind = "KeyError"
	CannotConvertToNumber           Kind = "CannotConvertToNumber"
	ThrownReturn                    Kind = "ThrownReturn"
	ThrownBreak                     Kind = "ThrownBreak"
	ThrownLiteralAssignment         Kind = "ThrownLiteralAssignment"
)

// Diagnostic is one reported or internally-propagated error. Fields not
// relevant to Kind are left at their zero value; Message carries the
// fully-rendered, ready-to-print text (computed at construction time so
// the evaluator never has to know the exact wording per kind).
type Diagnostic struct {
	Kind    Kind
	Line    int
	Message string

	// Payload used by the handful of kinds that need it beyond Line.
	Character string
	Name      string
	Index     int
	Expected  string
	Got       string
	GotLeft   string
	GotRight  string
	ArgNumber int
	ParamNum  int
	Key       string

	// ReturnValue carries the evaluated expression for ThrownReturn; it is
	// declared as `any` here to avoid an import cycle with the value
	// package (eval sets it directly).
	ReturnValue any
}

func (d *Diagnostic) Error() string { return d.Message }

func newf(kind Kind, line int, format string, args ...any) *Diagnostic {
	return &Diagnostic{Kind: kind, Line: line, Message: fmt.Sprintf(format, args...)}
}

func NewUnexpectedCharacter(ch byte, line int) *Diagnostic {
	d := newf(UnexpectedCharacter, line, "Line %d: unexpected character `%c`.", line, ch)
	d.Character = string(ch)
	return d
}

func NewUnterminatedString(line int) *Diagnostic {
	return newf(UnterminatedString, line, "Unterminated string at end of file.")
}

func NewExpectedCharacter(expected byte, line int) *Diagnostic {
	return newf(ExpectedCharacter, line, "Line %d: expected character `%c`", line, expected)
}

func NewExpectedExpression(line int) *Diagnostic {
	return newf(ExpectedExpression, line, "Line %d: expected expression.", line)
}

func NewExpectedFunctionName(line int) *Diagnostic {
	return newf(ExpectedFunctionName, line, "Line %d: expected function name. Make sure it is not a keyword.", line)
}

func NewExpectedParameterName(line int) *Diagnostic {
	return newf(ExpectedParameterName, line, "Line %d: expected parameter name after a comma in function declaration.", line)
}

func NewExpectedVariableName(line int) *Diagnostic {
	return newf(ExpectedVariableName, line, "Line %d: expected variable name. Make sure it is not a keyword.", line)
}

func NewExpectedSemicolonAfterInit(line int) *Diagnostic {
	return newf(ExpectedSemicolonAfterInit, line, "Line %d: expected `;` after initialising statement in `for` loop.", line)
}

func NewExpectedSemicolonAfterCondition(line int) *Diagnostic {
	return newf(ExpectedSemicolonAfterCondition, line, "Line %d: expected `;` after condition in `for` loop.", line)
}

func NewExpectedParenAfterIncrement(line int) *Diagnostic {
	return newf(ExpectedParenAfterIncrement, line, "Line %d: expected `)` after increment statement in `for` loop.", line)
}

func NewExpectedColonAfterKey(line int) *Diagnostic {
	return newf(ExpectedColonAfterKey, line, "Line %d: expected colon after dictionary key.", line)
}

func NewNameError(name string, line int) *Diagnostic {
	d := newf(NameError, line, "Line %d: `%s` is not defined.", line, name)
	d.Name = name
	return d
}

func NewNotIndexable(line int) *Diagnostic {
	return newf(NotIndexable, line, "Line %d: the value is not indexable.", line)
}

func NewOutOfBoundsIndex(index int, line int) *Diagnostic {
	d := newf(OutOfBoundsIndex, line, "Line %d: index `%d` is out of bounds.", line, index)
	d.Index = index
	return d
}

func NewInsertNonStringIntoString(line int) *Diagnostic {
	return newf(InsertNonStringIntoString, line, "Line %d: attempted to insert a non-string into a string.", line)
}

func NewInvalidAssignmentTarget(line int) *Diagnostic {
	return newf(InvalidAssignmentTarget, line, "Line %d: invalid assignment target.", line)
}

func NewExpectedType(expected, got string, line int) *Diagnostic {
	d := newf(ExpectedType, line, "Line %d: expected type %s; instead got type %s.", line, expected, got)
	d.Expected, d.Got = expected, got
	return d
}

func NewNonNaturalIndex(got string, line int) *Diagnostic {
	d := newf(NonNaturalIndex, line, "Line %d: index evaluated to %s, which is not a positive integer.", line, got)
	d.Got = got
	return d
}

func NewNonNumberIndex(got string, line int) *Diagnostic {
	d := newf(NonNumberIndex, line, "Line %d: index evaluated to a %s, which is not a positive integer.", line, got)
	d.Got = got
	return d
}

func NewBinaryTypeError(expected, gotLeft, gotRight string, line int) *Diagnostic {
	d := newf(BinaryTypeError, line,
		"Line %d: this operation requires both sides' types to be %s. Instead, got %s and %s respectively.",
		line, expected, gotLeft, gotRight)
	d.Expected, d.GotLeft, d.GotRight = expected, gotLeft, gotRight
	return d
}

func NewDivideByZero(line int) *Diagnostic {
	return newf(DivideByZero, line, "Line %d: divisor is 0.", line)
}

func NewIfConditionNotBoolean(line int) *Diagnostic {
	return newf(IfConditionNotBoolean, line, "Line %d: the `if` condition did not evaluate to a Boolean value.", line)
}

func NewLoopConditionNotBoolean(line int) *Diagnostic {
	return newf(LoopConditionNotBoolean, line, "Line %d: the condition of the loop did not evaluate to a Boolean value.", line)
}

func NewCannotCallName(line int) *Diagnostic {
	return newf(CannotCallName, line, "Line %d: cannot call name as a function.", line)
}

func NewArgParamNumberMismatch(argNumber, paramNumber, line int) *Diagnostic {
	d := newf(ArgParamNumberMismatch, line,
		"Line %d: attempted to call function with %d argument(s), but function accepts %d.",
		line, argNumber, paramNumber)
	d.ArgNumber, d.ParamNum = argNumber, paramNumber
	return d
}

func NewCannotHashFunction(line int) *Diagnostic {
	return newf(CannotHashFunction, line, "Line %d: cannot hash function (functions cannot be used as keys in dictionary entries).", line)
}

func NewCannotHashDictionary(line int) *Diagnostic {
	return newf(CannotHashDictionary, line, "Line %d: cannot hash dictionary (dictionaries cannot be used as keys in dictionary entries).", line)
}

func NewKeyError(key string, line int) *Diagnostic {
	d := newf(KeyError, line, "Line %d: key `%s` does not exist in the dictionary.", line, key)
	d.Key = key
	return d
}

func NewCannotConvertToNumber(line int) *Diagnostic {
	return newf(CannotConvertToNumber, line, "Line %d: could not convert to a number.", line)
}

func NewThrownReturn(value any, line int) *Diagnostic {
	d := newf(ThrownReturn, line, "Line %d: `return` has to be used within a function.", line)
	d.ReturnValue = value
	return d
}

func NewThrownBreak(line int) *Diagnostic {
	return newf(ThrownBreak, line, "Line %d: `break` has to be used within a loop.", line)
}

func NewThrownLiteralAssignment(line int) *Diagnostic {
	return newf(ThrownLiteralAssignment, line, "Line %d: attempt to assign to a literal.", line)
}
