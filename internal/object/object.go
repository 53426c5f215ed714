package object

import (
	"bytes"
	"fmt"
	"minipy/internal/ast"
	"strings"
)

const (
	NONE_OBJ    = "NONE"
	BOOLEAN_OBJ = "BOOLEAN"
	INTEGER_OBJ = "INTEGER"
	STRING_OBJ  = "STRING"

	LIST_OBJ  = "LIST"
	RANGE_OBJ = "RANGE"

	FUNCTION_OBJ       = "FUNCTION"
	CLOSURE_OBJ        = "CLOSURE"
	NATIVE_OBJ         = "NATIVE"
	EXCEPTION_TYPE_OBJ = "EXCEPTION_TYPE"

	RETURN_VALUE_OBJ = "RETURN_VALUE"
	ERROR_OBJ        = "ERROR"
)

var (
	NONE  = &None{}
	TRUE  = &Boolean{Value: true}
	FALSE = &Boolean{Value: false}
)

type ObjectType string

type Object interface {
	Type() ObjectType
	Inspect() string
}

type Integer struct {
	Value int64
}

func (i *Integer) Type() ObjectType { return INTEGER_OBJ }
func (i *Integer) Inspect() string  { return fmt.Sprintf("%d", i.Value) }

type String struct {
	Value string
}

func (s *String) Type() ObjectType { return STRING_OBJ }
func (s *String) Inspect() string  { return s.Value }

type Boolean struct {
	Value bool
}

func (b *Boolean) Type() ObjectType { return BOOLEAN_OBJ }
func (b *Boolean) Inspect() string {
	if b.Value {
		return "True"
	}
	return "False"
}

type None struct{}

func (n *None) Type() ObjectType { return NONE_OBJ }
func (n *None) Inspect() string  { return "None" }

// List is a mutable, insertion-ordered sequence. It is a reference value:
// aliases share the backing storage, so an append through one name is visible
// through every other.
type List struct {
	Elements []Object
}

func (l *List) Type() ObjectType { return LIST_OBJ }
func (l *List) Inspect() string {
	var out bytes.Buffer

	elements := []string{}
	for _, e := range l.Elements {
		elements = append(elements, e.Inspect())
	}

	out.WriteString("[")
	out.WriteString(strings.Join(elements, ", "))
	out.WriteString("]")

	return out.String()
}

// Append adds x at the end, preserving the order of prior elements.
func (l *List) Append(x Object) {
	l.Elements = append(l.Elements, x)
}

// Range is the lazy, restartable sequence 0, 1, ..., Size-1 produced by the
// range builtin. It carries no cursor; each for-loop walks it from the start.
type Range struct {
	Size int64
}

func (r *Range) Type() ObjectType { return RANGE_OBJ }
func (r *Range) Inspect() string  { return fmt.Sprintf("range(0, %d)", r.Size) }

// Function is a top-level def: compiled code plus the module scope it was
// defined in. There is exactly one instance per definition site and per
// program run, so comparing pointers is comparing definition sites.
type Function struct {
	Name       string
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment // the module scope
}

func (f *Function) Type() ObjectType { return FUNCTION_OBJ }
func (f *Function) Inspect() string {
	return "<function " + f.Name + ">"
}

// Closure is a nested def: compiled code plus the frame that was executing
// when the def ran. Every execution of the enclosing body materializes a new
// instance, so two closures over identical code and captures are still
// distinct values.
type Closure struct {
	Name       string
	Parameters []*ast.Identifier
	Body       *ast.BlockStatement
	Env        *Environment // the captured frame
}

func (c *Closure) Type() ObjectType { return CLOSURE_OBJ }
func (c *Closure) Inspect() string {
	return "<closure " + c.Name + ">"
}

// NativeFunction is the object-level entry point of a builtin or a
// host-registered function. Arity -1 means variadic (print).
type NativeFunction func(args ...Object) Object

type Native struct {
	Name  string
	Arity int
	Fn    NativeFunction
}

func (n *Native) Type() ObjectType { return NATIVE_OBJ }
func (n *Native) Inspect() string {
	return "<built-in function " + n.Name + ">"
}

// ExceptionType is a named process-wide singleton; see exceptions.go for the
// interned set. Programs use these as opaque comparable values.
type ExceptionType struct {
	Name string
}

func (et *ExceptionType) Type() ObjectType { return EXCEPTION_TYPE_OBJ }
func (et *ExceptionType) Inspect() string  { return "<class '" + et.Name + "'>" }

// ReturnValue wraps the operand of a return statement while it unwinds the
// frame that is currently executing.
type ReturnValue struct {
	Value Object
}

func (rv *ReturnValue) Type() ObjectType { return RETURN_VALUE_OBJ }
func (rv *ReturnValue) Inspect() string  { return rv.Value.Inspect() }

// Error is a failed evaluation in flight. Kind is one of the interned
// exception types (ArityError, TypeError, IndexError, NameError,
// AssertionError).
type Error struct {
	Kind    *ExceptionType
	Message string
}

func (e *Error) Type() ObjectType { return ERROR_OBJ }
func (e *Error) Inspect() string  { return e.Kind.Name + ": " + e.Message }

func NewError(kind *ExceptionType, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

func NativeBoolToBooleanObject(input bool) *Boolean {
	if input {
		return TRUE
	}
	return FALSE
}
