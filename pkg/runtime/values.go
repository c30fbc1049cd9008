package runtime

import (
	"fmt"
	"io"
	"math/big"

	"ruspy/interpreter-go/pkg/ast"
)

// Kind identifies the runtime value category.
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindNil
	KindInteger
	KindFloat
	KindList
	KindFunction
	KindNativeFunction
	KindUnevaluated
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "str"
	case KindBool:
		return "bool"
	case KindNil:
		return "null"
	case KindInteger:
		return "int"
	case KindFloat:
		return "float"
	case KindList:
		return "list"
	case KindFunction:
		return "function"
	case KindNativeFunction:
		return "builtin_function"
	case KindUnevaluated:
		return "unevaluated"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Value is the shared behaviour for all runtime values.
type Value interface {
	Kind() Kind
}

//-----------------------------------------------------------------------------
// Scalars
//-----------------------------------------------------------------------------

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

// NilValue is the unit value produced by statements, loops and `if`
// without an else branch.
type NilValue struct{}

func (NilValue) Kind() Kind { return KindNil }

type IntegerValue struct {
	Val *big.Int
}

func (v IntegerValue) Kind() Kind { return KindInteger }

func NewInt(v int64) IntegerValue {
	return IntegerValue{Val: big.NewInt(v)}
}

func NewBigInt(v *big.Int) IntegerValue {
	return IntegerValue{Val: v}
}

type FloatValue struct {
	Val float64
}

func (v FloatValue) Kind() Kind { return KindFloat }

//-----------------------------------------------------------------------------
// Collections
//-----------------------------------------------------------------------------

type ListValue struct {
	Elements []Value
}

func (v *ListValue) Kind() Kind { return KindList }

func NewList(elements []Value) *ListValue {
	return &ListValue{Elements: elements}
}

//-----------------------------------------------------------------------------
// Callables
//-----------------------------------------------------------------------------

// FunctionValue is a closure: parameter names, an unevaluated body and the
// environment that was active where it was defined.
type FunctionValue struct {
	Name    string // empty for lambdas
	Params  []string
	Body    ast.Node
	Closure *Environment
}

func (v *FunctionValue) Kind() Kind { return KindFunction }

// NativeCallContext provides hooks for native functions.
type NativeCallContext struct {
	Env *Environment
	Out io.Writer
}

type NativeFunc func(*NativeCallContext, []Value) (Value, error)

// NativeFunctionValue wraps a host implementation. Arity is exact unless
// Variadic is set, in which case it is the minimum.
type NativeFunctionValue struct {
	Name     string
	Arity    int
	MaxArity int // only consulted when > Arity
	Variadic bool
	Impl     NativeFunc
}

func (v NativeFunctionValue) Kind() Kind { return KindNativeFunction }

// UnevaluatedValue carries a node that no evaluation rule reduced. It only
// ever travels inside the evaluator.
type UnevaluatedValue struct {
	Node ast.Node
}

func (v UnevaluatedValue) Kind() Kind { return KindUnevaluated }
