package runtime

import (
	"fmt"

	"ruspy/interpreter-go/pkg/ast"
)

// NameError reports an identifier that no scope in the chain binds.
type NameError struct {
	Name string
}

func (e NameError) Error() string {
	return fmt.Sprintf("name '%s' is not defined", e.Name)
}

// ArityError reports a call with the wrong number of arguments.
type ArityError struct {
	Callee   string
	Expected int
	Got      int
	AtLeast  bool
}

func (e ArityError) Error() string {
	name := e.Callee
	if name == "" {
		name = "<lambda>"
	}
	if e.AtLeast {
		return fmt.Sprintf("%s() takes at least %d argument(s) but %d were given", name, e.Expected, e.Got)
	}
	return fmt.Sprintf("%s() takes %d argument(s) but %d were given", name, e.Expected, e.Got)
}

// TypeError reports an operator or builtin applied to an unsupported value.
type TypeError struct {
	Message string
}

func (e TypeError) Error() string {
	return e.Message
}

func NewTypeError(format string, args ...any) TypeError {
	return TypeError{Message: fmt.Sprintf(format, args...)}
}

// RuntimeError covers failures that are neither name, arity nor type
// related (division by zero, missing main, index out of range).
type RuntimeError struct {
	Message string
}

func (e RuntimeError) Error() string {
	return e.Message
}

func NewRuntimeError(format string, args ...any) RuntimeError {
	return RuntimeError{Message: fmt.Sprintf(format, args...)}
}

// CompletenessError signals a node kind the evaluator has no rule for. It is
// an interpreter bug rather than a user error.
type CompletenessError struct {
	Kind ast.NodeType
	Tree string
}

func (e CompletenessError) Error() string {
	if e.Tree == "" {
		return fmt.Sprintf("evaluator has no rule for %s", e.Kind)
	}
	return fmt.Sprintf("evaluator has no rule for %s\n%s", e.Kind, e.Tree)
}
