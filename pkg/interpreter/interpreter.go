package interpreter

import (
	"errors"
	"fmt"
	"io"
	"os"

	"ruspy/interpreter-go/pkg/ast"
	"ruspy/interpreter-go/pkg/runtime"
)

// Interpreter drives evaluation of Ruspy syntax trees. Each top-level call
// (EvaluateExpression, EvaluateModule, RunModule) starts from a fresh global
// environment seeded from the builtin registry.
type Interpreter struct {
	global *runtime.Environment
	stdout io.Writer
	stderr io.Writer
}

// New returns an interpreter writing program output to os.Stdout and parse
// diagnostics to os.Stderr.
func New() *Interpreter {
	return &Interpreter{
		global: newGlobalEnvironment(),
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// SetStdout redirects program output (println, print).
func (i *Interpreter) SetStdout(w io.Writer) {
	i.stdout = w
}

// SetStderr redirects parse diagnostics and evaluator fault dumps.
func (i *Interpreter) SetStderr(w io.Writer) {
	i.stderr = w
}

// GlobalEnvironment returns the environment of the most recent top-level
// evaluation.
func (i *Interpreter) GlobalEnvironment() *runtime.Environment {
	return i.global
}

func (i *Interpreter) resetGlobals() *runtime.Environment {
	i.global = newGlobalEnvironment()
	return i.global
}

//-----------------------------------------------------------------------------
// Dispatch
//-----------------------------------------------------------------------------

// thunk is an operand of a special form: either a node that has not been
// evaluated yet or a value that already has.
type thunk struct {
	node  ast.Node
	value runtime.Value
}

func deferred(node ast.Node) thunk {
	return thunk{node: node}
}

func evaluated(value runtime.Value) thunk {
	return thunk{value: value}
}

// force collapses a thunk to a value. Binding names are never values, so
// forcing one is an evaluator fault.
func (i *Interpreter) force(t thunk, env *runtime.Environment) (runtime.Value, error) {
	if t.node == nil {
		if t.value == nil {
			return runtime.NilValue{}, nil
		}
		return t.value, nil
	}
	if name, ok := t.node.(*ast.Name); ok {
		return nil, runtime.CompletenessError{Kind: name.NodeType(), Tree: ast.Pretty(name)}
	}
	val, err := i.evaluate(t.node, env)
	if err != nil {
		return nil, err
	}
	if uv, ok := val.(runtime.UnevaluatedValue); ok {
		return nil, runtime.CompletenessError{Kind: uv.Node.NodeType(), Tree: ast.Pretty(uv.Node)}
	}
	return val, nil
}

// evaluate reduces node to a value. Special forms receive their operands
// unevaluated; every other node kind evaluates its children first and then
// applies its own rule.
func (i *Interpreter) evaluate(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.BlockExpression:
		return i.evaluateBlock(thunks(n.Children()), env)
	case *ast.AndExpression:
		return i.evaluateAnd(deferred(n.Left), deferred(n.Right), env)
	case *ast.OrExpression:
		return i.evaluateOr(deferred(n.Left), deferred(n.Right), env)
	case *ast.IfExpression:
		var elseBranch *thunk
		if n.Else != nil {
			t := deferred(n.Else)
			elseBranch = &t
		}
		return i.evaluateIf(deferred(n.Condition), deferred(n.Then), elseBranch, env)
	case *ast.WhileLoop:
		return i.evaluateWhileLoop(deferred(n.Condition), deferred(n.Body), env)
	case *ast.ForLoop:
		return i.evaluateForLoop(n.Variable, deferred(n.Iterable), deferred(n.Body), env)
	case *ast.FunctionDefinition:
		return i.evaluateFunctionDefinition(n.ID, n.Params, n.Body, env)
	case *ast.LambdaExpression:
		return i.evaluateLambdaExpression(n.Params, n.Body, env)
	default:
		return i.evaluateOrdinary(node, env)
	}
}

// evaluateOrdinary reduces every child left to right, then applies the
// node's rule. Binding names are read by the rule from the node itself.
func (i *Interpreter) evaluateOrdinary(node ast.Node, env *runtime.Environment) (runtime.Value, error) {
	children := node.Children()
	args := make([]runtime.Value, 0, len(children))
	for _, child := range children {
		if _, ok := child.(*ast.Name); ok {
			continue
		}
		val, err := i.evaluate(child, env)
		if err != nil {
			return nil, err
		}
		if _, ok := val.(runtime.UnevaluatedValue); ok {
			return val, nil
		}
		args = append(args, val)
	}
	return i.applyRule(node, args, env)
}

func thunks(nodes []ast.Node) []thunk {
	out := make([]thunk, len(nodes))
	for idx, n := range nodes {
		out[idx] = deferred(n)
	}
	return out
}

// checkComplete is the post-condition applied at the public boundary: a
// result that is still an unevaluated node means some rule is missing. The
// fault is reported with the whole tree dumped to stderr.
func (i *Interpreter) checkComplete(root ast.Node, val runtime.Value, err error) (runtime.Value, error) {
	var fault runtime.CompletenessError
	switch {
	case err != nil && errors.As(err, &fault):
	case err != nil:
		return nil, err
	default:
		uv, ok := val.(runtime.UnevaluatedValue)
		if !ok {
			return val, nil
		}
		fault = runtime.CompletenessError{Kind: uv.Node.NodeType()}
	}
	fault.Tree = ast.Pretty(root)
	fmt.Fprint(i.stderr, fault.Tree)
	return nil, fault
}
