package interpreter

import (
	"fortio.org/log"

	"ruspy/interpreter-go/pkg/ast"
	"ruspy/interpreter-go/pkg/runtime"
)

// evaluateFunctionDefinition binds a closure to the function's name in the
// current scope. The body is not evaluated.
func (i *Interpreter) evaluateFunctionDefinition(name *ast.Name, params []*ast.Name, body *ast.BlockExpression, env *runtime.Environment) (runtime.Value, error) {
	fn := newClosure(name.Value, params, body, env)
	log.LogVf("fn %s/%d", name.Value, len(params))
	env.Define(name.Value, fn)
	return runtime.NilValue{}, nil
}

func (i *Interpreter) evaluateLambdaExpression(params []*ast.Name, body ast.Expression, env *runtime.Environment) (runtime.Value, error) {
	return newClosure("", params, body, env), nil
}

// newClosure captures env by reference: later mutations of bindings in env
// are visible to the closure.
func newClosure(name string, params []*ast.Name, body ast.Node, env *runtime.Environment) *runtime.FunctionValue {
	names := make([]string, len(params))
	for idx, p := range params {
		names[idx] = p.Value
	}
	return &runtime.FunctionValue{Name: name, Params: names, Body: body, Closure: env}
}
