package interpreter

import (
	"fortio.org/log"

	"ruspy/interpreter-go/pkg/ast"
	"ruspy/interpreter-go/pkg/runtime"
)

// evaluateBlock runs the statements in a fresh child scope and yields the
// last statement's value (Unit when empty).
func (i *Interpreter) evaluateBlock(stmts []thunk, env *runtime.Environment) (runtime.Value, error) {
	scope := env.Extend()
	var result runtime.Value = runtime.NilValue{}
	for _, stmt := range stmts {
		val, err := i.force(stmt, scope)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

func (i *Interpreter) evaluateAnd(left, right thunk, env *runtime.Environment) (runtime.Value, error) {
	lv, err := i.force(left, env)
	if err != nil {
		return nil, err
	}
	ok, err := isTruthy(lv)
	if err != nil {
		return nil, err
	}
	if !ok {
		log.LogVf("and: left operand is falsy, skipping right operand")
		return lv, nil
	}
	return i.force(right, env)
}

func (i *Interpreter) evaluateOr(left, right thunk, env *runtime.Environment) (runtime.Value, error) {
	lv, err := i.force(left, env)
	if err != nil {
		return nil, err
	}
	ok, err := isTruthy(lv)
	if err != nil {
		return nil, err
	}
	if ok {
		log.LogVf("or: left operand is truthy, skipping right operand")
		return lv, nil
	}
	return i.force(right, env)
}

// evaluateIf never touches the branch it does not take. Without an else
// branch a false condition yields Unit.
func (i *Interpreter) evaluateIf(cond, then thunk, elseBranch *thunk, env *runtime.Environment) (runtime.Value, error) {
	cv, err := i.force(cond, env)
	if err != nil {
		return nil, err
	}
	ok, err := isTruthy(cv)
	if err != nil {
		return nil, err
	}
	if ok {
		log.LogVf("if: condition is true, picking then branch")
		return i.force(then, env)
	}
	if elseBranch == nil {
		log.LogVf("if: condition is false, no else branch")
		return runtime.NilValue{}, nil
	}
	log.LogVf("if: condition is false, picking else branch")
	return i.force(*elseBranch, env)
}

// evaluateWhileLoop re-evaluates cond before every iteration. The body block
// opens a new scope on each pass.
func (i *Interpreter) evaluateWhileLoop(cond, body thunk, env *runtime.Environment) (runtime.Value, error) {
	for iteration := 0; ; iteration++ {
		cv, err := i.force(cond, env)
		if err != nil {
			return nil, err
		}
		ok, err := isTruthy(cv)
		if err != nil {
			return nil, err
		}
		if !ok {
			log.LogVf("while: exiting after %d iteration(s)", iteration)
			return runtime.NilValue{}, nil
		}
		if _, err := i.force(body, env); err != nil {
			return nil, err
		}
	}
}

// evaluateForLoop evaluates the iterable once, then binds the loop variable
// in a scope of its own for every element, so closures created in different
// iterations see different bindings.
func (i *Interpreter) evaluateForLoop(variable *ast.Name, iterable, body thunk, env *runtime.Environment) (runtime.Value, error) {
	iv, err := i.force(iterable, env)
	if err != nil {
		return nil, err
	}
	elements, err := iterate(iv)
	if err != nil {
		return nil, err
	}
	log.LogVf("for %s: %d element(s)", variable.Value, len(elements))
	for _, el := range elements {
		iterEnv := env.Extend()
		iterEnv.Define(variable.Value, el)
		if _, err := i.force(body, iterEnv); err != nil {
			return nil, err
		}
	}
	return runtime.NilValue{}, nil
}

// iterate lists the elements a for loop visits: list items or the
// characters of a string.
func iterate(val runtime.Value) ([]runtime.Value, error) {
	switch v := val.(type) {
	case *runtime.ListValue:
		out := make([]runtime.Value, len(v.Elements))
		copy(out, v.Elements)
		return out, nil
	case runtime.StringValue:
		out := make([]runtime.Value, 0, len(v.Val))
		for _, r := range v.Val {
			out = append(out, runtime.StringValue{Val: string(r)})
		}
		return out, nil
	default:
		return nil, runtime.NewTypeError("'%s' value is not iterable", val.Kind())
	}
}
