package interpreter

import (
	"fortio.org/log"

	"ruspy/interpreter-go/pkg/runtime"
)

func (i *Interpreter) callFunction(callee runtime.Value, args []runtime.Value) (runtime.Value, error) {
	switch fn := callee.(type) {
	case *runtime.FunctionValue:
		if len(args) != len(fn.Params) {
			return nil, runtime.ArityError{Callee: fn.Name, Expected: len(fn.Params), Got: len(args)}
		}
		log.LogVf("call %s with %d argument(s)", functionLabel(fn), len(args))
		callEnv := runtime.NewEnvironment(fn.Closure)
		for idx, name := range fn.Params {
			callEnv.Define(name, args[idx])
		}
		return i.force(deferred(fn.Body), callEnv)
	case runtime.NativeFunctionValue:
		if err := checkNativeArity(fn, len(args)); err != nil {
			return nil, err
		}
		ctx := &runtime.NativeCallContext{Env: i.global, Out: i.stdout}
		return fn.Impl(ctx, args)
	default:
		return nil, runtime.NewTypeError("'%s' value is not callable", callee.Kind())
	}
}

func checkNativeArity(fn runtime.NativeFunctionValue, got int) error {
	switch {
	case fn.Variadic:
		if got < fn.Arity {
			return runtime.ArityError{Callee: fn.Name, Expected: fn.Arity, Got: got, AtLeast: true}
		}
	case fn.MaxArity > fn.Arity:
		if got < fn.Arity {
			return runtime.ArityError{Callee: fn.Name, Expected: fn.Arity, Got: got, AtLeast: true}
		}
		if got > fn.MaxArity {
			return runtime.ArityError{Callee: fn.Name, Expected: fn.MaxArity, Got: got}
		}
	default:
		if got != fn.Arity {
			return runtime.ArityError{Callee: fn.Name, Expected: fn.Arity, Got: got}
		}
	}
	return nil
}

func functionLabel(fn *runtime.FunctionValue) string {
	if fn.Name == "" {
		return "<lambda>"
	}
	return fn.Name
}
