package interpreter

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"ruspy/interpreter-go/pkg/runtime"
)

// builtinRegistry is the fixed set of names every fresh global environment
// starts with. It is built once and never mutated.
var builtinRegistry = buildBuiltinRegistry()

func newGlobalEnvironment() *runtime.Environment {
	env := runtime.NewEnvironment(nil)
	for name, val := range builtinRegistry {
		env.Define(name, val)
	}
	return env
}

// BuiltinNames lists the registry in sorted order.
func BuiltinNames() []string {
	return newGlobalEnvironment().Keys()
}

func buildBuiltinRegistry() map[string]runtime.Value {
	reg := map[string]runtime.Value{
		"answer": runtime.NewInt(42),
		"true":   runtime.BoolValue{Val: true},
		"false":  runtime.BoolValue{Val: false},
		"null":   runtime.NilValue{},
		"pi":     runtime.FloatValue{Val: math.Pi},
		"e":      runtime.FloatValue{Val: math.E},
		"tau":    runtime.FloatValue{Val: 2 * math.Pi},
		"inf":    runtime.FloatValue{Val: math.Inf(1)},
		"nan":    runtime.FloatValue{Val: math.NaN()},
	}
	natives := []runtime.NativeFunctionValue{
		{Name: "println", Variadic: true, Impl: builtinPrintln},
		{Name: "print", Variadic: true, Impl: builtinPrintln},

		{Name: "abs", Arity: 1, Impl: builtinAbs},
		{Name: "sqrt", Arity: 1, Impl: floatFunc("sqrt", sqrtChecked)},
		{Name: "exp", Arity: 1, Impl: floatFunc("exp", plain(math.Exp))},
		{Name: "log", Arity: 1, MaxArity: 2, Impl: builtinLog},
		{Name: "log2", Arity: 1, Impl: floatFunc("log2", positiveOnly(math.Log2))},
		{Name: "log10", Arity: 1, Impl: floatFunc("log10", positiveOnly(math.Log10))},
		{Name: "sin", Arity: 1, Impl: floatFunc("sin", plain(math.Sin))},
		{Name: "cos", Arity: 1, Impl: floatFunc("cos", plain(math.Cos))},
		{Name: "tan", Arity: 1, Impl: floatFunc("tan", plain(math.Tan))},
		{Name: "asin", Arity: 1, Impl: floatFunc("asin", unitRange(math.Asin))},
		{Name: "acos", Arity: 1, Impl: floatFunc("acos", unitRange(math.Acos))},
		{Name: "atan", Arity: 1, Impl: floatFunc("atan", plain(math.Atan))},
		{Name: "atan2", Arity: 2, Impl: floatFunc2("atan2", math.Atan2)},
		{Name: "hypot", Arity: 2, Impl: floatFunc2("hypot", math.Hypot)},
		{Name: "pow", Arity: 2, Impl: floatFunc2("pow", math.Pow)},
		{Name: "degrees", Arity: 1, Impl: floatFunc("degrees", plain(func(x float64) float64 { return x * 180 / math.Pi }))},
		{Name: "radians", Arity: 1, Impl: floatFunc("radians", plain(func(x float64) float64 { return x * math.Pi / 180 }))},
		{Name: "floor", Arity: 1, Impl: integralFunc("floor", math.Floor)},
		{Name: "ceil", Arity: 1, Impl: integralFunc("ceil", math.Ceil)},
		{Name: "trunc", Arity: 1, Impl: integralFunc("trunc", math.Trunc)},
		{Name: "isnan", Arity: 1, Impl: floatPredicate("isnan", math.IsNaN)},
		{Name: "isinf", Arity: 1, Impl: floatPredicate("isinf", func(x float64) bool { return math.IsInf(x, 0) })},

		{Name: "len", Arity: 1, Impl: builtinLen},
		{Name: "str", Arity: 1, Impl: func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
			return runtime.StringValue{Val: valueToString(args[0])}, nil
		}},
		{Name: "repr", Arity: 1, Impl: func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
			return runtime.StringValue{Val: reprValue(args[0])}, nil
		}},
		{Name: "int", Arity: 1, Impl: builtinInt},
		{Name: "float", Arity: 1, Impl: builtinFloat},
		{Name: "bool", Arity: 1, Impl: func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
			ok, err := isTruthy(args[0])
			if err != nil {
				return nil, err
			}
			return runtime.BoolValue{Val: ok}, nil
		}},
		{Name: "type", Arity: 1, Impl: func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
			return runtime.StringValue{Val: args[0].Kind().String()}, nil
		}},
		{Name: "range", Arity: 1, MaxArity: 3, Impl: builtinRange},
		{Name: "min", Arity: 1, Variadic: true, Impl: extremum("min", "<")},
		{Name: "max", Arity: 1, Variadic: true, Impl: extremum("max", ">")},
		{Name: "sum", Arity: 1, MaxArity: 2, Impl: builtinSum},
		{Name: "round", Arity: 1, MaxArity: 2, Impl: builtinRound},
		{Name: "list", Arity: 1, Impl: func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
			elements, err := iterate(args[0])
			if err != nil {
				return nil, err
			}
			return runtime.NewList(elements), nil
		}},
	}
	for _, fn := range natives {
		reg[fn.Name] = fn
	}
	return reg
}

//-----------------------------------------------------------------------------
// Output
//-----------------------------------------------------------------------------

// builtinPrintln writes its arguments separated by spaces and terminated by
// a newline to the interpreter's stdout.
func builtinPrintln(ctx *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	parts := make([]string, len(args))
	for idx, arg := range args {
		parts[idx] = valueToString(arg)
	}
	if _, err := fmt.Fprintln(ctx.Out, strings.Join(parts, " ")); err != nil {
		return nil, runtime.NewRuntimeError("print: %v", err)
	}
	return runtime.NilValue{}, nil
}

//-----------------------------------------------------------------------------
// Numeric helpers
//-----------------------------------------------------------------------------

func numberArg(fn string, val runtime.Value) (float64, error) {
	f, ok := toFloat64(val)
	if !ok {
		return 0, runtime.NewTypeError("%s() expects a number, got '%s'", fn, val.Kind())
	}
	return f, nil
}

type checkedFloatFunc func(float64) (float64, bool)

func plain(f func(float64) float64) checkedFloatFunc {
	return func(x float64) (float64, bool) { return f(x), true }
}

func positiveOnly(f func(float64) float64) checkedFloatFunc {
	return func(x float64) (float64, bool) { return f(x), x > 0 }
}

func unitRange(f func(float64) float64) checkedFloatFunc {
	return func(x float64) (float64, bool) { return f(x), x >= -1 && x <= 1 }
}

func sqrtChecked(x float64) (float64, bool) {
	return math.Sqrt(x), x >= 0
}

func floatFunc(name string, f checkedFloatFunc) runtime.NativeFunc {
	return func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
		x, err := numberArg(name, args[0])
		if err != nil {
			return nil, err
		}
		out, ok := f(x)
		if !ok {
			return nil, runtime.NewRuntimeError("math domain error in %s()", name)
		}
		return runtime.FloatValue{Val: out}, nil
	}
}

func floatFunc2(name string, f func(float64, float64) float64) runtime.NativeFunc {
	return func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
		x, err := numberArg(name, args[0])
		if err != nil {
			return nil, err
		}
		y, err := numberArg(name, args[1])
		if err != nil {
			return nil, err
		}
		return runtime.FloatValue{Val: f(x, y)}, nil
	}
}

func floatPredicate(name string, f func(float64) bool) runtime.NativeFunc {
	return func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
		x, err := numberArg(name, args[0])
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: f(x)}, nil
	}
}

// integralFunc rounds a float to an integer value; integers pass through.
func integralFunc(name string, f func(float64) float64) runtime.NativeFunc {
	return func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
		if iv, ok := args[0].(runtime.IntegerValue); ok {
			return iv, nil
		}
		x, err := numberArg(name, args[0])
		if err != nil {
			return nil, err
		}
		return floatToInteger(name, f(x))
	}
}

func floatToInteger(name string, x float64) (runtime.Value, error) {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil, runtime.NewRuntimeError("%s(): cannot convert %s to integer", name, formatFloat(x))
	}
	out, _ := big.NewFloat(x).Int(nil)
	return runtime.NewBigInt(out), nil
}

func builtinAbs(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	switch v := args[0].(type) {
	case runtime.IntegerValue:
		return runtime.NewBigInt(new(big.Int).Abs(v.Val)), nil
	case runtime.FloatValue:
		return runtime.FloatValue{Val: math.Abs(v.Val)}, nil
	default:
		return nil, runtime.NewTypeError("abs() expects a number, got '%s'", args[0].Kind())
	}
}

func builtinLog(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	x, err := numberArg("log", args[0])
	if err != nil {
		return nil, err
	}
	if x <= 0 {
		return nil, runtime.NewRuntimeError("math domain error in log()")
	}
	if len(args) == 1 {
		return runtime.FloatValue{Val: math.Log(x)}, nil
	}
	base, err := numberArg("log", args[1])
	if err != nil {
		return nil, err
	}
	if base <= 0 || base == 1 {
		return nil, runtime.NewRuntimeError("math domain error in log()")
	}
	return runtime.FloatValue{Val: math.Log(x) / math.Log(base)}, nil
}

// builtinRound rounds half to even. Without ndigits the result is an integer.
func builtinRound(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	if len(args) == 1 {
		if iv, ok := args[0].(runtime.IntegerValue); ok {
			return iv, nil
		}
		x, err := numberArg("round", args[0])
		if err != nil {
			return nil, err
		}
		return floatToInteger("round", math.RoundToEven(x))
	}
	digits, ok := args[1].(runtime.IntegerValue)
	if !ok || !digits.Val.IsInt64() {
		return nil, runtime.NewTypeError("round() ndigits must be an integer")
	}
	if iv, ok := args[0].(runtime.IntegerValue); ok && digits.Val.Sign() >= 0 {
		return iv, nil
	}
	x, err := numberArg("round", args[0])
	if err != nil {
		return nil, err
	}
	scale := math.Pow(10, float64(digits.Val.Int64()))
	rounded := math.RoundToEven(x*scale) / scale
	if _, isInt := args[0].(runtime.IntegerValue); isInt {
		return floatToInteger("round", rounded)
	}
	return runtime.FloatValue{Val: rounded}, nil
}

//-----------------------------------------------------------------------------
// Utilities
//-----------------------------------------------------------------------------

func builtinLen(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	switch v := args[0].(type) {
	case runtime.StringValue:
		return runtime.NewInt(int64(len([]rune(v.Val)))), nil
	case *runtime.ListValue:
		return runtime.NewInt(int64(len(v.Elements))), nil
	default:
		return nil, runtime.NewTypeError("'%s' value has no len()", args[0].Kind())
	}
}

func builtinInt(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	switch v := args[0].(type) {
	case runtime.IntegerValue:
		return v, nil
	case runtime.FloatValue:
		return floatToInteger("int", math.Trunc(v.Val))
	case runtime.BoolValue:
		if v.Val {
			return runtime.NewInt(1), nil
		}
		return runtime.NewInt(0), nil
	case runtime.StringValue:
		text := strings.TrimSpace(v.Val)
		digits := strings.TrimLeft(text, "+-")
		if strings.HasPrefix(digits, "_") || strings.HasSuffix(digits, "_") {
			return nil, runtime.NewRuntimeError("invalid literal for int(): %s", strconv.Quote(v.Val))
		}
		out, ok := new(big.Int).SetString(strings.ReplaceAll(text, "_", ""), 10)
		if !ok {
			return nil, runtime.NewRuntimeError("invalid literal for int(): %s", strconv.Quote(v.Val))
		}
		return runtime.NewBigInt(out), nil
	default:
		return nil, runtime.NewTypeError("int() argument must be a string or a number, not '%s'", args[0].Kind())
	}
}

func builtinFloat(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	switch v := args[0].(type) {
	case runtime.IntegerValue, runtime.FloatValue:
		f, _ := toFloat64(v)
		return runtime.FloatValue{Val: f}, nil
	case runtime.BoolValue:
		if v.Val {
			return runtime.FloatValue{Val: 1}, nil
		}
		return runtime.FloatValue{Val: 0}, nil
	case runtime.StringValue:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Val), 64)
		if err != nil {
			return nil, runtime.NewRuntimeError("could not convert string to float: %s", strconv.Quote(v.Val))
		}
		return runtime.FloatValue{Val: f}, nil
	default:
		return nil, runtime.NewTypeError("float() argument must be a string or a number, not '%s'", args[0].Kind())
	}
}

// builtinRange mirrors range(stop) and range(start, stop[, step]) and
// materialises the result as a list.
func builtinRange(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	bounds := make([]int64, len(args))
	for idx, arg := range args {
		iv, ok := arg.(runtime.IntegerValue)
		if !ok || !iv.Val.IsInt64() {
			return nil, runtime.NewTypeError("range() arguments must be integers, got '%s'", arg.Kind())
		}
		bounds[idx] = iv.Val.Int64()
	}
	start, stop, step := int64(0), bounds[0], int64(1)
	if len(bounds) >= 2 {
		start, stop = bounds[0], bounds[1]
	}
	if len(bounds) == 3 {
		step = bounds[2]
	}
	if step == 0 {
		return nil, runtime.NewRuntimeError("range() step must not be zero")
	}
	var out []runtime.Value
	for n := start; (step > 0 && n < stop) || (step < 0 && n > stop); n += step {
		out = append(out, runtime.NewInt(n))
	}
	return runtime.NewList(out), nil
}

// extremum implements min and max over either the arguments or, with a
// single list argument, its elements.
func extremum(name, op string) runtime.NativeFunc {
	return func(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
		candidates := args
		if len(args) == 1 {
			elements, err := iterate(args[0])
			if err != nil {
				return nil, err
			}
			candidates = elements
		}
		if len(candidates) == 0 {
			return nil, runtime.NewRuntimeError("%s() arg is an empty sequence", name)
		}
		best := candidates[0]
		for _, candidate := range candidates[1:] {
			better, err := compareValues(op, candidate, best)
			if err != nil {
				return nil, err
			}
			if better.(runtime.BoolValue).Val {
				best = candidate
			}
		}
		return best, nil
	}
}

func builtinSum(_ *runtime.NativeCallContext, args []runtime.Value) (runtime.Value, error) {
	elements, err := iterate(args[0])
	if err != nil {
		return nil, err
	}
	var total runtime.Value = runtime.NewInt(0)
	if len(args) == 2 {
		total = args[1]
	}
	for _, el := range elements {
		total, err = binaryOperation("+", total, el)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
}
