package interpreter

import (
	"math"
	"strconv"
	"strings"

	"ruspy/interpreter-go/pkg/runtime"
)

// valueToString renders a value the way println shows it: strings appear
// without quotes.
func valueToString(val runtime.Value) string {
	if s, ok := val.(runtime.StringValue); ok {
		return s.Val
	}
	return reprValue(val)
}

// reprValue renders a value as source-like text; strings are quoted.
func reprValue(val runtime.Value) string {
	switch v := val.(type) {
	case runtime.StringValue:
		return strconv.Quote(v.Val)
	case runtime.BoolValue:
		if v.Val {
			return "true"
		}
		return "false"
	case runtime.NilValue:
		return "null"
	case runtime.IntegerValue:
		return v.Val.String()
	case runtime.FloatValue:
		return formatFloat(v.Val)
	case *runtime.ListValue:
		parts := make([]string, len(v.Elements))
		for idx, el := range v.Elements {
			parts[idx] = reprValue(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *runtime.FunctionValue:
		return "<fn " + functionLabel(v) + ">"
	case runtime.NativeFunctionValue:
		return "<builtin " + v.Name + ">"
	case runtime.UnevaluatedValue:
		return "<unevaluated " + string(v.Node.NodeType()) + ">"
	case nil:
		return "<nil>"
	default:
		return "<" + val.Kind().String() + ">"
	}
}

// formatFloat always shows a fractional part or an exponent so floats stay
// distinguishable from integers: 2.0, 0.1, 1e+20.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}
