package interpreter

import (
	"math"
	"math/big"
	"strings"

	"ruspy/interpreter-go/pkg/runtime"
)

func isTruthy(val runtime.Value) (bool, error) {
	switch v := val.(type) {
	case runtime.BoolValue:
		return v.Val, nil
	case runtime.NilValue:
		return false, nil
	case runtime.IntegerValue:
		return v.Val.Sign() != 0, nil
	case runtime.FloatValue:
		return v.Val != 0, nil
	case runtime.StringValue:
		return v.Val != "", nil
	case *runtime.ListValue:
		return len(v.Elements) > 0, nil
	default:
		return false, runtime.NewTypeError("'%s' value has no truth value", val.Kind())
	}
}

func isNumericValue(val runtime.Value) bool {
	switch val.(type) {
	case runtime.IntegerValue, runtime.FloatValue:
		return true
	default:
		return false
	}
}

// toFloat64 converts a numeric value; ok is false for anything else.
func toFloat64(val runtime.Value) (float64, bool) {
	switch v := val.(type) {
	case runtime.IntegerValue:
		f, _ := new(big.Float).SetInt(v.Val).Float64()
		return f, true
	case runtime.FloatValue:
		return v.Val, true
	default:
		return 0, false
	}
}

func unaryOperation(op string, operand runtime.Value) (runtime.Value, error) {
	switch op {
	case "not":
		ok, err := isTruthy(operand)
		if err != nil {
			return nil, err
		}
		return runtime.BoolValue{Val: !ok}, nil
	case "-":
		switch v := operand.(type) {
		case runtime.IntegerValue:
			return runtime.NewBigInt(new(big.Int).Neg(v.Val)), nil
		case runtime.FloatValue:
			return runtime.FloatValue{Val: -v.Val}, nil
		}
	case "+":
		if isNumericValue(operand) {
			return operand, nil
		}
	}
	return nil, runtime.NewTypeError("bad operand type for unary %s: '%s'", op, operand.Kind())
}

func binaryOperation(op string, left, right runtime.Value) (runtime.Value, error) {
	switch op {
	case "==":
		return runtime.BoolValue{Val: valuesEqual(left, right)}, nil
	case "!=":
		return runtime.BoolValue{Val: !valuesEqual(left, right)}, nil
	case "<", "<=", ">", ">=":
		return compareValues(op, left, right)
	case "+":
		switch l := left.(type) {
		case runtime.StringValue:
			if r, ok := right.(runtime.StringValue); ok {
				return runtime.StringValue{Val: l.Val + r.Val}, nil
			}
		case *runtime.ListValue:
			if r, ok := right.(*runtime.ListValue); ok {
				out := make([]runtime.Value, 0, len(l.Elements)+len(r.Elements))
				out = append(out, l.Elements...)
				return runtime.NewList(append(out, r.Elements...)), nil
			}
		}
		return arithmetic(op, left, right)
	case "*":
		if val, ok, err := repeatSequence(left, right); ok {
			return val, err
		}
		if val, ok, err := repeatSequence(right, left); ok {
			return val, err
		}
		return arithmetic(op, left, right)
	case "-", "/", "%", "**":
		return arithmetic(op, left, right)
	case "<<", ">>", "&", "|", "^":
		return bitwise(op, left, right)
	default:
		return nil, runtime.NewRuntimeError("unsupported operator %s", op)
	}
}

// repeatSequence handles `seq * n`; ok reports whether the operands had
// that shape at all.
func repeatSequence(seq, count runtime.Value) (runtime.Value, bool, error) {
	n, isInt := count.(runtime.IntegerValue)
	if !isInt {
		return nil, false, nil
	}
	switch seq.(type) {
	case runtime.StringValue, *runtime.ListValue:
	default:
		return nil, false, nil
	}
	times := 0
	if n.Val.Sign() > 0 {
		if !n.Val.IsInt64() || n.Val.Int64() > math.MaxInt32 {
			return nil, true, runtime.NewRuntimeError("repeat count too large")
		}
		times = int(n.Val.Int64())
	}
	switch s := seq.(type) {
	case runtime.StringValue:
		return runtime.StringValue{Val: strings.Repeat(s.Val, times)}, true, nil
	case *runtime.ListValue:
		out := make([]runtime.Value, 0, len(s.Elements)*times)
		for k := 0; k < times; k++ {
			out = append(out, s.Elements...)
		}
		return runtime.NewList(out), true, nil
	default:
		return nil, false, nil
	}
}

func arithmetic(op string, left, right runtime.Value) (runtime.Value, error) {
	li, lInt := left.(runtime.IntegerValue)
	ri, rInt := right.(runtime.IntegerValue)
	if lInt && rInt && op != "/" {
		return integerArithmetic(op, li.Val, ri.Val)
	}
	lf, lok := toFloat64(left)
	rf, rok := toFloat64(right)
	if !lok || !rok {
		return nil, runtime.NewTypeError("unsupported operand types for %s: '%s' and '%s'", op, left.Kind(), right.Kind())
	}
	switch op {
	case "+":
		return runtime.FloatValue{Val: lf + rf}, nil
	case "-":
		return runtime.FloatValue{Val: lf - rf}, nil
	case "*":
		return runtime.FloatValue{Val: lf * rf}, nil
	case "/":
		if rf == 0 {
			return nil, runtime.NewRuntimeError("division by zero")
		}
		return runtime.FloatValue{Val: lf / rf}, nil
	case "%":
		if rf == 0 {
			return nil, runtime.NewRuntimeError("modulo by zero")
		}
		m := math.Mod(lf, rf)
		if m != 0 && (m < 0) != (rf < 0) {
			m += rf
		}
		return runtime.FloatValue{Val: m}, nil
	case "**":
		return runtime.FloatValue{Val: math.Pow(lf, rf)}, nil
	}
	return nil, runtime.NewRuntimeError("unsupported operator %s", op)
}

func integerArithmetic(op string, l, r *big.Int) (runtime.Value, error) {
	switch op {
	case "+":
		return runtime.NewBigInt(new(big.Int).Add(l, r)), nil
	case "-":
		return runtime.NewBigInt(new(big.Int).Sub(l, r)), nil
	case "*":
		return runtime.NewBigInt(new(big.Int).Mul(l, r)), nil
	case "%":
		if r.Sign() == 0 {
			return nil, runtime.NewRuntimeError("modulo by zero")
		}
		// Floored: the result takes the sign of the divisor.
		m := new(big.Int).Rem(l, r)
		if m.Sign() != 0 && m.Sign() != r.Sign() {
			m.Add(m, r)
		}
		return runtime.NewBigInt(m), nil
	case "**":
		if r.Sign() < 0 {
			lf, _ := new(big.Float).SetInt(l).Float64()
			rf, _ := new(big.Float).SetInt(r).Float64()
			if lf == 0 {
				return nil, runtime.NewRuntimeError("zero cannot be raised to a negative power")
			}
			return runtime.FloatValue{Val: math.Pow(lf, rf)}, nil
		}
		return runtime.NewBigInt(new(big.Int).Exp(l, r, nil)), nil
	}
	return nil, runtime.NewRuntimeError("unsupported operator %s", op)
}

func bitwise(op string, left, right runtime.Value) (runtime.Value, error) {
	l, lok := left.(runtime.IntegerValue)
	r, rok := right.(runtime.IntegerValue)
	if !lok || !rok {
		return nil, runtime.NewTypeError("unsupported operand types for %s: '%s' and '%s'", op, left.Kind(), right.Kind())
	}
	switch op {
	case "&":
		return runtime.NewBigInt(new(big.Int).And(l.Val, r.Val)), nil
	case "|":
		return runtime.NewBigInt(new(big.Int).Or(l.Val, r.Val)), nil
	case "^":
		return runtime.NewBigInt(new(big.Int).Xor(l.Val, r.Val)), nil
	}
	if r.Val.Sign() < 0 {
		return nil, runtime.NewRuntimeError("negative shift count")
	}
	if !r.Val.IsUint64() || r.Val.Uint64() > math.MaxUint32 {
		return nil, runtime.NewRuntimeError("shift count too large")
	}
	n := uint(r.Val.Uint64())
	if op == "<<" {
		return runtime.NewBigInt(new(big.Int).Lsh(l.Val, n)), nil
	}
	return runtime.NewBigInt(new(big.Int).Rsh(l.Val, n)), nil
}

func compareValues(op string, left, right runtime.Value) (runtime.Value, error) {
	var cmp int
	switch {
	case isNumericValue(left) && isNumericValue(right):
		li, lInt := left.(runtime.IntegerValue)
		ri, rInt := right.(runtime.IntegerValue)
		if lInt && rInt {
			cmp = li.Val.Cmp(ri.Val)
			break
		}
		lf, _ := toFloat64(left)
		rf, _ := toFloat64(right)
		if math.IsNaN(lf) || math.IsNaN(rf) {
			return runtime.BoolValue{Val: false}, nil
		}
		switch {
		case lf < rf:
			cmp = -1
		case lf > rf:
			cmp = 1
		}
	default:
		ls, lok := left.(runtime.StringValue)
		rs, rok := right.(runtime.StringValue)
		if !lok || !rok {
			return nil, runtime.NewTypeError("'%s' not supported between '%s' and '%s'", op, left.Kind(), right.Kind())
		}
		cmp = strings.Compare(ls.Val, rs.Val)
	}
	var result bool
	switch op {
	case "<":
		result = cmp < 0
	case "<=":
		result = cmp <= 0
	case ">":
		result = cmp > 0
	case ">=":
		result = cmp >= 0
	}
	return runtime.BoolValue{Val: result}, nil
}

// valuesEqual is structural. Integers and floats compare by numeric value.
func valuesEqual(left, right runtime.Value) bool {
	if isNumericValue(left) && isNumericValue(right) {
		li, lInt := left.(runtime.IntegerValue)
		ri, rInt := right.(runtime.IntegerValue)
		if lInt && rInt {
			return li.Val.Cmp(ri.Val) == 0
		}
		lf, _ := toFloat64(left)
		rf, _ := toFloat64(right)
		return lf == rf
	}
	switch l := left.(type) {
	case runtime.StringValue:
		r, ok := right.(runtime.StringValue)
		return ok && l.Val == r.Val
	case runtime.BoolValue:
		r, ok := right.(runtime.BoolValue)
		return ok && l.Val == r.Val
	case runtime.NilValue:
		_, ok := right.(runtime.NilValue)
		return ok
	case *runtime.ListValue:
		r, ok := right.(*runtime.ListValue)
		if !ok || len(l.Elements) != len(r.Elements) {
			return false
		}
		for idx := range l.Elements {
			if !valuesEqual(l.Elements[idx], r.Elements[idx]) {
				return false
			}
		}
		return true
	case *runtime.FunctionValue:
		r, ok := right.(*runtime.FunctionValue)
		return ok && l == r
	case runtime.NativeFunctionValue:
		r, ok := right.(runtime.NativeFunctionValue)
		return ok && l.Name == r.Name
	default:
		return false
	}
}
