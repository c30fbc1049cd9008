package interpreter

import (
	"math/big"
	"strconv"
	"strings"

	"fortio.org/log"

	"ruspy/interpreter-go/pkg/ast"
	"ruspy/interpreter-go/pkg/runtime"
)

// applyRule implements the ordinary node kinds. args holds the values of
// the node's non-name children in source order.
func (i *Interpreter) applyRule(node ast.Node, args []runtime.Value, env *runtime.Environment) (runtime.Value, error) {
	switch n := node.(type) {
	case *ast.IntegerLiteral:
		return integerFromLiteral(n.Raw)
	case *ast.FloatLiteral:
		return floatFromLiteral(n.Raw)
	case *ast.StringLiteral:
		return runtime.StringValue{Val: n.Value}, nil
	case *ast.Identifier:
		return env.Get(n.Name)
	case *ast.ListLiteral:
		return runtime.NewList(args), nil
	case *ast.UnaryExpression:
		return unaryOperation(n.Operator, args[0])
	case *ast.BinaryExpression:
		return binaryOperation(n.Operator, args[0], args[1])
	case *ast.IndexExpression:
		return indexValue(args[0], args[1])
	case *ast.FunctionCall:
		return i.callFunction(args[0], args[1:])
	case *ast.AssignmentExpression:
		if log.LogVerbose() {
			log.LogVf("assign %s = %s", n.Target.Value, reprValue(args[0]))
		}
		env.Assign(n.Target.Value, args[0])
		return args[0], nil
	case *ast.LetStatement:
		if log.LogVerbose() {
			log.LogVf("let %s = %s", n.Target.Value, reprValue(args[0]))
		}
		env.Define(n.Target.Value, args[0])
		return runtime.NilValue{}, nil
	case *ast.Sequence, *ast.Module:
		if len(args) == 0 {
			return runtime.NilValue{}, nil
		}
		return args[len(args)-1], nil
	default:
		return runtime.UnevaluatedValue{Node: node}, nil
	}
}

// Separators are validated by the lexer; the literal rule only strips them.
func integerFromLiteral(raw string) (runtime.Value, error) {
	digits := strings.ReplaceAll(raw, "_", "")
	val, ok := new(big.Int).SetString(digits, 10)
	if !ok {
		return nil, runtime.NewRuntimeError("invalid integer literal %q", raw)
	}
	return runtime.NewBigInt(val), nil
}

func floatFromLiteral(raw string) (runtime.Value, error) {
	val, err := strconv.ParseFloat(strings.ReplaceAll(raw, "_", ""), 64)
	if err != nil {
		return nil, runtime.NewRuntimeError("invalid float literal %q", raw)
	}
	return runtime.FloatValue{Val: val}, nil
}

func indexValue(object, index runtime.Value) (runtime.Value, error) {
	idx, ok := index.(runtime.IntegerValue)
	if !ok {
		return nil, runtime.NewTypeError("indices must be integers, not %s", index.Kind())
	}
	switch obj := object.(type) {
	case *runtime.ListValue:
		pos, err := normalizeIndex(idx, len(obj.Elements), "list")
		if err != nil {
			return nil, err
		}
		return obj.Elements[pos], nil
	case runtime.StringValue:
		runes := []rune(obj.Val)
		pos, err := normalizeIndex(idx, len(runes), "string")
		if err != nil {
			return nil, err
		}
		return runtime.StringValue{Val: string(runes[pos])}, nil
	default:
		return nil, runtime.NewTypeError("'%s' value is not subscriptable", object.Kind())
	}
}

func normalizeIndex(idx runtime.IntegerValue, length int, what string) (int, error) {
	if !idx.Val.IsInt64() {
		return 0, runtime.NewRuntimeError("%s index out of range", what)
	}
	pos := idx.Val.Int64()
	if pos < 0 {
		pos += int64(length)
	}
	if pos < 0 || pos >= int64(length) {
		return 0, runtime.NewRuntimeError("%s index out of range", what)
	}
	return int(pos), nil
}
