package parser

import (
	"fmt"
	"strconv"

	"ruspy/interpreter-go/pkg/ast"
)

func lowerExpr(e *expr) (ast.Expression, error) {
	if e == nil {
		return nil, fmt.Errorf("parser: missing expression")
	}
	switch {
	case e.Lambda != nil:
		body, err := lowerExpr(e.Lambda.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewLambdaExpression(lowerParams(e.Lambda.Params), body), nil
	case e.Assign != nil:
		value, err := lowerExpr(e.Assign.Value)
		if err != nil {
			return nil, err
		}
		return ast.NewAssignmentExpression(ast.NewName(e.Assign.Target), value), nil
	case e.Or != nil:
		return lowerOr(e.Or)
	default:
		return nil, fmt.Errorf("parser: empty expression")
	}
}

func lowerOr(o *orExpr) (ast.Expression, error) {
	left, err := lowerAnd(o.Left)
	if err != nil {
		return nil, err
	}
	for _, operand := range o.Rest {
		right, err := lowerAnd(operand)
		if err != nil {
			return nil, err
		}
		left = ast.NewOrExpression(left, right)
	}
	return left, nil
}

func lowerAnd(a *andExpr) (ast.Expression, error) {
	left, err := lowerNot(a.Left)
	if err != nil {
		return nil, err
	}
	for _, operand := range a.Rest {
		right, err := lowerNot(operand)
		if err != nil {
			return nil, err
		}
		left = ast.NewAndExpression(left, right)
	}
	return left, nil
}

func lowerNot(n *notExpr) (ast.Expression, error) {
	if n.Not != nil {
		operand, err := lowerNot(n.Not)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression("not", operand), nil
	}
	left, err := lowerBitOr(n.Comparison.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range n.Comparison.Rest {
		right, err := lowerBitOr(op.Right)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op.Op, left, right)
	}
	return left, nil
}

func lowerBitOr(b *bitOr) (ast.Expression, error) {
	left, err := lowerBitXor(b.Left)
	if err != nil {
		return nil, err
	}
	for _, operand := range b.Rest {
		right, err := lowerBitXor(operand)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression("|", left, right)
	}
	return left, nil
}

func lowerBitXor(b *bitXor) (ast.Expression, error) {
	left, err := lowerBitAnd(b.Left)
	if err != nil {
		return nil, err
	}
	for _, operand := range b.Rest {
		right, err := lowerBitAnd(operand)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression("^", left, right)
	}
	return left, nil
}

func lowerBitAnd(b *bitAnd) (ast.Expression, error) {
	left, err := lowerShift(b.Left)
	if err != nil {
		return nil, err
	}
	for _, operand := range b.Rest {
		right, err := lowerShift(operand)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression("&", left, right)
	}
	return left, nil
}

func lowerShift(s *shift) (ast.Expression, error) {
	left, err := lowerAdditive(s.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range s.Rest {
		right, err := lowerAdditive(op.Right)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op.Op, left, right)
	}
	return left, nil
}

func lowerAdditive(a *additive) (ast.Expression, error) {
	left, err := lowerMultiplicative(a.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range a.Rest {
		right, err := lowerMultiplicative(op.Right)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op.Op, left, right)
	}
	return left, nil
}

func lowerMultiplicative(m *multiplicative) (ast.Expression, error) {
	left, err := lowerUnary(m.Left)
	if err != nil {
		return nil, err
	}
	for _, op := range m.Rest {
		right, err := lowerUnary(op.Right)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpression(op.Op, left, right)
	}
	return left, nil
}

func lowerUnary(u *unary) (ast.Expression, error) {
	if u.Negation != nil {
		operand, err := lowerUnary(u.Negation.Operand)
		if err != nil {
			return nil, err
		}
		return ast.NewUnaryExpression(u.Negation.Op, operand), nil
	}
	base, err := lowerPostfix(u.Power.Base)
	if err != nil {
		return nil, err
	}
	if u.Power.Exponent == nil {
		return base, nil
	}
	exponent, err := lowerUnary(u.Power.Exponent)
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryExpression("**", base, exponent), nil
}

func lowerPostfix(p *postfix) (ast.Expression, error) {
	current, err := lowerPrimary(p.Primary)
	if err != nil {
		return nil, err
	}
	for _, s := range p.Suffixes {
		if s.Call != nil {
			args, err := lowerExprList(s.Call.Args)
			if err != nil {
				return nil, err
			}
			current = ast.NewFunctionCall(current, args)
			continue
		}
		index, err := lowerExpr(s.Index)
		if err != nil {
			return nil, err
		}
		current = ast.NewIndexExpression(current, index)
	}
	return current, nil
}

func lowerPrimary(p *primary) (ast.Expression, error) {
	switch {
	case p.Float != nil:
		return ast.NewFloatLiteral(*p.Float), nil
	case p.Int != nil:
		return ast.NewIntegerLiteral(*p.Int), nil
	case p.String != nil:
		value, err := strconv.Unquote(*p.String)
		if err != nil {
			return nil, &SyntaxError{
				Message: fmt.Sprintf("invalid string literal %s", *p.String),
				Line:    p.Pos.Line,
				Column:  p.Pos.Column,
			}
		}
		return ast.NewStringLiteral(value), nil
	case p.List != nil:
		elements, err := lowerExprList(p.List.Elements)
		if err != nil {
			return nil, err
		}
		return ast.NewListLiteral(elements), nil
	case p.If != nil:
		return lowerIf(p.If)
	case p.Block != nil:
		return lowerBlock(p.Block)
	case p.Paren != nil:
		return lowerExpr(p.Paren)
	case p.Name != nil:
		return ast.NewIdentifier(*p.Name), nil
	default:
		return nil, fmt.Errorf("parser: empty primary expression")
	}
}

func lowerIf(i *ifExpr) (*ast.IfExpression, error) {
	cond, err := lowerExpr(i.Condition)
	if err != nil {
		return nil, err
	}
	then, err := lowerBlock(i.Then)
	if err != nil {
		return nil, err
	}
	var elseBranch ast.Expression
	switch {
	case i.Else == nil:
	case i.Else.If != nil:
		elseBranch, err = lowerIf(i.Else.If)
	case i.Else.Block != nil:
		elseBranch, err = lowerBlock(i.Else.Block)
	}
	if err != nil {
		return nil, err
	}
	return ast.NewIfExpression(cond, then, elseBranch), nil
}

func lowerExprList(exprs []*expr) ([]ast.Expression, error) {
	out := make([]ast.Expression, len(exprs))
	for i, e := range exprs {
		lowered, err := lowerExpr(e)
		if err != nil {
			return nil, err
		}
		out[i] = lowered
	}
	return out, nil
}
