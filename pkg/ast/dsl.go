package ast

import "strconv"

// Identifier and literal helpers.

func ID(name string) *Identifier {
	return NewIdentifier(name)
}

func Nm(name string) *Name {
	return NewName(name)
}

func Str(value string) *StringLiteral {
	return NewStringLiteral(value)
}

func Int(value int64) *IntegerLiteral {
	return NewIntegerLiteral(strconv.FormatInt(value, 10))
}

func IntRaw(raw string) *IntegerLiteral {
	return NewIntegerLiteral(raw)
}

func Flt(value float64) *FloatLiteral {
	return NewFloatLiteral(strconv.FormatFloat(value, 'g', -1, 64))
}

func Arr(elements ...Expression) *ListLiteral {
	return NewListLiteral(elements)
}

// Operator helpers.

func Bin(op string, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func Un(op string, operand Expression) *UnaryExpression {
	return NewUnaryExpression(op, operand)
}

func And(left, right Expression) *AndExpression {
	return NewAndExpression(left, right)
}

func Or(left, right Expression) *OrExpression {
	return NewOrExpression(left, right)
}

func Call(callee string, args ...Expression) *FunctionCall {
	return NewFunctionCall(ID(callee), args)
}

func CallExpr(callee Expression, args ...Expression) *FunctionCall {
	return NewFunctionCall(callee, args)
}

func Index(object, index Expression) *IndexExpression {
	return NewIndexExpression(object, index)
}

func Assign(target string, value Expression) *AssignmentExpression {
	return NewAssignmentExpression(Nm(target), value)
}

// Control flow helpers.

func Block(body ...Statement) *BlockExpression {
	return NewBlockExpression(body)
}

func If(condition Expression, then *BlockExpression, elseBranch Expression) *IfExpression {
	return NewIfExpression(condition, then, elseBranch)
}

func While(condition Expression, body *BlockExpression) *WhileLoop {
	return NewWhileLoop(condition, body)
}

func For(variable string, iterable Expression, body *BlockExpression) *ForLoop {
	return NewForLoop(Nm(variable), iterable, body)
}

func Let(target string, value Expression) *LetStatement {
	return NewLetStatement(Nm(target), value)
}

// Function helpers.

func Fn(name string, params []string, body *BlockExpression) *FunctionDefinition {
	return NewFunctionDefinition(Nm(name), names(params), body)
}

func Lam(params []string, body Expression) *LambdaExpression {
	return NewLambdaExpression(names(params), body)
}

func Seq(body ...Statement) *Sequence {
	return NewSequence(body)
}

func Mod(body ...Statement) *Module {
	return NewModule(body)
}

func names(values []string) []*Name {
	out := make([]*Name, len(values))
	for i, v := range values {
		out[i] = Nm(v)
	}
	return out
}
