package ast

type NodeType string

const (
	NodeName                 NodeType = "Name"
	NodeIdentifier           NodeType = "Identifier"
	NodeStringLiteral        NodeType = "StringLiteral"
	NodeIntegerLiteral       NodeType = "IntegerLiteral"
	NodeFloatLiteral         NodeType = "FloatLiteral"
	NodeListLiteral          NodeType = "ListLiteral"
	NodeUnaryExpression      NodeType = "UnaryExpression"
	NodeBinaryExpression     NodeType = "BinaryExpression"
	NodeAndExpression        NodeType = "AndExpression"
	NodeOrExpression         NodeType = "OrExpression"
	NodeFunctionCall         NodeType = "FunctionCall"
	NodeIndexExpression      NodeType = "IndexExpression"
	NodeAssignmentExpression NodeType = "AssignmentExpression"
	NodeLambdaExpression     NodeType = "LambdaExpression"
	NodeIfExpression         NodeType = "IfExpression"
	NodeBlockExpression      NodeType = "BlockExpression"
	NodeLetStatement         NodeType = "LetStatement"
	NodeFunctionDefinition   NodeType = "FunctionDefinition"
	NodeWhileLoop            NodeType = "WhileLoop"
	NodeForLoop              NodeType = "ForLoop"
	NodeSequence             NodeType = "Sequence"
	NodeModule               NodeType = "Module"
)

// Node is implemented by every syntax tree variant. Children lists the
// sub-nodes in source order; leaves return nil.
type Node interface {
	NodeType() NodeType
	Children() []Node
	isNode()
}

type nodeImpl struct {
	Type NodeType `json:"type"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType { return n.Type }
func (nodeImpl) isNode()              {}

// Marker interfaces.

type Expression interface {
	Node
	expressionNode()
	statementNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

// Name is an identifier token in binding position (declared function
// names, parameters, loop variables, assignment targets). It is never
// evaluated on its own.
type Name struct {
	nodeImpl

	Value string `json:"value"`
}

func NewName(value string) *Name {
	return &Name{nodeImpl: newNodeImpl(NodeName), Value: value}
}

func (*Name) Children() []Node { return nil }

// Identifier is a name in expression position, resolved at runtime.
type Identifier struct {
	nodeImpl
	expressionMarker
	statementMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

func (*Identifier) Children() []Node { return nil }

// Literals

type StringLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Value string `json:"value"`
}

func NewStringLiteral(value string) *StringLiteral {
	return &StringLiteral{nodeImpl: newNodeImpl(NodeStringLiteral), Value: value}
}

func (*StringLiteral) Children() []Node { return nil }

// IntegerLiteral keeps the source digits, digit-group separators
// included; conversion happens at evaluation time.
type IntegerLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Raw string `json:"raw"`
}

func NewIntegerLiteral(raw string) *IntegerLiteral {
	return &IntegerLiteral{nodeImpl: newNodeImpl(NodeIntegerLiteral), Raw: raw}
}

func (*IntegerLiteral) Children() []Node { return nil }

type FloatLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Raw string `json:"raw"`
}

func NewFloatLiteral(raw string) *FloatLiteral {
	return &FloatLiteral{nodeImpl: newNodeImpl(NodeFloatLiteral), Raw: raw}
}

func (*FloatLiteral) Children() []Node { return nil }

type ListLiteral struct {
	nodeImpl
	expressionMarker
	statementMarker

	Elements []Expression `json:"elements"`
}

func NewListLiteral(elements []Expression) *ListLiteral {
	return &ListLiteral{nodeImpl: newNodeImpl(NodeListLiteral), Elements: elements}
}

func (n *ListLiteral) Children() []Node { return expressionNodes(n.Elements) }

// Operators

type UnaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator string     `json:"operator"`
	Operand  Expression `json:"operand"`
}

func NewUnaryExpression(operator string, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

func (n *UnaryExpression) Children() []Node { return []Node{n.Operand} }

type BinaryExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Operator string     `json:"operator"`
	Left     Expression `json:"left"`
	Right    Expression `json:"right"`
}

func NewBinaryExpression(operator string, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

func (n *BinaryExpression) Children() []Node { return []Node{n.Left, n.Right} }

type AndExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewAndExpression(left, right Expression) *AndExpression {
	return &AndExpression{nodeImpl: newNodeImpl(NodeAndExpression), Left: left, Right: right}
}

func (n *AndExpression) Children() []Node { return []Node{n.Left, n.Right} }

type OrExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Left  Expression `json:"left"`
	Right Expression `json:"right"`
}

func NewOrExpression(left, right Expression) *OrExpression {
	return &OrExpression{nodeImpl: newNodeImpl(NodeOrExpression), Left: left, Right: right}
}

func (n *OrExpression) Children() []Node { return []Node{n.Left, n.Right} }

type FunctionCall struct {
	nodeImpl
	expressionMarker
	statementMarker

	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewFunctionCall(callee Expression, args []Expression) *FunctionCall {
	return &FunctionCall{nodeImpl: newNodeImpl(NodeFunctionCall), Callee: callee, Arguments: args}
}

func (n *FunctionCall) Children() []Node {
	out := make([]Node, 0, len(n.Arguments)+1)
	out = append(out, n.Callee)
	return append(out, expressionNodes(n.Arguments)...)
}

type IndexExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Object Expression `json:"object"`
	Index  Expression `json:"index"`
}

func NewIndexExpression(object, index Expression) *IndexExpression {
	return &IndexExpression{nodeImpl: newNodeImpl(NodeIndexExpression), Object: object, Index: index}
}

func (n *IndexExpression) Children() []Node { return []Node{n.Object, n.Index} }

// AssignmentExpression rebinds the nearest existing binding of Target or
// creates one in the current scope.
type AssignmentExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Target *Name      `json:"target"`
	Value  Expression `json:"value"`
}

func NewAssignmentExpression(target *Name, value Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Target: target, Value: value}
}

func (n *AssignmentExpression) Children() []Node { return []Node{n.Target, n.Value} }

type LambdaExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Params []*Name     `json:"params"`
	Body   Expression `json:"body"`
}

func NewLambdaExpression(params []*Name, body Expression) *LambdaExpression {
	return &LambdaExpression{nodeImpl: newNodeImpl(NodeLambdaExpression), Params: params, Body: body}
}

func (n *LambdaExpression) Children() []Node {
	return append(nameNodes(n.Params), n.Body)
}

// IfExpression. Else is nil, a *BlockExpression or a nested *IfExpression.
type IfExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Condition Expression       `json:"condition"`
	Then      *BlockExpression `json:"then"`
	Else      Expression       `json:"else,omitempty"`
}

func NewIfExpression(condition Expression, then *BlockExpression, elseBranch Expression) *IfExpression {
	return &IfExpression{nodeImpl: newNodeImpl(NodeIfExpression), Condition: condition, Then: then, Else: elseBranch}
}

func (n *IfExpression) Children() []Node {
	out := []Node{n.Condition, n.Then}
	if n.Else != nil {
		out = append(out, n.Else)
	}
	return out
}

type BlockExpression struct {
	nodeImpl
	expressionMarker
	statementMarker

	Body []Statement `json:"body"`
}

func NewBlockExpression(body []Statement) *BlockExpression {
	return &BlockExpression{nodeImpl: newNodeImpl(NodeBlockExpression), Body: body}
}

func (n *BlockExpression) Children() []Node { return statementNodes(n.Body) }

// Statements

// LetStatement always declares in the current scope, shadowing outer
// bindings.
type LetStatement struct {
	nodeImpl
	statementMarker

	Target *Name      `json:"target"`
	Value  Expression `json:"value"`
}

func NewLetStatement(target *Name, value Expression) *LetStatement {
	return &LetStatement{nodeImpl: newNodeImpl(NodeLetStatement), Target: target, Value: value}
}

func (n *LetStatement) Children() []Node { return []Node{n.Target, n.Value} }

type FunctionDefinition struct {
	nodeImpl
	statementMarker

	ID     *Name            `json:"id"`
	Params []*Name          `json:"params"`
	Body   *BlockExpression `json:"body"`
}

func NewFunctionDefinition(id *Name, params []*Name, body *BlockExpression) *FunctionDefinition {
	return &FunctionDefinition{nodeImpl: newNodeImpl(NodeFunctionDefinition), ID: id, Params: params, Body: body}
}

func (n *FunctionDefinition) Children() []Node {
	out := []Node{n.ID}
	out = append(out, nameNodes(n.Params)...)
	return append(out, n.Body)
}

type WhileLoop struct {
	nodeImpl
	statementMarker

	Condition Expression       `json:"condition"`
	Body      *BlockExpression `json:"body"`
}

func NewWhileLoop(condition Expression, body *BlockExpression) *WhileLoop {
	return &WhileLoop{nodeImpl: newNodeImpl(NodeWhileLoop), Condition: condition, Body: body}
}

func (n *WhileLoop) Children() []Node { return []Node{n.Condition, n.Body} }

type ForLoop struct {
	nodeImpl
	statementMarker

	Variable *Name            `json:"variable"`
	Iterable Expression       `json:"iterable"`
	Body     *BlockExpression `json:"body"`
}

func NewForLoop(variable *Name, iterable Expression, body *BlockExpression) *ForLoop {
	return &ForLoop{nodeImpl: newNodeImpl(NodeForLoop), Variable: variable, Iterable: iterable, Body: body}
}

func (n *ForLoop) Children() []Node { return []Node{n.Variable, n.Iterable, n.Body} }

// Roots

// Sequence is the root produced by the expression start symbol.
type Sequence struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewSequence(body []Statement) *Sequence {
	return &Sequence{nodeImpl: newNodeImpl(NodeSequence), Body: body}
}

func (n *Sequence) Children() []Node { return statementNodes(n.Body) }

// Module is the root produced by the module start symbol.
type Module struct {
	nodeImpl

	Body []Statement `json:"body"`
}

func NewModule(body []Statement) *Module {
	return &Module{nodeImpl: newNodeImpl(NodeModule), Body: body}
}

func (n *Module) Children() []Node { return statementNodes(n.Body) }

func expressionNodes(exprs []Expression) []Node {
	out := make([]Node, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}

func statementNodes(stmts []Statement) []Node {
	out := make([]Node, len(stmts))
	for i, s := range stmts {
		out[i] = s
	}
	return out
}

func nameNodes(names []*Name) []Node {
	out := make([]Node, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}
