package interpreter

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"ruspy/interpreter-go/pkg/ast"
	"ruspy/interpreter-go/pkg/runtime"
)

func newTestInterpreter() (*Interpreter, *bytes.Buffer, *bytes.Buffer) {
	interp := New()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	interp.SetStdout(stdout)
	interp.SetStderr(stderr)
	return interp, stdout, stderr
}

func expectInt(t *testing.T, val runtime.Value, want int64) {
	t.Helper()
	iv, ok := val.(runtime.IntegerValue)
	if !ok {
		t.Fatalf("expected integer %d, got %#v", want, val)
	}
	if !iv.Val.IsInt64() || iv.Val.Int64() != want {
		t.Fatalf("expected integer %d, got %s", want, iv.Val)
	}
}

// bogusNode is a node kind the evaluator has no rule for.
type bogusNode struct {
	*ast.Identifier
}

func (bogusNode) NodeType() ast.NodeType { return "Bogus" }

func TestEvaluateIdentifierLookup(t *testing.T) {
	interp, _, _ := newTestInterpreter()
	global := interp.GlobalEnvironment()
	global.Define("greeting", runtime.StringValue{Val: "hello"})

	val, err := interp.evaluate(ast.ID("greeting"), global)
	if err != nil {
		t.Fatalf("identifier lookup failed: %v", err)
	}
	str, ok := val.(runtime.StringValue)
	if !ok || str.Val != "hello" {
		t.Fatalf("unexpected value %#v", val)
	}
}

func TestEvaluateBlockCreatesScope(t *testing.T) {
	interp, _, _ := newTestInterpreter()
	global := interp.GlobalEnvironment()
	block := ast.Block(
		ast.Let("x", ast.Str("inner")),
		ast.ID("x"),
	)

	val, err := interp.evaluate(block, global)
	if err != nil {
		t.Fatalf("block evaluation failed: %v", err)
	}
	if str, ok := val.(runtime.StringValue); !ok || str.Val != "inner" {
		t.Fatalf("unexpected block value %#v", val)
	}
	if global.Has("x") {
		t.Fatalf("block binding leaked into the enclosing scope")
	}
}

func TestAssignmentInBlockMutatesOuterBinding(t *testing.T) {
	interp, _, _ := newTestInterpreter()
	global := interp.GlobalEnvironment()
	seq := ast.Seq(
		ast.Let("x", ast.Int(1)),
		ast.Block(ast.Assign("x", ast.Int(2)), ast.Assign("fresh", ast.Int(3))),
		ast.ID("x"),
	)
	val, err := interp.evaluate(seq, global)
	if err != nil {
		t.Fatalf("evaluation failed: %v", err)
	}
	expectInt(t, val, 2)
	if global.Has("fresh") {
		t.Fatalf("assignment to an unknown name must create it in the innermost scope")
	}
}

func TestForceReturnsEvaluatedValuesUnchanged(t *testing.T) {
	interp, _, _ := newTestInterpreter()
	val, err := interp.force(evaluated(runtime.NewInt(7)), interp.GlobalEnvironment())
	if err != nil {
		t.Fatalf("force failed: %v", err)
	}
	expectInt(t, val, 7)
}

func TestForceRejectsBindingNames(t *testing.T) {
	interp, _, _ := newTestInterpreter()
	_, err := interp.force(deferred(ast.Nm("x")), interp.GlobalEnvironment())
	var fault runtime.CompletenessError
	if !errors.As(err, &fault) {
		t.Fatalf("expected CompletenessError, got %v", err)
	}
	if fault.Kind != ast.NodeName {
		t.Fatalf("unexpected fault kind %s", fault.Kind)
	}
}

func TestMissingRuleIsReportedWithTreeDump(t *testing.T) {
	cases := []struct {
		name string
		tree ast.Node
	}{
		{"ordinary root", ast.Seq(bogusNode{ast.ID("x")})},
		{"ordinary child", ast.Seq(ast.Bin("+", bogusNode{ast.ID("x")}, ast.Int(1)))},
		{"special form operand", ast.Seq(ast.And(bogusNode{ast.ID("x")}, ast.Int(1)))},
	}
	for _, tc := range cases {
		interp, _, stderr := newTestInterpreter()
		_, err := interp.evaluateRoot(tc.tree, interp.GlobalEnvironment())
		var fault runtime.CompletenessError
		if !errors.As(err, &fault) {
			t.Fatalf("%s: expected CompletenessError, got %v", tc.name, err)
		}
		if fault.Kind != "Bogus" {
			t.Fatalf("%s: unexpected fault kind %s", tc.name, fault.Kind)
		}
		if !strings.HasPrefix(fault.Tree, "Sequence\n") || !strings.Contains(fault.Tree, "Bogus") {
			t.Fatalf("%s: expected whole tree in fault, got:\n%s", tc.name, fault.Tree)
		}
		if stderr.String() != fault.Tree {
			t.Fatalf("%s: expected tree dump on stderr, got %q", tc.name, stderr.String())
		}
	}
}

func TestShortCircuitSkipsRightOperand(t *testing.T) {
	interp, stdout, _ := newTestInterpreter()
	global := interp.GlobalEnvironment()
	sideEffect := ast.Call("println", ast.Str("evaluated"))

	val, err := interp.evaluate(ast.And(ast.Int(0), sideEffect), global)
	if err != nil {
		t.Fatalf("and failed: %v", err)
	}
	expectInt(t, val, 0)

	val, err = interp.evaluate(ast.Or(ast.Int(5), sideEffect), global)
	if err != nil {
		t.Fatalf("or failed: %v", err)
	}
	expectInt(t, val, 5)

	if stdout.Len() != 0 {
		t.Fatalf("right operand was evaluated: %q", stdout.String())
	}
}

func TestIfWithoutElseYieldsUnit(t *testing.T) {
	interp, stdout, _ := newTestInterpreter()
	val, err := interp.evaluate(ast.If(ast.ID("false"), ast.Block(ast.Call("println", ast.Int(1))), nil), interp.GlobalEnvironment())
	if err != nil {
		t.Fatalf("if failed: %v", err)
	}
	if _, ok := val.(runtime.NilValue); !ok {
		t.Fatalf("expected unit, got %#v", val)
	}
	if stdout.Len() != 0 {
		t.Fatalf("untaken branch produced output %q", stdout.String())
	}
}

func TestFunctionDefinitionCapturesEnvironment(t *testing.T) {
	interp, _, _ := newTestInterpreter()
	global := interp.GlobalEnvironment()
	def := ast.Fn("add", []string{"a", "b"}, ast.Block(ast.Bin("+", ast.ID("a"), ast.ID("b"))))
	if _, err := interp.evaluate(def, global); err != nil {
		t.Fatalf("definition failed: %v", err)
	}
	fnVal, err := global.Get("add")
	if err != nil {
		t.Fatalf("function not bound: %v", err)
	}
	fn, ok := fnVal.(*runtime.FunctionValue)
	if !ok {
		t.Fatalf("expected closure, got %#v", fnVal)
	}
	if fn.Closure != global || len(fn.Params) != 2 {
		t.Fatalf("unexpected closure %+v", fn)
	}
	val, err := interp.CallFunction(fn, runtime.NewInt(2), runtime.NewInt(3))
	if err != nil {
		t.Fatalf("call failed: %v", err)
	}
	expectInt(t, val, 5)
}

func TestClosureArityMismatch(t *testing.T) {
	interp, _, _ := newTestInterpreter()
	lambda := ast.Lam([]string{"x"}, ast.ID("x"))
	fn, err := interp.evaluate(lambda, interp.GlobalEnvironment())
	if err != nil {
		t.Fatalf("lambda failed: %v", err)
	}
	_, err = interp.CallFunction(fn)
	var arityErr runtime.ArityError
	if !errors.As(err, &arityErr) {
		t.Fatalf("expected ArityError, got %v", err)
	}
	if arityErr.Expected != 1 || arityErr.Got != 0 {
		t.Fatalf("unexpected arity error %+v", arityErr)
	}
}
