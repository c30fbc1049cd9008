package interpreter

import (
	"fmt"
	"io"

	"ruspy/interpreter-go/pkg/ast"
	"ruspy/interpreter-go/pkg/parser"
	"ruspy/interpreter-go/pkg/runtime"
)

const noMainMessage = "module defines no main function"

// EvaluateExpression parses src as a statement sequence and returns the
// value of its last statement.
func EvaluateExpression(src string) (runtime.Value, error) {
	return New().EvaluateExpression(src)
}

// EvaluateModule parses src as a module and returns the bindings of its
// global environment, builtins included.
func EvaluateModule(src string) (map[string]runtime.Value, error) {
	return New().EvaluateModule(src)
}

// RunModule evaluates src as a module and calls its main function.
func RunModule(src string) error {
	return New().RunModule(src)
}

// CallFunction invokes a function value obtained from EvaluateModule.
func CallFunction(fn runtime.Value, args ...runtime.Value) (runtime.Value, error) {
	return New().CallFunction(fn, args...)
}

func (i *Interpreter) EvaluateExpression(src string) (runtime.Value, error) {
	tree, err := parser.ParseExpression(src)
	if err != nil {
		i.reportSyntaxError(src, err)
		return nil, err
	}
	return i.evaluateRoot(tree, i.resetGlobals())
}

func (i *Interpreter) EvaluateModule(src string) (map[string]runtime.Value, error) {
	tree, err := parser.ParseModule(src)
	if err != nil {
		i.reportSyntaxError(src, err)
		return nil, err
	}
	env := i.resetGlobals()
	if _, err := i.evaluateRoot(tree, env); err != nil {
		return nil, err
	}
	return env.Snapshot(), nil
}

func (i *Interpreter) RunModule(src string) error {
	bindings, err := i.EvaluateModule(src)
	if err != nil {
		return err
	}
	main, ok := bindings["main"]
	if !ok {
		return runtime.NewRuntimeError(noMainMessage)
	}
	_, err = i.CallFunction(main)
	return err
}

// CallFunction calls fn with already evaluated arguments. Output of the
// call goes to this interpreter's stdout.
func (i *Interpreter) CallFunction(fn runtime.Value, args ...runtime.Value) (runtime.Value, error) {
	if fn == nil {
		return nil, runtime.NewTypeError("cannot call a nil value")
	}
	val, err := i.callFunction(fn, args)
	if closure, ok := fn.(*runtime.FunctionValue); ok {
		return i.checkComplete(closure.Body, val, err)
	}
	return val, err
}

func (i *Interpreter) evaluateRoot(root ast.Node, env *runtime.Environment) (runtime.Value, error) {
	val, err := i.evaluate(root, env)
	return i.checkComplete(root, val, err)
}

// reportSyntaxError prints the rejected source followed by its token stream.
func (i *Interpreter) reportSyntaxError(src string, err error) {
	writeSyntaxDiagnostics(i.stderr, src, err)
}

func writeSyntaxDiagnostics(w io.Writer, src string, err error) {
	fmt.Fprintf(w, "error evaluating source:\n%s\n\n%v\n\ntokens:\n", src, err)
	tokens, lexErr := parser.Lex(src)
	for idx, tok := range tokens {
		fmt.Fprintf(w, " - %d) %s (%s)\n", idx+1, tok.Text, tok.Kind)
	}
	if lexErr != nil {
		fmt.Fprintf(w, " ! %v\n", lexErr)
	}
}

// FormatValue renders a value the way println shows it.
func FormatValue(val runtime.Value) string {
	return valueToString(val)
}

// Repr renders a value as source-like text (strings quoted).
func Repr(val runtime.Value) string {
	return reprValue(val)
}
