package interpreter

import (
	"ruspy/interpreter-go/pkg/parser"
	"ruspy/interpreter-go/pkg/runtime"
)

// Session evaluates successive inputs against one persistent global scope,
// as the REPL needs.
type Session struct {
	interp *Interpreter
	env    *runtime.Environment
}

func (i *Interpreter) NewSession() *Session {
	return &Session{interp: i, env: i.resetGlobals()}
}

// Eval parses src as a statement sequence and evaluates it in the session
// scope, so bindings survive between calls.
func (s *Session) Eval(src string) (runtime.Value, error) {
	tree, err := parser.ParseExpression(src)
	if err != nil {
		return nil, err
	}
	s.interp.global = s.env
	return s.interp.evaluateRoot(tree, s.env)
}

// Bindings lists the names defined in the session that are not builtins.
func (s *Session) Bindings() []string {
	var out []string
	for _, name := range s.env.Keys() {
		if _, builtin := builtinRegistry[name]; builtin {
			continue
		}
		out = append(out, name)
	}
	return out
}
