package parser

import (
	"fmt"

	"github.com/alecthomas/participle/v2/lexer"

	"ruspy/interpreter-go/pkg/ast"
)

// StartSymbol selects the top-level rule used to parse a source text.
type StartSymbol int

const (
	// StartExpression accepts any sequence of statements.
	StartExpression StartSymbol = iota
	// StartModule accepts function declarations and let bindings only.
	StartModule
)

func (s StartSymbol) String() string {
	switch s {
	case StartExpression:
		return "expression"
	case StartModule:
		return "module"
	default:
		return fmt.Sprintf("start_symbol_%d", int(s))
	}
}

// Parse parses src from the requested start symbol. The returned node is an
// *ast.Sequence for StartExpression and an *ast.Module for StartModule.
func Parse(src string, start StartSymbol) (ast.Node, error) {
	switch start {
	case StartExpression:
		return ParseExpression(src)
	case StartModule:
		return ParseModule(src)
	default:
		return nil, fmt.Errorf("parser: unknown start symbol %s", start)
	}
}

// ParseExpression parses src as a statement sequence.
func ParseExpression(src string) (*ast.Sequence, error) {
	tree, err := sequenceParser.ParseString("", src)
	if err != nil {
		return nil, newSyntaxError(err)
	}
	body, err := lowerStatements(tree.Statements)
	if err != nil {
		return nil, err
	}
	return ast.NewSequence(body), nil
}

// ParseModule parses src as a module of top-level declarations.
func ParseModule(src string) (*ast.Module, error) {
	tree, err := moduleParser.ParseString("", src)
	if err != nil {
		return nil, newSyntaxError(err)
	}
	body := make([]ast.Statement, 0, len(tree.Items))
	for idx, item := range tree.Items {
		if idx > 0 {
			if prev := tree.Items[idx-1].Let; prev != nil && !prev.Terminated {
				return nil, missingSeparator(item.Pos)
			}
		}
		switch {
		case item.Fn != nil:
			fn, err := lowerFunction(item.Fn)
			if err != nil {
				return nil, err
			}
			body = append(body, fn)
		case item.Let != nil:
			let, err := lowerLet(item.Let)
			if err != nil {
				return nil, err
			}
			body = append(body, let)
		}
	}
	return ast.NewModule(body), nil
}

func lowerStatements(stmts []*statement) ([]ast.Statement, error) {
	out := make([]ast.Statement, 0, len(stmts))
	for idx, stmt := range stmts {
		if idx > 0 && !stmts[idx-1].closed() {
			return nil, missingSeparator(stmt.Pos)
		}
		lowered, err := lowerStatement(stmt)
		if err != nil {
			return nil, err
		}
		if lowered != nil {
			out = append(out, lowered)
		}
	}
	return out, nil
}

// closed reports whether another statement may follow without a `;`.
// Statements ending in a block close themselves.
func (s *statement) closed() bool {
	switch {
	case s.Expr != nil:
		return s.Terminated
	case s.Let != nil:
		return s.Let.Terminated
	default:
		return true
	}
}

func missingSeparator(pos lexer.Position) *SyntaxError {
	return &SyntaxError{
		Message: "expected \";\" before the next statement",
		Line:    pos.Line,
		Column:  pos.Column,
	}
}

// lowerStatement returns nil for empty statements.
func lowerStatement(stmt *statement) (ast.Statement, error) {
	switch {
	case stmt.Fn != nil:
		return lowerFunction(stmt.Fn)
	case stmt.While != nil:
		cond, err := lowerExpr(stmt.While.Condition)
		if err != nil {
			return nil, err
		}
		body, err := lowerBlock(stmt.While.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewWhileLoop(cond, body), nil
	case stmt.For != nil:
		iterable, err := lowerExpr(stmt.For.Iterable)
		if err != nil {
			return nil, err
		}
		body, err := lowerBlock(stmt.For.Body)
		if err != nil {
			return nil, err
		}
		return ast.NewForLoop(ast.NewName(stmt.For.Variable), iterable, body), nil
	case stmt.Let != nil:
		return lowerLet(stmt.Let)
	case stmt.If != nil:
		return lowerIf(stmt.If)
	case stmt.Block != nil:
		return lowerBlock(stmt.Block)
	case stmt.Expr != nil:
		return lowerExpr(stmt.Expr)
	default:
		return nil, nil
	}
}

func lowerFunction(fn *fnDecl) (*ast.FunctionDefinition, error) {
	body, err := lowerBlock(fn.Body)
	if err != nil {
		return nil, err
	}
	return ast.NewFunctionDefinition(ast.NewName(fn.Name), lowerParams(fn.Params), body), nil
}

func lowerLet(let *letStmt) (*ast.LetStatement, error) {
	value, err := lowerExpr(let.Value)
	if err != nil {
		return nil, err
	}
	return ast.NewLetStatement(ast.NewName(let.Name), value), nil
}

// Type annotations on parameters are accepted and dropped.
func lowerParams(params []*param) []*ast.Name {
	out := make([]*ast.Name, len(params))
	for i, p := range params {
		out[i] = ast.NewName(p.Name)
	}
	return out
}

func lowerBlock(b *block) (*ast.BlockExpression, error) {
	if b == nil {
		return nil, fmt.Errorf("parser: missing block")
	}
	body, err := lowerStatements(b.Statements)
	if err != nil {
		return nil, err
	}
	return ast.NewBlockExpression(body), nil
}
