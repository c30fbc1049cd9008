package parser

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// Position locates a token in the source (1-based line and column).
type Position struct {
	Offset int
	Line   int
	Column int
}

// Token is a lexical unit as seen by diagnostics.
type Token struct {
	Kind string
	Text string
	Pos  Position
}

var tokenKinds = func() map[lexer.TokenType]string {
	out := make(map[lexer.TokenType]string)
	for name, typ := range ruspyLexer.Symbols() {
		out[typ] = name
	}
	return out
}()

// Lex splits src into tokens, dropping whitespace and comments. On a lexing
// failure the tokens read so far are returned together with the error.
func Lex(src string) ([]Token, error) {
	lex, err := ruspyLexer.Lex("", strings.NewReader(src))
	if err != nil {
		return nil, newSyntaxError(err)
	}
	var tokens []Token
	for {
		tok, err := lex.Next()
		if err != nil {
			return tokens, newSyntaxError(err)
		}
		if tok.EOF() {
			return tokens, nil
		}
		kind := tokenKinds[tok.Type]
		if kind == "Whitespace" || kind == "Comment" {
			continue
		}
		tokens = append(tokens, Token{
			Kind: kind,
			Text: tok.Value,
			Pos:  Position{Offset: tok.Pos.Offset, Line: tok.Pos.Line, Column: tok.Pos.Column},
		})
	}
}
