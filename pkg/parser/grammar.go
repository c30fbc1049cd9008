package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Rules are tried in order; the first match at a position wins, so Float
// must precede Int, Keyword must precede Name and Comment must precede the
// `/` operator. InvalidNumber sits between Float and Int and swallows digit
// runs glued to letters (`12A`, `3pi`) or ending in a separator (`7_`); no
// production accepts it, so such text is always a syntax error.
var ruspyLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `//[^\n]*`},
	{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
	{Name: "Float", Pattern: `[0-9][0-9_]*(\.[0-9][0-9_]*([eE][+-]?[0-9]+)?|[eE][+-]?[0-9]+)`},
	{Name: "InvalidNumber", Pattern: `[0-9][0-9_]*([A-Za-z][A-Za-z0-9_]*|_\b)`},
	{Name: "Int", Pattern: `[0-9]+(_+[0-9]+)*`},
	{Name: "String", Pattern: `"(\\.|[^"\\])*"`},
	{Name: "Keyword", Pattern: `(fn|let|if|else|while|for|in|and|or|not)\b`},
	{Name: "Name", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Operator", Pattern: `\*\*|==|!=|<=|>=|<<|>>|->|[-+*/%<>=|&^]`},
	{Name: "Punct", Pattern: `[(){}\[\],;:]`},
})

var (
	moduleParser = participle.MustBuild[moduleFile](
		participle.Lexer(ruspyLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(4),
	)
	sequenceParser = participle.MustBuild[sequence](
		participle.Lexer(ruspyLexer),
		participle.Elide("Whitespace", "Comment"),
		participle.UseLookahead(4),
	)
)

//-----------------------------------------------------------------------------
// Roots
//-----------------------------------------------------------------------------

type moduleFile struct {
	Items []*moduleItem `@@*`
}

type moduleItem struct {
	Pos lexer.Position

	Fn    *fnDecl  `  @@`
	Let   *letStmt `| @@`
	Empty bool     `| @";"`
}

type sequence struct {
	Statements []*statement `@@*`
}

//-----------------------------------------------------------------------------
// Statements
//-----------------------------------------------------------------------------

// statement records whether an expression or let statement was closed by
// `;`; lowering rejects an unterminated one that is not the last in its
// sequence.
type statement struct {
	Pos lexer.Position

	Fn         *fnDecl    `  @@`
	While      *whileLoop `| @@`
	For        *forLoop   `| @@`
	Let        *letStmt   `| @@`
	If         *ifExpr    `| @@`
	Block      *block     `| @@`
	Empty      bool       `| @";"`
	Expr       *expr      `| @@`
	Terminated bool       `  @";"?`
}

type fnDecl struct {
	Name   string   `"fn" @Name`
	Params []*param `"(" ( @@ ( "," @@ )* ","? )? ")"`
	Return string   `( "->" @Name )?`
	Body   *block   `@@`
}

type param struct {
	Name string `@Name`
	Type string `( ":" @Name )?`
}

type whileLoop struct {
	Condition *expr  `"while" @@`
	Body      *block `@@`
}

type forLoop struct {
	Variable string `"for" @Name "in"`
	Iterable *expr  `@@`
	Body     *block `@@`
}

type letStmt struct {
	Name       string `"let" @Name`
	Type       string `( ":" @Name )?`
	Value      *expr  `"=" @@`
	Terminated bool   `@";"?`
}

//-----------------------------------------------------------------------------
// Expressions, lowest precedence first
//-----------------------------------------------------------------------------

type expr struct {
	Lambda *lambda     `  @@`
	Assign *assignment `| @@`
	Or     *orExpr     `| @@`
}

type lambda struct {
	Params []*param `"|" ( @@ ( "," @@ )* )? "|"`
	Body   *expr    `@@`
}

type assignment struct {
	Target string `@Name "="`
	Value  *expr  `@@`
}

type orExpr struct {
	Left *andExpr   `@@`
	Rest []*andExpr `( "or" @@ )*`
}

type andExpr struct {
	Left *notExpr   `@@`
	Rest []*notExpr `( "and" @@ )*`
}

type notExpr struct {
	Not        *notExpr    `  "not" @@`
	Comparison *comparison `| @@`
}

type comparison struct {
	Left *bitOr   `@@`
	Rest []*cmpOp `@@*`
}

type cmpOp struct {
	Op    string `@( "==" | "!=" | "<=" | ">=" | "<" | ">" )`
	Right *bitOr `@@`
}

type bitOr struct {
	Left *bitXor   `@@`
	Rest []*bitXor `( "|" @@ )*`
}

type bitXor struct {
	Left *bitAnd   `@@`
	Rest []*bitAnd `( "^" @@ )*`
}

type bitAnd struct {
	Left *shift   `@@`
	Rest []*shift `( "&" @@ )*`
}

type shift struct {
	Left *additive  `@@`
	Rest []*shiftOp `@@*`
}

type shiftOp struct {
	Op    string    `@( "<<" | ">>" )`
	Right *additive `@@`
}

type additive struct {
	Left *multiplicative `@@`
	Rest []*additiveOp   `@@*`
}

type additiveOp struct {
	Op    string          `@( "+" | "-" )`
	Right *multiplicative `@@`
}

type multiplicative struct {
	Left *unary              `@@`
	Rest []*multiplicativeOp `@@*`
}

type multiplicativeOp struct {
	Op    string `@( "*" | "/" | "%" )`
	Right *unary `@@`
}

type unary struct {
	Negation *negation `  @@`
	Power    *power    `| @@`
}

type negation struct {
	Op      string `@( "-" | "+" )`
	Operand *unary `@@`
}

// power is right associative and its exponent may carry a sign: 2 ** -1.
type power struct {
	Base     *postfix `@@`
	Exponent *unary   `( "**" @@ )?`
}

type postfix struct {
	Primary  *primary  `@@`
	Suffixes []*suffix `@@*`
}

type suffix struct {
	Call  *callSuffix `  @@`
	Index *expr       `| "[" @@ "]"`
}

type callSuffix struct {
	Open bool    `@"("`
	Args []*expr `( @@ ( "," @@ )* ","? )? ")"`
}

type primary struct {
	Pos lexer.Position

	Float  *string  `  @Float`
	Int    *string  `| @Int`
	String *string  `| @String`
	List   *listLit `| @@`
	If     *ifExpr  `| @@`
	Block  *block   `| @@`
	Paren  *expr    `| "(" @@ ")"`
	Name   *string  `| @Name`
}

type listLit struct {
	Open     bool    `@"["`
	Elements []*expr `( @@ ( "," @@ )* ","? )? "]"`
}

type ifExpr struct {
	Condition *expr       `"if" @@`
	Then      *block      `@@`
	Else      *elseClause `( "else" @@ )?`
}

type elseClause struct {
	If    *ifExpr `  @@`
	Block *block  `| @@`
}

type block struct {
	Open       bool         `@"{"`
	Statements []*statement `@@* "}"`
}
