package parser

import (
	"errors"
	"fmt"

	"github.com/alecthomas/participle/v2"
)

// SyntaxError reports source text that the grammar rejects.
type SyntaxError struct {
	Message string
	Line    int
	Column  int
	// AtEOF is set when the input ended before the grammar was satisfied.
	AtEOF bool
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("syntax error: %s", e.Message)
	}
	return fmt.Sprintf("syntax error at %d:%d: %s", e.Line, e.Column, e.Message)
}

// IsIncomplete reports whether err is a syntax error caused by input that
// stopped early, such as an unclosed block.
func IsIncomplete(err error) bool {
	var serr *SyntaxError
	return errors.As(err, &serr) && serr.AtEOF
}

func newSyntaxError(err error) *SyntaxError {
	var perr participle.Error
	if errors.As(err, &perr) {
		pos := perr.Position()
		out := &SyntaxError{Message: perr.Message(), Line: pos.Line, Column: pos.Column}
		var unexpected *participle.UnexpectedTokenError
		if errors.As(err, &unexpected) {
			out.AtEOF = unexpected.Unexpected.EOF()
		}
		return out
	}
	return &SyntaxError{Message: err.Error()}
}
