package parser

import (
	"fmt"
	"strings"

	"github.com/ledgerfmt/journal/ast"
)

// ParseError is the one error kind this parser produces: a source
// position, the set of things that would have been accepted at that
// position, and what was actually found there ("EOF" at end of input).
// Calendar, balancing, and commodity errors are downstream concerns and
// are never raised here.
type ParseError struct {
	Pos      ast.Position
	Expected []string
	Found    string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: expected %s, found %s", e.Pos, strings.Join(e.Expected, " or "), e.Found)
}

// describeFound renders the rune at the current position the way a
// diagnostic should: the literal character, or "EOF" at end of input.
func describeFound(s state) string {
	r, _, ok := s.peekRune()
	if !ok {
		return "EOF"
	}
	return fmt.Sprintf("%q", r)
}

// newError builds a ParseError positioned at s, reporting what was
// expected there and what was actually found.
func newError(s state, expected ...string) *ParseError {
	return &ParseError{
		Pos:      s.position(),
		Expected: expected,
		Found:    describeFound(s),
	}
}
