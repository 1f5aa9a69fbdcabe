package parser

import (
	"unicode/utf8"

	"github.com/ledgerfmt/journal/ast"
)

// state is the backtracking cursor over the input text: an immutable
// value that every combinator threads through by copy. Two state values
// compare equal in position iff no character was consumed between them,
// which is exactly the distinction this grammar needs between "failed
// without consuming" and "failed after consuming", so no separate bool
// needs to be threaded through every parser's result.
//
// The field layout (source/filename/pos/line/column, byte-offset
// tracking) mirrors a conventional single-pass lexer cursor, but here it
// is a plain value rather than a mutable pointer, so it can be rewound
// for arbitrary-length backtracking instead of only moving forward.
type state struct {
	src      []byte
	filename string
	pos      int // byte offset
	line     int // 1-indexed
	column   int // 1-indexed
}

// newState creates a cursor positioned at the start of source.
func newState(filename string, src []byte) state {
	return state{src: src, filename: filename, pos: 0, line: 1, column: 1}
}

// position snapshots the cursor's current location for attaching to an
// AST node or a ParseError.
func (s state) position() ast.Position {
	return ast.Position{Filename: s.filename, Offset: s.pos, Line: s.line, Column: s.column}
}

// atEnd reports whether the cursor has reached the end of input.
func (s state) atEnd() bool {
	return s.pos >= len(s.src)
}

// peekRune returns the rune at the cursor without advancing, and its
// width in bytes. ok is false at end of input.
func (s state) peekRune() (rune, int, bool) {
	if s.atEnd() {
		return 0, 0, false
	}
	r, width := utf8.DecodeRune(s.src[s.pos:])
	return r, width, true
}

// peekByte returns the raw byte at the cursor, or 0 and false at end of
// input. Nothing in the grammar calls it; every parser reads runes.
func (s state) peekByte() (byte, bool) {
	if s.atEnd() {
		return 0, false
	}
	return s.src[s.pos], true
}

// advance returns a new cursor past the given rune of the given byte
// width, updating line/column in lockstep with the input cursor.
func (s state) advance(r rune, width int) state {
	next := s
	next.pos += width
	if isLineFeed(r) {
		next.line++
		next.column = 1
	} else {
		next.column++
	}
	return next
}
