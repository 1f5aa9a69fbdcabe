// Package ast declares the types produced by parsing a ledger journal:
// dated transactions with indented postings to hierarchical accounts,
// and commodity price observations. Transaction headers, postings and
// price entries carry the 1-based line number on which they start; the
// other nodes carry no position. Position locates parse errors.
package ast

import "fmt"

// Position identifies a location in the source text.
type Position struct {
	Filename string
	Offset   int // byte offset
	Line     int // 1-indexed
	Column   int // 1-indexed
}

// String renders the position the way a compiler diagnostic would.
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
