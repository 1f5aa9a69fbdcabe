// Package parser turns UTF-8 journal text into a position-annotated AST
// without performing any semantic validation: no balancing, no account
// or commodity lookups, no file I/O. It is organized as a layered,
// backtracking combinator stack (character predicates, then tokens,
// then lexical atoms, amounts, transaction headers, postings, and
// finally whole transactions and price entries) so each layer can be
// tested and reasoned about independently of the ones above it.
package parser

import "github.com/ledgerfmt/journal/ast"

// blankLine consumes a line containing only horizontal whitespace,
// terminated by a line ending or EOF. Blank lines are tolerated between
// transactions and at the top or bottom of a file; they carry no
// meaning and are discarded rather than represented in the AST.
func blankLine(s state) (struct{}, state, error) {
	_, s1, _ := whitespace(s)
	if s1.atEnd() {
		if s1.pos == s.pos {
			return struct{}{}, s, newError(s, "blank line")
		}
		return struct{}{}, s1, nil
	}
	_, s2, err := lineEnding(s1)
	if err != nil {
		return struct{}{}, s, err
	}
	return struct{}{}, s2, nil
}

// ParseJournal parses the full text of a journal file into its ordered
// transactions. filename is attached to every position recorded in the
// result and in any returned *ParseError; it may be empty for in-memory
// input with no backing file.
func ParseJournal(text []byte, filename string) ([]*ast.Transaction, error) {
	s := newState(filename, text)

	s, err := skipBlankLines(s)
	if err != nil {
		return nil, err
	}

	var txns []*ast.Transaction
	for !s.atEnd() {
		txn, next, err := transaction(s)
		if err != nil {
			return nil, err
		}
		txns = append(txns, txn)
		s = next

		s, err = skipBlankLines(s)
		if err != nil {
			return nil, err
		}
	}
	return txns, nil
}

// skipBlankLines consumes zero or more blank lines, stopping as soon as
// one fails to match (the start of a real construct, or genuine EOF).
func skipBlankLines(s state) (state, error) {
	cur := s
	for {
		_, next, err := blankLine(cur)
		if err != nil {
			if next.pos != cur.pos {
				return next, err
			}
			return cur, nil
		}
		if next.pos == cur.pos {
			return cur, nil
		}
		cur = next
	}
}

// ParsePriceDB parses a commodity price database: a sequence of price
// entries, one per line, separated by blank lines exactly as tolerated
// between transactions in ParseJournal.
func ParsePriceDB(text []byte, filename string) ([]*ast.PriceEntry, error) {
	s := newState(filename, text)

	s, err := skipBlankLines(s)
	if err != nil {
		return nil, err
	}

	var entries []*ast.PriceEntry
	for !s.atEnd() {
		entry, s1, err := priceEntry(s)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)

		s2, err := endOfLine(s1)
		if err != nil {
			return nil, err
		}

		s, err = skipBlankLines(s2)
		if err != nil {
			return nil, err
		}
	}
	return entries, nil
}
