package parser

import "github.com/ledgerfmt/journal/ast"

// postingLine is the result of parsing one line inside a transaction
// block: either a posting, or a free-standing comment line that the
// transaction assembler discards.
type postingLine struct {
	posting       *ast.Posting
	isOnlyComment bool
}

// transactionLine parses one line following a transaction header: an
// indented posting, or a comment line at any indentation including
// none. A line that is neither (unindented non-comment text, a blank
// line, or EOF) fails without consuming anything, which is how the
// enclosing many1 detects that the transaction block has ended (a
// transaction header has no required leading whitespace; a posting
// does).
func transactionLine(s state) (postingLine, state, error) {
	hadIndent, s1, _ := whitespace(s)
	if s1.atEnd() || startsLineEnding(s1) {
		// A blank (possibly indented) line ends the transaction rather
		// than belonging to it; report this as unconsumed so the caller's
		// many1 stops cleanly and the blank line is handled as a
		// separator, not a malformed posting.
		return postingLine{}, s, newError(s, "posting or comment")
	}

	var line postingLine
	var s2 state
	if r, _, ok := s1.peekRune(); ok && isSemicolon(r) {
		_, afterComment, err := comment(s1)
		if err != nil {
			return postingLine{}, afterComment, err
		}
		line = postingLine{isOnlyComment: true}
		s2 = afterComment
	} else {
		if !hadIndent {
			return postingLine{}, s, newError(s, "posting or comment")
		}
		p, afterPosting, err := postingBody(s)(s1)
		if err != nil {
			if afterPosting.pos == s1.pos {
				// The indent is already consumed, so a posting failing at
				// its first character is a malformed line, not the end of
				// the block.
				return postingLine{}, s1, newError(s1, "account")
			}
			return postingLine{}, afterPosting, err
		}
		line = postingLine{posting: p}
		s2 = afterPosting
	}

	_, s2b, _ := whitespace(s2)
	s3, err := endOfLine(s2b)
	if err != nil {
		return postingLine{}, s3, err
	}
	return line, s3, nil
}

// endOfLine requires either a line ending or the end of input; the last
// line of a file need not be newline-terminated.
func endOfLine(s state) (state, error) {
	if s.atEnd() {
		return s, nil
	}
	_, next, err := expect(lineEnding, "line ending")(s)
	if err != nil {
		return next, err
	}
	return next, nil
}

// postingBody parses account [whitespace] amount-or-infer [whitespace
// comment], given the state immediately after the line's mandatory
// leading whitespace has already been consumed (lineStart is used only
// to snapshot the line number the account started on).
func postingBody(lineStart state) Parser[*ast.Posting] {
	return func(s state) (*ast.Posting, state, error) {
		line := lineNumber(lineStart)

		acct, s1, err := account(s)
		if err != nil {
			return nil, s1, err
		}

		// The whitespace between account and amount is optional, so a
		// glued "Assets:Cash$5.00" still reads its amount; when no amount
		// follows at all, amountOrInfer resolves to the infer sentinel
		// without consuming anything past the whitespace.
		_, s2, _ := whitespace(s1)
		amt, s3, err := amountOrInfer(s2)
		if err != nil {
			return nil, s3, err
		}

		commentOpt, s4, err := optional(try(func(s state) (string, state, error) {
			_, sw, _ := whitespace(s)
			return comment(sw)
		}))(s3)
		if err != nil {
			return nil, s4, err
		}

		return &ast.Posting{
			LineNumber: line,
			Account:    acct,
			Amount:     amt,
			Comment:    commentOpt,
		}, s4, nil
	}
}
