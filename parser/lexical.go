package parser

import (
	"strings"

	"github.com/ledgerfmt/journal/ast"
)

// L1: whitespace, line endings, and the line-number query.

// whitespace consumes zero or more horizontal whitespace characters and
// reports whether any were consumed. It never fails; downstream amount
// parsing uses the returned tag to pick between a symbol glued directly
// to its quantity and one separated by a space.
func whitespace(s state) (bool, state, error) {
	cur := s
	consumed := false
	for {
		r, width, ok := cur.peekRune()
		if !ok || !isHorizontalWS(r) {
			break
		}
		cur = cur.advance(r, width)
		consumed = true
	}
	return consumed, cur, nil
}

// mandatoryWhitespace requires at least one horizontal whitespace
// character, failing without consuming when none is present.
func mandatoryWhitespace(s state) (struct{}, state, error) {
	hadWS, next, _ := whitespace(s)
	if !hadWS {
		return struct{}{}, s, newError(s, "whitespace")
	}
	return struct{}{}, next, nil
}

// lineEnding accepts "\n" or "\r\n", never a bare "\r". A lone "\r" fails
// without consuming, so an enclosing expect() reports it as "expected
// line ending" rather than silently swallowing part of it.
func lineEnding(s state) (string, state, error) {
	if r, width, ok := s.peekRune(); ok && isCarriageReturn(r) {
		afterCR := s.advance(r, width)
		if r2, width2, ok2 := afterCR.peekRune(); ok2 && isLineFeed(r2) {
			return "\r\n", afterCR.advance(r2, width2), nil
		}
		return "", s, newError(s, "line ending")
	}
	if r, width, ok := s.peekRune(); ok && isLineFeed(r) {
		return "\n", s.advance(r, width), nil
	}
	return "", s, newError(s, "line ending")
}

// startsLineEnding reports whether the cursor sits at "\n" or "\r", used
// to detect a blank line without committing to consuming it.
func startsLineEnding(s state) bool {
	r, _, ok := s.peekRune()
	return ok && isNewline(r)
}

// lineNumber is a side-effect-free query of the cursor's current
// 1-indexed line, read at the start of each top-level construct rather
// than computed after the fact.
func lineNumber(s state) int { return s.line }

// L2: date, status, code, payee, comment.

func digitRun(n int) Parser[string] {
	digit := satisfy("digit", isDigit)
	return func(s state) (string, state, error) {
		runes, next, err := count(n, digit)(s)
		if err != nil {
			return "", next, err
		}
		var b strings.Builder
		for _, r := range runes {
			b.WriteRune(r)
		}
		return b.String(), next, nil
	}
}

func year(s state) (int, state, error) {
	text, next, err := digitRun(4)(s)
	if err != nil {
		return 0, next, err
	}
	return atoiDigits(text), next, nil
}

func month(s state) (int, state, error) {
	text, next, err := expect(digitRun(2), "month")(s)
	if err != nil {
		return 0, next, err
	}
	return atoiDigits(text), next, nil
}

func day(s state) (int, state, error) {
	text, next, err := expect(digitRun(2), "day")(s)
	if err != nil {
		return 0, next, err
	}
	return atoiDigits(text), next, nil
}

func atoiDigits(text string) int {
	n := 0
	for _, r := range text {
		n = n*10 + int(r-'0')
	}
	return n
}

var dateSeparator = satisfy("date separator ('/' or '-')", isDateSeparator)

// date parses year (sep) month (sep) day. The two separators may differ
// (e.g. "2015/02-14" parses); calendar validity is never checked. Fails
// without consuming if the first digit of year is absent, so an
// enclosing loop over repeated transactions can tell "no more input"
// from "malformed date".
func date(s state) (ast.Date, state, error) {
	y, s1, err := year(s)
	if err != nil {
		return ast.Date{}, s1, err
	}
	_, s2, err := expect(dateSeparator, "date separator")(s1)
	if err != nil {
		return ast.Date{}, s2, err
	}
	mo, s3, err := month(s2)
	if err != nil {
		return ast.Date{}, s3, err
	}
	_, s4, err := expect(dateSeparator, "date separator")(s3)
	if err != nil {
		return ast.Date{}, s4, err
	}
	d, s5, err := day(s4)
	if err != nil {
		return ast.Date{}, s5, err
	}
	return ast.Date{Year: y, Month: mo, Day: d}, s5, nil
}

// transactionStatus consumes one of '*' (cleared) or '!' (uncleared).
func transactionStatus(s state) (ast.Status, state, error) {
	r, next, err := satisfy("status flag ('*' or '!')", isStatusFlag)(s)
	if err != nil {
		return 0, next, err
	}
	if r == '*' {
		return ast.Cleared, next, nil
	}
	return ast.Uncleared, next, nil
}

// code parses '(' code_char* ')', returning the enclosed text (possibly
// empty). The closing ')' is mandatory: once '(' is seen, failing to
// find it is a hard error.
func code(s state) (string, state, error) {
	_, s1, err := satisfy("'('", isOpenParen)(s)
	if err != nil {
		return "", s1, err
	}
	runes, s2, _ := many(satisfy("code character", isCodeChar))(s1)
	_, s3, err := expect(satisfy("')'", isCloseParen), "')'")(s2)
	if err != nil {
		return "", s3, err
	}
	return runesToString(runes), s3, nil
}

// payee requires at least one payee_char, consuming greedily up to (but
// not including) ';' or a newline. Trailing spaces before a comment are
// part of the payee and are never trimmed.
func payee(s state) (string, state, error) {
	runes, next, err := expect(many1(satisfy("payee", isPayeeChar)), "payee")(s)
	if err != nil {
		return "", next, err
	}
	return runesToString(runes), next, nil
}

// comment consumes a leading ';' then zero or more comment_char, omitting
// the ';' itself and preserving any leading space that followed it.
func comment(s state) (string, state, error) {
	_, s1, err := satisfy("';'", isSemicolon)(s)
	if err != nil {
		return "", s1, err
	}
	runes, s2, _ := many(satisfy("comment character", isCommentChar))(s1)
	return runesToString(runes), s2, nil
}

func runesToString(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		b.WriteRune(r)
	}
	return b.String()
}

// L2: account.

// subAccount is one or more alphanumeric characters.
func subAccount(s state) (string, state, error) {
	runes, next, err := many1(satisfy("account segment", isAlnum))(s)
	if err != nil {
		return "", next, err
	}
	return runesToString(runes), next, nil
}

// account is subAccount separated by single ':' characters; at least one
// sub-account is required.
func account(s state) (ast.Account, state, error) {
	segs, next, err := sepBy1(subAccount, satisfy("':'", isColon))(s)
	if err != nil {
		return nil, next, err
	}
	return ast.Account(segs), next, nil
}

// sepBy1 requires at least one occurrence of p, separated by sep.
func sepBy1[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(s state) ([]T, state, error) {
		first, next, err := p(s)
		if err != nil {
			return nil, next, err
		}
		out := []T{first}
		cur := next
		for {
			_, afterSep, err := sep(cur)
			if err != nil {
				if afterSep.pos != cur.pos {
					return out, afterSep, err
				}
				return out, cur, nil
			}
			v, afterItem, err := expect(p, "account segment")(afterSep)
			if err != nil {
				return out, afterItem, err
			}
			out = append(out, v)
			cur = afterItem
		}
	}
}

// L2: quantity and symbols.

// quantity parses an optional '-', a mandatory leading digit, and a
// greedy run of digits/','/'.'. The captured text is normalized by
// removing ',' and handed to ast.NewQuantity, which rejects malformed
// numeric text (e.g. two '.' characters) instead of silently truncating
// it.
func quantity(s state) (ast.Quantity, state, error) {
	neg, s1, _ := optional(satisfy("'-'", isDash))(s)
	firstDigit, s2, err := satisfy("digit", isDigit)(s1)
	if err != nil {
		return ast.Quantity{}, s2, err
	}
	rest, s3, _ := many(satisfy("digit, ',' or '.'", func(r rune) bool {
		return isDigit(r) || r == ',' || r == '.'
	}))(s2)

	var b strings.Builder
	if _, ok := neg.Get(); ok {
		b.WriteRune('-')
	}
	b.WriteRune(firstDigit)
	for _, r := range rest {
		if r == ',' {
			continue
		}
		b.WriteRune(r)
	}

	q, err := ast.NewQuantity(b.String())
	if err != nil {
		// The digit/comma/dot run was consumed already, so this failure
		// must be hard: it is a malformed number, not merely "not a
		// quantity here", and must not be swallowed by an enclosing
		// optional() as if nothing had matched.
		return ast.Quantity{}, s3, &ParseError{Pos: s.position(), Expected: []string{"valid decimal quantity"}, Found: err.Error()}
	}
	return q, s3, nil
}

// quotedSymbol requires '"', at least one quoted_symbol_char, then '"'.
func quotedSymbol(s state) (ast.Symbol, state, error) {
	_, s1, err := satisfy("'\"'", isQuote)(s)
	if err != nil {
		return ast.Symbol{}, s1, err
	}
	runes, s2, err := expect(many1(satisfy("quoted symbol character", isQuotedSymbolChar)), "quoted symbol")(s1)
	if err != nil {
		return ast.Symbol{}, s2, err
	}
	_, s3, err := expect(satisfy("'\"'", isQuote), "closing '\"'")(s2)
	if err != nil {
		return ast.Symbol{}, s3, err
	}
	return ast.Symbol{Value: runesToString(runes), Quoted: true}, s3, nil
}

// unquotedSymbol requires at least one character drawn from the
// complement set that excludes digits and delimiter punctuation.
func unquotedSymbol(s state) (ast.Symbol, state, error) {
	runes, next, err := many1(satisfy("symbol", isUnquotedSymbolChar))(s)
	if err != nil {
		return ast.Symbol{}, next, err
	}
	return ast.Symbol{Value: runesToString(runes), Quoted: false}, next, nil
}

// symbol tries quotedSymbol first; on failure (no leading '"') it falls
// back to unquotedSymbol.
func symbol(s state) (ast.Symbol, state, error) {
	return either(quotedSymbol, unquotedSymbol)(s)
}
