package parser

import "github.com/ledgerfmt/journal/ast"

// Parser is the uniform shape of every combinator in this grammar: given
// a cursor, produce a value and the cursor past it, or report failure.
//
// The backtracking contract is carried entirely by the returned state,
// with no separate "consumed" flag: on failure (err != nil),
// next.pos == s.pos means the parser failed *without* consuming input
// (an enclosing alternation may try another branch); next.pos > s.pos
// means it failed *after* consuming, which is a hard failure that must
// propagate to the top-level Parse call. Every primitive in this file
// preserves that invariant, so callers can always distinguish the two
// cases with a plain position comparison instead of bookkeeping a flag
// themselves.
type Parser[T any] func(s state) (value T, next state, err error)

// satisfy succeeds on a single rune matching pred, failing without
// consuming when it does not. label names what was expected in the
// returned error; an enclosing expect replaces it with its own label.
func satisfy(label string, pred func(rune) bool) Parser[rune] {
	return func(s state) (rune, state, error) {
		r, width, ok := s.peekRune()
		if !ok || !pred(r) {
			return 0, s, newError(s, label)
		}
		return r, s.advance(r, width), nil
	}
}

// char matches one literal rune.
func char(c rune) Parser[rune] {
	return satisfy(string(c), func(r rune) bool { return r == c })
}

// try fully backtracks p: whatever it consumed before failing is rolled
// back and the failure is reported as "did not consume", so an enclosing
// either can attempt the next alternative. This is the explicit
// backtracking marker needed around any atom placed inside either/option
// that may commit past its first token (in this grammar: the two amount
// variants, the posting amount as a whole, and the whitespace-then-code
// and whitespace-then-comment probes).
func try[T any](p Parser[T]) Parser[T] {
	return func(s state) (T, state, error) {
		v, next, err := p(s)
		if err != nil {
			var zero T
			return zero, s, err
		}
		return v, next, nil
	}
}

// either attempts p1, falling back to p2 only if p1 failed without
// consuming input. A p1 that consumed before failing is a hard error and
// is propagated as-is, never overridden by p2.
func either[T any](p1, p2 Parser[T]) Parser[T] {
	return func(s state) (T, state, error) {
		v, next, err := p1(s)
		if err == nil {
			return v, next, nil
		}
		if next.pos != s.pos {
			return v, next, err
		}
		return p2(s)
	}
}

// optional turns a parser that may be legitimately absent into one that
// always succeeds, yielding ast.None when p failed without consuming.
// A p that failed after consuming is a hard error and propagates: every
// optional construct in this grammar is structured so a genuine attempt
// (one that gets past a distinguishing first token) never partially
// fails, so this case should not arise for a well-formed grammar rule.
func optional[T any](p Parser[T]) Parser[ast.Option[T]] {
	return func(s state) (ast.Option[T], state, error) {
		v, next, err := p(s)
		if err == nil {
			return ast.Some(v), next, nil
		}
		if next.pos != s.pos {
			var zero ast.Option[T]
			return zero, next, err
		}
		return ast.None[T](), s, nil
	}
}

// expect converts a soft failure (no input consumed) into a hard
// "expected X" error at the current position. Used to mark grammar
// positions where a construct is mandatory, not optional, so a failure
// there must abort the parse rather than silently reporting "no match"
// to an enclosing alternation that has nothing else to try.
func expect[T any](p Parser[T], expected string) Parser[T] {
	return func(s state) (T, state, error) {
		v, next, err := p(s)
		if err == nil {
			return v, next, nil
		}
		if next.pos != s.pos {
			return v, next, err
		}
		var zero T
		return zero, s, newError(s, expected)
	}
}

// many matches p zero or more times, never failing itself. If p fails
// after consuming mid-repetition that is a hard error and propagates.
func many[T any](p Parser[T]) Parser[[]T] {
	return func(s state) ([]T, state, error) {
		var out []T
		cur := s
		for {
			v, next, err := p(cur)
			if err != nil {
				if next.pos != cur.pos {
					return out, next, err
				}
				return out, cur, nil
			}
			if next.pos == cur.pos {
				// A zero-width success would loop forever; no leaf in this
				// grammar does this, but a reusable combinator must guard it.
				return out, next, nil
			}
			out = append(out, v)
			cur = next
		}
	}
}

// many1 requires at least one match of p.
func many1[T any](p Parser[T]) Parser[[]T] {
	return func(s state) ([]T, state, error) {
		first, next, err := p(s)
		if err != nil {
			return nil, next, err
		}
		rest, final, err := many(p)(next)
		if err != nil {
			return nil, final, err
		}
		return append([]T{first}, rest...), final, nil
	}
}

// count matches p exactly n times.
func count[T any](n int, p Parser[T]) Parser[[]T] {
	return func(s state) ([]T, state, error) {
		out := make([]T, 0, n)
		cur := s
		for i := 0; i < n; i++ {
			v, next, err := p(cur)
			if err != nil {
				return nil, next, err
			}
			out = append(out, v)
			cur = next
		}
		return out, cur, nil
	}
}

// mapParser transforms a successful result.
func mapParser[A, B any](p Parser[A], f func(A) B) Parser[B] {
	return func(s state) (B, state, error) {
		v, next, err := p(s)
		if err != nil {
			var zero B
			return zero, next, err
		}
		return f(v), next, nil
	}
}

// seq2 runs two parsers in sequence and combines their results.
func seq2[A, B, R any](pa Parser[A], pb Parser[B], combine func(A, B) R) Parser[R] {
	return func(s state) (R, state, error) {
		a, s1, err := pa(s)
		if err != nil {
			var zero R
			return zero, s1, err
		}
		b, s2, err := pb(s1)
		if err != nil {
			var zero R
			return zero, s2, err
		}
		return combine(a, b), s2, nil
	}
}

// sepBy matches zero or more occurrences of p separated by sep.
func sepBy[T, S any](p Parser[T], sep Parser[S]) Parser[[]T] {
	return func(s state) ([]T, state, error) {
		first, next, err := p(s)
		if err != nil {
			if next.pos != s.pos {
				return nil, next, err
			}
			return nil, s, nil
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
			v, afterItem, err := p(afterSep)
			if err != nil {
				if afterItem.pos != afterSep.pos {
					return out, afterItem, err
				}
				// The separator matched but no item followed it: the
				// separator itself was not consumed as part of the list.
				return out, cur, nil
			}
			out = append(out, v)
			cur = afterItem
		}
	}
}
