package parser

import "github.com/ledgerfmt/journal/ast"

// amount parses the two layouts a commodity amount may take, a symbol
// before its quantity ("$13,245.00") or after it ("4.256 \"MUTF514\""),
// picking whichever matches at this position. A quantity begins with '-'
// or a digit and a symbol never does, but either variant can fail after
// consuming its first token (a symbol with no quantity after it, a
// quantity with no symbol), so both are wrapped in try so a partial match
// of one never blocks the other from being attempted.
func amount(s state) (ast.Amount, state, error) {
	return either(try(symbolLeftAmount), try(quantityLeftAmount))(s)
}

// symbolLeftAmount parses symbol [space] quantity.
func symbolLeftAmount(s state) (ast.Amount, state, error) {
	sym, s1, err := symbol(s)
	if err != nil {
		return ast.Amount{}, s1, err
	}
	hadSpace, s2, _ := whitespace(s1)
	q, s3, err := quantity(s2)
	if err != nil {
		return ast.Amount{}, s3, err
	}
	format := ast.SymbolLeftNoSpace
	if hadSpace {
		format = ast.SymbolLeftWithSpace
	}
	return ast.Amount{Qty: q, Symbol: sym, Format: format}, s3, nil
}

// quantityLeftAmount parses quantity [space] symbol.
func quantityLeftAmount(s state) (ast.Amount, state, error) {
	q, s1, err := quantity(s)
	if err != nil {
		return ast.Amount{}, s1, err
	}
	hadSpace, s2, _ := whitespace(s1)
	sym, s3, err := symbol(s2)
	if err != nil {
		return ast.Amount{}, s3, err
	}
	format := ast.SymbolRightNoSpace
	if hadSpace {
		format = ast.SymbolRightWithSpace
	}
	return ast.Amount{Qty: q, Symbol: sym, Format: format}, s3, nil
}

// postingAmount parses an amount and wraps it as resolved. Absence of an
// amount (the infer case) is handled by the caller, amountOrInfer, which
// treats any failure here as "no amount".
func postingAmount(s state) (ast.PostingAmount, state, error) {
	a, next, err := amount(s)
	if err != nil {
		return ast.PostingAmount{}, next, err
	}
	return ast.Resolved(a), next, nil
}

// amountOrInfer is the grammar's full `amount` rule: a resolved amount
// when either variant matches, otherwise the infer sentinel without
// consuming input. A malformed quantity (e.g. two decimal points) is
// rolled back with everything else, so the line it sits on still fails
// at the line-ending check that finds the leftover text rather than
// being silently accepted. Used wherever the grammar places `amount` as
// an optional trailing field: a posting's, and a price entry's, whose
// infer reading is semantically nonsensical but grammatically valid
// (rejecting it is a downstream validator's job).
func amountOrInfer(s state) (ast.PostingAmount, state, error) {
	opt, next, err := optional(try(postingAmount))(s)
	if err != nil {
		return ast.PostingAmount{}, next, err
	}
	if v, ok := opt.Get(); ok {
		return v, next, nil
	}
	return ast.Infer(), next, nil
}
