package parser

import "github.com/ledgerfmt/journal/ast"

// priceEntry parses one price-db line:
//
//	'P' whitespace date whitespace symbol whitespace amount
func priceEntry(s state) (*ast.PriceEntry, state, error) {
	line := lineNumber(s)

	_, s1, err := satisfy("'P'", isPriceIndicator)(s)
	if err != nil {
		return nil, s1, err
	}

	_, s2, err := expect(mandatoryWhitespace, "whitespace")(s1)
	if err != nil {
		return nil, s2, err
	}

	d, s3, err := expect(date, "date")(s2)
	if err != nil {
		return nil, s3, err
	}

	_, s4, err := expect(mandatoryWhitespace, "whitespace")(s3)
	if err != nil {
		return nil, s4, err
	}

	sym, s5, err := expect(symbol, "symbol")(s4)
	if err != nil {
		return nil, s5, err
	}

	_, s6, err := expect(mandatoryWhitespace, "whitespace")(s5)
	if err != nil {
		return nil, s6, err
	}

	// amount is syntactically optional here too (it resolves to the infer
	// sentinel rather than failing outright), even though an inferred
	// price entry is semantically nonsense; rejecting it is a downstream
	// validator's job, not the parser's (see spec's open question).
	amt, s7, err := amountOrInfer(s6)
	if err != nil {
		return nil, s7, err
	}

	return &ast.PriceEntry{
		LineNumber: line,
		Date:       d,
		Symbol:     sym,
		Amount:     amt,
	}, s7, nil
}
