package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerfmt/journal/ast"
)

func TestPriceEntryParsesFullLine(t *testing.T) {
	input := `P 2015/02/14 "MUTF514" 4.256 USD`
	s := newState("test", []byte(input))
	p, next, err := priceEntry(s)
	assert.NoError(t, err)
	assert.Equal(t, ast.Date{Year: 2015, Month: 2, Day: 14}, p.Date)
	assert.Equal(t, ast.Symbol{Value: "MUTF514", Quoted: true}, p.Symbol)
	assert.Equal(t, "4.256", p.Amount.Value.Qty.String())
	assert.Equal(t, "USD", p.Amount.Value.Symbol.Value)
	assert.Equal(t, len(input), next.pos)
}

func TestPriceEntryRequiresLeadingP(t *testing.T) {
	s := newState("test", []byte("Q 2015/02/14 USD 1.00"))
	_, next, err := priceEntry(s)
	assert.Error(t, err)
	assert.Equal(t, s.pos, next.pos)
}

func TestPriceEntryLineNumberSnapshot(t *testing.T) {
	s := newState("test", []byte("P 2015/02/14 USD 1.00"))
	s.line = 3
	p, _, err := priceEntry(s)
	assert.NoError(t, err)
	assert.Equal(t, 3, p.LineNumber)
}

// A price entry's amount is syntactically permitted to be absent, just
// like a posting's: the grammar accepts it as the infer sentinel and
// leaves rejecting a priced-but-unvalued observation to a downstream
// validator. The whitespace that would have preceded the amount is
// still mandatory; only the amount itself may be missing.
func TestPriceEntryAcceptsMissingAmountAsInfer(t *testing.T) {
	s := newState("test", []byte("P 2015/02/14 USD "))
	p, next, err := priceEntry(s)
	assert.NoError(t, err)
	assert.True(t, p.Amount.IsInfer())
	assert.Equal(t, len(s.src), next.pos)
}

func TestPriceEntryRequiresWhitespaceAfterSymbol(t *testing.T) {
	s := newState("test", []byte("P 2015/02/14 USD"))
	_, next, err := priceEntry(s)
	assert.Error(t, err)
	assert.True(t, next.pos > s.pos)
}
