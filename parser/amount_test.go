package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerfmt/journal/ast"
)

func TestAmountSymbolLeftNoSpace(t *testing.T) {
	s := newState("test", []byte("$13,245.00"))
	a, next, err := amount(s)
	assert.NoError(t, err)
	assert.Equal(t, "$", a.Symbol.Value)
	assert.Equal(t, "13245.00", a.Qty.String())
	assert.Equal(t, ast.SymbolLeftNoSpace, a.Format)
	assert.Equal(t, len(s.src), next.pos)
}

func TestAmountSymbolLeftWithSpace(t *testing.T) {
	s := newState("test", []byte("$ 45.00"))
	a, _, err := amount(s)
	assert.NoError(t, err)
	assert.Equal(t, ast.SymbolLeftWithSpace, a.Format)
}

func TestAmountQuantityLeftWithQuotedSymbol(t *testing.T) {
	s := newState("test", []byte(`4.256 "MUTF514"`))
	a, next, err := amount(s)
	assert.NoError(t, err)
	assert.Equal(t, "4.256", a.Qty.String())
	assert.Equal(t, ast.Symbol{Value: "MUTF514", Quoted: true}, a.Symbol)
	assert.Equal(t, ast.SymbolRightWithSpace, a.Format)
	assert.Equal(t, len(s.src), next.pos)
}

func TestAmountQuantityLeftNoSpace(t *testing.T) {
	s := newState("test", []byte("45.00USD"))
	a, _, err := amount(s)
	assert.NoError(t, err)
	assert.Equal(t, ast.SymbolRightNoSpace, a.Format)
	assert.Equal(t, "USD", a.Symbol.Value)
}

func TestAmountFailsWithoutConsumingWhenNeitherVariantMatches(t *testing.T) {
	s := newState("test", []byte(";comment"))
	_, next, err := amount(s)
	assert.Error(t, err)
	assert.Equal(t, s.pos, next.pos)
}

func TestAmountOrInferOnEmptyInputWithoutConsuming(t *testing.T) {
	s := newState("test", []byte(""))
	pa, next, err := amountOrInfer(s)
	assert.NoError(t, err)
	assert.True(t, pa.IsInfer())
	assert.Equal(t, s.pos, next.pos)
}

func TestPostingAmountWrapsAsResolved(t *testing.T) {
	s := newState("test", []byte("$5.00"))
	pa, _, err := postingAmount(s)
	assert.NoError(t, err)
	assert.False(t, pa.IsInfer())
}
