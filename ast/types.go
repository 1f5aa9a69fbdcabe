package ast

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Option is an explicit presence/absence tag for optional grammar
// constructs (transaction code, trailing comments, ...). The grammar
// never uses a nil pointer or a zero value to mean "absent". A field
// that was not present in the source is represented by an Option whose
// IsPresent reports false, so a present-but-empty value (an empty code "()"
// or an empty comment ";") is never confused with an absent one.
type Option[T any] struct {
	value   T
	present bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] { return Option[T]{value: v, present: true} }

// None is the absent value of T.
func None[T any]() Option[T] { return Option[T]{} }

// Get returns the wrapped value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.value, o.present }

// IsPresent reports whether the optional construct appeared in the source.
func (o Option[T]) IsPresent() bool { return o.present }

// MustGet returns the wrapped value, panicking if absent. Callers should
// only use this after checking IsPresent, or on fields whose presence is
// guaranteed by the caller's own logic.
func (o Option[T]) MustGet() T {
	if !o.present {
		panic("ast: Option.MustGet called on an absent value")
	}
	return o.value
}

// Date is a calendar date exactly as written: four digit year, two digit
// month, two digit day. Calendar correctness (e.g. a day of 30 in
// February) is never validated by the parser; that is a downstream concern.
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// Status is a transaction's cleared/uncleared marker.
type Status int

const (
	// Uncleared is written '!'.
	Uncleared Status = iota
	// Cleared is written '*'.
	Cleared
)

func (s Status) String() string {
	switch s {
	case Cleared:
		return "*"
	case Uncleared:
		return "!"
	default:
		return "?"
	}
}

// Symbol is a commodity/currency unit, e.g. $, USD, AAPL, or a quoted
// symbol like "MUTF514". Quoted is true iff the source began with a `"`.
type Symbol struct {
	Value  string
	Quoted bool
}

func (s Symbol) String() string {
	if s.Quoted {
		return `"` + s.Value + `"`
	}
	return s.Value
}

// AmountFormat records how an amount was laid out in the source, so a
// downstream printer can reproduce it verbatim.
type AmountFormat int

const (
	SymbolLeftNoSpace AmountFormat = iota
	SymbolLeftWithSpace
	SymbolRightNoSpace
	SymbolRightWithSpace
)

func (f AmountFormat) String() string {
	switch f {
	case SymbolLeftNoSpace:
		return "symbol_left_no_space"
	case SymbolLeftWithSpace:
		return "symbol_left_with_space"
	case SymbolRightNoSpace:
		return "symbol_right_no_space"
	case SymbolRightWithSpace:
		return "symbol_right_with_space"
	default:
		return "unknown_format"
	}
}

// Quantity is an exact decimal: the written numeric text with thousands
// separators removed, preserving scale (45.00 and 45 are distinct
// quantities in string form even though numerically equal). Backed by
// shopspring/decimal, which keeps the parsed coefficient and exponent
// rather than converting through a binary float.
type Quantity struct {
	decimal.Decimal
}

// NewQuantity parses normalized digit text (commas already stripped) into
// an exact decimal. Malformed text (more than one '.', stray characters)
// is reported as an error here rather than silently accepted by the
// grammar.
func NewQuantity(normalized string) (Quantity, error) {
	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid quantity %q: %w", normalized, err)
	}
	return Quantity{d}, nil
}

// String renders the quantity at its written scale, so "45.00" stays
// "45.00" instead of being trimmed to "45".
func (q Quantity) String() string {
	if exp := q.Exponent(); exp < 0 {
		return q.StringFixed(-exp)
	}
	return q.Decimal.String()
}

// Amount is a quantity denominated in a symbol, plus the layout it was
// written in.
type Amount struct {
	Qty    Quantity
	Symbol Symbol
	Format AmountFormat
}

func (a Amount) String() string {
	switch a.Format {
	case SymbolLeftNoSpace:
		return a.Symbol.String() + a.Qty.String()
	case SymbolLeftWithSpace:
		return a.Symbol.String() + " " + a.Qty.String()
	case SymbolRightNoSpace:
		return a.Qty.String() + a.Symbol.String()
	case SymbolRightWithSpace:
		return a.Qty.String() + " " + a.Symbol.String()
	default:
		return a.Qty.String() + " " + a.Symbol.String()
	}
}

// AmountKind distinguishes a posting amount that was written out from one
// left for a downstream balancing pass to infer.
type AmountKind int

const (
	AmountResolved AmountKind = iota
	AmountInfer
)

// PostingAmount is the sum type `Resolved(Amount) | Infer`: a posting's
// amount is either present, or it is the explicit infer sentinel. It is
// never represented by a nil *Amount, so callers cannot mistake "not yet
// inferred" for "zero value".
type PostingAmount struct {
	Kind  AmountKind
	Value Amount // valid iff Kind == AmountResolved
}

// Infer is the sentinel meaning "derive this amount downstream from the
// rule that a transaction's postings balance to zero".
func Infer() PostingAmount { return PostingAmount{Kind: AmountInfer} }

// Resolved wraps a parsed amount.
func Resolved(a Amount) PostingAmount { return PostingAmount{Kind: AmountResolved, Value: a} }

// IsInfer reports whether this posting amount must be inferred downstream.
func (pa PostingAmount) IsInfer() bool { return pa.Kind == AmountInfer }

func (pa PostingAmount) String() string {
	if pa.IsInfer() {
		return "<infer>"
	}
	return pa.Value.String()
}
