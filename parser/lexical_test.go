package parser

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/ledgerfmt/journal/ast"
)

func TestDateParsesSlashAndDashSeparators(t *testing.T) {
	tests := []struct {
		input string
		want  ast.Date
	}{
		{"2015/02/14", ast.Date{Year: 2015, Month: 2, Day: 14}},
		{"2015-02-14", ast.Date{Year: 2015, Month: 2, Day: 14}},
		{"2015/02-14", ast.Date{Year: 2015, Month: 2, Day: 14}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			s := newState("test", []byte(tt.input))
			got, next, err := date(s)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.input), next.pos)
		})
	}
}

func TestDateAcceptsImplausibleCalendarValues(t *testing.T) {
	s := newState("test", []byte("2015-13-40"))
	got, _, err := date(s)
	assert.NoError(t, err)
	assert.Equal(t, ast.Date{Year: 2015, Month: 13, Day: 40}, got)
}

func TestDateFailsWithoutConsumingWhenNoDigit(t *testing.T) {
	s := newState("test", []byte("hello"))
	_, next, err := date(s)
	assert.Error(t, err)
	assert.Equal(t, s.pos, next.pos)
}

func TestDateFailsHardOnPartialDigits(t *testing.T) {
	s := newState("test", []byte("20a5-01-01"))
	_, next, err := date(s)
	assert.Error(t, err)
	assert.True(t, next.pos > s.pos)
}

func TestTransactionStatus(t *testing.T) {
	s := newState("test", []byte("* rest"))
	got, next, err := transactionStatus(s)
	assert.NoError(t, err)
	assert.Equal(t, ast.Cleared, got)
	assert.Equal(t, 1, next.pos)

	s2 := newState("test", []byte("!"))
	got2, _, err := transactionStatus(s2)
	assert.NoError(t, err)
	assert.Equal(t, ast.Uncleared, got2)
}

func TestCodeParsesContentBetweenParens(t *testing.T) {
	s := newState("test", []byte("(conf# abc123)"))
	got, next, err := code(s)
	assert.NoError(t, err)
	assert.Equal(t, "conf# abc123", got)
	assert.Equal(t, len(s.src), next.pos)
}

func TestCodeEmptyParensYieldsEmptyString(t *testing.T) {
	s := newState("test", []byte("()"))
	got, next, err := code(s)
	assert.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, 2, next.pos)
}

func TestCodeRequiresClosingParen(t *testing.T) {
	s := newState("test", []byte("(unterminated"))
	_, next, err := code(s)
	assert.Error(t, err)
	assert.True(t, next.pos > s.pos)
}

func TestPayeeStopsAtSemicolon(t *testing.T) {
	s := newState("test", []byte("Store Name ;a comment"))
	got, next, err := payee(s)
	assert.NoError(t, err)
	assert.Equal(t, "Store Name ", got)
	assert.Equal(t, len("Store Name "), next.pos)
}

func TestCommentDropsLeadingSemicolon(t *testing.T) {
	s := newState("test", []byte("; a note"))
	got, next, err := comment(s)
	assert.NoError(t, err)
	assert.Equal(t, " a note", got)
	assert.Equal(t, len(s.src), next.pos)
}

func TestCommentBareSemicolonYieldsEmptyString(t *testing.T) {
	s := newState("test", []byte(";"))
	got, next, err := comment(s)
	assert.NoError(t, err)
	assert.Equal(t, "", got)
	assert.Equal(t, 1, next.pos)
}

func TestPayeeSingleCharacter(t *testing.T) {
	s := newState("test", []byte("Z"))
	got, _, err := payee(s)
	assert.NoError(t, err)
	assert.Equal(t, "Z", got)
}

func TestAccountJoinsSubAccountsOnColon(t *testing.T) {
	s := newState("test", []byte("Assets:Bank:Checking"))
	got, next, err := account(s)
	assert.NoError(t, err)
	assert.Equal(t, ast.Account{"Assets", "Bank", "Checking"}, got)
	assert.Equal(t, len(s.src), next.pos)
}

func TestAccountRequiresAtLeastOneSegment(t *testing.T) {
	s := newState("test", []byte(":Bank"))
	_, next, err := account(s)
	assert.Error(t, err)
	assert.Equal(t, s.pos, next.pos)
}

func TestQuantityStripsThousandsSeparator(t *testing.T) {
	s := newState("test", []byte("13,245.00"))
	q, next, err := quantity(s)
	assert.NoError(t, err)
	assert.Equal(t, "13245.00", q.String())
	assert.Equal(t, len(s.src), next.pos)
}

func TestQuantityPreservesNegativeSign(t *testing.T) {
	s := newState("test", []byte("-45.5"))
	q, _, err := quantity(s)
	assert.NoError(t, err)
	assert.Equal(t, "-45.5", q.String())
}

func TestQuantityRejectsTwoDecimalPoints(t *testing.T) {
	s := newState("test", []byte("1.2.3"))
	_, _, err := quantity(s)
	assert.Error(t, err)
}

func TestQuotedSymbol(t *testing.T) {
	s := newState("test", []byte(`"MUTF514"`))
	sym, next, err := quotedSymbol(s)
	assert.NoError(t, err)
	assert.Equal(t, ast.Symbol{Value: "MUTF514", Quoted: true}, sym)
	assert.Equal(t, len(s.src), next.pos)
}

func TestUnquotedSymbolStopsAtDigit(t *testing.T) {
	s := newState("test", []byte("$13,245.00"))
	sym, next, err := unquotedSymbol(s)
	assert.NoError(t, err)
	assert.Equal(t, ast.Symbol{Value: "$", Quoted: false}, sym)
	assert.Equal(t, 1, next.pos)
}

func TestSymbolPrefersQuotedWhenPresent(t *testing.T) {
	s := newState("test", []byte(`"MUTF514" rest`))
	sym, _, err := symbol(s)
	assert.NoError(t, err)
	assert.True(t, sym.Quoted)
}

func TestLineEndingRejectsBareCarriageReturn(t *testing.T) {
	s := newState("test", []byte("\rx"))
	_, next, err := lineEnding(s)
	assert.Error(t, err)
	assert.Equal(t, s.pos, next.pos)
}

func TestLineEndingAcceptsCRLF(t *testing.T) {
	s := newState("test", []byte("\r\nrest"))
	got, next, err := lineEnding(s)
	assert.NoError(t, err)
	assert.Equal(t, "\r\n", got)
	assert.Equal(t, 2, next.pos)
}
