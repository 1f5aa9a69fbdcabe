package parser

// L0: character predicates. Each is a pure function over a single code
// point. Higher layers compose these rather than re-reading characters
// directly, and the compound classes (payee, comment, symbol) are
// defined in terms of the primitive ones.

func isOpenParen(r rune) bool  { return r == '(' }
func isCloseParen(r rune) bool { return r == ')' }
func isSemicolon(r rune) bool  { return r == ';' }
func isColon(r rune) bool      { return r == ':' }
func isDash(r rune) bool       { return r == '-' }
func isQuote(r rune) bool      { return r == '"' }
func isSpace(r rune) bool      { return r == ' ' }
func isTab(r rune) bool        { return r == '\t' }
func isHorizontalWS(r rune) bool {
	return isSpace(r) || isTab(r)
}
func isLineFeed(r rune) bool       { return r == '\n' }
func isCarriageReturn(r rune) bool { return r == '\r' }
func isNewline(r rune) bool {
	return isLineFeed(r) || isCarriageReturn(r)
}
func isDigit(r rune) bool         { return r >= '0' && r <= '9' }
func isDateSeparator(r rune) bool { return r == '/' || r == '-' }
func isStatusFlag(r rune) bool    { return r == '*' || r == '!' }
func isPriceIndicator(r rune) bool {
	return r == 'P'
}
func isAlnum(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isCodeChar(r rune) bool    { return !isNewline(r) && !isCloseParen(r) }
func isPayeeChar(r rune) bool   { return !isNewline(r) && !isSemicolon(r) }
func isCommentChar(r rune) bool { return !isNewline(r) }
func isQuotedSymbolChar(r rune) bool {
	return !isNewline(r) && !isQuote(r)
}

// isUnquotedSymbolChar accepts everything except '-', digits, ';', ' ',
// '"', tab, CR, LF. Digits terminate an unquoted symbol on their own.
// Comma is not itself excluded, but in practice a digit always follows
// immediately (so "$13,245.00" yields the symbol "$" and leaves the
// quantity, comma and all, for the quantity parser to normalize).
func isUnquotedSymbolChar(r rune) bool {
	if isDash(r) || isSemicolon(r) || isSpace(r) || isQuote(r) || isTab(r) || isNewline(r) {
		return false
	}
	if isDigit(r) {
		return false
	}
	return true
}
