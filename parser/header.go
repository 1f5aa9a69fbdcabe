package parser

import "github.com/ledgerfmt/journal/ast"

// transactionHeader parses a transaction's opening line:
//
//	date whitespace status [whitespace code] whitespace payee [comment]
//
// Every whitespace gap accepts zero characters, so "2015/02/14*Payee"
// is as valid as the conventionally spaced form. The line number is
// snapshotted before any of the line is consumed, so it names the
// header's own line even though parsing proceeds character by character
// across it.
func transactionHeader(s state) (*ast.TransactionHeader, state, error) {
	line := lineNumber(s)

	d, s1, err := date(s)
	if err != nil {
		return nil, s1, err
	}

	_, s2, _ := whitespace(s1)

	status, s3, err := transactionStatus(s2)
	if err != nil {
		return nil, s3, err
	}

	codeOpt, s4, err := optionalCode(s3)
	if err != nil {
		return nil, s4, err
	}

	_, s5, _ := whitespace(s4)

	p, s6, err := payee(s5)
	if err != nil {
		return nil, s6, err
	}

	commentOpt, s7, err := optional(comment)(s6)
	if err != nil {
		return nil, s7, err
	}

	return &ast.TransactionHeader{
		LineNumber: line,
		Date:       d,
		Status:     status,
		Code:       codeOpt,
		Payee:      p,
		Comment:    commentOpt,
	}, s7, nil
}

// optionalCode attempts a leading whitespace run followed by a code atom,
// but only commits to having consumed the whitespace if a code actually
// follows it. When the code is absent, the whitespace belongs to the
// gap before the payee and is left for the caller to consume instead.
func optionalCode(s state) (ast.Option[string], state, error) {
	probe := func(s state) (string, state, error) {
		_, s1, _ := whitespace(s)
		return code(s1)
	}
	return optional(try(probe))(s)
}
