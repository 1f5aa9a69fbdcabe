package parser

import "github.com/ledgerfmt/journal/ast"

// transaction parses a full transaction: a header line, the line ending
// that terminates it, and one or more following lines (indented postings,
// or free-standing comments at any indentation). At least one posting is required; a
// transaction consisting only of comment lines is a hard error, since a
// posting-less transaction can never be a valid accounting entry.
func transaction(s state) (*ast.Transaction, state, error) {
	header, s1, err := transactionHeader(s)
	if err != nil {
		return nil, s1, err
	}

	_, s2, err := expect(lineEnding, "line ending")(s1)
	if err != nil {
		return nil, s2, err
	}

	lines, s3, err := many1(transactionLine)(s2)
	if err != nil {
		return nil, s3, err
	}

	postings := make([]*ast.Posting, 0, len(lines))
	for _, ln := range lines {
		if ln.isOnlyComment {
			continue
		}
		ln.posting.HeaderRef = header
		postings = append(postings, ln.posting)
	}
	if len(postings) == 0 {
		return nil, s3, newError(s2, "at least one posting")
	}

	return &ast.Transaction{Header: *header, Postings: postings}, s3, nil
}
