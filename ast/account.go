package ast

import "strings"

// Account is an ordered, non-empty sequence of sub-account names, e.g.
// ["Expenses", "Food", "Groceries"] for the written account
// "Expenses:Food:Groceries".
type Account []string

// String reproduces the original ':'-joined account text.
func (a Account) String() string {
	return strings.Join(a, ":")
}
