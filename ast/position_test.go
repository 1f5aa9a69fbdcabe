package ast

import (
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestPositionString(t *testing.T) {
	assert.Equal(t, "journal.ldg:3:5", Position{Filename: "journal.ldg", Line: 3, Column: 5}.String())
	assert.Equal(t, "3:5", Position{Line: 3, Column: 5}.String())
}
