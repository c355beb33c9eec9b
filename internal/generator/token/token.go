package token

import "strings"

// Token is one lexical unit from a test suite line. Quoted literals keep
// their delimiters in Text so the generated COBOL can reuse them verbatim.
type Token struct {
	Text   string
	Quoted bool
}

// Normalized returns the form the keyword classifier expects: quoted
// literals case-preserved, everything else upper-cased.
func (t Token) Normalized() string {
	if t.Quoted {
		return t.Text
	}
	return strings.ToUpper(t.Text)
}
