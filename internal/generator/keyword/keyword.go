// Package keyword classifies normalized test suite tokens into the closed
// category set the translator drives on, and carries the lookahead action
// each keyword arms for the token that follows it.
package keyword

import "strings"

type Category int

const (
	// CategoryCobolToken is the fallback for anything not recognized below:
	// field names, COBOL verbs, and other verbatim source words.
	CategoryCobolToken Category = iota
	CategoryTestsuite
	CategoryTestcase
	CategoryExpect
	CategoryNot
	CategoryEqualSign
	CategoryNotEqualSign
	CategoryGreaterSign
	CategoryLessSign
	CategoryGreaterEqualSign
	CategoryLessEqualSign
	CategoryToBe
	CategoryToEqual
	CategoryBoolean
	CategoryAlphanumericLiteral
	CategoryNumericLiteral
)

func (c Category) String() string {
	switch c {
	case CategoryTestsuite:
		return "TESTSUITE"
	case CategoryTestcase:
		return "TESTCASE"
	case CategoryExpect:
		return "EXPECT"
	case CategoryNot:
		return "NOT"
	case CategoryEqualSign:
		return "="
	case CategoryNotEqualSign:
		return "!="
	case CategoryGreaterSign:
		return ">"
	case CategoryLessSign:
		return "<"
	case CategoryGreaterEqualSign:
		return ">="
	case CategoryLessEqualSign:
		return "<="
	case CategoryToBe:
		return "TO BE"
	case CategoryToEqual:
		return "TO EQUAL"
	case CategoryBoolean:
		return "BOOLEAN"
	case CategoryAlphanumericLiteral:
		return "ALPHANUMERIC-LITERAL"
	case CategoryNumericLiteral:
		return "NUMERIC-LITERAL"
	default:
		return "COBOL-TOKEN"
	}
}

// Action tells the translator what the token AFTER this one means. It is the
// value pushed onto the one-token lookahead slot.
type Action int

const (
	ActionNone Action = iota
	ActionSuiteName     // next alphanumeric literal names the test suite
	ActionCaseName      // next alphanumeric literal names the test case
	ActionFieldName     // next generic token names the field under test
	ActionExpectedValue // next literal token is the expected value
)

// Keyword is the classification of one normalized token. It is a pure value;
// Lookup has no state and no side effects.
type Keyword struct {
	Category Category
	Next     Action
}

var keywords = map[string]Keyword{
	"TESTSUITE": {CategoryTestsuite, ActionSuiteName},
	"TESTCASE":  {CategoryTestcase, ActionCaseName},
	"EXPECT":    {CategoryExpect, ActionFieldName},
	"NOT":       {CategoryNot, ActionNone},
	"=":         {CategoryEqualSign, ActionExpectedValue},
	"!=":        {CategoryNotEqualSign, ActionExpectedValue},
	">":         {CategoryGreaterSign, ActionExpectedValue},
	"<":         {CategoryLessSign, ActionExpectedValue},
	">=":        {CategoryGreaterEqualSign, ActionExpectedValue},
	"<=":        {CategoryLessEqualSign, ActionExpectedValue},
	"TO BE":     {CategoryToBe, ActionExpectedValue},
	"TO EQUAL":  {CategoryToEqual, ActionExpectedValue},
	"EQUALS":    {CategoryToEqual, ActionExpectedValue},
	"TRUE":      {CategoryBoolean, ActionNone},
	"FALSE":     {CategoryBoolean, ActionNone},
}

// Lookup classifies a normalized token (see token.Normalized). Tokens that
// match no keyword fall back to literal detection, then to CategoryCobolToken.
func Lookup(normalized string) Keyword {
	if kw, ok := keywords[normalized]; ok {
		return kw
	}
	if strings.HasPrefix(normalized, `"`) || strings.HasPrefix(normalized, `'`) {
		return Keyword{CategoryAlphanumericLiteral, ActionNone}
	}
	if isNumericLiteral(normalized) {
		return Keyword{CategoryNumericLiteral, ActionNone}
	}
	return Keyword{CategoryCobolToken, ActionNone}
}

func isNumericLiteral(s string) bool {
	if s == "" {
		return false
	}
	if s[0] == '+' || s[0] == '-' {
		s = s[1:]
	}
	digits := 0
	points := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] >= '0' && s[i] <= '9':
			digits++
		case s[i] == '.':
			points++
		default:
			return false
		}
	}
	return digits > 0 && points <= 1
}

// cobolVerbs are the statement-opening verbs that terminate one pass-through
// statement and begin the next.
var cobolVerbs = map[string]bool{
	"ACCEPT":     true,
	"ADD":        true,
	"ALTER":      true,
	"CALL":       true,
	"CANCEL":     true,
	"CLOSE":      true,
	"COMPUTE":    true,
	"CONTINUE":   true,
	"DELETE":     true,
	"DISPLAY":    true,
	"DIVIDE":     true,
	"EVALUATE":   true,
	"EXIT":       true,
	"GO":         true,
	"GOBACK":     true,
	"IF":         true,
	"INITIALIZE": true,
	"INSPECT":    true,
	"MERGE":      true,
	"MOVE":       true,
	"MULTIPLY":   true,
	"OPEN":       true,
	"PERFORM":    true,
	"READ":       true,
	"RELEASE":    true,
	"RETURN":     true,
	"REWRITE":    true,
	"SEARCH":     true,
	"SET":        true,
	"SORT":       true,
	"START":      true,
	"STOP":       true,
	"STRING":     true,
	"SUBTRACT":   true,
	"UNSTRING":   true,
	"WRITE":      true,
}

// IsCobolVerb reports whether a normalized token opens a COBOL statement.
func IsCobolVerb(normalized string) bool {
	return cobolVerbs[normalized]
}

// IsQualifier reports whether a normalized token links segments of a
// qualified data item name, as in "WS-FIELD IN WS-RECORD".
func IsQualifier(normalized string) bool {
	return normalized == "IN" || normalized == "OF"
}
