package keyword

import "testing"

func TestLookupCategories(t *testing.T) {
	tests := []struct {
		token string
		want  Category
	}{
		{"TESTSUITE", CategoryTestsuite},
		{"TESTCASE", CategoryTestcase},
		{"EXPECT", CategoryExpect},
		{"NOT", CategoryNot},
		{"=", CategoryEqualSign},
		{"!=", CategoryNotEqualSign},
		{">", CategoryGreaterSign},
		{"<", CategoryLessSign},
		{">=", CategoryGreaterEqualSign},
		{"<=", CategoryLessEqualSign},
		{"TO BE", CategoryToBe},
		{"TO EQUAL", CategoryToEqual},
		{"EQUALS", CategoryToEqual},
		{"TRUE", CategoryBoolean},
		{"FALSE", CategoryBoolean},
		{`"Suite A"`, CategoryAlphanumericLiteral},
		{`'Suite A'`, CategoryAlphanumericLiteral},
		{"5", CategoryNumericLiteral},
		{"-17.25", CategoryNumericLiteral},
		{"+3", CategoryNumericLiteral},
		{"WS-FIELD", CategoryCobolToken},
		{"MOVE", CategoryCobolToken},
		{"1ST-ITEM", CategoryCobolToken},
	}

	for _, tt := range tests {
		if got := Lookup(tt.token).Category; got != tt.want {
			t.Errorf("Lookup(%q).Category = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestLookupActions(t *testing.T) {
	tests := []struct {
		token string
		want  Action
	}{
		{"TESTSUITE", ActionSuiteName},
		{"TESTCASE", ActionCaseName},
		{"EXPECT", ActionFieldName},
		{"TO BE", ActionExpectedValue},
		{"TO EQUAL", ActionExpectedValue},
		{"=", ActionExpectedValue},
		{">=", ActionExpectedValue},
		{"NOT", ActionNone},
		{"TRUE", ActionNone},
		{"WS-FIELD", ActionNone},
	}

	for _, tt := range tests {
		if got := Lookup(tt.token).Next; got != tt.want {
			t.Errorf("Lookup(%q).Next = %v, want %v", tt.token, got, tt.want)
		}
	}
}

func TestIsNumericLiteral(t *testing.T) {
	invalid := []string{"", "+", "-", ".", "1.2.3", "12A", "A12", "--5"}
	for _, s := range invalid {
		if isNumericLiteral(s) {
			t.Errorf("isNumericLiteral(%q) = true, want false", s)
		}
	}
	valid := []string{"0", "42", "-42", "+42", "3.14", "-0.5"}
	for _, s := range valid {
		if !isNumericLiteral(s) {
			t.Errorf("isNumericLiteral(%q) = false, want true", s)
		}
	}
}

func TestIsCobolVerb(t *testing.T) {
	for _, verb := range []string{"MOVE", "PERFORM", "DISPLAY", "SET", "IF", "COMPUTE"} {
		if !IsCobolVerb(verb) {
			t.Errorf("IsCobolVerb(%q) = false, want true", verb)
		}
	}
	for _, word := range []string{"WS-FIELD", "TO", "EXPECT", ""} {
		if IsCobolVerb(word) {
			t.Errorf("IsCobolVerb(%q) = true, want false", word)
		}
	}
}

func TestIsQualifier(t *testing.T) {
	if !IsQualifier("IN") || !IsQualifier("OF") {
		t.Errorf("IN and OF should be qualifiers")
	}
	if IsQualifier("TO") || IsQualifier("WITHIN") {
		t.Errorf("only IN and OF are qualifiers")
	}
}
