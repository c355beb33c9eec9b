// Package translator is the single-pass state machine turning test suite
// tokens into the COBOL statements of the generated test program. It pulls
// tokens on demand from a source, consults the numeric field oracle, and
// flushes each completed construct to the sink before reading further.
package translator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cobcheck/cobcheck/internal/generator/cobol"
	"github.com/cobcheck/cobcheck/internal/generator/fields"
	"github.com/cobcheck/cobcheck/internal/generator/keyword"
	"github.com/cobcheck/cobcheck/internal/generator/token"
)

// ErrEmptySuite reports that the token source was exhausted before producing
// a single token. A legitimate test suite always yields at least a header.
var ErrEmptySuite = errors.New("test suite contains no tokens")

// TokenSource hands out suite tokens one at a time. ok is false at end of
// input; a read failure of the underlying source is returned as an error.
type TokenSource interface {
	Next() (tok token.Token, ok bool, err error)
}

// Oracle reports the data type of a named data item in the program under
// test.
type Oracle interface {
	DataTypeOf(name string) fields.DataType
}

// awaiting is what the next token means, armed by the keyword just consumed.
// Exactly one meaning is pending at any time.
type awaiting int

const (
	awaitNothing awaiting = iota
	awaitSuiteName    // next alphanumeric literal names the suite
	awaitCaseName     // next alphanumeric literal names the case
	awaitFieldName    // next generic token names the field under test
	haveFieldName     // field captured; IN/OF may qualify it
	awaitQualifier    // IN/OF consumed; next token completes the name
	haveQualifiedName // qualified name complete; comparator expected
	awaitValue        // comparator seen; next literal is the expected value
)

// comparison holds the flags a comparator keyword sets. It is reset as a
// unit when an assertion is emitted.
type comparison struct {
	negate  bool
	greater bool
	less    bool
}

// Translator carries the live state of one translation run. Build one per
// run with New; it is not safe for reuse or concurrent use.
type Translator struct {
	prefix string

	sink   *cobol.Writer
	oracle Oracle

	state     awaiting
	cmp       comparison
	fieldName string
	qualifier string

	statement []string

	suiteName string
	caseName  string
	caseCount int
}

func New(prefix string) *Translator {
	return &Translator{prefix: prefix}
}

// SuiteName returns the most recently recognized suite name.
func (t *Translator) SuiteName() string { return t.suiteName }

// CaseName returns the most recently recognized case name.
func (t *Translator) CaseName() string { return t.caseName }

// CaseCount returns the number of test cases recognized so far.
func (t *Translator) CaseCount() int { return t.caseCount }

// InsertInitialization writes the PERFORM INITIALIZE preamble line.
func (t *Translator) InsertInitialization(sink *cobol.Writer) error {
	return sink.WriteLine(fmt.Sprintf(tmplPerformInitialize, t.prefix))
}

// Translate consumes the token source to exhaustion, writing generated
// statements to sink. Lines written before a failure remain in the sink.
func (t *Translator) Translate(src TokenSource, sink *cobol.Writer, oracle Oracle) error {
	t.sink = sink
	t.oracle = oracle

	produced := false
	for {
		tok, ok, err := src.Next()
		if err != nil {
			return err
		}
		if !ok {
			if !produced {
				return ErrEmptySuite
			}
			break
		}
		produced = true
		if err := t.consume(tok); err != nil {
			return err
		}
	}
	return t.flushStatement()
}

// consume advances the state machine by one token.
func (t *Translator) consume(tok token.Token) error {
	normalized := tok.Normalized()
	kw := keyword.Lookup(normalized)

	switch kw.Category {
	case keyword.CategoryExpect:
		if err := t.flushStatement(); err != nil {
			return err
		}
		if err := t.sink.WriteLine(fmt.Sprintf(tmplIncrementCaseCount, t.prefix)); err != nil {
			return err
		}
		t.cmp = comparison{}
		t.fieldName = ""

	case keyword.CategoryNot:
		t.cmp.negate = true

	case keyword.CategoryNotEqualSign:
		t.cmp.negate = !t.cmp.negate

	case keyword.CategoryGreaterSign:
		t.cmp.greater = true

	case keyword.CategoryLessSign:
		t.cmp.less = true

	case keyword.CategoryGreaterEqualSign:
		t.cmp.less = true
		t.cmp.negate = !t.cmp.negate

	case keyword.CategoryLessEqualSign:
		t.cmp.greater = true
		t.cmp.negate = !t.cmp.negate

	case keyword.CategoryTestsuite, keyword.CategoryTestcase,
		keyword.CategoryEqualSign, keyword.CategoryToBe, keyword.CategoryToEqual:
		// No work beyond arming the next token's meaning.

	case keyword.CategoryCobolToken:
		return t.consumeCobolToken(normalized)

	case keyword.CategoryAlphanumericLiteral:
		return t.consumeAlphanumericLiteral(tok)

	case keyword.CategoryNumericLiteral:
		return t.consumeNumericLiteral(normalized)

	case keyword.CategoryBoolean:
		return t.consumeBoolean(normalized)
	}

	t.arm(kw.Next)
	return nil
}

// arm loads the one-token lookahead slot. ActionNone leaves the pending
// meaning untouched, so NOT between a comparator and its value does not
// disturb the armed value capture.
func (t *Translator) arm(a keyword.Action) {
	switch a {
	case keyword.ActionSuiteName:
		t.state = awaitSuiteName
	case keyword.ActionCaseName:
		t.state = awaitCaseName
	case keyword.ActionFieldName:
		t.state = awaitFieldName
	case keyword.ActionExpectedValue:
		t.state = awaitValue
	}
}

func (t *Translator) consumeCobolToken(normalized string) error {
	switch t.state {
	case awaitFieldName:
		t.fieldName = normalized
		t.state = haveFieldName
	case haveFieldName:
		if keyword.IsQualifier(normalized) {
			t.qualifier = normalized
			t.state = awaitQualifier
		}
		// Anything else between a field name and its comparator is not
		// part of the expectation grammar and is dropped.
	case awaitQualifier:
		t.fieldName = t.fieldName + " " + t.qualifier + " " + normalized
		t.state = haveQualifiedName
	case awaitValue:
		return t.emitAssertion(normalized, false)
	case haveQualifiedName:
		// Only a comparator can continue a completed qualified name.
	default:
		return t.appendToStatement(normalized)
	}
	return nil
}

func (t *Translator) consumeAlphanumericLiteral(tok token.Token) error {
	switch t.state {
	case awaitSuiteName:
		t.suiteName = tok.Text
		t.state = awaitNothing
		return t.emitSuiteHeader(tok.Text)
	case awaitCaseName:
		t.caseName = tok.Text
		t.state = awaitNothing
		return t.emitCaseHeader(tok.Text)
	case awaitValue:
		return t.emitAssertion(tok.Text, false)
	case awaitFieldName, haveFieldName, awaitQualifier, haveQualifiedName:
		return nil
	default:
		return t.appendToStatement(tok.Text)
	}
}

func (t *Translator) consumeNumericLiteral(normalized string) error {
	switch t.state {
	case awaitValue:
		return t.emitAssertion(normalized, false)
	case awaitFieldName, haveFieldName, awaitQualifier, haveQualifiedName,
		awaitSuiteName, awaitCaseName:
		return nil
	default:
		return t.appendToStatement(normalized)
	}
}

// consumeBoolean handles TRUE and FALSE: as an expected value they select
// the 88-level assertion path; inside an open pass-through statement they
// terminate it, so user-written conditionals like SET FLAG TO TRUE close
// cleanly.
func (t *Translator) consumeBoolean(normalized string) error {
	if t.state == awaitValue {
		return t.emitAssertion(normalized, true)
	}
	if len(t.statement) > 0 && !t.expectationOpen() {
		t.statement = append(t.statement, normalized)
		return t.flushStatement()
	}
	return nil
}

func (t *Translator) expectationOpen() bool {
	switch t.state {
	case awaitFieldName, haveFieldName, awaitQualifier, haveQualifiedName, awaitValue:
		return true
	}
	return false
}

// --- pass-through statements ---

// appendToStatement accumulates verbatim COBOL. A statement-opening verb
// terminates any statement already in progress before starting its own.
func (t *Translator) appendToStatement(word string) error {
	if keyword.IsCobolVerb(word) && len(t.statement) > 0 {
		if err := t.flushStatement(); err != nil {
			return err
		}
	}
	t.statement = append(t.statement, word)
	return nil
}

// flushStatement writes any accumulated pass-through statement and clears
// the buffer. Flushing an empty buffer is a no-op, so callers flush freely
// before starting a new construct.
func (t *Translator) flushStatement() error {
	if len(t.statement) == 0 {
		return nil
	}
	line := areaBIndent + strings.Join(t.statement, " ")
	t.statement = nil
	return t.sink.WriteStatement(line)
}

// --- construct emission ---

func (t *Translator) emitSuiteHeader(name string) error {
	if err := t.flushStatement(); err != nil {
		return err
	}
	if err := t.sink.WriteLine(tmplDisplayTestsuite); err != nil {
		return err
	}
	return t.sink.WriteStatement(fmt.Sprintf(tmplDisplayName, name))
}

func (t *Translator) emitCaseHeader(name string) error {
	if err := t.flushStatement(); err != nil {
		return err
	}
	t.caseCount++
	if err := t.sink.WriteStatement(fmt.Sprintf(tmplStoreCaseName, name)); err != nil {
		return err
	}
	if err := t.sink.WriteLine(fmt.Sprintf(tmplStoreCaseNameTo, t.prefix)); err != nil {
		return err
	}
	return t.sink.WriteLine(fmt.Sprintf(tmplPerformBefore, t.prefix))
}

// emitAssertion lowers one complete EXPECT construct. Exactly one of the
// 88-level or normal paths runs; comparison flags reset afterwards, while
// the field name survives until the next EXPECT.
func (t *Translator) emitAssertion(expected string, boolean88 bool) error {
	var err error
	if boolean88 {
		err = t.emit88LevelAssertion(expected)
	} else {
		err = t.emitNormalAssertion(expected)
	}
	t.cmp = comparison{}
	t.state = awaitNothing
	return err
}

func (t *Translator) emitNormalAssertion(expected string) error {
	mode := compareNormal
	if t.cmp.negate {
		mode = compareReverse
	}
	if err := t.sink.WriteLine(fmt.Sprintf(tmplSetNormalOrReverse, t.prefix, mode, literalTrue)); err != nil {
		return err
	}

	if t.oracle.DataTypeOf(t.fieldName).Numeric() {
		if err := t.sink.WriteLine(fmt.Sprintf(tmplSetCompareNumeric, t.prefix, literalTrue)); err != nil {
			return err
		}
		if err := t.sink.WriteLine(fmt.Sprintf(tmplMoveFieldToActualNumeric, t.prefix, t.fieldName)); err != nil {
			return err
		}
		if err := t.sink.WriteLine(fmt.Sprintf(tmplMoveExpectedNumeric, t.prefix, expected)); err != nil {
			return err
		}
	} else {
		if err := t.sink.WriteLine(fmt.Sprintf(tmplSetCompareAlpha, t.prefix, literalTrue)); err != nil {
			return err
		}
		if err := t.sink.WriteLine(fmt.Sprintf(tmplMoveFieldToActual, t.prefix, t.fieldName)); err != nil {
			return err
		}
		// The expected literal can exceed the statement area; WriteStatement
		// applies the continuation rule.
		if err := t.sink.WriteStatement(fmt.Sprintf(tmplMoveExpectedLiteral, expected)); err != nil {
			return err
		}
		if err := t.sink.WriteLine(fmt.Sprintf(tmplMoveExpectedLiteralTo, t.prefix)); err != nil {
			return err
		}
	}

	relation := relationEQ
	switch {
	case t.cmp.greater:
		relation = relationGT
	case t.cmp.less:
		relation = relationLT
	}
	if err := t.sink.WriteLine(fmt.Sprintf(tmplSetRelation, t.prefix, relation, literalTrue)); err != nil {
		return err
	}
	return t.emitTrailer()
}

func (t *Translator) emit88LevelAssertion(expected string) error {
	if err := t.sink.WriteLine(fmt.Sprintf(tmplSetCompare88Level, t.prefix, literalTrue)); err != nil {
		return err
	}

	actualBlock := []string{
		fmt.Sprintf(tmplActual88If, t.fieldName),
		fmt.Sprintf(tmplActual88SetTrue, t.prefix),
		fmt.Sprintf(tmplActual88MoveTrue, t.prefix),
		tmplElse,
		fmt.Sprintf(tmplActual88SetFalse, t.prefix),
		fmt.Sprintf(tmplActual88MoveFalse, t.prefix),
		tmplEndIf,
	}
	for _, line := range actualBlock {
		if err := t.sink.WriteLine(line); err != nil {
			return err
		}
	}

	// NOT inverts the expected boolean rather than the comparison mode.
	if t.cmp.negate {
		if expected == literalTrue {
			expected = literalFalse
		} else {
			expected = literalTrue
		}
	}

	expectedBlock := []string{
		fmt.Sprintf(tmplSetExpected88, t.prefix, expected),
		fmt.Sprintf(tmplExpected88If, t.prefix),
		fmt.Sprintf(tmplExpected88MoveTrue, t.prefix),
		tmplElse,
		fmt.Sprintf(tmplExpected88MoveFalse, t.prefix),
		tmplEndIf,
	}
	for _, line := range expectedBlock {
		if err := t.sink.WriteLine(line); err != nil {
			return err
		}
	}
	return t.emitTrailer()
}

// emitTrailer writes the lines shared by every assertion.
func (t *Translator) emitTrailer() error {
	if err := t.sink.WriteLine(fmt.Sprintf(tmplCheckExpectation, t.prefix)); err != nil {
		return err
	}
	return t.sink.WriteLine(fmt.Sprintf(tmplPerformAfter, t.prefix))
}
