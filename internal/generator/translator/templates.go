package translator

// The output-line catalog. Each shape takes the generated-identifier prefix
// and, where marked, a field name or literal. Indentation is Area B of the
// fixed source format.
const (
	tmplPerformInitialize = "           PERFORM %sINITIALIZE"

	tmplDisplayTestsuite = "           DISPLAY \"TESTSUITE:\"                                                 "
	tmplDisplayName      = "           DISPLAY %s"

	tmplStoreCaseName      = "           MOVE %s"
	tmplStoreCaseNameTo    = "               TO %sTEST-CASE-NAME"
	tmplPerformBefore      = "           PERFORM %sBEFORE"
	tmplIncrementCaseCount = "           ADD 1 TO %sTEST-CASE-COUNT"

	// SET UT-NORMAL-COMPARE TO TRUE, or UT-REVERSE-COMPARE when the
	// expectation carries NOT.
	tmplSetNormalOrReverse = "           SET %s%s-COMPARE TO %s"

	tmplSetCompareNumeric = "           SET %sNUMERIC-COMPARE TO %s"
	tmplSetCompare88Level = "           SET %sCOMPARE-88-LEVEL TO %s"
	tmplSetCompareAlpha   = "           SET %sALPHANUMERIC-COMPARE TO %s"

	// SET UT-RELATION-GT / -LT / -EQ TO TRUE.
	tmplSetRelation = "           SET %sRELATION-%s TO %s"

	tmplMoveFieldToActual        = "           MOVE %[2]s TO %[1]sACTUAL"
	tmplMoveFieldToActualNumeric = "           MOVE %[2]s TO %[1]sACTUAL-NUMERIC"
	tmplMoveExpectedLiteral      = "           MOVE %s"
	tmplMoveExpectedLiteralTo    = "               TO %sEXPECTED"
	tmplMoveExpectedNumeric      = "           MOVE %[2]s TO %[1]sEXPECTED-NUMERIC"

	// Conditional block capturing an 88-level field's current truth value.
	tmplActual88If        = "           IF %s"
	tmplActual88SetTrue   = "               SET %sACTUAL-88-VALUE TO TRUE"
	tmplActual88MoveTrue  = "               MOVE 'TRUE' TO %sACTUAL"
	tmplElse              = "           ELSE"
	tmplActual88SetFalse  = "               SET %sACTUAL-88-VALUE TO FALSE"
	tmplActual88MoveFalse = "               MOVE 'FALSE' TO %sACTUAL"
	tmplEndIf             = "           END-IF"

	// Conditional block materializing the stored expected flag as a literal.
	tmplSetExpected88       = "           SET %sEXPECTED-88-VALUE TO %s"
	tmplExpected88If        = "           IF %sEXPECTED-88-VALUE"
	tmplExpected88MoveTrue  = "               MOVE 'TRUE' TO %sEXPECTED"
	tmplExpected88MoveFalse = "               MOVE 'FALSE' TO %sEXPECTED"

	tmplCheckExpectation = "           PERFORM %sCHECK-EXPECTATION"
	tmplPerformAfter     = "           PERFORM %sAFTER"
)

const (
	relationEQ = "EQ"
	relationGT = "GT"
	relationLT = "LT"

	compareNormal  = "NORMAL"
	compareReverse = "REVERSE"

	literalTrue  = "TRUE"
	literalFalse = "FALSE"

	areaBIndent = "           "
)
