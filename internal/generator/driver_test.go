package generator

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cobcheck/cobcheck/internal/config"
	"github.com/cobcheck/cobcheck/internal/generator/fields"
)

func testConfig(outDir string) config.Config {
	cfg := config.Default()
	cfg.OutDir = outDir
	return cfg
}

func TestRunGeneratesTestProgram(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "accounts.cut")
	suite := strings.Join([]string{
		`TESTSUITE "Accounts"`,
		`TESTCASE "It adds a deposit"`,
		`MOVE 100 TO WS-BALANCE`,
		`EXPECT WS-BALANCE TO BE 100`,
	}, "\n")
	if err := os.WriteFile(srcPath, []byte(suite), 0o644); err != nil {
		t.Fatal(err)
	}

	store := fields.NewStore()
	store.Set("WS-BALANCE", fields.PackedDecimal)

	result, err := Run(srcPath, Options{Config: testConfig(filepath.Join(dir, "out")), Fields: store})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.CaseCount != 1 {
		t.Errorf("CaseCount = %d, want 1", result.CaseCount)
	}
	if result.SuiteName != `"Accounts"` {
		t.Errorf("SuiteName = %q", result.SuiteName)
	}
	if filepath.Base(result.OutFile) != "accounts.cbl" {
		t.Errorf("OutFile = %q, want accounts.cbl", result.OutFile)
	}

	content, err := os.ReadFile(result.OutFile)
	if err != nil {
		t.Fatal(err)
	}
	out := string(content)
	for _, want := range []string{
		"PERFORM UT-INITIALIZE",
		`DISPLAY "TESTSUITE:"`,
		"MOVE 100 TO WS-BALANCE",
		"SET UT-NUMERIC-COMPARE TO TRUE",
		"PERFORM UT-CHECK-EXPECTATION",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}

	// Every record is fixed length.
	for i, line := range strings.Split(strings.TrimSuffix(out, "\n"), "\n") {
		if len(line) != 80 {
			t.Errorf("record %d has length %d, want 80", i, len(line))
		}
	}
}

func TestRunRejectsWrongExtension(t *testing.T) {
	if _, err := Run("suite.txt", Options{Config: config.Default()}); err == nil {
		t.Fatal("expected extension error")
	}
}

func TestRunEmptySuite(t *testing.T) {
	dir := t.TempDir()
	srcPath := filepath.Join(dir, "empty.cut")
	if err := os.WriteFile(srcPath, []byte("* nothing here\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Run(srcPath, Options{Config: testConfig(filepath.Join(dir, "out"))})
	if err == nil || !strings.Contains(err.Error(), "ERR010") {
		t.Errorf("expected ERR010 for empty suite, got %v", err)
	}
}

func TestRunMissingSuite(t *testing.T) {
	dir := t.TempDir()
	_, err := Run(filepath.Join(dir, "absent.cut"), Options{Config: testConfig(filepath.Join(dir, "out"))})
	if err == nil || !strings.Contains(err.Error(), "ERR012") {
		t.Errorf("expected ERR012 for missing suite, got %v", err)
	}
}
