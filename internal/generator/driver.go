// Package generator orchestrates one translation run: open the test suite,
// set up the output file, and drive the translator to completion.
package generator

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cobcheck/cobcheck/internal/config"
	"github.com/cobcheck/cobcheck/internal/generator/cobol"
	"github.com/cobcheck/cobcheck/internal/generator/fields"
	"github.com/cobcheck/cobcheck/internal/generator/lexer"
	"github.com/cobcheck/cobcheck/internal/generator/translator"
	"github.com/cobcheck/cobcheck/internal/messages"
)

// SuiteExtension is the file extension test suites must carry.
const SuiteExtension = ".cut"

type Options struct {
	Config config.Config
	// Fields describes the data types of the program under test's items.
	// A nil store treats every field as alphanumeric.
	Fields *fields.Store
}

type Result struct {
	OutFile   string
	SuiteName string
	CaseCount int
}

// Run translates one test suite file into generated COBOL test code.
func Run(srcPath string, opts Options) (Result, error) {
	msgs := messages.NewCatalog(opts.Config.Locale)

	if err := validateExtension(srcPath); err != nil {
		return Result{}, err
	}

	src, err := os.Open(srcPath)
	if err != nil {
		return Result{}, errors.New(msgs.Get("ERR012", srcPath, err))
	}
	defer src.Close()

	outFile, out, err := createOutput(srcPath, opts.Config.OutDir)
	if err != nil {
		return Result{}, errors.New(msgs.Get("ERR013", outFile, err))
	}
	defer out.Close()

	store := opts.Fields
	if store == nil {
		store = fields.NewStore()
	}

	sink := cobol.NewWriter(out)
	tr := translator.New(opts.Config.Prefix)
	if err := tr.InsertInitialization(sink); err != nil {
		return Result{}, err
	}
	if err := tr.Translate(lexer.NewScanner(src), sink, store); err != nil {
		switch {
		case errors.Is(err, translator.ErrEmptySuite):
			return Result{}, fmt.Errorf("%s: %w", msgs.Get("ERR010"), err)
		default:
			return Result{}, errors.New(msgs.Get("ERR011", err))
		}
	}

	return Result{
		OutFile:   outFile,
		SuiteName: tr.SuiteName(),
		CaseCount: tr.CaseCount(),
	}, nil
}

func validateExtension(path string) error {
	if filepath.Ext(path) != SuiteExtension {
		return fmt.Errorf("test suite must have %s extension", SuiteExtension)
	}
	return nil
}

func createOutput(srcPath, outDir string) (string, *os.File, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return "", nil, err
	}
	base := strings.TrimSuffix(filepath.Base(srcPath), SuiteExtension)
	outFile := filepath.Join(outDir, base+".cbl")
	f, err := os.Create(outFile)
	return outFile, f, err
}
