// Package cobol writes generated source in fixed-format COBOL: 80-column
// records, statements confined to columns 1-72, a hyphen in column 7 marking
// a continuation line.
package cobol

import (
	"fmt"
	"io"
)

const (
	// LineLength is the fixed record length of generated source lines.
	LineLength = 80
	// StatementAreaEnd is the last column available to a statement before
	// it must continue on the next line.
	StatementAreaEnd = 72
	// continuationPrefix reopens a split literal: six spaces, the hyphen in
	// column 7, and a quote resuming the literal text.
	continuationPrefix = `      -    "`
)

// Writer emits fixed-length source records to an underlying sink. Lifecycle
// of the sink belongs to the caller.
type Writer struct {
	out io.Writer
}

func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// FixedLength pads a line with trailing spaces to the full record length, or
// truncates one that is too long, and terminates it with a newline.
func FixedLength(line string) string {
	if len(line) > LineLength {
		line = line[:LineLength]
	}
	return fmt.Sprintf("%-*s\n", LineLength, line)
}

// WriteLine writes one fixed-length record.
func (w *Writer) WriteLine(line string) error {
	if _, err := io.WriteString(w.out, FixedLength(line)); err != nil {
		return fmt.Errorf("writing generated source: %w", err)
	}
	return nil
}

// WriteStatement writes a statement line, splitting it at the statement area
// boundary when the text is too long. The remainder goes on exactly one
// continuation line with the column-7 hyphen and a reopening quote. Literals
// needing more than one continuation line are not supported.
func (w *Writer) WriteStatement(line string) error {
	if len(line) <= StatementAreaEnd {
		return w.WriteLine(line)
	}
	if err := w.WriteLine(line[:StatementAreaEnd]); err != nil {
		return err
	}
	return w.WriteLine(continuationPrefix + line[StatementAreaEnd:])
}
