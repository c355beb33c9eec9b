// Package lexer turns test suite lines into tokens. Tokenize handles one
// line; Scanner pulls lines from a reader on demand so the translator never
// holds more than the current line's tokens in memory.
package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cobcheck/cobcheck/internal/generator/token"
)

// Tokenize splits one source line into ordered tokens. Quoted literals keep
// their delimiters and embedded spaces; the phrases "TO BE" and "TO EQUAL"
// collapse into single tokens. Comment lines (trimmed content starting with
// "*") and blank lines yield no tokens.
func Tokenize(line string) []token.Token {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "*") {
		return nil
	}

	var tokens []token.Token
	i := 0
	for i < len(trimmed) {
		if trimmed[i] == ' ' || trimmed[i] == '\t' {
			i++
			continue
		}
		if trimmed[i] == '"' || trimmed[i] == '\'' {
			lit, next := readQuoted(trimmed, i)
			tokens = append(tokens, token.Token{Text: lit, Quoted: true})
			i = next
			continue
		}
		word, next := readWord(trimmed, i)
		i = next
		// Merge the two-word phrases the dialect treats as single tokens.
		if strings.EqualFold(word, "TO") {
			follow, followEnd := peekWord(trimmed, i)
			if strings.EqualFold(follow, "BE") || strings.EqualFold(follow, "EQUAL") {
				word = word + " " + follow
				i = followEnd
			}
		}
		tokens = append(tokens, token.Token{Text: word})
	}
	return tokens
}

// readQuoted consumes a literal from the opening delimiter through the
// matching closing delimiter, both kept in the result. An unterminated
// literal runs to end of line.
func readQuoted(s string, start int) (string, int) {
	delim := s[start]
	for i := start + 1; i < len(s); i++ {
		if s[i] == delim {
			return s[start : i+1], i + 1
		}
	}
	return s[start:], len(s)
}

func readWord(s string, start int) (string, int) {
	i := start
	for i < len(s) && s[i] != ' ' && s[i] != '\t' {
		i++
	}
	return s[start:i], i
}

// peekWord returns the next word after position i without a preceding quote,
// plus the index just past it, or "" when the line is exhausted.
func peekWord(s string, i int) (string, int) {
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	if i >= len(s) || s[i] == '"' || s[i] == '\'' {
		return "", i
	}
	return readWord(s, i)
}

// Scanner hands out tokens one at a time, reading further source lines only
// when the current line's tokens are exhausted.
type Scanner struct {
	lines *bufio.Scanner
	queue []token.Token
}

func NewScanner(r io.Reader) *Scanner {
	return &Scanner{lines: bufio.NewScanner(r)}
}

// Next returns the next token. ok is false at end of input. A failed read of
// the underlying source is reported as an error distinct from end of input.
func (s *Scanner) Next() (tok token.Token, ok bool, err error) {
	for len(s.queue) == 0 {
		if !s.lines.Scan() {
			if readErr := s.lines.Err(); readErr != nil {
				return token.Token{}, false, fmt.Errorf("reading test suite: %w", readErr)
			}
			return token.Token{}, false, nil
		}
		s.queue = Tokenize(s.lines.Text())
	}
	tok = s.queue[0]
	s.queue = s.queue[1:]
	return tok, true, nil
}
