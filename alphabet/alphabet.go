// Package alphabet parses plain-text Morse code-table definitions.
//
// The format is one entry per line: a symbol field followed by its dot/dash
// pattern, separated by whitespace. The symbol field is a single character,
// or the keyword "space" for the word-separator pseudo-symbol:
//
//	# ITU letters (excerpt)
//	A .-
//	B -...
//	space /
//
// Blank lines and lines starting with '#' are skipped. Compilation of the
// parsed entries is left to the base package; this package only feeds the
// streaming TableReader API.
package alphabet

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/telegraphy/morse"
)

// Reader streams code-table entries from a plain-text definition.
type Reader struct {
	scanner *bufio.Scanner
	line    int
}

func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Next returns the next entry as (symbol, pattern).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (rune, string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return 0, "", fmt.Errorf("line %d: expected \"symbol pattern\", got %q", r.line, line)
		}
		symbol, err := decodeSymbolField(fields[0])
		if err != nil {
			return 0, "", fmt.Errorf("line %d: %w", r.line, err)
		}
		return symbol, fields[1], nil
	}
	if err := r.scanner.Err(); err != nil {
		return 0, "", err
	}
	return 0, "", io.EOF
}

func decodeSymbolField(field string) (rune, error) {
	if strings.EqualFold(field, "space") {
		return ' ', nil
	}
	if utf8.RuneCountInString(field) != 1 {
		return 0, fmt.Errorf("symbol field %q is neither a single character nor \"space\"", field)
	}
	symbol, _ := utf8.DecodeRuneInString(field)
	return symbol, nil
}

// Load parses a code-table definition and returns a ready-to-use table.
//
// Example usage:
//
//	f, _ := os.Open("path/to/tables/itu.txt")
//	defer f.Close()
//
//	table, err := alphabet.Load("itu", f)
func Load(name string, reader io.Reader) (*morse.Table, error) {
	return morse.LoadTable(name, NewReader(reader))
}
