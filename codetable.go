package morse

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/derekparker/trie"
)

// Lookup failures. Encode deliberately swallows ErrUnknownSymbol (unsupported
// characters are dropped); Decode reports ErrUnknownPattern only through an
// empty result, never as a returned error.
var (
	ErrUnknownSymbol  = errors.New("symbol not in code table")
	ErrUnknownPattern = errors.New("pattern not in code table")
)

// WordSeparator is the pseudo-pattern representing the space symbol in
// delimited Morse text. It is out-of-band: it never occurs inside a pattern.
const WordSeparator = "/"

// Entry is one symbol/pattern pair of a code table.
//
// Pattern is a non-empty string over the alphabet {'.', '-'}, except for the
// space symbol, whose pattern is WordSeparator.
type Entry struct {
	Symbol  rune
	Pattern string
}

// TableReader yields code-table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type TableReader interface {
	Next() (symbol rune, pattern string, err error)
}

// Table is an immutable Morse code table.
//
// A table holds the forward mapping Symbol->Pattern, its inverse, and a
// prefix index over the pattern set. The inverse exists because the mapping
// is injective: no two symbols share a pattern, which is what makes decoding
// well-defined per segment. Once built, a Table is never mutated and may be
// shared by any number of goroutines without synchronization.
type Table struct {
	forward    map[rune]string
	inverse    map[string]rune
	prefixes   *trie.Trie // dot/dash patterns only, for pruning unspaced decode
	symbols    []rune     // insertion order, drives SupportedSymbols
	maxPattern int        // longest dot/dash pattern, bounds candidate scans
	Identifier string     // identifies the table
}

// LoadTable compiles a code table from a streaming, format-agnostic source.
//
// Format parsing is intentionally outside the base package. Use adapters
// like package alphabet to parse concrete formats and feed this API.
//
// Symbols are normalized to upper case. An entry whose pattern contains a
// character outside {'.', '-'} is rejected, unless the symbol is the space
// character, which must map to WordSeparator. Duplicate symbols and
// duplicate patterns are rejected as well.
func LoadTable(name string, reader TableReader) (*Table, error) {
	t := &Table{
		forward:    make(map[rune]string),
		inverse:    make(map[string]rune),
		prefixes:   trie.New(),
		Identifier: fmt.Sprintf("code table: %s", name),
	}
	for {
		symbol, pattern, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if err := t.add(symbol, pattern); err != nil {
			return nil, err
		}
	}
	tracer().Infof("code table %q: %d symbols, max pattern length %d",
		name, len(t.symbols), t.maxPattern)
	return t, nil
}

func (t *Table) add(symbol rune, pattern string) error {
	symbol = unicode.ToUpper(symbol)
	if pattern == "" {
		return fmt.Errorf("empty pattern for symbol %q", symbol)
	}
	if symbol == ' ' {
		if pattern != WordSeparator {
			return fmt.Errorf("space symbol must map to %q, got %q", WordSeparator, pattern)
		}
	} else if strings.Trim(pattern, ".-") != "" {
		return fmt.Errorf("pattern %q for symbol %q contains characters outside {., -}", pattern, symbol)
	}
	if _, dup := t.forward[symbol]; dup {
		return fmt.Errorf("duplicate symbol %q", symbol)
	}
	if prev, dup := t.inverse[pattern]; dup {
		return fmt.Errorf("pattern %q already assigned to symbol %q", pattern, prev)
	}
	t.forward[symbol] = pattern
	t.inverse[pattern] = symbol
	t.symbols = append(t.symbols, symbol)
	if symbol != ' ' {
		t.prefixes.Add(pattern, symbol)
		if len(pattern) > t.maxPattern {
			t.maxPattern = len(pattern)
		}
	}
	return nil
}

// Pattern returns the Morse pattern for a symbol. Symbols are matched
// case-insensitively. It fails with ErrUnknownSymbol for symbols outside
// the table.
func (t *Table) Pattern(symbol rune) (string, error) {
	pattern, ok := t.forward[unicode.ToUpper(symbol)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownSymbol, symbol)
	}
	return pattern, nil
}

// Symbol returns the symbol for a Morse pattern (or for WordSeparator, the
// space character). It fails with ErrUnknownPattern for unregistered
// patterns.
func (t *Table) Symbol(pattern string) (rune, error) {
	symbol, ok := t.inverse[pattern]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownPattern, pattern)
	}
	return symbol, nil
}

// Contains reports whether pattern is registered in the table.
func (t *Table) Contains(pattern string) bool {
	_, ok := t.inverse[pattern]
	return ok
}

// MaxPatternLen returns the length of the longest dot/dash pattern in the
// table. The unspaced decoder never examines candidates longer than this.
func (t *Table) MaxPatternLen() int {
	return t.maxPattern
}

// SupportedSymbols returns all encodable symbols in table order, each as a
// one-character string.
func (t *Table) SupportedSymbols() []string {
	symbols := make([]string, len(t.symbols))
	for i, symbol := range t.symbols {
		symbols[i] = string(symbol)
	}
	return symbols
}

// hasPrefix reports whether any registered dot/dash pattern starts with s.
// A false return ends the decoder's candidate scan at the current position.
func (t *Table) hasPrefix(s string) bool {
	return t.prefixes.HasKeysWithPrefix(s)
}

// sliceTableReader feeds in-memory entries through the TableReader API.
type sliceTableReader struct {
	entries []Entry
	index   int
}

func (r *sliceTableReader) Next() (rune, string, error) {
	if r.index >= len(r.entries) {
		return 0, "", io.EOF
	}
	entry := r.entries[r.index]
	r.index++
	return entry.Symbol, entry.Pattern, nil
}

// ituEntries is the default table: ITU letters and digits, the space
// pseudo-symbol, and the common punctuation marks.
var ituEntries = []Entry{
	{'A', ".-"}, {'B', "-..."}, {'C', "-.-."}, {'D', "-.."}, {'E', "."},
	{'F', "..-."}, {'G', "--."}, {'H', "...."}, {'I', ".."}, {'J', ".---"},
	{'K', "-.-"}, {'L', ".-.."}, {'M', "--"}, {'N', "-."}, {'O', "---"},
	{'P', ".--."}, {'Q', "--.-"}, {'R', ".-."}, {'S', "..."}, {'T', "-"},
	{'U', "..-"}, {'V', "...-"}, {'W', ".--"}, {'X', "-..-"}, {'Y', "-.--"},
	{'Z', "--.."},
	{'1', ".----"}, {'2', "..---"}, {'3', "...--"}, {'4', "....-"},
	{'5', "....."}, {'6', "-...."}, {'7', "--..."}, {'8', "---.."},
	{'9', "----."}, {'0', "-----"},
	{' ', "/"},
	{'.', ".-.-.-"}, {',', "--..--"}, {'?', "..--.."}, {'!', "-.-.--"},
	{'\'', ".----."},
}

// DefaultTable returns the process-wide ITU code table. It is built once at
// startup and shared read-only for the process lifetime.
func DefaultTable() *Table {
	return defaultTable
}

var defaultTable = mustLoadDefaultTable()

func mustLoadDefaultTable() *Table {
	t, err := LoadTable("itu", &sliceTableReader{entries: ituEntries})
	if err != nil {
		panic(fmt.Sprintf("morse: building default code table: %v", err))
	}
	return t
}
