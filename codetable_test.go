package morse

import (
	"errors"
	"testing"
)

func TestDefaultTableShape(t *testing.T) {
	table := DefaultTable()
	if n := len(table.SupportedSymbols()); n != 42 {
		t.Fatalf("expected 42 supported symbols, got %d", n)
	}
	if table.MaxPatternLen() != 6 {
		t.Fatalf("expected max pattern length 6, got %d", table.MaxPatternLen())
	}
}

func TestDefaultTableIsInjective(t *testing.T) {
	table := DefaultTable()
	seen := make(map[string]rune)
	for _, s := range table.SupportedSymbols() {
		pattern, err := table.Pattern(rune(s[0]))
		if err != nil {
			t.Fatalf("Pattern(%q) failed: %v", s, err)
		}
		if prev, dup := seen[pattern]; dup {
			t.Fatalf("pattern %q assigned to both %q and %q", pattern, prev, s)
		}
		seen[pattern] = rune(s[0])
	}
}

func TestPatternLookupIsCaseInsensitive(t *testing.T) {
	table := DefaultTable()
	lower, err := table.Pattern('a')
	if err != nil {
		t.Fatalf("Pattern('a') failed: %v", err)
	}
	upper, err := table.Pattern('A')
	if err != nil {
		t.Fatalf("Pattern('A') failed: %v", err)
	}
	if lower != upper || lower != ".-" {
		t.Fatalf("expected .- for both cases, got %q and %q", lower, upper)
	}
}

func TestUnknownSymbolLookup(t *testing.T) {
	_, err := DefaultTable().Pattern('ü')
	if !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("expected ErrUnknownSymbol, got %v", err)
	}
}

func TestUnknownPatternLookup(t *testing.T) {
	_, err := DefaultTable().Symbol(".......")
	if !errors.Is(err, ErrUnknownPattern) {
		t.Fatalf("expected ErrUnknownPattern, got %v", err)
	}
}

func TestWordSeparatorResolvesToSpace(t *testing.T) {
	symbol, err := DefaultTable().Symbol(WordSeparator)
	if err != nil {
		t.Fatalf("Symbol(%q) failed: %v", WordSeparator, err)
	}
	if symbol != ' ' {
		t.Fatalf("expected space for %q, got %q", WordSeparator, symbol)
	}
}

func TestLoadTableRejectsDuplicatePattern(t *testing.T) {
	_, err := LoadTable("dup", &sliceTableReader{entries: []Entry{
		{'A', ".-"},
		{'B', ".-"},
	}})
	if err == nil {
		t.Fatalf("expected duplicate-pattern error")
	}
}

func TestLoadTableRejectsDuplicateSymbol(t *testing.T) {
	_, err := LoadTable("dup", &sliceTableReader{entries: []Entry{
		{'A', ".-"},
		{'a', "-..."},
	}})
	if err == nil {
		t.Fatalf("expected duplicate-symbol error after case folding")
	}
}

func TestLoadTableRejectsForeignCharacters(t *testing.T) {
	_, err := LoadTable("bad", &sliceTableReader{entries: []Entry{
		{'A', ".x-"},
	}})
	if err == nil {
		t.Fatalf("expected charset error")
	}
}

func TestLoadTableRejectsMisboundSpace(t *testing.T) {
	_, err := LoadTable("bad", &sliceTableReader{entries: []Entry{
		{' ', "...."},
	}})
	if err == nil {
		t.Fatalf("expected word-separator binding error")
	}
}

func TestPrefixIndexOnFreshTable(t *testing.T) {
	table, err := LoadTable("toy", &sliceTableReader{entries: []Entry{
		{'E', "."},
		{'A', ".-"},
		{'W', ".--"},
		{' ', "/"},
	}})
	if err != nil {
		t.Fatal(err)
	}
	if !table.hasPrefix(".") || !table.hasPrefix(".-") {
		t.Fatalf("registered pattern prefixes should be live")
	}
	if table.hasPrefix("-") {
		t.Fatalf("- opens no pattern in the toy table")
	}
	// The word separator stays out of the prefix index.
	if table.hasPrefix("/") {
		t.Fatalf("the word separator must not be indexed")
	}
}

func TestContainsAndPrefixIndex(t *testing.T) {
	table := DefaultTable()
	if !table.Contains("...") {
		t.Fatalf("expected ... to be registered")
	}
	if table.Contains("......") {
		t.Fatalf("...... should not be registered")
	}
	if !table.hasPrefix(".-.-") {
		t.Fatalf(".-.- prefixes .-.-.- and should be a live prefix")
	}
	if table.hasPrefix("-------") {
		t.Fatalf("------- prefixes nothing and should be a dead end")
	}
}
