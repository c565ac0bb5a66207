package alphabet

import (
	"strings"
	"testing"

	"github.com/telegraphy/morse"
)

const toyTable = `
# toy alphabet for tests
A .-
E .
T -
space /
`

func TestLoadToyTable(t *testing.T) {
	table, err := Load("toy", strings.NewReader(toyTable))
	if err != nil {
		t.Fatal(err)
	}
	tr := morse.NewTranslator(table)
	// 'i' and 'm' are not in the toy table and must be dropped.
	if got := tr.Encode("tea time"); got != "- . .- / - ." {
		t.Fatalf("unexpected encoding: %q", got)
	}
}

func TestLoadSkipsCommentsAndBlankLines(t *testing.T) {
	table, err := Load("toy", strings.NewReader("# only a comment\n\nE .\n"))
	if err != nil {
		t.Fatal(err)
	}
	if n := len(table.SupportedSymbols()); n != 1 {
		t.Fatalf("expected 1 symbol, got %d", n)
	}
}

func TestLoadRejectsMalformedLine(t *testing.T) {
	if _, err := Load("bad", strings.NewReader("A .- extra\n")); err == nil {
		t.Fatalf("expected error for a three-field line")
	}
	if _, err := Load("bad", strings.NewReader("AB .-\n")); err == nil {
		t.Fatalf("expected error for a multi-character symbol field")
	}
}

func TestLoadRejectsDuplicatePattern(t *testing.T) {
	if _, err := Load("bad", strings.NewReader("A .-\nB .-\n")); err == nil {
		t.Fatalf("expected duplicate-pattern error from table compilation")
	}
}

func TestSpaceKeyword(t *testing.T) {
	table, err := Load("toy", strings.NewReader("E .\nspace /\n"))
	if err != nil {
		t.Fatal(err)
	}
	symbol, err := table.Symbol(morse.WordSeparator)
	if err != nil {
		t.Fatal(err)
	}
	if symbol != ' ' {
		t.Fatalf("expected space for the word separator, got %q", symbol)
	}
}
