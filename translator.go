package morse

import (
	"strings"
)

// Translator translates between English text and Morse code using one code
// table. Translation calls are stateless and allocate only local state, so a
// single Translator is safe for concurrent use.
type Translator struct {
	table *Table
}

// NewTranslator returns a Translator over the given table.
// A nil table selects the default ITU table.
func NewTranslator(table *Table) *Translator {
	if table == nil {
		table = defaultTable
	}
	return &Translator{table: table}
}

// Table returns the code table this Translator reads from.
func (tr *Translator) Table() *Table {
	return tr.table
}

// Encode converts English text to Morse code, one pattern per symbol, joined
// by single spaces. Space encodes as "/". Example:
//
//	"HELLO WORLD" => ".... . .-.. .-.. --- / .-- --- .-. .-.. -.."
//
// Unsupported characters are dropped silently rather than reported; since
// they are dropped before joining, they never leave a doubled or dangling
// separator behind. Empty input yields empty output.
func (tr *Translator) Encode(text string) string {
	if text == "" {
		return ""
	}
	units := make([]string, 0, len(text))
	for _, symbol := range strings.ToUpper(text) {
		pattern, ok := tr.table.forward[symbol]
		if !ok {
			continue
		}
		units = append(units, pattern)
	}
	return strings.Join(units, " ")
}

// Decode converts Morse code to English and returns every reading of the
// input.
//
// Delimited input (interior spaces present) is unambiguous: the result holds
// exactly one string, or none when a token is not a registered pattern.
// Unspaced input — a bare run of dots and dashes — is segmented into valid
// patterns in every possible way, depth-first with the shortest candidate
// tried first at each position, so the result order is deterministic.
// Distinct segmentations that read the same are reported once, first seen
// first kept.
//
// The empty string decodes to a singleton result holding the empty string;
// input with no valid reading decodes to an empty result. Decode never
// fails with an error.
func (tr *Translator) Decode(code string) []string {
	code = strings.TrimSpace(code)
	if code == "" {
		return []string{""}
	}
	if strings.ContainsRune(code, ' ') {
		return tr.decodeDelimited(code)
	}
	return dedupe(tr.decodeUnspaced(code, 0))
}

// decodeDelimited folds space-separated tokens through the inverse mapping.
// Patterns never contain a space, so the split is unambiguous and the fold
// produces at most one reading.
func (tr *Translator) decodeDelimited(code string) []string {
	var text strings.Builder
	for _, token := range strings.Fields(code) {
		symbol, err := tr.table.Symbol(token)
		if err != nil {
			tracer().Debugf("delimited decode dead ends at token %q", token)
			return nil
		}
		text.WriteRune(symbol)
	}
	return []string{text.String()}
}

// decodeUnspaced enumerates all segmentations of code[at:] into registered
// patterns. Each recursive call owns and returns its own result slice, which
// the caller merges; no shared accumulator is involved. Candidates stop at
// the longest registered pattern, and earlier than that as soon as the
// candidate is no prefix of any pattern. The space pseudo-symbol has no
// dot/dash pattern and cannot occur in a segmentation.
func (tr *Translator) decodeUnspaced(code string, at int) []string {
	if at == len(code) {
		return []string{""}
	}
	var readings []string
	limit := min(len(code), at+tr.table.maxPattern)
	for end := at + 1; end <= limit; end++ {
		candidate := code[at:end]
		if symbol, ok := tr.table.inverse[candidate]; ok && symbol != ' ' {
			for _, rest := range tr.decodeUnspaced(code, end) {
				readings = append(readings, string(symbol)+rest)
			}
		}
		if !tr.table.hasPrefix(candidate) {
			break
		}
	}
	return readings
}

// IsValidMorse reports whether the trimmed input consists solely of Morse
// lexemes: dots, dashes, spaces and word separators. This is a lexical
// check only — a lexically valid string may still have no valid reading.
func (tr *Translator) IsValidMorse(code string) bool {
	for _, r := range strings.TrimSpace(code) {
		switch r {
		case '.', '-', ' ', '/':
		default:
			return false
		}
	}
	return true
}

// dedupe removes duplicate readings, keeping the first occurrence of each
// and preserving order.
func dedupe(readings []string) []string {
	if len(readings) < 2 {
		return readings
	}
	seen := make(map[string]struct{}, len(readings))
	unique := make([]string, 0, len(readings))
	for _, r := range readings {
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

var defaultTranslator = NewTranslator(nil)

// Encode translates text with the default ITU table.
func Encode(text string) string {
	return defaultTranslator.Encode(text)
}

// Decode translates Morse code with the default ITU table.
func Decode(code string) []string {
	return defaultTranslator.Decode(code)
}

// IsValidMorse checks Morse lexemes against the default ITU table rules.
func IsValidMorse(code string) bool {
	return defaultTranslator.IsValidMorse(code)
}

// SupportedSymbols lists the symbols the default ITU table can encode.
func SupportedSymbols() []string {
	return defaultTable.SupportedSymbols()
}
