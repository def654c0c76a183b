package normalizer

import (
	"strings"
	"unicode"

	"github.com/mavlink-go/mavgen/internal/ir"
)

// reservedWords is the fixed superset of target-language reserved words an
// identifier must avoid (spec.md GLOSSARY, "Reserved identifiers"), chosen
// to be safe across the likely target languages rather than any single one.
var reservedWords = map[string]bool{}

func init() {
	for _, w := range strings.Fields(
		`abstract boolean break byte case catch char class const continue
		 debugger default delete do double else enum export extends final
		 finally float for function goto if implements import in instanceof
		 int interface let long native new package private protected public
		 return short static super switch synchronized this throw transient
		 try typeof var void volatile while with yield await`) {
		reservedWords[w] = true
	}
}

// isLegalIdent implements spec.md §4.4.1: non-empty, not the single
// underscore, does not start with an ASCII digit, contains no whitespace,
// and (case-insensitively) is not a reserved word.
func isLegalIdent(s string) bool {
	if s == "" || s == "_" {
		return false
	}
	if s[0] >= '0' && s[0] <= '9' {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) {
			return false
		}
	}
	if reservedWords[strings.ToLower(s)] {
		return false
	}
	return true
}

// parseIdent validates s as an Ident, reporting ok=false on failure.
func parseIdent(s string) (ir.Ident, bool) {
	if !isLegalIdent(s) {
		return "", false
	}
	return ir.Ident(s), true
}
