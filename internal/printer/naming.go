package printer

import (
	"go/token"
	"strings"
	"unicode"
)

// goIdent converts a MAVLink snake_case/UPPER_SNAKE identifier into an
// exported Go identifier, generalizing both the Rust generator's
// naming.rs case-conversion rules and the teacher's own
// protogen/names.go camelCase/cleanGoName helpers: split on '_', keep
// segments that are already all-uppercase as they are, and for every other
// segment upper-case its first letter and lower-case the remainder (so
// "GPS_RAW_INT" becomes "GPSRAWINT" and "gps_fix" becomes "GpsFix").
func goIdent(s string) string {
	segments := strings.Split(s, "_")
	var b strings.Builder
	for _, seg := range segments {
		if seg == "" {
			continue
		}
		if isAllUpper(seg) {
			b.WriteString(seg)
			continue
		}
		b.WriteString(strings.ToUpper(seg[:1]))
		b.WriteString(strings.ToLower(seg[1:]))
	}
	out := b.String()
	if out == "" {
		return "_"
	}
	r := rune(out[0])
	if !unicode.IsLetter(r) {
		out = "X" + out
	}
	if token.Lookup(out).IsKeyword() {
		out = out + "_"
	}
	return out
}

func isAllUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsLetter(r) {
			hasLetter = true
		}
	}
	return hasLetter
}

// goUnexported lower-cases the first rune of an exported Go identifier,
// used for local variable names derived from field/message names.
func goUnexported(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// enumTypeName is the Go type name for an IR enum.
func enumTypeName(name string) string { return goIdent(name) }

// enumEntryConstName is the Go constant name for one entry of enum e. MAVLink
// XML entry names repeat their enclosing enum's name as a prefix (e.g.
// "MAV_STATE_ACTIVE" in enum "MAV_STATE"); that prefix is stripped before
// conversion so the constant reads MAVSTATE_ACTIVE rather than the
// doubled-up MAVSTATE_MAVSTATEACTIVE, matching how hand-written MAVLink Go
// bindings name their enum constants.
func enumEntryConstName(enumName, entryName string) string {
	suffix := entryName
	if prefix := enumName + "_"; strings.HasPrefix(entryName, prefix) {
		suffix = entryName[len(prefix):]
	}
	return enumTypeName(enumName) + "_" + goIdent(suffix)
}

// messageTypeName is the Go struct name for an IR message.
func messageTypeName(name string) string { return goIdent(name) }

// fieldName is the Go exported field name for an IR field.
func fieldName(name string) string { return goIdent(name) }
