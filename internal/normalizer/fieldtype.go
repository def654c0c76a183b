package normalizer

import (
	"strconv"
	"strings"

	"github.com/mavlink-go/mavgen/internal/ir"
)

// parseFieldType parses a raw XML type string: a bare primitive spelling
// (e.g. "uint8_t") or "<primitive>[<n>]" where n is an unsigned 8-bit array
// count (spec.md §4.4.5).
func parseFieldType(raw string) (ir.FieldType, bool) {
	spelling := raw
	isArray := false
	var length uint64

	if i := strings.IndexByte(raw, '['); i >= 0 {
		if !strings.HasSuffix(raw, "]") {
			return ir.FieldType{}, false
		}
		spelling = raw[:i]
		n, err := strconv.ParseUint(raw[i+1:len(raw)-1], 10, 8)
		if err != nil {
			return ir.FieldType{}, false
		}
		isArray = true
		length = n
	}

	p, ok := ir.PrimitiveFromXML(spelling)
	if !ok {
		return ir.FieldType{}, false
	}
	return ir.FieldType{Elem: p, Array: isArray, Len: uint8(length)}, true
}
