package printer

import (
	"fmt"

	"github.com/mavlink-go/mavgen/internal/ir"
)

// goStorageType is the Go unsigned integer type backing an enum of width w,
// satisfying spec.md §4.5's "in-memory width equals the enum's minimum
// integer width".
func goStorageType(w ir.UIntWidth) string {
	switch w {
	case ir.Width8:
		return "uint8"
	case ir.Width16:
		return "uint16"
	case ir.Width32:
		return "uint32"
	default:
		return "uint64"
	}
}

func writeEnum(g *generatedFile, e ir.Enum) {
	typeName := enumTypeName(string(e.Name))
	storage := goStorageType(e.MinWidth)

	if e.Description != "" {
		g.P("// ", typeName, " ", e.Description)
	}
	g.P("type ", typeName, " ", storage)
	g.P()

	g.P("const (")
	for _, entry := range e.Entries {
		constName := enumEntryConstName(string(e.Name), string(entry.Name))
		if entry.Description != "" {
			g.P("\t// ", constName, " ", entry.Description)
		}
		g.P("\t", constName, " ", typeName, " = ", fmt.Sprintf("%d", entry.Value))
	}
	g.P(")")
	g.P()

	// Default value: the first entry in IR order (spec.md §8 property 6).
	defaultConst := typeName + "Default"
	g.P("const ", defaultConst, " = ", enumEntryConstName(string(e.Name), string(e.Default().Name)))
	g.P()

	// Wire-integer conversion: a tagged failure for unknown values (plain
	// enums) or unknown flag bits (bitmask enums).
	newFn := "New" + typeName
	unknownErr := typeName + "UnknownValueError"
	g.P("type ", unknownErr, " struct { Value uint64 }")
	g.P()
	g.P("func (e *", unknownErr, ") Error() string {")
	if e.Bitmask {
		g.P("\treturn fmt.Sprintf(\"", typeName, ": unknown flag bits 0x%x\", e.Value)")
	} else {
		g.P("\treturn fmt.Sprintf(\"", typeName, ": unknown value %d\", e.Value)")
	}
	g.P("}")
	g.P()

	g.P("func ", newFn, "(v uint64) (", typeName, ", error) {")
	if e.Bitmask {
		var mask uint64
		for _, entry := range e.Entries {
			mask |= entry.Value
		}
		g.P("\tconst knownBits uint64 = ", fmt.Sprintf("0x%x", mask))
		g.P("\tif v&^knownBits != 0 {")
		g.P("\t\treturn 0, &", unknownErr, "{Value: v &^ knownBits}")
		g.P("\t}")
	} else {
		g.P("\tswitch v {")
		for _, entry := range e.Entries {
			g.P("\tcase ", fmt.Sprintf("%d", entry.Value), ":")
		}
		g.P("\tdefault:")
		g.P("\t\treturn 0, &", unknownErr, "{Value: v}")
		g.P("\t}")
	}
	g.P("\treturn ", typeName, "(v), nil")
	g.P("}")
	g.P()

	g.P("func (e ", typeName, ") Uint64() uint64 { return uint64(e) }")
	g.P()
}
