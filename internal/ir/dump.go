package ir

import (
	"fmt"
	"strings"
)

// Dump renders m as human-readable text: enum widths, message wire sizes,
// extra-crc values and field order, independent of any target-language
// printer. This is the --dump-ir driver flag's payload, the same role
// mavlink-dump plays for the original Rust generator: a way to inspect the
// compiler's output without reading generated source.
func Dump(m *MavlinkModule) string {
	var b strings.Builder
	fmt.Fprintf(&b, "module %s\n", m.Path)
	if m.Version != nil {
		fmt.Fprintf(&b, "version: %d\n", *m.Version)
	}
	if m.Dialect != nil {
		fmt.Fprintf(&b, "dialect: %d\n", *m.Dialect)
	}

	for _, e := range m.Enums {
		kind := "enum"
		if e.Bitmask {
			kind = "bitmask"
		}
		fmt.Fprintf(&b, "\n%s %s (width=%d)\n", kind, e.Name, e.MinWidth)
		for _, entry := range e.Entries {
			fmt.Fprintf(&b, "  %s = %d\n", entry.Name, entry.Value)
		}
	}

	for _, msg := range m.Messages {
		fmt.Fprintf(&b, "\nmessage %s (id=%d, wire_size=%d, extra_crc=%d)\n", msg.Name, msg.Id, msg.WireSize, msg.ExtraCRC)
		for _, f := range msg.Fields {
			dumpField(&b, f)
		}
		if len(msg.ExtensionFields) > 0 {
			fmt.Fprintf(&b, "  -- extensions --\n")
			for _, f := range msg.ExtensionFields {
				dumpField(&b, f)
			}
		}
	}
	return b.String()
}

func dumpField(b *strings.Builder, f Field) {
	typ := f.XMLType
	enumSuffix := ""
	if f.Enum != nil {
		enumSuffix = fmt.Sprintf(" enum=%s", *f.Enum)
	}
	fmt.Fprintf(b, "  %s %s%s\n", typ, f.Name, enumSuffix)
}
