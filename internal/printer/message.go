package printer

import (
	"fmt"

	"github.com/mavlink-go/mavgen/internal/ir"
)

func writeMessage(g *generatedFile, m ir.Message, enums map[ir.Ident]*ir.Enum) {
	typeName := messageTypeName(string(m.Name))

	if m.Description != "" {
		g.P("// ", typeName, " ", m.Description)
	}
	g.P("type ", typeName, " struct {")
	for _, f := range allFields(m) {
		g.P("\t", fieldName(string(f.Name)), " ", fieldGoType(f))
	}
	g.P("}")
	g.P()

	g.P("const ", typeName, "MessageID uint32 = ", fmt.Sprintf("%d", m.Id))
	g.P("const ", typeName, "Name = ", fmt.Sprintf("%q", string(m.Name)))
	g.P("const ", typeName, "ExtraCRC uint8 = ", fmt.Sprintf("%d", m.ExtraCRC))
	g.P("const ", typeName, "EncodedLen = ", fmt.Sprintf("%d", m.WireSize))
	g.P()

	// Default: zero-valued primitives, the enum's default (first) entry for
	// enum-typed fields (spec.md §4.5).
	g.P("var ", typeName, "Default = ", typeName, "{")
	for _, f := range allFields(m) {
		if f.Enum == nil {
			continue
		}
		enum := enums[*f.Enum]
		defaultExpr := enumEntryConstName(string(*f.Enum), string(enum.Default().Name))
		if f.Type.Array {
			g.P("\t", fieldName(string(f.Name)), ": func() (a ", fieldGoType(f), ") {")
			g.P("\t\tfor i := range a {")
			g.P("\t\t\ta[i] = ", defaultExpr)
			g.P("\t\t}")
			g.P("\t\treturn a")
			g.P("\t}(),")
			continue
		}
		g.P("\t", fieldName(string(f.Name)), ": ", defaultExpr, ",")
	}
	g.P("}")
	g.P()

	g.P("func (m ", typeName, ") Name() string { return ", typeName, "Name }")
	g.P("func (m ", typeName, ") ID() uint32 { return ", typeName, "MessageID }")
	g.P()

	writeMessageSerialize(g, typeName, m)
	writeMessageDeserialize(g, typeName, m)
}

func allFields(m ir.Message) []ir.Field {
	out := make([]ir.Field, 0, len(m.Fields)+len(m.ExtensionFields))
	out = append(out, m.Fields...)
	out = append(out, m.ExtensionFields...)
	return out
}

func writeMessageSerialize(g *generatedFile, typeName string, m ir.Message) {
	g.P("func (m ", typeName, ") Serialize(version uint8, buf []byte) (int, error) {")
	g.P("\tif len(buf) < ", typeName, "EncodedLen {")
	g.P("\t\treturn 0, fmt.Errorf(\"", typeName, ": buffer too small: need %d, have %d\", ", typeName, "EncodedLen, len(buf))")
	g.P("\t}")
	g.P("\toff := 0")
	for _, f := range allFields(m) {
		emitEncodeField(g, f)
	}
	g.P("\tn := ", typeName, "EncodedLen")
	g.P("\tif version == 2 {")
	g.P("\t\tfor n > 0 && buf[n-1] == 0 {")
	g.P("\t\t\tn--")
	g.P("\t\t}")
	g.P("\t}")
	g.P("\treturn n, nil")
	g.P("}")
	g.P()
}

func writeMessageDeserialize(g *generatedFile, typeName string, m ir.Message) {
	g.P("func Deserialize", typeName, "(version uint8, payload []byte) (", typeName, ", error) {")
	g.P("\tm := ", typeName, "{}")
	g.P("\tif len(payload) < ", typeName, "EncodedLen {")
	g.P("\t\tpadded := make([]byte, ", typeName, "EncodedLen)")
	g.P("\t\tcopy(padded, payload)")
	g.P("\t\tpayload = padded")
	g.P("\t}")
	g.P("\toff := 0")
	for _, f := range allFields(m) {
		emitDecodeField(g, f, typeName)
	}
	g.P("\treturn m, nil")
	g.P("}")
	g.P()
}

// emitEncodeField writes the statements that serialize one field (scalar or
// array, plain or enum-typed) starting at the running `off` offset.
func emitEncodeField(g *generatedFile, f ir.Field) {
	name := fieldName(string(f.Name))
	if !f.Type.Array {
		emitEncodeScalar(g, "m."+name, f.Type.Elem, f.Enum != nil)
		return
	}
	idx := goUnexported(name) + "Idx"
	g.P("\tfor ", idx, " := 0; ", idx, " < ", fmt.Sprintf("%d", f.Type.Len), "; ", idx, "++ {")
	emitEncodeScalar(g, "m."+name+"["+idx+"]", f.Type.Elem, f.Enum != nil)
	g.P("\t}")
}

func emitEncodeScalar(g *generatedFile, expr string, p ir.Primitive, isEnum bool) {
	valueExpr := expr
	if isEnum {
		valueExpr = expr + ".Uint64()"
	}
	switch p {
	case ir.Float:
		g.P("\tbinary.LittleEndian.PutUint32(buf[off:], math.Float32bits(", valueExpr, "))")
		g.P("\toff += 4")
	case ir.Double:
		g.P("\tbinary.LittleEndian.PutUint64(buf[off:], math.Float64bits(", valueExpr, "))")
		g.P("\toff += 8")
	case ir.Char, ir.Uint8, ir.Uint8MavlinkVersion, ir.Int8:
		g.P("\tbuf[off] = byte(", valueExpr, ")")
		g.P("\toff += 1")
	case ir.Int16, ir.Uint16:
		g.P("\tbinary.LittleEndian.PutUint16(buf[off:], uint16(", valueExpr, "))")
		g.P("\toff += 2")
	case ir.Int32, ir.Uint32:
		g.P("\tbinary.LittleEndian.PutUint32(buf[off:], uint32(", valueExpr, "))")
		g.P("\toff += 4")
	case ir.Int64, ir.Uint64:
		g.P("\tbinary.LittleEndian.PutUint64(buf[off:], uint64(", valueExpr, "))")
		g.P("\toff += 8")
	}
}

// emitDecodeField writes the statements that deserialize one field into
// local m at the running `off` offset, propagating any enum-conversion
// failure as an error return (spec.md §4.5).
func emitDecodeField(g *generatedFile, f ir.Field, msgTypeName string) {
	name := fieldName(string(f.Name))
	if !f.Type.Array {
		emitDecodeScalar(g, "m."+name, f, msgTypeName)
		return
	}
	idx := goUnexported(name) + "Idx"
	g.P("\tfor ", idx, " := 0; ", idx, " < ", fmt.Sprintf("%d", f.Type.Len), "; ", idx, "++ {")
	emitDecodeScalar(g, "m."+name+"["+idx+"]", f, msgTypeName)
	g.P("\t}")
}

func emitDecodeScalar(g *generatedFile, dest string, f ir.Field, msgTypeName string) {
	p := f.Type.Elem
	if f.Enum != nil {
		rawExpr, width := decodeRawExpr(p)
		enumType := enumTypeName(string(*f.Enum))
		g.P("\t{")
		g.P("\t\traw, err := New", enumType, "(uint64(", rawExpr, "))")
		g.P("\t\tif err != nil {")
		g.P("\t\t\treturn ", msgTypeName, "{}, err")
		g.P("\t\t}")
		g.P("\t\t", dest, " = raw")
		g.P("\t\toff += ", fmt.Sprintf("%d", width))
		g.P("\t}")
		return
	}
	switch p {
	case ir.Float:
		g.P("\t", dest, " = math.Float32frombits(binary.LittleEndian.Uint32(payload[off:]))")
		g.P("\toff += 4")
	case ir.Double:
		g.P("\t", dest, " = math.Float64frombits(binary.LittleEndian.Uint64(payload[off:]))")
		g.P("\toff += 8")
	case ir.Char, ir.Uint8, ir.Uint8MavlinkVersion:
		g.P("\t", dest, " = payload[off]")
		g.P("\toff += 1")
	case ir.Int8:
		g.P("\t", dest, " = int8(payload[off])")
		g.P("\toff += 1")
	case ir.Int16:
		g.P("\t", dest, " = int16(binary.LittleEndian.Uint16(payload[off:]))")
		g.P("\toff += 2")
	case ir.Uint16:
		g.P("\t", dest, " = binary.LittleEndian.Uint16(payload[off:])")
		g.P("\toff += 2")
	case ir.Int32:
		g.P("\t", dest, " = int32(binary.LittleEndian.Uint32(payload[off:]))")
		g.P("\toff += 4")
	case ir.Uint32:
		g.P("\t", dest, " = binary.LittleEndian.Uint32(payload[off:])")
		g.P("\toff += 4")
	case ir.Int64:
		g.P("\t", dest, " = int64(binary.LittleEndian.Uint64(payload[off:]))")
		g.P("\toff += 8")
	case ir.Uint64:
		g.P("\t", dest, " = binary.LittleEndian.Uint64(payload[off:])")
		g.P("\toff += 8")
	}
}

// decodeRawExpr returns the Go expression reading the raw wire integer for
// an enum-backed primitive (always read as its natural unsigned width, per
// spec.md §4.4.5's "carrier width treated as U8/U16/U32/U64 regardless of
// sign"), plus that width in bytes.
func decodeRawExpr(p ir.Primitive) (string, int) {
	switch p {
	case ir.Int8, ir.Uint8, ir.Uint8MavlinkVersion, ir.Char:
		return "payload[off]", 1
	case ir.Int16, ir.Uint16:
		return "binary.LittleEndian.Uint16(payload[off:])", 2
	case ir.Int32, ir.Uint32:
		return "binary.LittleEndian.Uint32(payload[off:])", 4
	default:
		return "binary.LittleEndian.Uint64(payload[off:])", 8
	}
}
