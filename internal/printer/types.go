package printer

import (
	"strconv"

	"github.com/mavlink-go/mavgen/internal/ir"
)

// primGoType is the Go scalar type backing an IR primitive (spec.md §4.5:
// "its semantic type (primitive or array)").
func primGoType(p ir.Primitive) string {
	switch p {
	case ir.Float:
		return "float32"
	case ir.Double:
		return "float64"
	case ir.Char:
		return "byte"
	case ir.Int8:
		return "int8"
	case ir.Uint8, ir.Uint8MavlinkVersion:
		return "uint8"
	case ir.Int16:
		return "int16"
	case ir.Uint16:
		return "uint16"
	case ir.Int32:
		return "int32"
	case ir.Uint32:
		return "uint32"
	case ir.Int64:
		return "int64"
	case ir.Uint64:
		return "uint64"
	default:
		return "uint8"
	}
}

// fieldElemGoType is the Go type of one element of f (ignoring arrayness):
// the enum type if the field carries one (spec.md §4.5: "an enum-typed
// field carries the enum type, not the underlying integer"), else the
// primitive's Go type.
func fieldElemGoType(f ir.Field) string {
	if f.Enum != nil {
		return enumTypeName(string(*f.Enum))
	}
	return primGoType(f.Type.Elem)
}

// fieldGoType is the full declared Go type of a struct field, including the
// array length when f.Type.Array is set.
func fieldGoType(f ir.Field) string {
	elem := fieldElemGoType(f)
	if f.Type.Array {
		return arrayTypeString(int(f.Type.Len), elem)
	}
	return elem
}

func arrayTypeString(n int, elem string) string {
	return "[" + strconv.Itoa(n) + "]" + elem
}
