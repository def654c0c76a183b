// Package ir defines the normalized, validated, language-neutral
// intermediate representation the printer consumes (spec.md §3, "IR").
// Every value here has already passed through the normalizer: identifiers
// are legal, enum/field types are compatible, and messages fit the 255-byte
// wire cap.
package ir

import "github.com/mavlink-go/mavgen/internal/xmlmodel"

// Ident is a validated identifier (spec.md §4.4.1).
type Ident string

// Primitive is the closed set of MAVLink wire primitive types (spec.md §3).
type Primitive uint8

const (
	Float Primitive = iota
	Double
	Char
	Int8
	Uint8
	Uint8MavlinkVersion
	Int16
	Uint16
	Int32
	Uint32
	Int64
	Uint64
)

// primitiveInfo carries a primitive's wire size and its XML spelling (used
// both for type-string parsing and, verbatim, for CRC-extra computation).
type primitiveInfo struct {
	size    int
	spelling string
}

var primitives = map[Primitive]primitiveInfo{
	Float:               {4, "float"},
	Double:              {8, "double"},
	Char:                {1, "char"},
	Int8:                {1, "int8_t"},
	Uint8:               {1, "uint8_t"},
	Uint8MavlinkVersion: {1, "uint8_t_mavlink_version"},
	Int16:               {2, "int16_t"},
	Uint16:              {2, "uint16_t"},
	Int32:               {4, "int32_t"},
	Uint32:              {4, "uint32_t"},
	Int64:               {8, "int64_t"},
	Uint64:              {8, "uint64_t"},
}

// xmlSpellingToPrimitive inverts primitives' spelling, used by the field
// type parser (normalizer/fieldtype.go).
var xmlSpellingToPrimitive = func() map[string]Primitive {
	m := make(map[string]Primitive, len(primitives))
	for p, info := range primitives {
		m[info.spelling] = p
	}
	return m
}()

// PrimitiveFromXML resolves the bare XML type spelling (e.g. "uint8_t") to
// its Primitive, reporting ok=false for anything else (including array
// syntax, which the caller strips first).
func PrimitiveFromXML(spelling string) (Primitive, bool) {
	p, ok := xmlSpellingToPrimitive[spelling]
	return p, ok
}

// Size is the primitive's wire size in bytes.
func (p Primitive) Size() int { return primitives[p].size }

// XMLSpelling is the primitive's spelling in XML, used verbatim (even for
// Uint8MavlinkVersion, spelled "uint8_t" per spec.md §4.4.6) when computing
// CRC-extra.
func (p Primitive) XMLSpelling() string {
	if p == Uint8MavlinkVersion {
		return "uint8_t"
	}
	return primitives[p].spelling
}

// IsInteger reports whether p is a carrier eligible to back an enum field
// (spec.md §4.4.5): any signed or unsigned integer width, but not
// char/float/double/uint8_t_mavlink_version.
func (p Primitive) IsInteger() bool {
	switch p {
	case Int8, Uint8, Int16, Uint16, Int32, Uint32, Int64, Uint64:
		return true
	default:
		return false
	}
}

// UIntWidth returns the unsigned-width class (8/16/32/64) of an integer
// primitive regardless of signedness, used to compare a field's carrier
// width against an enum's minimum width. Panics if !p.IsInteger().
func (p Primitive) UIntWidth() UIntWidth {
	switch p {
	case Int8, Uint8:
		return Width8
	case Int16, Uint16:
		return Width16
	case Int32, Uint32:
		return Width32
	case Int64, Uint64:
		return Width64
	default:
		panic("ir: UIntWidth of non-integer primitive")
	}
}

// UIntWidth is the closed ordered set {8, 16, 32, 64} used to size enum
// storage (spec.md §3).
type UIntWidth uint8

const (
	Width8  UIntWidth = 8
	Width16 UIntWidth = 16
	Width32 UIntWidth = 32
	Width64 UIntWidth = 64
)

// MinWidthForValue returns the smallest UIntWidth that fits v.
func MinWidthForValue(v uint64) UIntWidth {
	switch {
	case v <= 0xFF:
		return Width8
	case v <= 0xFFFF:
		return Width16
	case v <= 0xFFFFFFFF:
		return Width32
	default:
		return Width64
	}
}

// FieldType is Primitive(p) when Array is false, or Array(p, n) when true.
type FieldType struct {
	Elem  Primitive
	Array bool
	Len   uint8 // only meaningful when Array is true
}

// WireSize is p.size * (n or 1) (spec.md §3).
func (t FieldType) WireSize() int {
	if !t.Array {
		return t.Elem.Size()
	}
	return t.Elem.Size() * int(t.Len)
}

// Entry is one normalized enum value.
type Entry struct {
	Name        Ident
	Value       uint64
	Description string
	DevStatus   xmlmodel.DevStatus
}

// Enum is a normalized enumeration: names and values unique within it; if
// Bitmask, every entry had an explicit XML value (spec.md §3).
type Enum struct {
	Name        Ident
	Bitmask     bool
	Description string
	DevStatus   xmlmodel.DevStatus
	Entries     []Entry
	MinWidth    UIntWidth
}

// Default is the enum's default entry: the first in IR order (spec.md §8
// property 6).
func (e Enum) Default() Entry { return e.Entries[0] }

// Field is a normalized message field, wire-ordered by the caller (the
// Message.Fields/ExtensionFields slices, not this type, carry order).
type Field struct {
	Name        Ident
	Type        FieldType
	Enum        *Ident
	XMLType     string // Type.Elem.XMLSpelling(), e.g. "uint8_t" or "float" (no array suffix); used for CRC-extra
	PrintFormat *string
	Display     *string
	Units       *string
	Increment   *string
	MinValue    *string
	MaxValue    *string
	Multiplier  *string
	Default     *string
	Instance    *bool
	Invalid     *string
	Description string
}

// Message is a normalized message: Fields is wire order for regular fields
// (descending primitive size, stable on ties); ExtensionFields preserves
// source order and always serializes after Fields (spec.md §4.4.5).
type Message struct {
	Name            Ident
	Id              uint32
	DevStatus       xmlmodel.DevStatus
	Description     string
	Fields          []Field
	ExtensionFields []Field
	WireSize        int
	ExtraCRC        uint8
}

// MavlinkModule is the normalized, validated output of one dialect
// compilation (spec.md §3). Enum names are unique, message names are
// unique, message ids are unique, every field Enum reference resolves
// within Enums, and every message's WireSize is <= 255.
type MavlinkModule struct {
	Path     string
	Version  *uint8
	Dialect  *uint8
	Enums    []Enum
	Messages []Message
}

// EnumByName returns the module's enum named n, or ok=false.
func (m *MavlinkModule) EnumByName(n Ident) (*Enum, bool) {
	for i := range m.Enums {
		if m.Enums[i].Name == n {
			return &m.Enums[i], true
		}
	}
	return nil, false
}
