package normalizer

import (
	"sort"

	"github.com/mavlink-go/mavgen/internal/compilerr"
	"github.com/mavlink-go/mavgen/internal/ir"
	"github.com/mavlink-go/mavgen/internal/xmlmodel"
)

// normalizeField implements spec.md §4.4.5 for one field: name legality and
// message-wide redefinition, type-string parsing, and optional enum
// reference/compatibility checking.
func normalizeField(msgName string, xf xmlmodel.Field, enums map[ir.Ident]*ir.Enum, seenNames map[ir.Ident]bool) (ir.Field, error) {
	name, ok := parseIdent(xf.Name)
	if !ok {
		return ir.Field{}, &compilerr.InvalidNameError{Item: "field", Enclosing: msgName, Name: xf.Name}
	}
	if seenNames[name] {
		return ir.Field{}, &compilerr.ItemRedefinitionError{Item: "field", Enclosing: msgName, Name: string(name)}
	}

	ftype, ok := parseFieldType(xf.Type)
	if !ok {
		return ir.Field{}, &compilerr.InvalidFieldTypeError{Message: msgName, Field: xf.Name, Type: xf.Type}
	}

	var enumIdent *ir.Ident
	if xf.Enum != nil && *xf.Enum != "" {
		ref := ir.Ident(*xf.Enum)
		enum, ok := enums[ref]
		if !ok {
			return ir.Field{}, &compilerr.InvalidEnumReferenceError{Message: msgName, Field: xf.Name, Enum: *xf.Enum}
		}
		if !ftype.Elem.IsInteger() || ftype.Elem.UIntWidth() < enum.MinWidth {
			return ir.Field{}, &compilerr.FieldTypeIsIncompatibleWithEnumError{
				Message: msgName, Field: xf.Name, Enum: *xf.Enum, FieldType: xf.Type,
			}
		}
		enumIdent = &ref
	}

	description := xf.Description
	return ir.Field{
		Name:        name,
		Type:        ftype,
		Enum:        enumIdent,
		XMLType:     ftype.Elem.XMLSpelling(),
		PrintFormat: xf.PrintFormat,
		Display:     xf.Display,
		Units:       xf.Units,
		Increment:   xf.Increment,
		MinValue:    xf.MinValue,
		MaxValue:    xf.MaxValue,
		Multiplier:  xf.Multiplier,
		Default:     xf.Default,
		Instance:    xf.Instance,
		Invalid:     xf.Invalid,
		Description: description,
	}, nil
}

// reorderRegularFields implements spec.md §4.4.5's wire-ordering rule:
// descending primitive wire size, stable on ties so source order breaks
// ties among same-size fields. Extension fields are never passed here; they
// retain source order unconditionally (spec.md §8 S6).
func reorderRegularFields(fields []ir.Field) []ir.Field {
	out := make([]ir.Field, len(fields))
	copy(out, fields)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Type.Elem.Size() > out[j].Type.Elem.Size()
	})
	return out
}
