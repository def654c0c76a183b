package normalizer

import (
	"github.com/mavlink-go/mavgen/internal/compilerr"
	"github.com/mavlink-go/mavgen/internal/ir"
	"github.com/mavlink-go/mavgen/internal/xmlmodel"
)

// normalizeMessages implements spec.md §4.4.4 across every message in the
// flattened module. Message-level failures accumulate; a field-level
// failure aborts only its enclosing message (spec.md §4.4.7).
func normalizeMessages(raw []xmlmodel.Message, enums map[ir.Ident]*ir.Enum) ([]ir.Message, compilerr.List) {
	var out []ir.Message
	var errs compilerr.List
	seenNames := make(map[ir.Ident]bool)
	seenIds := make(map[uint32]ir.Ident)

	for _, m := range raw {
		msg, err := normalizeMessage(m, enums, seenNames, seenIds)
		if err != nil {
			errs.Add(err)
			continue
		}
		seenNames[msg.Name] = true
		seenIds[msg.Id] = msg.Name
		out = append(out, msg)
	}
	return out, errs
}

func normalizeMessage(m xmlmodel.Message, enums map[ir.Ident]*ir.Enum, seenNames map[ir.Ident]bool, seenIds map[uint32]ir.Ident) (ir.Message, error) {
	name, ok := parseIdent(m.Name)
	if !ok {
		return ir.Message{}, &compilerr.InvalidNameError{Item: "message", Name: m.Name}
	}
	if seenNames[name] {
		return ir.Message{}, &compilerr.ItemRedefinitionError{Item: "message", Name: string(name)}
	}
	if other, ok := seenIds[m.Id]; ok {
		return ir.Message{}, &compilerr.RepeatedMessageIdError{First: string(other), Second: string(name), Id: m.Id}
	}
	if len(m.Fields) == 0 {
		return ir.Message{}, &compilerr.NoSubItemsError{Item: "message", Name: string(name), SubItems: "fields"}
	}

	fieldNames := make(map[ir.Ident]bool)
	regular := make([]ir.Field, 0, len(m.Fields))
	for _, xf := range m.Fields {
		f, err := normalizeField(string(name), xf, enums, fieldNames)
		if err != nil {
			return ir.Message{}, err
		}
		fieldNames[f.Name] = true
		regular = append(regular, f)
	}
	extension := make([]ir.Field, 0, len(m.ExtensionFields))
	for _, xf := range m.ExtensionFields {
		f, err := normalizeField(string(name), xf, enums, fieldNames)
		if err != nil {
			return ir.Message{}, err
		}
		fieldNames[f.Name] = true
		extension = append(extension, f)
	}

	ordered := reorderRegularFields(regular)

	wireSize := 0
	for _, f := range ordered {
		wireSize += f.Type.WireSize()
	}
	for _, f := range extension {
		wireSize += f.Type.WireSize()
	}
	if wireSize > 255 {
		return ir.Message{}, &compilerr.MessageIsTooBigError{Message: string(name), Size: wireSize, MaxSize: 255}
	}

	return ir.Message{
		Name:            name,
		Id:              m.Id,
		DevStatus:       m.DevStatus(),
		Description:     m.Description,
		Fields:          ordered,
		ExtensionFields: extension,
		WireSize:        wireSize,
		ExtraCRC:        extraCRC(string(name), ordered),
	}, nil
}
