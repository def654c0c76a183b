package normalizer

import (
	"github.com/mavlink-go/mavgen/internal/compilerr"
	"github.com/mavlink-go/mavgen/internal/ir"
	"github.com/mavlink-go/mavgen/internal/xmlmodel"
)

// normalizeEnums implements spec.md §4.4.2 across every enum in the
// flattened module. Enum-level failures accumulate (one bad enum does not
// prevent others from normalizing); within a single enum, the first
// failure aborts that enum (spec.md §4.4.7).
func normalizeEnums(raw []xmlmodel.Enum) ([]ir.Enum, compilerr.List) {
	var out []ir.Enum
	var errs compilerr.List
	seen := make(map[ir.Ident]bool)

	for _, e := range raw {
		enum, err := normalizeEnum(e, seen)
		if err != nil {
			errs.Add(err)
			continue
		}
		seen[enum.Name] = true
		out = append(out, enum)
	}
	return out, errs
}

func normalizeEnum(e xmlmodel.Enum, seen map[ir.Ident]bool) (ir.Enum, error) {
	name, ok := parseIdent(e.Name)
	if !ok {
		return ir.Enum{}, &compilerr.InvalidNameError{Item: "enum", Name: e.Name}
	}
	if seen[name] {
		return ir.Enum{}, &compilerr.ItemRedefinitionError{Item: "enum", Name: string(name)}
	}

	bitmask := e.Bitmask != nil && *e.Bitmask

	if len(e.Entries) == 0 {
		return ir.Enum{}, &compilerr.NoSubItemsError{Item: "enum", Name: string(name), SubItems: "entries"}
	}

	type derived struct {
		entry    xmlmodel.Entry
		value    uint64
		hadValue bool
	}
	derivedEntries := make([]derived, len(e.Entries))
	counter := uint64(1)
	for i, xe := range e.Entries {
		if xe.Value != nil {
			v, err := parseEntryValue(*xe.Value)
			if err != nil {
				return ir.Enum{}, &compilerr.InvalidEntryError{Enum: string(name), Entry: xe.Name, Value: *xe.Value, Err: err}
			}
			derivedEntries[i] = derived{entry: xe, value: v, hadValue: true}
			counter = v + 1
		} else {
			derivedEntries[i] = derived{entry: xe, value: counter}
			counter++
		}
	}

	if bitmask {
		for _, d := range derivedEntries {
			if !d.hadValue {
				return ir.Enum{}, &compilerr.BitmaskWithoutValueError{Enum: string(name), Entry: d.entry.Name}
			}
		}
	}

	entries := make([]ir.Entry, 0, len(derivedEntries))
	entryNames := make(map[ir.Ident]bool, len(derivedEntries))
	entryValues := make(map[uint64]ir.Ident, len(derivedEntries))
	var maxValue uint64
	for _, d := range derivedEntries {
		entryName, ok := parseIdent(d.entry.Name)
		if !ok {
			return ir.Enum{}, &compilerr.InvalidNameError{Item: "entry", Enclosing: string(name), Name: d.entry.Name}
		}
		if entryNames[entryName] {
			return ir.Enum{}, &compilerr.ItemRedefinitionError{Item: "entry", Enclosing: string(name), Name: string(entryName)}
		}
		if other, ok := entryValues[d.value]; ok {
			return ir.Enum{}, &compilerr.RepeatedEntryValueError{Enum: string(name), First: string(other), Second: string(entryName), Value: d.value}
		}
		entryNames[entryName] = true
		entryValues[d.value] = entryName
		if d.value > maxValue {
			maxValue = d.value
		}
		entries = append(entries, ir.Entry{
			Name:        entryName,
			Value:       d.value,
			Description: d.entry.Description,
			DevStatus:   d.entry.DevStatus(),
		})
	}

	return ir.Enum{
		Name:        name,
		Bitmask:     bitmask,
		Description: e.Description,
		DevStatus:   e.DevStatus(),
		Entries:     entries,
		MinWidth:    ir.MinWidthForValue(maxValue),
	}, nil
}
