// Package normalizer is the heart of the compiler (spec.md §4.4): it lowers
// one flattened XML module into a validated ir.MavlinkModule, or a
// non-empty list of compilerr errors. Enum- and message-level failures
// accumulate (one bad item does not stop the others from normalizing);
// within a single item the first failure aborts that item (spec.md §4.4.7).
package normalizer

import (
	"github.com/mavlink-go/mavgen/internal/compilerr"
	"github.com/mavlink-go/mavgen/internal/flatten"
	"github.com/mavlink-go/mavgen/internal/ir"
)

// Normalize lowers flat into a validated IR module. A non-nil error is
// always a compilerr.List.
func Normalize(flat *flatten.FlatModule) (*ir.MavlinkModule, error) {
	enums, enumErrs := normalizeEnums(flat.Enums)

	enumTable := make(map[ir.Ident]*ir.Enum, len(enums))
	for i := range enums {
		enumTable[enums[i].Name] = &enums[i]
	}

	messages, msgErrs := normalizeMessages(flat.Messages, enumTable)

	var errs compilerr.List
	errs = append(errs, enumErrs...)
	errs = append(errs, msgErrs...)
	if err := errs.AsError(); err != nil {
		return nil, err
	}

	return &ir.MavlinkModule{
		Path:     flat.Path,
		Version:  flat.Version,
		Dialect:  flat.Dialect,
		Enums:    enums,
		Messages: messages,
	}, nil
}
