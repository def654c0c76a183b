// Package flatten implements spec.md §4.3: given the parser's map of
// canonical path -> parsed file and one root path, it produces a single
// FlatModule by a post-order, depth-first, duplicate-suppressing traversal
// of the include graph, merging same-named enums and unioning messages.
// Flattening never fails: malformed input is already rejected upstream by
// the parser, and there is nothing left here that can go wrong.
package flatten

import (
	"github.com/mavlink-go/mavgen/internal/parser"
	"github.com/mavlink-go/mavgen/internal/xmlmodel"
)

// FlatModule is the union of one dialect's enums and messages, with
// version/dialect taken from the root file only (spec.md §4.3).
type FlatModule struct {
	Path     string
	Version  *uint8
	Dialect  *uint8
	Enums    []xmlmodel.Enum
	Messages []xmlmodel.Message
}

// Flatten walks root and its includes post-order: every include of the
// current node is processed (in source order) before the node's own
// enums/messages are emitted, and each node is processed at most once, so a
// diamond-shaped include graph's common ancestor contributes exactly once,
// before any of its dependants (spec.md §8 S5).
func Flatten(files map[string]*parser.ParsedFile, root string) *FlatModule {
	out := &FlatModule{Path: root}
	if rootFile, ok := files[root]; ok {
		out.Version = rootFile.Model.Version
		out.Dialect = rootFile.Model.Dialect
	}

	processed := make(map[string]bool)
	enumIndex := make(map[string]int)

	var visit func(path string)
	visit = func(path string) {
		if processed[path] {
			return
		}
		processed[path] = true
		pf, ok := files[path]
		if !ok {
			return
		}
		for _, inc := range pf.Includes {
			visit(inc)
		}
		for _, e := range pf.Model.Enums {
			if i, ok := enumIndex[e.Name]; ok {
				out.Enums[i].Entries = append(out.Enums[i].Entries, e.Entries...)
				continue
			}
			enumIndex[e.Name] = len(out.Enums)
			out.Enums = append(out.Enums, e)
		}
		out.Messages = append(out.Messages, pf.Model.Messages...)
	}
	visit(root)
	return out
}
