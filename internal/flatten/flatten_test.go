package flatten

import (
	"testing"

	"github.com/mavlink-go/mavgen/internal/parser"
	"github.com/mavlink-go/mavgen/internal/xmlmodel"
)

// S5 — Diamond include: root includes common and mid; mid also includes
// common. common's enums/messages appear exactly once, before mid's and
// root's; an enum defined in all three appears once with entries in the
// order common, mid, root.
func TestFlattenDiamondInclude(t *testing.T) {
	files := map[string]*parser.ParsedFile{
		"common.xml": {
			Path: "common.xml",
			Model: &xmlmodel.Mavlink{
				Enums: []xmlmodel.Enum{
					{Name: "SHARED", Entries: []xmlmodel.Entry{{Name: "COMMON_ENTRY"}}},
				},
				Messages: []xmlmodel.Message{{Name: "COMMON_MSG", Id: 1}},
			},
		},
		"mid.xml": {
			Path:     "mid.xml",
			Includes: []string{"common.xml"},
			Model: &xmlmodel.Mavlink{
				Enums: []xmlmodel.Enum{
					{Name: "SHARED", Entries: []xmlmodel.Entry{{Name: "MID_ENTRY"}}},
				},
				Messages: []xmlmodel.Message{{Name: "MID_MSG", Id: 2}},
			},
		},
		"root.xml": {
			Path:     "root.xml",
			Includes: []string{"common.xml", "mid.xml"},
			Model: &xmlmodel.Mavlink{
				Enums: []xmlmodel.Enum{
					{Name: "SHARED", Entries: []xmlmodel.Entry{{Name: "ROOT_ENTRY"}}},
				},
				Messages: []xmlmodel.Message{{Name: "ROOT_MSG", Id: 3}},
			},
		},
	}

	flat := Flatten(files, "root.xml")

	if len(flat.Enums) != 1 {
		t.Fatalf("len(Enums) = %d, want 1 (merged SHARED)", len(flat.Enums))
	}
	wantEntries := []string{"COMMON_ENTRY", "MID_ENTRY", "ROOT_ENTRY"}
	if len(flat.Enums[0].Entries) != len(wantEntries) {
		t.Fatalf("len(Entries) = %d, want %d", len(flat.Enums[0].Entries), len(wantEntries))
	}
	for i, name := range wantEntries {
		if flat.Enums[0].Entries[i].Name != name {
			t.Errorf("entry %d = %s, want %s", i, flat.Enums[0].Entries[i].Name, name)
		}
	}

	wantMsgs := []string{"COMMON_MSG", "MID_MSG", "ROOT_MSG"}
	if len(flat.Messages) != len(wantMsgs) {
		t.Fatalf("len(Messages) = %d, want %d", len(flat.Messages), len(wantMsgs))
	}
	for i, name := range wantMsgs {
		if flat.Messages[i].Name != name {
			t.Errorf("message %d = %s, want %s", i, flat.Messages[i].Name, name)
		}
	}
}
