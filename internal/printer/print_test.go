package printer

import (
	"strings"
	"testing"

	"github.com/mavlink-go/mavgen/internal/ir"
)

func scalarField(name string, p ir.Primitive) ir.Field {
	return ir.Field{Name: ir.Ident(name), Type: ir.FieldType{Elem: p}, XMLType: p.XMLSpelling()}
}

func arrayField(name string, p ir.Primitive, n uint8) ir.Field {
	return ir.Field{Name: ir.Ident(name), Type: ir.FieldType{Elem: p, Array: true, Len: n}, XMLType: p.XMLSpelling()}
}

func enumField(name string, enum ir.Ident, p ir.Primitive) ir.Field {
	e := enum
	return ir.Field{Name: ir.Ident(name), Type: ir.FieldType{Elem: p}, Enum: &e, XMLType: p.XMLSpelling()}
}

func TestPrintScalarMessage(t *testing.T) {
	module := &ir.MavlinkModule{
		Path: "test.xml",
		Messages: []ir.Message{
			{
				Name:     "HEARTBEAT",
				Id:       0,
				Fields:   []ir.Field{scalarField("custom_mode", ir.Uint32), scalarField("type", ir.Uint8)},
				WireSize: 5,
				ExtraCRC: 50,
			},
		},
	}

	src, err := Print(module, "testdialect")
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"package testdialect",
		"type HEARTBEAT struct {",
		"CustomMode uint32",
		"Type       uint8",
		"const HEARTBEATMessageID uint32 = 0",
		"const HEARTBEATName = \"HEARTBEAT\"",
		"func (m HEARTBEAT) Serialize(version uint8, buf []byte) (int, error) {",
		"func DeserializeHEARTBEAT(version uint8, payload []byte) (HEARTBEAT, error) {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source does not contain %q\n--- source ---\n%s", want, out)
		}
	}
}

func TestPrintArrayField(t *testing.T) {
	module := &ir.MavlinkModule{
		Messages: []ir.Message{
			{
				Name:     "PARAM_VALUE",
				Id:       22,
				Fields:   []ir.Field{arrayField("param_id", ir.Char, 16)},
				WireSize: 16,
			},
		},
	}
	src, err := Print(module, "testdialect")
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := string(src)
	if !strings.Contains(out, "ParamId [16]byte") {
		t.Errorf("expected an array field declaration, got:\n%s", out)
	}
	if !strings.Contains(out, "paramIdIdx") {
		t.Errorf("expected an array loop index, got:\n%s", out)
	}
}

func TestPrintEnumField(t *testing.T) {
	module := &ir.MavlinkModule{
		Enums: []ir.Enum{
			{
				Name:     "MAV_STATE",
				MinWidth: ir.Width8,
				Entries:  []ir.Entry{{Name: "MAV_STATE_UNINIT", Value: 0}, {Name: "MAV_STATE_ACTIVE", Value: 4}},
			},
		},
		Messages: []ir.Message{
			{
				Name:     "HEARTBEAT",
				Id:       0,
				Fields:   []ir.Field{enumField("system_status", "MAV_STATE", ir.Uint8)},
				WireSize: 1,
			},
		},
	}
	src, err := Print(module, "testdialect")
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := string(src)

	for _, want := range []string{
		"type MAVSTATE uint8",
		"MAVSTATE_UNINIT MAVSTATE = 0",
		"MAVSTATE_ACTIVE MAVSTATE = 4",
		"func NewMAVSTATE(v uint64) (MAVSTATE, error) {",
		"SystemStatus MAVSTATE",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source does not contain %q\n--- source ---\n%s", want, out)
		}
	}
}

func TestPrintExtensionFieldsSerializeAfterRegular(t *testing.T) {
	module := &ir.MavlinkModule{
		Messages: []ir.Message{
			{
				Name:            "EXAMPLE",
				Id:              1,
				Fields:          []ir.Field{scalarField("regular_one", ir.Uint32)},
				ExtensionFields: []ir.Field{scalarField("extension_one", ir.Uint8)},
				WireSize:        5,
			},
		},
	}
	src, err := Print(module, "testdialect")
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := string(src)
	regularIdx := strings.Index(out, "RegularOne   uint32")
	extIdx := strings.Index(out, "ExtensionOne uint8")
	if regularIdx == -1 || extIdx == -1 {
		t.Fatalf("expected both fields present, got:\n%s", out)
	}
	if regularIdx > extIdx {
		t.Errorf("regular field must be declared before extension field")
	}
}

func TestPrintDispatch(t *testing.T) {
	module := &ir.MavlinkModule{
		Messages: []ir.Message{
			{Name: "PING", Id: 4, Fields: []ir.Field{scalarField("seq", ir.Uint32)}, WireSize: 4},
		},
	}
	src, err := Print(module, "testdialect")
	if err != nil {
		t.Fatalf("Print: %v", err)
	}
	out := string(src)
	for _, want := range []string{
		"type Message interface {",
		"func Deserialize(version uint8, id uint32, payload []byte) (Message, error) {",
		"case PINGMessageID:",
		"func IDFromName(name string) (uint32, error) {",
		"func ExtraCRC(id uint32) uint8 {",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("generated source does not contain %q\n--- source ---\n%s", want, out)
		}
	}
}
