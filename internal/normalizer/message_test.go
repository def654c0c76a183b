package normalizer

import (
	"testing"

	"github.com/mavlink-go/mavgen/internal/compilerr"
	"github.com/mavlink-go/mavgen/internal/ir"
	"github.com/mavlink-go/mavgen/internal/xmlmodel"
)

// S7 — Payload cap: a message with total wire size 803 bytes is rejected.
func TestNormalizeMessageTooBig(t *testing.T) {
	fields := make([]xmlmodel.Field, 0, 803)
	for i := 0; i < 803; i++ {
		fields = append(fields, xmlmodel.Field{Name: fieldNameN(i), Type: "uint8_t"})
	}
	msg := xmlmodel.Message{Name: "BIG_MESSAGE", Id: 1, Fields: fields}

	_, err := normalizeMessage(msg, map[ir.Ident]*ir.Enum{}, map[ir.Ident]bool{}, map[uint32]ir.Ident{})
	if err == nil {
		t.Fatal("expected MessageIsTooBigError, got nil")
	}
	tooBig, ok := err.(*compilerr.MessageIsTooBigError)
	if !ok {
		t.Fatalf("error type = %T, want *compilerr.MessageIsTooBigError", err)
	}
	if tooBig.Size != 803 || tooBig.MaxSize != 255 {
		t.Errorf("got size=%d max=%d, want size=803 max=255", tooBig.Size, tooBig.MaxSize)
	}
}

func fieldNameN(i int) string {
	const letters = "abcdefghijklmnopqrstuvwxyz"
	return "f" + string(letters[i%26]) + string(letters[(i/26)%26]) + string(letters[(i/676)%26])
}

func TestNormalizeMessageNoFields(t *testing.T) {
	msg := xmlmodel.Message{Name: "EMPTY_MESSAGE", Id: 2}
	_, err := normalizeMessage(msg, map[ir.Ident]*ir.Enum{}, map[ir.Ident]bool{}, map[uint32]ir.Ident{})
	if err == nil {
		t.Fatal("expected NoSubItemsError, got nil")
	}
	if _, ok := err.(*compilerr.NoSubItemsError); !ok {
		t.Fatalf("error type = %T, want *compilerr.NoSubItemsError", err)
	}
}

func TestNormalizeMessageRepeatedId(t *testing.T) {
	seenIds := map[uint32]ir.Ident{5: "OTHER_MESSAGE"}
	msg := xmlmodel.Message{
		Name:   "NEW_MESSAGE",
		Id:     5,
		Fields: []xmlmodel.Field{{Name: "x", Type: "uint8_t"}},
	}
	_, err := normalizeMessage(msg, map[ir.Ident]*ir.Enum{}, map[ir.Ident]bool{}, seenIds)
	if err == nil {
		t.Fatal("expected RepeatedMessageIdError, got nil")
	}
	if _, ok := err.(*compilerr.RepeatedMessageIdError); !ok {
		t.Fatalf("error type = %T, want *compilerr.RepeatedMessageIdError", err)
	}
}
