package normalizer

import (
	"testing"

	"github.com/mavlink-go/mavgen/internal/ir"
)

// S1 — CRC-extra, one field.
func TestExtraCRCOneField(t *testing.T) {
	fields := []ir.Field{
		{Name: "rfHealth", XMLType: "uint8_t"},
	}
	got := extraCRC("UAVIONIX_ADSB_TRANSCEIVER_HEALTH_REPORT", fields)
	if got != 4 {
		t.Errorf("extraCRC = %d, want 4", got)
	}
}

// S2 — CRC-extra, many fields: UAVIONIX_ADSB_OUT_DYNAMIC (id 10002), in its
// post-reorder wire order (8/4-byte primitives first, descending, ties
// broken by source order).
func TestExtraCRCManyFields(t *testing.T) {
	fields := []ir.Field{
		{Name: "utcTime", XMLType: "uint32_t"},
		{Name: "gpsLat", XMLType: "int32_t"},
		{Name: "gpsLon", XMLType: "int32_t"},
		{Name: "gpsAlt", XMLType: "int32_t"},
		{Name: "baroAltMSL", XMLType: "int32_t"},
		{Name: "accuracyHor", XMLType: "uint32_t"},
		{Name: "accuracyVert", XMLType: "uint16_t"},
		{Name: "accuracyVel", XMLType: "uint16_t"},
		{Name: "velVert", XMLType: "int16_t"},
		{Name: "velNS", XMLType: "int16_t"},
		{Name: "VelEW", XMLType: "int16_t"},
		{Name: "state", XMLType: "uint16_t"},
		{Name: "squawk", XMLType: "uint16_t"},
		{Name: "gpsFix", XMLType: "uint8_t"},
		{Name: "numSats", XMLType: "uint8_t"},
		{Name: "emergencyStatus", XMLType: "uint8_t"},
	}
	// Field order above already matches the post-reorder wire order: the
	// six 4-byte fields in source order, then the seven 2-byte fields in
	// source order, then the three 1-byte fields in source order.
	got := extraCRC("UAVIONIX_ADSB_OUT_DYNAMIC", fields)
	if got != 186 {
		t.Errorf("extraCRC = %d, want 186", got)
	}
}

func TestExtraCRCArrayField(t *testing.T) {
	withLen := []ir.Field{
		{Name: "callsign", XMLType: "char", Type: ir.FieldType{Array: true, Len: 9}},
	}
	withoutLen := []ir.Field{
		{Name: "callsign", XMLType: "char"},
	}
	if extraCRC("X", withLen) == extraCRC("X", withoutLen) {
		t.Error("array length byte must participate in extra_crc")
	}
}
