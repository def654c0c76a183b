package normalizer

import "testing"

func TestParseEntryValue(t *testing.T) {
	tests := []struct {
		in      string
		want    uint64
		wantErr bool
	}{
		{"0", 0, false},
		{"42", 42, false},
		{"0x2A", 42, false},
		{"0xFF", 255, false},
		{"0b101010", 42, false},
		{"2**8", 256, false},
		{"10**0", 1, false},
		{"", 0, true},
		{"not_a_number", 0, true},
		{"0xZZ", 0, true},
		{"1**", 0, true},
	}
	for _, tc := range tests {
		got, err := parseEntryValue(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseEntryValue(%q) = %d, nil; want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseEntryValue(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseEntryValue(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPowOverflowChecked(t *testing.T) {
	if v, ok := powOverflowChecked(2, 8); !ok || v != 256 {
		t.Errorf("powOverflowChecked(2,8) = (%d,%v), want (256,true)", v, ok)
	}
	if v, ok := powOverflowChecked(2, 64); ok {
		t.Errorf("powOverflowChecked(2,64) = (%d,true), want overflow", v)
	}
	if v, ok := powOverflowChecked(0, 0); !ok || v != 1 {
		t.Errorf("powOverflowChecked(0,0) = (%d,%v), want (1,true)", v, ok)
	}
}
