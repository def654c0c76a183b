package printer

import "testing"

func TestGoIdent(t *testing.T) {
	tests := []struct{ in, want string }{
		{"rfHealth", "Rfhealth"},
		{"gps_fix", "GpsFix"},
		{"GPS_RAW_INT", "GPSRAWINT"},
		{"UAVIONIX_ADSB_OUT_DYNAMIC", "UAVIONIXADSBOUTDYNAMIC"},
		{"utcTime", "Utctime"},
		{"_", "_"},
		{"mixed_CASE_word", "MixedCASEWord"},
	}
	for _, tc := range tests {
		if got := goIdent(tc.in); got != tc.want {
			t.Errorf("goIdent(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestEnumEntryConstName(t *testing.T) {
	got := enumEntryConstName("MAV_STATE", "MAV_STATE_ACTIVE")
	want := "MAVSTATE_ACTIVE"
	if got != want {
		t.Errorf("enumEntryConstName = %q, want %q", got, want)
	}
}

func TestEnumEntryConstNameWithoutSharedPrefix(t *testing.T) {
	got := enumEntryConstName("MAV_STATE", "SOMETHING_ELSE")
	want := "MAVSTATE_SOMETHINGELSE"
	if got != want {
		t.Errorf("enumEntryConstName = %q, want %q", got, want)
	}
}

func TestGoUnexported(t *testing.T) {
	if got := goUnexported("RfHealth"); got != "rfHealth" {
		t.Errorf("goUnexported = %q", got)
	}
	if got := goUnexported(""); got != "" {
		t.Errorf("goUnexported(\"\") = %q, want empty", got)
	}
}
