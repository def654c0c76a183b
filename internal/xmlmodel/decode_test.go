package xmlmodel

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const sampleDialect = `<?xml version="1.0"?>
<mavlink>
  <include>common.xml</include>
  <version>3</version>
  <dialect>1</dialect>
  <enums>
    <enum name="MAV_STATE">
      <description>State flags</description>
      <entry name="MAV_STATE_UNINIT"><description>Uninitialized</description></entry>
      <entry name="MAV_STATE_ACTIVE" value="4"/>
    </enum>
  </enums>
  <messages>
    <message id="1" name="EXAMPLE">
      <description>An example message</description>
      <field type="uint8_t" name="regular_one">first regular field</field>
      <extensions/>
      <field type="uint8_t" name="extension_one">first extension field</field>
    </message>
  </messages>
</mavlink>`

func TestParseDialect(t *testing.T) {
	m, err := Parse([]byte(sampleDialect))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Includes) != 1 || m.Includes[0] != "common.xml" {
		t.Errorf("Includes = %v, want [common.xml]", m.Includes)
	}
	if m.Version == nil || *m.Version != 3 {
		t.Errorf("Version = %v, want 3", m.Version)
	}
	if len(m.Enums) != 1 || len(m.Enums[0].Entries) != 2 {
		t.Fatalf("Enums = %+v", m.Enums)
	}
	if m.Enums[0].Entries[1].Value == nil || *m.Enums[0].Entries[1].Value != "4" {
		t.Errorf("second entry value = %v, want 4", m.Enums[0].Entries[1].Value)
	}

	if len(m.Messages) != 1 {
		t.Fatalf("Messages = %+v", m.Messages)
	}
	msg := m.Messages[0]
	if len(msg.Fields) != 1 || msg.Fields[0].Name != "regular_one" {
		t.Errorf("Fields = %+v, want one field named regular_one", msg.Fields)
	}
	if len(msg.ExtensionFields) != 1 || msg.ExtensionFields[0].Name != "extension_one" {
		t.Errorf("ExtensionFields = %+v, want one field named extension_one", msg.ExtensionFields)
	}

	wantEntries := []Entry{
		{Name: "MAV_STATE_UNINIT", Description: "Uninitialized"},
		{Name: "MAV_STATE_ACTIVE", Value: m.Enums[0].Entries[1].Value},
	}
	if diff := cmp.Diff(wantEntries, m.Enums[0].Entries); diff != "" {
		t.Errorf("enum entries mismatch (-want +got):\n%s", diff)
	}
}

func TestDevStatusIsZero(t *testing.T) {
	var d DevStatus
	if !d.IsZero() {
		t.Error("zero-value DevStatus should be IsZero")
	}
	d.Deprecated = &Deprecated{}
	if d.IsZero() {
		t.Error("DevStatus with Deprecated set should not be IsZero")
	}
}
