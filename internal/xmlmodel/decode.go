package xmlmodel

import (
	"encoding/xml"
	"fmt"
)

// UnmarshalXML implements a small explicit state machine over the <message>
// body, because <extensions/> splits one <field>* sequence into a regular
// half and an extension half (spec.md §9's "Design Notes": prefer an
// explicit state machine over relying on element-order-insensitive
// struct-tag decoding for this one shape). Every other element in the
// dialect schema has a fixed, order-insensitive shape and is decoded with
// plain struct tags.
func (m *Message) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, a := range start.Attr {
		switch a.Name.Local {
		case "name":
			m.Name = a.Value
		case "id":
			var id uint32
			if _, err := fmt.Sscanf(a.Value, "%d", &id); err != nil {
				return fmt.Errorf("message id %q: %w", a.Value, err)
			}
			m.Id = id
		}
	}

	inExtensions := false
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "description":
				if err := d.DecodeElement(&m.Description, &t); err != nil {
					return err
				}
			case "deprecated":
				var dep Deprecated
				if err := d.DecodeElement(&dep, &t); err != nil {
					return err
				}
				m.Deprecated = &dep
			case "wip":
				var wip Wip
				if err := d.DecodeElement(&wip, &t); err != nil {
					return err
				}
				m.Wip = &wip
			case "extensions":
				inExtensions = true
				if err := d.Skip(); err != nil {
					return err
				}
			case "field":
				var f Field
				if err := decodeField(d, &t, &f); err != nil {
					return err
				}
				if inExtensions {
					m.ExtensionFields = append(m.ExtensionFields, f)
				} else {
					m.Fields = append(m.Fields, f)
				}
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			if t.Name == start.Name {
				return nil
			}
		}
	}
}

func decodeField(d *xml.Decoder, start *xml.StartElement, f *Field) error {
	for _, a := range start.Attr {
		v := a.Value
		switch a.Name.Local {
		case "name":
			f.Name = v
		case "type":
			f.Type = v
		case "print_format":
			f.PrintFormat = &v
		case "enum":
			f.Enum = &v
		case "display":
			f.Display = &v
		case "units":
			f.Units = &v
		case "increment":
			f.Increment = &v
		case "minValue", "min_value":
			f.MinValue = &v
		case "maxValue", "max_value":
			f.MaxValue = &v
		case "multiplier":
			f.Multiplier = &v
		case "default":
			f.Default = &v
		case "instance":
			b := v == "true" || v == "1"
			f.Instance = &b
		case "invalid":
			f.Invalid = &v
		}
	}
	// Description is the element's own text content.
	var text struct {
		Text string `xml:",chardata"`
	}
	if err := d.DecodeElement(&text, start); err != nil {
		return err
	}
	f.Description = text.Text
	return nil
}

// Parse decodes one dialect XML file into its model. Syntax errors are
// wrapped by the caller (parser package) with the offending file path.
func Parse(data []byte) (*Mavlink, error) {
	var m Mavlink
	if err := xml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
