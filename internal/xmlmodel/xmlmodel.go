// Package xmlmodel is the lossless, parse-level typed mirror of the MAVLink
// dialect XML schema (spec.md §3, "XML model"). Decoding follows the same
// encoding/xml struct-tag approach the rest of the example pack's XML
// consumers use (e.g. the xsd2proto tool's XSDSchema/XSDElement structs) —
// no third-party XML library improves on encoding/xml for decoding a fixed,
// known element shape.
package xmlmodel

import "encoding/xml"

// Mavlink is the root <mavlink> element of one dialect file.
type Mavlink struct {
	XMLName  xml.Name  `xml:"mavlink"`
	Includes []string  `xml:"include"`
	Version  *uint8    `xml:"version"`
	Dialect  *uint8    `xml:"dialect"`
	Enums    []Enum    `xml:"enums>enum"`
	Messages []Message `xml:"messages>message"`
}

// Enum mirrors <enum name bitmask?>.
type Enum struct {
	Name        string     `xml:"name,attr"`
	Bitmask     *bool      `xml:"bitmask,attr"`
	Description string     `xml:"description"`
	Deprecated  *Deprecated `xml:"deprecated"`
	Wip         *Wip        `xml:"wip"`
	Entries     []Entry    `xml:"entry"`
}

func (e Enum) DevStatus() DevStatus { return devStatusOf(e.Deprecated, e.Wip) }

// Entry mirrors <entry name value?>. Value is carried as the raw XML literal
// (deferred parsing) per spec.md §3; Params are parsed but unused by the
// core per spec.md §4.2's description of <param>.
type Entry struct {
	Name          string      `xml:"name,attr"`
	Value         *string     `xml:"value,attr"`
	Description   string      `xml:"description"`
	Deprecated    *Deprecated `xml:"deprecated"`
	Wip           *Wip        `xml:"wip"`
	Params        []Param     `xml:"param"`
	HasLocation   *bool       `xml:"hasLocation,attr"`
	IsDestination *bool       `xml:"isDestination,attr"`
	MissionOnly   *bool       `xml:"missionOnly,attr"`
}

func (e Entry) DevStatus() DevStatus { return devStatusOf(e.Deprecated, e.Wip) }

// Param mirrors <param>; carried but never consulted by the compiler core.
type Param struct {
	Index         int     `xml:"index,attr"`
	Label         *string `xml:"label,attr"`
	Units         *string `xml:"units,attr"`
	Multiplier    *string `xml:"multiplier,attr"`
	Instance      *bool   `xml:"instance,attr"`
	Enum          *string `xml:"enum,attr"`
	DecimalPlaces *int    `xml:"decimalPlaces,attr"`
	Increment     *string `xml:"increment,attr"`
	MinValue      *string `xml:"minValue,attr"`
	MaxValue      *string `xml:"maxValue,attr"`
	Reserved      *bool   `xml:"reserved,attr"`
	Default       *string `xml:"default,attr"`
	Value         string  `xml:",chardata"`
}

// Message mirrors <message id name>. Message.UnmarshalXML (decode.go) splits
// the <field> elements into regular and extension groups at the
// <extensions/> marker; this is the already-split, public shape consumers see.
type Message struct {
	Name            string
	Id              uint32
	Description     string
	Deprecated      *Deprecated
	Wip             *Wip
	Fields          []Field
	ExtensionFields []Field
}

func (m Message) DevStatus() DevStatus { return devStatusOf(m.Deprecated, m.Wip) }

// Field mirrors <field name type …>; Description is the element's inline
// text content, not a child element, per spec.md §6.
type Field struct {
	Name        string
	Type        string
	PrintFormat *string
	Enum        *string
	Display     *string
	Units       *string
	Increment   *string
	MinValue    *string
	MaxValue    *string
	Multiplier  *string
	Default     *string
	Instance    *bool
	Invalid     *string
	Description string
}

// Deprecated and Wip are the two DevStatus variants (spec.md §3): a tagged
// union expressed as two optional struct pointers on the containing element
// rather than an interface hierarchy, since the document shape is fixed and
// at most one of the two can be present.
type Deprecated struct {
	Since       string  `xml:"since,attr"`
	ReplacedBy  string  `xml:"replaced_by,attr"`
	Description string  `xml:",chardata"`
}

type Wip struct {
	Since       *string `xml:"since,attr"`
	Description string  `xml:",chardata"`
}

// DevStatus is the resolved tagged variant: at most one of Deprecated/Wip is
// non-nil, mirroring the XML model's own Deprecated/Wip pointer pair.
type DevStatus struct {
	Deprecated *Deprecated
	Wip        *Wip
}

func (d DevStatus) IsZero() bool { return d.Deprecated == nil && d.Wip == nil }

func devStatusOf(dep *Deprecated, wip *Wip) DevStatus {
	return DevStatus{Deprecated: dep, Wip: wip}
}
