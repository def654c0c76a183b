// Package compilerr defines the tagged error taxonomy shared by the parser,
// flattener and normalizer stages of the mavgen pipeline, and a List type for
// accumulating them the way the teacher's internal/errors.NonFatalErrors
// accumulates non-fatal proto errors: a slice of error values that itself
// implements error by joining its members, so a stage can keep going after a
// failure and still report every failure it saw.
package compilerr

import (
	"fmt"
	"strings"
)

// Code discriminates the Error taxonomy described in spec.md §7, so callers
// (tests in particular) can switch on the kind of failure without string
// matching Error().
type Code string

const (
	CodeIO                          Code = "io"
	CodeXMLSyntax                   Code = "xml_syntax"
	CodeRecursionLimitExceeded      Code = "recursion_limit_exceeded"
	CodeCycleDetected               Code = "cycle_detected"
	CodeInvalidName                 Code = "invalid_name"
	CodeItemRedefinition            Code = "item_redefinition"
	CodeBitmaskWithoutValue         Code = "bitmask_without_value"
	CodeRepeatedEntryValue          Code = "repeated_entry_value"
	CodeNoSubItems                  Code = "no_sub_items"
	CodeInvalidEntry                Code = "invalid_entry"
	CodeRepeatedMessageId            Code = "repeated_message_id"
	CodeMessageIsTooBig              Code = "message_is_too_big"
	CodeInvalidFieldType             Code = "invalid_field_type"
	CodeInvalidEnumReference         Code = "invalid_enum_reference"
	CodeFieldTypeIncompatibleWithEnum Code = "field_type_incompatible_with_enum"
)

// Error is the common interface every mavgen diagnostic implements in
// addition to the standard error interface.
type Error interface {
	error
	Code() Code
}

// IOError wraps a filesystem failure with the path that triggered it. Fatal
// per-file, but the parser continues with sibling files (spec.md §7).
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string { return fmt.Sprintf("%s: %v", e.Path, e.Err) }
func (e *IOError) Code() Code    { return CodeIO }
func (e *IOError) Unwrap() error { return e.Err }

// XMLSyntaxError wraps an encoding/xml decode failure with the offending
// file. Fatal per-file.
type XMLSyntaxError struct {
	Path string
	Err  error
}

func (e *XMLSyntaxError) Error() string { return fmt.Sprintf("%s: malformed XML: %v", e.Path, e.Err) }
func (e *XMLSyntaxError) Code() Code    { return CodeXMLSyntax }
func (e *XMLSyntaxError) Unwrap() error { return e.Err }

// RecursionLimitExceededError carries the inclusion stack at the point the
// configured maximum depth (spec.md §4.2, default 10) was reached.
type RecursionLimitExceededError struct {
	Stack []string
}

func (e *RecursionLimitExceededError) Error() string {
	return fmt.Sprintf("include recursion limit exceeded: %s", strings.Join(e.Stack, " -> "))
}
func (e *RecursionLimitExceededError) Code() Code { return CodeRecursionLimitExceeded }

// CycleDetectedError reports a non-DAG include graph.
type CycleDetectedError struct {
	Cycle []string
}

func (e *CycleDetectedError) Error() string {
	return fmt.Sprintf("include cycle detected: %s", strings.Join(e.Cycle, " -> "))
}
func (e *CycleDetectedError) Code() Code { return CodeCycleDetected }

// InvalidNameError reports an identifier that fails the legality rule in
// spec.md §4.4.1.
type InvalidNameError struct {
	Item     string // "enum", "message", "field", "entry"
	Enclosing string // name of the enclosing enum/message, "" if none
	Name     string
}

func (e *InvalidNameError) Error() string {
	if e.Enclosing == "" {
		return fmt.Sprintf("invalid %s name %q", e.Item, e.Name)
	}
	return fmt.Sprintf("invalid %s name %q in %q", e.Item, e.Name, e.Enclosing)
}
func (e *InvalidNameError) Code() Code { return CodeInvalidName }

// ItemRedefinitionError reports a duplicate name within its namespace.
type ItemRedefinitionError struct {
	Item      string
	Enclosing string
	Name      string
}

func (e *ItemRedefinitionError) Error() string {
	if e.Enclosing == "" {
		return fmt.Sprintf("%s %q redefined", e.Item, e.Name)
	}
	return fmt.Sprintf("%s %q redefined in %q", e.Item, e.Name, e.Enclosing)
}
func (e *ItemRedefinitionError) Code() Code { return CodeItemRedefinition }

// BitmaskWithoutValueError reports a bitmask enum with an entry missing an
// explicit XML value (spec.md §4.4.2 step 6).
type BitmaskWithoutValueError struct {
	Enum  string
	Entry string
}

func (e *BitmaskWithoutValueError) Error() string {
	return fmt.Sprintf("bitmask enum %q entry %q has no explicit value", e.Enum, e.Entry)
}
func (e *BitmaskWithoutValueError) Code() Code { return CodeBitmaskWithoutValue }

// RepeatedEntryValueError reports two entries of the same enum sharing a
// numeric value, naming both offenders.
type RepeatedEntryValueError struct {
	Enum           string
	First, Second  string
	Value          uint64
}

func (e *RepeatedEntryValueError) Error() string {
	return fmt.Sprintf("enum %q: entries %q and %q both have value %d", e.Enum, e.First, e.Second, e.Value)
}
func (e *RepeatedEntryValueError) Code() Code { return CodeRepeatedEntryValue }

// NoSubItemsError reports an enum with zero entries or a message with zero
// regular fields (spec.md §9).
type NoSubItemsError struct {
	Item     string // "enum" or "message"
	Name     string
	SubItems string // "entries" or "fields"
}

func (e *NoSubItemsError) Error() string {
	return fmt.Sprintf("%s %q has no %s", e.Item, e.Name, e.SubItems)
}
func (e *NoSubItemsError) Code() Code { return CodeNoSubItems }

// InvalidEntryError reports a malformed entry value literal (spec.md §4.4.3).
type InvalidEntryError struct {
	Enum  string
	Entry string
	Value string
	Err   error
}

func (e *InvalidEntryError) Error() string {
	return fmt.Sprintf("enum %q entry %q: invalid value literal %q: %v", e.Enum, e.Entry, e.Value, e.Err)
}
func (e *InvalidEntryError) Code() Code    { return CodeInvalidEntry }
func (e *InvalidEntryError) Unwrap() error { return e.Err }

// RepeatedMessageIdError reports two messages sharing an id.
type RepeatedMessageIdError struct {
	First, Second string
	Id            uint32
}

func (e *RepeatedMessageIdError) Error() string {
	return fmt.Sprintf("messages %q and %q both have id %d", e.First, e.Second, e.Id)
}
func (e *RepeatedMessageIdError) Code() Code { return CodeRepeatedMessageId }

// MessageIsTooBigError reports a wire size over the 255-byte cap.
type MessageIsTooBigError struct {
	Message string
	Size    int
	MaxSize int
}

func (e *MessageIsTooBigError) Error() string {
	return fmt.Sprintf("message %q wire size %d exceeds maximum %d", e.Message, e.Size, e.MaxSize)
}
func (e *MessageIsTooBigError) Code() Code { return CodeMessageIsTooBig }

// InvalidFieldTypeError reports an unparsable field type string.
type InvalidFieldTypeError struct {
	Message string
	Field   string
	Type    string
}

func (e *InvalidFieldTypeError) Error() string {
	return fmt.Sprintf("message %q field %q: invalid type %q", e.Message, e.Field, e.Type)
}
func (e *InvalidFieldTypeError) Code() Code { return CodeInvalidFieldType }

// InvalidEnumReferenceError reports a field's enum attribute naming an enum
// absent from the module.
type InvalidEnumReferenceError struct {
	Message string
	Field   string
	Enum    string
}

func (e *InvalidEnumReferenceError) Error() string {
	return fmt.Sprintf("message %q field %q references unknown enum %q", e.Message, e.Field, e.Enum)
}
func (e *InvalidEnumReferenceError) Code() Code { return CodeInvalidEnumReference }

// FieldTypeIsIncompatibleWithEnumError reports a carrier type too narrow (or
// not an integer) for the referenced enum's minimum width (spec.md §4.4.5).
type FieldTypeIsIncompatibleWithEnumError struct {
	Message  string
	Field    string
	Enum     string
	FieldType string
}

func (e *FieldTypeIsIncompatibleWithEnumError) Error() string {
	return fmt.Sprintf("message %q field %q: type %q is incompatible with enum %q", e.Message, e.Field, e.FieldType, e.Enum)
}
func (e *FieldTypeIsIncompatibleWithEnumError) Code() Code {
	return CodeFieldTypeIncompatibleWithEnum
}

// List accumulates errors across a pipeline stage. It implements error so a
// non-empty List can be returned directly; a nil/empty List is not an error
// (mirrors the teacher's NonFatalErrors, generalized to the closed taxonomy
// above instead of proto's two non-fatal kinds).
type List []error

func (l List) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Add appends err to the list if non-nil, and reports whether it did.
func (l *List) Add(err error) bool {
	if err == nil {
		return false
	}
	*l = append(*l, err)
	return true
}

// AsError returns l as an error, or nil if l is empty.
func (l List) AsError() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
