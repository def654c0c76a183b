package parser

import (
	"fmt"
	"testing"

	"github.com/mavlink-go/mavgen/internal/compilerr"
)

// memWorld is an in-memory World fake keyed by canonical path, standing in
// for the filesystem the way the teacher's own tests build descriptor sets
// in memory rather than touching disk.
type memWorld map[string][]byte

func (w memWorld) ReadFile(path string) ([]byte, error) {
	data, ok := w[path]
	if !ok {
		return nil, fmt.Errorf("no such file: %s", path)
	}
	return data, nil
}

func (w memWorld) NormalisePath(path string) (string, error) {
	return path, nil
}

func dialectXML(includes ...string) []byte {
	var b []byte
	b = append(b, []byte("<mavlink>")...)
	for _, inc := range includes {
		b = append(b, []byte(fmt.Sprintf("<include>%s</include>", inc))...)
	}
	b = append(b, []byte("<messages><message id=\"1\" name=\"M\"><field type=\"uint8_t\" name=\"f\">x</field></message></messages></mavlink>")...)
	return b
}

// S8 — Cycle detection: a.xml includes b.xml, b.xml includes a.xml.
func TestFinishDetectsCycle(t *testing.T) {
	world := memWorld{
		"a.xml": dialectXML("b.xml"),
		"b.xml": dialectXML("a.xml"),
	}
	p := New(world, 10)
	p.ParseRoot("a.xml")
	_, err := p.Finish()
	if err == nil {
		t.Fatal("expected CycleDetectedError, got nil")
	}
	list, ok := err.(compilerr.List)
	if !ok {
		t.Fatalf("error type = %T, want compilerr.List", err)
	}
	found := false
	for _, e := range list {
		if _, ok := e.(*compilerr.CycleDetectedError); ok {
			found = true
		}
	}
	if !found {
		t.Errorf("errors %v do not contain a CycleDetectedError", list)
	}
}

// S9 — Recursion cap: with limit 3, a chain 1->2->3->4 yields
// RecursionLimitExceeded whose stack is exactly [1,2,3].
func TestRecursionLimitExceeded(t *testing.T) {
	world := memWorld{
		"1.xml": dialectXML("2.xml"),
		"2.xml": dialectXML("3.xml"),
		"3.xml": dialectXML("4.xml"),
		"4.xml": dialectXML(),
	}
	p := New(world, 3)
	p.ParseRoot("1.xml")
	_, err := p.Finish()
	if err == nil {
		t.Fatal("expected RecursionLimitExceededError, got nil")
	}
	list, ok := err.(compilerr.List)
	if !ok {
		t.Fatalf("error type = %T, want compilerr.List", err)
	}
	var recErr *compilerr.RecursionLimitExceededError
	for _, e := range list {
		if re, ok := e.(*compilerr.RecursionLimitExceededError); ok {
			recErr = re
		}
	}
	if recErr == nil {
		t.Fatalf("errors %v do not contain a RecursionLimitExceededError", list)
	}
	want := []string{"1.xml", "2.xml", "3.xml"}
	if len(recErr.Stack) != len(want) {
		t.Fatalf("stack = %v, want %v", recErr.Stack, want)
	}
	for i, p := range want {
		if recErr.Stack[i] != p {
			t.Errorf("stack[%d] = %s, want %s", i, recErr.Stack[i], p)
		}
	}
}

func TestParseRootResolvesIncludes(t *testing.T) {
	world := memWorld{
		"root.xml": dialectXML("child.xml"),
		"child.xml": dialectXML(),
	}
	p := New(world, DefaultMaxDepth)
	p.ParseRoot("root.xml")
	files, err := p.Finish()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(files) != 2 {
		t.Fatalf("len(files) = %d, want 2", len(files))
	}
	if _, ok := files["child.xml"]; !ok {
		t.Error("child.xml was not parsed")
	}
}
