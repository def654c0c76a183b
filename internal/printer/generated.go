package printer

import (
	"bytes"
	"fmt"
)

// generatedFile accumulates source text one line at a time, adapted from
// the teacher's protogen.GeneratedFile.P idiom: call P with any number of
// values, each stringified as fmt.Print would, concatenated with no
// inserted spaces, followed by a newline.
type generatedFile struct {
	buf bytes.Buffer
}

func (g *generatedFile) P(v ...interface{}) {
	for _, x := range v {
		fmt.Fprint(&g.buf, x)
	}
	fmt.Fprintln(&g.buf)
}

func (g *generatedFile) Bytes() []byte { return g.buf.Bytes() }
