// Package parser implements spec.md §4.2: it walks the <include> graph
// starting from one or more root dialect files, parsing every reachable
// file exactly once, bounding recursion depth, and — once all roots have
// been submitted — checking the resulting graph is a DAG.
package parser

import (
	"path/filepath"
	"sort"

	"github.com/mavlink-go/mavgen/internal/compilerr"
	"github.com/mavlink-go/mavgen/internal/fsworld"
	"github.com/mavlink-go/mavgen/internal/xmlmodel"
)

// DefaultMaxDepth is the default maximum inclusion-stack depth (spec.md
// §4.2), overridable by the driver's --max-include-depth flag.
const DefaultMaxDepth = 10

// ParsedFile is one file's XML model plus the canonical paths of the files
// it directly includes, in source order.
type ParsedFile struct {
	Path     string
	Model    *xmlmodel.Mavlink
	Includes []string
}

// Parser accumulates parsed files across one or more roots, fresh per
// invocation (spec.md §9: "there is no global state").
type Parser struct {
	world    fsworld.World
	maxDepth int

	parsed map[string]*ParsedFile
	errs   compilerr.List
}

// New constructs a Parser over world with the given maximum include
// recursion depth. maxDepth <= 0 selects DefaultMaxDepth.
func New(world fsworld.World, maxDepth int) *Parser {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &Parser{
		world:    world,
		maxDepth: maxDepth,
		parsed:   make(map[string]*ParsedFile),
	}
}

// ParseRoot parses path and every file it transitively includes, appending
// any failures to the parser's accumulated error list rather than stopping.
// A root may also be reachable transitively from another root; it will
// still only be parsed (and appear in Finish's map) once.
func (p *Parser) ParseRoot(path string) {
	canonical, err := p.world.NormalisePath(path)
	if err != nil {
		p.errs.Add(&compilerr.IOError{Path: path, Err: err})
		return
	}
	p.parseRecursive(canonical, nil)
}

func (p *Parser) parseRecursive(canonical string, stack []string) {
	if _, ok := p.parsed[canonical]; ok {
		return
	}
	if len(stack) == p.maxDepth {
		// The stack already holds maxDepth entries; canonical (the node that
		// would push it past the limit) is reported as rejected but is not
		// itself added to the stack (spec.md §8 S9: limit 3 over a 1->2->3->4
		// chain reports the stack as exactly [1,2,3]).
		p.errs.Add(&compilerr.RecursionLimitExceededError{Stack: append([]string{}, stack...)})
		return
	}

	data, err := p.world.ReadFile(canonical)
	if err != nil {
		p.errs.Add(&compilerr.IOError{Path: canonical, Err: err})
		return
	}
	model, err := xmlmodel.Parse(data)
	if err != nil {
		p.errs.Add(&compilerr.XMLSyntaxError{Path: canonical, Err: err})
		return
	}

	stack = append(stack, canonical)
	dir := filepath.Dir(canonical)

	pf := &ParsedFile{Path: canonical, Model: model}
	// Mark as parsed (and reserve its slot) before recursing into includes
	// so a diamond- or cycle-shaped graph can detect "already parsed"
	// during the recursive descent, matching spec.md §4.2 step 3a.
	p.parsed[canonical] = pf

	for _, inc := range model.Includes {
		incPath := inc
		if !filepath.IsAbs(incPath) {
			incPath = filepath.Join(dir, incPath)
		}
		incCanonical, err := p.world.NormalisePath(incPath)
		if err != nil {
			p.errs.Add(&compilerr.IOError{Path: incPath, Err: err})
			continue
		}
		pf.Includes = append(pf.Includes, incCanonical)
		p.parseRecursive(incCanonical, stack)
	}
}

// Finish runs cycle detection over the accumulated include graph and
// returns the parsed-file map, or the accumulated errors (parse failures
// plus, if found, a CycleDetectedError) if any occurred.
func (p *Parser) Finish() (map[string]*ParsedFile, error) {
	if cycle := detectCycle(p.parsed); cycle != nil {
		p.errs.Add(&compilerr.CycleDetectedError{Cycle: cycle})
	}
	if err := p.errs.AsError(); err != nil {
		return nil, err
	}
	return p.parsed, nil
}

// detectCycle runs a DFS-based topological check over path -> includes.
// Returns the offending cycle (as a path slice ending back at its start) or
// nil if the graph is a DAG.
func detectCycle(parsed map[string]*ParsedFile) []string {
	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(parsed))
	var path []string

	var visit func(p string) []string
	visit = func(p string) []string {
		switch state[p] {
		case done:
			return nil
		case visiting:
			// Found the back-edge; report the cycle starting at p.
			start := 0
			for i, v := range path {
				if v == p {
					start = i
					break
				}
			}
			return append(append([]string{}, path[start:]...), p)
		}
		state[p] = visiting
		path = append(path, p)
		pf, ok := parsed[p]
		if ok {
			for _, inc := range pf.Includes {
				if cycle := visit(inc); cycle != nil {
					return cycle
				}
			}
		}
		path = path[:len(path)-1]
		state[p] = done
		return nil
	}

	// Deterministic order is irrelevant to *whether* a cycle exists, but we
	// still want a stable, reproducible error message across runs.
	keys := make([]string, 0, len(parsed))
	for k := range parsed {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if state[k] == unvisited {
			if cycle := visit(k); cycle != nil {
				return cycle
			}
		}
	}
	return nil
}
