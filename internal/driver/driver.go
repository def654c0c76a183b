// Package driver implements the external interfaces of spec.md §6: the
// one-file and directory build modes that glue World, parser, flatten,
// normalizer and printer together for one invocation. This is explicitly
// outside the core compiler's contract (spec.md §1: "the build driver /
// CLI: locates input files, writes outputs") but is the thing cmd/mavgen
// calls.
package driver

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/mavlink-go/mavgen/internal/flatten"
	"github.com/mavlink-go/mavgen/internal/fsworld"
	"github.com/mavlink-go/mavgen/internal/ir"
	"github.com/mavlink-go/mavgen/internal/normalizer"
	"github.com/mavlink-go/mavgen/internal/parser"
	"github.com/mavlink-go/mavgen/internal/printer"
)

// DefaultMaxIncludeDepth is the driver's default for Options.MaxIncludeDepth
// when a caller (such as the CLI's --max-include-depth flag) leaves it unset.
const DefaultMaxIncludeDepth = parser.DefaultMaxDepth

// Options configures one driver invocation.
type Options struct {
	World           fsworld.World
	Log             *logrus.Logger
	MaxIncludeDepth int
}

// CompileOne runs the full pipeline for a single root dialect file and
// returns its package name (snake_case of the input's base name, per
// spec.md §6) and the printed Go source.
func CompileOne(opts Options, inputPath string) (pkgName string, source []byte, module *ir.MavlinkModule, err error) {
	log := opts.Log

	p := parser.New(opts.World, opts.MaxIncludeDepth)
	p.ParseRoot(inputPath)
	files, err := p.Finish()
	if err != nil {
		return "", nil, nil, fmt.Errorf("parsing %s: %w", inputPath, err)
	}
	log.Infof("parsed %d file(s) for %s", len(files), inputPath)

	canonicalRoot, err := opts.World.NormalisePath(inputPath)
	if err != nil {
		return "", nil, nil, fmt.Errorf("normalising root path %s: %w", inputPath, err)
	}

	flat := flatten.Flatten(files, canonicalRoot)
	log.Infof("flattened dialect %s (%d enums, %d messages)", inputPath, len(flat.Enums), len(flat.Messages))

	module, err = normalizer.Normalize(flat)
	if err != nil {
		return "", nil, nil, fmt.Errorf("normalising %s: %w", inputPath, err)
	}
	log.Debugf("normalised %s: %d enums, %d messages", inputPath, len(module.Enums), len(module.Messages))

	pkgName = SnakeCase(baseNameNoExt(inputPath))
	out, err := printer.Print(module, pkgName)
	if err != nil {
		return "", nil, nil, fmt.Errorf("printing %s: %w", inputPath, err)
	}
	return pkgName, out, module, nil
}

// OutputFileName derives the one-file mode's output path when the supplied
// output is a directory (spec.md §6: "derive the filename from the input's
// base name (file stem -> snake_case -> .ext)").
func OutputFileName(inputPath string) string {
	return SnakeCase(baseNameNoExt(inputPath)) + ".go"
}

func baseNameNoExt(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SnakeCase converts an arbitrary file-stem (which may already be
// snake_case, or may be CamelCase/kebab-case) into snake_case.
func SnakeCase(s string) string {
	var b strings.Builder
	prevLower := false
	for _, r := range s {
		switch {
		case r == '-' || r == ' ':
			b.WriteByte('_')
			prevLower = false
		case r >= 'A' && r <= 'Z':
			if prevLower {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			prevLower = false
		default:
			b.WriteRune(r)
			prevLower = r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
		}
	}
	return b.String()
}
