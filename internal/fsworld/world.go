// Package fsworld provides the World collaborator the parser reads XML
// dialect files through (spec.md §4.1), plus the real OS-backed
// implementation used by the driver. Every filesystem access in the pipeline
// goes through this interface so the parser can be exercised against an
// in-memory fake in tests without touching disk.
package fsworld

import (
	"os"
	"path/filepath"

	"github.com/pkg/errors"
)

// World is the sole filesystem collaborator of the compiler core.
// normalise_path must be deterministic: two textually different paths
// naming the same file must yield equal canonical paths.
type World interface {
	ReadFile(path string) ([]byte, error)
	NormalisePath(path string) (string, error)
}

// OS is a World backed by the real filesystem. Paths are canonicalised with
// filepath.Abs followed by symlink resolution, so two different relative
// spellings of the same file (and any symlink indirection) converge on one
// canonical identity.
type OS struct{}

var _ World = OS{}

func (OS) ReadFile(path string) ([]byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}
	return b, nil
}

func (OS) NormalisePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "resolve absolute path for %s", path)
	}
	// EvalSymlinks additionally canonicalises case on case-insensitive
	// filesystems and collapses ".."/"." segments; fall back to the plain
	// absolute path if the file does not exist yet (e.g. an output path).
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return filepath.Clean(abs), nil
	}
	return resolved, nil
}
