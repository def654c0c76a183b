package driver

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// DeriveImportBase computes the Go import path corresponding to outDir, for
// directory mode's gated re-export files (spec.md §6). It walks upward from
// outDir looking for the nearest go.mod, reads its module path with
// golang.org/x/mod/modfile (the same package cmd/go itself uses to parse
// go.mod), and appends outDir's path relative to that module's root.
func DeriveImportBase(outDir string) (string, error) {
	absOut, err := filepath.Abs(outDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path for %s: %w", outDir, err)
	}

	modRoot, modPath, err := findModule(absOut)
	if err != nil {
		return "", err
	}

	rel, err := filepath.Rel(modRoot, absOut)
	if err != nil {
		return "", fmt.Errorf("computing %s relative to module root %s: %w", absOut, modRoot, err)
	}
	rel = filepath.ToSlash(rel)
	if rel == "." {
		return modPath, nil
	}
	return modPath + "/" + rel, nil
}

// findModule walks dir and its ancestors for the nearest go.mod, returning
// its directory and declared module path.
func findModule(dir string) (root, modulePath string, err error) {
	for {
		goModPath := filepath.Join(dir, "go.mod")
		data, readErr := os.ReadFile(goModPath)
		if readErr == nil {
			modulePath = modfile.ModulePath(data)
			if modulePath == "" {
				return "", "", fmt.Errorf("%s has no module declaration", goModPath)
			}
			return dir, modulePath, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", "", fmt.Errorf("no go.mod found above %s", dir)
		}
		dir = parent
	}
}
