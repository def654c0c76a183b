// Command mavgen compiles MAVLink dialect XML files into generated Go
// source: one package per dialect, following the driver surface described
// in spec.md §6.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
