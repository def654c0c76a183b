package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mavlink-go/mavgen/internal/driver"
	"github.com/mavlink-go/mavgen/internal/fsworld"
	"github.com/mavlink-go/mavgen/internal/ir"
)

// cliOptions collects the flags bound to the root command, following the
// same flags-bound-to-a-struct, RunE-returns-error shape as
// folbricht-desync's cmd/desync commands.
type cliOptions struct {
	output          string
	maxIncludeDepth int
	importBase      string
	dumpIR          bool
	verbose         bool
	quiet           bool
}

func newRootCommand() *cobra.Command {
	var opt cliOptions

	cmd := &cobra.Command{
		Use:   "mavgen <dialect.xml>... -o <output>",
		Short: "Compiles MAVLink dialect XML into generated Go source.",
		Long: `mavgen reads one or more MAVLink dialect XML files, resolves their
<include> graph, flattens and normalises the result, and prints a
self-contained Go package per dialect.

One-file mode: a single input and an output file (or directory, in which
case the filename is derived from the input's base name). Directory mode:
multiple inputs and an output directory, producing one subpackage per
dialect plus an umbrella index.`,
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(newLogger(opt), opt, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opt.output, "output", "o", "", "output file (one-file mode) or directory (directory mode)")
	flags.IntVar(&opt.maxIncludeDepth, "max-include-depth", driver.DefaultMaxIncludeDepth, "maximum <include> chain depth before a file is rejected")
	flags.StringVar(&opt.importBase, "import-base", "", "Go import path corresponding to the output directory, for directory mode's gated re-export files (derived from the enclosing go.mod when omitted)")
	flags.BoolVar(&opt.dumpIR, "dump-ir", false, "write the normalised IR as text instead of generated Go source (one-file mode only; directory mode ignores it)")
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "debug-level logging")
	flags.BoolVarP(&opt.quiet, "quiet", "q", false, "warn-level logging only")

	return cmd
}

func newLogger(opt cliOptions) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{})
	switch {
	case opt.verbose:
		log.SetLevel(logrus.DebugLevel)
	case opt.quiet:
		log.SetLevel(logrus.WarnLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

func run(log *logrus.Logger, opt cliOptions, inputs []string) error {
	if opt.output == "" {
		return fmt.Errorf("an output path is required, see -o")
	}

	world := fsworld.OS{}
	driverOpts := driver.Options{
		World:           world,
		Log:             log,
		MaxIncludeDepth: opt.maxIncludeDepth,
	}

	if !directoryMode(len(inputs)) {
		return runOneFile(driverOpts, opt, inputs[0])
	}
	return runDirectory(driverOpts, opt, inputs)
}

// directoryMode implements spec.md §6's mode auto-detection: directory mode
// requires more than one input. A single input always uses one-file mode,
// even when its output path is an existing directory — in that case
// writeOutput derives the filename from the input's base name rather than
// switching pipelines.
func directoryMode(inputCount int) bool {
	return inputCount > 1
}

func runOneFile(driverOpts driver.Options, opt cliOptions, input string) error {
	_, source, module, err := driver.CompileOne(driverOpts, input)
	if err != nil {
		return err
	}

	if opt.dumpIR {
		return writeOutput(opt.output, driver.OutputFileName(input), []byte(ir.Dump(module)))
	}
	return writeOutput(opt.output, driver.OutputFileName(input), source)
}

func writeOutput(output, derivedName string, data []byte) error {
	info, err := os.Stat(output)
	path := output
	if err == nil && info.IsDir() {
		path = output + string(os.PathSeparator) + derivedName
	}
	return os.WriteFile(path, data, 0o644)
}

func runDirectory(driverOpts driver.Options, opt cliOptions, inputs []string) error {
	return driver.CompileDirectory(driver.DirectoryOptions{
		Options:    driverOpts,
		OutDir:     opt.output,
		ImportBase: opt.importBase,
	}, inputs)
}
