package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	exportStdout bool
	exportVerify bool
)

func init() {
	cmd := newExportCmd()
	cmd.Flags().BoolVar(&exportStdout, "stdout", false, "Write to stdout instead of file")
	cmd.Flags().BoolVar(&exportVerify, "verify", false, "Fail unless the export is byte-identical to the input")
	rootCmd.AddCommand(cmd)
}

func newExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file> [output.csv]",
		Short: "Re-serialize a table",
		Long: `The export command parses a table and writes it back out. A well-formed
file is reproduced byte for byte, so --verify doubles as a format check.

Example:
  wtcsvctl export lang/units.csv copy.csv
  wtcsvctl export lang/units.csv --stdout
  wtcsvctl export lang/units.csv --verify`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(args)
		},
	}
	return cmd
}

func runExport(args []string) error {
	path := args[0]
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	// Can't specify both output file and stdout
	if outputPath != "" && exportStdout {
		return fmt.Errorf("cannot specify both output file and --stdout")
	}

	// Need an output unless only verifying
	if outputPath == "" && !exportStdout && !exportVerify {
		return fmt.Errorf("must specify output file, --stdout or --verify")
	}

	f, err := loadFile(path)
	if err != nil {
		return err
	}

	if exportVerify {
		text, _, err := readText(path)
		if err != nil {
			return err
		}
		out := f.Table.Export()
		if out != text {
			at := firstMismatch(text, out)
			return fmt.Errorf("export of %s differs from input at byte %d", path, at)
		}
		printVerbose("%s round-trips (%d bytes)\n", path, len(out))
	}

	switch {
	case exportStdout:
		_, err = f.Table.WriteTo(os.Stdout)
		return err
	case outputPath != "":
		if err := saveFile(f, outputPath); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		printInfo("Exported %d records to %s\n", f.Table.Len(), outputPath)
	default:
		printInfo("%s: OK\n", path)
	}
	return nil
}

// firstMismatch returns the index of the first byte where a and b differ.
func firstMismatch(a, b string) int {
	n := min(len(a), len(b))
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return n
}
