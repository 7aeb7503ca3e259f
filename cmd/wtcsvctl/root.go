package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/wtcsvkit/pkg/wtcsv"
	"github.com/joshuapare/wtcsvkit/pkg/wtfile"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	noColor    bool
	strict     bool
	encoding   string
	configPath string

	// cfg is loaded before every command runs.
	cfg = defaultConfig()
)

var rootCmd = &cobra.Command{
	Use:   "wtcsvctl",
	Short: "Inspect, edit and compare WT CSV localization tables",
	Long: `wtcsvctl is a tool for working with the semicolon-delimited CSV tables
the game uses for localization and unit data. It can look up and search
records, bulk-edit or set single columns, validate files and diff tables or
whole directories, always writing files back byte for byte.`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		initLogger(verbose && !quiet)
		if noColor || jsonOut {
			color.NoColor = true
		}
		if path := configSource(configPath); path != "" {
			logger.Debug("config loaded", "path", path)
		}
		return nil
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&strict, "strict", false, "Reject fields that are not wrapped in quotes")
	rootCmd.PersistentFlags().
		StringVar(&encoding, "encoding", "", "Input encoding (auto, utf-8, utf-8-bom, utf-16le, utf-16be, windows-1252)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a TOML config file")
}

// exitError ends the process with a specific status after a command has
// already written its report.
type exitError struct {
	code int
	msg  string
}

func (e *exitError) Error() string { return e.msg }

func execute() {
	if err := rootCmd.Execute(); err != nil {
		printError("%v\n", err)
		var ee *exitError
		if errors.As(err, &ee) {
			os.Exit(ee.code)
		}
		os.Exit(1)
	}
}

// fileOptions merges config file values with the global flags.
func fileOptions() wtfile.Options {
	opts := wtfile.Options{
		Encoding: cfg.Encoding,
		Parse:    wtcsv.ParseOptions{Strict: cfg.Strict || strict},
		Diff:     wtcsv.DiffOptions{AllColumns: cfg.Diff.AllColumns},
		Workers:  cfg.Compare.Workers,
	}
	if encoding != "" {
		opts.Encoding = encoding
	}
	return opts
}

// loadFile loads a table with the merged options.
func loadFile(path string) (*wtfile.File, error) {
	printVerbose("Loading %s\n", path)
	f, err := wtfile.Load(path, fileOptions())
	if err != nil {
		return nil, err
	}
	logger.Debug("table loaded",
		"path", path,
		"records", f.Table.Len(),
		"columns", f.Table.Header.Len,
		"crlf", f.Table.CRLF,
		"encoding", f.Encoding.String())
	return f, nil
}

// saveFile writes f to output, to its own path when output is empty, or to
// stdout when output is "-".
func saveFile(f *wtfile.File, output string) error {
	switch output {
	case "-":
		_, err := f.Table.WriteTo(os.Stdout)
		return err
	case "":
		printVerbose("Writing %s\n", f.Path)
		return f.Save()
	default:
		printVerbose("Writing %s\n", output)
		return f.SaveAs(output)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printError prints an error message
func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, color.RedString("Error: ")+format, args...)
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	return encodeJSON(os.Stdout, v)
}

func encodeJSON(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
