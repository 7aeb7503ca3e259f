package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Set at link time with -ldflags "-X main.buildCommit=...".
	version     = "dev"
	buildCommit = "none"
	buildDate   = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("wtcsvctl %s\n", version)
		fmt.Printf("  commit: %s\n", buildCommit)
		fmt.Printf("  built: %s\n", buildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
