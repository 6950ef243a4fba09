// Package cmd implements the CLI for mark2docx using Cobra.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mark2docx <input>",
	Short: "mark2docx — convert Markdown files into Word documents",
	Long: `mark2docx converts Markdown (or HTML) files into styled Word documents,
preserving headings, emphasis, lists, tables, code blocks, blockquotes,
links, and horizontal rules.

Usage:
  mark2docx notes.md
  mark2docx notes.md -o report.docx
  mark2docx docs/ -o out/
  mark2docx notes.md --pdf`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,

	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
