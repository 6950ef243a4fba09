// Package cmd — conversion entrypoint.
// Orchestrates the pipeline for a single file or, when the input is a
// directory, for every convertible document under it:
// load → [normalize] → parse → emit → render → write.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/danyQe/mark2docx/batch"
	"github.com/danyQe/mark2docx/core"
	"github.com/danyQe/mark2docx/core/convert"
	"github.com/danyQe/mark2docx/core/output"
	"github.com/danyQe/mark2docx/core/render"
)

// Flag variables.
var (
	flagOutput string
	flagPDF    bool
)

func init() {
	rootCmd.Flags().StringVarP(&flagOutput, "output", "o", "",
		"Output path (file input) or output directory (directory input); default: input path with the output extension")
	rootCmd.Flags().BoolVar(&flagPDF, "pdf", false, "Render PDF instead of DOCX")
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	info, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("reading input %s: %w", input, err)
	}

	if info.IsDir() {
		return runBatch(input)
	}
	return runSingle(input)
}

// selectRenderer creates the Renderer for the chosen output format.
func selectRenderer() core.Renderer {
	if flagPDF {
		return render.NewPDFRenderer()
	}
	return render.NewDocxRenderer()
}

// runSingle converts one file.
func runSingle(input string) error {
	conv := convert.New(convert.WithRenderer(selectRenderer()))

	outPath := flagOutput
	if outPath == "" {
		outPath = output.DefaultPath(input, conv.Extension())
	}

	if err := conv.ConvertFile(input, outPath); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "✓ Written: %s\n", outPath)
	return nil
}

// runBatch converts every discoverable document under the input
// directory, mirroring its structure under the output directory.
// Per-file failures are reported and counted; the run continues.
func runBatch(inputDir string) error {
	outputDir := flagOutput
	if outputDir == "" {
		outputDir = inputDir
	}

	files, err := batch.Discover(inputDir)
	if err != nil {
		return fmt.Errorf("discovering inputs: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no convertible files found under %s", inputDir)
	}

	fmt.Fprintf(os.Stdout, "Found %d files to convert\n", len(files))

	renderer := selectRenderer()
	var errCount int
	for i, file := range files {
		fmt.Fprintf(os.Stdout, "[%d/%d] Converting %s\n", i+1, len(files), file)

		// Fresh converter per file: documents are never reused
		// across conversions.
		conv := convert.New(convert.WithRenderer(renderer))

		outPath, err := output.MirrorPath(inputDir, file, outputDir, conv.Extension())
		if err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}
		if err := conv.ConvertFile(file, outPath); err != nil {
			fmt.Fprintf(os.Stderr, "  ✗ Error: %v\n", err)
			errCount++
			continue
		}
		fmt.Fprintf(os.Stdout, "  ✓ Written: %s\n", outPath)
	}

	if errCount > 0 {
		return fmt.Errorf("%d/%d files failed", errCount, len(files))
	}
	return nil
}
