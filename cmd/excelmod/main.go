// Package main provides the CLI entry point for excelmod-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/ukaji3/excelmod-go/pkg/excelmod"
	"github.com/ukaji3/excelmod-go/pkg/excelmod/models"
	"github.com/xuri/excelize/v2"
)

var (
	outputPath   string
	sheetNames   []string
	columnNames  []string
	excludeNames []string
	instructions string
	includeZero  bool
	autofit      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "excelmod [input.xlsx]",
		Short: "Color spreadsheet cells that fall in percentile margins",
		Long: `excelmod-go colors the cells of numeric columns whose values fall in the
top or bottom percentile margins of their column, with optional exclusion
of majority values and zeros.

The instruction string uses space-separated option/value pairs:
  M 5.0   upper margin %      m 10.0  lower margin %
  C g     upper color (r/g)   c r     lower color (r/g)
  p 10.0  majority %          s b     sections (u/l/b/n)
  o 1     row write offset    O 0     column write offset`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: <input>_colorized.xlsx)")
	rootCmd.Flags().StringSliceVar(&sheetNames, "sheets", nil, "Sheets to modify (default: all)")
	rootCmd.Flags().StringSliceVar(&columnNames, "columns", nil, "Columns to colorize (default: all)")
	rootCmd.Flags().StringSliceVar(&excludeNames, "exclude", nil, "Columns to skip when --columns is not set")
	rootCmd.Flags().StringVarP(&instructions, "instructions", "i", "", "Instruction string, e.g. \"M 5 m 10 C g c r p 10 s b o 1 O 0\"")
	rootCmd.Flags().BoolVar(&includeZero, "include-zero", false, "Treat zero cells as data instead of skipping them")
	rootCmd.Flags().BoolVar(&autofit, "autofit", false, "Autofit column widths of modified sheets")
	if err := rootCmd.MarkFlagRequired("instructions"); err != nil {
		fmt.Fprintf(os.Stderr, "excelmod: %v\n", err)
		os.Exit(1)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	// Validate input file exists
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("file not found: %s", inputPath)
	}

	inst, err := excelmod.ParseInstructions(instructions)
	if err != nil {
		return err
	}
	inst.Config.IncludeZero = includeZero

	f, err := excelize.OpenFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	wb, err := excelmod.ReadWorkbook(f, filepath.Base(inputPath))
	if err != nil {
		return fmt.Errorf("failed to read workbook: %w", err)
	}

	targets := wb.Sheets
	if len(sheetNames) > 0 {
		targets = nil
		for _, name := range sheetNames {
			sheet, ok := wb.Sheet(name)
			if !ok {
				fmt.Fprintf(os.Stderr, "excelmod: sheet %q not found\n", name)
				continue
			}
			targets = append(targets, sheet)
		}
	}

	// Per-sheet and per-column failures are reported and the run
	// continues; the command fails only when no sheet could be processed.
	processed := 0
	for _, sheet := range targets {
		if err := colorizeSheet(f, sheet, inst); err != nil {
			fmt.Fprintf(os.Stderr, "excelmod: %v\n", err)
			continue
		}
		processed++
	}
	if processed == 0 {
		return fmt.Errorf("no sheet could be processed")
	}

	out := outputPath
	if out == "" {
		out = defaultOutputPath(inputPath)
	}
	if err := f.SaveAs(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	fmt.Printf("wrote %s (%d sheet(s))\n", out, processed)
	return nil
}

// colorizeSheet applies the instruction to one sheet. Column failures
// inside the sheet are reported; the sheet itself fails only when every
// directed column failed, so it does not count as processed.
func colorizeSheet(f *excelize.File, sheet models.Sheet, inst excelmod.Instruction) error {
	sink := excelmod.NewExcelSink(f, sheet.Name)

	var err error
	var directed int
	if len(columnNames) > 0 {
		directives := map[string]models.Directive{}
		for _, name := range columnNames {
			directives[name] = inst.Directive
		}
		directed = len(directives)
		err = excelmod.Colorize(sheet, directives, inst.Config, sink)
	} else {
		for _, col := range sheet.Columns {
			if !slices.Contains(excludeNames, col.Name) {
				directed++
			}
		}
		err = excelmod.ColorizeAll(sheet, inst.Directive, inst.Config, sink, excludeNames)
	}
	if err != nil {
		if directed > 0 && columnFailures(err) >= directed {
			return fmt.Errorf("sheet %q: %w", sheet.Name, err)
		}
		fmt.Fprintf(os.Stderr, "excelmod: %v\n", err)
	}

	if autofit {
		if err := sink.AutofitColumns(); err != nil {
			return fmt.Errorf("autofit failed for sheet %q: %w", sheet.Name, err)
		}
	}
	return nil
}

// columnFailures counts the per-column errors aggregated by Colorize.
func columnFailures(err error) int {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return len(joined.Unwrap())
	}
	return 1
}

// defaultOutputPath derives the output name from the input, keeping the
// extension: data.xlsx -> data_colorized.xlsx.
func defaultOutputPath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + "_colorized" + ext
}
