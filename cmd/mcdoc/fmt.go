package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcdoc/internal/diagfmt"
	"mcdoc/internal/driver"
	"mcdoc/internal/printer"
)

var fmtCmd = &cobra.Command{
	Use:   "fmt [flags] file.mcdoc",
	Short: "Reformat an mcdoc source file",
	Long: `Fmt parses a source file and prints it back out in canonical form. With
--write, the file is rewritten in place instead of printed to stdout.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

func init() {
	fmtCmd.Flags().Bool("write", false, "rewrite the file in place instead of printing to stdout")
}

func runFmt(cmd *cobra.Command, args []string) error {
	filePath := args[0]
	write, err := cmd.Flags().GetBool("write")
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}
	if result.Bag.HasErrors() {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Context: 2}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		return fmt.Errorf("refusing to format %s: it did not parse cleanly", filePath)
	}

	formatted := printer.File(result.File)
	if write {
		return os.WriteFile(filePath, []byte(formatted), 0o644)
	}
	fmt.Fprint(os.Stdout, formatted)
	return nil
}
