package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mcdoc/internal/diagfmt"
	"mcdoc/internal/driver"
	"mcdoc/internal/printer"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.mcdoc",
	Short: "Parse an mcdoc source file and print its AST",
	Long:  `Parse reads a single mcdoc source file and re-renders its parsed AST as source text, useful for checking how the parser understood a file.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	result, err := driver.Parse(filePath)
	if err != nil {
		return fmt.Errorf("parse failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Context: 2}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	}

	fmt.Fprint(os.Stdout, printer.File(result.File))
	if result.Bag.HasErrors() {
		return fmt.Errorf("parse finished with errors")
	}
	return nil
}
