package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/engine"
	"mcdoc/internal/printer"
	"mcdoc/internal/profile"
	"mcdoc/internal/project"
	"mcdoc/internal/symbols"
	"mcdoc/internal/types"
)

var dispatchCmd = &cobra.Command{
	Use:   "dispatch [flags] <registry> <key> [key...]",
	Short: "Resolve a dispatcher registry query against the current project",
	Long: `Dispatch resolves the instantiated type a dispatcher registry maps
the given static key chain to, the same resolution an indexed dispatcher
reference (e.g. minecraft:block_entity[minecraft:chest]) would produce.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runDispatch,
}

func runDispatch(cmd *cobra.Command, args []string) error {
	registry, keys := args[0], args[1:]

	manifestPath, found, err := project.FindManifest(".")
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no mcdoc.toml found above current directory")
	}
	manifestDir := filepath.Dir(manifestPath)

	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	result, err := project.LoadProject(cmd.Context(), manifest, manifestDir, 0)
	if err != nil {
		return err
	}

	bag := result.Bag
	table := symbols.BuildTable(result.FileSet, result.Files, diag.BagReporter{Bag: bag})

	interner := types.NewInterner()
	eng := engine.New(table, interner, profile.ByName(manifest.Profile))

	indices := make([]ast.Index, len(keys))
	for i, k := range keys {
		indices[i] = ast.Index{Kind: ast.IndexStatic, Static: ast.StaticKey{Kind: ast.StaticIdent, Text: k}}
	}

	if result.FileSet.Len() == 0 {
		return fmt.Errorf("project %q has no source files to resolve the query against", manifest.Name)
	}
	id := eng.Dispatch(cmd.Context(), result.FileSet.Get(0).ID, registry, indices, diag.BagReporter{Bag: bag})

	if bag.Len() > 0 {
		for _, d := range bag.Items() {
			fmt.Fprintln(os.Stderr, d.Severity.String()+": "+d.Message)
		}
	}

	fmt.Fprintln(os.Stdout, printer.TypeText(interner, id))
	return nil
}
