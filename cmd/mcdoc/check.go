package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"mcdoc/internal/ast"
	"mcdoc/internal/cache"
	"mcdoc/internal/diag"
	"mcdoc/internal/diagfmt"
	"mcdoc/internal/engine"
	"mcdoc/internal/observ"
	"mcdoc/internal/profile"
	"mcdoc/internal/project"
	"mcdoc/internal/symbols"
	"mcdoc/internal/types"
)

var checkCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Load, resolve, and instantiate an mcdoc project",
	Long: `Check loads the mcdoc project rooted at path (or the current directory),
parses every source file, builds the symbol table, and instantiates every
non-generic declaration, reporting any diagnostic produced along the way.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostic format (pretty|json|sarif)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for project loading (0=auto)")
	checkCmd.Flags().Bool("disk-cache", false, "enable the persistent project-tree cache (experimental)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	timer := observ.NewTimer()
	showTimings, _ := cmd.Root().PersistentFlags().GetBool("timings")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	logger := observ.NewLogger(logLevel(quiet), os.Stderr)

	manifestPath, found, err := project.FindManifest(startDir)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no mcdoc.toml found above %s", startDir)
	}
	manifestDir := filepath.Dir(manifestPath)

	loadPhase := timer.Begin("manifest")
	manifest, err := project.LoadManifest(manifestPath)
	timer.End(loadPhase, manifest.Name)
	if err != nil {
		return err
	}
	logger.Infof("checking project %q (profile %q)", manifest.Name, manifest.Profile)

	var diskCache *cache.DiskCache
	useDiskCache, _ := cmd.Flags().GetBool("disk-cache")
	if useDiskCache {
		diskCache, err = cache.Open("mcdoc")
		if err != nil {
			logger.Infof("disk cache unavailable: %v", err)
			diskCache = nil
		}
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	parsePhase := timer.Begin("load+parse")
	result, err := project.LoadProject(cmd.Context(), manifest, manifestDir, jobs)
	timer.End(parsePhase, fmt.Sprintf("%d files", len(result.Files)))
	if err != nil {
		return err
	}

	if diskCache != nil {
		if cached, ok, getErr := diskCache.Get(result.Digest); getErr == nil && ok {
			logger.Verbosef("reusing cached load status for %d files", len(cached.Files))
		}
	}

	symPhase := timer.Begin("symbols")
	table := symbols.BuildTable(result.FileSet, result.Files, diag.BagReporter{Bag: result.Bag})
	timer.End(symPhase, fmt.Sprintf("%d declarations", len(table.Decls)))

	prof := profile.ByName(manifest.Profile)
	interner := types.NewInterner()
	eng := engine.New(table, interner, prof)

	instPhase := timer.Begin("instantiate")
	checkedCount := instantiateAllDecls(cmd.Context(), eng, table, result.Bag)
	timer.End(instPhase, fmt.Sprintf("%d instantiated", checkedCount))

	if diskCache != nil {
		_ = diskCache.Put(result.Digest, &cache.Payload{ProjectName: manifest.Name, Files: fileRecordsOf(result, table)})
	}

	result.Bag.Sort()
	format, _ := cmd.Flags().GetString("format")
	if err := emitDiagnostics(cmd, format, result); err != nil {
		return err
	}

	if showTimings {
		fmt.Fprintln(os.Stderr, timer.Summary())
	}

	if result.Bag.HasErrors() {
		return fmt.Errorf("check found errors")
	}
	return nil
}

// instantiateAllDecls instantiates every declaration that takes no generic
// parameters, the only ones a project-wide check can fully resolve without
// a caller supplying concrete type arguments.
func instantiateAllDecls(ctx context.Context, eng *engine.Engine, table *symbols.Table, bag *diag.Bag) int {
	n := 0
	for i := range table.Decls {
		decl := &table.Decls[i]
		if len(decl.Generics) > 0 {
			continue
		}
		ref := &ast.ReferenceType{Path: ast.Path{Absolute: true, Segments: splitPath(decl.Path)}}
		eng.Instantiate(ctx, decl.File, ref, diag.BagReporter{Bag: bag})
		n++
	}
	return n
}

func splitPath(canonical string) []string {
	var out []string
	start := 0
	for i := 0; i+1 < len(canonical); i++ {
		if canonical[i] == ':' && canonical[i+1] == ':' {
			out = append(out, canonical[start:i])
			start = i + 2
			i++
		}
	}
	out = append(out, canonical[start:])
	return out
}

func fileRecordsOf(result *project.LoadResult, table *symbols.Table) []cache.FileRecord {
	declsByFile := make(map[uint32][]string)
	for _, d := range table.Decls {
		declsByFile[uint32(d.File)] = append(declsByFile[uint32(d.File)], d.Path)
	}
	records := make([]cache.FileRecord, 0, len(result.Files))
	for _, f := range result.FileSet.All() {
		records = append(records, cache.FileRecord{
			LogicalPath: f.LogicalPath(),
			Hash:        f.Hash,
			Decls:       declsByFile[uint32(f.ID)],
		})
	}
	return records
}

func emitDiagnostics(cmd *cobra.Command, format string, result *project.LoadResult) error {
	switch format {
	case "pretty":
		opts := diagfmt.PrettyOpts{Color: useColor(cmd, os.Stderr), Context: 2}
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
		return nil
	case "json":
		return diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true})
	case "sarif":
		return diagfmt.Sarif(os.Stdout, result.Bag, result.FileSet, diagfmt.SarifRunMeta{ToolName: "mcdoc", ToolVersion: "0.1.0"})
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

func logLevel(quiet bool) observ.Level {
	if quiet {
		return observ.LevelQuiet
	}
	return observ.LevelInfo
}
