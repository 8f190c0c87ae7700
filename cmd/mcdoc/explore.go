package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mcdoc/internal/diag"
	"mcdoc/internal/engine"
	"mcdoc/internal/profile"
	"mcdoc/internal/project"
	"mcdoc/internal/symbols"
	"mcdoc/internal/types"
	"mcdoc/internal/ui"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [path]",
	Short: "Load a project with a live progress view",
	Long: `Explore runs the same load/parse/resolve/instantiate pipeline as
check, but drives an interactive terminal view of its progress instead of
printing diagnostics directly.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExplore,
}

type exploreOutcome struct {
	bag   *diag.Bag
	count int
	err   error
}

func runExplore(cmd *cobra.Command, args []string) error {
	startDir := "."
	if len(args) == 1 {
		startDir = args[0]
	}

	manifestPath, found, err := project.FindManifest(startDir)
	if err != nil {
		return err
	}
	if !found {
		return fmt.Errorf("no mcdoc.toml found above %s", startDir)
	}
	manifestDir := filepath.Dir(manifestPath)

	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	files, err := previewSourceFiles(manifest, manifestDir)
	if err != nil {
		return err
	}

	events := make(chan ui.Event, 256)
	outcomeCh := make(chan exploreOutcome, 1)

	go func() {
		outcomeCh <- runPipelineWithEvents(cmd.Context(), manifest, manifestDir, files, events)
		close(events)
	}()

	model := ui.NewProgressModel(fmt.Sprintf("exploring %s", manifest.Name), files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return uiErr
	}
	if outcome.err != nil {
		return outcome.err
	}
	if outcome.bag.HasErrors() {
		return fmt.Errorf("explore found errors across %d checked declarations", outcome.count)
	}
	return nil
}

// runPipelineWithEvents runs load->parse->symbols->instantiate, reporting
// an overall transition as the load, symbols and instantiate stages start.
// No stage is instrumented live: once project.LoadProject returns, every
// file gets a parse "done" event, and once instantiation finishes, every
// file gets an instantiate "done" event.
func runPipelineWithEvents(ctx context.Context, manifest *project.Manifest, manifestDir string, files []string, events chan<- ui.Event) exploreOutcome {
	events <- ui.Event{Stage: ui.StageLoad, Status: ui.StatusWorking}
	result, err := project.LoadProject(ctx, manifest, manifestDir, 0)
	if err != nil {
		return exploreOutcome{err: err}
	}
	for _, name := range files {
		events <- ui.Event{File: name, Stage: ui.StageParse, Status: ui.StatusDone}
	}

	events <- ui.Event{Stage: ui.StageSymbols, Status: ui.StatusWorking}
	table := symbols.BuildTable(result.FileSet, result.Files, diag.BagReporter{Bag: result.Bag})

	events <- ui.Event{Stage: ui.StageInstantiate, Status: ui.StatusWorking}
	interner := types.NewInterner()
	eng := engine.New(table, interner, profile.ByName(manifest.Profile))
	count := instantiateAllDecls(ctx, eng, table, result.Bag)

	for _, name := range files {
		events <- ui.Event{File: name, Stage: ui.StageInstantiate, Status: ui.StatusDone}
	}
	return exploreOutcome{bag: result.Bag, count: count}
}

// previewSourceFiles walks every declared root once up front purely to
// populate the progress view's file list before the real load begins.
func previewSourceFiles(manifest *project.Manifest, manifestDir string) ([]string, error) {
	var out []string
	for prefix, dir := range manifest.RootDirs(manifestDir) {
		err := filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() || filepath.Ext(path) != project.SourceExt {
				return nil
			}
			rel, relErr := filepath.Rel(dir, path)
			if relErr != nil {
				return relErr
			}
			if prefix != "" {
				rel = filepath.Join(prefix, rel)
			}
			out = append(out, filepath.ToSlash(rel))
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
