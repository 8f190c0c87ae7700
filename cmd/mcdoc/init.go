package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"mcdoc/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new mcdoc project",
	Long: `Init creates a new mcdoc project by writing a project manifest
(mcdoc.toml) and a starter schema file. If [path|name] is omitted,
initializes the current directory. If a non-existing name is given, a
directory is created for it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func init() {
	initCmd.Flags().String("profile", "", "validator profile to record in mcdoc.toml (nbt|json)")
}

func runInit(cmd *cobra.Command, args []string) error {
	target, err := resolveInitTarget(args)
	if err != nil {
		return err
	}

	if st, statErr := os.Stat(target); statErr != nil {
		if errors.Is(statErr, os.ErrNotExist) {
			if mkErr := os.MkdirAll(target, 0o755); mkErr != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, mkErr)
			}
		} else {
			return statErr
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := filepath.Base(target)
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "mcdoc-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, statErr := os.Stat(manifestPath); statErr == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	profileName, err := cmd.Flags().GetString("profile")
	if err != nil {
		return err
	}

	manifest := renderManifest(name, profileName)
	if err := os.WriteFile(manifestPath, []byte(manifest), 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", manifestPath, err)
	}

	entryPath := filepath.Join(target, "main.mcdoc")
	if _, statErr := os.Stat(entryPath); errors.Is(statErr, os.ErrNotExist) {
		if err := os.WriteFile(entryPath, []byte(starterSchema), 0o644); err != nil {
			return fmt.Errorf("failed to write %q: %w", entryPath, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", manifestPath)
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", entryPath)
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "created %s\n", manifestPath)
	return nil
}

func resolveInitTarget(args []string) (string, error) {
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return wd, nil
	}
	arg := args[0]
	if filepath.IsAbs(arg) {
		return arg, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, arg), nil
}

func renderManifest(name, profileName string) string {
	var b strings.Builder
	b.WriteString("[package]\n")
	fmt.Fprintf(&b, "name = %q\n", name)
	if profileName != "" {
		fmt.Fprintf(&b, "profile = %q\n", profileName)
	}
	b.WriteString("\n[roots]\n")
	b.WriteString("\"\" = \".\"\n")
	return b.String()
}

const starterSchema = `struct Main {
	name: string,
}
`
