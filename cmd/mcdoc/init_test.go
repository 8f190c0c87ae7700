package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mcdoc/internal/project"
)

func TestResolveInitTargetAbsoluteArgReturnsAsIs(t *testing.T) {
	got, err := resolveInitTarget([]string{"/tmp/some-project"})
	if err != nil {
		t.Fatalf("resolveInitTarget failed: %v", err)
	}
	if got != "/tmp/some-project" {
		t.Fatalf("expected the absolute arg unchanged, got %q", got)
	}
}

func TestResolveInitTargetRelativeArgJoinsWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	got, err := resolveInitTarget([]string{"sub/dir"})
	if err != nil {
		t.Fatalf("resolveInitTarget failed: %v", err)
	}
	want := filepath.Join(wd, "sub/dir")
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestResolveInitTargetNoArgsOrDotUsesWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd failed: %v", err)
	}
	for _, args := range [][]string{nil, {"."}} {
		got, err := resolveInitTarget(args)
		if err != nil {
			t.Fatalf("resolveInitTarget(%v) failed: %v", args, err)
		}
		if got != wd {
			t.Fatalf("resolveInitTarget(%v): expected %q, got %q", args, wd, got)
		}
	}
}

func TestRenderManifestIncludesProfileOnlyWhenGiven(t *testing.T) {
	withProfile := renderManifest("demo", "nbt")
	if !strings.Contains(withProfile, `name = "demo"`) || !strings.Contains(withProfile, `profile = "nbt"`) {
		t.Fatalf("expected name and profile fields, got: %s", withProfile)
	}

	withoutProfile := renderManifest("demo", "")
	if strings.Contains(withoutProfile, "profile") {
		t.Fatalf("expected no profile field when profileName is empty, got: %s", withoutProfile)
	}
	if !strings.Contains(withoutProfile, "[roots]") || !strings.Contains(withoutProfile, `"" = "."`) {
		t.Fatalf("expected a default anonymous root, got: %s", withoutProfile)
	}
}

func TestRunInitCreatesManifestAndStarterSchema(t *testing.T) {
	target := filepath.Join(t.TempDir(), "new-project")
	cmd := initCmd
	cmd.Flags().Set("profile", "json")
	defer cmd.Flags().Set("profile", "")

	var buf bytes.Buffer
	cmd.SetOut(&buf)

	if err := runInit(cmd, []string{target}); err != nil {
		t.Fatalf("runInit failed: %v", err)
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	manifestContent, err := os.ReadFile(manifestPath)
	if err != nil {
		t.Fatalf("expected the manifest to be written: %v", err)
	}
	if !strings.Contains(string(manifestContent), `profile = "json"`) {
		t.Fatalf("expected the json profile recorded in the manifest, got: %s", manifestContent)
	}

	entryPath := filepath.Join(target, "main.mcdoc")
	if _, err := os.Stat(entryPath); err != nil {
		t.Fatalf("expected a starter main.mcdoc to be written: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "created "+manifestPath) || !strings.Contains(out, "created "+entryPath) {
		t.Fatalf("expected created-file lines for both files, got: %s", out)
	}
}

func TestRunInitFailsWhenManifestAlreadyExists(t *testing.T) {
	target := t.TempDir()
	cmd := initCmd
	cmd.Flags().Set("profile", "")

	var firstBuf bytes.Buffer
	cmd.SetOut(&firstBuf)
	if err := runInit(cmd, []string{target}); err != nil {
		t.Fatalf("first runInit failed: %v", err)
	}

	var secondBuf bytes.Buffer
	cmd.SetOut(&secondBuf)
	if err := runInit(cmd, []string{target}); err == nil {
		t.Fatalf("expected the second runInit to fail because the manifest already exists")
	}
}
