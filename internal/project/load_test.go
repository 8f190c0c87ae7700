package project

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("failed to create directory for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func TestLoadProjectParsesEveryFileUnderEachRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.mcdoc"), `struct Widget {
	name: string,
}
`)
	writeFile(t, filepath.Join(dir, "sub", "extra.mcdoc"), `struct Gadget {
	id: string,
}
`)
	writeFile(t, filepath.Join(dir, "main.txt"), "not an mcdoc file, must be ignored")

	manifest := &Manifest{Name: "demo", Roots: map[string]string{"": "."}}
	result, err := LoadProject(context.Background(), manifest, dir, 0)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected load errors: %v", result.Bag.Items())
	}
	if len(result.Files) != 2 {
		t.Fatalf("expected exactly 2 parsed mcdoc files (the .txt file must be skipped), got %d", len(result.Files))
	}
}

func TestLoadProjectDigestIsStableAndContentSensitive(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "main.mcdoc"), `struct Widget {
	name: string,
}
`)
	manifest := &Manifest{Name: "demo", Roots: map[string]string{"": "."}}

	first, err := LoadProject(context.Background(), manifest, dir, 0)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	second, err := LoadProject(context.Background(), manifest, dir, 0)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if first.Digest != second.Digest {
		t.Fatalf("expected the digest of an unchanged tree to be stable across loads")
	}

	writeFile(t, filepath.Join(dir, "main.mcdoc"), `struct Widget {
	name: string,
	extra: string,
}
`)
	third, err := LoadProject(context.Background(), manifest, dir, 0)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if first.Digest == third.Digest {
		t.Fatalf("expected the digest to change once a file's content changes")
	}
}

func TestLoadProjectMultipleRootsGetDistinctModulePrefixes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "core", "widget.mcdoc"), `struct Widget {
	name: string,
}
`)
	writeFile(t, filepath.Join(dir, "vendor", "item.mcdoc"), `struct Stack {
	id: string,
}
`)

	manifest := &Manifest{
		Name: "demo",
		Roots: map[string]string{
			"":       "core",
			"vendor": "vendor",
		},
	}
	result, err := LoadProject(context.Background(), manifest, dir, 0)
	if err != nil {
		t.Fatalf("LoadProject failed: %v", err)
	}
	if result.Bag.HasErrors() {
		t.Fatalf("unexpected load errors: %v", result.Bag.Items())
	}

	var sawUnprefixed, sawVendor bool
	for id := range result.Files {
		f := result.FileSet.Get(id)
		if f.Stem == "widget" && len(f.Segments) == 0 {
			sawUnprefixed = true
		}
		if f.Stem == "item" && len(f.Segments) == 1 && f.Segments[0] == "vendor" {
			sawVendor = true
		}
	}
	if !sawUnprefixed {
		t.Fatalf("expected the anonymous root's file to carry no segment prefix")
	}
	if !sawVendor {
		t.Fatalf("expected the \"vendor\" root's file to be segmented under vendor")
	}
}

func TestFindManifestWalksUpToProjectRoot(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ManifestName), "[package]\nname = \"demo\"\n")
	nested := filepath.Join(dir, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	path, ok, err := FindManifest(nested)
	if err != nil {
		t.Fatalf("FindManifest failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected FindManifest to locate the manifest by walking up")
	}
	want, _ := filepath.Abs(filepath.Join(dir, ManifestName))
	if path != want {
		t.Fatalf("expected manifest path %q, got %q", want, path)
	}
}

func TestLoadManifestDefaultsRootsWhenAbsent(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(dir, ManifestName)
	writeFile(t, manifestPath, "[package]\nname = \"demo\"\nprofile = \"nbt\"\n")

	m, err := LoadManifest(manifestPath)
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if m.Name != "demo" || m.Profile != "nbt" {
		t.Fatalf("unexpected manifest: %+v", m)
	}
	if len(m.Roots) != 1 || m.Roots[""] != "." {
		t.Fatalf("expected a default anonymous root at '.', got %+v", m.Roots)
	}
}
