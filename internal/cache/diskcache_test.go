package cache

import (
	"testing"

	"mcdoc/internal/project"
)

func openSandboxed(t *testing.T) *DiskCache {
	t.Helper()
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	c, err := Open("mcdoc-test")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	return c
}

func TestPutGetRoundTrips(t *testing.T) {
	c := openSandboxed(t)
	var key project.Digest
	key[0] = 0xAB

	payload := &Payload{
		ProjectName: "demo",
		Files: []FileRecord{
			{LogicalPath: "main.mcdoc", Decls: []string{"main::Widget"}},
		},
	}
	if err := c.Put(key, payload); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if !ok {
		t.Fatalf("expected a cache hit after Put")
	}
	if got.ProjectName != "demo" || len(got.Files) != 1 || got.Files[0].LogicalPath != "main.mcdoc" {
		t.Fatalf("round-tripped payload does not match: %+v", got)
	}
	if got.Schema == 0 {
		t.Fatalf("expected Put to stamp a nonzero schema version")
	}
}

func TestGetMissingKeyIsNotFoundNotError(t *testing.T) {
	c := openSandboxed(t)
	var key project.Digest
	key[0] = 0xCD

	got, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("expected a missing key to not be an error, got: %v", err)
	}
	if ok || got != nil {
		t.Fatalf("expected a miss for an unwritten key")
	}
}

func TestDropAllRemovesEverything(t *testing.T) {
	c := openSandboxed(t)
	var key project.Digest
	key[0] = 0xEF

	if err := c.Put(key, &Payload{ProjectName: "demo"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	if err := c.DropAll(); err != nil {
		t.Fatalf("DropAll failed: %v", err)
	}

	_, ok, err := c.Get(key)
	if err != nil {
		t.Fatalf("Get after DropAll failed: %v", err)
	}
	if ok {
		t.Fatalf("expected every entry to be gone after DropAll")
	}
}

func TestIsSHA256RejectsZeroDigest(t *testing.T) {
	var zero project.Digest
	if IsSHA256(zero) {
		t.Fatalf("expected the zero digest to be rejected")
	}
	var nonzero project.Digest
	nonzero[0] = 1
	if !IsSHA256(nonzero) {
		t.Fatalf("expected a nonzero digest to pass")
	}
}
