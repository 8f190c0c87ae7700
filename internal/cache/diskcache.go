// Package cache is an on-disk, content-addressed store of per-file project
// load records keyed by the project digest. Nothing reads a record back to
// skip lexing or parsing; a run still loads every file.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"mcdoc/internal/project"
)

// schemaVersion is bumped whenever Payload's shape changes, invalidating
// every entry written under an older version.
const schemaVersion uint16 = 1

// DiskCache stores Payloads on disk keyed by a project.Digest. Safe for
// concurrent use.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// FileRecord is one file's cached load status: its logical path, content
// hash, a broken flag, and the canonical declaration paths it contributed.
type FileRecord struct {
	LogicalPath string
	Hash        project.Digest
	Broken      bool
	Decls       []string
}

// Payload is what one project digest maps to on disk.
type Payload struct {
	Schema      uint16
	ProjectName string
	Files       []FileRecord
}

// Open initializes a disk cache at the standard XDG cache location under
// app (normally "mcdoc").
func Open(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	dir := filepath.Join(base, app)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &DiskCache{dir: dir}, nil
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "projects", hexKey+".mp")
}

// Put serializes and atomically writes payload under key.
func (c *DiskCache) Put(key project.Digest, payload *Payload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	payload.Schema = schemaVersion

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if removeErr := os.Remove(f.Name()); removeErr != nil && !errors.Is(removeErr, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "cache: failed to remove temp file: %v\n", removeErr)
		}
	}()

	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), p)
}

// Get reads and deserializes the payload stored under key, if any.
func (c *DiskCache) Get(key project.Digest) (*Payload, bool, error) {
	if c == nil {
		return nil, false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	var payload Payload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return nil, false, err
	}
	if payload.Schema != schemaVersion {
		return nil, false, nil
	}
	return &payload, true, nil
}

// DropAll invalidates the cache by renaming it aside and removing it.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		return err
	}
	return os.RemoveAll(old)
}

// IsSHA256 is a basic sanity check that d is a non-zero digest.
func IsSHA256(d project.Digest) bool {
	var zero project.Digest
	if d == zero {
		return false
	}
	_ = sha256.BlockSize
	return true
}
