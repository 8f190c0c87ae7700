package source

import (
	"crypto/sha256"
	"fmt"
	"sort"
	"strings"

	"fortio.org/safecast"
)

// FileSet owns every loaded file for one project and resolves spans back to
// human-readable positions.
type FileSet struct {
	files []File
	index map[string]FileID // "seg/seg/stem" -> id, for duplicate-load checks
}

// NewFileSet creates an empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		index: make(map[string]FileID),
	}
}

// Add registers a file from its logical path and content, computing the
// line index and content hash, and returns a fresh FileID. Loading the same
// logical path twice yields two distinct FileIDs; callers that care about
// collisions (the C3 loader does, for canonical-path duplicates) must check
// the returned bool.
func (fs *FileSet) Add(segments []string, stem string, content []byte) (FileID, bool) {
	key := logicalKey(segments, stem)
	_, existed := fs.index[key]

	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("file count overflow: %w", err))
	}
	id := FileID(n)
	fs.files = append(fs.files, File{
		ID:       id,
		Segments: append([]string(nil), segments...),
		Stem:     stem,
		Content:  content,
		LineIdx:  buildLineIndex(content),
		Hash:     sha256.Sum256(content),
	})
	if !existed {
		fs.index[key] = id
	}
	return id, existed
}

// Get returns file metadata for id. It panics on an out-of-range id, the
// same contract every arena-style index in this codebase carries.
func (fs *FileSet) Get(id FileID) *File {
	return &fs.files[id]
}

// Len returns the number of loaded files.
func (fs *FileSet) Len() int {
	return len(fs.files)
}

// All returns files in load order.
func (fs *FileSet) All() []File {
	return fs.files
}

// Resolve converts a span into start/end line-column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.Get(span.File)
	return toLineCol(f.LineIdx, span.Start), toLineCol(f.LineIdx, span.End)
}

// LogicalPath renders a file's folder chain and stem as a "::"-joined
// display string, e.g. "foo::bar" for segments=[foo] stem=bar.
func (f *File) LogicalPath() string {
	parts := append(append([]string(nil), f.Segments...), f.Stem)
	return strings.Join(parts, "::")
}

func logicalKey(segments []string, stem string) string {
	return strings.Join(segments, "/") + "\x00" + stem
}

func buildLineIndex(content []byte) []uint32 {
	var idx []uint32
	for i, b := range content {
		if b == '\n' {
			off, err := safecast.Conv[uint32](i)
			if err != nil {
				panic(fmt.Errorf("offset overflow: %w", err))
			}
			idx = append(idx, off)
		}
	}
	return idx
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// lineIdx[i] is the offset of the i-th '\n'; line number is the count
	// of newlines strictly before off, 1-based.
	line := uint32(sort.Search(len(lineIdx), func(i int) bool {
		return lineIdx[i] >= off
	}))
	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: line + 1, Col: off - lineStart + 1}
}
