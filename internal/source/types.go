package source

// FileID uniquely identifies a loaded file within a FileSet.
type FileID uint32

// File captures the logical identity and content of one loaded mcdoc file.
//
// The loader is an external collaborator: it hands the engine
// a logical path (the folder chain) plus a file stem plus UTF-8 text. The
// engine never touches a filesystem path directly.
type File struct {
	ID       FileID
	Segments []string // folder chain, root first, not including the stem
	Stem     string    // file name without the ".mcdoc" extension; "mod" is special
	Content  []byte
	LineIdx  []uint32 // byte offset of each '\n', ascending
	Hash     [32]byte
}

// LineCol is a human-readable 1-based line/column position.
type LineCol struct {
	Line uint32
	Col  uint32
}
