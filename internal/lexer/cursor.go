package lexer

import "mcdoc/internal/source"

const utf8RuneSelf = 0x80

// Cursor walks a file's byte content one position at a time.
type Cursor struct {
	file *source.File
	Off  uint32
}

func NewCursor(file *source.File) Cursor {
	return Cursor{file: file}
}

func (c *Cursor) EOF() bool {
	return int(c.Off) >= len(c.file.Content)
}

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.file.Content[c.Off]
}

// PeekAt returns the byte n positions ahead of the cursor, or 0 past EOF.
func (c *Cursor) PeekAt(n uint32) byte {
	idx := int(c.Off + n)
	if idx >= len(c.file.Content) {
		return 0
	}
	return c.file.Content[idx]
}

// Peek2 returns the current byte and the next one, with ok=false if the
// second byte is past EOF.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	b0 = c.Peek()
	if int(c.Off+1) >= len(c.file.Content) {
		return b0, 0, false
	}
	return b0, c.file.Content[c.Off+1], true
}

// Advance consumes the current byte.
func (c *Cursor) Advance() {
	if !c.EOF() {
		c.Off++
	}
}

// AdvanceN consumes n bytes, clamped to EOF.
func (c *Cursor) AdvanceN(n uint32) {
	for range n {
		if c.EOF() {
			return
		}
		c.Advance()
	}
}
