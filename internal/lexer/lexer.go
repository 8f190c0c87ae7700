// Package lexer turns mcdoc source bytes into a token stream (C1).
package lexer

import (
	"mcdoc/internal/diag"
	"mcdoc/internal/source"
	"mcdoc/internal/token"
)

// Options configures a Lexer.
type Options struct {
	Reporter diag.Reporter // nil is equivalent to diag.NopReporter{}
}

// Lexer produces tokens for a single file, accumulating doc-comment trivia
// onto the next significant token, whatever its kind.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token
	docs   []string
}

func New(file *source.File, opts Options) *Lexer {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	return &Lexer{file: file, cursor: NewCursor(file), opts: opts}
}

// Next returns the next significant token, with any accumulated doc-comment
// lines attached.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		t := *lx.look
		lx.look = nil
		return t
	}

	lx.skipTriviaCollectingDocs()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		tok = lx.scanIdentOrKeyword()
	case isDecDigit(ch):
		tok = lx.scanNumber()
	case ch == '.' && isDecDigit(lx.cursor.PeekAt(1)):
		tok = lx.scanNumber()
	case ch == '"':
		tok = lx.scanString()
	default:
		tok = lx.scanOperatorOrPunct()
	}

	if len(lx.docs) > 0 {
		tok.Doc = lx.docs
		lx.docs = nil
	}
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) remaining() []byte {
	return lx.file.Content[lx.cursor.Off:]
}

func (lx *Lexer) textSince(start uint32) string {
	return string(lx.file.Content[start:lx.cursor.Off])
}

func (lx *Lexer) spanSince(start uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: lx.cursor.Off}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func isDecDigit(b byte) bool { return b >= '0' && b <= '9' }

// skipTriviaCollectingDocs consumes whitespace and comments, remembering
// doc-comment ("///") lines so they can be attached to the next token.
// A doc comment must start its logical line; a "///" after a token on the
// same line is reported as LexStrayDocComment and skipped like a plain
// comment.
func (lx *Lexer) skipTriviaCollectingDocs() {
	lineStart := lx.cursor.Off == 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\n':
			lineStart = true
			lx.cursor.Advance()
		case b == ' ' || b == '\t' || b == '\r':
			lx.cursor.Advance()
		case b == '/' && lx.cursor.PeekAt(1) == '/' && lx.cursor.PeekAt(2) == '/':
			if !lineStart {
				lx.opts.Reporter.Report(diag.Error(diag.LexStrayDocComment,
					source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off + 3},
					"a doc comment must start its line"))
				lx.scanLineComment()
				continue
			}
			lx.docs = append(lx.docs, lx.scanDocLine())
		case b == '/' && lx.cursor.PeekAt(1) == '/':
			lx.scanLineComment()
		default:
			return
		}
	}
}

func (lx *Lexer) scanDocLine() string {
	lx.cursor.AdvanceN(3)
	if lx.cursor.Peek() == ' ' {
		lx.cursor.Advance()
	}
	start := lx.cursor.Off
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Advance()
	}
	return lx.textSince(start)
}

func (lx *Lexer) scanLineComment() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Advance()
	}
}
