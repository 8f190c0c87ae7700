package lexer

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"mcdoc/internal/token"
)

func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || (b >= '0' && b <= '9')
}

func isResLocPathByte(b byte) bool {
	return isIdentContinueByte(b) || b == '.' || b == '-' || b == '/'
}

// scanIdentOrKeyword scans the longest run of identifier characters
// (ASCII or Unicode letters/digits/underscore), then checks whether it is
// immediately followed by a single ':' that begins a resource location
// (as opposed to the '::' path separator). Identifiers are NFC-normalized
// before comparison so visually identical Unicode spellings intern to the
// same text.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Off

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Advance()
			continue
		}
		r, size := utf8.DecodeRune(lx.remaining())
		if r == utf8.RuneError || !(unicode.IsLetter(r) || unicode.IsDigit(r)) {
			break
		}
		lx.cursor.AdvanceN(uint32(size))
	}

	// Resource-location disambiguation: a single ':' directly followed by a
	// path character (not another ':', whitespace, or end of input) begins
	// a resource location; consume the namespace:path/segments run.
	if lx.cursor.Peek() == ':' {
		b0, b1, ok := lx.cursor.Peek2()
		_ = b0
		if ok && b1 != ':' && isResLocPathByte(b1) {
			lx.cursor.Advance() // the ':'
			for !lx.cursor.EOF() && isResLocPathByte(lx.cursor.Peek()) {
				lx.cursor.Advance()
			}
			text := lx.textSince(start)
			return token.Token{Kind: token.ResourceLocation, Span: lx.spanSince(start), Text: normalizeIdent(text)}
		}
		if !ok {
			// ':' is the very last byte of input: spec requires the colon
			// not be at the end, so this is a plain identifier followed by
			// a lone ':' token handled on the next call.
		}
	}

	text := normalizeIdent(lx.textSince(start))
	if kw, ok := token.Keywords[text]; ok {
		return token.Token{Kind: kw, Span: lx.spanSince(start), Text: text}
	}
	return token.Token{Kind: token.Ident, Span: lx.spanSince(start), Text: text}
}

func normalizeIdent(s string) string {
	return norm.NFC.String(s)
}
