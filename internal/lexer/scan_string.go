package lexer

import (
	"strings"

	"mcdoc/internal/diag"
	"mcdoc/internal/token"
)

// validEscapeLetters holds the single-character escapes \\ \" \n \r \t \0;
// \xHH and \uHHHH are checked separately.
const validEscapeLetters = "\\\"nrt0"

// scanString scans a double-quoted string literal, validating (but not
// decoding) the escape sequences it contains.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Off
	lx.cursor.Advance() // opening quote

	for {
		if lx.cursor.EOF() {
			lx.opts.Reporter.Report(diag.Error(diag.LexUnterminatedString, lx.spanSince(start),
				"unterminated string literal"))
			return token.Token{Kind: token.StringLit, Span: lx.spanSince(start), Text: lx.textSince(start)}
		}
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Advance()
			return token.Token{Kind: token.StringLit, Span: lx.spanSince(start), Text: lx.textSince(start)}
		case b == '\n':
			lx.opts.Reporter.Report(diag.Error(diag.LexUnterminatedString, lx.spanSince(start),
				"unterminated string literal (newline before closing quote)"))
			return token.Token{Kind: token.StringLit, Span: lx.spanSince(start), Text: lx.textSince(start)}
		case b == '\\':
			lx.scanEscape()
		default:
			lx.cursor.Advance()
		}
	}
}

func (lx *Lexer) scanEscape() {
	escStart := lx.cursor.Off
	lx.cursor.Advance() // backslash
	if lx.cursor.EOF() {
		lx.opts.Reporter.Report(diag.Error(diag.LexInvalidEscape, lx.spanSince(escStart), "invalid escape sequence"))
		return
	}
	b := lx.cursor.Peek()
	switch {
	case strings.IndexByte(validEscapeLetters, b) >= 0:
		lx.cursor.Advance()
	case b == 'x':
		lx.cursor.Advance()
		if !lx.consumeHexDigits(2) {
			lx.opts.Reporter.Report(diag.Error(diag.LexInvalidEscape, lx.spanSince(escStart), "invalid \\x escape"))
		}
	case b == 'u':
		lx.cursor.Advance()
		if !lx.consumeHexDigits(4) {
			lx.opts.Reporter.Report(diag.Error(diag.LexInvalidEscape, lx.spanSince(escStart), "invalid \\u escape"))
		}
	default:
		lx.cursor.Advance()
		lx.opts.Reporter.Report(diag.Error(diag.LexInvalidEscape, lx.spanSince(escStart), "invalid escape sequence"))
	}
}

func (lx *Lexer) consumeHexDigits(n int) bool {
	for range n {
		b := lx.cursor.Peek()
		if !isHexDigit(b) {
			return false
		}
		lx.cursor.Advance()
	}
	return true
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
