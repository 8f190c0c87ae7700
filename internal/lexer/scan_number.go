package lexer

import (
	"strconv"
	"strings"

	"mcdoc/internal/diag"
	"mcdoc/internal/source"
	"mcdoc/internal/token"
)

// scanNumber scans an integer or float literal, optionally followed by a
// single-letter type suffix (b/s/i/l/f/d, case-insensitive). A float
// requires a '.', an exponent, or a float/double suffix; otherwise the
// literal is an integer.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Off

	for isDecDigit(lx.cursor.Peek()) {
		lx.cursor.Advance()
	}

	isFloat := false
	if lx.cursor.Peek() == '.' && isDecDigit(lx.cursor.PeekAt(1)) {
		isFloat = true
		lx.cursor.Advance()
		for isDecDigit(lx.cursor.Peek()) {
			lx.cursor.Advance()
		}
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		n := lx.cursor.Off
		lx.cursor.Advance()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Advance()
		}
		if isDecDigit(lx.cursor.Peek()) {
			isFloat = true
			for isDecDigit(lx.cursor.Peek()) {
				lx.cursor.Advance()
			}
		} else {
			lx.cursor.Off = n // not actually an exponent; back off
		}
	}

	numEnd := lx.cursor.Off
	numText := lx.textSince(start)

	suffix := token.NoSuffix
	if b := lx.cursor.Peek(); isSuffixLetter(b) && !isIdentContinueByte(lx.cursor.PeekAt(1)) {
		suffix = token.NumberSuffix(lowerByte(b))
		lx.cursor.Advance()
		if suffix == token.SuffixFloat || suffix == token.SuffixDouble {
			isFloat = true
		}
	}

	sp := lx.spanSince(start)
	kind := token.IntLit
	if isFloat {
		kind = token.FloatLit
	}
	if suffix != token.NoSuffix {
		kind = token.TypedNumberLit
		lx.checkSuffixRange(numText, isFloat, suffix, sp)
	}
	_ = numEnd
	return token.Token{Kind: kind, Span: sp, Text: lx.textSince(start), Suffix: suffix}
}

func isSuffixLetter(b byte) bool {
	switch lowerByte(b) {
	case 'b', 's', 'i', 'l', 'f', 'd':
		return true
	default:
		return false
	}
}

func lowerByte(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}

// checkSuffixRange reports LexNumberOutOfRangeForSuffix when an integer
// literal overflows the bit width implied by its suffix.
func (lx *Lexer) checkSuffixRange(numText string, isFloat bool, suffix token.NumberSuffix, sp source.Span) {
	if isFloat {
		return
	}
	bits := 64
	switch suffix {
	case token.SuffixByte:
		bits = 8
	case token.SuffixShort:
		bits = 16
	case token.SuffixInt:
		bits = 32
	case token.SuffixLong:
		bits = 64
	default:
		return
	}
	if _, err := strconv.ParseInt(numText, 10, bits); err != nil && strings.Contains(err.Error(), "value out of range") {
		lx.opts.Reporter.Report(diag.Error(diag.LexNumberOutOfRangeForSuffix, sp,
			"numeric literal "+numText+" out of range for its suffix"))
	}
}
