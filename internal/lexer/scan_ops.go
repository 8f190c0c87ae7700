package lexer

import (
	"mcdoc/internal/diag"
	"mcdoc/internal/token"
)

// scanOperatorOrPunct scans exactly one punctuation/operator token,
// resolving the longest match among the range-operator family
// (.. / ..< / <.. / <..< / ...) before falling back to single-character
// punctuation.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Off
	b := lx.cursor.Peek()

	switch b {
	case ':':
		lx.cursor.Advance()
		if lx.cursor.Peek() == ':' {
			lx.cursor.Advance()
			return lx.punct(start, token.DblColon)
		}
		return lx.punct(start, token.Colon)

	case '.':
		return lx.scanDots(start)

	case '<':
		lx.cursor.Advance()
		if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) == '.' {
			lx.cursor.AdvanceN(2)
			if lx.cursor.Peek() == '<' {
				lx.cursor.Advance()
				return lx.punct(start, token.LtDotDotLt)
			}
			return lx.punct(start, token.LtDotDot)
		}
		return lx.punct(start, token.LAngle)

	case '>':
		lx.cursor.Advance()
		return lx.punct(start, token.RAngle)

	case '?':
		lx.cursor.Advance()
		return lx.punct(start, token.Question)
	case '@':
		lx.cursor.Advance()
		return lx.punct(start, token.At)
	case '#':
		lx.cursor.Advance()
		return lx.punct(start, token.Hash)
	case '%':
		lx.cursor.Advance()
		return lx.punct(start, token.Percent)
	case '=':
		lx.cursor.Advance()
		return lx.punct(start, token.Assign)
	case '|':
		lx.cursor.Advance()
		return lx.punct(start, token.Pipe)
	case ',':
		lx.cursor.Advance()
		return lx.punct(start, token.Comma)
	case ';':
		lx.cursor.Advance()
		return lx.punct(start, token.Semicolon)
	case '{':
		lx.cursor.Advance()
		return lx.punct(start, token.LBrace)
	case '}':
		lx.cursor.Advance()
		return lx.punct(start, token.RBrace)
	case '[':
		lx.cursor.Advance()
		return lx.punct(start, token.LBracket)
	case ']':
		lx.cursor.Advance()
		return lx.punct(start, token.RBracket)
	case '(':
		lx.cursor.Advance()
		return lx.punct(start, token.LParen)
	case ')':
		lx.cursor.Advance()
		return lx.punct(start, token.RParen)
	}

	lx.cursor.Advance()
	lx.opts.Reporter.Report(diag.Error(diag.LexUnknownChar, lx.spanSince(start), "unknown character"))
	return lx.punct(start, token.Invalid)
}

func (lx *Lexer) scanDots(start uint32) token.Token {
	n := 0
	for lx.cursor.Peek() == '.' {
		lx.cursor.Advance()
		n++
		if n == 3 {
			break
		}
	}
	switch n {
	case 3:
		return lx.punct(start, token.DotDotDot)
	case 2:
		if lx.cursor.Peek() == '<' {
			lx.cursor.Advance()
			return lx.punct(start, token.DotDotLt)
		}
		return lx.punct(start, token.DotDot)
	default:
		lx.opts.Reporter.Report(diag.Error(diag.LexUnknownChar, lx.spanSince(start), "stray '.'"))
		return lx.punct(start, token.Invalid)
	}
}

func (lx *Lexer) punct(start uint32, kind token.Kind) token.Token {
	return token.Token{Kind: kind, Span: lx.spanSince(start), Text: lx.textSince(start)}
}
