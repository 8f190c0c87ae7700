package parser

import (
	"fortio.org/safecast"

	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/source"
	"mcdoc/internal/token"
)

func (p *Parser) curIsNumber() bool {
	switch p.cur.Kind {
	case token.IntLit, token.FloatLit, token.TypedNumberLit:
		return true
	default:
		return false
	}
}

// isRangeOp reports whether k is one of the four range operators.
func isRangeOp(k token.Kind) bool {
	switch k {
	case token.DotDot, token.DotDotLt, token.LtDotDot, token.LtDotDotLt:
		return true
	default:
		return false
	}
}

// parseNumRange parses an `@`-annotation range body: an optional lower
// bound, one of the four range operators, and an optional upper bound.
func (p *Parser) parseNumRange() *ast.NumRange {
	r := &ast.NumRange{}
	if p.curIsNumber() {
		r.HasLo = true
		r.Lo = parseNumberLit(p.advance())
	}

	switch p.cur.Kind {
	case token.DotDot:
		p.advance()
	case token.DotDotLt:
		r.ExclHi = true
		p.advance()
	case token.LtDotDot:
		r.ExclLo = true
		p.advance()
	case token.LtDotDotLt:
		r.ExclLo, r.ExclHi = true, true
		p.advance()
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected a range operator ('..', '..<', '<..', or '<..<')")
		return r
	}

	if p.curIsNumber() {
		r.HasHi = true
		r.Hi = parseNumberLit(p.advance())
	}
	return r
}

// parseLenRange is parseNumRange narrowed to non-negative integer lengths.
// An out-of-range bound is reported and replaced by 0 rather than panicking,
// since the value comes from untrusted source text.
func (p *Parser) parseLenRange() *ast.LenRange {
	nr := p.parseNumRange()
	r := &ast.LenRange{HasLo: nr.HasLo, HasHi: nr.HasHi}
	sp := p.prevSpan
	if nr.HasLo {
		r.Lo = p.clampLen(nr.Lo, sp)
	}
	if nr.HasHi {
		r.Hi = p.clampLen(nr.Hi, sp)
	}
	return r
}

func (p *Parser) clampLen(n ast.TypedNumber, sp source.Span) uint32 {
	v, err := safecast.Conv[uint32](n.I)
	if err != nil {
		p.errorf(diag.LexNumberOutOfRangeForSuffix, sp, "length bound out of range")
		return 0
	}
	return v
}
