package parser

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/token"
)

// parsePath parses a module path: an optional leading "::" marking it
// absolute, zero or more leading "super" segments, then named segments,
// each pair joined by "::".
func (p *Parser) parsePath() ast.Path {
	start := p.cur.Span
	end := start

	absolute := false
	if p.at(token.DblColon) {
		absolute = true
		end = p.advance().Span
	}

	var supers int
	var segments []string
	sawNamed := false
	for {
		if p.at(token.KwSuper) && !sawNamed {
			supers++
			end = p.advance().Span
		} else {
			tok := p.expect(token.Ident, diag.SynExpectedIdent, "expected path segment")
			segments = append(segments, tok.Text)
			sawNamed = true
			end = tok.Span
		}
		if p.at(token.DblColon) {
			p.advance()
			continue
		}
		break
	}

	return ast.Path{Absolute: absolute, Supers: supers, Segments: segments, Span: start.Cover(end)}
}
