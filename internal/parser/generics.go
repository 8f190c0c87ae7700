package parser

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/token"
)

// parseGenerics parses an optional `<A, B, ...>` generic parameter list.
func (p *Parser) parseGenerics() []ast.GenericParam {
	if !p.at(token.LAngle) {
		return nil
	}
	p.advance()
	var params []ast.GenericParam
	for !p.at(token.RAngle) && !p.at(token.EOF) {
		tok := p.expect(token.Ident, diag.SynExpectedIdent, "expected generic parameter name")
		params = append(params, ast.GenericParam{Name: tok.Text, Span: tok.Span})
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RAngle, diag.SynUnclosedDelimiter, "expected '>' to close generic parameter list")
	return params
}

// parseTypeArgs parses an optional `<T, U, ...>` type-argument list applied
// to a reference.
func (p *Parser) parseTypeArgs() []ast.TypeExpr {
	if !p.at(token.LAngle) {
		return nil
	}
	p.advance()
	var args []ast.TypeExpr
	for !p.at(token.RAngle) && !p.at(token.EOF) {
		args = append(args, p.parseTypeExpr())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RAngle, diag.SynUnclosedDelimiter, "expected '>' to close type argument list")
	return args
}
