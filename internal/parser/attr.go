package parser

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/token"
)

// parseAttrs consumes zero or more `#[...]` attributes immediately
// preceding the next construct.
func (p *Parser) parseAttrs() []ast.Attr {
	var attrs []ast.Attr
	for p.at(token.Hash) {
		attrs = append(attrs, p.parseOneAttr())
	}
	return attrs
}

func (p *Parser) parseOneAttr() ast.Attr {
	start := p.advance().Span // '#'
	p.expect(token.LBracket, diag.SynUnexpectedToken, "expected '[' after '#'")
	nameTok := p.expect(token.Ident, diag.SynExpectedIdent, "expected attribute name")
	name := identText(nameTok)

	var value *ast.AttrValue
	switch {
	case p.at(token.Assign):
		p.advance()
		v := p.parseAttrScalar()
		value = &v
	case !p.at(token.RBracket):
		v := p.parseAttrTreeValue()
		value = &v
	}

	end := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close attribute").Span
	return ast.Attr{Name: name, Value: value, Span: start.Cover(end)}
}

// parseAttrTreeValue parses a TreeValue: a parenthesized/bracketed/braced
// body of positional values followed by named values.
func (p *Parser) parseAttrTreeValue() ast.AttrValue {
	open := p.cur
	var closeKind token.Kind
	var delim byte
	switch open.Kind {
	case token.LParen:
		closeKind, delim = token.RParen, '('
	case token.LBracket:
		closeKind, delim = token.RBracket, '['
	case token.LBrace:
		closeKind, delim = token.RBrace, '{'
	default:
		// A bare scalar/identifier used directly as the attribute value.
		return p.parseAttrScalar()
	}
	p.advance()

	tree := &ast.AttrTree{Delim: delim, Span: open.Span}
	inNamed := false
	for !p.at(closeKind) && !p.at(token.EOF) {
		if p.at(token.Ident) && p.atPeek(token.Assign) {
			inNamed = true
			name := identText(p.advance())
			p.advance() // '='
			tree.Named = append(tree.Named, ast.NamedAttrValue{Name: name, Value: p.parseAttrScalar()})
		} else if p.at(token.Ident) && (p.atPeek(token.LParen) || p.atPeek(token.LBracket) || p.atPeek(token.LBrace)) {
			inNamed = true
			name := identText(p.advance())
			tree.Named = append(tree.Named, ast.NamedAttrValue{Name: name, Value: p.parseAttrTreeValue()})
		} else if !inNamed {
			tree.Positional = append(tree.Positional, p.parseAttrTreeValue())
		} else {
			p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected named attribute value")
			p.advance()
		}
		if p.at(token.Comma) {
			p.advance()
		}
	}
	closeTok := p.expect(closeKind, diag.SynUnclosedDelimiter, "expected closing delimiter in attribute value")
	tree.Span = open.Span.Cover(closeTok.Span)
	return ast.AttrValue{Kind: ast.AttrValTree, Tree: tree, Span: tree.Span}
}

func (p *Parser) parseAttrScalar() ast.AttrValue {
	switch p.cur.Kind {
	case token.KwTrue, token.KwFalse:
		t := p.advance()
		return ast.AttrValue{Kind: ast.AttrValBool, Bool: t.Kind == token.KwTrue, Span: t.Span}
	case token.StringLit:
		t := p.advance()
		return ast.AttrValue{Kind: ast.AttrValString, Str: decodeStringLit(t.Text), Span: t.Span}
	case token.IntLit, token.FloatLit, token.TypedNumberLit:
		t := p.advance()
		return ast.AttrValue{Kind: ast.AttrValNumber, Number: parseNumberLit(t), Span: t.Span}
	case token.Ident:
		if p.atPeek(token.LParen) || p.atPeek(token.LBracket) || p.atPeek(token.LBrace) {
			return p.parseAttrTreeValue()
		}
		t := p.advance()
		return ast.AttrValue{Kind: ast.AttrValIdent, Str: identText(t), Span: t.Span}
	case token.LParen, token.LBracket, token.LBrace:
		return p.parseAttrTreeValue()
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected attribute value")
		t := p.advance()
		return ast.AttrValue{Span: t.Span}
	}
}
