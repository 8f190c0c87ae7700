package parser

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/source"
	"mcdoc/internal/token"
)

// parseStructBody parses a `{ field, ... }` body shared by struct
// declarations, inline struct types, and struct injections.
func (p *Parser) parseStructBody() ([]ast.StructField, source.Span) {
	open := p.expect(token.LBrace, diag.SynUnclosedDelimiter, "expected '{' to open struct body")
	var fields []ast.StructField
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fields = append(fields, p.parseStructField())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close struct body")
	return fields, open.Span.Cover(close.Span)
}

func (p *Parser) parseStructField() ast.StructField {
	doc := p.collectDoc()
	attrs := p.parseAttrs()
	start := p.cur.Span

	if p.at(token.DotDotDot) {
		p.advance()
		ty := p.parseTypeExpr()
		return &ast.SpreadField{Type: ty, Attrs: attrs, Span: start.Cover(ty.Base().Sp)}
	}

	key := p.parseFieldKey()
	optional := false
	if p.at(token.Question) {
		p.advance()
		optional = true
	}
	p.expect(token.Colon, diag.SynUnexpectedToken, "expected ':' after field key")
	ty := p.parseTypeExpr()
	return &ast.NamedField{
		Key: key, Optional: optional, Type: ty, Attrs: attrs, Doc: doc,
		Span: start.Cover(ty.Base().Sp),
	}
}

func (p *Parser) parseFieldKey() ast.FieldKey {
	switch p.cur.Kind {
	case token.StringLit:
		t := p.advance()
		return ast.FieldKey{Kind: ast.FieldKeyString, Text: decodeStringLit(t.Text)}
	case token.LBracket:
		p.advance()
		expr := p.parseTypeExpr()
		p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close computed field key")
		return ast.FieldKey{Kind: ast.FieldKeyComputed, Computed: expr}
	default:
		t := p.expect(token.Ident, diag.SynExpectedIdent, "expected a field name")
		return ast.FieldKey{Kind: ast.FieldKeyIdent, Text: identText(t)}
	}
}

// parseEnumBody parses the `{ Variant = value, ... }` body of an enum.
func (p *Parser) parseEnumBody() ([]ast.EnumVariant, source.Span) {
	open := p.expect(token.LBrace, diag.SynUnclosedDelimiter, "expected '{' to open enum body")
	var variants []ast.EnumVariant
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		variants = append(variants, p.parseEnumVariant())
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	close := p.expect(token.RBrace, diag.SynUnclosedDelimiter, "expected '}' to close enum body")
	return variants, open.Span.Cover(close.Span)
}

func (p *Parser) parseEnumVariant() ast.EnumVariant {
	doc := p.collectDoc()
	attrs := p.parseAttrs()
	nameTok := p.expect(token.Ident, diag.SynExpectedIdent, "expected an enum variant name")
	start := nameTok.Span
	p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after variant name")

	v := ast.EnumVariant{Name: identText(nameTok), Attrs: attrs, Doc: doc}
	switch p.cur.Kind {
	case token.StringLit:
		t := p.advance()
		v.IsString = true
		v.StrValue = decodeStringLit(t.Text)
		v.Span = start.Cover(t.Span)
	case token.IntLit, token.FloatLit, token.TypedNumberLit:
		t := p.advance()
		v.NumValue = parseNumberLit(t)
		v.Span = start.Cover(t.Span)
	default:
		p.errorf(diag.SynBadEnumVariantValue, p.cur.Span, "expected a number or string variant value")
		v.Span = start
	}
	return v
}
