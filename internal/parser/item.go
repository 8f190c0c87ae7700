package parser

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/token"
)

func (p *Parser) parseStructDef(doc []string, attrs []ast.Attr) ast.Item {
	start := p.advance().Span // 'struct'
	nameTok := p.expect(token.Ident, diag.SynExpectedIdent, "expected a struct name")
	if token.IsReserved(nameTok.Text) {
		p.errorf(diag.SynReservedWordAsIdent, nameTok.Span, "reserved word used as a struct name")
	}
	generics := p.parseGenerics()
	fields, bodySpan := p.parseStructBody()
	return &ast.StructDef{
		Name: identText(nameTok), Generics: generics, Fields: fields,
		Attrs: attrs, Doc: doc, Span: start.Cover(bodySpan),
	}
}

func (p *Parser) parseEnumDef(doc []string, attrs []ast.Attr) ast.Item {
	start := p.advance().Span // 'enum'
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after enum")
	baseKind, isString := p.parseEnumBaseKind()
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after enum base kind")
	nameTok := p.expect(token.Ident, diag.SynExpectedIdent, "expected an enum name")
	if token.IsReserved(nameTok.Text) {
		p.errorf(diag.SynReservedWordAsIdent, nameTok.Span, "reserved word used as an enum name")
	}
	variants, bodySpan := p.parseEnumBody()
	return &ast.EnumDef{
		Name: identText(nameTok), BaseKind: baseKind, IsString: isString, Variants: variants,
		Attrs: attrs, Doc: doc, Span: start.Cover(bodySpan),
	}
}

func (p *Parser) parseTypeAlias(doc []string, attrs []ast.Attr) ast.Item {
	start := p.advance().Span // 'type'
	nameTok := p.expect(token.Ident, diag.SynExpectedIdent, "expected a type alias name")
	if token.IsReserved(nameTok.Text) {
		p.errorf(diag.SynReservedWordAsIdent, nameTok.Span, "reserved word used as a type alias name")
	}
	generics := p.parseGenerics()
	p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after type alias name")
	target := p.parseTypeExpr()
	return &ast.TypeAlias{
		Name: identText(nameTok), Generics: generics, Target: target,
		Attrs: attrs, Doc: doc, Span: start.Cover(target.Base().Sp),
	}
}

func (p *Parser) parseUseStmt() ast.Item {
	start := p.advance().Span // 'use'
	path := p.parsePath()
	alias := lastSegment(path)
	end := path.Span
	if p.at(token.KwAs) {
		p.advance()
		aliasTok := p.expect(token.Ident, diag.SynExpectedIdent, "expected an alias name after 'as'")
		alias = identText(aliasTok)
		end = aliasTok.Span
	}
	return &ast.UseStmt{Target: path, Alias: alias, Span: start.Cover(end)}
}

func lastSegment(p ast.Path) string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}

func (p *Parser) parseInjection() ast.Item {
	start := p.advance().Span // 'inject'
	switch p.cur.Kind {
	case token.KwStruct:
		p.advance()
		path := p.parsePath()
		fields, bodySpan := p.parseStructBody()
		return &ast.Injection{Kind: ast.InjectStruct, Target: path, Fields: fields, Span: start.Cover(bodySpan)}
	case token.KwEnum:
		p.advance()
		path := p.parsePath()
		variants, bodySpan := p.parseEnumBody()
		return &ast.Injection{Kind: ast.InjectEnum, Target: path, Variants: variants, Span: start.Cover(bodySpan)}
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected 'struct' or 'enum' after 'inject'")
		p.advance()
		return &ast.Injection{Span: start}
	}
}

// parseDispatchStmt parses `dispatch Registry[key, ...] <Generics>? to Type`.
// The bracketed key list is static-only; a dynamic-looking chain or a
// '%fallback' key is diagnosed but still consumed so recovery stays local.
func (p *Parser) parseDispatchStmt() ast.Item {
	start := p.advance().Span // 'dispatch'
	registryTok := p.expect(token.Ident, diag.SynExpectedIdent, "expected a dispatcher registry name")

	p.expect(token.LBracket, diag.SynUnclosedDelimiter, "expected '[' after dispatcher registry name")
	var keys []ast.StaticKey
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.looksDynamic() {
			p.errorf(diag.SynDynamicIndexInDispatch, p.cur.Span, "a dispatch statement's index list must be static")
			p.parseAccessorField()
			for p.at(token.DblColon) {
				p.advance()
				p.parseAccessorField()
			}
		} else {
			key := p.parseStaticKey()
			if key.Kind == ast.StaticFallback {
				p.errorf(diag.SynFallbackOnDispatchLHS, p.prevSpan, "'%fallback' cannot be a dispatch registration key")
			}
			keys = append(keys, key)
		}
		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}
	p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close dispatcher index list")

	generics := p.parseGenerics()
	p.expect(token.KwTo, diag.SynUnexpectedToken, "expected 'to' before the dispatch target type")
	target := p.parseTypeExpr()

	return &ast.DispatchStmt{
		Registry: identText(registryTok), Indices: keys, Generics: generics, Target: target,
		Span: start.Cover(target.Base().Sp),
	}
}
