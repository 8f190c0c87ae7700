package parser

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/token"
)

// parseStaticKey parses one static index/dispatch key: a `%fallback`,
// `%none`, or `%unknown` sigil word, a bare identifier, a string literal, or
// a resource location.
func (p *Parser) parseStaticKey() ast.StaticKey {
	if p.at(token.Percent) {
		return p.parseSigilStaticKey()
	}
	switch p.cur.Kind {
	case token.Ident:
		return ast.StaticKey{Kind: ast.StaticIdent, Text: identText(p.advance())}
	case token.StringLit:
		return ast.StaticKey{Kind: ast.StaticString, Text: decodeStringLit(p.advance().Text)}
	case token.ResourceLocation:
		return ast.StaticKey{Kind: ast.StaticResLoc, Text: identText(p.advance())}
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected a static index key")
		p.advance()
		return ast.StaticKey{Kind: ast.StaticUnknown}
	}
}

func (p *Parser) parseSigilStaticKey() ast.StaticKey {
	p.advance() // '%'
	name := p.expect(token.Ident, diag.SynExpectedIdent, "expected 'fallback', 'none', or 'unknown' after '%'")
	switch identText(name) {
	case "fallback":
		return ast.StaticKey{Kind: ast.StaticFallback}
	case "none":
		return ast.StaticKey{Kind: ast.StaticNone}
	case "unknown":
		return ast.StaticKey{Kind: ast.StaticUnknown}
	default:
		p.errorf(diag.SynUnexpectedToken, name.Span, "unknown '%' key, expected fallback, none, or unknown")
		return ast.StaticKey{Kind: ast.StaticUnknown}
	}
}

// parseAccessorField parses one step of a dynamic accessor chain: the
// `%key`/`%parent` special steps, or a plain field name.
func (p *Parser) parseAccessorField() ast.AccessorKey {
	if p.at(token.Percent) {
		p.advance()
		name := p.expect(token.Ident, diag.SynExpectedIdent, "expected 'key' or 'parent' after '%'")
		switch identText(name) {
		case "key":
			return ast.AccessorKey{Kind: ast.AccessorSpecialKey}
		case "parent":
			return ast.AccessorKey{Kind: ast.AccessorSpecialParent}
		default:
			p.errorf(diag.SynUnexpectedToken, name.Span, "unknown '%' accessor, expected key or parent")
			return ast.AccessorKey{Kind: ast.AccessorField, Text: identText(name)}
		}
	}
	if p.at(token.StringLit) {
		return ast.AccessorKey{Kind: ast.AccessorField, Text: decodeStringLit(p.advance().Text)}
	}
	tok := p.expect(token.Ident, diag.SynExpectedIdent, "expected accessor field name")
	return ast.AccessorKey{Kind: ast.AccessorField, Text: identText(tok)}
}

// looksDynamic reports whether the upcoming index body is a dynamic
// accessor chain rather than a static key: either it starts with a '%key'
// or '%parent' special step, or it is a chain of two or more steps joined
// by '::'.
func (p *Parser) looksDynamic() bool {
	if p.at(token.Percent) {
		// A static '%fallback'/'%none'/'%unknown' key is also spelled with
		// '%', so peek at the word to disambiguate.
		return !p.atPeekIdentIn("fallback", "none", "unknown")
	}
	return (p.at(token.Ident) || p.at(token.StringLit)) && p.atPeek(token.DblColon)
}

func (p *Parser) atPeekIdentIn(words ...string) bool {
	if p.peek.Kind != token.Ident {
		return false
	}
	for _, w := range words {
		if p.peek.Text == w {
			return true
		}
	}
	return false
}

// parseIndex parses one `[...]` suffix: a single static key, or a
// '::'-joined dynamic accessor chain.
func (p *Parser) parseIndex() ast.Index {
	open := p.expect(token.LBracket, diag.SynUnclosedDelimiter, "expected '['")

	if p.looksDynamic() {
		var chain []ast.AccessorKey
		chain = append(chain, p.parseAccessorField())
		for p.at(token.DblColon) {
			p.advance()
			chain = append(chain, p.parseAccessorField())
		}
		close := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close index")
		return ast.Index{Kind: ast.IndexDynamic, Dynamic: chain, Span: open.Span.Cover(close.Span)}
	}

	key := p.parseStaticKey()
	close := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close index")
	return ast.Index{Kind: ast.IndexStatic, Static: key, Span: open.Span.Cover(close.Span)}
}

// parseIndexChain parses zero or more consecutive `[...]` suffixes.
func (p *Parser) parseIndexChain() []ast.Index {
	var indices []ast.Index
	for p.at(token.LBracket) {
		indices = append(indices, p.parseIndex())
	}
	return indices
}
