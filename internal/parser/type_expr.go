package parser

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/token"
)

// parseTypeExpr parses a full type expression, including a top-level union
// written as pipe-separated alternatives without enclosing parens.
func (p *Parser) parseTypeExpr() ast.TypeExpr {
	first := p.parseSuffixedType()
	if !p.at(token.Pipe) {
		return first
	}
	start := first.Base().Sp
	members := []ast.TypeExpr{first}
	for p.at(token.Pipe) {
		p.advance()
		members = append(members, p.parseSuffixedType())
	}
	end := members[len(members)-1].Base().Sp
	return &ast.UnionType{ExprBase: ast.ExprBase{Sp: start.Cover(end)}, Members: members}
}

// parseSuffixedType parses one primary type expression followed by any
// trailing `[...]` index suffixes and an optional trailing `?` shorthand is
// handled by the field parser, not here (optionality is a field property).
func (p *Parser) parseSuffixedType() ast.TypeExpr {
	base := p.parsePrimaryType()
	if !p.at(token.LBracket) {
		return base
	}

	// A bare reference or resource-location primary becomes a dispatcher on
	// its first index suffix; a resource location alone is only ever the
	// registry name of a dispatcher.
	if ref, ok := base.(*ast.ReferenceType); ok && len(ref.TypeArgs) == 0 && !ref.Path.Absolute &&
		ref.Path.Supers == 0 && len(ref.Path.Segments) == 1 {
		indices := p.parseIndexChain()
		disp := &ast.DispatcherType{
			ExprBase: ast.ExprBase{Sp: base.Base().Sp.Cover(indices[len(indices)-1].Span)},
			Registry: ref.Path.Segments[0],
			Indices:  indices[:1],
		}
		return p.wrapRemainingIndices(disp, indices[1:])
	}

	indices := p.parseIndexChain()
	return p.wrapRemainingIndices(base, indices)
}

func (p *Parser) wrapRemainingIndices(base ast.TypeExpr, indices []ast.Index) ast.TypeExpr {
	for _, idx := range indices {
		base = &ast.IndexedType{
			ExprBase: ast.ExprBase{Sp: base.Base().Sp.Cover(idx.Span)},
			BaseExpr: base,
			Indices:  []ast.Index{idx},
		}
	}
	return base
}

func (p *Parser) parsePrimaryType() ast.TypeExpr {
	start := p.cur.Span
	switch p.cur.Kind {
	case token.KwAny:
		p.advance()
		return &ast.AnyType{ExprBase: ast.ExprBase{Sp: start}}

	case token.KwBoolean:
		p.advance()
		return &ast.BooleanType{ExprBase: ast.ExprBase{Sp: start}}

	case token.KwTrue, token.KwFalse:
		t := p.advance()
		return &ast.LiteralBoolType{ExprBase: ast.ExprBase{Sp: t.Span}, Value: t.Kind == token.KwTrue}

	case token.StringLit:
		t := p.advance()
		return &ast.LiteralStringType{ExprBase: ast.ExprBase{Sp: t.Span}, Value: decodeStringLit(t.Text)}

	case token.KwString:
		p.advance()
		var lr *ast.LenRange
		end := start
		if p.at(token.At) {
			at := p.advance()
			lr = p.parseLenRange()
			end = at.Span.Cover(p.prevSpan)
		}
		return &ast.StringType{ExprBase: ast.ExprBase{Sp: start.Cover(end)}, LenRange: lr}

	case token.KwByte, token.KwShort, token.KwInt, token.KwLong, token.KwFloat, token.KwDouble:
		return p.parseNumericOrPrimArray()

	case token.IntLit, token.FloatLit, token.TypedNumberLit:
		return p.parseLiteralOrNumericRangeShorthand()

	case token.LBracket:
		return p.parseListOrTuple()

	case token.KwStruct:
		return p.parseInlineStructType()

	case token.KwEnum:
		return p.parseInlineEnumType()

	case token.Ident:
		return p.parseReferenceType()

	case token.KwSuper, token.DblColon:
		return p.parseReferenceType()

	case token.ResourceLocation:
		t := p.advance()
		path := ast.Path{Segments: []string{identText(t)}, Span: t.Span}
		return &ast.ReferenceType{ExprBase: ast.ExprBase{Sp: t.Span}, Path: path}

	case token.LParen:
		return p.parseParenUnion()

	default:
		p.errorf(diag.SynExpectedTypeExpr, p.cur.Span, "expected a type expression")
		t := p.advance()
		return &ast.AnyType{ExprBase: ast.ExprBase{Sp: t.Span}}
	}
}

// parseNumericOrPrimArray parses a bare numeric primitive with an optional
// `@` value range, or a `[byte;]`-style primitive array with an optional
// element range and/or length range.
func (p *Parser) parseNumericOrPrimArray() ast.TypeExpr {
	kwTok := p.advance()
	kind := keywordNumKind(kwTok.Kind)
	start := kwTok.Span

	var valueRange *ast.NumRange
	end := start
	if p.at(token.At) {
		at := p.advance()
		valueRange = p.parseNumRange()
		end = at.Span.Cover(p.prevSpan)
	}
	return &ast.NumericType{ExprBase: ast.ExprBase{Sp: start.Cover(end)}, Kind: kind, ValueRange: valueRange}
}

func keywordNumKind(k token.Kind) ast.NumKind {
	switch k {
	case token.KwByte:
		return ast.KindByte
	case token.KwShort:
		return ast.KindShort
	case token.KwInt:
		return ast.KindInt
	case token.KwLong:
		return ast.KindLong
	case token.KwFloat:
		return ast.KindFloat
	case token.KwDouble:
		return ast.KindDouble
	default:
		return ast.KindInt
	}
}

// parseLiteralOrNumericRangeShorthand handles a bare number used as a
// literal type, distinguishing it from the start of a range by checking for
// a following range operator.
func (p *Parser) parseLiteralOrNumericRangeShorthand() ast.TypeExpr {
	tok := p.cur
	if !isRangeOp(p.peek.Kind) {
		p.advance()
		val := parseNumberLit(tok)
		lt := &ast.LiteralNumberType{ExprBase: ast.ExprBase{Sp: tok.Span}, Value: val}
		if tok.Kind == token.TypedNumberLit {
			lt.HasSuffix = true
			lt.Suffix = suffixToNumKind(tok.Suffix)
		}
		return lt
	}
	start := tok.Span
	r := p.parseNumRange()
	kind := ast.KindInt
	if tok.Kind == token.TypedNumberLit {
		kind = suffixToNumKind(tok.Suffix)
	} else if tok.Kind == token.FloatLit {
		kind = ast.KindDouble
	}
	return &ast.NumericType{ExprBase: ast.ExprBase{Sp: start.Cover(p.prevSpan)}, Kind: kind, ValueRange: r}
}

// parseListOrTuple disambiguates `[T]`/`[T] @ len` (a list) from `[A, B]`
// (a tuple) and `[byte;]`-style primitive arrays (handled earlier via the
// numeric keyword primary) by peeking whether the first element is followed
// by a comma before the closing bracket.
func (p *Parser) parseListOrTuple() ast.TypeExpr {
	open := p.advance() // '['

	if p.at(token.RBracket) {
		close := p.advance()
		return &ast.TupleType{ExprBase: ast.ExprBase{Sp: open.Span.Cover(close.Span)}}
	}

	first := p.parseTypeExpr()

	if p.at(token.Semicolon) {
		return p.finishPrimArray(open, first)
	}

	if p.at(token.Comma) {
		elems := []ast.TypeExpr{first}
		for p.at(token.Comma) {
			p.advance()
			if p.at(token.RBracket) {
				break
			}
			elems = append(elems, p.parseTypeExpr())
		}
		close := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close tuple")
		return &ast.TupleType{ExprBase: ast.ExprBase{Sp: open.Span.Cover(close.Span)}, Elems: elems}
	}

	close := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close list")
	end := close.Span
	var lr *ast.LenRange
	if p.at(token.At) {
		at := p.advance()
		lr = p.parseLenRange()
		end = at.Span.Cover(p.prevSpan)
	}
	return &ast.ListType{ExprBase: ast.ExprBase{Sp: open.Span.Cover(end)}, Elem: first, LenRange: lr}
}

// finishPrimArray completes a `[byte; ...]`/`[int; ...]`/`[long; ...]`
// typed-array literal once its element type and a ';' have been seen.
// elem must be the NumericType just parsed as the array's first element;
// any other kind is a semantic error reported here rather than threading a
// new diagnostic through the grammar.
func (p *Parser) finishPrimArray(open token.Token, elem ast.TypeExpr) ast.TypeExpr {
	p.advance() // ';'
	num, ok := elem.(*ast.NumericType)
	elemKind := ast.KindInt
	var elemRange *ast.NumRange
	if ok && (num.Kind == ast.KindByte || num.Kind == ast.KindInt || num.Kind == ast.KindLong) {
		elemKind = num.Kind
		elemRange = num.ValueRange
	} else {
		p.errorf(diag.SynExpectedTypeExpr, elem.Base().Sp, "a typed array element must be byte, int, or long")
	}
	close := p.expect(token.RBracket, diag.SynUnclosedDelimiter, "expected ']' to close typed array")
	end := close.Span
	var lr *ast.LenRange
	if p.at(token.At) {
		at := p.advance()
		lr = p.parseLenRange()
		end = at.Span.Cover(p.prevSpan)
	}
	return &ast.PrimArrayType{
		ExprBase: ast.ExprBase{Sp: open.Span.Cover(end)},
		ElemKind: elemKind, ElemRange: elemRange, LenRange: lr,
	}
}

func (p *Parser) parseReferenceType() ast.TypeExpr {
	start := p.cur.Span
	path := p.parsePath()
	args := p.parseTypeArgs()
	end := path.Span
	if len(args) > 0 {
		end = args[len(args)-1].Base().Sp
	}
	return &ast.ReferenceType{ExprBase: ast.ExprBase{Sp: start.Cover(end)}, Path: path, TypeArgs: args}
}

// parseParenUnion parses a parenthesized `(A | B | ...)` union. A single
// member without a following '|' is a parse error: the parens would
// otherwise be indistinguishable from ordinary grouping, which mcdoc's
// grammar does not have.
func (p *Parser) parseParenUnion() ast.TypeExpr {
	open := p.advance() // '('
	if p.at(token.RParen) {
		close := p.advance()
		return &ast.UnionType{ExprBase: ast.ExprBase{Sp: open.Span.Cover(close.Span)}}
	}

	first := p.parseSuffixedType()
	if !p.at(token.Pipe) {
		if p.at(token.RParen) {
			p.errorf(diag.SynSingleUnionMember, first.Base().Sp, "a parenthesized union needs at least one '|'")
		}
		close := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close union")
		return p.finishUnion(open, first, nil, close)
	}

	var members []ast.TypeExpr
	for p.at(token.Pipe) {
		p.advance()
		members = append(members, p.parseSuffixedType())
	}
	close := p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' to close union")
	return p.finishUnion(open, first, members, close)
}

func (p *Parser) finishUnion(open token.Token, first ast.TypeExpr, rest []ast.TypeExpr, close token.Token) ast.TypeExpr {
	members := append([]ast.TypeExpr{first}, rest...)
	return &ast.UnionType{ExprBase: ast.ExprBase{Sp: open.Span.Cover(close.Span)}, Members: members}
}

func (p *Parser) parseInlineStructType() ast.TypeExpr {
	start := p.cur.Span
	p.advance() // 'struct'
	fields, end := p.parseStructBody()
	return &ast.StructType{ExprBase: ast.ExprBase{Sp: start.Cover(end)}, Fields: fields}
}

// parseInlineEnumType parses `enum(kind) { variants }` used as a type
// expression rather than a top-level declaration.
func (p *Parser) parseInlineEnumType() ast.TypeExpr {
	start := p.cur.Span
	p.advance() // 'enum'
	p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' after enum")
	baseKind, isString := p.parseEnumBaseKind()
	p.expect(token.RParen, diag.SynUnclosedDelimiter, "expected ')' after enum base kind")
	variants, end := p.parseEnumBody()
	return &ast.EnumType{
		ExprBase: ast.ExprBase{Sp: start.Cover(end)},
		BaseKind: baseKind, IsString: isString, Variants: variants,
	}
}

func (p *Parser) parseEnumBaseKind() (ast.NumKind, bool) {
	switch p.cur.Kind {
	case token.KwString:
		p.advance()
		return ast.KindInt, true
	case token.KwByte, token.KwShort, token.KwInt, token.KwLong, token.KwFloat, token.KwDouble:
		return keywordNumKind(p.advance().Kind), false
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected an enum base kind (string or a numeric primitive)")
		p.advance()
		return ast.KindInt, false
	}
}
