// Package parser turns a mcdoc token stream into the ast package's AST (C2).
package parser

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/lexer"
	"mcdoc/internal/source"
	"mcdoc/internal/token"
)

// Options configures a Parser.
type Options struct {
	Reporter diag.Reporter
}

// Parser is a recursive-descent parser over one file's token stream, with
// one token of lookahead plus a saved "current" token.
type Parser struct {
	lx   *lexer.Lexer
	fset *source.FileSet
	file source.FileID
	opts Options

	cur      token.Token
	peek     token.Token
	prevSpan source.Span
}

func New(fset *source.FileSet, fileID source.FileID, lx *lexer.Lexer, opts Options) *Parser {
	if opts.Reporter == nil {
		opts.Reporter = diag.NopReporter{}
	}
	p := &Parser{lx: lx, fset: fset, file: fileID, opts: opts}
	p.cur = p.lx.Next()
	p.peek = p.lx.Next()
	return p
}

func (p *Parser) advance() token.Token {
	t := p.cur
	p.prevSpan = t.Span
	p.cur = p.peek
	p.peek = p.lx.Next()
	return t
}

func (p *Parser) at(k token.Kind) bool  { return p.cur.Kind == k }
func (p *Parser) atPeek(k token.Kind) bool { return p.peek.Kind == k }

func (p *Parser) expect(k token.Kind, code diag.Code, msg string) token.Token {
	if p.cur.Kind != k {
		p.errorf(code, p.cur.Span, msg)
		return p.cur
	}
	return p.advance()
}

func (p *Parser) errorf(code diag.Code, span source.Span, msg string) {
	p.opts.Reporter.Report(diag.Error(code, span, msg))
}

// ParseFile parses every top-level item in the file, recovering to the next
// top-level keyword after a syntax error so one bad form does not abort the
// whole file.
func ParseFile(fset *source.FileSet, fileID source.FileID, lx *lexer.Lexer, opts Options) *ast.File {
	p := New(fset, fileID, lx, opts)
	start := p.cur.Span

	var items []ast.Item
	for !p.at(token.EOF) {
		beforeOff := p.cur.Span.Start
		item := p.parseItem()
		if item != nil {
			items = append(items, item)
		}
		if p.cur.Span.Start == beforeOff && !p.at(token.EOF) {
			// Nothing was consumed: avoid an infinite loop and recover.
			p.recoverToTopLevel()
		}
	}

	end := start
	if len(items) > 0 {
		end = items[len(items)-1].ItemSpan()
	}
	return &ast.File{Items: items, Span: start.Cover(end)}
}

// recoverToTopLevel implements panic-mode recovery: skip tokens until one
// starts a new top-level form, or EOF.
func (p *Parser) recoverToTopLevel() {
	for !p.at(token.EOF) {
		switch p.cur.Kind {
		case token.KwStruct, token.KwEnum, token.KwType, token.KwUse, token.KwInject, token.KwDispatch, token.Hash:
			return
		}
		p.advance()
	}
}

func (p *Parser) parseItem() ast.Item {
	docs := p.collectDoc()
	attrs := p.parseAttrs()

	switch p.cur.Kind {
	case token.KwStruct:
		return p.parseStructDef(docs, attrs)
	case token.KwEnum:
		return p.parseEnumDef(docs, attrs)
	case token.KwType:
		return p.parseTypeAlias(docs, attrs)
	case token.KwUse:
		return p.parseUseStmt()
	case token.KwInject:
		return p.parseInjection()
	case token.KwDispatch:
		return p.parseDispatchStmt()
	default:
		p.errorf(diag.SynUnexpectedToken, p.cur.Span, "expected struct, enum, type, use, inject, or dispatch")
		p.advance()
		return nil
	}
}

// collectDoc gathers doc-comment lines attached to the upcoming token.
func (p *Parser) collectDoc() []string {
	return p.cur.Doc
}

func identText(t token.Token) string {
	return t.Text
}
