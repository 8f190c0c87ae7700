package lexer

import (
	"testing"

	"mcdoc/internal/diag"
	"mcdoc/internal/source"
	"mcdoc/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fset := source.NewFileSet()
	id, _ := fset.Add(nil, "sample", []byte(src))
	bag := diag.NewBag()
	lx := New(fset.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, bag
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func assertKinds(t *testing.T, toks []token.Token, want ...token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens %v, got %d: %v", len(want), want, len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected kind %v, got %v (full: %v)", i, want[i], got[i], got)
		}
	}
}

func TestLexKeywordsAndIdent(t *testing.T) {
	toks, bag := lexAll(t, "struct Widget")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	assertKinds(t, toks, token.KwStruct, token.Ident, token.EOF)
	if toks[1].Text != "Widget" {
		t.Fatalf("expected ident text 'Widget', got %q", toks[1].Text)
	}
}

func TestLexRangeOperators(t *testing.T) {
	toks, bag := lexAll(t, ".. ..< <.. <..< ...")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	assertKinds(t, toks, token.DotDot, token.DotDotLt, token.LtDotDot, token.LtDotDotLt, token.DotDotDot, token.EOF)
}

func TestLexTypedNumberSuffix(t *testing.T) {
	toks, bag := lexAll(t, "100b 3.5f")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	assertKinds(t, toks, token.TypedNumberLit, token.TypedNumberLit, token.EOF)
	if toks[0].Suffix != token.SuffixByte {
		t.Fatalf("expected byte suffix, got %v", toks[0].Suffix)
	}
	if toks[1].Suffix != token.SuffixFloat {
		t.Fatalf("expected float suffix, got %v", toks[1].Suffix)
	}
}

func TestLexPlainNumberLiterals(t *testing.T) {
	toks, bag := lexAll(t, "42 3.14")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	assertKinds(t, toks, token.IntLit, token.FloatLit, token.EOF)
}

func TestLexStringLiteralWithEscapes(t *testing.T) {
	toks, bag := lexAll(t, `"hello\nworld"`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	assertKinds(t, toks, token.StringLit, token.EOF)
}

func TestLexUnterminatedStringReportsDiagnostic(t *testing.T) {
	_, bag := lexAll(t, `"unterminated`)
	if !bag.HasErrors() {
		t.Fatalf("expected an unterminated-string diagnostic")
	}
	found := false
	for _, it := range bag.Items() {
		if it.Code == diag.LexUnterminatedString {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.LexUnterminatedString among: %v", bag.Items())
	}
}

func TestLexResourceLocation(t *testing.T) {
	toks, bag := lexAll(t, "minecraft:set_count")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	assertKinds(t, toks, token.ResourceLocation, token.EOF)
}

func TestLexDocCommentAttachesToNextToken(t *testing.T) {
	toks, bag := lexAll(t, "/// a widget\nstruct Widget")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	assertKinds(t, toks, token.KwStruct, token.Ident, token.EOF)
	if len(toks[0].Doc) != 1 || toks[0].Doc[0] != "a widget" {
		t.Fatalf("expected the doc comment to attach to 'struct', got %+v", toks[0].Doc)
	}
}

func TestLexUnknownCharReportsDiagnostic(t *testing.T) {
	_, bag := lexAll(t, "$")
	if !bag.HasErrors() {
		t.Fatalf("expected an unknown-char diagnostic")
	}
	found := false
	for _, it := range bag.Items() {
		if it.Code == diag.LexUnknownChar {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.LexUnknownChar among: %v", bag.Items())
	}
}
