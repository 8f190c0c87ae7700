package parser

import (
	"testing"

	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/lexer"
	"mcdoc/internal/source"
	"mcdoc/internal/token"
)

func parseSource(t *testing.T, src string) (*ast.File, *diag.Bag) {
	t.Helper()
	fset := source.NewFileSet()
	id, _ := fset.Add(nil, "sample", []byte(src))
	bag := diag.NewBag()
	lx := lexer.New(fset.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	file := ParseFile(fset, id, lx, Options{Reporter: diag.BagReporter{Bag: bag}})
	return file, bag
}

func TestParseStructWithNamedSpreadAndComputedFields(t *testing.T) {
	file, bag := parseSource(t, `struct Widget<T> {
	name: string,
	count?: int,
	...Base,
	[T]: string,
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(file.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(file.Items))
	}
	def, ok := file.Items[0].(*ast.StructDef)
	if !ok {
		t.Fatalf("expected *ast.StructDef, got %T", file.Items[0])
	}
	if def.Name != "Widget" || len(def.Generics) != 1 || def.Generics[0].Name != "T" {
		t.Fatalf("unexpected struct header: %+v", def)
	}
	if len(def.Fields) != 4 {
		t.Fatalf("expected 4 fields, got %d: %+v", len(def.Fields), def.Fields)
	}

	named, ok := def.Fields[0].(*ast.NamedField)
	if !ok || named.Key.Kind != ast.FieldKeyIdent || named.Key.Text != "name" || named.Optional {
		t.Fatalf("unexpected field 0: %+v", def.Fields[0])
	}
	optField, ok := def.Fields[1].(*ast.NamedField)
	if !ok || !optField.Optional || optField.Key.Text != "count" {
		t.Fatalf("unexpected field 1: %+v", def.Fields[1])
	}
	if _, ok := def.Fields[2].(*ast.SpreadField); !ok {
		t.Fatalf("unexpected field 2: %+v", def.Fields[2])
	}
	computed, ok := def.Fields[3].(*ast.NamedField)
	if !ok || computed.Key.Kind != ast.FieldKeyComputed || computed.Key.Computed == nil {
		t.Fatalf("unexpected field 3: %+v", def.Fields[3])
	}
}

func TestParseNumericEnumAndStringEnum(t *testing.T) {
	file, bag := parseSource(t, `enum(byte) Visibility {
	Hidden = 0,
	Shown = 1,
}
enum(string) Color {
	Red = "red",
	Blue = "blue",
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(file.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(file.Items))
	}
	numeric, ok := file.Items[0].(*ast.EnumDef)
	if !ok || numeric.IsString || numeric.BaseKind != ast.KindByte {
		t.Fatalf("unexpected numeric enum: %+v", file.Items[0])
	}
	if len(numeric.Variants) != 2 || numeric.Variants[0].Name != "Hidden" || numeric.Variants[0].IsString {
		t.Fatalf("unexpected numeric variants: %+v", numeric.Variants)
	}

	strEnum, ok := file.Items[1].(*ast.EnumDef)
	if !ok || !strEnum.IsString {
		t.Fatalf("unexpected string enum: %+v", file.Items[1])
	}
	if len(strEnum.Variants) != 2 || !strEnum.Variants[0].IsString || strEnum.Variants[0].StrValue != "red" {
		t.Fatalf("unexpected string variants: %+v", strEnum.Variants)
	}
}

func TestParseTypeAliasAndAliasedUse(t *testing.T) {
	file, bag := parseSource(t, `use foo::Bar as Baz
type Alias<T> = T
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	if len(file.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(file.Items))
	}
	useStmt, ok := file.Items[0].(*ast.UseStmt)
	if !ok || useStmt.Alias != "Baz" {
		t.Fatalf("unexpected use statement: %+v", file.Items[0])
	}
	alias, ok := file.Items[1].(*ast.TypeAlias)
	if !ok || alias.Name != "Alias" || len(alias.Generics) != 1 {
		t.Fatalf("unexpected type alias: %+v", file.Items[1])
	}
}

func TestParseUseWithoutAliasUsesLastSegment(t *testing.T) {
	file, bag := parseSource(t, "use foo::Bar\n")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	useStmt, ok := file.Items[0].(*ast.UseStmt)
	if !ok || useStmt.Alias != "Bar" {
		t.Fatalf("expected the alias to default to the last path segment, got %+v", useStmt)
	}
}

func TestParseStructInjection(t *testing.T) {
	file, bag := parseSource(t, `inject struct foo::Widget {
	extra: string,
}
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	inj, ok := file.Items[0].(*ast.Injection)
	if !ok || inj.Kind != ast.InjectStruct || len(inj.Fields) != 1 {
		t.Fatalf("unexpected injection: %+v", file.Items[0])
	}
}

func TestParseDispatchStatement(t *testing.T) {
	file, bag := parseSource(t, `dispatch loot_function[minecraft:set_count] to SetCount
`)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	stmt, ok := file.Items[0].(*ast.DispatchStmt)
	if !ok || stmt.Registry != "loot_function" || len(stmt.Indices) != 1 {
		t.Fatalf("unexpected dispatch statement: %+v", file.Items[0])
	}
	if stmt.Indices[0].Kind != ast.StaticResLoc {
		t.Fatalf("expected a resource-location dispatch key, got %+v", stmt.Indices[0])
	}
}

func TestParseDispatchRejectsFallbackAsRegistrationKey(t *testing.T) {
	_, bag := parseSource(t, `dispatch loot_function[%fallback] to SetCount
`)
	found := false
	for _, it := range bag.Items() {
		if it.Code == diag.SynFallbackOnDispatchLHS {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.SynFallbackOnDispatchLHS among: %v", bag.Items())
	}
}

func TestParseReservedWordAsStructNameIsDiagnosed(t *testing.T) {
	_, bag := parseSource(t, "struct any {\n}\n")
	found := false
	for _, it := range bag.Items() {
		if it.Code == diag.SynReservedWordAsIdent {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.SynReservedWordAsIdent among: %v", bag.Items())
	}
}

func TestParseUnclosedStructBodyIsDiagnosed(t *testing.T) {
	_, bag := parseSource(t, `struct Broken {
	name: string,
`)
	if !bag.HasErrors() {
		t.Fatalf("expected an unclosed-delimiter diagnostic")
	}
	found := false
	for _, it := range bag.Items() {
		if it.Code == diag.SynUnclosedDelimiter {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.SynUnclosedDelimiter among: %v", bag.Items())
	}
}

func TestParseGarbageTopLevelTokenRecoversToNextItem(t *testing.T) {
	file, bag := parseSource(t, "@@@\nstruct Widget {\n}\n")
	if !bag.HasErrors() {
		t.Fatalf("expected a diagnostic for the stray top-level token")
	}
	if len(file.Items) != 1 {
		t.Fatalf("expected recovery to still find struct Widget, got %d items: %+v", len(file.Items), file.Items)
	}
	def, ok := file.Items[0].(*ast.StructDef)
	if !ok || def.Name != "Widget" {
		t.Fatalf("expected struct Widget, got %+v", file.Items[0])
	}
}

func TestParseEmptyFileProducesNoItems(t *testing.T) {
	file, bag := parseSource(t, "")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors on an empty file: %v", bag.Items())
	}
	if len(file.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(file.Items))
	}
	if file.Span.Start != file.Span.End {
		t.Fatalf("expected a zero-width span for an empty file, got %+v", file.Span)
	}
}

var _ = token.EOF
