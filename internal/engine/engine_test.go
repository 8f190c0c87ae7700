package engine

import (
	"context"
	"testing"

	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/lexer"
	"mcdoc/internal/parser"
	"mcdoc/internal/source"
	"mcdoc/internal/symbols"
	"mcdoc/internal/types"
)

// buildEngine parses src as a single-file project and returns an Engine
// ready to instantiate its declarations, along with the file it was loaded
// into (needed to build a reference into it) and the diagnostics seen while
// building the symbol table.
func buildEngine(t *testing.T, src string) (*Engine, source.FileID, *diag.Bag) {
	t.Helper()
	fset := source.NewFileSet()
	id, _ := fset.Add(nil, "main", []byte(src))
	bag := diag.NewBag()
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fset.Get(id), lexer.Options{Reporter: reporter})
	file := parser.ParseFile(fset, id, lx, parser.Options{Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("unexpected parse errors: %v", bag.Items())
	}
	table := symbols.BuildTable(fset, map[source.FileID]*ast.File{id: file}, reporter)
	if bag.HasErrors() {
		t.Fatalf("unexpected symbol errors: %v", bag.Items())
	}
	in := types.NewInterner()
	eng := New(table, in, nil)
	return eng, id, bag
}

func referenceTo(name string, args ...ast.TypeExpr) ast.TypeExpr {
	return &ast.ReferenceType{Path: ast.Path{Segments: []string{name}}, TypeArgs: args}
}

func TestInstantiateGenericStruct(t *testing.T) {
	eng, file, bag := buildEngine(t, `struct Box<T> {
	value: T,
}
`)
	ref := referenceTo("Box", &ast.StringType{})
	id := eng.Instantiate(context.Background(), file, ref, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("unexpected instantiation errors: %v", bag.Items())
	}

	info := eng.Interner.Struct(id)
	if len(info.Fields) != 1 {
		t.Fatalf("expected exactly one field, got %d", len(info.Fields))
	}
	valueType := eng.Interner.Lookup(info.Fields[0].Type)
	if valueType.Kind != types.KindString {
		t.Fatalf("expected T to bind to string, got kind %v", valueType.Kind)
	}
}

func TestInstantiateRecursiveStructTerminates(t *testing.T) {
	eng, file, bag := buildEngine(t, `struct Node {
	children: [Node],
}
`)
	ref := referenceTo("Node")
	id := eng.Instantiate(context.Background(), file, ref, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("unexpected instantiation errors: %v", bag.Items())
	}

	info := eng.Interner.Struct(id)
	if len(info.Fields) != 1 {
		t.Fatalf("expected exactly one field, got %d", len(info.Fields))
	}
	listInfo := eng.Interner.List(info.Fields[0].Type)
	if listInfo.Elem != id {
		t.Fatalf("expected the list element to be the same self-referential handle as the struct, got %v vs %v", listInfo.Elem, id)
	}
}

func TestInstantiateStructSpreadMergesFields(t *testing.T) {
	eng, file, bag := buildEngine(t, `struct Base {
	id: string,
}

struct Widget {
	...Base,
	name: string,
}
`)
	ref := referenceTo("Widget")
	id := eng.Instantiate(context.Background(), file, ref, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("unexpected instantiation errors: %v", bag.Items())
	}

	info := eng.Interner.Struct(id)
	if len(info.Fields) != 2 {
		t.Fatalf("expected two fields after the spread merges in, got %d: %+v", len(info.Fields), info.Fields)
	}
	if info.Fields[0].KeyText != "id" || info.Fields[1].KeyText != "name" {
		t.Fatalf("expected spread field before the struct's own field, got %+v", info.Fields)
	}
}

func TestInstantiateStructDuplicateFieldKeyKeepsPositionUsesLastType(t *testing.T) {
	eng, file, bag := buildEngine(t, `struct Widget {
	name: string,
	count: boolean,
	name: int,
}
`)
	ref := referenceTo("Widget")
	id := eng.Instantiate(context.Background(), file, ref, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("unexpected instantiation errors: %v", bag.Items())
	}

	info := eng.Interner.Struct(id)
	if len(info.Fields) != 2 {
		t.Fatalf("expected the duplicate 'name' key to replace in place rather than add a field, got %d: %+v", len(info.Fields), info.Fields)
	}
	if info.Fields[0].KeyText != "name" || info.Fields[1].KeyText != "count" {
		t.Fatalf("expected 'name' to keep its original first position, got %+v", info.Fields)
	}
	nameType := eng.Interner.Lookup(info.Fields[0].Type)
	if nameType.Kind != types.KindNumeric {
		t.Fatalf("expected the later 'name: int' to win over the earlier 'name: string', got kind %v", nameType.Kind)
	}
}

func TestInstantiateStructSpreadFieldOverriddenByOwnFieldKeepsSpreadPosition(t *testing.T) {
	eng, file, bag := buildEngine(t, `struct Base {
	id: string,
	name: string,
}

struct Widget {
	...Base,
	name: int,
}
`)
	ref := referenceTo("Widget")
	id := eng.Instantiate(context.Background(), file, ref, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("unexpected instantiation errors: %v", bag.Items())
	}

	info := eng.Interner.Struct(id)
	if len(info.Fields) != 2 {
		t.Fatalf("expected Widget's own 'name' to override the spread's 'name' rather than add a field, got %d: %+v", len(info.Fields), info.Fields)
	}
	if info.Fields[0].KeyText != "id" || info.Fields[1].KeyText != "name" {
		t.Fatalf("expected 'name' to keep the spread's position, got %+v", info.Fields)
	}
	nameType := eng.Interner.Lookup(info.Fields[1].Type)
	if nameType.Kind != types.KindNumeric {
		t.Fatalf("expected Widget's own 'name: int' to win over the spread's 'name: string', got kind %v", nameType.Kind)
	}
}

func TestDispatchFallsBackToUnknownCase(t *testing.T) {
	eng, file, bag := buildEngine(t, `struct SetCount {
	count: int,
}

struct Generic {
	conf: string,
}

dispatch loot_function["minecraft:set_count"] to SetCount
dispatch loot_function[%unknown] to Generic
`)
	indices := []ast.Index{{Kind: ast.IndexStatic, Static: ast.StaticKey{Kind: ast.StaticString, Text: "minecraft:enchant_item"}}}
	id := eng.Dispatch(context.Background(), file, "loot_function", indices, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("unexpected dispatch errors: %v", bag.Items())
	}

	info := eng.Interner.Struct(id)
	if len(info.Fields) != 1 || info.Fields[0].KeyText != "conf" {
		t.Fatalf("expected the %%unknown case (Generic) to be selected, got %+v", info)
	}
}

func TestDispatchWithoutUnknownProducesNonexhaustiveUnion(t *testing.T) {
	eng, file, bag := buildEngine(t, `struct SetCount {
	count: int,
}

struct EnchantRandomly {
	enchantments: string,
}

dispatch loot_function["minecraft:set_count"] to SetCount
dispatch loot_function["minecraft:enchant_randomly"] to EnchantRandomly
`)
	indices := []ast.Index{{Kind: ast.IndexStatic, Static: ast.StaticKey{Kind: ast.StaticString, Text: "minecraft:enchant_item"}}}
	id := eng.Dispatch(context.Background(), file, "loot_function", indices, diag.BagReporter{Bag: bag})
	if bag.HasErrors() {
		t.Fatalf("unexpected dispatch errors: %v", bag.Items())
	}

	info := eng.Interner.Lookup(id)
	if info.Kind != types.KindUnion {
		t.Fatalf("expected an unmatched static key to fall back to the synthetic fallback union, got kind %v", info.Kind)
	}
	if !info.Meta.HasTag("nonexhaustive") {
		t.Fatalf("expected the synthetic fallback union to be tagged nonexhaustive, got meta %+v", info.Meta)
	}
}

func TestGenericParamShadowingModuleIsDiagnosed(t *testing.T) {
	eng, file, bag := buildEngine(t, `struct Widget {
	name: string,
}

struct Box<Widget> {
	value: Widget,
}
`)
	ref := referenceTo("Box", &ast.StringType{})
	eng.Instantiate(context.Background(), file, ref, diag.BagReporter{Bag: bag})

	found := false
	for _, it := range bag.Items() {
		if it.Code == diag.ResGenericShadowsModule {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.ResGenericShadowsModule among: %v", bag.Items())
	}
}
