package symbols

import (
	"testing"

	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/lexer"
	"mcdoc/internal/parser"
	"mcdoc/internal/source"
)

func parseInto(t *testing.T, fset *source.FileSet, segments []string, stem, src string) (source.FileID, *diag.Bag) {
	t.Helper()
	id, _ := fset.Add(segments, stem, []byte(src))
	bag := diag.NewBag()
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(fset.Get(id), lexer.Options{Reporter: reporter})
	_ = parser.ParseFile(fset, id, lx, parser.Options{Reporter: reporter})
	return id, bag
}

func buildFromSources(t *testing.T, srcs map[string]string) (*Table, *diag.Bag, *source.FileSet, map[source.FileID]*ast.File) {
	t.Helper()
	fset := source.NewFileSet()
	asts := make(map[source.FileID]*ast.File)
	bag := diag.NewBag()
	reporter := diag.BagReporter{Bag: bag}
	for stem, src := range srcs {
		id, _ := fset.Add(nil, stem, []byte(src))
		lx := lexer.New(fset.Get(id), lexer.Options{Reporter: reporter})
		asts[id] = parser.ParseFile(fset, id, lx, parser.Options{Reporter: reporter})
	}
	table := BuildTable(fset, asts, reporter)
	return table, bag, fset, asts
}

func TestBuildTableRegistersDecls(t *testing.T) {
	table, bag, _, _ := buildFromSources(t, map[string]string{
		"main": `struct Widget {
	name: string,
}
`,
	})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	id, ok := table.Lookup("main::Widget")
	if !ok {
		t.Fatalf("expected main::Widget to be registered")
	}
	decl := table.Get(id)
	if decl.Kind != DeclStruct || decl.Name != "Widget" {
		t.Fatalf("unexpected decl: %+v", decl)
	}
}

func TestBuildTableReportsDuplicateDeclaration(t *testing.T) {
	_, bag, _, _ := buildFromSources(t, map[string]string{
		"main": `struct Widget {
	name: string,
}

struct Widget {
	other: string,
}
`,
	})
	if !bag.HasErrors() {
		t.Fatalf("expected a duplicate-declaration error")
	}
	found := false
	for _, it := range bag.Items() {
		if it.Code == diag.ResDuplicateDeclaration {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.ResDuplicateDeclaration among: %v", bag.Items())
	}
}

func TestApplyInjectionsMergesFieldsOnce(t *testing.T) {
	table, bag, _, _ := buildFromSources(t, map[string]string{
		"main": `struct Widget {
	name: string,
}

inject struct ::main::Widget {
	extra: string,
}
`,
	})
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}
	id, ok := table.Lookup("main::Widget")
	if !ok {
		t.Fatalf("expected main::Widget to be registered")
	}
	decl := table.Get(id)
	all := decl.AllFields()
	if len(all) != 2 {
		t.Fatalf("expected base field plus one injected field, got %d: %+v", len(all), all)
	}
	if len(decl.InjectedFields) != 1 {
		t.Fatalf("expected exactly one injected field (BuildTable must apply injections exactly once), got %d", len(decl.InjectedFields))
	}
}

func TestApplyInjectionsRejectsUnknownTarget(t *testing.T) {
	_, bag, _, _ := buildFromSources(t, map[string]string{
		"main": `inject struct ::main::DoesNotExist {
	extra: string,
}
`,
	})
	if !bag.HasErrors() {
		t.Fatalf("expected an unknown-inject-target error")
	}
	found := false
	for _, it := range bag.Items() {
		if it.Code == diag.ResUnknownInjectTarget {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.ResUnknownInjectTarget among: %v", bag.Items())
	}
}

func TestUseStmtResolvesAlias(t *testing.T) {
	fset := source.NewFileSet()
	asts := make(map[source.FileID]*ast.File)
	bag := diag.NewBag()
	reporter := diag.BagReporter{Bag: bag}

	itemID, _ := fset.Add([]string{"item"}, "mod", []byte(`struct Stack {
	id: string,
}
`))
	lx := lexer.New(fset.Get(itemID), lexer.Options{Reporter: reporter})
	asts[itemID] = parser.ParseFile(fset, itemID, lx, parser.Options{Reporter: reporter})

	mainID, _ := fset.Add(nil, "main", []byte(`use ::item::Stack as ItemStack

struct Holder {
	contents: ItemStack,
}
`))
	lx2 := lexer.New(fset.Get(mainID), lexer.Options{Reporter: reporter})
	asts[mainID] = parser.ParseFile(fset, mainID, lx2, parser.Options{Reporter: reporter})

	table := BuildTable(fset, asts, reporter)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.Items())
	}

	if _, ok := table.Lookup("item::Stack"); !ok {
		t.Fatalf("expected item::Stack to be registered")
	}
	scope := table.fileScope(mainID)
	if scope.Aliases["ItemStack"] != "item::Stack" {
		t.Fatalf("expected ItemStack alias to resolve to item::Stack, got %q", scope.Aliases["ItemStack"])
	}
}

func TestDispatchDuplicateKeyIsReported(t *testing.T) {
	_, bag, _, _ := buildFromSources(t, map[string]string{
		"main": `struct A {
	x: string,
}

struct B {
	y: string,
}

dispatch loot_function["minecraft:set_count"] to A
dispatch loot_function["minecraft:set_count"] to B
`,
	})
	if !bag.HasErrors() {
		t.Fatalf("expected a duplicate-dispatch-key error")
	}
	found := false
	for _, it := range bag.Items() {
		if it.Code == diag.ResDuplicateDispatchKey {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected diag.ResDuplicateDispatchKey among: %v", bag.Items())
	}
}
