package symbols

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/source"
)

// FileScope records the per-file context needed to resolve a Path written
// in that file: its own module path, and the alias-to-canonical-path map
// contributed by its `use` statements.
type FileScope struct {
	Module  []string
	Aliases map[string]string // local name -> canonical "::"-joined path
}

// Table is the project-wide declaration and dispatch registry built by
// BuildTable (C3). It never mutates its Decls slice after BuildTable and
// ApplyInjections return, so the remaining pipeline stages can share *Table
// freely across goroutines.
type Table struct {
	Decls      []Decl
	byPath     map[string]DeclID
	Dispatch   map[string]*DispatchRegistry
	fileScopes map[source.FileID]*FileScope

	pendingStructInjections []pendingStructInjection
	pendingEnumInjections   []pendingEnumInjection
}

type pendingStructInjection struct {
	file source.FileID
	inj  *ast.Injection
}

type pendingEnumInjection struct {
	file source.FileID
	inj  *ast.Injection
}

// NewTable creates an empty table.
func NewTable() *Table {
	return &Table{
		byPath:     make(map[string]DeclID),
		Dispatch:   make(map[string]*DispatchRegistry),
		fileScopes: make(map[source.FileID]*FileScope),
	}
}

// Get returns the declaration for id. Decl IDs are 1-based; NoDeclID panics,
// the same contract arena-style IDs carry elsewhere in this codebase.
func (t *Table) Get(id DeclID) *Decl {
	return &t.Decls[id-1]
}

// Lookup finds a declaration by its exact canonical path.
func (t *Table) Lookup(canonicalPath string) (DeclID, bool) {
	id, ok := t.byPath[canonicalPath]
	return id, ok
}

// addDecl registers a declaration, reporting ResDuplicateDeclaration and
// keeping the earliest registration when the canonical path collides.
func (t *Table) addDecl(d Decl, reporter diag.Reporter) DeclID {
	if existing, ok := t.byPath[d.Path]; ok {
		reporter.Report(diag.Error(diag.ResDuplicateDeclaration, d.Span,
			"duplicate declaration of '"+d.Path+"'").
			WithNote(t.Get(existing).Span, "first declared here"))
		return existing
	}
	t.Decls = append(t.Decls, d)
	id := DeclID(len(t.Decls))
	t.byPath[d.Path] = id
	return id
}

func (t *Table) registry(name string) *DispatchRegistry {
	r, ok := t.Dispatch[name]
	if !ok {
		r = newDispatchRegistry(name)
		t.Dispatch[name] = r
	}
	return r
}
