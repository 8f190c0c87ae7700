package symbols

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/source"
)

// BuildTable walks every parsed file in load order and records its
// declarations, dispatch cases, and use-aliases, queuing injections for
// ApplyInjections. Files are visited in ascending FileID order so
// "earliest declaration wins" duplicate detection is deterministic across
// runs of the same project.
func BuildTable(fset *source.FileSet, asts map[source.FileID]*ast.File, reporter diag.Reporter) *Table {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	t := NewTable()

	for i := range fset.Len() {
		id := source.FileID(i)
		if _, ok := asts[id]; !ok {
			continue
		}
		t.fileScope(id).Module = ModulePathOf(fset.Get(id))
	}

	for i := range fset.Len() {
		id := source.FileID(i)
		file, ok := asts[id]
		if !ok {
			continue
		}
		t.processFile(id, file, reporter)
	}

	t.ApplyInjections(reporter)
	return t
}

func (t *Table) processFile(file source.FileID, f *ast.File, reporter diag.Reporter) {
	modPath := t.fileScope(file).Module

	for _, item := range f.Items {
		switch it := item.(type) {
		case *ast.StructDef:
			t.addDecl(Decl{
				Kind: DeclStruct, Name: it.Name, Path: joinPath(append(append([]string(nil), modPath...), it.Name)),
				Struct: it, Generics: it.Generics, File: file, Span: it.Span,
			}, reporter)

		case *ast.EnumDef:
			t.addDecl(Decl{
				Kind: DeclEnum, Name: it.Name, Path: joinPath(append(append([]string(nil), modPath...), it.Name)),
				Enum: it, File: file, Span: it.Span,
			}, reporter)

		case *ast.TypeAlias:
			t.addDecl(Decl{
				Kind: DeclTypeAlias, Name: it.Name, Path: joinPath(append(append([]string(nil), modPath...), it.Name)),
				Alias: it, Generics: it.Generics, File: file, Span: it.Span,
			}, reporter)

		case *ast.UseStmt:
			canonical, ok := t.ResolvePath(file, it.Target, reporter)
			if ok {
				t.fileScope(file).Aliases[it.Alias] = canonical
			}

		case *ast.Injection:
			switch it.Kind {
			case ast.InjectStruct:
				t.pendingStructInjections = append(t.pendingStructInjections, pendingStructInjection{file: file, inj: it})
			case ast.InjectEnum:
				t.pendingEnumInjections = append(t.pendingEnumInjections, pendingEnumInjection{file: file, inj: it})
			}

		case *ast.DispatchStmt:
			t.addDispatchStmt(file, it, reporter)
		}
	}
}

func (t *Table) addDispatchStmt(file source.FileID, d *ast.DispatchStmt, reporter diag.Reporter) {
	reg := t.registry(d.Registry)
	for _, key := range d.Indices {
		c := DispatchCase{Key: key, Target: d.Target, File: file, Span: d.Span}
		switch key.Kind {
		case ast.StaticNone:
			if reg.None != nil {
				reporter.Report(diag.Error(diag.ResDuplicateDispatchKey, d.Span,
					"duplicate '%none' registration for dispatcher '"+d.Registry+"'").
					WithNote(reg.None.Span, "first registered here"))
				continue
			}
			cc := c
			reg.None = &cc
		case ast.StaticUnknown:
			if reg.Unknown != nil {
				reporter.Report(diag.Error(diag.ResDuplicateDispatchKey, d.Span,
					"duplicate '%unknown' registration for dispatcher '"+d.Registry+"'").
					WithNote(reg.Unknown.Span, "first registered here"))
				continue
			}
			cc := c
			reg.Unknown = &cc
		default:
			k := key.String()
			if existing, ok := reg.Cases[k]; ok {
				reporter.Report(diag.Error(diag.ResDuplicateDispatchKey, d.Span,
					"duplicate dispatch key '"+k+"' for dispatcher '"+d.Registry+"'").
					WithNote(existing.Span, "first registered here"))
				continue
			}
			reg.Cases[k] = c
		}
	}
}
