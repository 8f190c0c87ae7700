package symbols

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/source"
)

// ResolvePath computes the canonical, "::"-joined path a Path written in
// file denotes, applying (in order) super-hops, then use-alias
// substitution of the leading segment, then module-relative prefixing. It
// reports ResSuperPastRoot and returns false when supers exceeds the
// file's module depth; it does not check that the resulting path names an
// existing declaration (call Lookup for that).
func (t *Table) ResolvePath(file source.FileID, p ast.Path, reporter diag.Reporter) (string, bool) {
	scope := t.fileScopes[file]
	if scope == nil {
		scope = &FileScope{}
	}

	if p.Absolute {
		return joinPath(p.Segments), true
	}

	base := append([]string(nil), scope.Module...)
	if p.Supers > len(base) {
		reporter.Report(diag.Error(diag.ResSuperPastRoot, p.Span,
			"'super' used past the module root"))
		return "", false
	}
	base = base[:len(base)-p.Supers]

	if p.Supers == 0 && len(p.Segments) > 0 && scope.Aliases != nil {
		if target, ok := scope.Aliases[p.Segments[0]]; ok {
			if len(p.Segments) == 1 {
				return target, true
			}
			return target + "::" + joinPath(p.Segments[1:]), true
		}
	}

	full := append(base, p.Segments...)
	return joinPath(full), true
}

func (t *Table) fileScope(file source.FileID) *FileScope {
	s, ok := t.fileScopes[file]
	if !ok {
		s = &FileScope{Aliases: make(map[string]string)}
		t.fileScopes[file] = s
	}
	return s
}
