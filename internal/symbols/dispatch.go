package symbols

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/source"
)

// DispatchCase is one registered `dispatch Registry[key] to Type` binding.
type DispatchCase struct {
	Key    ast.StaticKey
	Target ast.TypeExpr
	File   source.FileID
	Span   source.Span
}

// DispatchRegistry holds every case registered against one dispatcher name,
// keyed by the case key's canonical string form, plus the three special
// slots a struct or enum index may fall back to.
type DispatchRegistry struct {
	Name    string
	Cases   map[string]DispatchCase
	None    *DispatchCase
	Unknown *DispatchCase
}

func newDispatchRegistry(name string) *DispatchRegistry {
	return &DispatchRegistry{Name: name, Cases: make(map[string]DispatchCase)}
}

// Lookup resolves a static key against the registry: an exact case first,
// then %unknown, matching the fallback order a dispatcher index follows.
func (r *DispatchRegistry) Lookup(key ast.StaticKey) (DispatchCase, bool) {
	if c, ok := r.Cases[key.String()]; ok {
		return c, true
	}
	if r.Unknown != nil {
		return *r.Unknown, true
	}
	return DispatchCase{}, false
}
