package symbols

import "mcdoc/internal/diag"

// ApplyInjections resolves every queued `inject struct`/`inject enum` and
// merges its fields or variants onto the target declaration, in the order
// injections were queued (file load order). A target that does not exist,
// or exists as the wrong declaration kind, is reported and the injection
// dropped.
func (t *Table) ApplyInjections(reporter diag.Reporter) {
	for _, pi := range t.pendingStructInjections {
		canonical, ok := t.ResolvePath(pi.file, pi.inj.Target, reporter)
		if !ok {
			continue
		}
		id, ok := t.byPath[canonical]
		if !ok {
			reporter.Report(diag.Error(diag.ResUnknownInjectTarget, pi.inj.Span,
				"inject struct target '"+canonical+"' does not exist"))
			continue
		}
		d := t.Get(id)
		if d.Kind != DeclStruct {
			reporter.Report(diag.Error(diag.ResUnknownInjectTarget, pi.inj.Span,
				"'"+canonical+"' is not a struct, cannot inject fields into it"))
			continue
		}
		d.InjectedFields = append(d.InjectedFields, pi.inj.Fields...)
	}

	for _, pi := range t.pendingEnumInjections {
		canonical, ok := t.ResolvePath(pi.file, pi.inj.Target, reporter)
		if !ok {
			continue
		}
		id, ok := t.byPath[canonical]
		if !ok {
			reporter.Report(diag.Error(diag.ResUnknownInjectTarget, pi.inj.Span,
				"inject enum target '"+canonical+"' does not exist"))
			continue
		}
		d := t.Get(id)
		if d.Kind != DeclEnum {
			reporter.Report(diag.Error(diag.ResUnknownInjectTarget, pi.inj.Span,
				"'"+canonical+"' is not an enum, cannot inject variants into it"))
			continue
		}
		d.InjectedVariants = append(d.InjectedVariants, pi.inj.Variants...)
	}
}
