package engine

import (
	"context"
	"fmt"

	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/symbols"
	"mcdoc/internal/types"
)

// instantiate dispatches by AST arm. Self-contained arms
// are returned as-is (with attributes attached); container arms are
// resolved eagerly here rather than kept as unforced (TypeExpr, env)
// pairs — the two-phase Reserve/Fill handle obtained via guarded already
// gives self-referential declarations a stable, safe-to-embed TypeID
// before their body is built, which is what makes eager child
// instantiation terminate on cyclic schemas without needing a second,
// separate laziness mechanism for container children.
func (e *Engine) instantiate(ctx context.Context, expr ast.TypeExpr, env *Env, reporter diag.Reporter) types.TypeID {
	select {
	case <-ctx.Done():
		return e.Interner.NewCancelled()
	default:
	}

	switch t := expr.(type) {
	case *ast.AnyType:
		return e.Interner.WithAttrs(e.Interner.NewAny(), t.Attrs)
	case *ast.BooleanType:
		return e.Interner.WithAttrs(e.Interner.NewBoolean(), t.Attrs)
	case *ast.StringType:
		return e.Interner.WithAttrs(e.Interner.NewString(t.LenRange), t.Attrs)
	case *ast.LiteralBoolType:
		return e.Interner.WithAttrs(e.Interner.NewLiteralBool(t.Value), t.Attrs)
	case *ast.LiteralStringType:
		return e.Interner.WithAttrs(e.Interner.NewLiteralString(t.Value), t.Attrs)
	case *ast.LiteralNumberType:
		return e.Interner.WithAttrs(e.Interner.NewLiteralNumber(t.Value, t.Suffix, t.HasSuffix), t.Attrs)
	case *ast.NumericType:
		return e.Interner.WithAttrs(e.Interner.NewNumeric(t.Kind, t.ValueRange), t.Attrs)
	case *ast.PrimArrayType:
		return e.Interner.WithAttrs(e.Interner.NewPrimArray(t.ElemKind, t.ElemRange, t.LenRange), t.Attrs)

	case *ast.ListType:
		elem := e.instantiate(ctx, t.Elem, env, reporter)
		return e.Interner.WithAttrs(e.Interner.NewList(elem, t.LenRange), t.Attrs)

	case *ast.TupleType:
		elems := make([]types.TypeID, len(t.Elems))
		for i, el := range t.Elems {
			elems[i] = e.instantiate(ctx, el, env, reporter)
		}
		return e.Interner.WithAttrs(e.Interner.NewTuple(elems), t.Attrs)

	case *ast.StructType:
		fields, hoisted := e.instantiateStructFields(ctx, t.Fields, env, reporter)
		id := e.Interner.NewStruct(fields)
		id = e.Interner.WithAttrs(id, hoisted)
		return e.Interner.WithAttrs(id, t.Attrs)

	case *ast.EnumType:
		variants := instantiateEnumVariants(t.Variants)
		return e.Interner.WithAttrs(e.Interner.NewEnum(t.BaseKind, t.IsString, variants), t.Attrs)

	case *ast.UnionType:
		members := make([]types.TypeID, len(t.Members))
		for i, m := range t.Members {
			members[i] = e.instantiate(ctx, m, env, reporter)
		}
		return e.Interner.WithAttrs(e.Simplify(members), t.Attrs)

	case *ast.ReferenceType:
		return e.instantiateReference(ctx, t, env, reporter)

	case *ast.DispatcherType:
		result := e.resolveIndices(ctx, current{registry: t.Registry}, t.Indices, env, reporter)
		return e.Interner.WithAttrs(result, t.Attrs)

	case *ast.IndexedType:
		base := e.instantiate(ctx, t.BaseExpr, env, reporter)
		result := e.resolveIndices(ctx, current{id: base}, t.Indices, env, reporter)
		return e.Interner.WithAttrs(result, t.Attrs)

	default:
		reporter.Report(diag.Error(diag.UnknownCode, expr.Base().Sp, "unrecognized type expression"))
		return e.Interner.NewError()
	}
}

func instantiateEnumVariants(variants []ast.EnumVariant) []types.EnumVariantInfo {
	out := make([]types.EnumVariantInfo, len(variants))
	for i, v := range variants {
		out[i] = types.EnumVariantInfo{Name: v.Name, NumValue: v.NumValue, StrValue: v.StrValue}
	}
	return out
}

// instantiateReference resolves a Reference's path to a declaration,
// instantiates its type arguments, and instantiates the declaration's
// body under a generic-substitution Env, memoized by (path, args).
func (e *Engine) instantiateReference(ctx context.Context, t *ast.ReferenceType, env *Env, reporter diag.Reporter) types.TypeID {
	if !t.Path.Absolute && t.Path.Supers == 0 && len(t.Path.Segments) == 1 && len(t.TypeArgs) == 0 {
		if bound, ok := env.Generics[t.Path.Segments[0]]; ok {
			return e.Interner.WithAttrs(bound, t.Attrs)
		}
	}

	canonical, ok := e.Table.ResolvePath(env.File, t.Path, reporter)
	if !ok {
		return e.Interner.NewError()
	}
	declID, ok := e.Table.Lookup(canonical)
	if !ok {
		reporter.Report(diag.Error(diag.ResUnknownPath, t.Base().Sp, "unknown path '"+canonical+"'"))
		return e.Interner.NewError()
	}
	decl := e.Table.Get(declID)

	argIDs := make([]types.TypeID, len(t.TypeArgs))
	for i, a := range t.TypeArgs {
		argIDs[i] = e.instantiate(ctx, a, env, reporter)
	}
	if len(argIDs) != len(decl.Generics) {
		reporter.Report(diag.Error(diag.InstTypeArgCountMismatch, t.Base().Sp,
			fmt.Sprintf("'%s' takes %d type argument(s), got %d", canonical, len(decl.Generics), len(argIDs))))
		return e.Interner.NewError()
	}

	key := refCacheKey(canonical, argIDs)
	result := e.guarded(env, key, func(reserved types.TypeID) types.TypeID {
		return e.instantiateDecl(ctx, decl, argIDs, env, reserved, reporter)
	})
	return e.Interner.WithAttrs(result, t.Attrs)
}

// instantiateDecl builds the body of decl under a generic-substitution
// environment binding each of its parameters to argIDs, filling reserved
// (obtained from guarded) once the body is ready.
func (e *Engine) instantiateDecl(ctx context.Context, decl *symbols.Decl, argIDs []types.TypeID, env *Env, reserved types.TypeID, reporter diag.Reporter) types.TypeID {
	generics := make(map[string]types.TypeID, len(decl.Generics))
	for i, g := range decl.Generics {
		generics[g.Name] = argIDs[i]
	}
	e.checkGenericShadowsModule(decl, reporter)
	declEnv := env.withScope(decl.File, generics)

	switch decl.Kind {
	case symbols.DeclStruct:
		fields, hoisted := e.instantiateStructFields(ctx, decl.AllFields(), declEnv, reporter)
		meta := (*types.Meta)(nil)
		if len(hoisted) > 0 {
			meta = &types.Meta{Attrs: hoisted}
		}
		e.Interner.FillStruct(reserved, fields, meta)
		return reserved

	case symbols.DeclEnum:
		variants := instantiateEnumVariants(decl.AllVariants())
		e.Interner.FillEnum(reserved, decl.Enum.BaseKind, decl.Enum.IsString, variants, nil)
		return reserved

	case symbols.DeclTypeAlias:
		result := e.instantiate(ctx, decl.Alias.Target, declEnv, reporter)
		if result == reserved {
			reporter.Report(diag.Error(diag.InstCycleWithoutLaziness, decl.Span,
				"'"+decl.Path+"' is defined in terms of itself with no struct, list, tuple, or dispatcher in between"))
			e.Interner.Fill(reserved, e.Interner.Lookup(e.Interner.NewError()))
			return reserved
		}
		e.Interner.Fill(reserved, e.Interner.Lookup(result))
		return reserved

	default:
		e.Interner.Fill(reserved, e.Interner.Lookup(e.Interner.NewError()))
		return reserved
	}
}

// checkGenericShadowsModule reports ResGenericShadowsModule when a
// generic parameter's name collides with a module-level declaration
// reachable from decl's own file scope, diagnosed before substitution
// begins.
func (e *Engine) checkGenericShadowsModule(decl *symbols.Decl, reporter diag.Reporter) {
	for _, g := range decl.Generics {
		bare := ast.Path{Segments: []string{g.Name}, Span: g.Span}
		canonical, ok := e.Table.ResolvePath(decl.File, bare, diag.NopReporter{})
		if !ok {
			continue
		}
		if _, found := e.Table.Lookup(canonical); found {
			reporter.Report(diag.Error(diag.ResGenericShadowsModule, g.Span,
				"generic parameter '"+g.Name+"' shadows the module declaration '"+canonical+"'"))
		}
	}
}

// instantiateStructFields instantiates a struct's own fields and resolves
// each spread eagerly: a spread that instantiates to a struct is
// inlined at its position; the spread target's own attributes are hoisted
// onto the enclosing struct either way. A later field (own, spread-inlined,
// or injected — fields arrives pre-merged in that order) sharing an
// identifier/string key with an earlier one replaces the earlier one's type
// in place rather than appending a second field under the same key;
// computed keys are never deduplicated this way.
func (e *Engine) instantiateStructFields(ctx context.Context, fields []ast.StructField, env *Env, reporter diag.Reporter) ([]types.FieldInfo, []ast.Attr) {
	var out []types.FieldInfo
	var hoisted []ast.Attr

	for _, f := range fields {
		select {
		case <-ctx.Done():
			return out, hoisted
		default:
		}

		switch sf := f.(type) {
		case *ast.NamedField:
			fi := types.FieldInfo{KeyKind: sf.Key.Kind, Optional: sf.Optional}
			switch sf.Key.Kind {
			case ast.FieldKeyIdent, ast.FieldKeyString:
				fi.KeyText = sf.Key.Text
			case ast.FieldKeyComputed:
				fi.KeyType = e.instantiate(ctx, sf.Key.Computed, env, reporter)
			}
			fi.Type = e.Interner.WithAttrs(e.instantiate(ctx, sf.Type, env, reporter), sf.Attrs)
			out = upsertField(out, fi)

		case *ast.SpreadField:
			target := e.Interner.WithAttrs(e.instantiate(ctx, sf.Type, env, reporter), sf.Attrs)
			hoisted = append(hoisted, e.attrsOf(target)...)
			if e.Interner.Lookup(target).Kind == types.KindStruct {
				for _, fi := range e.Interner.Struct(target).Fields {
					out = upsertField(out, fi)
				}
			}
		}
	}
	return out, hoisted
}

// upsertField appends fi to out, unless fi has an identifier/string key
// matching a field already in out, in which case that earlier field's type
// is replaced in place and its position is kept.
func upsertField(out []types.FieldInfo, fi types.FieldInfo) []types.FieldInfo {
	if fi.KeyKind != ast.FieldKeyComputed {
		for i := range out {
			if out[i].KeyKind == fi.KeyKind && out[i].KeyText == fi.KeyText {
				out[i].Type = fi.Type
				out[i].Optional = fi.Optional
				return out
			}
		}
	}
	return append(out, fi)
}

func (e *Engine) attrsOf(id types.TypeID) []ast.Attr {
	t := e.Interner.Lookup(id)
	if t.Meta == nil {
		return nil
	}
	return t.Meta.Attrs
}
