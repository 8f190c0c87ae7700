package engine

import (
	"context"

	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/symbols"
	"mcdoc/internal/types"
)

// current is the running value threaded through index resolution: either
// an as-yet-unindexed dispatcher registry, or an already instantiated
// type a further index applies to.
type current struct {
	registry string // non-empty when this is an unindexed registry
	id       types.TypeID
}

// resolveIndices applies indices left to right against base.
func (e *Engine) resolveIndices(ctx context.Context, base current, indices []ast.Index, env *Env, reporter diag.Reporter) types.TypeID {
	cur := base
	for _, idx := range indices {
		select {
		case <-ctx.Done():
			return e.Interner.NewCancelled()
		default:
		}
		if cur.registry != "" {
			cur = current{id: e.resolveRegistryIndex(ctx, cur.registry, idx, env, reporter)}
		} else {
			cur = current{id: e.resolveValueIndex(ctx, cur.id, idx, env, reporter)}
		}
	}
	if cur.registry != "" {
		// An unindexed registry can only reach here if a Dispatcher were
		// constructed with zero indices, which the parser never emits.
		reporter.Report(diag.Warning(diag.InstUnknownDispatcherRegistry, ast.ExprBase{}.Sp,
			"dispatcher '"+cur.registry+"' referenced with no index"))
		return e.Interner.NewUnion(nil, nil)
	}
	return cur.id
}

func (e *Engine) resolveRegistryIndex(ctx context.Context, registryName string, idx ast.Index, env *Env, reporter diag.Reporter) types.TypeID {
	reg, ok := e.Table.Dispatch[registryName]
	if !ok {
		reporter.Report(diag.Warning(diag.InstUnknownDispatcherRegistry, idx.Span,
			"unknown dispatcher registry '"+registryName+"'"))
		return e.Interner.WithTag(e.Interner.NewUnion(nil, nil), "nonexhaustive")
	}
	if idx.Kind == ast.IndexDynamic {
		return e.dynamicFallback(ctx, reg, env, reporter, idx.Dynamic)
	}
	return e.resolveStaticOnRegistry(ctx, reg, idx, env, reporter)
}

// resolveStaticOnRegistry implements the static-index fallback chain: an
// exact case, else %unknown if registered, else the synthetic fallback
// union over every registered non-special case.
func (e *Engine) resolveStaticOnRegistry(ctx context.Context, reg *symbols.DispatchRegistry, idx ast.Index, env *Env, reporter diag.Reporter) types.TypeID {
	var dc symbols.DispatchCase
	found := false

	switch idx.Static.Kind {
	case ast.StaticNone:
		if reg.None != nil {
			dc, found = *reg.None, true
		}
	case ast.StaticUnknown:
		if reg.Unknown != nil {
			dc, found = *reg.Unknown, true
		}
	default:
		if c, ok := reg.Cases[idx.Static.String()]; ok {
			dc, found = c, true
		} else if reg.Unknown != nil {
			dc, found = *reg.Unknown, true
		}
	}

	if !found {
		return e.syntheticFallback(ctx, reg, env, reporter)
	}
	return e.instantiateDispatchCase(ctx, reg.Name, dc, env, reporter)
}

// dynamicFallback implements the dynamic-index rule on a dispatcher: the
// union of every registered (non-%none, non-%unknown) case, tagged
// nonexhaustive, with the accessor chain preserved verbatim in metadata.
func (e *Engine) dynamicFallback(ctx context.Context, reg *symbols.DispatchRegistry, env *Env, reporter diag.Reporter, accessor []ast.AccessorKey) types.TypeID {
	id := e.syntheticFallback(ctx, reg, env, reporter)
	return e.Interner.WithAccessor(id, accessor)
}

// syntheticFallback is the union of every case registered against reg
// (excluding the %none/%unknown special slots), tagged nonexhaustive.
func (e *Engine) syntheticFallback(ctx context.Context, reg *symbols.DispatchRegistry, env *Env, reporter diag.Reporter) types.TypeID {
	members := make([]types.TypeID, 0, len(reg.Cases))
	for _, dc := range reg.Cases {
		members = append(members, e.instantiateDispatchCase(ctx, reg.Name, dc, env, reporter))
	}
	return e.Interner.WithTag(e.Simplify(members), "nonexhaustive")
}

// instantiateDispatchCase instantiates one dispatch case's target,
// memoized and cycle-guarded by (registry, key) exactly like a reference.
func (e *Engine) instantiateDispatchCase(ctx context.Context, registryName string, dc symbols.DispatchCase, env *Env, reporter diag.Reporter) types.TypeID {
	key := dispatchCacheKey(registryName, dc.Key)
	return e.guarded(env, key, func(reserved types.TypeID) types.TypeID {
		caseEnv := env.withScope(dc.File, map[string]types.TypeID{})
		v := e.instantiate(ctx, dc.Target, caseEnv, reporter)
		e.Interner.Fill(reserved, e.Interner.Lookup(v))
		return reserved
	})
}

// resolveValueIndex resolves one index against an already-instantiated
// type: a struct's field by static key, or a fallback union for a dynamic
// accessor on a struct. Any other current kind is a diagnostic.
func (e *Engine) resolveValueIndex(ctx context.Context, cur types.TypeID, idx ast.Index, env *Env, reporter diag.Reporter) types.TypeID {
	t := e.Interner.Lookup(cur)
	if t.Kind != types.KindStruct {
		reporter.Report(diag.Error(diag.InstStaticKeyOnNonDispatcherStruct, idx.Span,
			"index applied to a non-dispatcher, non-struct type"))
		return e.Interner.NewError()
	}
	s := e.Interner.Struct(cur)

	if idx.Kind == ast.IndexDynamic {
		members := make([]types.TypeID, len(s.Fields))
		for i, f := range s.Fields {
			members[i] = f.Type
		}
		id := e.Interner.WithTag(e.Simplify(members), "nonexhaustive")
		return e.Interner.WithAccessor(id, idx.Dynamic)
	}

	text := idx.Static.String()
	for _, f := range s.Fields {
		if f.KeyKind != ast.FieldKeyComputed && f.KeyText == text {
			return f.Type
		}
	}
	reporter.Report(diag.Error(diag.InstStaticKeyOnNonDispatcherStruct, idx.Span,
		"struct has no field named '"+text+"'"))
	return e.Interner.NewError()
}
