// Package engine is the type instantiation engine (C4): it walks a parsed
// TypeExpr and produces a fully instantiated types.TypeID by resolving
// references, generic substitution, static and dynamic indices against
// dispatchers and structs, struct spreads, and union simplification.
package engine

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"mcdoc/internal/assign"
	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/source"
	"mcdoc/internal/symbols"
	"mcdoc/internal/types"
)

// Engine resolves parsed TypeExprs into fully instantiated types.TypeIDs.
// One Engine serves one project load: its Table is read-only once
// BuildTable returns, so concurrent queries share it and the instantiation
// cache safely.
type Engine struct {
	Table    *symbols.Table
	Interner *types.Interner
	Profile  *assign.Profile

	cacheMu sync.RWMutex
	cache   map[string]types.TypeID
	group   singleflight.Group
}

// New builds an Engine over an already-built symbol table. profile may be
// nil, in which case assign.Default() is used.
func New(table *symbols.Table, interner *types.Interner, profile *assign.Profile) *Engine {
	if profile == nil {
		profile = assign.Default()
	}
	return &Engine{
		Table:    table,
		Interner: interner,
		Profile:  profile,
		cache:    make(map[string]types.TypeID),
	}
}

// Instantiate is the engine's main entry point: it resolves expr, written
// in file, to a fully instantiated type.
func (e *Engine) Instantiate(ctx context.Context, file source.FileID, expr ast.TypeExpr, reporter diag.Reporter) types.TypeID {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	return e.instantiate(ctx, expr, newEnv(file), reporter)
}

// Dispatch resolves a dispatcher registry query directly, equivalent to
// instantiating a Dispatcher built from the same registry and indices.
func (e *Engine) Dispatch(ctx context.Context, file source.FileID, registry string, indices []ast.Index, reporter diag.Reporter) types.TypeID {
	if reporter == nil {
		reporter = diag.NopReporter{}
	}
	env := newEnv(file)
	return e.resolveIndices(ctx, current{registry: registry}, indices, env, reporter)
}

// Assignable and Simplify expose C5 alongside C4 so a caller does not need
// to thread the interner and profile through to the assign package itself.
func (e *Engine) Assignable(a, b types.TypeID) bool {
	return assign.Assignable(e.Interner, e.Profile, a, b)
}

func (e *Engine) Simplify(members []types.TypeID) types.TypeID {
	return assign.Simplify(e.Interner, e.Profile, members)
}

// cachedOrCompute is a single-flight memoized cache: the
// first caller for key runs compute and publishes the result; concurrent
// callers for the same key wait on that call instead of repeating it. It
// plays no part in cycle detection within one request — guarded does that.
func (e *Engine) cachedOrCompute(key string, compute func() types.TypeID) types.TypeID {
	e.cacheMu.RLock()
	if id, ok := e.cache[key]; ok {
		e.cacheMu.RUnlock()
		return id
	}
	e.cacheMu.RUnlock()

	v, _, _ := e.group.Do(key, func() (any, error) {
		e.cacheMu.RLock()
		if id, ok := e.cache[key]; ok {
			e.cacheMu.RUnlock()
			return id, nil
		}
		e.cacheMu.RUnlock()

		id := compute()

		e.cacheMu.Lock()
		e.cache[key] = id
		e.cacheMu.Unlock()
		return id, nil
	})
	return v.(types.TypeID)
}

// guarded resolves key through the request-local visit stack before ever
// reaching the cross-request cache: re-entering the same key while it is
// still being computed (a cyclic reference or dispatch case) hands back
// the reserved, not-yet-filled handle instead of recursing again. This is
// the "(canonical path or registry key, actual type arguments) pushed on
// the visit stack" cycle guard; the two-phase Reserve/Fill on the returned
// handle is what lets a consumer hold a stable TypeID for a type whose
// body is still being built.
func (e *Engine) guarded(env *Env, key string, compute func(reserved types.TypeID) types.TypeID) types.TypeID {
	if reserved, inFlight := env.visiting[key]; inFlight {
		return reserved
	}
	reserved := e.Interner.Reserve(types.KindInvalid)
	env.visiting[key] = reserved
	result := e.cachedOrCompute(key, func() types.TypeID {
		return compute(reserved)
	})
	delete(env.visiting, key)
	return result
}
