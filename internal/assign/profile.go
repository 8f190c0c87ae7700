// Package assign computes assignability between instantiated types and
// simplifies unions, the last stage of the pipeline (C5). It never
// re-instantiates a TypeExpr — by the time a types.TypeID reaches this
// package, every reference, generic, and index has already been resolved
// by the engine.
package assign

import "mcdoc/internal/types"

// Profile lets a data-validator host relax or tighten the default
// assignability rules, e.g. treating every numeric kind as mutually
// assignable for JSON, or folding NBT's boolean into byte@0..1. Override is
// consulted before the default rules; ok=false means "no opinion, fall
// through to the default rules".
type Profile struct {
	Name        string
	AnyIsUnsafe bool
	Override    func(in *types.Interner, a, b types.TypeID) (result, ok bool)
}

// Default is the baseline profile: any behaves like unsafe, no overrides.
func Default() *Profile {
	return &Profile{Name: "default", AnyIsUnsafe: true}
}
