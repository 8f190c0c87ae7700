// Package profile provides the concrete data-format validator profiles
// mcdoc.toml's "profile" key selects between: mcdoc.toml schemas describe
// a logical shape, but two wire formats disagree on which primitives
// coincide (NBT has no boolean; JSON has one numeric type), and the
// assignability rules have to bend for each without the core engine
// knowing either format exists.
package profile

import (
	"mcdoc/internal/assign"
	"mcdoc/internal/ast"
	"mcdoc/internal/types"
)

// ByName returns the named profile, or assign.Default() for an unknown or
// empty name.
func ByName(name string) *assign.Profile {
	switch name {
	case "nbt":
		return NBT()
	case "json":
		return JSON()
	default:
		return assign.Default()
	}
}

// NBT models Minecraft's NBT binary format: there is no boolean tag, so
// mcdoc's `boolean` is conventionally written as a `byte` constrained to
// 0..1, and the two must assignability-check as equivalent in both
// directions.
func NBT() *assign.Profile {
	return &assign.Profile{
		Name:        "nbt",
		AnyIsUnsafe: true,
		Override:    nbtOverride,
	}
}

func nbtOverride(in *types.Interner, a, b types.TypeID) (bool, bool) {
	ta, tb := in.Lookup(a), in.Lookup(b)
	if ta.Kind == types.KindBoolean && isByteZeroOrOne(tb) {
		return true, true
	}
	if isByteZeroOrOne(ta) && tb.Kind == types.KindBoolean {
		return true, true
	}
	return false, false
}

func isByteZeroOrOne(t types.Type) bool {
	if t.Kind != types.KindNumeric || t.NumKind != ast.KindByte {
		return false
	}
	r := t.NumRange
	if r == nil {
		return true
	}
	lo, hi := 0.0, 1.0
	if r.HasLo && (r.ExclLo || r.Lo.AsFloat() > lo) {
		return false
	}
	if r.HasHi && (r.ExclHi || r.Hi.AsFloat() < hi) {
		return false
	}
	return true
}

// JSON models the JSON wire format: every numeric kind is the same
// underlying "number" type, so two mcdoc numeric kinds with a compatible
// value range are mutually assignable regardless of their declared kind,
// not just same-kind as the default profile requires.
func JSON() *assign.Profile {
	return &assign.Profile{
		Name:        "json",
		AnyIsUnsafe: true,
		Override:    jsonOverride,
	}
}

func jsonOverride(in *types.Interner, a, b types.TypeID) (bool, bool) {
	ta, tb := in.Lookup(a), in.Lookup(b)

	if ta.Kind == types.KindNumeric && tb.Kind == types.KindNumeric {
		return numRangeSubset(ta.NumRange, tb.NumRange), true
	}
	if ta.Kind == types.KindLiteralNumber && tb.Kind == types.KindNumeric {
		return tb.NumRange.Contains(ta.LitNumber.AsFloat()), true
	}
	return false, false
}

func numRangeSubset(a, b *ast.NumRange) bool {
	if b == nil {
		return true
	}
	if a == nil {
		return false
	}
	if b.HasLo {
		if !a.HasLo || a.Lo.AsFloat() < b.Lo.AsFloat() {
			return false
		}
		if a.Lo.AsFloat() == b.Lo.AsFloat() && !a.ExclLo && b.ExclLo {
			return false
		}
	}
	if b.HasHi {
		if !a.HasHi || a.Hi.AsFloat() > b.Hi.AsFloat() {
			return false
		}
		if a.Hi.AsFloat() == b.Hi.AsFloat() && !a.ExclHi && b.ExclHi {
			return false
		}
	}
	return true
}
