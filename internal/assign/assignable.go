package assign

import (
	"unicode/utf8"

	"mcdoc/internal/ast"
	"mcdoc/internal/types"
)

// Assignable reports whether a value of type a is assignable to a value of
// type b, i.e. a ⊆ b.
func Assignable(in *types.Interner, profile *Profile, a, b types.TypeID) bool {
	if profile == nil {
		profile = Default()
	}
	if profile.Override != nil {
		if result, ok := profile.Override(in, a, b); ok {
			return result
		}
	}

	ta, tb := in.Lookup(a), in.Lookup(b)

	if ta.Kind == types.KindUnsafe || tb.Kind == types.KindUnsafe {
		return true
	}
	if ta.Kind == types.KindAny && profile.AnyIsUnsafe {
		return true
	}
	if tb.Kind == types.KindAny && profile.AnyIsUnsafe {
		return true
	}
	if isBottom(in, a) {
		return true
	}
	if tb.Kind == types.KindAny {
		return true
	}
	if ta.Kind == types.KindAny {
		return tb.Kind == types.KindAny
	}

	// Error sentinels are assignable to nothing (any/unsafe already
	// handled above) and accept nothing.
	if ta.Kind == types.KindError || tb.Kind == types.KindError {
		return false
	}

	if ta.Kind == types.KindUnion {
		return unionLeftAssignable(in, profile, a, b)
	}
	if tb.Kind == types.KindUnion {
		return unionRightAssignable(in, profile, a, b)
	}

	switch ta.Kind {
	case types.KindBoolean:
		return tb.Kind == types.KindBoolean
	case types.KindLiteralBool:
		if tb.Kind == types.KindBoolean {
			return true
		}
		return tb.Kind == types.KindLiteralBool && tb.LitBool == ta.LitBool
	case types.KindString:
		if tb.Kind != types.KindString {
			return false
		}
		return lenRangeSubset(ta.LenRange, tb.LenRange)
	case types.KindLiteralString:
		switch tb.Kind {
		case types.KindString:
			return tb.LenRange.Contains(runeLen(ta.LitString))
		case types.KindLiteralString:
			return ta.LitString == tb.LitString
		default:
			return false
		}
	case types.KindNumeric:
		if tb.Kind != types.KindNumeric || ta.NumKind != tb.NumKind {
			return false
		}
		return numRangeSubset(ta.NumRange, tb.NumRange)
	case types.KindLiteralNumber:
		switch tb.Kind {
		case types.KindNumeric:
			if ta.HasSuffix && ta.NumKind != tb.NumKind {
				return false
			}
			return tb.NumRange.Contains(ta.LitNumber.AsFloat())
		case types.KindLiteralNumber:
			if ta.HasSuffix != tb.HasSuffix || (ta.HasSuffix && ta.NumKind != tb.NumKind) {
				return false
			}
			return ta.LitNumber.AsFloat() == tb.LitNumber.AsFloat()
		default:
			return false
		}
	case types.KindPrimArray:
		if tb.Kind != types.KindPrimArray {
			return false
		}
		pa, pb := in.PrimArray(a), in.PrimArray(b)
		if pa.ElemKind != pb.ElemKind {
			return false
		}
		return numRangeSubset(pa.ElemRange, pb.ElemRange) && lenRangeSubset(pa.LenRange, pb.LenRange)
	case types.KindList:
		if tb.Kind != types.KindList {
			return false
		}
		la, lb := in.List(a), in.List(b)
		return Assignable(in, profile, la.Elem, lb.Elem) && lenRangeSubset(la.LenRange, lb.LenRange)
	case types.KindTuple:
		if tb.Kind != types.KindTuple {
			return false
		}
		ta2, tb2 := in.Tuple(a), in.Tuple(b)
		if len(ta2.Elems) != len(tb2.Elems) {
			return false
		}
		for i := range ta2.Elems {
			if !Assignable(in, profile, ta2.Elems[i], tb2.Elems[i]) {
				return false
			}
		}
		return true
	case types.KindStruct:
		if tb.Kind != types.KindStruct {
			return false
		}
		return structAssignable(in, profile, in.Struct(a), in.Struct(b))
	case types.KindEnum:
		return enumAssignable(in, profile, a, b, ta, tb)
	default:
		return false
	}
}

// isBottom reports whether id is the empty union, mcdoc's bottom type.
func isBottom(in *types.Interner, id types.TypeID) bool {
	t := in.Lookup(id)
	return t.Kind == types.KindUnion && len(in.Union(id).Members) == 0
}

func unionLeftAssignable(in *types.Interner, profile *Profile, a, b types.TypeID) bool {
	for _, m := range in.Union(a).Members {
		if !Assignable(in, profile, m, b) {
			return false
		}
	}
	return true
}

func unionRightAssignable(in *types.Interner, profile *Profile, a, b types.TypeID) bool {
	for _, m := range in.Union(b).Members {
		if Assignable(in, profile, a, m) {
			return true
		}
	}
	return false
}

// structAssignable implements width-subtyping: every field B declares must
// be satisfied by A (or be optional and absent), extra fields in A are
// tolerated.
func structAssignable(in *types.Interner, profile *Profile, a, b *types.StructInfo) bool {
	for _, bf := range b.Fields {
		if bf.KeyKind == ast.FieldKeyComputed {
			// Computed keys describe a dynamic key space; nothing in A's
			// fixed field list can be checked against them directly.
			continue
		}
		af, ok := findField(a, bf.KeyKind, bf.KeyText)
		if !ok {
			if bf.Optional {
				continue
			}
			return false
		}
		if !Assignable(in, profile, af.Type, bf.Type) {
			return false
		}
	}
	return true
}

func findField(s *types.StructInfo, kind ast.FieldKeyKind, text string) (types.FieldInfo, bool) {
	for _, f := range s.Fields {
		if f.KeyKind == kind && f.KeyText == text {
			return f, true
		}
	}
	return types.FieldInfo{}, false
}

// enumAssignable treats an enum's variant set like a union of literals:
// identical enums are always assignable, otherwise A is assignable to B
// only if every one of A's variants also appears in B with the same value.
func enumAssignable(in *types.Interner, profile *Profile, a, b types.TypeID, ta, tb types.Type) bool {
	if tb.Kind != types.KindEnum {
		return false
	}
	if a == b {
		return true
	}
	ea, eb := in.Enum(a), in.Enum(b)
	if ea.IsString != eb.IsString {
		return false
	}
	for _, va := range ea.Variants {
		found := false
		for _, vb := range eb.Variants {
			if ea.IsString {
				if va.StrValue == vb.StrValue {
					found = true
					break
				}
				continue
			}
			if va.NumValue.AsFloat() == vb.NumValue.AsFloat() {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func runeLen(s string) uint32 {
	n := utf8.RuneCountInString(s)
	if n < 0 {
		return 0
	}
	return uint32(n)
}

// numRangeSubset reports whether every value satisfying a also satisfies b.
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

// lenRangeSubset reports whether every length satisfying a also satisfies
// b. Length bounds are always inclusive.
func lenRangeSubset(a, b *ast.LenRange) bool {
	if b == nil {
		return true
	}
	if a == nil {
		return false
	}
	if b.HasLo && (!a.HasLo || a.Lo < b.Lo) {
		return false
	}
	if b.HasHi && (!a.HasHi || a.Hi > b.Hi) {
		return false
	}
	return true
}
