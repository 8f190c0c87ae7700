package assign

import "mcdoc/internal/types"

// Simplify reduces a union's member list to canonical form:
//
//  1. Flatten nested unions one level.
//  2. Drop bottom (empty union) members.
//  3. For each pair where x is assignable to y and not vice versa, drop x
//     and append it to y's shadowed set.
//  4. For mutually assignable members, keep the first in source order and
//     shadow the rest on it.
//  5. Unwrap a singleton result, carrying whatever it shadowed along in
//     its metadata rather than dropping it.
//
// Simplify is idempotent: running it again on its own output is a no-op.
func Simplify(in *types.Interner, profile *Profile, members []types.TypeID) types.TypeID {
	flat := flatten(in, members)

	kept := make([]types.TypeID, 0, len(flat))
	shadow := make(map[types.TypeID][]types.TypeID)

	for _, m := range flat {
		if isBottom(in, m) {
			continue
		}
		dominatedBy := types.NoTypeID
		for _, k := range kept {
			aToB := Assignable(in, profile, m, k)
			bToA := Assignable(in, profile, k, m)
			switch {
			case aToB && bToA:
				// Mutually assignable: m is shadowed by the earlier k.
				dominatedBy = k
			case aToB && !bToA:
				dominatedBy = k
			}
			if dominatedBy.IsValid() {
				break
			}
		}
		if dominatedBy.IsValid() {
			shadow[dominatedBy] = append(shadow[dominatedBy], m)
			continue
		}
		// m may dominate members already kept; drop those into m's shadow.
		var survivors []types.TypeID
		for _, k := range kept {
			if Assignable(in, profile, k, m) && !Assignable(in, profile, m, k) {
				shadow[m] = append(shadow[m], k)
				shadow[m] = append(shadow[m], shadow[k]...)
				delete(shadow, k)
				continue
			}
			survivors = append(survivors, k)
		}
		kept = append(survivors, m)
	}

	if len(kept) == 0 {
		return in.NewUnion(nil, nil)
	}
	if len(kept) == 1 {
		return in.WithShadowed(kept[0], shadow[kept[0]])
	}

	shadowed := make([]types.TypeID, 0)
	for _, k := range kept {
		shadowed = append(shadowed, shadow[k]...)
	}
	return in.NewUnion(kept, shadowed)
}

// flatten inlines any member that is itself a (non-bottom, multi-member)
// union, one level deep.
func flatten(in *types.Interner, members []types.TypeID) []types.TypeID {
	out := make([]types.TypeID, 0, len(members))
	for _, m := range members {
		t := in.Lookup(m)
		if t.Kind == types.KindUnion {
			out = append(out, in.Union(m).Members...)
			continue
		}
		out = append(out, m)
	}
	return out
}
