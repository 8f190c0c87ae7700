package types

// UnionInfo is the payload for a KindUnion type: its simplified member set
// plus the members Simplify dropped as strictly dominated by another
// member, kept for diagnostics rather than silently discarded.
type UnionInfo struct {
	Members  []TypeID
	Shadowed []TypeID
}

func (in *Interner) NewUnion(members, shadowed []TypeID) TypeID {
	slot, err := appendSlot(&in.unions, UnionInfo{Members: members, Shadowed: shadowed})
	if err != nil {
		panic(err)
	}
	return in.alloc(Type{Kind: KindUnion, Payload: slot})
}

func (in *Interner) Union(id TypeID) *UnionInfo {
	t := in.Lookup(id)
	return &in.unions[t.Payload]
}
