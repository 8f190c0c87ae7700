package types

import "mcdoc/internal/ast"

// ListInfo is the payload for a KindList type.
type ListInfo struct {
	Elem     TypeID
	LenRange *ast.LenRange
}

func (in *Interner) NewList(elem TypeID, lr *ast.LenRange) TypeID {
	slot, err := appendSlot(&in.lists, ListInfo{Elem: elem, LenRange: lr})
	if err != nil {
		panic(err)
	}
	return in.alloc(Type{Kind: KindList, Payload: slot})
}

func (in *Interner) List(id TypeID) *ListInfo {
	t := in.Lookup(id)
	return &in.lists[t.Payload]
}

// TupleInfo is the payload for a KindTuple type.
type TupleInfo struct {
	Elems []TypeID
}

func (in *Interner) NewTuple(elems []TypeID) TypeID {
	slot, err := appendSlot(&in.tuples, TupleInfo{Elems: elems})
	if err != nil {
		panic(err)
	}
	return in.alloc(Type{Kind: KindTuple, Payload: slot})
}

func (in *Interner) Tuple(id TypeID) *TupleInfo {
	t := in.Lookup(id)
	return &in.tuples[t.Payload]
}

// PrimArrayInfo is the payload for a KindPrimArray type (a fixed-kind
// numeric array such as an NBT byte/int/long array).
type PrimArrayInfo struct {
	ElemKind  ast.NumKind
	ElemRange *ast.NumRange
	LenRange  *ast.LenRange
}

func (in *Interner) NewPrimArray(elemKind ast.NumKind, elemRange *ast.NumRange, lenRange *ast.LenRange) TypeID {
	slot, err := appendSlot(&in.primArrays, PrimArrayInfo{ElemKind: elemKind, ElemRange: elemRange, LenRange: lenRange})
	if err != nil {
		panic(err)
	}
	return in.alloc(Type{Kind: KindPrimArray, Payload: slot})
}

func (in *Interner) PrimArray(id TypeID) *PrimArrayInfo {
	t := in.Lookup(id)
	return &in.primArrays[t.Payload]
}
