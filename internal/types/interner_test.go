package types

import "testing"

func TestInternerBuiltins(t *testing.T) {
	in := NewInterner()
	b := in.Builtins()
	if b.Any == NoTypeID || b.Boolean == NoTypeID || b.String == NoTypeID {
		t.Fatalf("builtins not initialized")
	}
	if in.Lookup(b.Boolean).Kind != KindBoolean {
		t.Fatalf("expected boolean kind for Builtins.Boolean")
	}
}

func TestNewStructRoundTrips(t *testing.T) {
	in := NewInterner()
	fields := []FieldInfo{
		{KeyKind: 0, KeyText: "name", Type: in.NewString(nil)},
	}
	id := in.NewStruct(fields)
	info := in.Struct(id)
	if len(info.Fields) != 1 || info.Fields[0].KeyText != "name" {
		t.Fatalf("struct fields did not round trip: %+v", info.Fields)
	}
}

func TestReserveAndFillProducesStableHandle(t *testing.T) {
	in := NewInterner()
	id := in.Reserve(KindStruct)
	if !id.IsValid() {
		t.Fatalf("reserved id should be valid immediately")
	}
	in.FillStruct(id, []FieldInfo{{KeyText: "self", Type: id}}, nil)
	info := in.Struct(id)
	if info.Fields[0].Type != id {
		t.Fatalf("self-referential field should resolve to its own reserved id")
	}
}

func TestNewListAndTuple(t *testing.T) {
	in := NewInterner()
	elem := in.NewNumeric(0, nil)
	list := in.NewList(elem, nil)
	if in.List(list).Elem != elem {
		t.Fatalf("list element did not round trip")
	}

	tuple := in.NewTuple([]TypeID{elem, elem})
	if len(in.Tuple(tuple).Elems) != 2 {
		t.Fatalf("tuple should carry both elements")
	}
}
