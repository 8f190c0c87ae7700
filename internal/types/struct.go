package types

import "mcdoc/internal/ast"

// FieldInfo is one instantiated struct field or spread member's
// contribution, already flattened by the engine's spread resolution.
type FieldInfo struct {
	KeyKind  ast.FieldKeyKind
	KeyText  string // valid for Ident/String key kinds
	KeyType  TypeID // valid for Computed key kind
	Optional bool
	Type     TypeID
}

// StructInfo is the payload for a KindStruct type.
type StructInfo struct {
	Fields []FieldInfo
}

func (in *Interner) NewStruct(fields []FieldInfo) TypeID {
	slot, err := appendSlot(&in.structs, StructInfo{Fields: fields})
	if err != nil {
		panic(err)
	}
	return in.alloc(Type{Kind: KindStruct, Payload: slot})
}

func (in *Interner) Struct(id TypeID) *StructInfo {
	t := in.Lookup(id)
	return &in.structs[t.Payload]
}

// FillStruct completes a TypeID previously obtained from Reserve with a
// struct's fields, used by the engine to close out a self-referential
// struct's lazy handle once its field list is ready.
func (in *Interner) FillStruct(id TypeID, fields []FieldInfo, meta *Meta) {
	slot, err := appendSlot(&in.structs, StructInfo{Fields: fields})
	if err != nil {
		panic(err)
	}
	in.Fill(id, Type{Kind: KindStruct, Payload: slot, Meta: meta})
}
