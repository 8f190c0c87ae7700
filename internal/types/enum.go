package types

import "mcdoc/internal/ast"

// EnumVariantInfo is one instantiated enum variant.
type EnumVariantInfo struct {
	Name     string
	NumValue ast.TypedNumber
	StrValue string
}

// EnumInfo is the payload for a KindEnum type.
type EnumInfo struct {
	BaseKind ast.NumKind
	IsString bool
	Variants []EnumVariantInfo
}

func (in *Interner) NewEnum(baseKind ast.NumKind, isString bool, variants []EnumVariantInfo) TypeID {
	slot, err := appendSlot(&in.enums, EnumInfo{BaseKind: baseKind, IsString: isString, Variants: variants})
	if err != nil {
		panic(err)
	}
	return in.alloc(Type{Kind: KindEnum, Payload: slot})
}

func (in *Interner) Enum(id TypeID) *EnumInfo {
	t := in.Lookup(id)
	return &in.enums[t.Payload]
}

// FillEnum completes a TypeID previously obtained from Reserve with an
// enum's variants.
func (in *Interner) FillEnum(id TypeID, baseKind ast.NumKind, isString bool, variants []EnumVariantInfo, meta *Meta) {
	slot, err := appendSlot(&in.enums, EnumInfo{BaseKind: baseKind, IsString: isString, Variants: variants})
	if err != nil {
		panic(err)
	}
	in.Fill(id, Type{Kind: KindEnum, Payload: slot, Meta: meta})
}
