package symbols

import (
	"mcdoc/internal/ast"
	"mcdoc/internal/source"
)

// DeclKind classifies a top-level declaration.
type DeclKind uint8

const (
	DeclInvalid DeclKind = iota
	DeclStruct
	DeclEnum
	DeclTypeAlias
)

func (k DeclKind) String() string {
	switch k {
	case DeclStruct:
		return "struct"
	case DeclEnum:
		return "enum"
	case DeclTypeAlias:
		return "type alias"
	default:
		return "invalid"
	}
}

// Decl is one named declaration reachable by its canonical "::"-joined
// module path. Only the field matching Kind is populated.
type Decl struct {
	Kind DeclKind
	Name string
	Path string // canonical, "::"-joined, no leading "::"

	Struct *ast.StructDef
	Enum   *ast.EnumDef
	Alias  *ast.TypeAlias

	Generics []ast.GenericParam
	File     source.FileID
	Span     source.Span

	// InjectedFields/InjectedVariants hold struct/enum injections merged in
	// after the base declaration was recorded. They are appended, in
	// injection-application order, after the base Fields/Variants.
	InjectedFields   []ast.StructField
	InjectedVariants []ast.EnumVariant
}

// AllFields returns a struct declaration's own fields plus every merged
// injection's fields, in application order.
func (d *Decl) AllFields() []ast.StructField {
	if d.Kind != DeclStruct {
		return nil
	}
	if len(d.InjectedFields) == 0 {
		return d.Struct.Fields
	}
	out := make([]ast.StructField, 0, len(d.Struct.Fields)+len(d.InjectedFields))
	out = append(out, d.Struct.Fields...)
	out = append(out, d.InjectedFields...)
	return out
}

// AllVariants returns an enum declaration's own variants plus every merged
// injection's variants, in application order.
func (d *Decl) AllVariants() []ast.EnumVariant {
	if d.Kind != DeclEnum {
		return nil
	}
	if len(d.InjectedVariants) == 0 {
		return d.Enum.Variants
	}
	out := make([]ast.EnumVariant, 0, len(d.Enum.Variants)+len(d.InjectedVariants))
	out = append(out, d.Enum.Variants...)
	out = append(out, d.InjectedVariants...)
	return out
}
