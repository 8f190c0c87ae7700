package ast

import "mcdoc/internal/source"

// Item is one top-level form: StructDef, EnumDef, TypeAlias, UseStmt,
// Injection, or DispatchStmt.
type Item interface {
	itemNode()
	ItemSpan() source.Span
}

// GenericParam is one `<V>` type-parameter declaration.
type GenericParam struct {
	Name string
	Span source.Span
}

type StructDef struct {
	Name     string
	Generics []GenericParam
	Fields   []StructField
	Attrs    []Attr
	Doc      []string
	Span     source.Span
}

type EnumDef struct {
	Name     string
	BaseKind NumKind
	IsString bool
	Variants []EnumVariant
	Attrs    []Attr
	Doc      []string
	Span     source.Span
}

type TypeAlias struct {
	Name     string
	Generics []GenericParam
	Target   TypeExpr
	Attrs    []Attr
	Doc      []string
	Span     source.Span
}

// UseStmt is `use Path (as Ident)?`. Alias is P's last segment when the
// source form omits `as`.
type UseStmt struct {
	Target Path
	Alias  string
	Span   source.Span
}

// InjectionKind tags whether an injection targets a struct or an enum.
type InjectionKind uint8

const (
	InjectStruct InjectionKind = iota
	InjectEnum
)

// Injection is an out-of-tree additive edit merged into a target
// declaration before instantiation.
type Injection struct {
	Kind     InjectionKind
	Target   Path
	Fields   []StructField // when Kind == InjectStruct
	Variants []EnumVariant // when Kind == InjectEnum
	Span     source.Span
}

// DispatchStmt is `dispatch RES_LOC [Index, ...] <T, ...>? to TypeExpr`.
// The index list is validated by the parser to contain only static keys.
type DispatchStmt struct {
	Registry string
	Indices  []StaticKey
	Generics []GenericParam
	Target   TypeExpr
	Span     source.Span
}

func (*StructDef) itemNode()    {}
func (*EnumDef) itemNode()      {}
func (*TypeAlias) itemNode()    {}
func (*UseStmt) itemNode()      {}
func (*Injection) itemNode()    {}
func (*DispatchStmt) itemNode() {}

func (d *StructDef) ItemSpan() source.Span    { return d.Span }
func (d *EnumDef) ItemSpan() source.Span      { return d.Span }
func (d *TypeAlias) ItemSpan() source.Span    { return d.Span }
func (d *UseStmt) ItemSpan() source.Span      { return d.Span }
func (d *Injection) ItemSpan() source.Span    { return d.Span }
func (d *DispatchStmt) ItemSpan() source.Span { return d.Span }

// File is the parsed form of one source file: an ordered sequence of items.
type File struct {
	Items []Item
	Span  source.Span
}
