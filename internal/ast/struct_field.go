package ast

import "mcdoc/internal/source"

// FieldKeyKind tags the three struct field key forms.
type FieldKeyKind uint8

const (
	FieldKeyIdent FieldKeyKind = iota
	FieldKeyString
	FieldKeyComputed
)

type FieldKey struct {
	Kind     FieldKeyKind
	Text     string   // for Ident/String
	Computed TypeExpr // for Computed
}

// StructField is either a Named field or a Spread.
type StructField interface {
	structFieldNode()
	FieldSpan() source.Span
}

type NamedField struct {
	Key      FieldKey
	Optional bool
	Type     TypeExpr
	Attrs    []Attr
	Doc      []string
	Span     source.Span
}

type SpreadField struct {
	Type  TypeExpr
	Attrs []Attr
	Span  source.Span
}

func (f *NamedField) structFieldNode()      {}
func (f *SpreadField) structFieldNode()     {}
func (f *NamedField) FieldSpan() source.Span  { return f.Span }
func (f *SpreadField) FieldSpan() source.Span { return f.Span }

// EnumVariant is one member of an enum: an identifier bound to a literal
// value consistent with the enum's base kind.
type EnumVariant struct {
	Name     string
	NumValue TypedNumber
	StrValue string
	IsString bool
	Attrs    []Attr
	Doc      []string
	Span     source.Span
}
