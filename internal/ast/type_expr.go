package ast

import "mcdoc/internal/source"

// TypeExpr is the recursive core of the mcdoc grammar. It is a closed sum
// type: every concrete variant below is the only permitted implementation
// (the unexported typeExprNode method keeps implementations inside this
// package). Consumers switch over the variants; the compiler does not
// check that a type switch covers every case.
type TypeExpr interface {
	typeExprNode()
	Base() *ExprBase
}

// ExprBase carries the span and attribute list shared by every TypeExpr
// variant.
type ExprBase struct {
	Sp    source.Span
	Attrs []Attr
}

func (b *ExprBase) Base() *ExprBase { return b }

type AnyType struct{ ExprBase }
type BooleanType struct{ ExprBase }

type StringType struct {
	ExprBase
	LenRange *LenRange
}

type LiteralBoolType struct {
	ExprBase
	Value bool
}

type LiteralStringType struct {
	ExprBase
	Value string
}

type LiteralNumberType struct {
	ExprBase
	Value  TypedNumber
	Suffix NumKind
	HasSuffix bool
}

type NumericType struct {
	ExprBase
	Kind       NumKind
	ValueRange *NumRange
}

type PrimArrayType struct {
	ExprBase
	ElemKind  NumKind // byte, int, or long only
	ElemRange *NumRange
	LenRange  *LenRange
}

type ListType struct {
	ExprBase
	Elem     TypeExpr
	LenRange *LenRange
}

// TupleType requires len(Elems) >= 1; a single-element tuple is only
// reachable through the parser's trailing-comma rule.
type TupleType struct {
	ExprBase
	Elems []TypeExpr
}

type StructType struct {
	ExprBase
	Fields []StructField
}

type EnumType struct {
	ExprBase
	BaseKind NumKind
	IsString bool
	Variants []EnumVariant
}

type ReferenceType struct {
	ExprBase
	Path     Path
	TypeArgs []TypeExpr
}

type DispatcherType struct {
	ExprBase
	Registry string
	Indices  []Index
}

// UnionType may have zero members, representing the bottom type.
type UnionType struct {
	ExprBase
	Members []TypeExpr
}

// IndexedType only ever wraps a Reference, Dispatcher, Struct, or another
// Indexed base.
type IndexedType struct {
	ExprBase
	BaseExpr TypeExpr
	Indices  []Index
}

func (*AnyType) typeExprNode()           {}
func (*BooleanType) typeExprNode()       {}
func (*StringType) typeExprNode()        {}
func (*LiteralBoolType) typeExprNode()   {}
func (*LiteralStringType) typeExprNode() {}
func (*LiteralNumberType) typeExprNode() {}
func (*NumericType) typeExprNode()       {}
func (*PrimArrayType) typeExprNode()     {}
func (*ListType) typeExprNode()          {}
func (*TupleType) typeExprNode()         {}
func (*StructType) typeExprNode()        {}
func (*EnumType) typeExprNode()          {}
func (*ReferenceType) typeExprNode()     {}
func (*DispatcherType) typeExprNode()    {}
func (*UnionType) typeExprNode()         {}
func (*IndexedType) typeExprNode()       {}
