package ast

import "mcdoc/internal/source"

// Attr is a `#[Name]`, `#[Name = Value]`, or `#[Name TreeValue]` attribute.
// Attribute semantics are an open vocabulary the engine does not interpret;
// it only preserves name and value tree for host consumption.
type Attr struct {
	Name  string
	Value *AttrValue // nil for the bare `#[Name]` form
	Span  source.Span
}

// AttrValueKind tags the shape of an attribute value.
type AttrValueKind uint8

const (
	AttrValBool AttrValueKind = iota
	AttrValNumber
	AttrValString
	AttrValIdent
	AttrValTree
)

// AttrValue is one value inside an attribute: a literal, a bare identifier,
// or a nested tree body.
type AttrValue struct {
	Kind   AttrValueKind
	Bool   bool
	Number TypedNumber
	Str    string
	Tree   *AttrTree
	Span   source.Span
}

// AttrTree is a parenthesized/bracketed/braced value list: positional
// values first, then name=value or name TreeValue pairs.
type AttrTree struct {
	Delim      byte // '(', '[', or '{'
	Positional []AttrValue
	Named      []NamedAttrValue
	Span       source.Span
}

type NamedAttrValue struct {
	Name  string
	Value AttrValue
}
