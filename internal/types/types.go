// Package types is the interned representation of a fully-instantiated
// mcdoc type: every reference resolved, every generic substituted, and
// every union simplified (C4/C5 hand this representation to consumers).
package types

import "mcdoc/internal/ast"

// TypeID identifies a type inside an Interner.
type TypeID uint32

// NoTypeID marks the absence of a type. The Interner reserves slot 0 for
// it, so no interned type carries this ID.
const NoTypeID TypeID = 0

func (id TypeID) IsValid() bool { return id != NoTypeID }

// Kind enumerates every instantiated type shape.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindAny
	KindUnsafe
	KindBoolean
	KindString
	KindLiteralBool
	KindLiteralString
	KindLiteralNumber
	KindNumeric
	KindPrimArray
	KindList
	KindTuple
	KindStruct
	KindEnum
	KindUnion

	// KindError is the sentinel produced in place of a type that failed to
	// resolve (unknown path, arity mismatch, ...). It is assignable to
	// nothing except any/unsafe, and its originating diagnostic has
	// already been reported by whoever produced it.
	KindError

	// KindCancelled is returned in place of a type whose instantiation was
	// aborted by the caller's context. It carries no diagnostic.
	KindCancelled
)

func (k Kind) String() string {
	switch k {
	case KindAny:
		return "any"
	case KindUnsafe:
		return "unsafe"
	case KindBoolean:
		return "boolean"
	case KindString:
		return "string"
	case KindLiteralBool:
		return "literal-bool"
	case KindLiteralString:
		return "literal-string"
	case KindLiteralNumber:
		return "literal-number"
	case KindNumeric:
		return "numeric"
	case KindPrimArray:
		return "prim-array"
	case KindList:
		return "list"
	case KindTuple:
		return "tuple"
	case KindStruct:
		return "struct"
	case KindEnum:
		return "enum"
	case KindUnion:
		return "union"
	case KindError:
		return "error"
	case KindCancelled:
		return "cancelled"
	default:
		return "invalid"
	}
}

// Meta carries engine-attached metadata that rides along with a Type
// without affecting its identity: surface attributes, diagnostic-facing
// tags like "nonexhaustive", and a dynamic accessor chain preserved
// verbatim for downstream validators.
type Meta struct {
	Attrs    []ast.Attr
	Tags     []string
	Accessor []ast.AccessorKey

	// Shadowed holds the types a simplification pass dropped in favor of
	// this one (e.g. the literal members "foo"/"bar" collapsed into
	// string), kept for tooling rather than silently discarded. Only set
	// when simplification unwraps a would-be single-member union.
	Shadowed []TypeID
}

// ShadowedTypes returns the types this one's metadata records as shadowed.
// A nil Meta has none.
func (m *Meta) ShadowedTypes() []TypeID {
	if m == nil {
		return nil
	}
	return m.Shadowed
}

// HasTag reports whether m carries the given tag. A nil Meta has none.
func (m *Meta) HasTag(tag string) bool {
	if m == nil {
		return false
	}
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Type is a compact descriptor for one instantiated type. Nominal shapes
// (struct/enum/union/list/tuple/prim-array) store their detail in a
// payload arena, indexed by Payload; scalar shapes carry their data
// directly.
type Type struct {
	Kind Kind

	// Scalar payload, valid depending on Kind.
	NumKind    ast.NumKind  // KindNumeric, KindLiteralNumber, KindPrimArray's elem kind lives in PrimArrayInfo
	NumRange   *ast.NumRange
	LenRange   *ast.LenRange
	LitBool    bool
	LitString  string
	LitNumber  ast.TypedNumber
	HasSuffix  bool

	// Payload is an index into the Interner's per-kind info arena for
	// nominal shapes (struct/enum/union/list/tuple/prim-array).
	Payload uint32

	Meta *Meta
}

// WithMeta returns a copy of t with m attached.
func (t Type) WithMeta(m *Meta) Type {
	t.Meta = m
	return t
}
