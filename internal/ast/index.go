package ast

import "mcdoc/internal/source"

// StaticKeyKind tags the six forms a static dispatch/struct index may take.
type StaticKeyKind uint8

const (
	StaticFallback StaticKeyKind = iota // %fallback
	StaticNone                          // %none
	StaticUnknown                       // %unknown
	StaticIdent
	StaticString
	StaticResLoc
)

// StaticKey is one static index component, e.g. `uniform`, `"foo"`, or
// `minecraft:bar`.
type StaticKey struct {
	Kind StaticKeyKind
	Text string // the identifier/string/resource-location text; empty for the % forms
}

func (k StaticKey) String() string {
	switch k.Kind {
	case StaticFallback:
		return "%fallback"
	case StaticNone:
		return "%none"
	case StaticUnknown:
		return "%unknown"
	default:
		return k.Text
	}
}

// AccessorKeyKind tags one step of a dynamic index accessor.
type AccessorKeyKind uint8

const (
	AccessorSpecialKey    AccessorKeyKind = iota // %key
	AccessorSpecialParent                        // %parent
	AccessorField                                // a named field step (ident or string)
)

type AccessorKey struct {
	Kind AccessorKeyKind
	Text string
}

// IndexKind tags whether an Index is static or a dynamic accessor chain.
type IndexKind uint8

const (
	IndexStatic IndexKind = iota
	IndexDynamic
)

// Index is one `[...]` suffix element applied to a dispatcher or struct.
type Index struct {
	Kind     IndexKind
	Static   StaticKey
	Dynamic  []AccessorKey
	Span     source.Span
}
