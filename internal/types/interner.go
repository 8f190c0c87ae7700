package types

import (
	"fmt"

	"fortio.org/safecast"

	"mcdoc/internal/ast"
)

// Builtins caches the TypeIDs of the handful of payload-free singletons so
// repeated instantiation of `any`, `unsafe`, `boolean`, or bare `string`
// does not keep allocating fresh arena slots.
type Builtins struct {
	Any     TypeID
	Unsafe  TypeID
	Boolean TypeID
	String  TypeID
}

// Interner owns every instantiated Type produced for one project load,
// plus the per-kind arenas nominal shapes store their detail in.
type Interner struct {
	types []Type

	structs    []StructInfo
	enums      []EnumInfo
	unions     []UnionInfo
	lists      []ListInfo
	tuples     []TupleInfo
	primArrays []PrimArrayInfo

	builtins Builtins
}

// NewInterner builds an interner seeded with the payload-free builtins.
func NewInterner() *Interner {
	in := &Interner{}
	in.types = append(in.types, Type{}) // reserve 0 as NoTypeID/invalid
	in.structs = append(in.structs, StructInfo{})
	in.enums = append(in.enums, EnumInfo{})
	in.unions = append(in.unions, UnionInfo{})
	in.lists = append(in.lists, ListInfo{})
	in.tuples = append(in.tuples, TupleInfo{})
	in.primArrays = append(in.primArrays, PrimArrayInfo{})

	in.builtins.Any = in.alloc(Type{Kind: KindAny})
	in.builtins.Unsafe = in.alloc(Type{Kind: KindUnsafe})
	in.builtins.Boolean = in.alloc(Type{Kind: KindBoolean})
	in.builtins.String = in.alloc(Type{Kind: KindString})
	return in
}

func (in *Interner) Builtins() Builtins { return in.builtins }

// Reserve allocates a TypeID for a shape whose payload is not yet known,
// so a cyclic reference (a struct field referring back to its own struct)
// can be handed a stable handle before the struct body finishes
// instantiating. Fill completes it.
func (in *Interner) Reserve(kind Kind) TypeID {
	return in.alloc(Type{Kind: kind})
}

// Fill overwrites a reserved TypeID's descriptor once its payload is ready.
func (in *Interner) Fill(id TypeID, t Type) {
	in.types[id] = t
}

// appendSlot appends v to *arena and returns its index as a checked uint32,
// the shared allocation pattern every nominal-kind payload arena uses.
func appendSlot[T any](arena *[]T, v T) (uint32, error) {
	*arena = append(*arena, v)
	return safecast.Conv[uint32](len(*arena) - 1)
}

func (in *Interner) alloc(t Type) TypeID {
	n, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("type arena overflow: %w", err))
	}
	in.types = append(in.types, t)
	return TypeID(n)
}

// Lookup returns the descriptor for id.
func (in *Interner) Lookup(id TypeID) Type {
	return in.types[id]
}

// SetMeta attaches m to an already-interned type, overwriting any previous
// metadata. Used by the instantiation engine to tag attributes and
// diagnostic metadata (e.g. nonexhaustive) onto a type after it was built.
func (in *Interner) SetMeta(id TypeID, m *Meta) {
	in.types[id].Meta = m
}

// NewError returns the error-sentinel TypeID, allocating a fresh instance
// per call since error types never need deduplicating.
func (in *Interner) NewError() TypeID {
	return in.alloc(Type{Kind: KindError})
}

// NewCancelled returns the cancelled-result sentinel for an instantiation
// request aborted by its context.
func (in *Interner) NewCancelled() TypeID {
	return in.alloc(Type{Kind: KindCancelled})
}

// WithAttrs returns a TypeID carrying id's shape plus attrs prepended onto
// its metadata. Builtin singletons and cached shapes are never mutated in
// place: a type with attributes always gets its own arena slot, sharing
// the underlying nominal payload where there is one.
func (in *Interner) WithAttrs(id TypeID, attrs []ast.Attr) TypeID {
	if len(attrs) == 0 {
		return id
	}
	t := in.Lookup(id)
	meta := &Meta{}
	if t.Meta != nil {
		*meta = *t.Meta
	}
	meta.Attrs = append(append([]ast.Attr{}, attrs...), meta.Attrs...)
	t.Meta = meta
	return in.alloc(t)
}

// WithTag returns a TypeID carrying id's shape plus tag appended to its
// metadata, e.g. "nonexhaustive" on a dispatcher fallback union.
func (in *Interner) WithTag(id TypeID, tag string) TypeID {
	t := in.Lookup(id)
	meta := &Meta{}
	if t.Meta != nil {
		*meta = *t.Meta
	}
	meta.Tags = append(append([]string{}, meta.Tags...), tag)
	t.Meta = meta
	return in.alloc(t)
}

// WithAccessor returns a TypeID carrying id's shape with a dynamic
// accessor chain recorded verbatim in its metadata for downstream
// validators; the engine itself never evaluates the chain against data.
func (in *Interner) WithAccessor(id TypeID, accessor []ast.AccessorKey) TypeID {
	t := in.Lookup(id)
	meta := &Meta{}
	if t.Meta != nil {
		*meta = *t.Meta
	}
	meta.Accessor = accessor
	t.Meta = meta
	return in.alloc(t)
}

// WithShadowed returns a TypeID carrying id's shape plus shadowed recorded
// in its metadata, used when simplification unwraps a single surviving
// union member but must not lose the members it dominated.
func (in *Interner) WithShadowed(id TypeID, shadowed []TypeID) TypeID {
	if len(shadowed) == 0 {
		return id
	}
	t := in.Lookup(id)
	meta := &Meta{}
	if t.Meta != nil {
		*meta = *t.Meta
	}
	meta.Shadowed = append(append([]TypeID{}, meta.Shadowed...), shadowed...)
	t.Meta = meta
	return in.alloc(t)
}

func (in *Interner) NewBoolean() TypeID { return in.builtins.Boolean }
func (in *Interner) NewAny() TypeID     { return in.builtins.Any }
func (in *Interner) NewUnsafe() TypeID  { return in.builtins.Unsafe }

func (in *Interner) NewString(lr *ast.LenRange) TypeID {
	if lr == nil {
		return in.builtins.String
	}
	return in.alloc(Type{Kind: KindString, LenRange: lr})
}

func (in *Interner) NewLiteralBool(v bool) TypeID {
	return in.alloc(Type{Kind: KindLiteralBool, LitBool: v})
}

func (in *Interner) NewLiteralString(v string) TypeID {
	return in.alloc(Type{Kind: KindLiteralString, LitString: v})
}

func (in *Interner) NewLiteralNumber(v ast.TypedNumber, suffix ast.NumKind, hasSuffix bool) TypeID {
	return in.alloc(Type{Kind: KindLiteralNumber, LitNumber: v, NumKind: suffix, HasSuffix: hasSuffix})
}

func (in *Interner) NewNumeric(kind ast.NumKind, r *ast.NumRange) TypeID {
	return in.alloc(Type{Kind: KindNumeric, NumKind: kind, NumRange: r})
}
