package ast

// NumKind enumerates the six numeric primitive kinds.
type NumKind uint8

const (
	KindByte NumKind = iota
	KindShort
	KindInt
	KindLong
	KindFloat
	KindDouble
)

func (k NumKind) IsFloat() bool { return k == KindFloat || k == KindDouble }

func (k NumKind) String() string {
	switch k {
	case KindByte:
		return "byte"
	case KindShort:
		return "short"
	case KindInt:
		return "int"
	case KindLong:
		return "long"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	default:
		return "?"
	}
}

// TypedNumber is a numeric literal value, stored widely enough to represent
// any of the six kinds without loss for the ranges mcdoc schemas describe.
type TypedNumber struct {
	IsFloat bool
	I       int64
	F       float64
}

func Int(v int64) TypedNumber   { return TypedNumber{I: v} }
func Float(v float64) TypedNumber { return TypedNumber{IsFloat: true, F: v} }

// AsFloat returns the value widened to float64 for range comparison.
func (n TypedNumber) AsFloat() float64 {
	if n.IsFloat {
		return n.F
	}
	return float64(n.I)
}

// NumRange is a value range with independently exclusive/open endpoints.
type NumRange struct {
	HasLo, ExclLo bool
	Lo            TypedNumber
	HasHi, ExclHi bool
	Hi            TypedNumber
}

// Contains reports whether v falls inside the range.
func (r *NumRange) Contains(v float64) bool {
	if r == nil {
		return true
	}
	if r.HasLo {
		if r.ExclLo && v <= r.Lo.AsFloat() {
			return false
		}
		if !r.ExclLo && v < r.Lo.AsFloat() {
			return false
		}
	}
	if r.HasHi {
		if r.ExclHi && v >= r.Hi.AsFloat() {
			return false
		}
		if !r.ExclHi && v > r.Hi.AsFloat() {
			return false
		}
	}
	return true
}

// Empty reports whether the range can contain no value at all, e.g. the
// integer range 1<..<2.
func (r *NumRange) Empty(integral bool) bool {
	if r == nil || !r.HasLo || !r.HasHi {
		return false
	}
	lo, hi := r.Lo.AsFloat(), r.Hi.AsFloat()
	if lo > hi {
		return true
	}
	if lo == hi {
		return r.ExclLo || r.ExclHi
	}
	if integral && r.ExclLo && r.ExclHi && hi-lo <= 1 {
		return true
	}
	return false
}

// LenRange constrains the length of a string/list/array/prim-array.
type LenRange struct {
	HasLo bool
	Lo    uint32
	HasHi bool
	Hi    uint32
}

func (r *LenRange) Contains(n uint32) bool {
	if r == nil {
		return true
	}
	if r.HasLo && n < r.Lo {
		return false
	}
	if r.HasHi && n > r.Hi {
		return false
	}
	return true
}
