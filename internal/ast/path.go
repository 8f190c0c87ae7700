// Package ast defines the mcdoc abstract syntax tree produced by the
// parser (C2) and consumed by the symbol table (C3) and the instantiation
// engine (C4).
package ast

import "mcdoc/internal/source"

// Path is a module path as written in source: an optional leading "::"
// (Absolute), zero or more leading "super" segments, then named segments.
type Path struct {
	Absolute bool
	Supers   int
	Segments []string
	Span     source.Span
}
