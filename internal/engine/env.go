package engine

import (
	"mcdoc/internal/source"
	"mcdoc/internal/types"
)

// Env carries the generic-parameter bindings and originating file needed
// to resolve a TypeExpr, plus the request-wide visit stack that makes
// recursive references and dispatch cases terminate. The visit stack is
// shared (not copied) across every Env derived from the same top-level
// request, so a cycle is detected no matter how many scopes it passes
// through on the way back to itself.
type Env struct {
	File     source.FileID
	Generics map[string]types.TypeID
	visiting map[string]types.TypeID
}

func newEnv(file source.FileID) *Env {
	return &Env{File: file, Generics: map[string]types.TypeID{}, visiting: map[string]types.TypeID{}}
}

// withScope returns an Env for a different file and generic-parameter
// binding that still shares this request's visit stack.
func (e *Env) withScope(file source.FileID, generics map[string]types.TypeID) *Env {
	return &Env{File: file, Generics: generics, visiting: e.visiting}
}
