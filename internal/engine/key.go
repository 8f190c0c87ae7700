package engine

import (
	"strconv"
	"strings"

	"mcdoc/internal/ast"
	"mcdoc/internal/types"
)

// refCacheKey identifies one (canonical path, actual type arguments) pair,
// the unit the instantiation cache and visit stack memoize.
func refCacheKey(path string, args []types.TypeID) string {
	if len(args) == 0 {
		return "ref:" + path
	}
	var b strings.Builder
	b.WriteString("ref:")
	b.WriteString(path)
	b.WriteByte('<')
	for i, a := range args {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(a), 10))
	}
	b.WriteByte('>')
	return b.String()
}

// dispatchCacheKey identifies one dispatch case target under evaluation,
// so a dispatch target that recurses through another case of the same
// registry terminates the same way a self-referential struct does.
func dispatchCacheKey(registry string, key ast.StaticKey) string {
	return "dispatch:" + registry + "[" + key.String() + "]"
}
