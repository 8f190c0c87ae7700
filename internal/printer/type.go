package printer

import (
	"fmt"
	"strings"

	"mcdoc/internal/ast"
	"mcdoc/internal/types"
)

// TypeText renders a fully instantiated TypeID back into mcdoc-like source
// text, the way TypeExpr renders a parsed AST node. Used by commands that
// report resolved types rather than the syntax that produced them.
func TypeText(in *types.Interner, id types.TypeID) string {
	if !id.IsValid() {
		return "<invalid>"
	}
	t := in.Lookup(id)
	switch t.Kind {
	case types.KindAny:
		return "any"
	case types.KindUnsafe:
		return "unsafe"
	case types.KindBoolean:
		return "boolean"
	case types.KindString:
		return "string" + lenRangeText(t.LenRange)
	case types.KindLiteralBool:
		if t.LitBool {
			return "true"
		}
		return "false"
	case types.KindLiteralString:
		return fmt.Sprintf("%q", t.LitString)
	case types.KindLiteralNumber:
		s := numberText(t.LitNumber)
		if t.HasSuffix {
			s += t.NumKind.String()
		}
		return s
	case types.KindNumeric:
		return baseKindText(t.NumKind, false) + numRangeText(t.NumRange)
	case types.KindPrimArray:
		info := in.PrimArray(id)
		return fmt.Sprintf("%s[]%s%s", baseKindText(info.ElemKind, false), numRangeText(info.ElemRange), lenRangeText(info.LenRange))
	case types.KindList:
		info := in.List(id)
		return fmt.Sprintf("[%s]%s", TypeText(in, info.Elem), lenRangeText(info.LenRange))
	case types.KindTuple:
		info := in.Tuple(id)
		parts := make([]string, len(info.Elems))
		for i, e := range info.Elems {
			parts[i] = TypeText(in, e)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case types.KindStruct:
		return structTypeText(in, id)
	case types.KindEnum:
		return enumTypeText(in, id)
	case types.KindUnion:
		info := in.Union(id)
		parts := make([]string, len(info.Members))
		for i, m := range info.Members {
			parts[i] = TypeText(in, m)
		}
		return strings.Join(parts, " | ")
	case types.KindError:
		return "<error>"
	case types.KindCancelled:
		return "<cancelled>"
	default:
		return "<invalid>"
	}
}

func structTypeText(in *types.Interner, id types.TypeID) string {
	info := in.Struct(id)
	if len(info.Fields) == 0 {
		return "struct {}"
	}
	var b strings.Builder
	b.WriteString("struct {\n")
	for _, f := range info.Fields {
		key := f.KeyText
		if f.KeyKind == ast.FieldKeyComputed && f.KeyType.IsValid() {
			key = "[" + TypeText(in, f.KeyType) + "]"
		}
		opt := ""
		if f.Optional {
			opt = "?"
		}
		fmt.Fprintf(&b, "\t%s%s: %s,\n", key, opt, TypeText(in, f.Type))
	}
	b.WriteString("}")
	return b.String()
}

func enumTypeText(in *types.Interner, id types.TypeID) string {
	info := in.Enum(id)
	base := baseKindText(info.BaseKind, info.IsString)
	if len(info.Variants) == 0 {
		return fmt.Sprintf("enum(%s) {}", base)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "enum(%s) {\n", base)
	for _, v := range info.Variants {
		if info.IsString {
			fmt.Fprintf(&b, "\t%s = %q,\n", v.Name, v.StrValue)
		} else {
			fmt.Fprintf(&b, "\t%s = %s,\n", v.Name, numberText(v.NumValue))
		}
	}
	b.WriteString("}")
	return b.String()
}
