// Package printer renders a parsed mcdoc AST back to source text. It
// exists for the round-trip property (parse(print(parse(src))) produces
// the same AST as parse(src)) and for a `mcdoc fmt`-style canonical
// rendering.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"mcdoc/internal/ast"
)

// File renders a parsed file back to mcdoc source text.
func File(f *ast.File) string {
	var b strings.Builder
	for i, item := range f.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		Item(&b, item)
	}
	return b.String()
}

func Item(b *strings.Builder, item ast.Item) {
	switch it := item.(type) {
	case *ast.StructDef:
		writeDoc(b, it.Doc)
		writeAttrs(b, it.Attrs)
		b.WriteString("struct ")
		b.WriteString(it.Name)
		writeGenerics(b, it.Generics)
		b.WriteString(" ")
		writeStructBody(b, it.Fields)
		b.WriteString("\n")

	case *ast.EnumDef:
		writeDoc(b, it.Doc)
		writeAttrs(b, it.Attrs)
		fmt.Fprintf(b, "enum(%s) %s {\n", baseKindText(it.BaseKind, it.IsString), it.Name)
		for _, v := range it.Variants {
			writeDoc(b, v.Doc)
			writeAttrs(b, v.Attrs)
			b.WriteString("\t")
			b.WriteString(v.Name)
			b.WriteString(" = ")
			if v.IsString {
				b.WriteString(strconv.Quote(v.StrValue))
			} else {
				b.WriteString(numberText(v.NumValue))
			}
			b.WriteString(",\n")
		}
		b.WriteString("}\n")

	case *ast.TypeAlias:
		writeDoc(b, it.Doc)
		writeAttrs(b, it.Attrs)
		b.WriteString("type ")
		b.WriteString(it.Name)
		writeGenerics(b, it.Generics)
		b.WriteString(" = ")
		b.WriteString(TypeExpr(it.Target))
		b.WriteString("\n")

	case *ast.UseStmt:
		b.WriteString("use ")
		b.WriteString(PathText(it.Target))
		if it.Alias != "" && it.Alias != lastSegment(it.Target) {
			b.WriteString(" as ")
			b.WriteString(it.Alias)
		}
		b.WriteString("\n")

	case *ast.Injection:
		b.WriteString("inject ")
		if it.Kind == ast.InjectStruct {
			b.WriteString("struct ")
			b.WriteString(PathText(it.Target))
			b.WriteString(" ")
			writeStructBody(b, it.Fields)
		} else {
			fmt.Fprintf(b, "enum %s {\n", PathText(it.Target))
			for _, v := range it.Variants {
				writeDoc(b, v.Doc)
				writeAttrs(b, v.Attrs)
				b.WriteString("\t")
				b.WriteString(v.Name)
				b.WriteString(" = ")
				if v.IsString {
					b.WriteString(strconv.Quote(v.StrValue))
				} else {
					b.WriteString(numberText(v.NumValue))
				}
				b.WriteString(",\n")
			}
			b.WriteString("}")
		}
		b.WriteString("\n")

	case *ast.DispatchStmt:
		b.WriteString("dispatch ")
		b.WriteString(it.Registry)
		b.WriteString("[")
		for i, k := range it.Indices {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(staticKeyText(k))
		}
		b.WriteString("]")
		writeGenerics(b, it.Generics)
		b.WriteString(" to ")
		b.WriteString(TypeExpr(it.Target))
		b.WriteString("\n")
	}
}

func lastSegment(p ast.Path) string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}

func writeDoc(b *strings.Builder, doc []string) {
	for _, line := range doc {
		b.WriteString("///")
		b.WriteString(line)
		b.WriteString("\n")
	}
}

func writeGenerics(b *strings.Builder, gens []ast.GenericParam) {
	if len(gens) == 0 {
		return
	}
	b.WriteString("<")
	for i, g := range gens {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(g.Name)
	}
	b.WriteString(">")
}

func writeStructBody(b *strings.Builder, fields []ast.StructField) {
	b.WriteString("{\n")
	for _, f := range fields {
		b.WriteString("\t")
		writeStructField(b, f)
		b.WriteString(",\n")
	}
	b.WriteString("}")
}

func writeStructField(b *strings.Builder, f ast.StructField) {
	switch sf := f.(type) {
	case *ast.NamedField:
		writeAttrsInline(b, sf.Attrs)
		b.WriteString(fieldKeyText(sf.Key))
		if sf.Optional {
			b.WriteString("?")
		}
		b.WriteString(": ")
		b.WriteString(TypeExpr(sf.Type))
	case *ast.SpreadField:
		writeAttrsInline(b, sf.Attrs)
		b.WriteString("...")
		b.WriteString(TypeExpr(sf.Type))
	}
}

func fieldKeyText(k ast.FieldKey) string {
	switch k.Kind {
	case ast.FieldKeyIdent:
		return k.Text
	case ast.FieldKeyString:
		return strconv.Quote(k.Text)
	case ast.FieldKeyComputed:
		return "[" + TypeExpr(k.Computed) + "]"
	default:
		return "<?>"
	}
}

func baseKindText(k ast.NumKind, isString bool) string {
	if isString {
		return "string"
	}
	return k.String()
}

func staticKeyText(k ast.StaticKey) string {
	switch k.Kind {
	case ast.StaticFallback, ast.StaticNone, ast.StaticUnknown:
		return k.String()
	case ast.StaticString:
		return strconv.Quote(k.Text)
	default:
		return k.Text
	}
}

func accessorText(chain []ast.AccessorKey) string {
	parts := make([]string, len(chain))
	for i, a := range chain {
		switch a.Kind {
		case ast.AccessorSpecialKey:
			parts[i] = "%key"
		case ast.AccessorSpecialParent:
			parts[i] = "%parent"
		default:
			parts[i] = a.Text
		}
	}
	return strings.Join(parts, "::")
}

func indexText(idx ast.Index) string {
	if idx.Kind == ast.IndexStatic {
		return "[" + staticKeyText(idx.Static) + "]"
	}
	return "[" + accessorText(idx.Dynamic) + "]"
}

// PathText renders a module path in its "::"-joined textual form.
func PathText(p ast.Path) string {
	var b strings.Builder
	if p.Absolute {
		b.WriteString("::")
	}
	for i := 0; i < p.Supers; i++ {
		if i > 0 || p.Absolute {
			b.WriteString("::")
		}
		b.WriteString("super")
	}
	for i, seg := range p.Segments {
		if i > 0 || p.Supers > 0 || p.Absolute {
			b.WriteString("::")
		}
		b.WriteString(seg)
	}
	return b.String()
}

func numberText(n ast.TypedNumber) string {
	if n.IsFloat {
		return strconv.FormatFloat(n.F, 'g', -1, 64)
	}
	return strconv.FormatInt(n.I, 10)
}

func numRangeText(r *ast.NumRange) string {
	if r == nil {
		return ""
	}
	lo, hi := "", ""
	if r.HasLo {
		lo = numberText(r.Lo)
	}
	if r.HasHi {
		hi = numberText(r.Hi)
	}
	loOp, hiOp := "..", ""
	if r.ExclLo {
		loOp = "<.."
	}
	if r.ExclHi {
		hiOp = "<"
	}
	return "@" + lo + loOp + hiOp + hi
}

func lenRangeText(r *ast.LenRange) string {
	if r == nil {
		return ""
	}
	lo, hi := "", ""
	if r.HasLo {
		lo = strconv.Itoa(int(r.Lo))
	}
	if r.HasHi {
		hi = strconv.Itoa(int(r.Hi))
	}
	return "@" + lo + ".." + hi
}

func writeAttrs(b *strings.Builder, attrs []ast.Attr) {
	for _, a := range attrs {
		b.WriteString(attrText(a))
		b.WriteString("\n")
	}
}

func writeAttrsInline(b *strings.Builder, attrs []ast.Attr) {
	for _, a := range attrs {
		b.WriteString(attrText(a))
		b.WriteString(" ")
	}
}

func attrText(a ast.Attr) string {
	if a.Value == nil {
		return "#[" + a.Name + "]"
	}
	return "#[" + a.Name + " = " + attrValueText(*a.Value) + "]"
}

func attrValueText(v ast.AttrValue) string {
	switch v.Kind {
	case ast.AttrValBool:
		return strconv.FormatBool(v.Bool)
	case ast.AttrValNumber:
		return numberText(v.Number)
	case ast.AttrValString:
		return strconv.Quote(v.Str)
	case ast.AttrValIdent:
		return v.Str
	case ast.AttrValTree:
		return attrTreeText(v.Tree)
	default:
		return "<?>"
	}
}

func attrTreeText(t *ast.AttrTree) string {
	if t == nil {
		return ""
	}
	open, close := "(", ")"
	switch t.Delim {
	case '[':
		open, close = "[", "]"
	case '{':
		open, close = "{", "}"
	}
	var parts []string
	for _, p := range t.Positional {
		parts = append(parts, attrValueText(p))
	}
	for _, n := range t.Named {
		parts = append(parts, n.Name+" = "+attrValueText(n.Value))
	}
	return open + strings.Join(parts, ", ") + close
}

// TypeExpr renders a parsed type expression back to mcdoc source text.
func TypeExpr(e ast.TypeExpr) string {
	var attrs string
	for _, a := range e.Base().Attrs {
		attrs += attrText(a) + " "
	}
	return attrs + typeExprBody(e)
}

func typeExprBody(e ast.TypeExpr) string {
	switch t := e.(type) {
	case *ast.AnyType:
		return "any"
	case *ast.BooleanType:
		return "boolean"
	case *ast.StringType:
		return "string" + lenRangeText(t.LenRange)
	case *ast.LiteralBoolType:
		return strconv.FormatBool(t.Value)
	case *ast.LiteralStringType:
		return strconv.Quote(t.Value)
	case *ast.LiteralNumberType:
		s := numberText(t.Value)
		if t.HasSuffix {
			s += strings.ToLower(t.Suffix.String()[:1])
		}
		return s
	case *ast.NumericType:
		return t.Kind.String() + numRangeText(t.ValueRange)
	case *ast.PrimArrayType:
		return "[" + t.ElemKind.String() + numRangeText(t.ElemRange) + ";" + lenRangeText(t.LenRange) + "]"
	case *ast.ListType:
		return "[" + TypeExpr(t.Elem) + "]" + lenRangeText(t.LenRange)
	case *ast.TupleType:
		parts := make([]string, len(t.Elems))
		for i, el := range t.Elems {
			parts[i] = TypeExpr(el)
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case *ast.StructType:
		var b strings.Builder
		writeStructBody(&b, t.Fields)
		return b.String()
	case *ast.EnumType:
		var b strings.Builder
		fmt.Fprintf(&b, "enum(%s) {\n", baseKindText(t.BaseKind, t.IsString))
		for _, v := range t.Variants {
			b.WriteString("\t")
			b.WriteString(v.Name)
			b.WriteString(" = ")
			if v.IsString {
				b.WriteString(strconv.Quote(v.StrValue))
			} else {
				b.WriteString(numberText(v.NumValue))
			}
			b.WriteString(",\n")
		}
		b.WriteString("}")
		return b.String()
	case *ast.ReferenceType:
		s := PathText(t.Path)
		if len(t.TypeArgs) > 0 {
			parts := make([]string, len(t.TypeArgs))
			for i, a := range t.TypeArgs {
				parts[i] = TypeExpr(a)
			}
			s += "<" + strings.Join(parts, ", ") + ">"
		}
		return s
	case *ast.DispatcherType:
		s := t.Registry
		for _, idx := range t.Indices {
			s += indexText(idx)
		}
		return s
	case *ast.UnionType:
		parts := make([]string, len(t.Members))
		for i, m := range t.Members {
			parts[i] = TypeExpr(m)
		}
		return "(" + strings.Join(parts, " | ") + ")"
	case *ast.IndexedType:
		s := TypeExpr(t.BaseExpr)
		for _, idx := range t.Indices {
			s += indexText(idx)
		}
		return s
	default:
		return "<?>"
	}
}
