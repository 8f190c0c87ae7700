package symbols

import "mcdoc/internal/source"

// ModulePathOf derives a file's module path from its folder chain and file
// stem: a file named "mod" contributes no segment of its own (it is the
// folder's own module), matching how the loader maps the project tree onto
// canonical paths.
func ModulePathOf(f *source.File) []string {
	if f.Stem == "mod" {
		return append([]string(nil), f.Segments...)
	}
	return append(append([]string(nil), f.Segments...), f.Stem)
}

func joinPath(segments []string) string {
	out := ""
	for i, s := range segments {
		if i > 0 {
			out += "::"
		}
		out += s
	}
	return out
}
