package diagfmt

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"mcdoc/internal/diag"
	"mcdoc/internal/source"
)

// Pretty formats every diagnostic in bag as:
//
//	path:line:col: severity code: message
//	  <source line>
//	  ~~~~~~
//
// followed, when opts.ShowNotes is set, by its notes in the same shape.
// The underline is measured in bytes. Call bag.Sort() first for a
// deterministic, file-then-position order.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeOne(w, fs, d.Severity, d.Code.String(), d.Message, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeOne(w, fs, diag.SevInfo, "note", n.Msg, n.Span, opts)
			}
		}
	}
}

func writeOne(w io.Writer, fs *source.FileSet, sev diag.Severity, code, msg string, span source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(span)
	header := fmt.Sprintf("%s:%d:%d: %s %s: %s",
		fs.Get(span.File).LogicalPath(), start.Line, start.Col, sev, code, msg)
	if opts.Color {
		header = colorFor(sev).Sprint(header)
	}
	fmt.Fprintln(w, header)

	line := sourceLine(fs, span.File, start.Line)
	if line == "" {
		return
	}
	fmt.Fprintf(w, "  %s\n", line)

	width := end.Col - start.Col
	if width == 0 {
		width = 1
	}
	underline := strings.Repeat(" ", int(start.Col-1)) + strings.Repeat("~", int(width))
	if opts.Color {
		underline = colorFor(sev).Sprint(underline)
	}
	fmt.Fprintf(w, "  %s\n", underline)
}

func colorFor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func sourceLine(fs *source.FileSet, fileID source.FileID, line uint32) string {
	f := fs.Get(fileID)
	var start, end uint32
	if line > 1 {
		start = f.LineIdx[line-2] + 1
	}
	if int(line-1) < len(f.LineIdx) {
		end = f.LineIdx[line-1]
	} else {
		end = uint32(len(f.Content))
	}
	if start > uint32(len(f.Content)) || end > uint32(len(f.Content)) || start > end {
		return ""
	}
	return string(bytes.TrimRight(f.Content[start:end], "\r"))
}
