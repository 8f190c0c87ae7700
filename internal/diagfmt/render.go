// Package diagfmt renders a diag.Bag to a terminal, colorizing by severity
// and aligning carets under the offending source span with rune-width
// awareness so wide/combining characters don't throw off the underline.
package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"mcdoc/internal/diag"
	"mcdoc/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	pathColor    = color.New(color.FgWhite, color.Bold)
	caretColor   = color.New(color.FgRed, color.Bold)
)

// Options controls how a Bag is rendered.
type Options struct {
	Color bool // when false, no ANSI escapes are emitted regardless of TTY
}

// Render writes every diagnostic in bag to w, one block per diagnostic,
// with a one-line source preview and a caret underline under the primary
// span.
func Render(w io.Writer, fs *source.FileSet, bag *diag.Bag, opts Options) {
	color.NoColor = !opts.Color
	for _, d := range bag.Items() {
		renderOne(w, fs, d)
	}
}

func renderOne(w io.Writer, fs *source.FileSet, d diag.Diagnostic) {
	sevColor := infoColor
	switch d.Severity {
	case diag.SevError:
		sevColor = errorColor
	case diag.SevWarning:
		sevColor = warningColor
	}

	fmt.Fprintf(w, "%s[%s]: %s\n", sevColor.Sprint(d.Severity.String()), d.Code.String(), d.Message)

	if fs == nil || d.Primary == (source.Span{}) {
		return
	}
	file := fs.Get(d.Primary.File)
	start, _ := fs.Resolve(d.Primary)
	fmt.Fprintf(w, "  %s %s:%d:%d\n", pathColor.Sprint("-->"), file.LogicalPath(), start.Line, start.Col)

	line := lineText(file, start.Line)
	fmt.Fprintf(w, "   %s\n", line)

	prefixWidth := runewidth.StringWidth(line[:min(len(line), int(start.Col)-1)])
	caretLen := max(1, runewidth.StringWidth(spanText(file, d.Primary)))
	fmt.Fprintf(w, "   %s%s\n", strings.Repeat(" ", prefixWidth), caretColor.Sprint(strings.Repeat("^", caretLen)))

	for _, n := range d.Notes {
		fmt.Fprintf(w, "   note: %s\n", n.Msg)
	}
}

func lineText(f *source.File, line uint32) string {
	var start uint32
	if line > 1 && int(line-2) < len(f.LineIdx) {
		start = f.LineIdx[line-2] + 1
	}
	end := uint32(len(f.Content))
	if int(line-1) < len(f.LineIdx) {
		end = f.LineIdx[line-1]
	}
	if start > end || int(start) > len(f.Content) {
		return ""
	}
	if int(end) > len(f.Content) {
		end = uint32(len(f.Content))
	}
	return string(f.Content[start:end])
}

func spanText(f *source.File, sp source.Span) string {
	if int(sp.End) > len(f.Content) || sp.Start > sp.End {
		return ""
	}
	return string(f.Content[sp.Start:sp.End])
}
