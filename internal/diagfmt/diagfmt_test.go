package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"mcdoc/internal/diag"
	"mcdoc/internal/source"
)

func sampleFileSet(t *testing.T) (*source.FileSet, source.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id, _ := fs.Add(nil, "main", []byte("struct Widget {\n\tname: strang,\n}\n"))
	return fs, id
}

func TestPrettyRendersLocationSourceLineAndCaret(t *testing.T) {
	fs, id := sampleFileSet(t)
	bag := diag.NewBag()
	bag.Add(diag.Error(diag.SynExpectedTypeExpr, source.Span{File: id, Start: 23, End: 29}, "unknown type strang"))

	var buf bytes.Buffer
	Pretty(&buf, bag, fs, PrettyOpts{})
	out := buf.String()

	if !strings.Contains(out, "main:2:") {
		t.Fatalf("expected the header to reference line 2 of main, got: %s", out)
	}
	if !strings.Contains(out, "unknown type strang") {
		t.Fatalf("expected the message in the output, got: %s", out)
	}
	if !strings.Contains(out, "\tname: strang,") {
		t.Fatalf("expected the offending source line reproduced, got: %s", out)
	}
	if !strings.Contains(out, "~") {
		t.Fatalf("expected an underline made of '~', got: %s", out)
	}
}

func TestPrettyIncludesNotesOnlyWhenRequested(t *testing.T) {
	fs, id := sampleFileSet(t)
	bag := diag.NewBag()
	d := diag.Error(diag.SynExpectedTypeExpr, source.Span{File: id, Start: 23, End: 29}, "unknown type strang").
		WithNote(source.Span{File: id, Start: 0, End: 6}, "did you mean string?")
	bag.Add(d)

	var withoutNotes bytes.Buffer
	Pretty(&withoutNotes, bag, fs, PrettyOpts{ShowNotes: false})
	if strings.Contains(withoutNotes.String(), "did you mean") {
		t.Fatalf("expected notes to be suppressed when ShowNotes is false")
	}

	var withNotes bytes.Buffer
	Pretty(&withNotes, bag, fs, PrettyOpts{ShowNotes: true})
	if !strings.Contains(withNotes.String(), "did you mean string?") {
		t.Fatalf("expected the note text when ShowNotes is true, got: %s", withNotes.String())
	}
}

func TestJSONEncodesEveryDiagnosticWithOptionalFields(t *testing.T) {
	fs, id := sampleFileSet(t)
	bag := diag.NewBag()
	bag.Add(diag.Error(diag.SynExpectedTypeExpr, source.Span{File: id, Start: 23, End: 29}, "unknown type strang"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	var decoded []jsonDiagnostic
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d", len(decoded))
	}
	d := decoded[0]
	if d.Severity != "error" || d.File != "main" || d.Message != "unknown type strang" {
		t.Fatalf("unexpected diagnostic: %+v", d)
	}
	if d.Start == nil || d.Start.Line != 2 {
		t.Fatalf("expected IncludePositions to populate Start with line 2, got %+v", d.Start)
	}
}

func TestJSONOmitsPositionsWhenNotRequested(t *testing.T) {
	fs, id := sampleFileSet(t)
	bag := diag.NewBag()
	bag.Add(diag.Error(diag.SynExpectedTypeExpr, source.Span{File: id, Start: 23, End: 29}, "unknown type strang"))

	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, JSONOpts{}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	if strings.Contains(buf.String(), "\"start\"") {
		t.Fatalf("expected no start position field when IncludePositions is false, got: %s", buf.String())
	}
}
