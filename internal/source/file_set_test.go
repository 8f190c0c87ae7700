package source

import "testing"

func TestAddAssignsSequentialIDsAndDetectsDuplicates(t *testing.T) {
	fs := NewFileSet()
	id1, existed1 := fs.Add([]string{"vendor"}, "widget", []byte("struct Widget {}\n"))
	if existed1 {
		t.Fatalf("expected the first Add for a logical path to report existed=false")
	}
	if id1 != 0 {
		t.Fatalf("expected the first file to get FileID 0, got %d", id1)
	}

	id2, existed2 := fs.Add([]string{"vendor"}, "widget", []byte("struct Widget {}\n"))
	if !existed2 {
		t.Fatalf("expected re-adding the same logical path to report existed=true")
	}
	if id2 == id1 {
		t.Fatalf("expected re-adding the same logical path to still allocate a fresh FileID")
	}

	if fs.Len() != 2 {
		t.Fatalf("expected 2 loaded files, got %d", fs.Len())
	}
}

func TestLogicalPathJoinsSegmentsAndStem(t *testing.T) {
	fs := NewFileSet()
	id, _ := fs.Add([]string{"foo", "bar"}, "widget", []byte("struct Widget {}\n"))
	f := fs.Get(id)
	if got := f.LogicalPath(); got != "foo::bar::widget" {
		t.Fatalf("expected logical path foo::bar::widget, got %q", got)
	}

	rootID, _ := fs.Add(nil, "main", []byte("struct Main {}\n"))
	if got := fs.Get(rootID).LogicalPath(); got != "main" {
		t.Fatalf("expected logical path main for a root file, got %q", got)
	}
}

func TestResolveConvertsOffsetsToOneBasedLineAndColumn(t *testing.T) {
	fs := NewFileSet()
	id, _ := fs.Add(nil, "main", []byte("abc\ndef\n"))

	start, end := fs.Resolve(Span{File: id, Start: 0, End: 3})
	if start != (LineCol{Line: 1, Col: 1}) {
		t.Fatalf("expected offset 0 to resolve to line 1 col 1, got %+v", start)
	}
	if end != (LineCol{Line: 1, Col: 4}) {
		t.Fatalf("expected offset 3 to resolve to line 1 col 4, got %+v", end)
	}

	lineTwoStart, _ := fs.Resolve(Span{File: id, Start: 4, End: 4})
	if lineTwoStart != (LineCol{Line: 2, Col: 1}) {
		t.Fatalf("expected offset 4 (start of second line) to resolve to line 2 col 1, got %+v", lineTwoStart)
	}
}

func TestSpanCoverExpandsToBothRangesWithinOneFile(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 1, Start: 2, End: 7}

	covered := a.Cover(b)
	if covered.Start != 2 || covered.End != 10 {
		t.Fatalf("expected the covering span to be [2,10), got %+v", covered)
	}
}

func TestSpanCoverIgnoresOtherFile(t *testing.T) {
	a := Span{File: 1, Start: 5, End: 10}
	b := Span{File: 2, Start: 0, End: 100}

	if got := a.Cover(b); got != a {
		t.Fatalf("expected Cover across different files to return the receiver unchanged, got %+v", got)
	}
}

func TestSpanEmptyAndLen(t *testing.T) {
	empty := Span{File: 1, Start: 5, End: 5}
	if !empty.Empty() {
		t.Fatalf("expected a zero-width span to report Empty")
	}
	nonEmpty := Span{File: 1, Start: 5, End: 9}
	if nonEmpty.Empty() {
		t.Fatalf("expected a non-zero-width span to not report Empty")
	}
	if nonEmpty.Len() != 4 {
		t.Fatalf("expected Len 4, got %d", nonEmpty.Len())
	}
}
