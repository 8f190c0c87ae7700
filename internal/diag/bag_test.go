package diag

import (
	"testing"

	"mcdoc/internal/source"
)

func span(file source.FileID, start, end uint32) source.Span {
	return source.Span{File: file, Start: start, End: end}
}

func TestHasErrorsOnlyTripsAtErrorSeverity(t *testing.T) {
	b := NewBag()
	b.Add(Info(LexUnknownChar, span(1, 0, 1), "info only"))
	b.Add(Warning(LexUnknownChar, span(1, 1, 2), "warning only"))
	if b.HasErrors() {
		t.Fatalf("expected info/warning diagnostics to not count as errors")
	}
	b.Add(Error(LexUnknownChar, span(1, 2, 3), "now an error"))
	if !b.HasErrors() {
		t.Fatalf("expected HasErrors to trip once an error-severity diagnostic is added")
	}
}

func TestMergeAppendsInOrderAndTolerantOfNil(t *testing.T) {
	a := NewBag()
	a.Add(Error(LexUnknownChar, span(1, 0, 1), "first"))
	b := NewBag()
	b.Add(Error(LexUnknownChar, span(1, 1, 2), "second"))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("expected 2 diagnostics after merge, got %d", a.Len())
	}
	if a.Items()[0].Message != "first" || a.Items()[1].Message != "second" {
		t.Fatalf("expected merge to preserve order, got %+v", a.Items())
	}

	a.Merge(nil)
	if a.Len() != 2 {
		t.Fatalf("expected merging a nil bag to be a no-op, got %d items", a.Len())
	}
}

func TestSortOrdersByFileThenOffsetThenSeverityThenCode(t *testing.T) {
	b := NewBag()
	b.Add(Warning(LexUnknownChar, span(2, 0, 1), "file 2"))
	b.Add(Error(LexUnterminatedString, span(1, 5, 6), "file 1, same offset, higher code"))
	b.Add(Error(LexUnknownChar, span(1, 5, 6), "file 1, same offset, lower code"))
	b.Add(Info(LexUnknownChar, span(1, 0, 1), "file 1, earliest offset"))

	b.Sort()
	items := b.Items()
	if len(items) != 4 {
		t.Fatalf("expected 4 items, got %d", len(items))
	}
	if items[0].Message != "file 1, earliest offset" {
		t.Fatalf("expected the earliest offset in file 1 first, got %+v", items[0])
	}
	if items[1].Message != "file 1, same offset, lower code" || items[2].Message != "file 1, same offset, higher code" {
		t.Fatalf("expected same-offset lower code before higher code: %+v, %+v", items[1], items[2])
	}
	if items[3].Message != "file 2" {
		t.Fatalf("expected file 2's diagnostic last, got %+v", items[3])
	}
}

func TestBagReporterAddsToUnderlyingBag(t *testing.T) {
	b := NewBag()
	var r Reporter = BagReporter{Bag: b}
	r.Report(Error(LexUnknownChar, span(1, 0, 1), "reported"))
	if b.Len() != 1 {
		t.Fatalf("expected the reported diagnostic to land in the bag")
	}
}

func TestNopReporterDiscardsEverything(t *testing.T) {
	var r Reporter = NopReporter{}
	r.Report(Error(LexUnknownChar, span(1, 0, 1), "discarded"))
}

func TestWithNoteAppendsWithoutMutatingOriginal(t *testing.T) {
	base := Error(LexUnknownChar, span(1, 0, 1), "base")
	noted := base.WithNote(span(1, 2, 3), "extra context")

	if len(base.Notes) != 0 {
		t.Fatalf("expected the original diagnostic to be unmodified, got %+v", base.Notes)
	}
	if len(noted.Notes) != 1 || noted.Notes[0].Msg != "extra context" {
		t.Fatalf("unexpected notes: %+v", noted.Notes)
	}
}
