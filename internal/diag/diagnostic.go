package diag

import "mcdoc/internal/source"

// Note attaches a secondary span and message to a Diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one reported problem: a severity, a code, a primary span,
// and optional notes. Every engine failure surfaces this way rather than as
// a Go error.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Primary: primary, Message: msg}
}

func Error(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func Warning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

func Info(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevInfo, code, primary, msg)
}

func (d Diagnostic) WithNote(span source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: span, Msg: msg})
	return d
}
