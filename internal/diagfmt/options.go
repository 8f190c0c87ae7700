// Package diagfmt renders diagnostics and token streams for cmd/mcdoc in
// the formats mcdoc actually needs: pretty, JSON, and SARIF.
package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int
	ShowNotes bool
}

// JSONOpts configures JSON output of diagnostics.
type JSONOpts struct {
	IncludePositions bool
	IncludeNotes     bool
}

// SarifRunMeta provides metadata for SARIF output.
type SarifRunMeta struct {
	ToolName    string
	ToolVersion string
}
