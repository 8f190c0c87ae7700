package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"mcdoc/internal/diag"
	"mcdoc/internal/source"
)

type sarifLocation struct {
	PhysicalLocation struct {
		ArtifactLocation struct {
			URI string `json:"uri"`
		} `json:"artifactLocation"`
		Region struct {
			StartLine   uint32 `json:"startLine"`
			StartColumn uint32 `json:"startColumn"`
			EndLine     uint32 `json:"endLine"`
			EndColumn   uint32 `json:"endColumn"`
		} `json:"region"`
	} `json:"physicalLocation"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   struct{ Text string `json:"text"` } `json:"message"`
	Locations []sarifLocation `json:"locations"`
}

type sarifRun struct {
	Tool struct {
		Driver struct {
			Name    string `json:"name"`
			Version string `json:"version"`
		} `json:"driver"`
	} `json:"tool"`
	Results []sarifResult `json:"results"`
}

type sarifLog struct {
	Version string     `json:"version"`
	Schema  string     `json:"$schema"`
	Runs    []sarifRun `json:"runs"`
}

func sarifLevel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

// Sarif writes every diagnostic in bag as a SARIF 2.1.0 log.
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	var run sarifRun
	run.Tool.Driver.Name = meta.ToolName
	run.Tool.Driver.Version = meta.ToolVersion

	for _, d := range bag.Items() {
		start, end := fs.Resolve(d.Primary)
		var loc sarifLocation
		loc.PhysicalLocation.ArtifactLocation.URI = fs.Get(d.Primary.File).LogicalPath()
		loc.PhysicalLocation.Region.StartLine = start.Line
		loc.PhysicalLocation.Region.StartColumn = start.Col
		loc.PhysicalLocation.Region.EndLine = end.Line
		loc.PhysicalLocation.Region.EndColumn = end.Col

		res := sarifResult{
			RuleID:    d.Code.String(),
			Level:     sarifLevel(d.Severity),
			Locations: []sarifLocation{loc},
		}
		res.Message.Text = d.Message
		run.Results = append(run.Results, res)
	}

	out := sarifLog{
		Version: "2.1.0",
		Schema:  "https://raw.githubusercontent.com/oasis-tcs/sarif-spec/master/Schemata/sarif-schema-2.1.0.json",
		Runs:    []sarifRun{run},
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("sarif: %w", err)
	}
	return nil
}
