package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func resetVersionFlags(t *testing.T) {
	t.Helper()
	versionFormat = "pretty"
	versionShowHash = false
	versionShowMessage = false
	versionShowDate = false
	versionShowFull = false
	t.Cleanup(func() {
		versionFormat = "pretty"
		versionShowHash = false
		versionShowMessage = false
		versionShowDate = false
		versionShowFull = false
	})
}

func TestVersionPrettyDefaultOutputHintsAtFlags(t *testing.T) {
	resetVersionFlags(t)
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)

	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("RunE failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "mcdoc ") || !strings.Contains(out, versionTagline) {
		t.Fatalf("expected the tool name and tagline in the output, got: %s", out)
	}
	if !strings.Contains(out, "set --hash, --message, --date, or --full") {
		t.Fatalf("expected the hint line when no detail flags are set, got: %s", out)
	}
}

func TestVersionFullShowsEveryField(t *testing.T) {
	resetVersionFlags(t)
	versionShowFull = true
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)

	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("RunE failed: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"commit:", "message:", "built:"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in --full output, got: %s", want, out)
		}
	}
}

func TestVersionJSONFormatIncludesOnlyRequestedFields(t *testing.T) {
	resetVersionFlags(t)
	versionFormat = "json"
	versionShowHash = true
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)

	if err := versionCmd.RunE(versionCmd, nil); err != nil {
		t.Fatalf("RunE failed: %v", err)
	}

	var payload versionPayload
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("failed to decode JSON output: %v", err)
	}
	if payload.Tool != "mcdoc" || payload.GitCommit == "" {
		t.Fatalf("expected tool=mcdoc and a non-empty git commit field, got %+v", payload)
	}
	if payload.GitMessage != "" || payload.BuildDate != "" {
		t.Fatalf("expected git message/build date to be omitted when not requested, got %+v", payload)
	}
}

func TestVersionRejectsUnknownFormat(t *testing.T) {
	resetVersionFlags(t)
	versionFormat = "xml"
	var buf bytes.Buffer
	versionCmd.SetOut(&buf)

	if err := versionCmd.RunE(versionCmd, nil); err == nil {
		t.Fatalf("expected an error for an unsupported format")
	}
}
