package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"mcdoc/internal/source"
	"mcdoc/internal/token"
)

type tokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text,omitempty"`
	Span source.Span `json:"span"`
	Doc  []string    `json:"doc,omitempty"`
}

// FormatTokensPretty writes one line per token in a human-readable layout.
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		start, end := fs.Resolve(tok.Span)
		fmt.Fprintf(w, "%4d: %-18s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		fmt.Fprintf(w, " at %d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		if len(tok.Doc) > 0 {
			fmt.Fprintf(w, " (doc: %s)", strings.Join(tok.Doc, " / "))
		}
		fmt.Fprintln(w)
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON writes the token stream as a JSON array.
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	out := make([]tokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tokenOutput{
			Kind: tok.Kind.String(),
			Text: tok.Text,
			Span: tok.Span,
			Doc:  tok.Doc,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
