// Package driver runs the lex/parse pipeline over one standalone file, for
// commands that operate outside a project (mcdoc.toml) context such as
// tokenize and parse. Project-wide loading lives in internal/project
// instead, where files must be attributed to a module path.
package driver

import (
	"os"
	"path/filepath"
	"strings"

	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/lexer"
	"mcdoc/internal/parser"
	"mcdoc/internal/source"
	"mcdoc/internal/token"
)

// TokenizeResult is one file's raw token stream plus its diagnostics.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// ParseResult is one file's parsed AST plus its diagnostics.
type ParseResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	File    *ast.File
	Bag     *diag.Bag
}

// loadStandaloneFile reads path off disk and registers it in a fresh
// FileSet as a single root-level file named by its basename.
func loadStandaloneFile(path string) (*source.FileSet, source.FileID, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, 0, err
	}
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	fset := source.NewFileSet()
	id, _ := fset.Add(nil, stem, content)
	return fset, id, nil
}

// Tokenize lexes path in isolation, returning every token through EOF.
func Tokenize(path string) (*TokenizeResult, error) {
	fset, id, err := loadStandaloneFile(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag()
	lx := lexer.New(fset.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return &TokenizeResult{FileSet: fset, FileID: id, Tokens: tokens, Bag: bag}, nil
}

// Parse lexes and parses path in isolation.
func Parse(path string) (*ParseResult, error) {
	fset, id, err := loadStandaloneFile(path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag()
	lx := lexer.New(fset.Get(id), lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	astFile := parser.ParseFile(fset, id, lx, parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &ParseResult{FileSet: fset, FileID: id, File: astFile, Bag: bag}, nil
}
