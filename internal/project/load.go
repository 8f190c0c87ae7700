package project

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"mcdoc/internal/ast"
	"mcdoc/internal/diag"
	"mcdoc/internal/lexer"
	"mcdoc/internal/parser"
	"mcdoc/internal/source"
)

// SourceExt is the file extension a project tree is scanned for.
const SourceExt = ".mcdoc"

// LoadResult is one loaded and parsed project tree.
type LoadResult struct {
	FileSet *source.FileSet
	Files   map[source.FileID]*ast.File
	Bag     *diag.Bag
	Digest  Digest
}

type pendingFile struct {
	segments []string
	stem     string
	abs      string
}

// listSourceFiles returns every SourceExt file under dir, segmented
// relative to dir and prefixed with prefix, sorted for a deterministic
// load order.
func listSourceFiles(dir string, prefix []string) ([]pendingFile, error) {
	var out []pendingFile
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, SourceExt) {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		parts := strings.Split(rel, "/")
		stem := strings.TrimSuffix(parts[len(parts)-1], SourceExt)
		segments := append(append([]string(nil), prefix...), parts[:len(parts)-1]...)
		out = append(out, pendingFile{segments: segments, stem: stem, abs: path})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.Join(out[i].segments, "/")+"/"+out[i].stem < strings.Join(out[j].segments, "/")+"/"+out[j].stem
	})
	return out, nil
}

// LoadProject loads every declared root, lexes and parses every file in
// parallel (bounded by jobs; jobs<=0 means GOMAXPROCS), and returns the
// merged result plus a content digest covering the whole tree.
func LoadProject(ctx context.Context, manifest *Manifest, manifestDir string, jobs int) (*LoadResult, error) {
	roots := manifest.RootDirs(manifestDir)
	prefixes := make([]string, 0, len(roots))
	for prefix := range roots {
		prefixes = append(prefixes, prefix)
	}
	sort.Strings(prefixes)

	var pending []pendingFile
	for _, prefix := range prefixes {
		var segPrefix []string
		if prefix != "" {
			segPrefix = strings.Split(prefix, "/")
		}
		files, err := listSourceFiles(roots[prefix], segPrefix)
		if err != nil {
			return nil, fmt.Errorf("failed to walk root %q: %w", roots[prefix], err)
		}
		pending = append(pending, files...)
	}

	fset := source.NewFileSet()
	fileIDs := make([]source.FileID, len(pending))
	bag := diag.NewBag()

	for i, pf := range pending {
		content, err := os.ReadFile(pf.abs)
		if err != nil {
			bag.Add(diag.Error(diag.IOLoadFileError, source.Span{}, "failed to load file: "+err.Error()))
			continue
		}
		id, existed := fset.Add(pf.segments, pf.stem, content)
		if existed {
			bag.Add(diag.Error(diag.ResDuplicateDeclaration, source.Span{File: id},
				"duplicate logical path for "+pf.abs))
		}
		fileIDs[i] = id
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	files := make(map[source.FileID]*ast.File, len(pending))
	bags := make([]*diag.Bag, len(pending))
	asts := make([]*ast.File, len(pending))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(pending), 1)))

	for i := range pending {
		i := i
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fileBag := diag.NewBag()
			bags[i] = fileBag

			id := fileIDs[i]
			file := fset.Get(id)
			lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: fileBag}})
			astFile := parser.ParseFile(fset, id, lx, parser.Options{Reporter: diag.BagReporter{Bag: fileBag}})

			asts[i] = astFile
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for i, astFile := range asts {
		files[fileIDs[i]] = astFile
	}
	for _, b := range bags {
		bag.Merge(b)
	}

	digest := treeDigest(fset)

	return &LoadResult{FileSet: fset, Files: files, Bag: bag, Digest: digest}, nil
}

// treeDigest combines every loaded file's content hash into one project
// digest, in file-load order so the result is deterministic.
func treeDigest(fset *source.FileSet) Digest {
	h := sha256.New()
	for _, f := range fset.All() {
		h.Write(f.Hash[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
