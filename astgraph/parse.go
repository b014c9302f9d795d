package astgraph

import (
	"fmt"
	"go/build"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"

	"github.com/ks888/seqgrid/common/log"
)

// SourceFiles expands the specified paths into Go source files. A directory is expanded into the
// files of its package, tests included. A directory without Go files is skipped.
func SourceFiles(ctxt *build.Context, paths []string) ([]string, error) {
	var files []string
	for _, path := range paths {
		fi, err := os.Stat(path)
		if err != nil {
			return nil, err
		}
		if !fi.IsDir() {
			files = append(files, path)
			continue
		}

		pkg, err := ctxt.ImportDir(path, build.IgnoreVendor)
		if err != nil {
			if _, ok := err.(*build.NoGoError); ok {
				log.Debugf("no go files in %s\n", path)
				continue
			}
			return nil, err
		}

		var names []string
		names = append(names, pkg.GoFiles...)
		names = append(names, pkg.CgoFiles...)
		names = append(names, pkg.TestGoFiles...)
		names = append(names, pkg.XTestGoFiles...)
		for _, name := range names {
			files = append(files, filepath.Join(path, name))
		}
	}
	return files, nil
}

// ParseFile parses the Go file and builds its graph. The syntax error is logged and the partial tree is used if any.
func ParseFile(fset *token.FileSet, filename string) (*Graph, error) {
	f, err := parser.ParseFile(fset, filename, nil, 0)
	if err != nil {
		if f == nil {
			return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
		}
		log.Printf("failed to parse %s: %v\n", filename, err)
	}
	return FromNode(f), nil
}

// AnalyzeFile parses and analyzes the Go file.
func AnalyzeFile(fset *token.FileSet, filename string) (Stats, error) {
	g, err := ParseFile(fset, filename)
	if err != nil {
		return Stats{}, err
	}

	s, err := Analyze(g)
	if err != nil {
		return Stats{}, fmt.Errorf("%s: %w", filename, err)
	}
	s.File = filename
	log.Debugf("%s: %d nodes, %d edges, max depth %d\n", filename, s.Nodes, s.Edges, s.MaxDepth)
	return s, nil
}
