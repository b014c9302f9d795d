package demo

import (
	"context"
	"fmt"
	"go/build"
	"go/token"
	"io"

	"github.com/ks888/seqgrid/astgraph"
)

// ASTGraphOptions represents the options which the astgraph action accepts.
type ASTGraphOptions struct {
	Out io.Writer
	// CSV receives one row per file. Optional.
	CSV          io.Writer
	BuildContext *build.Context
}

// ASTGraphAction analyzes the syntax tree graphs of the Go files (or package directories) in `paths`
// and prints the aggregate statistics.
func ASTGraphAction(ctx context.Context, paths []string, options ASTGraphOptions) error {
	if options.Out == nil {
		return fmt.Errorf("no output writer: %w", ErrInvalidOptions)
	}
	ctxt := options.BuildContext
	if ctxt == nil {
		ctxt = &build.Default
	}

	files, err := astgraph.SourceFiles(ctxt, paths)
	if err != nil {
		return err
	}

	fset := token.NewFileSet()
	var results []astgraph.Stats
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		s, err := astgraph.AnalyzeFile(fset, file)
		if err != nil {
			return err
		}
		results = append(results, s)
	}

	summary, err := astgraph.Summarize(results)
	if err != nil {
		return err
	}

	if options.CSV != nil {
		if err := astgraph.WriteCSV(options.CSV, results); err != nil {
			return fmt.Errorf("failed to write the csv: %w", err)
		}
	}
	if _, err := summary.WriteTo(options.Out); err != nil {
		return fmt.Errorf("failed to print the summary: %w", err)
	}
	return nil
}
