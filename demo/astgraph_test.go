package demo_test

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ks888/seqgrid/astgraph"
	"github.com/ks888/seqgrid/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var simpleDir = filepath.Join("..", "astgraph", "testdata", "simple")

func TestASTGraphAction(t *testing.T) {
	out := &strings.Builder{}
	csv := &strings.Builder{}
	err := demo.ASTGraphAction(context.Background(), []string{simpleDir}, demo.ASTGraphOptions{Out: out, CSV: csv})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out.String(), "Aggregate Statistics:\nFiles: 2\nTotal Nodes: 8\nTotal Edges: 6\n"), "unexpected output: %s", out.String())
	assert.Equal(t, 3, strings.Count(csv.String(), "\n"))
}

func TestASTGraphAction_NoSource(t *testing.T) {
	nogo := filepath.Join("..", "astgraph", "testdata", "nogo")
	err := demo.ASTGraphAction(context.Background(), []string{nogo}, demo.ASTGraphOptions{Out: &strings.Builder{}})
	assert.True(t, errors.Is(err, astgraph.ErrNoSource), "unexpected error: %v", err)
}

func TestASTGraphAction_InvalidOptions(t *testing.T) {
	err := demo.ASTGraphAction(context.Background(), []string{simpleDir}, demo.ASTGraphOptions{})
	assert.True(t, errors.Is(err, demo.ErrInvalidOptions))
}

func TestASTGraphAction_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := &strings.Builder{}
	err := demo.ASTGraphAction(ctx, []string{simpleDir}, demo.ASTGraphOptions{Out: out})
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Empty(t, out.String())
}
