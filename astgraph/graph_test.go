package astgraph

import (
	"errors"
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitivity(t *testing.T) {
	for _, tc := range []struct {
		name  string
		edges [][2]int
		nodes int
		want  float64
	}{
		{"Triangle", [][2]int{{0, 1}, {0, 2}, {1, 2}}, 3, 1},
		{"Path", [][2]int{{0, 1}, {1, 2}}, 3, 0},
		{"TriangleWithTail", [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}}, 4, 0.6},
		{"Single", nil, 1, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			g := newGraph()
			for i := 0; i < tc.nodes; i++ {
				g.addNode("Ident")
			}
			for _, e := range tc.edges {
				g.addEdge(g.order[e[0]], g.order[e[1]])
			}
			assert.InDelta(t, tc.want, g.transitivity(), 1e-9)
		})
	}
}

func TestAnalyze_Cyclic(t *testing.T) {
	g := newGraph()
	a, b := g.addNode("BlockStmt"), g.addNode("IfStmt")
	g.addEdge(a, b)
	g.addEdge(b, a)

	_, err := Analyze(g)
	if !errors.Is(err, ErrCyclic) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAnalyze_Empty(t *testing.T) {
	_, err := Analyze(newGraph())
	if !errors.Is(err, ErrEmptyGraph) {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestFromNode_SkipsNilFields(t *testing.T) {
	// Doc, Type and Comment are nil in this spec.
	spec := &ast.ValueSpec{
		Names:  []*ast.Ident{ast.NewIdent("x")},
		Values: []ast.Expr{&ast.BasicLit{Value: "1"}},
	}
	g := FromNode(spec)
	require.Equal(t, 3, g.Nodes())
	assert.Equal(t, 2, g.Edges())
	assert.Equal(t, []string{"BasicLit", "Ident", "ValueSpec"}, g.nodeKinds())
}
