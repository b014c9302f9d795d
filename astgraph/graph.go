// Package astgraph turns Go syntax trees into parent->child graphs and computes
// their shape statistics: degrees, leaf depths, transitivity and edge density.
package astgraph

import (
	"fmt"
	"go/ast"
	"strings"

	"golang.org/x/tools/go/ast/astutil"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
)

// Graph is the directed graph of the syntax tree. An edge goes from a node to each of its children.
type Graph struct {
	g     *simple.DirectedGraph
	kinds map[int64]string
	order []graph.Node // pre-order
}

func newGraph() *Graph {
	return &Graph{g: simple.NewDirectedGraph(), kinds: make(map[int64]string)}
}

func (g *Graph) addNode(kind string) graph.Node {
	n := g.g.NewNode()
	g.g.AddNode(n)
	g.kinds[n.ID()] = kind
	g.order = append(g.order, n)
	return n
}

func (g *Graph) addEdge(from, to graph.Node) {
	g.g.SetEdge(g.g.NewEdge(from, to))
}

// FromNode builds the graph of the tree rooted at `root`. Every non-nil node becomes a vertex labeled by its type (e.g. `FuncDecl`).
func FromNode(root ast.Node) *Graph {
	g := newGraph()
	var stack []graph.Node
	astutil.Apply(root, func(c *astutil.Cursor) bool {
		if c.Node() == nil {
			return false // the empty field of the parent, such as the nil Doc.
		}

		n := g.addNode(kindOf(c.Node()))
		if len(stack) > 0 {
			g.addEdge(stack[len(stack)-1], n)
		}
		stack = append(stack, n)
		return true
	}, func(c *astutil.Cursor) bool {
		stack = stack[:len(stack)-1]
		return true
	})
	return g
}

func kindOf(n ast.Node) string {
	return strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast.")
}

// Nodes returns the number of nodes.
func (g *Graph) Nodes() int {
	return len(g.order)
}

// Edges returns the number of edges.
func (g *Graph) Edges() int {
	return g.g.Edges().Len()
}

func (g *Graph) root() graph.Node {
	if len(g.order) == 0 {
		return nil
	}
	return g.order[0]
}

// degree is in-degree + out-degree.
func (g *Graph) degree(id int64) int {
	return g.g.From(id).Len() + g.g.To(id).Len()
}

func (g *Graph) isLeaf(id int64) bool {
	return g.g.From(id).Len() == 0
}

// neighbors ignores the edge direction.
func (g *Graph) neighbors(id int64) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	for _, nodes := range []graph.Nodes{g.g.From(id), g.g.To(id)} {
		for nodes.Next() {
			nid := nodes.Node().ID()
			if _, ok := seen[nid]; ok {
				continue
			}
			seen[nid] = struct{}{}
			ids = append(ids, nid)
		}
	}
	return ids
}
