package astgraph

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/topo"
	"gonum.org/v1/gonum/graph/traverse"
	"gonum.org/v1/gonum/stat"
)

// Stats represents the shape of one syntax tree graph.
type Stats struct {
	File  string
	Nodes int
	Edges int

	// Degrees are sorted in descending order.
	Degrees        []int
	MaxDegree      int
	MinDegree      int
	MeanDegree     float64
	DegreeVariance float64 // population variance

	Transitivity float64

	// Depths are the depths of the leaves from the root, in pre-order.
	Depths    []int
	MaxDepth  int
	MinDepth  int
	MeanDepth float64
	// LongestPath is the number of edges on the longest path. Same as MaxDepth for a tree.
	LongestPath int

	EdgeDensity float64
	// NodeKinds are the distinct node types, sorted.
	NodeKinds []string
}

// Analyze computes the statistics of the graph.
func Analyze(g *Graph) (Stats, error) {
	if g.Nodes() == 0 {
		return Stats{}, ErrEmptyGraph
	}

	longest, err := g.longestPath()
	if err != nil {
		return Stats{}, err
	}

	s := Stats{
		Nodes:        g.Nodes(),
		Edges:        g.Edges(),
		Transitivity: g.transitivity(),
		LongestPath:  longest,
		EdgeDensity:  g.edgeDensity(),
		NodeKinds:    g.nodeKinds(),
	}

	s.Degrees = make([]int, 0, len(g.order))
	for _, n := range g.order {
		s.Degrees = append(s.Degrees, g.degree(n.ID()))
	}
	sort.Sort(sort.Reverse(sort.IntSlice(s.Degrees)))
	s.MaxDegree, s.MinDegree = s.Degrees[0], s.Degrees[len(s.Degrees)-1]
	s.MeanDegree, s.DegreeVariance = stat.PopMeanVariance(toFloats(s.Degrees), nil)

	s.Depths = g.leafDepths()
	s.MaxDepth, s.MinDepth = maxMin(s.Depths)
	s.MeanDepth = stat.Mean(toFloats(s.Depths), nil)
	return s, nil
}

func (g *Graph) leafDepths() []int {
	depths := make(map[int64]int, len(g.order))
	var bf traverse.BreadthFirst
	bf.Walk(g.g, g.root(), func(n graph.Node, d int) bool {
		depths[n.ID()] = d
		return false
	})

	var leaves []int
	for _, n := range g.order {
		if g.isLeaf(n.ID()) {
			leaves = append(leaves, depths[n.ID()])
		}
	}
	return leaves
}

func (g *Graph) longestPath() (int, error) {
	sorted, err := topo.Sort(g.g)
	if err != nil {
		return 0, fmt.Errorf("%v: %w", err, ErrCyclic)
	}

	dist := make(map[int64]int, len(sorted))
	longest := 0
	for _, n := range sorted {
		to := g.g.From(n.ID())
		for to.Next() {
			c := to.Node().ID()
			if d := dist[n.ID()] + 1; d > dist[c] {
				dist[c] = d
				if d > longest {
					longest = d
				}
			}
		}
	}
	return longest, nil
}

// transitivity is 3 * triangles / connected triples of the undirected view.
func (g *Graph) transitivity() float64 {
	var triangles, triads int
	for _, n := range g.order {
		nbrs := g.neighbors(n.ID())
		triads += len(nbrs) * (len(nbrs) - 1)
		for i, u := range nbrs {
			for _, w := range nbrs[i+1:] {
				if g.g.HasEdgeBetween(u, w) {
					triangles += 2
				}
			}
		}
	}
	if triads == 0 {
		return 0
	}
	return float64(triangles) / float64(triads)
}

func (g *Graph) edgeDensity() float64 {
	n := g.Nodes()
	if n <= 1 {
		return 0
	}
	return float64(g.Edges()) / float64(n*(n-1))
}

func (g *Graph) nodeKinds() []string {
	set := make(map[string]struct{})
	for _, k := range g.kinds {
		set[k] = struct{}{}
	}
	kinds := make([]string, 0, len(set))
	for k := range set {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

func toFloats(vs []int) []float64 {
	fs := make([]float64, len(vs))
	for i, v := range vs {
		fs[i] = float64(v)
	}
	return fs
}

func maxMin(vs []int) (int, int) {
	hi, lo := vs[0], vs[0]
	for _, v := range vs[1:] {
		if v > hi {
			hi = v
		}
		if v < lo {
			lo = v
		}
	}
	return hi, lo
}
