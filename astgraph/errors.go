package astgraph

import "errors"

var (
	// ErrEmptyGraph indicates the graph has no node to analyze.
	ErrEmptyGraph = errors.New("astgraph: empty graph")
	// ErrCyclic indicates the graph is not a tree (nor a DAG), so depths are undefined.
	ErrCyclic = errors.New("astgraph: graph has a cycle")
	// ErrNoSource indicates no Go file was found in the specified paths.
	ErrNoSource = errors.New("astgraph: no Go source found")
)
