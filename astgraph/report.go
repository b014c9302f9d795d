package astgraph

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

var csvHeaders = []string{
	"file", "nodes", "edges",
	"degrees", "max_degree", "min_degree", "mean_degree", "degree_variance",
	"transitivity",
	"depths", "max_depth", "min_depth", "mean_depth", "longest_path",
	"edge_density", "node_kinds",
}

// WriteCSV writes the header and one row per file. List columns are space-separated.
func WriteCSV(w io.Writer, results []Stats) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeaders); err != nil {
		return err
	}
	for _, s := range results {
		row := []string{
			s.File,
			strconv.Itoa(s.Nodes),
			strconv.Itoa(s.Edges),
			joinInts(s.Degrees),
			strconv.Itoa(s.MaxDegree),
			strconv.Itoa(s.MinDegree),
			formatFloat(s.MeanDegree),
			formatFloat(s.DegreeVariance),
			formatFloat(s.Transitivity),
			joinInts(s.Depths),
			strconv.Itoa(s.MaxDepth),
			strconv.Itoa(s.MinDepth),
			formatFloat(s.MeanDepth),
			strconv.Itoa(s.LongestPath),
			formatFloat(s.EdgeDensity),
			strings.Join(s.NodeKinds, " "),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary aggregates the statistics of the files.
type Summary struct {
	Files               int
	TotalNodes          int
	TotalEdges          int
	AverageTransitivity float64
	MaxDepth            int
	AverageDegreeMean   float64
	AverageEdgeDensity  float64
}

// Summarize aggregates the results. At least one result is required.
func Summarize(results []Stats) (Summary, error) {
	if len(results) == 0 {
		return Summary{}, ErrNoSource
	}

	var transitivities, degreeMeans, densities []float64
	sum := Summary{Files: len(results)}
	for _, s := range results {
		sum.TotalNodes += s.Nodes
		sum.TotalEdges += s.Edges
		if s.MaxDepth > sum.MaxDepth {
			sum.MaxDepth = s.MaxDepth
		}
		transitivities = append(transitivities, s.Transitivity)
		degreeMeans = append(degreeMeans, s.MeanDegree)
		densities = append(densities, s.EdgeDensity)
	}
	sum.AverageTransitivity = stat.Mean(transitivities, nil)
	sum.AverageDegreeMean = stat.Mean(degreeMeans, nil)
	sum.AverageEdgeDensity = stat.Mean(densities, nil)
	return sum, nil
}

// WriteTo prints the summary.
func (s Summary) WriteTo(w io.Writer) (int64, error) {
	n, err := fmt.Fprintf(w, "Aggregate Statistics:\n"+
		"Files: %d\n"+
		"Total Nodes: %d\n"+
		"Total Edges: %d\n"+
		"Average Transitivity: %s\n"+
		"Max Depth: %d\n"+
		"Average Degree Mean: %s\n"+
		"Average Edge Density: %s\n",
		s.Files, s.TotalNodes, s.TotalEdges, formatFloat(s.AverageTransitivity),
		s.MaxDepth, formatFloat(s.AverageDegreeMean), formatFloat(s.AverageEdgeDensity))
	return int64(n), err
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 4, 64)
}

func joinInts(vs []int) string {
	strs := make([]string, len(vs))
	for i, v := range vs {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, " ")
}
