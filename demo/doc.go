// Package demo implements the bodies of the seqgrid, arithloop and astgraph programs.
// Each action writes its whole output to the writer in its options.
package demo
