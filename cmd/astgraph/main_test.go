package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ks888/seqgrid/common/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var simpleDir = filepath.Join("..", "..", "astgraph", "testdata", "simple")

func TestApp_Summary(t *testing.T) {
	logs := &strings.Builder{}
	log.SetOutput(logs)
	defer log.SetOutput(os.Stderr)

	out := &strings.Builder{}
	err := newApp(out).Run([]string{"astgraph", simpleDir})
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Total Nodes: 8\n")
	assert.Contains(t, out.String(), "Max Depth: 3\n")
	assert.Empty(t, logs.String())
}

func TestApp_CSV(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "results.csv")
	err := newApp(&strings.Builder{}).Run([]string{"astgraph", "--csv", csvPath, simpleDir})
	require.NoError(t, err)

	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	assert.Len(t, lines, 3) // header + 2 files
}

func TestApp_NoArgs(t *testing.T) {
	err := newApp(&strings.Builder{}).Run([]string{"astgraph"})
	assert.Error(t, err)
}
