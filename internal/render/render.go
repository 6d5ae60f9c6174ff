// Package render draws a graph.Topology to an image file via Graphviz.
// It is a pure I/O shell: the CORE never imports it, and it never
// imports the scheduler or router — topology visualization, per spec
// §1, is explicitly out of the CORE's scope.
package render

import (
	"context"
	"fmt"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"

	"github.com/wandstem/tdmasched/internal/graph"
)

// Topology renders t's nodes and edges to outPath, choosing the output
// format from its extension: ".png" gives PNG, ".svg" gives SVG, and any
// other extension (or none) gives PDF.
func Topology(t *graph.Topology, outPath string) error {
	gv := graphviz.New()
	defer gv.Close()

	g, err := gv.Graph(graphviz.Name("topology"), graphviz.UnDirected)
	if err != nil {
		return fmt.Errorf("render: create graph: %w", err)
	}
	defer g.Close()

	nodes := make(map[int]*cgraph.Node, len(t.Nodes()))
	for _, n := range t.Nodes() {
		name := strconv.Itoa(n)
		gn, err := g.CreateNodeByName(name)
		if err != nil {
			return fmt.Errorf("render: create node %s: %w", name, err)
		}
		nodes[n] = gn
	}

	for _, e := range t.Edges() {
		edgeName := fmt.Sprintf("%d-%d", e.U, e.V)
		if _, err := g.CreateEdgeByName(edgeName, nodes[e.U], nodes[e.V]); err != nil {
			return fmt.Errorf("render: create edge %s: %w", edgeName, err)
		}
	}

	format := formatFromExt(outPath)
	return gv.RenderFilename(context.Background(), g, format, outPath)
}

func formatFromExt(path string) graphviz.Format {
	switch ext(path) {
	case "png":
		return graphviz.PNG
	case "svg":
		return graphviz.SVG
	default:
		return graphviz.PDF
	}
}

func ext(path string) string {
	for i := len(path) - 1; i >= 0 && path[i] != '/'; i-- {
		if path[i] == '.' {
			return path[i+1:]
		}
	}
	return ""
}
