// Package netdesc emits a small OMNeT++-style NED network description
// for an external simulator, given a topology. It supplements a feature
// present in the original implementation's simulator/ network
// generators (star, line, arbitrary-mesh) that spec.md's distillation
// dropped; the CORE never imports it.
package netdesc

import (
	"fmt"
	"io"

	"github.com/wandstem/tdmasched/internal/graph"
)

// Write emits a NED network definition named netName for t to w: one
// submodule per node, one bidirectional "wireless" connection per edge.
func Write(w io.Writer, t *graph.Topology, netName string) error {
	nodes := t.Nodes()

	if _, err := fmt.Fprintf(w, "network %s\n{\n    submodules:\n", netName); err != nil {
		return err
	}
	for _, n := range nodes {
		if _, err := fmt.Fprintf(w, "        node%d: MeshNode {\n            address = %d;\n        }\n", n, n); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintln(w, "    connections:"); err != nil {
		return err
	}
	for _, e := range t.Edges() {
		if _, err := fmt.Fprintf(w, "        node%d.wireless++ <--> node%d.wireless++;\n", e.U, e.V); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
