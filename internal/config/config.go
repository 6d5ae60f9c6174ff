// Package config loads a plan.Request from a YAML file — the CLI's
// ambient configuration layer, never imported by the CORE.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wandstem/tdmasched/internal/graph"
	"github.com/wandstem/tdmasched/internal/plan"
	"github.com/wandstem/tdmasched/internal/router"
)

// PlanRequest is the on-disk shape decoded from YAML before being
// converted into a plan.Request. Edges and streams are plain two-element
// arrays for a terse, script-friendly file format.
type PlanRequest struct {
	Topology  [][2]int `yaml:"topology"`
	Streams   [][2]int `yaml:"streams"`
	SlotCount int      `yaml:"slotCount"`
	Multipath bool     `yaml:"multipath"`
	ExtraHops int      `yaml:"extraHops"`
}

// Load reads and decodes a PlanRequest from path.
func Load(path string) (PlanRequest, error) {
	var out PlanRequest
	data, err := os.ReadFile(path)
	if err != nil {
		return out, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return out, nil
}

// ToPlanRequest converts the decoded YAML shape into plan.Request,
// applying CLI overrides for slot count, multipath and extra hops when
// the caller provides them (a zero override means "use the file's
// value").
func (r PlanRequest) ToPlanRequest(slotCountOverride, extraHopsOverride int, multipathOverride *bool) plan.Request {
	edges := make([]graph.Edge, 0, len(r.Topology))
	for _, e := range r.Topology {
		edges = append(edges, graph.Edge{U: e[0], V: e[1]})
	}

	streams := make([]router.RequestedStream, 0, len(r.Streams))
	for _, s := range r.Streams {
		streams = append(streams, router.RequestedStream{Src: s[0], Dst: s[1]})
	}

	slotCount := r.SlotCount
	if slotCountOverride > 0 {
		slotCount = slotCountOverride
	}
	extraHops := r.ExtraHops
	if extraHopsOverride > 0 {
		extraHops = extraHopsOverride
	}
	multipath := r.Multipath
	if multipathOverride != nil {
		multipath = *multipathOverride
	}

	return plan.Request{
		TopologyEdges:    edges,
		RequestedStreams: streams,
		SlotCount:        slotCount,
		Multipath:        multipath,
		ExtraHops:        extraHops,
	}
}

// ToTopology builds just the graph.Topology half of a decoded file, for
// consumers (draw, netdesc) that don't need the stream list.
func (r PlanRequest) ToTopology() (*graph.Topology, error) {
	edges := make([]graph.Edge, 0, len(r.Topology))
	for _, e := range r.Topology {
		edges = append(edges, graph.Edge{U: e[0], V: e[1]})
	}
	return graph.NewTopology(edges)
}
