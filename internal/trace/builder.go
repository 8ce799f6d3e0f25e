package trace

import (
	"fmt"
	"sort"
)

// nullSentinels are value strings that stand for "no value"; the value
// line is suppressed for them rather than rendered literally.
var nullSentinels = map[string]bool{
	"":     true,
	"None": true,
	"null": true,
}

// Build transforms a flat trace result into an ordered, styled
// subgraph. An empty or missing node list yields empty collections:
// callers render an explicit "no trace" placeholder, not an error.
//
// Nodes are stable-sorted by step ascending; nodes without a step sort
// after all numbered ones, keeping their original relative order. Each
// node gets a vertical slot at fixed spacing in a single column. Edge
// output order matches input order, with index-based ids.
func Build(result Result) ([]Node, []Edge) {
	if len(result.Nodes) == 0 {
		return []Node{}, []Edge{}
	}

	sorted := append([]InputNode(nil), result.Nodes...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Step, sorted[j].Step
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return *a < *b
		}
	})

	nodes := make([]Node, 0, len(sorted))
	for i, in := range sorted {
		color, ok := nodeColors[in.Kind]
		if !ok {
			color = colorNeutral
		}
		value := in.Value
		if nullSentinels[value] {
			value = ""
		}
		nodes = append(nodes, Node{
			ID:       in.ID,
			Kind:     in.Kind,
			Label:    in.Label,
			Value:    value,
			Color:    color,
			X:        columnX,
			Y:        float64(i) * rowHeight,
			Sequence: i,
		})
	}

	edges := make([]Edge, 0, len(result.Edges))
	for i, in := range result.Edges {
		color, ok := edgeColors[in.Kind]
		if !ok {
			color = colorNeutral
		}
		display := string(in.Kind)
		animated := false
		if in.Kind == KindThen {
			display = "↓"
			animated = true
		}
		edges = append(edges, Edge{
			ID:       fmt.Sprintf("trace-e%d", i),
			Source:   in.Source,
			Target:   in.Target,
			Kind:     in.Kind,
			Display:  display,
			Color:    color,
			Animated: animated,
		})
	}

	return nodes, edges
}
