package source

import (
	"github.com/ddc002021/hackathon/internal/present"
)

// DecodeSnapshot converts a wire graph into the closed present model.
// Unknown modality strings default to code, missing degrees default to
// zero, and edge ids are normalized to the canonical "{source}-{target}"
// form path matching depends on.
func DecodeSnapshot(wire WireGraph, view present.View) present.Snapshot {
	snap := present.Snapshot{
		Nodes: make([]present.GraphNode, 0, len(wire.Nodes)),
		Edges: make([]present.GraphEdge, 0, len(wire.Edges)),
	}

	for _, wn := range wire.Nodes {
		snap.Nodes = append(snap.Nodes, decodeNode(wn, view))
	}
	for _, we := range wire.Edges {
		snap.Edges = append(snap.Edges, present.GraphEdge{
			ID:         present.EdgeID(we.Source, we.Target),
			Source:     we.Source,
			Target:     we.Target,
			Label:      we.Label,
			CrossModal: we.CrossModal,
			IntraPaper: we.IntraPaper,
			Animated:   we.Animated,
		})
	}
	return snap
}

func decodeNode(wn WireNode, view present.View) present.GraphNode {
	modality := present.ModalityCode
	if wn.Data.Modality == string(present.ModalityPaper) {
		modality = present.ModalityPaper
	}

	nodeView := view
	if wn.Data.View != "" {
		nodeView = present.View(wn.Data.View)
	}

	coupling := present.Coupling{}
	if wn.Data.InDegree != nil {
		coupling.InDegree = *wn.Data.InDegree
	}
	if wn.Data.OutDegree != nil {
		coupling.OutDegree = *wn.Data.OutDegree
	}

	return present.GraphNode{
		ID:          wn.ID,
		Label:       wn.Data.Label,
		Description: wn.Data.Description,
		Semantic: present.Semantics{
			Modality: modality,
			Type:     present.NodeType(wn.Data.Type),
			View:     nodeView,
		},
		Coupling: coupling,
		Position: wn.Position,
	}
}

// Highlight converts a query result into the engine's highlight state.
func Highlight(res QueryResult) present.HighlightState {
	return present.HighlightNodes(res.HighlightedNodes, res.Paths)
}
