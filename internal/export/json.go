package export

import (
	"encoding/json"
	"time"

	"github.com/ddc002021/hackathon/internal/present"
)

// StateExport is the top-level JSON export of a styled presentation
// state, shaped for a rendering surface.
type StateExport struct {
	View       present.View          `json:"view"`
	ExportedAt string                `json:"exportedAt"`
	Nodes      []present.StyledNode  `json:"nodes"`
	Edges      []present.StyledEdge  `json:"edges"`
	Panels     []present.PathPanel   `json:"panels,omitempty"`
	Stats      present.SnapshotStats `json:"stats"`
}

// ExportState builds a StateExport from a presentation state. The
// result is deterministic apart from the timestamp.
func ExportState(state present.PresentationState, now time.Time) *StateExport {
	snap := present.Snapshot{}
	for _, n := range state.Nodes {
		snap.Nodes = append(snap.Nodes, n.GraphNode)
	}
	for _, e := range state.Edges {
		snap.Edges = append(snap.Edges, e.GraphEdge)
	}

	return &StateExport{
		View:       state.View,
		ExportedAt: now.UTC().Format(time.RFC3339),
		Nodes:      state.Nodes,
		Edges:      state.Edges,
		Panels:     state.Panels,
		Stats:      present.Stats(snap),
	}
}

// Marshal renders the export as indented JSON.
func (e *StateExport) Marshal() ([]byte, error) {
	return json.MarshalIndent(e, "", "  ")
}
