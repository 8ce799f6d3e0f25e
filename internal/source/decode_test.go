package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ddc002021/hackathon/internal/present"
)

func intp(n int) *int { return &n }

func TestDecodeSnapshot_NodeDataBag(t *testing.T) {
	wire := WireGraph{
		Nodes: []WireNode{
			{
				ID: "feature_1",
				Data: WireNodeData{
					Label:    "Tokenizer",
					Type:     "feature",
					Modality: "code",
					View:     "features",
				},
				Position: present.Position{X: 200, Y: 80},
			},
			{
				ID: "dep_1",
				Data: WireNodeData{
					Label:     "Parser",
					Type:      "dependency",
					Modality:  "code",
					InDegree:  intp(3),
					OutDegree: intp(2),
				},
			},
			{
				ID:   "paper_1",
				Data: WireNodeData{Label: "Abstract", Type: "paper_section", Modality: "paper"},
			},
		},
	}

	snap := DecodeSnapshot(wire, present.ViewDependencies)
	require.Len(t, snap.Nodes, 3)

	feat := snap.Nodes[0]
	assert.Equal(t, present.TypeFeature, feat.Semantic.Type)
	assert.Equal(t, present.ModalityCode, feat.Semantic.Modality)
	assert.Equal(t, present.ViewFeatures, feat.Semantic.View, "node-level view wins over the snapshot view")
	assert.Equal(t, 200.0, feat.Position.X)

	dep := snap.Nodes[1]
	assert.Equal(t, 3, dep.Coupling.InDegree)
	assert.Equal(t, 2, dep.Coupling.OutDegree)
	assert.Equal(t, present.ViewDependencies, dep.Semantic.View, "missing node view inherits the snapshot view")

	paper := snap.Nodes[2]
	assert.Equal(t, present.ModalityPaper, paper.Semantic.Modality)
}

func TestDecodeSnapshot_MissingDegreesDefaultToZero(t *testing.T) {
	wire := WireGraph{Nodes: []WireNode{
		{ID: "n", Data: WireNodeData{Type: "feature", Modality: "code"}},
	}}

	snap := DecodeSnapshot(wire, present.ViewDependencies)
	require.Len(t, snap.Nodes, 1)
	assert.Equal(t, 0, snap.Nodes[0].Coupling.Total())
}

func TestDecodeSnapshot_EdgeIDNormalized(t *testing.T) {
	wire := WireGraph{Edges: []WireEdge{
		{ID: "whatever", Source: "a", Target: "b", CrossModal: true, Animated: true},
	}}

	snap := DecodeSnapshot(wire, present.ViewFeatures)
	require.Len(t, snap.Edges, 1)
	assert.Equal(t, "a-b", snap.Edges[0].ID, "edge ids follow the source-target form path overlays match")
	assert.True(t, snap.Edges[0].CrossModal)
	assert.True(t, snap.Edges[0].Animated)
}

func TestDecodeSnapshot_UnknownModalityDefaultsToCode(t *testing.T) {
	wire := WireGraph{Nodes: []WireNode{
		{ID: "n", Data: WireNodeData{Type: "feature", Modality: "hologram"}},
	}}

	snap := DecodeSnapshot(wire, present.ViewFeatures)
	assert.Equal(t, present.ModalityCode, snap.Nodes[0].Semantic.Modality)
}

func TestHighlight(t *testing.T) {
	res := QueryResult{
		HighlightedNodes: []string{"a", "b"},
		Paths:            []present.Path{{Nodes: []string{"a", "b"}}},
	}

	hl := Highlight(res)
	assert.True(t, hl.NodeIDs["a"])
	assert.True(t, hl.NodeIDs["b"])
	assert.Len(t, hl.Paths, 1)
}
