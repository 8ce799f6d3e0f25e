package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func step(n int) *int { return &n }

func TestBuild_EmptyTrace(t *testing.T) {
	nodes, edges := Build(Result{})
	assert.NotNil(t, nodes)
	assert.NotNil(t, edges)
	assert.Empty(t, nodes)
	assert.Empty(t, edges)
}

func TestBuild_SortsByStep(t *testing.T) {
	result := Result{Nodes: []InputNode{
		{ID: "n2", Kind: KindOperation, Label: "compute", Step: step(2)},
		{ID: "n0", Kind: KindStart, Label: "start", Step: step(0)},
		{ID: "n1", Kind: KindAssignment, Label: "assign", Step: step(1)},
	}}

	nodes, _ := Build(result)
	require.Len(t, nodes, 3)
	assert.Equal(t, "n0", nodes[0].ID)
	assert.Equal(t, "n1", nodes[1].ID)
	assert.Equal(t, "n2", nodes[2].ID)
}

func TestBuild_MissingStepsSortLastStably(t *testing.T) {
	result := Result{Nodes: []InputNode{
		{ID: "x", Kind: KindCall, Label: "first unordered"},
		{ID: "n1", Kind: KindAssignment, Label: "assign", Step: step(1)},
		{ID: "y", Kind: KindCall, Label: "second unordered"},
		{ID: "n0", Kind: KindStart, Label: "start", Step: step(0)},
	}}

	nodes, _ := Build(result)
	require.Len(t, nodes, 4)
	assert.Equal(t, []string{"n0", "n1", "x", "y"},
		[]string{nodes[0].ID, nodes[1].ID, nodes[2].ID, nodes[3].ID})
}

func TestBuild_SingleColumnLayout(t *testing.T) {
	result := Result{Nodes: []InputNode{
		{ID: "a", Kind: KindStart, Step: step(0)},
		{ID: "b", Kind: KindReturn, Step: step(1)},
	}}

	nodes, _ := Build(result)
	require.Len(t, nodes, 2)
	assert.Equal(t, nodes[0].X, nodes[1].X, "single column: constant horizontal position")
	assert.Equal(t, 0.0, nodes[0].Y)
	assert.Equal(t, rowHeight, nodes[1].Y)
	assert.Equal(t, 0, nodes[0].Sequence)
	assert.Equal(t, 1, nodes[1].Sequence)
}

func TestBuild_NodeStyling(t *testing.T) {
	result := Result{Nodes: []InputNode{
		{ID: "s", Kind: KindStart, Label: "START", Value: "Function begins execution", Step: step(0)},
		{ID: "e", Kind: KindError, Label: "Error", Value: "None", Step: step(1)},
		{ID: "u", Kind: NodeKind("mystery"), Label: "?", Step: step(2)},
	}}

	nodes, _ := Build(result)
	require.Len(t, nodes, 3)
	assert.Equal(t, nodeColors[KindStart], nodes[0].Color)
	assert.Equal(t, "Function begins execution", nodes[0].Value)
	assert.Equal(t, nodeColors[KindError], nodes[1].Color)
	assert.Empty(t, nodes[1].Value, "null sentinels suppress the value line")
	assert.Equal(t, colorNeutral, nodes[2].Color, "unknown kinds fall back to neutral")
}

func TestBuild_EdgeStyling(t *testing.T) {
	result := Result{
		Nodes: []InputNode{
			{ID: "a", Kind: KindStart, Step: step(0)},
			{ID: "b", Kind: KindAssignment, Step: step(1)},
			{ID: "c", Kind: KindError, Step: step(2)},
		},
		Edges: []InputEdge{
			{Source: "a", Target: "b", Kind: KindThen},
			{Source: "b", Target: "c", Kind: KindErrorFlow},
			{Source: "a", Target: "c", Kind: EdgeKind("custom")},
		},
	}

	_, edges := Build(result)
	require.Len(t, edges, 3)

	then := edges[0]
	assert.True(t, then.Animated)
	assert.Equal(t, "↓", then.Display)

	errEdge := edges[1]
	assert.False(t, errEdge.Animated)
	assert.Equal(t, edgeColors[KindErrorFlow], errEdge.Color)
	assert.Equal(t, "error", errEdge.Display, "non-then kinds display their name literally")

	custom := edges[2]
	assert.Equal(t, colorNeutral, custom.Color)
	assert.Equal(t, "custom", custom.Display)
}

func TestBuild_EdgeOrderPreserved(t *testing.T) {
	result := Result{
		Nodes: []InputNode{
			{ID: "a", Kind: KindStart, Step: step(0)},
			{ID: "b", Kind: KindReturn, Step: step(1)},
		},
		Edges: []InputEdge{
			{Source: "b", Target: "a", Kind: KindReturns},
			{Source: "a", Target: "b", Kind: KindThen},
			{Source: "a", Target: "b", Kind: KindThen}, // no deduplication
		},
	}

	_, edges := Build(result)
	require.Len(t, edges, 3)
	assert.Equal(t, "trace-e0", edges[0].ID)
	assert.Equal(t, "trace-e1", edges[1].ID)
	assert.Equal(t, "trace-e2", edges[2].ID)
	assert.Equal(t, KindReturns, edges[0].Kind)
}
