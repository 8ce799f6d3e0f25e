package present

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildOverlay_StepPanels(t *testing.T) {
	paths := []Path{{
		Steps: []PathStep{
			{From: "p1", FromName: "Attention", To: "s1", ToName: "Encoder", Relation: "describes"},
			{From: "s1", FromName: "Encoder", To: "f1", ToName: "encode()", Relation: "implements"},
		},
	}}

	panels := BuildOverlay(paths, nil)
	require.Len(t, panels, 1)
	panel := panels[0]
	assert.False(t, panel.Fallback)
	require.Len(t, panel.Entries, 3, "two steps plus the terminal marker")

	assert.Equal(t, 1, panel.Entries[0].Number)
	assert.Equal(t, "Attention", panel.Entries[0].Label)
	assert.Equal(t, "describes", panel.Entries[0].Relation)

	last := panel.Entries[2]
	assert.True(t, last.Reached)
	assert.Equal(t, "encode()", last.Label)
	assert.Empty(t, last.Relation)
}

func TestBuildOverlay_NodeChainFallback(t *testing.T) {
	labels := map[string]string{"a": "Alpha", "b": "Beta"}
	paths := []Path{{Nodes: []string{"a", "b", "c"}}}

	panels := BuildOverlay(paths, func(id string) string {
		if l, ok := labels[id]; ok {
			return l
		}
		return id
	})
	require.Len(t, panels, 1)
	panel := panels[0]
	assert.True(t, panel.Fallback)
	require.Len(t, panel.Entries, 3)
	assert.Equal(t, "Alpha", panel.Entries[0].Label)
	assert.Equal(t, "c", panel.Entries[2].Label, "unknown ids fall back to the raw id")
	assert.True(t, panel.Entries[2].Reached)
}

func TestBuildOverlay_EnumeratesEveryPath(t *testing.T) {
	paths := []Path{
		{Nodes: []string{"a", "b"}},
		{Steps: []PathStep{{From: "x", To: "y", Relation: "uses"}}},
		{},
	}
	panels := BuildOverlay(paths, nil)
	assert.Len(t, panels, 3, "every supplied path gets a panel, even empty ones")
}

func TestFormatPanel(t *testing.T) {
	step := BuildOverlay([]Path{{
		Steps: []PathStep{{FromName: "A", ToName: "B", Relation: "implements"}},
	}}, nil)[0]
	assert.Equal(t, "1. A --implements-->\n2. B (reached)", FormatPanel(step))

	chain := BuildOverlay([]Path{{Nodes: []string{"a", "b"}}}, nil)[0]
	assert.Equal(t, "a → b", FormatPanel(chain))
}
