package export

import (
	"fmt"
	"strings"

	"github.com/ddc002021/hackathon/internal/present"
	"github.com/ddc002021/hackathon/internal/trace"
)

// GenerateMermaid produces a Mermaid graph TD diagram from a styled
// presentation state. Node fills become classDefs; on-path edges use
// thick arrows, dimmed edges dotted ones.
func GenerateMermaid(state present.PresentationState) string {
	// Node → short ID mapping for Mermaid (alphanumeric only).
	nodeIDs := make(map[string]string)
	nextID := 0
	getID := func(id string) string {
		if short, ok := nodeIDs[id]; ok {
			return short
		}
		short := fmt.Sprintf("N%d", nextID)
		nextID++
		nodeIDs[id] = short
		return short
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	// One classDef per distinct fill, in first-seen order.
	classes := make(map[string]string)
	var classOrder []string
	classFor := func(fill string) string {
		if c, ok := classes[fill]; ok {
			return c
		}
		c := fmt.Sprintf("c%d", len(classes))
		classes[fill] = c
		classOrder = append(classOrder, fill)
		return c
	}

	for _, n := range state.Nodes {
		label := n.Label
		if label == "" {
			label = n.ID
		}
		fmt.Fprintf(&sb, "  %s[\"%.40s\"]:::%s\n", getID(n.ID), escapeMermaid(label), classFor(n.Style.Fill))
	}

	for _, e := range state.Edges {
		arrow := "-->"
		switch {
		case e.Style.OnPath:
			arrow = "==>"
		case e.Style.Dimmed:
			arrow = "-.->"
		}
		if e.Style.ShowLabel && e.Label != "" {
			fmt.Fprintf(&sb, "  %s %s|%s| %s\n", getID(e.Source), arrow, escapeMermaid(e.Label), getID(e.Target))
		} else {
			fmt.Fprintf(&sb, "  %s %s %s\n", getID(e.Source), arrow, getID(e.Target))
		}
	}

	for _, fill := range classOrder {
		fmt.Fprintf(&sb, "  classDef %s fill:%s\n", classes[fill], fill)
	}

	return sb.String()
}

// GenerateTraceMermaid renders an execution trace as a top-down
// Mermaid flowchart. Sequence order is already baked into the node
// slice by the builder.
func GenerateTraceMermaid(nodes []trace.Node, edges []trace.Edge) string {
	if len(nodes) == 0 {
		return "graph TD\n  empty[\"no trace\"]\n"
	}

	var sb strings.Builder
	sb.WriteString("graph TD\n")

	short := make(map[string]string, len(nodes))
	for i, n := range nodes {
		id := fmt.Sprintf("T%d", i)
		short[n.ID] = id
		label := n.Label
		if n.Value != "" {
			label += "\\n" + n.Value
		}
		fmt.Fprintf(&sb, "  %s[\"%.60s\"]\n", id, escapeMermaid(label))
		fmt.Fprintf(&sb, "  style %s fill:%s\n", id, n.Color)
	}

	for _, e := range edges {
		src, okSrc := short[e.Source]
		dst, okDst := short[e.Target]
		if !okSrc || !okDst {
			continue
		}
		if e.Kind == trace.KindThen {
			fmt.Fprintf(&sb, "  %s ==> %s\n", src, dst)
		} else {
			fmt.Fprintf(&sb, "  %s -->|%s| %s\n", src, escapeMermaid(e.Display), dst)
		}
	}

	return sb.String()
}

func escapeMermaid(s string) string {
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "|", "/")
	return s
}
