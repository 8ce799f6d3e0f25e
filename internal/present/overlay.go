package present

import (
	"fmt"
	"strings"
)

// OverlayEntry is one numbered row of a path panel.
type OverlayEntry struct {
	Number   int    `json:"number"`
	Label    string `json:"label"`
	Relation string `json:"relation,omitempty"`
	Reached  bool   `json:"reached"`
}

// PathPanel is the overlay rendering of one traversal path: an ordered
// list of numbered entries ending with a terminal "reached" marker.
type PathPanel struct {
	Entries []OverlayEntry `json:"entries"`
	// Fallback is true when the path carried no step details and the
	// panel was built from the bare node chain.
	Fallback bool `json:"fallback"`
}

// BuildOverlay renders every supplied path into a panel. Paths with
// step details produce relation-labelled entries plus a terminal entry
// for the destination; paths with only a node chain fall back to plain
// node labels. nodeLabel resolves a node id to its display label and
// may be nil, in which case raw ids are shown.
func BuildOverlay(paths []Path, nodeLabel func(id string) string) []PathPanel {
	if nodeLabel == nil {
		nodeLabel = func(id string) string { return id }
	}

	panels := make([]PathPanel, 0, len(paths))
	for _, p := range paths {
		switch {
		case len(p.Steps) > 0:
			panels = append(panels, stepPanel(p.Steps))
		case len(p.Nodes) > 0:
			panels = append(panels, nodePanel(p.Nodes, nodeLabel))
		default:
			panels = append(panels, PathPanel{Fallback: true})
		}
	}
	return panels
}

func stepPanel(steps []PathStep) PathPanel {
	panel := PathPanel{}
	for i, s := range steps {
		label := s.FromName
		if label == "" {
			label = s.From
		}
		panel.Entries = append(panel.Entries, OverlayEntry{
			Number:   i + 1,
			Label:    label,
			Relation: s.Relation,
		})
	}
	last := steps[len(steps)-1]
	label := last.ToName
	if label == "" {
		label = last.To
	}
	panel.Entries = append(panel.Entries, OverlayEntry{
		Number:  len(steps) + 1,
		Label:   label,
		Reached: true,
	})
	return panel
}

func nodePanel(nodes []string, nodeLabel func(string) string) PathPanel {
	panel := PathPanel{Fallback: true}
	for i, id := range nodes {
		panel.Entries = append(panel.Entries, OverlayEntry{
			Number:  i + 1,
			Label:   nodeLabel(id),
			Reached: i == len(nodes)-1,
		})
	}
	return panel
}

// FormatPanel renders a panel as display text, one entry per line.
// Step entries show "N. label --relation-->"; the node-chain fallback
// joins labels with a directional separator.
func FormatPanel(panel PathPanel) string {
	var sb strings.Builder
	if panel.Fallback {
		labels := make([]string, len(panel.Entries))
		for i, e := range panel.Entries {
			labels[i] = e.Label
		}
		sb.WriteString(strings.Join(labels, " → "))
		return sb.String()
	}
	for _, e := range panel.Entries {
		if e.Reached {
			fmt.Fprintf(&sb, "%d. %s (reached)\n", e.Number, e.Label)
			continue
		}
		if e.Relation != "" {
			fmt.Fprintf(&sb, "%d. %s --%s-->\n", e.Number, e.Label, e.Relation)
		} else {
			fmt.Fprintf(&sb, "%d. %s -->\n", e.Number, e.Label)
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}
