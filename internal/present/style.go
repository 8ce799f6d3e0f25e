package present

// Node palette. Keyed lookups fall back to explicit defaults rather
// than zero values so unknown upstream types still render.
const (
	colorEmphasis       = "#f59e0b" // highlighted by the active query
	colorPaperRoot      = "#7c3aed"
	colorPaperSection   = "#a78bfa"
	colorPaperAlgo      = "#c4b5fd"
	colorPaperDefault   = "#ede9fe"
	colorCouplingHigh   = "#ef4444"
	colorCouplingMed    = "#f97316"
	colorCouplingLow    = "#22c55e"
	colorFeature        = "#3b82f6"
	colorDependency     = "#06b6d4"
	colorFile           = "#64748b"
	colorFunction       = "#10b981"
	colorClass          = "#8b5cf6"
	colorModule         = "#eab308"
	colorNodeDefault    = "#94a3b8"
	colorEdgeCrossModal = "#8b5cf6"
	colorEdgeIntraPaper = "#ec4899"
	colorEdgeDefault    = "#94a3b8"
)

// codeTypeColors maps code-node types to their fill color outside the
// dependency view.
var codeTypeColors = map[NodeType]string{
	TypeFeature:    colorFeature,
	TypeDependency: colorDependency,
	TypeFile:       colorFile,
	TypeFunction:   colorFunction,
	TypeClass:      colorClass,
	TypeModule:     colorModule,
}

// Coupling bucket thresholds on summed in/out degree.
const (
	couplingHighAbove   = 4
	couplingMediumAbove = 2
)

// NodeStyle is the derived visual descriptor for one node.
type NodeStyle struct {
	Fill        string `json:"fill"`
	Stroke      string `json:"stroke"`
	StrokeWidth int    `json:"stroke_width"`
	Glow        bool   `json:"glow"`
	Emphasized  bool   `json:"emphasized"`
	Interactive bool   `json:"interactive"`
}

// EdgeStyle is the derived visual descriptor for one edge.
type EdgeStyle struct {
	Stroke      string `json:"stroke"`
	StrokeWidth int    `json:"stroke_width"`
	Animated    bool   `json:"animated"`
	Dimmed      bool   `json:"dimmed"`
	OnPath      bool   `json:"on_path"`
	ShowLabel   bool   `json:"show_label"`
}

// StyledNode pairs a snapshot node with its resolved style.
type StyledNode struct {
	GraphNode
	Style NodeStyle `json:"style"`
}

// StyledEdge pairs a snapshot edge with its resolved style.
type StyledEdge struct {
	GraphEdge
	Style EdgeStyle `json:"style"`
}

// ResolveNodeStyle derives the visual style for a node. Pure: same
// inputs always produce the same descriptor.
//
// Color precedence, first match wins:
//  1. highlighted node → emphasis color with glow
//  2. paper modality → color by paper type
//  3. dependency view → coupling bucket by summed degree
//  4. otherwise → color by code type, explicit default arm
func ResolveNodeStyle(node GraphNode, hl HighlightState, view View) NodeStyle {
	style := NodeStyle{
		StrokeWidth: 1,
		Stroke:      "#1e293b",
		Interactive: node.Semantic.Type == TypeFeature || node.Semantic.View == ViewFeatures,
	}

	switch {
	case hl.NodeIDs[node.ID]:
		style.Fill = colorEmphasis
		style.Stroke = colorEmphasis
		style.StrokeWidth = 3
		style.Glow = true
		style.Emphasized = true
	case node.Semantic.Modality == ModalityPaper:
		style.Fill = paperColor(node.Semantic.Type)
	case view == ViewDependencies:
		style.Fill = couplingColor(node.Coupling.Total())
	default:
		if c, ok := codeTypeColors[node.Semantic.Type]; ok {
			style.Fill = c
		} else {
			style.Fill = colorNodeDefault
		}
	}
	return style
}

func paperColor(t NodeType) string {
	switch t {
	case TypePaper:
		return colorPaperRoot
	case TypePaperSection:
		return colorPaperSection
	case TypePaperAlgorithm:
		return colorPaperAlgo
	default:
		return colorPaperDefault
	}
}

func couplingColor(total int) string {
	switch {
	case total > couplingHighAbove:
		return colorCouplingHigh
	case total > couplingMediumAbove:
		return colorCouplingMed
	default:
		return colorCouplingLow
	}
}

// ResolveEdgeStyle derives the visual style for an edge. pathEdges is
// the set built by PathEdgeIDs; pathActive reports whether any path is
// currently displayed, which dims edges off the path instead of hiding
// them.
//
// Stroke precedence: on-path → cross-modal → intra-paper → default.
func ResolveEdgeStyle(edge GraphEdge, pathEdges map[string]bool, pathActive bool) EdgeStyle {
	if pathEdges[edge.ID] {
		return EdgeStyle{
			Stroke:      colorEmphasis,
			StrokeWidth: 3,
			Animated:    true,
			OnPath:      true,
			ShowLabel:   edge.Label != "",
		}
	}

	style := EdgeStyle{
		StrokeWidth: 2,
		Animated:    edge.Animated,
		Dimmed:      pathActive,
	}
	switch {
	case edge.CrossModal:
		style.Stroke = colorEdgeCrossModal
	case edge.IntraPaper:
		style.Stroke = colorEdgeIntraPaper
	default:
		style.Stroke = colorEdgeDefault
	}
	return style
}
