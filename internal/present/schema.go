package present

// --- Enums ---

// Modality identifies which side of the paper↔code graph a node came from.
type Modality string

const (
	ModalityPaper Modality = "paper"
	ModalityCode  Modality = "code"
)

// View identifies which presentation mode produced a graph snapshot.
type View string

const (
	ViewFeatures     View = "features"
	ViewDependencies View = "dependencies"
	ViewCrossModal   View = "cross_modal"
)

// NodeType classifies nodes within a snapshot. The set is open-ended:
// upstream analysis may emit types not listed here, and the style
// resolver maps anything unknown to an explicit default arm.
type NodeType string

const (
	TypePaper          NodeType = "paper"
	TypePaperSection   NodeType = "paper_section"
	TypePaperAlgorithm NodeType = "paper_algorithm"
	TypeFeature        NodeType = "feature"
	TypeDependency     NodeType = "dependency"
	TypeFile           NodeType = "file"
	TypeFunction       NodeType = "function"
	TypeClass          NodeType = "class"
	TypeModule         NodeType = "module"
	TypeConcept        NodeType = "concept"
	TypeComponent      NodeType = "component"
	TypeTechnique      NodeType = "technique"
)

// --- Models ---

// Position is a 2D coordinate supplied by the upstream layout.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Semantics is the closed, tagged attribute set driving node styling.
type Semantics struct {
	Modality Modality `json:"modality"`
	Type     NodeType `json:"type"`
	View     View     `json:"view"`
}

// Coupling carries dependency-view degree counts. Zero values stand in
// for fields absent upstream.
type Coupling struct {
	InDegree  int `json:"in_degree"`
	OutDegree int `json:"out_degree"`
}

// Total is the summed degree used for coupling buckets.
func (c Coupling) Total() int {
	return c.InDegree + c.OutDegree
}

// GraphNode is one node of a graph snapshot. IDs are unique within a
// snapshot and stable across snapshots for the same logical entity.
type GraphNode struct {
	ID          string    `json:"id"`
	Label       string    `json:"label"`
	Description string    `json:"description,omitempty"`
	Semantic    Semantics `json:"semantic"`
	Coupling    Coupling  `json:"coupling"`
	Position    Position  `json:"position"`
}

// GraphEdge is one edge of a graph snapshot. The ID is always
// "{source}-{target}", which is what path overlays match against.
type GraphEdge struct {
	ID         string `json:"id"`
	Source     string `json:"source"`
	Target     string `json:"target"`
	Label      string `json:"label,omitempty"`
	CrossModal bool   `json:"cross_modal"`
	IntraPaper bool   `json:"intra_paper"`
	Animated   bool   `json:"animated"`
}

// EdgeID builds the canonical edge identifier for a node pair.
func EdgeID(source, target string) string {
	return source + "-" + target
}

// Snapshot is a complete node/edge collection for one view, supplied
// atomically by the upstream analysis layer.
type Snapshot struct {
	Nodes []GraphNode `json:"nodes"`
	Edges []GraphEdge `json:"edges"`
}

// PathStep is one hop of a traversal path, at edge granularity.
type PathStep struct {
	From        string `json:"from"`
	To          string `json:"to"`
	FromName    string `json:"from_name"`
	ToName      string `json:"to_name"`
	Relation    string `json:"relation"`
	Description string `json:"description,omitempty"`
}

// Path is one traversal path from a query result. Nodes and Steps
// describe the same path at different granularities; Steps is preferred
// for overlay rendering, Nodes is what edge matching uses.
type Path struct {
	Nodes []string   `json:"nodes,omitempty"`
	Steps []PathStep `json:"steps,omitempty"`
}

// HighlightState is the emphasis instruction derived from a query
// result. It is replaced wholesale on every result and cleared while a
// query is in flight.
type HighlightState struct {
	NodeIDs map[string]bool
	Paths   []Path
}

// Empty reports whether the state highlights nothing.
func (h HighlightState) Empty() bool {
	return len(h.NodeIDs) == 0 && len(h.Paths) == 0
}

// HighlightNodes builds a HighlightState from a flat node-id list.
func HighlightNodes(ids []string, paths []Path) HighlightState {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return HighlightState{NodeIDs: set, Paths: paths}
}

// --- Stats ---

// SnapshotStats summarizes a snapshot for the status surface.
type SnapshotStats struct {
	TotalNodes int            `json:"total_nodes"`
	TotalEdges int            `json:"total_edges"`
	PaperNodes int            `json:"paper_nodes"`
	CodeNodes  int            `json:"code_nodes"`
	NodeTypes  map[string]int `json:"node_types"`
	AvgDegree  float64        `json:"avg_degree"`
}

// Stats computes summary statistics for a snapshot. Every edge endpoint
// counts toward the degree sum, matching an undirected degree average.
func Stats(snap Snapshot) SnapshotStats {
	stats := SnapshotStats{
		TotalNodes: len(snap.Nodes),
		TotalEdges: len(snap.Edges),
		NodeTypes:  make(map[string]int),
	}
	for _, n := range snap.Nodes {
		stats.NodeTypes[string(n.Semantic.Type)]++
		if n.Semantic.Modality == ModalityPaper {
			stats.PaperNodes++
		} else {
			stats.CodeNodes++
		}
	}
	if len(snap.Nodes) > 0 {
		stats.AvgDegree = float64(2*len(snap.Edges)) / float64(len(snap.Nodes))
	}
	return stats
}
