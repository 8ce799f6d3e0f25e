// Package trace builds the execution-trace subgraph: a deterministic,
// single-column rendering of recorded execution steps, independent of
// the primary paper↔code graph.
package trace

// NodeKind classifies execution-trace nodes.
type NodeKind string

const (
	KindStart      NodeKind = "start"
	KindArgument   NodeKind = "argument"
	KindAssignment NodeKind = "assignment"
	KindCondition  NodeKind = "condition"
	KindLoop       NodeKind = "loop"
	KindCall       NodeKind = "call"
	KindOperation  NodeKind = "operation"
	KindReturn     NodeKind = "return"
	KindError      NodeKind = "error"
)

// EdgeKind classifies execution-trace edges. KindThen denotes pure
// sequential flow and renders animated with a down-arrow glyph.
type EdgeKind string

const (
	KindInput          EdgeKind = "input"
	KindUses           EdgeKind = "uses"
	KindReturns        EdgeKind = "returns"
	KindConditionCheck EdgeKind = "condition_check"
	KindErrorFlow      EdgeKind = "error"
	KindThen           EdgeKind = "then"
)

// nodeColors is the fixed per-kind node color table.
var nodeColors = map[NodeKind]string{
	KindStart:      "#22c55e",
	KindArgument:   "#3b82f6",
	KindAssignment: "#06b6d4",
	KindCondition:  "#f59e0b",
	KindLoop:       "#8b5cf6",
	KindCall:       "#ec4899",
	KindOperation:  "#64748b",
	KindReturn:     "#10b981",
	KindError:      "#ef4444",
}

// edgeColors is the fixed per-kind edge color table.
var edgeColors = map[EdgeKind]string{
	KindInput:          "#3b82f6",
	KindUses:           "#06b6d4",
	KindReturns:        "#10b981",
	KindConditionCheck: "#f59e0b",
	KindErrorFlow:      "#ef4444",
	KindThen:           "#94a3b8",
}

// colorNeutral is the fallback for kinds outside the tables.
const colorNeutral = "#94a3b8"

// Layout constants for the single-column sequential flow.
const (
	columnX   = 250.0
	rowHeight = 120.0
)

// InputNode is one recorded execution step as supplied by the
// walkthrough boundary. Step is an ordering key; nil means the step
// was not recorded and the node sorts after all numbered ones.
type InputNode struct {
	ID    string   `json:"id"`
	Kind  NodeKind `json:"type"`
	Label string   `json:"label"`
	Value string   `json:"value,omitempty"`
	Step  *int     `json:"step,omitempty"`
}

// InputEdge is one recorded flow between steps.
type InputEdge struct {
	Source string   `json:"source"`
	Target string   `json:"target"`
	Kind   EdgeKind `json:"type"`
}

// Result is the trace payload returned by the walkthrough boundary.
type Result struct {
	Nodes []InputNode `json:"nodes"`
	Edges []InputEdge `json:"edges"`
	Error string      `json:"error,omitempty"`
}

// Node is a laid-out, styled trace node ready for rendering.
type Node struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Label    string   `json:"label"`
	Value    string   `json:"value,omitempty"`
	Color    string   `json:"color"`
	X        float64  `json:"x"`
	Y        float64  `json:"y"`
	Sequence int      `json:"sequence"`
}

// Edge is a styled trace edge. Display is the arrow or literal kind
// label shown alongside the edge.
type Edge struct {
	ID       string   `json:"id"`
	Source   string   `json:"source"`
	Target   string   `json:"target"`
	Kind     EdgeKind `json:"kind"`
	Display  string   `json:"display"`
	Color    string   `json:"color"`
	Animated bool     `json:"animated"`
}
