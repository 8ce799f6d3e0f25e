// Package source consumes the upstream analysis boundary: graph
// snapshots, query results, feature details, and function
// walkthroughs. It decodes the upstream wire format (React-Flow style
// node data bags, snake_case fields) into the closed present model,
// so duck-typed upstream shapes never leak past this package.
package source

import (
	"github.com/ddc002021/hackathon/internal/present"
	"github.com/ddc002021/hackathon/internal/trace"
)

// WireNode is a snapshot node as the backend serializes it: a thin id
// and position around an untyped-looking data bag.
type WireNode struct {
	ID       string           `json:"id"`
	Data     WireNodeData     `json:"data"`
	Position present.Position `json:"position"`
	Type     string           `json:"type,omitempty"`
}

// WireNodeData is the node attribute bag. Degree fields are pointers:
// the backend only includes them in the dependency view, and a missing
// degree must default to zero rather than fail decoding.
type WireNodeData struct {
	Label       string   `json:"label"`
	Description string   `json:"description,omitempty"`
	Type        string   `json:"type"`
	Modality    string   `json:"modality"`
	View        string   `json:"view"`
	Files       []string `json:"files,omitempty"`
	Functions   []string `json:"functions,omitempty"`
	FullContent string   `json:"full_content,omitempty"`
	InDegree    *int     `json:"in_degree,omitempty"`
	OutDegree   *int     `json:"out_degree,omitempty"`
}

// WireEdge is a snapshot edge as the backend serializes it.
type WireEdge struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Target      string `json:"target"`
	Label       string `json:"label,omitempty"`
	Description string `json:"description,omitempty"`
	Confidence  int    `json:"confidence,omitempty"`
	CrossModal  bool   `json:"cross_modal"`
	IntraPaper  bool   `json:"intra_paper"`
	Animated    bool   `json:"animated"`
}

// WireGraph is the full snapshot payload.
type WireGraph struct {
	Nodes []WireNode     `json:"nodes"`
	Edges []WireEdge     `json:"edges"`
	Stats map[string]any `json:"stats,omitempty"`
}

// QueryResult is the query boundary payload. The engine consumes
// HighlightedNodes and Paths; Answer and QueryType feed the
// conversational surface.
type QueryResult struct {
	Query            string         `json:"query"`
	Answer           string         `json:"answer"`
	QueryType        string         `json:"query_type,omitempty"`
	HighlightedNodes []string       `json:"highlighted_nodes"`
	Paths            []present.Path `json:"paths,omitempty"`
}

// FunctionDetail describes one function attached to a feature.
type FunctionDetail struct {
	Name   string   `json:"name"`
	File   string   `json:"file"`
	Code   string   `json:"code,omitempty"`
	LineNo int      `json:"lineno,omitempty"`
	Args   []string `json:"args,omitempty"`
}

// FeatureDetail is the feature-detail payload used to populate the
// detail overlay. It is not part of graph state.
type FeatureDetail struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Modality    string           `json:"modality"`
	Type        string           `json:"type"`
	Files       []string         `json:"files,omitempty"`
	Functions   []FunctionDetail `json:"functions,omitempty"`
	FullContent string           `json:"full_content,omitempty"`
}

// WalkthroughResult is the walkthrough boundary payload. TraceGraph
// feeds the execution-trace builder; Walkthrough is markdown for the
// text surface.
type WalkthroughResult struct {
	Success     bool           `json:"success"`
	Args        map[string]any `json:"args,omitempty"`
	Walkthrough string         `json:"walkthrough,omitempty"`
	TraceGraph  *trace.Result  `json:"trace_graph,omitempty"`
	Error       string         `json:"error,omitempty"`
}
