package present

import (
	"log/slog"
	"sync"
	"time"
)

// DefaultHighlightDelay separates the highlight clear from the apply
// that replaces it, so the cleared frame is observably rendered first.
const DefaultHighlightDelay = 120 * time.Millisecond

// PresentationState is the fully derived, renderable output of the
// engine for one view. It is a value: every re-derivation replaces it
// wholesale, nothing layers onto prior derived state.
type PresentationState struct {
	View      View
	Nodes     []StyledNode
	Edges     []StyledEdge
	Highlight HighlightState
	Panels    []PathPanel
}

// Engine owns the current presentation state and is the only mutator
// of it. It composes the style resolver, the highlight index, and the
// transition controller, and routes node clicks to the external
// feature-selection callback.
type Engine struct {
	mu         sync.Mutex
	raw        Snapshot
	view       View
	highlight  HighlightState
	state      PresentationState
	transition *TransitionController
	sched      Scheduler
	notifier   *renderNotifier
	onSelect   func(nodeID string)
	logger     *slog.Logger

	highlightDelay time.Duration
	requestSeq     uint64
	cancelApply    func()
	closed         bool
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLockDuration overrides the transition lock cool-down.
func WithLockDuration(d time.Duration) EngineOption {
	return func(e *Engine) { e.transition = NewTransitionController(d, e.sched) }
}

// WithHighlightDelay overrides the clear-to-apply highlight delay.
func WithHighlightDelay(d time.Duration) EngineOption {
	return func(e *Engine) { e.highlightDelay = d }
}

// WithScheduler replaces the timer backend, for tests.
func WithScheduler(s Scheduler) EngineOption {
	return func(e *Engine) {
		e.sched = s
		e.transition = NewTransitionController(e.transition.duration, s)
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = l }
}

// NewEngine creates an engine. onSelect is the external
// feature-selection callback invoked on interactive node clicks; it
// may be nil.
func NewEngine(onSelect func(nodeID string), opts ...EngineOption) *Engine {
	e := &Engine{
		sched:          NewScheduler(),
		notifier:       newRenderNotifier(),
		onSelect:       onSelect,
		logger:         slog.Default(),
		highlightDelay: DefaultHighlightDelay,
	}
	e.transition = NewTransitionController(DefaultLockDuration, e.sched)
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Events exposes the render-event stream. Events are emitted after
// each re-derivation; slow consumers lose events rather than block the
// engine.
func (e *Engine) Events() <-chan RenderEvent {
	return e.notifier.subscribe()
}

// ApplySnapshot replaces the rendered collections with freshly styled
// copies derived from the given snapshot and highlight state. Edges
// referencing nodes absent from the snapshot are dropped silently.
// The call is idempotent and triggers the transition lock.
func (e *Engine) ApplySnapshot(snap Snapshot, hl HighlightState, view View) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}

	e.raw = cloneSnapshot(snap)
	e.view = view
	e.highlight = cloneHighlight(hl)
	e.derive(RenderSnapshot)
	e.transition.Begin()
}

// IssueQuery clears the highlight state ahead of an in-flight query so
// stale emphasis never overlaps the next result. It returns a
// monotonic request id; only the result carrying the latest id is
// applied.
func (e *Engine) IssueQuery() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return 0
	}

	e.requestSeq++
	e.cancelPendingApply()
	e.highlight = HighlightState{}
	e.derive(RenderHighlightClear)
	e.transition.Begin()
	return e.requestSeq
}

// CompleteQuery applies a query result's highlight instruction. The
// apply is deferred by the highlight delay so the clear from
// IssueQuery renders first. Results for superseded request ids are
// discarded; the return value reports whether the result was accepted.
func (e *Engine) CompleteQuery(id uint64, highlighted []string, paths []Path) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return false
	}
	if id != e.requestSeq {
		e.logger.Warn("discarding stale query result",
			"result_id", id, "latest_id", e.requestSeq)
		return false
	}

	e.cancelPendingApply()
	e.cancelApply = e.sched.AfterFunc(e.highlightDelay, func() {
		e.applyHighlight(id, HighlightNodes(highlighted, paths))
	})
	return true
}

// FailQuery reports an upstream query failure. Graph state is left
// unchanged; the highlight stays cleared so no emphasis survives a
// query that never completed.
func (e *Engine) FailQuery(id uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || id != e.requestSeq {
		return
	}
	e.cancelPendingApply()
	e.logger.Debug("query failed, highlight stays cleared", "request_id", id)
}

// applyHighlight is the deferred half of CompleteQuery.
func (e *Engine) applyHighlight(id uint64, hl HighlightState) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed || id != e.requestSeq {
		return
	}
	e.cancelApply = nil
	e.highlight = hl
	e.derive(RenderHighlightApply)
	e.transition.Begin()
}

// HandleNodeClick routes a node click. Clicks are swallowed while the
// transition lock is held and for inert nodes; interactive nodes
// invoke the feature-selection callback. The return value reports
// whether the callback was invoked.
func (e *Engine) HandleNodeClick(nodeID string) bool {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return false
	}
	if e.transition.Locked() {
		e.logger.Debug("click swallowed during transition", "node", nodeID)
		e.mu.Unlock()
		return false
	}

	var interactive bool
	for _, n := range e.state.Nodes {
		if n.ID == nodeID {
			interactive = n.Style.Interactive
			break
		}
	}
	cb := e.onSelect
	e.mu.Unlock()

	if !interactive {
		return false
	}
	if cb != nil {
		cb(nodeID)
	}
	return true
}

// Locked reports whether interaction is currently suppressed.
func (e *Engine) Locked() bool {
	return e.transition.Locked()
}

// State returns a deep copy of the current presentation state.
func (e *Engine) State() PresentationState {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := PresentationState{
		View:      e.state.View,
		Nodes:     append([]StyledNode(nil), e.state.Nodes...),
		Edges:     append([]StyledEdge(nil), e.state.Edges...),
		Highlight: cloneHighlight(e.state.Highlight),
		Panels:    append([]PathPanel(nil), e.state.Panels...),
	}
	return out
}

// Close cancels all pending timers. The engine refuses further
// mutation afterwards, so no timer can fire into a disposed instance.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	e.cancelPendingApply()
	e.transition.Close()
}

// derive recomputes the styled state from the raw snapshot and the
// current highlight. Callers hold e.mu.
func (e *Engine) derive(reason RenderReason) {
	pathEdges := PathEdgeIDs(e.highlight.Paths)
	pathActive := len(pathEdges) > 0

	nodeIDs := make(map[string]bool, len(e.raw.Nodes))
	labels := make(map[string]string, len(e.raw.Nodes))
	nodes := make([]StyledNode, 0, len(e.raw.Nodes))
	for _, n := range e.raw.Nodes {
		nodeIDs[n.ID] = true
		labels[n.ID] = n.Label
		nodes = append(nodes, StyledNode{
			GraphNode: n,
			Style:     ResolveNodeStyle(n, e.highlight, e.view),
		})
	}

	edges := make([]StyledEdge, 0, len(e.raw.Edges))
	for _, ed := range e.raw.Edges {
		if !nodeIDs[ed.Source] || !nodeIDs[ed.Target] {
			e.logger.Debug("dropping dangling edge", "edge", ed.ID)
			continue
		}
		edges = append(edges, StyledEdge{
			GraphEdge: ed,
			Style:     ResolveEdgeStyle(ed, pathEdges, pathActive),
		})
	}

	e.state = PresentationState{
		View:      e.view,
		Nodes:     nodes,
		Edges:     edges,
		Highlight: cloneHighlight(e.highlight),
		Panels: BuildOverlay(e.highlight.Paths, func(id string) string {
			if l, ok := labels[id]; ok && l != "" {
				return l
			}
			return id
		}),
	}

	e.notifier.emit(RenderEvent{
		Reason:    reason,
		View:      e.view,
		NodeCount: len(nodes),
		EdgeCount: len(edges),
	})
}

// cancelPendingApply stops a scheduled highlight apply, if any.
// Callers hold e.mu.
func (e *Engine) cancelPendingApply() {
	if e.cancelApply != nil {
		e.cancelApply()
		e.cancelApply = nil
	}
}

func cloneSnapshot(snap Snapshot) Snapshot {
	return Snapshot{
		Nodes: append([]GraphNode(nil), snap.Nodes...),
		Edges: append([]GraphEdge(nil), snap.Edges...),
	}
}

func cloneHighlight(hl HighlightState) HighlightState {
	out := HighlightState{Paths: append([]Path(nil), hl.Paths...)}
	if hl.NodeIDs != nil {
		out.NodeIDs = make(map[string]bool, len(hl.NodeIDs))
		for k, v := range hl.NodeIDs {
			out.NodeIDs[k] = v
		}
	}
	return out
}
