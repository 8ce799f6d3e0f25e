package present

// RenderReason says why the engine re-derived its presentation state.
type RenderReason string

const (
	RenderSnapshot       RenderReason = "snapshot"
	RenderHighlightClear RenderReason = "highlight_clear"
	RenderHighlightApply RenderReason = "highlight_apply"
)

// RenderEvent is emitted after each state re-derivation. Consumers use
// it to observe ordering, e.g. that a highlight clear renders before
// the replacing highlight.
type RenderEvent struct {
	Reason    RenderReason
	View      View
	NodeCount int
	EdgeCount int
}

// renderNotifier delivers render events through a buffered channel.
// Emission never blocks; events are dropped when the consumer lags.
type renderNotifier struct {
	ch chan RenderEvent
}

func newRenderNotifier() *renderNotifier {
	return &renderNotifier{ch: make(chan RenderEvent, 64)}
}

func (rn *renderNotifier) emit(ev RenderEvent) {
	select {
	case rn.ch <- ev:
	default:
		// Drop the event if the channel is full.
	}
}

func (rn *renderNotifier) subscribe() <-chan RenderEvent {
	return rn.ch
}
