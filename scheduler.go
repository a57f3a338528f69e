package panzoom

// RenderSink applies a view to a drawable surface. It must be idempotent and
// cheap enough to run once per frame.
type RenderSink func(State)

// FrameClock schedules a callback before the next repaint. Each request
// runs its callback at most once.
type FrameClock interface {
	RequestFrame(fn func())
}

// RenderScheduler coalesces any number of render requests made between two
// frames into a single call of the sink, made with the state current when
// the frame fires.
type RenderScheduler struct {
	clock     FrameClock
	sink      RenderSink
	state     *State
	scheduled bool

	requests uint64
	frames   uint64
}

// NewRenderScheduler creates a scheduler that renders *state into sink on
// frames from clock. A nil sink is allowed; frames are still counted.
func NewRenderScheduler(clock FrameClock, state *State, sink RenderSink) *RenderScheduler {
	return &RenderScheduler{clock: clock, sink: sink, state: state}
}

// RequestRender asks for the sink to run on the next frame. Calls made while
// a frame is already pending are absorbed.
func (r *RenderScheduler) RequestRender() {
	r.requests++
	if r.scheduled {
		return
	}
	r.scheduled = true
	r.clock.RequestFrame(r.frame)
}

// frame runs on the clock. The pending flag is cleared before the sink runs
// so a mutation made inside the sink schedules a fresh frame.
func (r *RenderScheduler) frame() {
	r.scheduled = false
	r.frames++
	if r.sink != nil {
		r.sink(*r.state)
	}
}

// Pending reports whether a frame has been requested and not yet fired.
func (r *RenderScheduler) Pending() bool {
	return r.scheduled
}

// Stats returns the number of render requests and of frames rendered.
func (r *RenderScheduler) Stats() (requests, frames uint64) {
	return r.requests, r.frames
}

// FrameQueue is a FrameClock driven by the host's draw loop: callbacks
// requested during one frame run on the next call to Flush. Callbacks
// requested while flushing wait for the following Flush.
type FrameQueue struct {
	pending []func()
	spare   []func()
}

// RequestFrame queues fn for the next Flush.
func (q *FrameQueue) RequestFrame(fn func()) {
	q.pending = append(q.pending, fn)
}

// Len returns the number of queued callbacks.
func (q *FrameQueue) Len() int {
	return len(q.pending)
}

// Flush runs every callback queued before the call and returns how many ran.
func (q *FrameQueue) Flush() int {
	run := q.pending
	q.pending = q.spare[:0]
	for _, fn := range run {
		fn()
	}
	clear(run)
	q.spare = run[:0]
	return len(run)
}
