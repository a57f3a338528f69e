package panzoom

// frameStats tracks render coalescing between two logged frames.
// Only populated when RunConfig.Debug is true.
type frameStats struct {
	lastRequests uint64
	lastFrames   uint64
}

// logFrame logs how many render requests the last tick produced and how
// many sink calls they collapsed into.
func (g *Game) logFrame(flushed int) {
	requests, frames := g.ctrl.Scheduler().Stats()
	dReq := requests - g.stats.lastRequests
	dFrames := frames - g.stats.lastFrames
	g.stats.lastRequests, g.stats.lastFrames = requests, frames
	if dReq == 0 && flushed == 0 {
		return
	}
	s := g.ctrl.State()
	Logger().Debug("frame",
		"requests", dReq, "renders", dFrames, "callbacks", flushed,
		"x", s.X, "y", s.Y, "scale", s.Scale)
}
