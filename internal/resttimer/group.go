package resttimer

// GroupRest is the shared "between exercises in a superset" countdown: the
// same engine in a constrained configuration. Group rests are short-lived,
// never survive navigation and never pause, and their completion fires the
// instant remaining reaches zero, with no grace window.
type GroupRest struct {
	timer *Timer
}

func NewGroupRest(opts Options) *GroupRest {
	opts.GraceWindow = GraceNone
	return &GroupRest{timer: New(opts)}
}

func (g *GroupRest) Start(durationSeconds int) {
	g.timer.Start(durationSeconds)
}

func (g *GroupRest) Adjust(deltaSeconds int) {
	g.timer.Adjust(deltaSeconds)
}

func (g *GroupRest) Skip() {
	g.timer.Skip()
}

func (g *GroupRest) State() State {
	return g.timer.State()
}

func (g *GroupRest) Destroy() {
	g.timer.Destroy()
}
