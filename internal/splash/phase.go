package splash

import (
	"math"
	"time"
)

// Phase is a stage of the splash animation.
type Phase int

const (
	// PhaseIdle is the state before the first frame; geometry is unknown.
	PhaseIdle Phase = iota
	// PhaseRotating spins the dots at full radius until Disappear.
	PhaseRotating
	// PhaseMerging pulls the dots into the center.
	PhaseMerging
	// PhaseExpanding opens a hole from the center until the content shows.
	PhaseExpanding
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRotating:
		return "rotating"
	case PhaseMerging:
		return "merging"
	case PhaseExpanding:
		return "expanding"
	default:
		return "unknown"
	}
}

type event int

const (
	eventFirstFrame event = iota
	eventDisappear
	eventComplete
)

func (e event) String() string {
	switch e {
	case eventFirstFrame:
		return "first-frame"
	case eventDisappear:
		return "disappear"
	case eventComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// next is the transition table. Pairs not listed leave the phase unchanged.
func next(p Phase, e event) (Phase, bool) {
	switch {
	case p == PhaseIdle && e == eventFirstFrame:
		return PhaseRotating, true
	case p == PhaseRotating && e == eventDisappear:
		return PhaseMerging, true
	case p == PhaseMerging && e == eventComplete:
		return PhaseExpanding, true
	}
	return p, false
}

// state is the active phase together with the driver it owns.
type state struct {
	phase  Phase
	driver *Driver
}

// machine drives the phase sequence. Values written by the drivers live
// here so that Merging keeps the angle Rotating stopped at.
type machine struct {
	cur state
	rc  *RenderContext

	rotation time.Duration
	tension  float64

	angle  float64
	radius float64
	hole   float64

	// disappear arrived before the first frame
	pending bool

	invalidate func()
	observe    func(from, to Phase)
}

func (m *machine) fire(e event) {
	to, ok := next(m.cur.phase, e)
	if !ok {
		if e == eventDisappear && m.cur.phase == PhaseIdle {
			m.pending = true
		}
		Logger().Debug("splash: event ignored", "phase", m.cur.phase, "event", e)
		return
	}
	m.enter(to)
}

// enter replaces the active state. The outgoing driver is cancelled before
// the new one exists so nothing from the old phase can fire afterwards.
func (m *machine) enter(to Phase) {
	from := m.cur.phase
	if m.cur.driver != nil {
		m.cur.driver.Cancel()
		Logger().Debug("splash: driver cancelled", "phase", from)
	}

	var d *Driver
	switch to {
	case PhaseRotating:
		d = NewDriver(0, 2*math.Pi, m.rotation, Linear, true)
		m.radius = m.rc.RotationRadius
	case PhaseMerging:
		d = NewDriver(m.rc.RotationRadius, 0, m.rotation/2, Anticipate(m.tension), false)
		m.radius = m.rc.RotationRadius
	case PhaseExpanding:
		d = NewDriver(0, m.rc.Diagonal, m.rotation/2, Linear, false)
		m.radius = 0
		m.hole = 0
	}
	m.cur = state{phase: to, driver: d}
	d.Start()

	Logger().Info("splash: phase changed", "from", from, "to", to)
	if m.observe != nil {
		m.observe(from, to)
	}
}

// tick advances the active driver, publishes its value and requests a
// redraw before returning, then applies a completion transition.
func (m *machine) tick(dt time.Duration) {
	d := m.cur.driver
	if d == nil || !d.Running() {
		return
	}
	done := d.Advance(dt)

	switch m.cur.phase {
	case PhaseRotating:
		m.angle = d.Value()
	case PhaseMerging:
		m.radius = d.Value()
	case PhaseExpanding:
		m.hole = d.Value()
	}
	if m.invalidate != nil {
		m.invalidate()
	}

	if done {
		m.fire(eventComplete)
	}
}

// frame returns the draw ops for the active phase, starting the sequence on
// the first call.
func (m *machine) frame() []Op {
	if m.cur.phase == PhaseIdle {
		m.fire(eventFirstFrame)
		if m.pending {
			m.pending = false
			m.fire(eventDisappear)
		}
	}

	switch m.cur.phase {
	case PhaseRotating, PhaseMerging:
		return dotOps(m.rc, m.radius, m.angle)
	case PhaseExpanding:
		return ringOps(m.rc, m.hole)
	}
	return nil
}
