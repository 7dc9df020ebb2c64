package splash

import (
	"math"
	"time"
)

// Driver interpolates a value from a start to an end over a duration.
// It does not own a timer: the host's scheduling loop calls Advance once per
// tick, and OnUpdate and OnComplete run synchronously inside that call.
//
// A Driver is not safe for concurrent use.
type Driver struct {
	from, to float64
	duration time.Duration
	easing   Easing
	repeat   bool
	clamp    bool

	elapsed time.Duration
	value   float64

	started   bool
	cancelled bool
	finished  bool

	// OnUpdate, if set, is called with the new value after every tick.
	OnUpdate func(v float64)
	// OnComplete, if set, is called once when a non-repeating driver
	// reaches its end value.
	OnComplete func()
}

// NewDriver returns a stopped driver positioned at from. A nil easing is
// linear.
func NewDriver(from, to float64, duration time.Duration, easing Easing, repeat bool) *Driver {
	if easing == nil {
		easing = Linear
	}
	return &Driver{
		from:     from,
		to:       to,
		duration: duration,
		easing:   easing,
		repeat:   repeat,
		clamp:    !overshoots(easing),
		value:    from,
	}
}

// Start begins accepting ticks. Starting a cancelled or finished driver does
// nothing.
func (d *Driver) Start() {
	if d.cancelled || d.finished {
		return
	}
	d.started = true
}

// Cancel stops the driver. No callback fires after Cancel returns, including
// when Cancel is called from inside OnUpdate. Cancel is idempotent.
func (d *Driver) Cancel() {
	d.cancelled = true
}

// Value returns the most recent interpolated value.
func (d *Driver) Value() float64 {
	return d.value
}

// Running reports whether the driver is started and still producing values.
func (d *Driver) Running() bool {
	return d.started && !d.cancelled && !d.finished
}

// Finished reports whether a non-repeating driver reached its end value.
func (d *Driver) Finished() bool {
	return d.finished
}

// Advance moves the driver forward by dt and reports whether this tick
// completed it. Repeating drivers wrap and never complete.
func (d *Driver) Advance(dt time.Duration) bool {
	if !d.Running() {
		return false
	}
	d.elapsed += dt

	var t float64
	switch {
	case d.repeat:
		if d.duration > 0 {
			d.elapsed %= d.duration
			t = float64(d.elapsed) / float64(d.duration)
		}
	case d.elapsed >= d.duration:
		d.elapsed = d.duration
		d.finished = true
		t = 1
	default:
		t = float64(d.elapsed) / float64(d.duration)
	}

	if d.finished {
		d.value = d.to
	} else {
		d.value = d.interpolate(t)
	}

	if d.OnUpdate != nil {
		d.OnUpdate(d.value)
	}
	if !d.finished || d.cancelled {
		return false
	}
	if d.OnComplete != nil {
		d.OnComplete()
	}
	return true
}

func (d *Driver) interpolate(t float64) float64 {
	v := d.from + (d.to-d.from)*d.easing(t)
	if d.clamp {
		lo, hi := math.Min(d.from, d.to), math.Max(d.from, d.to)
		v = math.Max(lo, math.Min(hi, v))
	}
	return v
}
