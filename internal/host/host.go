// Package host plays the part of the window that owns a splash widget: it
// forwards scheduling ticks, fires the delayed disappear trigger and drops
// the widget once the content is fully revealed.
package host

import (
	"time"

	"github.com/iburimskiy/loading-splash/internal/splash"
)

// Splash is the part of splash.Widget the host drives.
type Splash interface {
	Tick(dt time.Duration)
	Render(width, height int) []splash.Op
	Disappear()
	Done() bool
	Phase() splash.Phase
}

// Host schedules one splash.
type Host struct {
	splash         Splash
	disappearAfter time.Duration
	elapsed        time.Duration
	triggered      bool
}

// New returns a host that calls Disappear once disappearAfter of ticks
// have elapsed.
func New(s Splash, disappearAfter time.Duration) *Host {
	return &Host{
		splash:         s,
		disappearAfter: disappearAfter,
	}
}

// Step advances the clock by dt.
func (h *Host) Step(dt time.Duration) {
	h.elapsed += dt
	if h.splash == nil {
		return
	}
	h.splash.Tick(dt)
	if !h.triggered && h.elapsed >= h.disappearAfter {
		h.DisappearNow()
	}
	if h.splash.Done() {
		splash.Logger().Info("host: splash removed", "elapsed", h.elapsed)
		h.splash = nil
	}
}

// DisappearNow fires the trigger early. Later calls do nothing.
func (h *Host) DisappearNow() {
	if h.triggered || h.splash == nil {
		return
	}
	h.triggered = true
	splash.Logger().Debug("host: disappear", "elapsed", h.elapsed)
	h.splash.Disappear()
}

// Render returns the splash ops for one frame, or nil once removed.
func (h *Host) Render(width, height int) []splash.Op {
	if h.splash == nil {
		return nil
	}
	return h.splash.Render(width, height)
}

// Visible reports whether the splash is still on screen.
func (h *Host) Visible() bool {
	return h.splash != nil
}

// Phase returns the splash phase; a removed splash reports PhaseExpanding.
func (h *Host) Phase() splash.Phase {
	if h.splash == nil {
		return splash.PhaseExpanding
	}
	return h.splash.Phase()
}

// Elapsed returns the time stepped so far.
func (h *Host) Elapsed() time.Duration {
	return h.elapsed
}
