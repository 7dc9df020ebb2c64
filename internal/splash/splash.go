// Package splash implements a splash-screen animation: a ring of colored
// dots rotates, merges into the center, then opens as a circular wipe that
// reveals whatever is drawn underneath.
//
// The package does no drawing and owns no timer. A host calls Tick from its
// update loop and Render from its draw loop, then executes the returned Ops
// with whatever graphics backend it has.
package splash

import (
	"errors"
	"image/color"
	"time"
)

// ErrEmptyPalette is returned by New when no dot colors are given.
var ErrEmptyPalette = errors.New("splash: palette is empty")

// Widget is the splash animation. All methods must be called from the
// host's single update/draw goroutine.
type Widget struct {
	palette    []color.Color
	background color.Color
	m          machine
}

// New returns a widget drawing one dot per palette color. The palette is
// copied.
func New(palette []color.Color, opts ...Option) (*Widget, error) {
	if len(palette) == 0 {
		return nil, ErrEmptyPalette
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	w := &Widget{
		palette:    append([]color.Color(nil), palette...),
		background: o.background,
	}
	w.m = machine{
		rotation:   o.rotation,
		tension:    o.tension,
		invalidate: o.invalidate,
		observe:    o.observe,
	}
	return w, nil
}

// Render returns the draw operations for one frame of a width x height
// surface. Geometry is fixed by the first call; later sizes are ignored.
func (w *Widget) Render(width, height int) []Op {
	if w.m.rc == nil {
		w.m.rc = newRenderContext(width, height, w.palette, w.background)
		Logger().Info("splash: geometry initialized",
			"width", width, "height", height,
			"radius", w.m.rc.RotationRadius, "diagonal", w.m.rc.Diagonal)
	}
	return w.m.frame()
}

// Tick advances the active phase by dt.
func (w *Widget) Tick(dt time.Duration) {
	w.m.tick(dt)
}

// Disappear starts closing the splash. It only has an effect while
// Rotating; before the first frame it is remembered and applied as soon as
// geometry is known.
func (w *Widget) Disappear() {
	w.m.fire(eventDisappear)
}

// Phase returns the active phase.
func (w *Widget) Phase() Phase {
	return w.m.cur.phase
}

// Done reports whether the wipe has fully revealed the content. The host
// may stop rendering the widget from then on.
func (w *Widget) Done() bool {
	return w.m.cur.phase == PhaseExpanding && w.m.cur.driver.Finished()
}

// Geometry returns the render context, or nil before the first frame.
func (w *Widget) Geometry() *RenderContext {
	return w.m.rc
}
