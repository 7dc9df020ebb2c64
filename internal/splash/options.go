package splash

import (
	"image/color"
	"time"
)

// Default timing and colors.
const (
	DefaultRotationDuration = 2000 * time.Millisecond
	DefaultTension          = 3.0
)

// DefaultBackground is the splash color covering the content.
var DefaultBackground color.Color = color.White

// Option configures a Widget during creation.
//
// Example:
//
//	w, err := splash.New(palette,
//	    splash.WithRotationDuration(time.Second),
//	    splash.WithInvalidate(requestRedraw))
type Option func(*options)

type options struct {
	background color.Color
	rotation   time.Duration
	tension    float64
	invalidate func()
	observe    func(from, to Phase)
}

func defaultOptions() options {
	return options{
		background: DefaultBackground,
		rotation:   DefaultRotationDuration,
		tension:    DefaultTension,
	}
}

// WithBackground sets the splash color used for the backdrop and the
// expanding ring.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithRotationDuration sets the time of one full turn. Merging and
// Expanding each take half of it.
func WithRotationDuration(d time.Duration) Option {
	return func(o *options) {
		o.rotation = d
	}
}

// WithTension sets the anticipate overshoot factor of the merge.
func WithTension(t float64) Option {
	return func(o *options) {
		o.tension = t
	}
}

// WithInvalidate registers the host's redraw request. It is called
// synchronously from Tick whenever an animated value changed.
func WithInvalidate(f func()) Option {
	return func(o *options) {
		o.invalidate = f
	}
}

// WithPhaseObserver registers a callback run after every phase change.
func WithPhaseObserver(f func(from, to Phase)) Option {
	return func(o *options) {
		o.observe = f
	}
}
