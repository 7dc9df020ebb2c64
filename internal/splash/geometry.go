package splash

import (
	"image/color"
	"math"
)

// Point is a position on the drawing surface in pixels.
type Point struct {
	X, Y float64
}

// DotPosition returns the center of dot index out of count, placed on a
// circle of the given radius around center. Dots are spaced 2π/count apart,
// starting at angleBase.
func DotPosition(center Point, radius, angleBase float64, index, count int) Point {
	angle := 2*math.Pi/float64(count)*float64(index) + angleBase
	return Point{
		X: center.X + radius*math.Cos(angle),
		Y: center.Y + radius*math.Sin(angle),
	}
}

// DiagonalHalfLength returns half the diagonal of a width x height surface,
// the farthest any pixel is from the center.
func DiagonalHalfLength(width, height float64) float64 {
	return math.Hypot(width/2, height/2)
}

// RenderContext holds the per-surface values every phase draws with.
// Geometry is derived from the first frame's size and never changes after.
type RenderContext struct {
	Center         Point
	RotationRadius float64
	DotRadius      float64
	Diagonal       float64

	Palette    []color.Color
	Background color.Color
}

func newRenderContext(width, height int, palette []color.Color, bg color.Color) *RenderContext {
	w, h := float64(width), float64(height)
	radius := w / 4
	return &RenderContext{
		Center:         Point{X: w / 2, Y: h / 2},
		RotationRadius: radius,
		DotRadius:      radius / 8,
		Diagonal:       DiagonalHalfLength(w, h),
		Palette:        palette,
		Background:     bg,
	}
}
