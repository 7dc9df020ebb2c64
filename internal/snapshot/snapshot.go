// Package snapshot rasterizes splash frames off-screen with gogpu/gg so they
// can be written as PNG files without a window.
package snapshot

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/loading-splash/internal/splash"
)

// Draw executes ops on dc in order. Rings with no stroke width are skipped.
func Draw(dc *gg.Context, ops []splash.Op) error {
	for i, op := range ops {
		var err error
		switch op.Kind {
		case splash.OpFill:
			dc.ClearWithColor(gg.FromColor(op.Color))
		case splash.OpCircle:
			dc.SetColor(op.Color)
			dc.DrawCircle(op.Center.X, op.Center.Y, op.Radius)
			err = dc.Fill()
		case splash.OpRing:
			if op.StrokeWidth <= 0 {
				continue
			}
			dc.SetColor(op.Color)
			dc.SetLineWidth(op.StrokeWidth)
			dc.DrawCircle(op.Center.X, op.Center.Y, op.Radius)
			err = dc.Stroke()
		default:
			err = fmt.Errorf("unknown op kind %d", op.Kind)
		}
		if err != nil {
			return fmt.Errorf("op %d (%s): %w", i, op.Kind, err)
		}
	}
	return nil
}

// DrawContent paints the stand-in for the application content that the
// splash reveals: horizontal hue bands with a ring of circles on top.
func DrawContent(dc *gg.Context) error {
	w, h := float64(dc.Width()), float64(dc.Height())
	const bands = 16
	for i := 0; i < bands; i++ {
		c := colorful.Hsv(360*float64(i)/bands, 0.35, 0.3)
		dc.SetColor(c)
		dc.DrawRectangle(0, h*float64(i)/bands, w, h/bands+1)
		if err := dc.Fill(); err != nil {
			return err
		}
	}

	cx, cy := w/2, h/2
	radius := math.Min(w, h) / 3
	const circles = 8
	for i := 0; i < circles; i++ {
		angle := 2 * math.Pi * float64(i) / circles
		dc.SetColor(colorful.Hsv(360*float64(i)/circles, 0.8, 0.9))
		dc.DrawCircle(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle), radius/6)
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

// Frame renders content plus ops onto a new width x height context. The
// caller owns the returned context and must Close it.
func Frame(width, height int, ops []splash.Op) (*gg.Context, error) {
	dc := gg.NewContext(width, height)
	if err := DrawContent(dc); err != nil {
		dc.Close()
		return nil, fmt.Errorf("draw content: %w", err)
	}
	if err := Draw(dc, ops); err != nil {
		dc.Close()
		return nil, err
	}
	return dc, nil
}

// WritePNG renders one frame and saves it at path.
func WritePNG(path string, width, height int, ops []splash.Op) error {
	dc, err := Frame(width, height, ops)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
