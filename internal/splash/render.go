package splash

import "image/color"

// OpKind identifies a drawing primitive.
type OpKind int

const (
	// OpFill paints the whole surface with Color.
	OpFill OpKind = iota
	// OpCircle fills a disc of Radius at Center.
	OpCircle
	// OpRing strokes a circle of Radius at Center with StrokeWidth, the
	// stroke centered on the circle's outline.
	OpRing
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpCircle:
		return "circle"
	case OpRing:
		return "ring"
	default:
		return "unknown"
	}
}

// Op is one drawing command. Backends execute a frame's ops in order.
type Op struct {
	Kind        OpKind
	Center      Point
	Radius      float64
	StrokeWidth float64
	Color       color.Color
}

// dotOps covers the surface with the background and places one dot per
// palette color on a circle of radius around the center.
func dotOps(rc *RenderContext, radius, angle float64) []Op {
	ops := make([]Op, 0, len(rc.Palette)+1)
	ops = append(ops, Op{Kind: OpFill, Color: rc.Background})
	for i, c := range rc.Palette {
		ops = append(ops, Op{
			Kind:   OpCircle,
			Center: DotPosition(rc.Center, radius, angle, i, len(rc.Palette)),
			Radius: rc.DotRadius,
			Color:  c,
		})
	}
	return ops
}

// ringOps draws the background as a ring whose inner edge sits at hole and
// whose outer edge reaches the surface corners.
func ringOps(rc *RenderContext, hole float64) []Op {
	stroke := rc.Diagonal - hole
	return []Op{{
		Kind:        OpRing,
		Center:      rc.Center,
		Radius:      stroke/2 + hole,
		StrokeWidth: stroke,
		Color:       rc.Background,
	}}
}
