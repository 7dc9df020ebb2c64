package game

import (
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// hsv converts hue (degrees, any range), saturation and value (0-1) to a
// color with the given alpha.
func hsv(h, s, v float64, alpha uint8) color.NRGBA {
	r, g, b := colorful.Hsv(wrapHue(h), s, v).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}
}

func wrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// formatDuration formats a duration as MM:SS.t
func formatDuration(d time.Duration) string {
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) % 60
	tenths := int(d/(100*time.Millisecond)) % 10
	return fmt.Sprintf("%02d:%02d.%d", minutes, seconds, tenths)
}
