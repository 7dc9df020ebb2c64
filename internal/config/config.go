package config

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lucasb-eyer/go-colorful"
)

const (
	WindowWidth  = 1024
	WindowHeight = 512

	// Splash timing
	RotationDuration = 2000 * time.Millisecond
	DisappearAfter   = 3000 * time.Millisecond
	Tension          = 3.0

	SplashColor = "#ffffff"

	// Content revealed under the splash
	ContentRotationSpeed   = 0.02
	ContentColorShiftSpeed = 0.01
	ContentCircleCount     = 8
)

// DefaultPalette is the dot colors used when none are configured.
var DefaultPalette = []string{
	"#ff9600", "#02d1ac", "#ffd200",
	"#ff3838", "#00c6ff", "#ff00ba",
}

var (
	ErrInvalidColor    = errors.New("config: invalid color")
	ErrInvalidDuration = errors.New("config: invalid duration")
)

// Duration is a time.Duration written as a Go duration string ("1.5s").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDuration, text)
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Config holds the splash and host settings, loadable from TOML.
type Config struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`

	Palette          []string `toml:"palette"`
	Background       string   `toml:"background"`
	RotationDuration Duration `toml:"rotation_duration"`
	Tension          float64  `toml:"tension"`

	DisappearAfter Duration `toml:"disappear_after"`
	Chime          bool     `toml:"chime"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:            WindowWidth,
		Height:           WindowHeight,
		Palette:          append([]string(nil), DefaultPalette...),
		Background:       SplashColor,
		RotationDuration: Duration{RotationDuration},
		Tension:          Tension,
		DisappearAfter:   Duration{DisappearAfter},
		Chime:            true,
	}
}

// Load reads a TOML file over the defaults. Keys absent from the file keep
// their default value; unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, nil
}

// Colors parses the palette. An empty palette is returned as-is; rejecting
// it is up to the splash widget.
func (c Config) Colors() ([]color.Color, error) {
	out := make([]color.Color, 0, len(c.Palette))
	for _, s := range c.Palette {
		col, err := ParseColor(s)
		if err != nil {
			return nil, err
		}
		out = append(out, col)
	}
	return out, nil
}

// BackgroundColor parses the splash color.
func (c Config) BackgroundColor() (color.Color, error) {
	return ParseColor(c.Background)
}

// ParseColor parses "#rrggbb" or "#rgb" into an opaque color.
func ParseColor(s string) (color.RGBA, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	r, g, b := col.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// HSVPalette returns n colors with evenly spaced hues.
func HSVPalette(n int) []string {
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		hue := 360 * float64(i) / float64(n)
		out = append(out, colorful.Hsv(hue, 0.8, 0.95).Hex())
	}
	return out
}
