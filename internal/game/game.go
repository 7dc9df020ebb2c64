// Package game hosts the splash widget in an ebiten window: the ebiten tick
// drives the animation and each frame executes the widget's draw ops over
// the application content.
package game

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/loading-splash/internal/audio"
	"github.com/iburimskiy/loading-splash/internal/config"
	"github.com/iburimskiy/loading-splash/internal/host"
	"github.com/iburimskiy/loading-splash/internal/splash"
)

type Game struct {
	cfg  config.Config
	host *host.Host

	// content
	time       float64
	rotation   float64
	colorPhase float64

	redraws int
	chime   bool

	// input edge detection
	prevKey map[ebiten.Key]bool
}

// New builds the splash from cfg. A bad palette or an empty one is returned
// as an error before any window exists.
func New(cfg config.Config) (*Game, error) {
	colors, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:     cfg,
		prevKey: map[ebiten.Key]bool{},
	}
	w, err := splash.New(colors,
		splash.WithBackground(bg),
		splash.WithRotationDuration(cfg.RotationDuration.Duration),
		splash.WithTension(cfg.Tension),
		splash.WithInvalidate(g.invalidate),
		splash.WithPhaseObserver(g.onPhase),
	)
	if err != nil {
		return nil, fmt.Errorf("create splash: %w", err)
	}
	g.host = host.New(w, cfg.DisappearAfter.Duration)

	if cfg.Chime {
		if err := speaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/20)); err != nil {
			splash.Logger().Warn("game: audio unavailable, chimes disabled", "err", err)
		} else {
			g.chime = true
		}
	}
	return g, nil
}

func (g *Game) invalidate() {
	g.redraws++
}

func (g *Game) onPhase(_, to splash.Phase) {
	if !g.chime {
		return
	}
	if s := audio.ForPhase(to); s != nil {
		speaker.Play(s)
	}
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeySpace) {
		g.host.DisappearNow()
	}
	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.host.Step(time.Second / time.Duration(ebiten.TPS()))

	g.time += 1.0 / float64(ebiten.TPS())
	g.rotation += config.ContentRotationSpeed
	g.colorPhase += config.ContentColorShiftSpeed
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawContent(screen)

	b := screen.Bounds()
	drawOps(screen, g.host.Render(b.Dx(), b.Dy()))

	status := "Space: close splash, Esc/Q: quit"
	if g.host.Visible() {
		status = fmt.Sprintf("%s %s redraws %d | %s",
			g.host.Phase(), formatDuration(g.host.Elapsed()), g.redraws, status)
	}
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// drawOps executes splash ops on screen.
func drawOps(screen *ebiten.Image, ops []splash.Op) {
	for _, op := range ops {
		switch op.Kind {
		case splash.OpFill:
			screen.Fill(op.Color)
		case splash.OpCircle:
			vector.DrawFilledCircle(screen, float32(op.Center.X), float32(op.Center.Y), float32(op.Radius), op.Color, true)
		case splash.OpRing:
			if op.StrokeWidth <= 0 {
				continue
			}
			vector.StrokeCircle(screen, float32(op.Center.X), float32(op.Center.Y), float32(op.Radius), float32(op.StrokeWidth), op.Color, true)
		}
	}
}

// drawContent paints what the splash uncovers: a slowly shifting gradient
// with a ring of circles.
func (g *Game) drawContent(screen *ebiten.Image) {
	b := screen.Bounds()
	width, height := float64(b.Dx()), float64(b.Dy())

	for y := 0; y < b.Dy(); y++ {
		ratio := float64(y) / height
		hue := (g.colorPhase + ratio*0.5) * 360
		vector.StrokeLine(screen, 0, float32(y), float32(width), float32(y), 1, hsv(hue, 0.5, 0.25, 255), false)
	}

	centerX, centerY := width/2, height/2
	for i := 0; i < config.ContentCircleCount; i++ {
		angle := float64(i) * (2 * math.Pi / config.ContentCircleCount)
		radius := 60 + 20*math.Sin(g.time+float64(i))

		x := centerX + math.Cos(angle+g.rotation)*radius*2
		y := centerY + math.Sin(angle+g.rotation)*radius

		c := hsv((g.colorPhase+float64(i)*0.1)*360, 0.8, 0.9, 200)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 12, c, true)
	}
}
