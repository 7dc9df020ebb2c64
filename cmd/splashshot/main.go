// Command splashshot runs the splash on a virtual clock and writes the
// frames as PNG files, one every -every ticks, plus the revealed content at
// the end.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/iburimskiy/loading-splash/internal/config"
	"github.com/iburimskiy/loading-splash/internal/host"
	"github.com/iburimskiy/loading-splash/internal/snapshot"
	"github.com/iburimskiy/loading-splash/internal/splash"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		out        = flag.String("out", "frames", "output directory")
		fps        = flag.Int("fps", 60, "ticks per second of the virtual clock")
		every      = flag.Int("every", 6, "write every n-th frame")
		limit      = flag.Duration("duration", 10*time.Second, "stop after this much virtual time")
		dots       = flag.Int("dots", 0, "generate a palette of n evenly spaced hues")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	splash.SetLogger(logger)

	if *fps <= 0 || *every <= 0 {
		logger.Error("-fps and -every must be positive")
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			logger.Error("load config", "err", err)
			os.Exit(1)
		}
	}
	if *dots > 0 {
		cfg.Palette = config.HSVPalette(*dots)
	}

	n, err := run(cfg, *out, time.Second/time.Duration(*fps), *every, *limit)
	if err != nil {
		logger.Error("splashshot failed", "err", err)
		os.Exit(1)
	}
	logger.Info("frames written", "count", n, "dir", *out)
}

func run(cfg config.Config, dir string, dt time.Duration, every int, limit time.Duration) (int, error) {
	colors, err := cfg.Colors()
	if err != nil {
		return 0, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return 0, err
	}
	w, err := splash.New(colors,
		splash.WithBackground(bg),
		splash.WithRotationDuration(cfg.RotationDuration.Duration),
		splash.WithTension(cfg.Tension),
	)
	if err != nil {
		return 0, fmt.Errorf("create splash: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return 0, err
	}

	h := host.New(w, cfg.DisappearAfter.Duration)
	written := 0
	for frame := 0; h.Visible() && h.Elapsed() < limit; frame++ {
		ops := h.Render(cfg.Width, cfg.Height)
		if frame%every == 0 {
			path := filepath.Join(dir, fmt.Sprintf("frame_%05d_%s.png", frame, h.Phase()))
			if err := snapshot.WritePNG(path, cfg.Width, cfg.Height, ops); err != nil {
				return written, err
			}
			written++
		}
		h.Step(dt)
	}

	if err := snapshot.WritePNG(filepath.Join(dir, "content.png"), cfg.Width, cfg.Height, nil); err != nil {
		return written, err
	}
	return written + 1, nil
}
