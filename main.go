package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/loading-splash/internal/config"
	"github.com/iburimskiy/loading-splash/internal/game"
	"github.com/iburimskiy/loading-splash/internal/splash"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to a TOML config file")
		pick       = flag.Bool("pick-config", false, "choose the config file in a dialog")
		dots       = flag.Int("dots", 0, "generate a palette of n evenly spaced hues")
		verbose    = flag.Bool("v", false, "debug logging")
		noDialog   = flag.Bool("no-dialog", false, "report fatal errors on stderr only")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	splash.SetLogger(logger)

	if err := run(*configPath, *pick, *dots); err != nil {
		logger.Error("splash failed", "err", err)
		if !*noDialog {
			_ = zenity.Error(err.Error(), zenity.Title("Loading splash"), zenity.ErrorIcon)
		}
		os.Exit(1)
	}
}

func run(path string, pick bool, dots int) error {
	if pick {
		chosen, err := pickConfig()
		if err != nil {
			return err
		}
		if chosen != "" {
			path = chosen
		}
	}

	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return err
		}
	}
	if dots > 0 {
		cfg.Palette = config.HSVPalette(dots)
	}

	g, err := game.New(cfg)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Loading splash - Space: close splash, Esc/Q: quit")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// pickConfig asks for a config file. Cancelling keeps the defaults.
func pickConfig() (string, error) {
	filename, err := zenity.SelectFile(
		zenity.Title("Open splash config"),
		zenity.FileFilters{{
			Name:     "TOML",
			Patterns: []string{"*.toml"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", nil
		}
		return "", fmt.Errorf("select config: %w", err)
	}
	return filename, nil
}
