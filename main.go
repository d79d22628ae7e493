package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/hajimehoshi/ebiten/v2"
	_ "github.com/silbinarywolf/preferdiscretegpu"

	"github.com/iburimskiy/gradient-waves/internal/config"
	"github.com/iburimskiy/gradient-waves/internal/export"
	"github.com/iburimskiy/gradient-waves/internal/game"
	"github.com/iburimskiy/gradient-waves/internal/panel"
	"github.com/iburimskiy/gradient-waves/internal/pattern"
)

func main() {
	settings, err := config.NewSettings(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	verbosity := bslogger.Normal
	if settings.Verbose {
		verbosity = bslogger.All
	}
	logger := bslogger.NewLogger("Main", verbosity, nil)
	logger.Debug(settings.String())

	p := panel.New(bslogger.NewLogger("Panel", verbosity, nil))
	mode, _ := pattern.ParseMode(settings.Mode)
	p.SetMode(mode)
	p.Top = settings.Top
	p.Bottom = settings.Bottom

	noise := pattern.NewSimplexNoise(settings.Seed)

	if settings.Output != "" {
		if err := renderToFile(settings, p.Snapshot(), noise); err != nil {
			logger.Fatal(err.Error())
		}
		logger.Infof("wrote %s", settings.Output)
		return
	}

	g := game.NewGame(game.Options{
		Panel:     p,
		Noise:     noise,
		StartTime: settings.Time,
		Width:     settings.Width,
		Height:    settings.Height,
		ExportDir: settings.ExportDir,
		Logger:    bslogger.NewLogger("Game", verbosity, nil),
	})

	if settings.AudioFile != "" {
		if err := g.PlayFile(settings.AudioFile); err != nil {
			logger.Errorf("playing %s: %s", settings.AudioFile, err)
		}
	}

	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Gradient Waves - arrows: edit, Tab: mode, S: save, R: record, Esc/Q: quit")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal(err.Error())
	}
}

// renderToFile writes one PNG, or an animated PNG when more than one frame is requested.
func renderToFile(s config.Settings, snap pattern.Snapshot, noise pattern.NoiseSource) error {
	ctx := pattern.Context{Width: s.Width, Height: s.Height, Time: s.Time}

	if s.Frames > 1 {
		return export.SaveAPNG(s.Output, export.Frames(ctx, snap, noise, s.Frames))
	}

	if ext := strings.ToLower(filepath.Ext(s.Output)); ext != ".png" {
		return fmt.Errorf("unsupported output format %q", ext)
	}
	return export.SavePNG(s.Output, export.Frame(ctx, snap, noise))
}
