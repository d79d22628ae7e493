package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/gradient-waves/internal/audio"
	"github.com/iburimskiy/gradient-waves/internal/config"
	"github.com/iburimskiy/gradient-waves/internal/driver"
	"github.com/iburimskiy/gradient-waves/internal/export"
	"github.com/iburimskiy/gradient-waves/internal/panel"
	"github.com/iburimskiy/gradient-waves/internal/pattern"
)

const statusDuration = 4 * time.Second

type Game struct {
	logger    bslogger.Logger
	panel     *panel.Panel
	clock     *driver.Clock
	noise     pattern.NoiseSource
	player    *player
	meter     *audio.Meter
	exportDir string

	// canvas size from the last Layout call
	width  int
	height int

	// frame captured by Update and drawn by Draw
	snap pattern.Snapshot
	ctx  pattern.Context

	showPanel   bool
	status      string
	statusUntil time.Time
	lastErr     error
}

type Options struct {
	Panel     *panel.Panel
	Noise     pattern.NoiseSource
	StartTime float64
	Width     int
	Height    int
	ExportDir string
	Logger    bslogger.Logger
}

func NewGame(opts Options) *Game {
	g := &Game{
		logger:    opts.Logger,
		panel:     opts.Panel,
		clock:     driver.NewClock(opts.StartTime),
		noise:     opts.Noise,
		player:    newPlayer(opts.Logger),
		meter:     audio.NewMeter(config.SmoothingFactor),
		exportDir: opts.ExportDir,
		width:     opts.Width,
		height:    opts.Height,
		showPanel: true,
	}
	g.captureFrame()

	if err := initClipboard(); err != nil {
		g.logger.Warningf("clipboard unavailable: %s", err)
	}
	return g
}

// PlayFile starts audio-reactive playback of path.
func (g *Game) PlayFile(path string) error {
	return g.player.loadAndPlay(path)
}

func (g *Game) Update() error {
	if justPressed(KeyQuit) || justPressed(KeyQuitAlt) {
		return ebiten.Termination
	}

	g.handlePanelKeys()
	g.handleActions()

	g.captureFrame()
	g.clock.Advance(g.snap)

	return nil
}

// captureFrame freezes the parameters and time for the next Draw.
func (g *Game) captureFrame() {
	g.snap = g.modulate(g.panel.Snapshot())
	g.ctx = pattern.Context{
		Width:  g.width,
		Height: g.height,
		Time:   g.clock.Now(),
	}
}

// modulate scales the wave amplitude by the loudness of the playing audio.
// The panel's own value is left alone.
func (g *Game) modulate(snap pattern.Snapshot) pattern.Snapshot {
	var level float64
	if samples := g.player.samples(); samples != nil {
		level = g.meter.Update(samples)
	} else {
		level = g.meter.Decay()
	}

	if w, ok := snap.Pattern.(pattern.WaveParams); ok && level > 0 {
		w.WaveAmplitude *= 1 + level*config.AudioGain
		snap.Pattern = w
	}
	return snap
}

func (g *Game) handlePanelKeys() {
	switch {
	case repeating(KeyNext):
		g.panel.Next()
	case repeating(KeyPrev):
		g.panel.Prev()
	case repeating(KeyIncrease):
		g.panel.Adjust(1)
	case repeating(KeyDecrease):
		g.panel.Adjust(-1)
	case justPressed(KeySwitchMode):
		g.panel.ToggleMode()
	case justPressed(KeyActivate):
		if g.panel.Activate() {
			g.pickColor()
		}
	case justPressed(KeyHidePanel):
		g.showPanel = !g.showPanel
	}
}

func (g *Game) handleActions() {
	var err error
	switch {
	case justPressed(KeySave):
		err = g.savePNG()
	case justPressed(KeyRecord):
		err = g.recordAPNG()
	case justPressed(KeyCopy):
		err = g.copyToClipboard()
	case justPressed(KeyOpenAudio):
		err = g.openAudio()
	case justPressed(KeyPause):
		g.player.togglePause()
	}

	if err != nil {
		g.lastErr = err
		g.logger.Error(err.Error())
	}
}

func (g *Game) pickColor() {
	label := g.panel.Selected().Label
	c, err := selectColor(label, g.panel.SelectedColor())
	if err != nil {
		g.lastErr = err
		g.logger.Errorf("color picker: %s", err)
		return
	}
	if c != nil {
		g.panel.SetColor(c)
		g.setStatus("%s set to %s", label, g.panel.Selected().Value())
	}
}

func (g *Game) savePNG() error {
	suggested, err := export.UniqueName(g.exportDir, config.ExportPrefix, ".png", time.Now())
	if err != nil {
		return fmt.Errorf("choosing file name: %w", err)
	}
	path, err := selectSavePath("Save Gradient", suggested)
	if err != nil || path == "" {
		return err
	}

	if err := export.SavePNG(path, export.Frame(g.ctx, g.snap, g.noise)); err != nil {
		return err
	}
	g.setStatus("saved %s", path)
	return nil
}

func (g *Game) recordAPNG() error {
	path, err := export.UniqueName(g.exportDir, config.ExportPrefix+"-loop", ".png", time.Now())
	if err != nil {
		return fmt.Errorf("choosing file name: %w", err)
	}

	start := time.Now()
	frames := export.Frames(g.ctx, g.snap, g.noise, config.RecordFrames)
	if err := export.SaveAPNG(path, frames); err != nil {
		return err
	}
	g.logger.Debugf("recorded %d frames in %s", len(frames), time.Since(start))
	g.setStatus("recorded %s", path)
	return nil
}

func (g *Game) copyToClipboard() error {
	png, err := export.EncodePNG(export.Frame(g.ctx, g.snap, g.noise))
	if err != nil {
		return err
	}
	if !clipboardWriteImage(png) {
		g.setStatus("clipboard unavailable")
		return nil
	}
	g.setStatus("copied %dx%d image", g.ctx.Width, g.ctx.Height)
	return nil
}

func (g *Game) openAudio() error {
	path, err := selectAudioFile()
	if err != nil || path == "" {
		return err
	}
	return g.player.loadAndPlay(path)
}

func (g *Game) setStatus(format string, args ...any) {
	g.status = fmt.Sprintf(format, args...)
	g.statusUntil = time.Now().Add(statusDuration)
	g.lastErr = nil
	g.logger.Info(g.status)
}

func (g *Game) Draw(screen *ebiten.Image) {
	pattern.Paint(screenSink{dst: screen}, pattern.Background, pattern.Render(g.ctx, g.snap, g.noise))

	if g.showPanel {
		g.drawPanel(screen)
	}
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	lines := g.panel.Lines()
	lines = append(lines, "", g.statusLine())

	height := len(lines)*config.PanelLineHeight + config.PanelY
	vector.DrawFilledRect(screen, 0, 0, config.PanelWidth, float32(height), color.RGBA{R: 0, G: 0, B: 0, A: 160}, false)

	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, config.PanelX, config.PanelY+i*config.PanelLineHeight)
	}
}

func (g *Game) statusLine() string {
	status := "H: hide  S: save  R: record  C: copy  O: audio"
	if g.player.active() {
		pos, length := g.player.position()
		state := "playing"
		if !g.player.playing() {
			state = "paused"
		}
		status = fmt.Sprintf("%s %s / %s", state, formatDuration(pos), formatDuration(length))
	}
	if time.Now().Before(g.statusUntil) {
		status = g.status
	}
	if g.lastErr != nil {
		status = "Error: " + g.lastErr.Error()
	}
	return status
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = driver.FitAspect(outsideWidth, outsideHeight)
	return g.width, g.height
}
