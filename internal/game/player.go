package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/BrugadaSyndrome/bslogger"
	"github.com/faiface/beep"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"

	"github.com/iburimskiy/gradient-waves/internal/audio"
	"github.com/iburimskiy/gradient-waves/internal/config"
)

var ErrUnsupportedAudio = errors.New("unsupported file type")

// player plays one audio file at a time through a tap the game reads
// the loudness from.
type player struct {
	logger bslogger.Logger

	currentFile *os.File
	streamer    beep.StreamSeekCloser
	format      beep.Format
	ctrl        *beep.Ctrl
	tap         *audio.Tap

	initDone bool
	paused   bool
	finished atomic.Bool
}

func newPlayer(logger bslogger.Logger) *player {
	return &player{logger: logger}
}

// active reports whether a file is loaded and not yet finished.
func (p *player) active() bool {
	if p.streamer != nil && p.finished.Load() {
		p.stopCurrent()
		p.logger.Info("playback finished")
	}
	return p.streamer != nil
}

func (p *player) playing() bool {
	return p.active() && !p.paused
}

func (p *player) togglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.paused = !p.paused
	p.ctrl.Paused = p.paused
	speaker.Unlock()
}

// position returns how far into the file playback is and the file length.
func (p *player) position() (time.Duration, time.Duration) {
	if p.streamer == nil {
		return 0, 0
	}
	speaker.Lock()
	pos, length := p.streamer.Position(), p.streamer.Len()
	speaker.Unlock()
	return p.format.SampleRate.D(pos), p.format.SampleRate.D(length)
}

func (p *player) stopCurrent() {
	if p.initDone {
		speaker.Lock()
		speaker.Clear()
		speaker.Unlock()
	}
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.currentFile != nil {
		_ = p.currentFile.Close()
		p.currentFile = nil
	}
	p.ctrl = nil
	p.tap = nil
	p.paused = false
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedAudio, filepath.Ext(path))
}

func (p *player) loadAndPlay(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}

	streamer, format, err := decode(path, f)
	if err != nil {
		_ = f.Close()
		return err
	}

	p.stopCurrent()

	// streamer -> tap -> ctrl
	t := audio.NewTap(streamer, config.VisualRingSize)
	ctrl := &beep.Ctrl{Streamer: t, Paused: false}

	bufferSize := format.SampleRate.N(time.Second / 20)
	if !p.initDone || p.format.SampleRate != format.SampleRate {
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("initializing speaker: %w", err)
		}
		p.initDone = true
	}

	p.currentFile = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = t
	p.finished.Store(false)

	speaker.Play(beep.Seq(ctrl, beep.Callback(func() {
		p.finished.Store(true)
	})))

	p.logger.Infof("playing %s (%d Hz)", path, format.SampleRate)
	return nil
}

// samples returns the most recent audio for the level meter, or nil when silent.
func (p *player) samples() [][2]float64 {
	if !p.playing() || p.tap == nil {
		return nil
	}
	return p.tap.Snapshot(config.LevelWindow)
}
