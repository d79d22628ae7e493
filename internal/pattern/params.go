package pattern

import (
	"fmt"
	"iter"
)

type Mode int

const (
	ModeWave Mode = iota
	ModeStatic
)

func (m Mode) String() string {
	switch m {
	case ModeWave:
		return "wave"
	case ModeStatic:
		return "static"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func ParseMode(s string) (Mode, bool) {
	switch s {
	case "wave":
		return ModeWave, true
	case "static":
		return ModeStatic, true
	}
	return ModeWave, false
}

// Gradient holds the endpoints shared by both patterns.
type Gradient struct {
	Top    Color
	Bottom Color
}

// Pattern is either WaveParams or StaticParams.
type Pattern interface {
	Mode() Mode
	render(ctx Context, g Gradient, noise NoiseSource) iter.Seq[Rect]
}

type WaveParams struct {
	BandCount      int
	BandSpacing    float64
	Contrast       float64
	WaveFrequency  float64
	WaveAmplitude  float64
	NoiseLevel     float64
	AnimationSpeed float64
	ReverseWave    bool
	UpperFade      Fade
	LowerFade      Fade
}

func (WaveParams) Mode() Mode { return ModeWave }

func DefaultWaveParams() WaveParams {
	fade := Fade{
		Enabled:   true,
		Distance:  80,
		Amount:    0.9,
		Frequency: 0.025,
	}
	return WaveParams{
		BandCount:      50,
		BandSpacing:    2,
		Contrast:       1.2,
		WaveFrequency:  0.015,
		WaveAmplitude:  30,
		NoiseLevel:     0.4,
		AnimationSpeed: 0.008,
		UpperFade:      fade,
		LowerFade:      fade,
	}
}

// Verify clamps every field into the range the renderer accepts.
func (p *WaveParams) Verify() {
	p.BandCount = max(p.BandCount, 1)
	p.BandSpacing = max(p.BandSpacing, 0)
	if p.Contrast <= 0 {
		p.Contrast = 1
	}
	p.WaveFrequency = max(p.WaveFrequency, 0)
	p.WaveAmplitude = max(p.WaveAmplitude, 0)
	p.NoiseLevel = max(p.NoiseLevel, 0)
	p.AnimationSpeed = max(p.AnimationSpeed, 0)
	p.UpperFade.verify()
	p.LowerFade.verify()
}

type StaticParams struct {
	LineCount     int
	LineThickness float64
	LineSpacing   float64
	Contrast      float64
	NoiseLevel    float64
	UpperFade     Fade
	LowerFade     Fade
}

func (StaticParams) Mode() Mode { return ModeStatic }

func DefaultStaticParams() StaticParams {
	fade := Fade{
		Distance: 100,
		Amount:   0.8,
	}
	return StaticParams{
		LineCount:     80,
		LineThickness: 2,
		LineSpacing:   1,
		Contrast:      1.0,
		NoiseLevel:    0.02,
		UpperFade:     fade,
		LowerFade:     fade,
	}
}

// Verify clamps every field into the range the renderer accepts.
// Static fades never oscillate and are never reversed.
func (p *StaticParams) Verify() {
	p.LineCount = max(p.LineCount, 1)
	if p.LineThickness <= 0 {
		p.LineThickness = 1
	}
	p.LineSpacing = max(p.LineSpacing, 0)
	if p.Contrast <= 0 {
		p.Contrast = 1
	}
	p.NoiseLevel = max(p.NoiseLevel, 0)
	for _, f := range []*Fade{&p.UpperFade, &p.LowerFade} {
		f.verify()
		f.Frequency = 0
		f.Reverse = false
	}
}

func (f *Fade) verify() {
	f.Distance = max(f.Distance, 0)
	f.Amount = Clamp(f.Amount, 0, 1)
	f.Frequency = max(f.Frequency, 0)
}

// Snapshot is the immutable input of one render pass.
type Snapshot struct {
	Gradient Gradient
	Pattern  Pattern
}

func (s Snapshot) Mode() Mode {
	if s.Pattern == nil {
		return ModeWave
	}
	return s.Pattern.Mode()
}

// AnimationSpeed is the per-frame time step, zero for patterns that do not move.
func (s Snapshot) AnimationSpeed() float64 {
	if w, ok := s.Pattern.(WaveParams); ok {
		return w.AnimationSpeed
	}
	return 0
}
