// Package panel holds the editable parameters and turns them into the
// immutable snapshot the pattern engine renders each frame.
package panel

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/BrugadaSyndrome/bslogger"
	css "github.com/mazznoer/csscolorparser"

	"github.com/iburimskiy/gradient-waves/internal/pattern"
)

type Kind int

const (
	KindNumber Kind = iota
	KindCount
	KindToggle
	KindColor
	KindMode
)

type Field struct {
	Folder string
	Label  string
	Kind   Kind

	Min, Max, Step float64

	num  *float64
	cnt  *int
	flag *bool
	text *string
}

func (f Field) Value() string {
	switch f.Kind {
	case KindNumber:
		return formatStep(*f.num, f.Step)
	case KindCount:
		return fmt.Sprintf("%d", *f.cnt)
	case KindToggle:
		if *f.flag {
			return "on"
		}
		return "off"
	case KindColor:
		return *f.text
	}
	return ""
}

type Panel struct {
	Mode   pattern.Mode
	Top    string
	Bottom string
	Wave   pattern.WaveParams
	Static pattern.StaticParams

	logger    bslogger.Logger
	badColors map[string]bool
	fields    []Field
	selected  int
}

func New(logger bslogger.Logger) *Panel {
	p := &Panel{
		Mode:      pattern.ModeWave,
		Top:       "#ff6496",
		Bottom:    "#3296ff",
		Wave:      pattern.DefaultWaveParams(),
		Static:    pattern.DefaultStaticParams(),
		logger:    logger,
		badColors: map[string]bool{},
	}
	p.rebuild()
	return p
}

// SetMode switches the pattern and rebuilds the field list for it.
func (p *Panel) SetMode(m pattern.Mode) {
	if p.Mode == m && len(p.fields) > 0 {
		return
	}
	p.Mode = m
	p.rebuild()
	p.logger.Debugf("mode set to %s", m)
}

func (p *Panel) ToggleMode() {
	if p.Mode == pattern.ModeWave {
		p.SetMode(pattern.ModeStatic)
	} else {
		p.SetMode(pattern.ModeWave)
	}
}

func (p *Panel) Fields() []Field {
	return p.fields
}

func (p *Panel) Selected() Field {
	return p.fields[p.selected]
}

func (p *Panel) Next() {
	p.selected = (p.selected + 1) % len(p.fields)
}

func (p *Panel) Prev() {
	p.selected = (p.selected - 1 + len(p.fields)) % len(p.fields)
}

// Adjust moves the selected value dir steps, staying inside its range.
// Toggles flip and the mode field cycles regardless of dir.
func (p *Panel) Adjust(dir int) {
	f := p.fields[p.selected]
	switch f.Kind {
	case KindNumber:
		v := snap(*f.num+float64(dir)*f.Step, f.Step)
		*f.num = pattern.Clamp(v, f.Min, f.Max)
	case KindCount:
		v := *f.cnt + dir*int(f.Step)
		*f.cnt = pattern.Clamp(v, int(f.Min), int(f.Max))
	case KindToggle:
		*f.flag = !*f.flag
	case KindMode:
		p.ToggleMode()
	}
}

// Activate handles the confirm key. It reports true when the selected
// field is a color, which the caller edits with SetColor.
func (p *Panel) Activate() bool {
	f := p.fields[p.selected]
	switch f.Kind {
	case KindToggle, KindMode:
		p.Adjust(1)
	case KindColor:
		return true
	}
	return false
}

// SelectedColor parses the color under the cursor.
func (p *Panel) SelectedColor() color.Color {
	f := p.fields[p.selected]
	if f.Kind != KindColor {
		return nil
	}
	return p.parseColor(*f.text).NRGBA()
}

func (p *Panel) SetColor(c color.Color) {
	f := p.fields[p.selected]
	if f.Kind != KindColor || c == nil {
		return
	}
	*f.text = pattern.ColorFrom(c).String()
}

// Snapshot copies the current values into a verified, immutable snapshot.
func (p *Panel) Snapshot() pattern.Snapshot {
	g := pattern.Gradient{
		Top:    p.parseColor(p.Top),
		Bottom: p.parseColor(p.Bottom),
	}

	if p.Mode == pattern.ModeStatic {
		s := p.Static
		s.Verify()
		return pattern.Snapshot{Gradient: g, Pattern: s}
	}

	w := p.Wave
	w.Verify()
	return pattern.Snapshot{Gradient: g, Pattern: w}
}

// Lines renders the panel as text rows, one folder title followed by its fields.
func (p *Panel) Lines() []string {
	var out []string
	folder := ""
	for i, f := range p.fields {
		if f.Folder != folder {
			folder = f.Folder
			out = append(out, "["+folder+"]")
		}
		cursor := "  "
		if i == p.selected {
			cursor = "> "
		}
		value := f.Value()
		if f.Kind == KindMode {
			value = p.Mode.String()
		}
		out = append(out, fmt.Sprintf("%s%-16s %s", cursor, f.Label, value))
	}
	return out
}

func (p *Panel) parseColor(str string) pattern.Color {
	c, err := ParseColorString(str)
	if err != nil {
		if !p.badColors[str] {
			p.badColors[str] = true
			p.logger.Warningf("invalid color %q, using white: %s", str, err)
		}
		return pattern.White
	}
	return c
}

func ParseColorString(str string) (pattern.Color, error) {
	c, err := css.Parse(strings.TrimSpace(str))
	if err != nil {
		return pattern.Color{}, err
	}

	return pattern.Color{
		R: uint8(math.Round(255 * pattern.Clamp(c.R, 0, 1))),
		G: uint8(math.Round(255 * pattern.Clamp(c.G, 0, 1))),
		B: uint8(math.Round(255 * pattern.Clamp(c.B, 0, 1))),
	}, nil
}

// snap rounds v to a multiple of step without accumulating float error.
func snap(v, step float64) float64 {
	if step < 1 {
		inv := math.Round(1 / step)
		return math.Round(v*inv) / inv
	}
	return math.Round(v/step) * step
}

func formatStep(v, step float64) string {
	decimals := 0
	for step < 1 && decimals < 4 {
		step *= 10
		decimals++
	}
	return fmt.Sprintf("%.*f", decimals, v)
}
