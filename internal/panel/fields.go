package panel

import (
	"github.com/iburimskiy/gradient-waves/internal/pattern"
)

func (p *Panel) rebuild() {
	p.fields = []Field{
		{Folder: "Mode", Label: "Style", Kind: KindMode},
		{Folder: "Gradient Colors", Label: "Top Color", Kind: KindColor, text: &p.Top},
		{Folder: "Gradient Colors", Label: "Bottom Color", Kind: KindColor, text: &p.Bottom},
	}

	if p.Mode == pattern.ModeStatic {
		s := &p.Static
		p.fields = append(p.fields,
			Field{Folder: "Horizontal Lines", Label: "Line Count", Kind: KindCount, Min: 10, Max: 200, Step: 1, cnt: &s.LineCount},
			Field{Folder: "Horizontal Lines", Label: "Line Thickness", Kind: KindNumber, Min: 1, Max: 10, Step: 1, num: &s.LineThickness},
			Field{Folder: "Horizontal Lines", Label: "Line Spacing", Kind: KindNumber, Min: 0, Max: 10, Step: 1, num: &s.LineSpacing},
			Field{Folder: "Horizontal Lines", Label: "Contrast", Kind: KindNumber, Min: 0.1, Max: 3, Step: 0.1, num: &s.Contrast},
			Field{Folder: "Horizontal Lines", Label: "Noise Level", Kind: KindNumber, Min: 0, Max: 0.3, Step: 0.01, num: &s.NoiseLevel},
		)
		p.fields = append(p.fields, fadeFields("Upper Fade", &s.UpperFade, false)...)
		p.fields = append(p.fields, fadeFields("Lower Fade", &s.LowerFade, false)...)
	} else {
		w := &p.Wave
		p.fields = append(p.fields,
			Field{Folder: "Wave Pattern", Label: "Band Count", Kind: KindCount, Min: 5, Max: 150, Step: 1, cnt: &w.BandCount},
			Field{Folder: "Wave Pattern", Label: "Band Spacing", Kind: KindNumber, Min: 0, Max: 10, Step: 1, num: &w.BandSpacing},
			Field{Folder: "Wave Pattern", Label: "Contrast", Kind: KindNumber, Min: 0.1, Max: 3, Step: 0.1, num: &w.Contrast},
			Field{Folder: "Wave Animation", Label: "Wave Frequency", Kind: KindNumber, Min: 0.001, Max: 0.05, Step: 0.001, num: &w.WaveFrequency},
			Field{Folder: "Wave Animation", Label: "Wave Amplitude", Kind: KindNumber, Min: 0, Max: 80, Step: 1, num: &w.WaveAmplitude},
			Field{Folder: "Wave Animation", Label: "Reverse Direction", Kind: KindToggle, flag: &w.ReverseWave},
			Field{Folder: "Wave Animation", Label: "Noise Level", Kind: KindNumber, Min: 0, Max: 1, Step: 0.05, num: &w.NoiseLevel},
			Field{Folder: "Wave Animation", Label: "Animation Speed", Kind: KindNumber, Min: 0, Max: 0.02, Step: 0.001, num: &w.AnimationSpeed},
		)
		p.fields = append(p.fields, fadeFields("Upper Fade", &w.UpperFade, true)...)
		p.fields = append(p.fields, fadeFields("Lower Fade", &w.LowerFade, true)...)
	}

	p.selected = pattern.Clamp(p.selected, 0, len(p.fields)-1)
}

func fadeFields(folder string, f *pattern.Fade, oscillating bool) []Field {
	fields := []Field{
		{Folder: folder, Label: "Enable", Kind: KindToggle, flag: &f.Enabled},
		{Folder: folder, Label: "Distance", Kind: KindNumber, Min: 0, Max: 200, Step: 1, num: &f.Distance},
		{Folder: folder, Label: "Amount", Kind: KindNumber, Min: 0, Max: 1, Step: 0.05, num: &f.Amount},
	}
	if oscillating {
		fields = append(fields,
			Field{Folder: folder, Label: "Frequency", Kind: KindNumber, Min: 0.001, Max: 0.1, Step: 0.001, num: &f.Frequency},
			Field{Folder: folder, Label: "Reverse", Kind: KindToggle, flag: &f.Reverse},
		)
	}
	return fields
}
