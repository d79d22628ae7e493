package pattern

import (
	"image/color"
	"testing"
)

var (
	pink = Color{255, 100, 150}
	blue = Color{50, 150, 255}
)

// TestInterpolateEndpoints verifies contrast 1 returns the endpoints unchanged
func TestInterpolateEndpoints(t *testing.T) {
	if got := Interpolate(pink, blue, 0, 1); got != pink {
		t.Errorf("Expected %v at progress 0, got %v", pink, got)
	}
	if got := Interpolate(pink, blue, 1, 1); got != blue {
		t.Errorf("Expected %v at progress 1, got %v", blue, got)
	}
}

// TestInterpolateClampsProgress verifies out-of-range progress sticks to the endpoints
func TestInterpolateClampsProgress(t *testing.T) {
	if got := Interpolate(pink, blue, -3, 1); got != pink {
		t.Errorf("Expected %v for negative progress, got %v", pink, got)
	}
	if got := Interpolate(pink, blue, 7, 1); got != blue {
		t.Errorf("Expected %v for progress above 1, got %v", blue, got)
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	got := Interpolate(Color{0, 0, 0}, Color{200, 100, 50}, 0.5, 1)
	want := Color{100, 50, 25}
	if got != want {
		t.Errorf("Expected %v, got %v", want, got)
	}
}

func TestContrast(t *testing.T) {
	tests := []struct {
		name   string
		in     Color
		amount float64
		want   Color
	}{
		{"identity", Color{10, 128, 240}, 1, Color{10, 128, 240}},
		{"flatten to gray", Color{0, 255, 60}, 0, Color{128, 128, 128}},
		{"halve distance", Color{0, 228, 128}, 0.5, Color{64, 178, 128}},
		{"clip high", Color{200, 255, 128}, 3, Color{255, 255, 128}},
		{"clip low", Color{50, 0, 100}, 3, Color{0, 0, 44}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpolate(tt.in, tt.in, 0.3, tt.amount)
			if got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

// TestInterpolateStaysInRange sweeps progress and contrast and checks no channel wraps
func TestInterpolateStaysInRange(t *testing.T) {
	a, b := Color{0, 255, 3}, Color{255, 0, 250}
	for _, amount := range []float64{0.1, 1, 2.5, 10} {
		prev := Interpolate(a, b, 0, amount)
		for i := 1; i <= 100; i++ {
			got := Interpolate(a, b, float64(i)/100, amount)
			// R rises and G falls monotonically; a wrapped byte would break that
			if got.R < prev.R || got.G > prev.G {
				t.Fatalf("Channel wrapped at progress %.2f contrast %.1f: %v after %v", float64(i)/100, amount, got, prev)
			}
			prev = got
		}
	}
}

func TestColorFrom(t *testing.T) {
	got := ColorFrom(color.RGBA{R: 1, G: 2, B: 3, A: 255})
	if got != (Color{1, 2, 3}) {
		t.Errorf("Expected {1 2 3}, got %v", got)
	}
	if s := pink.String(); s != "#ff6496" {
		t.Errorf("Expected #ff6496, got %s", s)
	}
}
