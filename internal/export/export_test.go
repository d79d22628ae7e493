package export

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/iburimskiy/gradient-waves/internal/pattern"
)

type constNoise float64

func (c constNoise) Sample(x, y, z float64) float64 { return float64(c) }

var (
	pink = pattern.Color{R: 255, G: 100, B: 150}
	blue = pattern.Color{R: 50, G: 150, B: 255}
)

func staticSnapshot(count int) pattern.Snapshot {
	return pattern.Snapshot{
		Gradient: pattern.Gradient{Top: pink, Bottom: blue},
		Pattern: pattern.StaticParams{
			LineCount:     count,
			LineThickness: 2,
			LineSpacing:   1,
			Contrast:      1,
		},
	}
}

func rgbaAt(img *image.RGBA, x, y int) color.RGBA {
	return img.RGBAAt(x, y)
}

// TestCanvasFillRect verifies rounding and clipping of rectangles
func TestCanvasFillRect(t *testing.T) {
	c := NewCanvas(10, 10)
	c.Clear(pattern.Background)

	c.FillRect(pattern.Rect{X: 1.4, Y: 2.6, W: 2, H: 2, Color: pink})
	c.FillRect(pattern.Rect{X: 8, Y: -5, W: 10, H: 6, Color: blue})

	if got := rgbaAt(c.Image, 1, 3); got != (color.RGBA{255, 100, 150, 255}) {
		t.Errorf("Expected pink at (1,3), got %v", got)
	}
	if got := rgbaAt(c.Image, 3, 3); got != (color.RGBA{20, 20, 20, 255}) {
		t.Errorf("Expected background at (3,3), got %v", got)
	}
	if got := rgbaAt(c.Image, 9, 0); got != (color.RGBA{50, 150, 255, 255}) {
		t.Errorf("Expected clipped blue at (9,0), got %v", got)
	}
	if got := rgbaAt(c.Image, 9, 1); got != (color.RGBA{20, 20, 20, 255}) {
		t.Errorf("Expected background at (9,1), got %v", got)
	}
}

func TestFrameStatic(t *testing.T) {
	img := Frame(pattern.Context{Width: 40, Height: 10}, staticSnapshot(2), nil)

	// two lines of 2px separated by 1px, centered: total 5, start 2.5
	if got := rgbaAt(img, 0, 0); got != (color.RGBA{20, 20, 20, 255}) {
		t.Errorf("Expected background above the lines, got %v", got)
	}
	if got := rgbaAt(img, 5, 3); got != (color.RGBA{255, 100, 150, 255}) {
		t.Errorf("Expected first line pink, got %v", got)
	}
	if got := rgbaAt(img, 5, 6); got != (color.RGBA{50, 150, 255, 255}) {
		t.Errorf("Expected second line blue, got %v", got)
	}
}

// TestFramesAdvanceTime verifies wave frames move and static frames do not
func TestFramesAdvanceTime(t *testing.T) {
	ctx := pattern.Context{Width: 32, Height: 60}

	wave := pattern.DefaultWaveParams()
	wave.BandCount = 5
	wave.AnimationSpeed = 0.5
	snap := pattern.Snapshot{Gradient: pattern.Gradient{Top: pink, Bottom: blue}, Pattern: wave}

	frames := Frames(ctx, snap, constNoise(0.5), 3)
	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(frames))
	}
	if samePixels(frames[0].(*image.RGBA), frames[1].(*image.RGBA)) {
		t.Error("Expected wave frames to differ")
	}

	still := Frames(ctx, staticSnapshot(10), nil, 2)
	if !samePixels(still[0].(*image.RGBA), still[1].(*image.RGBA)) {
		t.Error("Expected static frames to be identical")
	}
}

func samePixels(a, b *image.RGBA) bool {
	if len(a.Pix) != len(b.Pix) {
		return false
	}
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			return false
		}
	}
	return true
}

func TestSavePNG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.png")

	img := Frame(pattern.Context{Width: 16, Height: 12}, staticSnapshot(3), nil)
	if err := SavePNG(path, img); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Expected file, got %v", err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Expected a valid png, got %v", err)
	}
	if decoded.Bounds().Dx() != 16 || decoded.Bounds().Dy() != 12 {
		t.Errorf("Expected 16x12, got %v", decoded.Bounds())
	}
}

func TestSavePNGBadDir(t *testing.T) {
	img := NewCanvas(1, 1).Image
	if err := SavePNG(filepath.Join(t.TempDir(), "missing", "out.png"), img); err == nil {
		t.Error("Expected an error for a missing directory")
	}
}

func TestSaveAPNGNoFrames(t *testing.T) {
	if err := SaveAPNG(filepath.Join(t.TempDir(), "a.png"), nil); err != ErrNoFrames {
		t.Errorf("Expected ErrNoFrames, got %v", err)
	}
}

func TestSaveAPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "loop.png")
	ctx := pattern.Context{Width: 8, Height: 6}
	if err := SaveAPNG(path, Frames(ctx, staticSnapshot(2), nil, 3)); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected file, got %v", err)
	}
	if !bytes.Contains(data, []byte("acTL")) {
		t.Error("Expected an animation control chunk")
	}

	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("Expected the default frame to decode, got %v", err)
	}
	if decoded.Bounds().Dx() != 8 || decoded.Bounds().Dy() != 6 {
		t.Errorf("Expected 8x6, got %v", decoded.Bounds())
	}
}

// TestSaveAPNGBadDir verifies a failed write is reported instead of exiting
func TestSaveAPNGBadDir(t *testing.T) {
	frames := Frames(pattern.Context{Width: 2, Height: 2}, staticSnapshot(1), nil, 2)
	path := filepath.Join(t.TempDir(), "missing", "loop.png")

	if err := SaveAPNG(path, frames); err == nil {
		t.Error("Expected an error for a missing directory")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("Expected no file, got %v", err)
	}
}

// TestUniqueName verifies collisions get a counter instead of overwriting
func TestUniqueName(t *testing.T) {
	dir := t.TempDir()
	now := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)

	first, err := UniqueName(dir, "threshold-gradient", ".png", now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if filepath.Base(first) != "threshold-gradient-0304050607.png" {
		t.Errorf("Unexpected name %s", filepath.Base(first))
	}

	for _, name := range []string{first, filepath.Join(dir, "threshold-gradient-0304050607-(2).png")} {
		if err := os.WriteFile(name, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	third, err := UniqueName(dir, "threshold-gradient", ".png", now)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if filepath.Base(third) != "threshold-gradient-0304050607-(3).png" {
		t.Errorf("Unexpected name %s", filepath.Base(third))
	}
}
