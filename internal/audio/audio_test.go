package audio

import (
	"math"
	"testing"

	"github.com/faiface/beep"
)

// counter streams stereo samples whose left channel counts up from 1
func counter(total int) beep.Streamer {
	n := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if n >= total {
			return 0, false
		}
		i := 0
		for ; i < len(samples) && n < total; i++ {
			n++
			samples[i] = [2]float64{float64(n), 0}
		}
		return i, true
	})
}

// TestTapSnapshotOrder verifies the ring keeps the newest samples, oldest first
func TestTapSnapshotOrder(t *testing.T) {
	tap := NewTap(counter(10), 4)

	buf := make([][2]float64, 3)
	for {
		if _, ok := tap.Stream(buf); !ok {
			break
		}
	}

	got := tap.Snapshot(3)
	want := []float64{8, 9, 10}
	for i := range want {
		if got[i][0] != want[i] {
			t.Fatalf("Expected %v, got %v", want, got)
		}
	}

	if n := len(tap.Snapshot(100)); n != 4 {
		t.Errorf("Expected snapshot capped at ring size 4, got %d", n)
	}
}

func TestTapPassesThrough(t *testing.T) {
	tap := NewTap(counter(2), 8)
	buf := make([][2]float64, 5)

	n, ok := tap.Stream(buf)
	if n != 2 || !ok {
		t.Errorf("Expected 2 samples streamed, got %d (ok=%v)", n, ok)
	}
	if tap.Err() != nil {
		t.Errorf("Expected no error, got %v", tap.Err())
	}
}

func TestLoudness(t *testing.T) {
	if l := Loudness(nil); l != 0 {
		t.Errorf("Expected 0 for silence, got %f", l)
	}

	full := [][2]float64{{1, 1}, {-1, -1}}
	if l := Loudness(full); l != 1 {
		t.Errorf("Expected 1 for full scale, got %f", l)
	}

	quiet := [][2]float64{{0.001, 0.001}}
	want := math.Pow(0.001, 0.3)
	if l := Loudness(quiet); math.Abs(l-want) > 1e-12 {
		t.Errorf("Expected %f, got %f", want, l)
	}
}

func TestMeterSmoothing(t *testing.T) {
	m := NewMeter(0.6)
	loud := [][2]float64{{1, 1}}

	if l := m.Update(loud); math.Abs(l-0.4) > 1e-12 {
		t.Errorf("Expected 0.4 after one update, got %f", l)
	}
	if l := m.Update(loud); math.Abs(l-0.64) > 1e-12 {
		t.Errorf("Expected 0.64 after two updates, got %f", l)
	}
	if l := m.Decay(); math.Abs(l-0.384) > 1e-12 {
		t.Errorf("Expected 0.384 after decay, got %f", l)
	}
}
