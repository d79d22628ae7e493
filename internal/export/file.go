package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/setanarut/apng"
)

// FrameDelay is the APNG frame duration in hundredths of a second.
const FrameDelay = 3

var ErrNoFrames = errors.New("no frames to write")

func EncodePNG(img image.Image) ([]byte, error) {
	buffer := &bytes.Buffer{}
	if err := png.Encode(buffer, img); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buffer.Bytes(), nil
}

func SavePNG(path string, img image.Image) error {
	toWrite, err := EncodePNG(img)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, toWrite, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// SaveAPNG writes frames as an endlessly looping animated PNG.
func SaveAPNG(path string, frames []image.Image) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	a := apng.APNG{Images: frames}
	for range frames {
		a.Delays = append(a.Delays, FrameDelay)
	}

	if err := apng.EncodeAll(f, &a); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// UniqueName returns a file name in dir that does not exist yet, built from
// prefix, a timestamp and ext, with a counter appended on collision.
func UniqueName(dir, prefix, ext string, now time.Time) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", err
	}

	taken := make(map[string]bool, len(entries))
	for _, entry := range entries {
		taken[entry.Name()] = true
	}

	timeStr := now.Format("0102150405")
	filename := fmt.Sprintf("%s-%s%s", prefix, timeStr, ext)

	for counter := 2; taken[filename]; counter++ {
		filename = fmt.Sprintf("%s-%s-(%d)%s", prefix, timeStr, counter, ext)
	}

	return filepath.Join(dir, filename), nil
}
